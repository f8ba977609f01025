// Package mathutil provides validated arithmetic, number-theoretic functions,
// and descriptive statistics over a small numeric union (integer, real,
// complex).
//
// Every public function validates its arguments before computing and reports
// failures through a closed error taxonomy rooted at ErrMath, so callers can
// branch on the failure kind with errors.Is instead of parsing message text:
//
//	v, err := mathutil.Divide(1, 0)
//	if errors.Is(err, mathutil.ErrDivisionByZero) { ... }
//
// The package is purely functional: no shared state, no logging, no I/O.
// Every call either returns a value or a typed error, and independent calls
// are safe to run concurrently.
//
// Integer arithmetic uses the native int64 representation; overflow wraps
// around as usual for fixed-width integers and is not detected.
package mathutil
