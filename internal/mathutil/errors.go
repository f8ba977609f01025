package mathutil

import "errors"

// ErrMath is the root of the failure taxonomy. Every error returned by this
// package matches ErrMath via errors.Is, so callers may catch broadly or
// match one of the specific kinds below.
var ErrMath = errors.New("mathutil: math error")

// Specific failure kinds. Each one also matches ErrMath.
var (
	// ErrInvalidType reports an argument (or sequence element) outside the
	// accepted numeric domain.
	ErrInvalidType = &kindError{name: "invalid_type", msg: "invalid type"}

	// ErrEmptyData reports a required sequence with zero elements.
	ErrEmptyData = &kindError{name: "empty_data", msg: "empty data"}

	// ErrInsufficientData reports a sample statistic requested with fewer
	// than two observations.
	ErrInsufficientData = &kindError{name: "insufficient_data", msg: "insufficient data"}

	// ErrNonInteger reports an integer-only operation given a non-integer.
	ErrNonInteger = &kindError{name: "non_integer", msg: "non-integer"}

	// ErrNegativeFactorial reports a factorial of a negative integer.
	ErrNegativeFactorial = &kindError{name: "negative_factorial", msg: "negative factorial"}

	// ErrDivisionByZero reports division with a zero divisor while
	// zero-raising is enabled.
	ErrDivisionByZero = &kindError{name: "division_by_zero", msg: "division by zero"}

	// ErrInvalidRange reports an inverted clamp interval, or a real square
	// root of a negative value with complex results disallowed.
	ErrInvalidRange = &kindError{name: "invalid_range", msg: "invalid range"}

	// ErrEmptyArgument reports a variadic integer operation called with no
	// arguments.
	ErrEmptyArgument = &kindError{name: "empty_argument", msg: "empty argument"}

	// ErrDomain reports a numeric-domain failure inherent to the operation,
	// such as exponentiation with no representable result.
	ErrDomain = &kindError{name: "domain", msg: "numeric domain error"}
)

// kindError is one leaf of the closed taxonomy. The discriminant is the
// sentinel identity itself; Is makes every kind match the ErrMath root.
type kindError struct {
	name string
	msg  string
}

func (e *kindError) Error() string { return "mathutil: " + e.msg }

func (e *kindError) Is(target error) bool { return target == ErrMath }

// KindOf returns the machine-readable kind name for an error produced by
// this package ("invalid_type", "division_by_zero", ...), or the empty
// string if err does not belong to the taxonomy.
func KindOf(err error) string {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.name
	}
	return ""
}
