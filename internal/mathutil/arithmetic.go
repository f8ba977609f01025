package mathutil

import (
	"fmt"
	gomath "math"
	"math/cmplx"
)

// Add returns a + b. Integer operands stay integers (native wraparound);
// mixing widens to real, and any complex operand widens to complex.
func Add(a, b any) (Value, error) {
	va, vb, err := twoNumbers(a, b)
	if err != nil {
		return Value{}, err
	}
	switch promoted(va, vb) {
	case KindInt:
		return Int(va.i + vb.i), nil
	case KindReal:
		return Real(va.Float64() + vb.Float64()), nil
	}
	return Complex(va.Complex128() + vb.Complex128()), nil
}

// Subtract returns a - b with the same promotion rules as Add.
func Subtract(a, b any) (Value, error) {
	va, vb, err := twoNumbers(a, b)
	if err != nil {
		return Value{}, err
	}
	switch promoted(va, vb) {
	case KindInt:
		return Int(va.i - vb.i), nil
	case KindReal:
		return Real(va.Float64() - vb.Float64()), nil
	}
	return Complex(va.Complex128() - vb.Complex128()), nil
}

// Multiply returns a * b with the same promotion rules as Add.
func Multiply(a, b any) (Value, error) {
	va, vb, err := twoNumbers(a, b)
	if err != nil {
		return Value{}, err
	}
	switch promoted(va, vb) {
	case KindInt:
		return Int(va.i * vb.i), nil
	case KindReal:
		return Real(va.Float64() * vb.Float64()), nil
	}
	return Complex(va.Complex128() * vb.Complex128()), nil
}

// Square returns x * x.
func Square(x any) (Value, error) {
	return Multiply(x, x)
}

// SquareAll validates data as a numeric sequence and squares every element.
func SquareAll(data any) ([]Value, error) {
	seq, err := Sequence(data, "data")
	if err != nil {
		return nil, err
	}
	out := make([]Value, len(seq))
	for i, v := range seq {
		sq, err := Multiply(v, v)
		if err != nil {
			return nil, err
		}
		out[i] = sq
	}
	return out, nil
}

// DivideOption configures Divide.
type DivideOption func(*divideOptions)

type divideOptions struct {
	infOnZero bool
}

// InfOnZero makes a zero divisor yield signed infinity instead of
// ErrDivisionByZero. The sign follows the dividend (a zero integer dividend
// maps to +Inf; for a complex dividend the real component decides).
func InfOnZero() DivideOption {
	return func(o *divideOptions) { o.infOnZero = true }
}

// Divide returns the floating-point quotient a / b. A zero divisor fails
// with ErrDivisionByZero unless InfOnZero is given.
func Divide(a, b any, opts ...DivideOption) (Value, error) {
	var o divideOptions
	for _, opt := range opts {
		opt(&o)
	}
	va, vb, err := twoNumbers(a, b)
	if err != nil {
		return Value{}, err
	}
	if vb.IsZero() {
		if !o.infOnZero {
			return Value{}, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, va, vb)
		}
		return Real(gomath.Copysign(gomath.Inf(1), va.Float64())), nil
	}
	if promoted(va, vb) == KindComplex {
		return Complex(va.Complex128() / vb.Complex128()), nil
	}
	return Real(va.Float64() / vb.Float64()), nil
}

// Power returns a raised to b. Integer bases with non-negative integer
// exponents stay integers (native wraparound); otherwise the computation is
// floating point, promoting to the principal complex result when real
// arithmetic has none (negative base, fractional exponent). Domain errors
// that survive promotion fail with ErrDomain rather than being
// pre-validated.
func Power(a, b any) (Value, error) {
	va, vb, err := twoNumbers(a, b)
	if err != nil {
		return Value{}, err
	}
	if va.IsInt() && vb.IsInt() && vb.i >= 0 {
		return Int(intPow(va.i, vb.i)), nil
	}
	if promoted(va, vb) == KindComplex {
		return Complex(cmplx.Pow(va.Complex128(), vb.Complex128())), nil
	}

	base, exp := va.Float64(), vb.Float64()
	r := gomath.Pow(base, exp)
	if !gomath.IsNaN(r) || gomath.IsNaN(base) || gomath.IsNaN(exp) {
		return Real(r), nil
	}
	c := cmplx.Pow(complex(base, 0), complex(exp, 0))
	if cmplx.IsNaN(c) {
		return Value{}, fmt.Errorf("%w: %s ** %s has no representable result", ErrDomain, va, vb)
	}
	return Complex(c), nil
}

// SqrtOption configures Sqrt.
type SqrtOption func(*sqrtOptions)

type sqrtOptions struct {
	allowComplex bool
}

// AllowComplex lets Sqrt of a negative real return the principal complex
// root instead of failing.
func AllowComplex() SqrtOption {
	return func(o *sqrtOptions) { o.allowComplex = true }
}

// Sqrt returns the square root of x. A complex input always yields its
// principal root. A negative real fails with ErrInvalidRange unless
// AllowComplex is given, in which case the result is 0 + sqrt(|x|)i.
func Sqrt(x any, opts ...SqrtOption) (Value, error) {
	var o sqrtOptions
	for _, opt := range opts {
		opt(&o)
	}
	v, err := Number(x, "x")
	if err != nil {
		return Value{}, err
	}
	if v.Kind() == KindComplex {
		return Complex(cmplx.Sqrt(v.Complex128())), nil
	}
	f := v.Float64()
	if f < 0 {
		if !o.allowComplex {
			return Value{}, fmt.Errorf("%w: cannot compute real square root of negative number %s", ErrInvalidRange, v)
		}
		return Complex(complex(0, gomath.Sqrt(-f))), nil
	}
	return Real(gomath.Sqrt(f)), nil
}

func twoNumbers(a, b any) (Value, Value, error) {
	va, err := Number(a, "a")
	if err != nil {
		return Value{}, Value{}, err
	}
	vb, err := Number(b, "b")
	if err != nil {
		return Value{}, Value{}, err
	}
	return va, vb, nil
}

// intPow computes base**exp for exp >= 0 by binary exponentiation.
func intPow(base, exp int64) int64 {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
