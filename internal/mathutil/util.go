package mathutil

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// Clamp bounds x into the inclusive interval [low, high]. All three
// arguments must be real numbers; an inverted interval fails with
// ErrInvalidRange. The returned Value preserves the chosen operand's
// variant.
func Clamp(x, low, high any) (Value, error) {
	vx, err := Number(x, "x")
	if err != nil {
		return Value{}, err
	}
	vlow, err := Number(low, "low")
	if err != nil {
		return Value{}, err
	}
	vhigh, err := Number(high, "high")
	if err != nil {
		return Value{}, err
	}

	fx, err := realArg(vx, "x")
	if err != nil {
		return Value{}, err
	}
	flow, err := realArg(vlow, "low")
	if err != nil {
		return Value{}, err
	}
	fhigh, err := realArg(vhigh, "high")
	if err != nil {
		return Value{}, err
	}

	if flow > fhigh {
		return Value{}, fmt.Errorf("%w: low (%s) must be <= high (%s)", ErrInvalidRange, vlow, vhigh)
	}
	switch {
	case fx < flow:
		return vlow, nil
	case fx > fhigh:
		return vhigh, nil
	}
	return vx, nil
}

// TolOption configures ApproxEqual.
type TolOption func(*tolOptions)

type tolOptions struct {
	relTol float64
	absTol float64
}

// RelTol sets the relative tolerance (default 1e-9).
func RelTol(t float64) TolOption {
	return func(o *tolOptions) { o.relTol = t }
}

// AbsTol sets the absolute tolerance (default 0).
func AbsTol(t float64) TolOption {
	return func(o *tolOptions) { o.absTol = t }
}

// ApproxEqual reports whether |a-b| <= max(relTol*max(|a|,|b|), absTol).
// Both operands must be real numbers.
func ApproxEqual(a, b any, opts ...TolOption) (bool, error) {
	o := tolOptions{relTol: 1e-9, absTol: 0}
	for _, opt := range opts {
		opt(&o)
	}
	va, vb, err := twoNumbers(a, b)
	if err != nil {
		return false, err
	}
	fa, err := realArg(va, "a")
	if err != nil {
		return false, err
	}
	fb, err := realArg(vb, "b")
	if err != nil {
		return false, err
	}
	return scalar.EqualWithinAbsOrRel(fa, fb, o.absTol, o.relTol), nil
}
