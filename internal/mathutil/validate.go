package mathutil

import (
	"fmt"
	"reflect"
)

// Number validates that v belongs to the numeric union and returns it as a
// Value. Any Go integer, float, or complex type is accepted, as is Value
// itself. Anything else fails with ErrInvalidType naming the parameter and
// the offending runtime type.
func Number(v any, name string) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return Int(int64(x)), nil
	case float32:
		return Real(float64(x)), nil
	case float64:
		return Real(x), nil
	case complex64:
		return Complex(complex128(x)), nil
	case complex128:
		return Complex(x), nil
	}
	return Value{}, fmt.Errorf("%w: %s must be a number (int, float, complex); got %T", ErrInvalidType, name, v)
}

// Sequence materializes data into a non-empty ordered slice of Values.
// Validation is eager and total: a non-slice input fails with
// ErrInvalidType, a zero-length slice with ErrEmptyData, and a non-numeric
// element with ErrInvalidType identifying the first offending index.
// Partially valid sequences are never accepted.
func Sequence(data any, name string) ([]Value, error) {
	switch d := data.(type) {
	case []Value:
		if len(d) == 0 {
			return nil, emptyErr(name)
		}
		out := make([]Value, len(d))
		copy(out, d)
		return out, nil
	case []float64:
		if len(d) == 0 {
			return nil, emptyErr(name)
		}
		out := make([]Value, len(d))
		for i, x := range d {
			out[i] = Real(x)
		}
		return out, nil
	case []int:
		if len(d) == 0 {
			return nil, emptyErr(name)
		}
		out := make([]Value, len(d))
		for i, x := range d {
			out[i] = Int(int64(x))
		}
		return out, nil
	case []int64:
		if len(d) == 0 {
			return nil, emptyErr(name)
		}
		out := make([]Value, len(d))
		for i, x := range d {
			out[i] = Int(x)
		}
		return out, nil
	case []any:
		return fromAnySlice(d, name)
	}

	// Generic slices and arrays of other element types go through reflection.
	rv := reflect.ValueOf(data)
	if data == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, fmt.Errorf("%w: %s must be a sequence of numbers; got %T", ErrInvalidType, name, data)
	}
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return fromAnySlice(elems, name)
}

func fromAnySlice(d []any, name string) ([]Value, error) {
	if len(d) == 0 {
		return nil, emptyErr(name)
	}
	out := make([]Value, len(d))
	for i, e := range d {
		v, err := Number(e, name)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d of %s is not a number (got %T)", ErrInvalidType, i, name, e)
		}
		out[i] = v
	}
	return out, nil
}

func emptyErr(name string) error {
	return fmt.Errorf("%w: %s must not be empty", ErrEmptyData, name)
}

// reals narrows a validated sequence to float64s. Complex elements are
// rejected: ordering and real-valued statistics are undefined for them.
func reals(seq []Value, name string) ([]float64, error) {
	out := make([]float64, len(seq))
	for i, v := range seq {
		if v.Kind() == KindComplex {
			return nil, fmt.Errorf("%w: element %d of %s is complex; a real number is required", ErrInvalidType, i, name)
		}
		out[i] = v.Float64()
	}
	return out, nil
}

// realArg narrows a single validated value to float64, rejecting complex.
func realArg(v Value, name string) (float64, error) {
	if v.Kind() == KindComplex {
		return 0, fmt.Errorf("%w: %s must be a real number; got complex", ErrInvalidType, name)
	}
	return v.Float64(), nil
}
