package mathutil

import (
	"fmt"
	"strconv"
)

// NumKind discriminates the variants of the numeric union.
type NumKind uint8

const (
	KindInt NumKind = iota
	KindReal
	KindComplex
)

func (k NumKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindReal:
		return "real"
	case KindComplex:
		return "complex"
	}
	return "unknown"
}

// Value is a tagged union over integer, real, and complex numbers. The zero
// Value is the integer 0.
type Value struct {
	kind NumKind
	i    int64
	r    float64
	c    complex128
}

// Int wraps an integer.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Real wraps a floating-point number.
func Real(v float64) Value { return Value{kind: KindReal, r: v} }

// Complex wraps a complex number.
func Complex(v complex128) Value { return Value{kind: KindComplex, c: v} }

// Kind reports which variant the value holds.
func (v Value) Kind() NumKind { return v.kind }

// IsInt reports whether the value holds the integer variant.
func (v Value) IsInt() bool { return v.kind == KindInt }

// Int64 returns the integer payload. Only meaningful for KindInt.
func (v Value) Int64() int64 { return v.i }

// Float64 returns the value as a float64. Integers are converted; for
// complex values the real component is returned.
func (v Value) Float64() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindComplex:
		return real(v.c)
	}
	return v.r
}

// Complex128 returns the value widened to complex128.
func (v Value) Complex128() complex128 {
	switch v.kind {
	case KindInt:
		return complex(float64(v.i), 0)
	case KindReal:
		return complex(v.r, 0)
	}
	return v.c
}

// IsZero reports whether the value is exactly zero in its own variant.
func (v Value) IsZero() bool {
	switch v.kind {
	case KindInt:
		return v.i == 0
	case KindReal:
		return v.r == 0
	}
	return v.c == 0
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindReal:
		return strconv.FormatFloat(v.r, 'g', -1, 64)
	}
	return fmt.Sprintf("%g", v.c)
}

// promoted returns the widest kind among the operands.
func promoted(a, b Value) NumKind {
	if a.kind > b.kind {
		return a.kind
	}
	return b.kind
}
