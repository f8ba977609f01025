package mathutil

import "fmt"

// Factorial returns n! for a non-negative integer n (0! = 1). The product
// uses native int64 arithmetic, so large n wraps around like any fixed-width
// integer computation.
func Factorial(n any) (int64, error) {
	v, err := integerArg(n, "n", ErrNonInteger)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: factorial is not defined for negative integers", ErrNegativeFactorial)
	}
	result := int64(1)
	for i := int64(2); i <= v; i++ {
		result *= i
	}
	return result, nil
}

// GCD returns the greatest common divisor of one or more integers, computed
// pairwise left to right over absolute values.
func GCD(args ...any) (int64, error) {
	ints, err := integerArgs("gcd", args)
	if err != nil {
		return 0, err
	}
	result := abs64(ints[0])
	for _, x := range ints[1:] {
		result = gcd2(result, abs64(x))
	}
	return result, nil
}

// LCM returns the least common multiple of one or more integers. A zero
// operand anywhere forces the result to zero.
func LCM(args ...any) (int64, error) {
	ints, err := integerArgs("lcm", args)
	if err != nil {
		return 0, err
	}
	result := abs64(ints[0])
	for _, x := range ints[1:] {
		result = lcm2(result, x)
	}
	return result, nil
}

// IsPrime reports whether n is prime, by trial division over odd candidates
// up to floor(sqrt(n)). Deterministic and exact for any int64; cost O(sqrt n).
func IsPrime(n any) (bool, error) {
	v, err := integerArg(n, "n", ErrInvalidType)
	if err != nil {
		return false, err
	}
	if v <= 1 {
		return false, nil
	}
	if v <= 3 {
		return true, nil
	}
	if v%2 == 0 {
		return false, nil
	}
	for i := int64(3); i*i <= v; i += 2 {
		if v%i == 0 {
			return false, nil
		}
	}
	return true, nil
}

// integerArg requires a strict integer type; integer-valued floats are not
// accepted. The failure wraps the provided kind (ErrNonInteger for
// factorial, ErrInvalidType elsewhere).
func integerArg(v any, name string, kind error) (int64, error) {
	num, err := Number(v, name)
	if err != nil {
		return 0, err
	}
	if !num.IsInt() {
		return 0, fmt.Errorf("%w: %s requires an integer; got %s", kind, name, num.Kind())
	}
	return num.Int64(), nil
}

func integerArgs(op string, args []any) ([]int64, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: %s requires at least one integer argument", ErrEmptyArgument, op)
	}
	out := make([]int64, len(args))
	for i, a := range args {
		v, err := integerArg(a, fmt.Sprintf("%s argument %d", op, i), ErrInvalidType)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func gcd2(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm2(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return abs64(a / gcd2(a, b) * b)
}
