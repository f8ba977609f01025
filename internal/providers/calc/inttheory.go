package calc

import (
	"context"

	"github.com/TomasMT1104/Lab-Final-IA/internal/mathutil"
	"github.com/TomasMT1104/Lab-Final-IA/internal/types"
)

// integerOps handles number-theoretic operations over strict integers
type integerOps struct{}

// GetTools returns number-theory tool definitions
func (n *integerOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "calc.factorial",
			Name:        "Factorial",
			Description: "Calculate n! for a non-negative integer",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Non-negative integer", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calc.gcd",
			Name:        "Greatest Common Divisor",
			Description: "GCD of one or more integers",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Integers", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calc.lcm",
			Name:        "Least Common Multiple",
			Description: "LCM of one or more integers; zero anywhere yields zero",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Integers", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calc.is_prime",
			Name:        "Primality Test",
			Description: "Deterministic trial-division primality test",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Integer to test", Required: true},
			},
			Returns: "boolean",
		},
	}
}

// Factorial calculates n!
func (n *integerOps) Factorial(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	arg, ok := params["n"]
	if !ok {
		return Failure("n parameter required")
	}

	result, err := mathutil.Factorial(intNarrowed(arg))
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"result": result})
}

// GCD calculates the greatest common divisor
func (n *integerOps) GCD(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := list(params, "numbers")
	if !ok {
		return Failure("numbers array required")
	}

	result, err := mathutil.GCD(numbers...)
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"result": result})
}

// LCM calculates the least common multiple
func (n *integerOps) LCM(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := list(params, "numbers")
	if !ok {
		return Failure("numbers array required")
	}

	result, err := mathutil.LCM(numbers...)
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"result": result})
}

// IsPrime tests primality
func (n *integerOps) IsPrime(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	arg, ok := params["n"]
	if !ok {
		return Failure("n parameter required")
	}

	result, err := mathutil.IsPrime(intNarrowed(arg))
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"result": result})
}
