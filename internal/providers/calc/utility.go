package calc

import (
	"context"

	"github.com/TomasMT1104/Lab-Final-IA/internal/mathutil"
	"github.com/TomasMT1104/Lab-Final-IA/internal/types"
)

// utilityOps handles numeric helper operations
type utilityOps struct{}

// GetTools returns utility tool definitions
func (u *utilityOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "calc.clamp",
			Name:        "Clamp",
			Description: "Bound x into the inclusive interval [low, high]",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Value to clamp", Required: true},
				{Name: "low", Type: "number", Description: "Lower bound", Required: true},
				{Name: "high", Type: "number", Description: "Upper bound", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calc.approx_equal",
			Name:        "Approximate Equality",
			Description: "Compare within relative/absolute tolerances",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First operand", Required: true},
				{Name: "b", Type: "number", Description: "Second operand", Required: true},
				{Name: "rel_tol", Type: "number", Description: "Relative tolerance (default 1e-9)", Required: false},
				{Name: "abs_tol", Type: "number", Description: "Absolute tolerance (default 0)", Required: false},
			},
			Returns: "boolean",
		},
	}
}

// Clamp bounds x into [low, high]
func (u *utilityOps) Clamp(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := params["x"]
	if !ok {
		return Failure("x parameter required")
	}
	low, ok := params["low"]
	if !ok {
		return Failure("low parameter required")
	}
	high, ok := params["high"]
	if !ok {
		return Failure("high parameter required")
	}

	v, err := mathutil.Clamp(x, low, high)
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"result": valueData(v)})
}

// ApproxEqual compares within tolerances
func (u *utilityOps) ApproxEqual(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, ok := params["a"]
	if !ok {
		return Failure("a parameter required")
	}
	b, ok := params["b"]
	if !ok {
		return Failure("b parameter required")
	}

	opts := []mathutil.TolOption{
		mathutil.RelTol(floatParam(params, "rel_tol", 1e-9)),
		mathutil.AbsTol(floatParam(params, "abs_tol", 0)),
	}

	result, err := mathutil.ApproxEqual(a, b, opts...)
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"result": result})
}
