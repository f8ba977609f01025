package calc

import (
	"context"

	"github.com/TomasMT1104/Lab-Final-IA/internal/mathutil"
	"github.com/TomasMT1104/Lab-Final-IA/internal/types"
)

// arithmeticOps handles validated arithmetic operations
type arithmeticOps struct{}

// GetTools returns arithmetic tool definitions
func (a *arithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "calc.add",
			Name:        "Add",
			Description: "Add two numbers (integer, real, or complex)",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First operand", Required: true},
				{Name: "b", Type: "number", Description: "Second operand", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calc.subtract",
			Name:        "Subtract",
			Description: "Subtract b from a",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "Minuend", Required: true},
				{Name: "b", Type: "number", Description: "Subtrahend", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calc.multiply",
			Name:        "Multiply",
			Description: "Multiply two numbers",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "First factor", Required: true},
				{Name: "b", Type: "number", Description: "Second factor", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calc.divide",
			Name:        "Divide",
			Description: "Divide a by b as floating point; zero divisor fails unless raise_on_zero is false",
			Parameters: []types.Parameter{
				{Name: "a", Type: "number", Description: "Dividend", Required: true},
				{Name: "b", Type: "number", Description: "Divisor", Required: true},
				{Name: "raise_on_zero", Type: "boolean", Description: "Fail on zero divisor (default true); false yields signed infinity", Required: false},
			},
			Returns: "number",
		},
		{
			ID:          "calc.power",
			Name:        "Power",
			Description: "Raise base to exponent",
			Parameters: []types.Parameter{
				{Name: "base", Type: "number", Description: "Base", Required: true},
				{Name: "exponent", Type: "number", Description: "Exponent", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calc.sqrt",
			Name:        "Square Root",
			Description: "Square root; negative input fails unless allow_complex is true",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Value", Required: true},
				{Name: "allow_complex", Type: "boolean", Description: "Return the principal complex root for negative input", Required: false},
			},
			Returns: "number",
		},
		{
			ID:          "calc.square",
			Name:        "Square",
			Description: "Multiply a number by itself",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Value", Required: true},
			},
			Returns: "number",
		},
	}
}

// Add adds two numbers
func (a *arithmeticOps) Add(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	valA, ok := params["a"]
	if !ok {
		return Failure("a parameter required")
	}
	valB, ok := params["b"]
	if !ok {
		return Failure("b parameter required")
	}

	v, err := mathutil.Add(valA, valB)
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"result": valueData(v)})
}

// Subtract subtracts b from a
func (a *arithmeticOps) Subtract(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	valA, ok := params["a"]
	if !ok {
		return Failure("a parameter required")
	}
	valB, ok := params["b"]
	if !ok {
		return Failure("b parameter required")
	}

	v, err := mathutil.Subtract(valA, valB)
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"result": valueData(v)})
}

// Multiply multiplies two numbers
func (a *arithmeticOps) Multiply(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	valA, ok := params["a"]
	if !ok {
		return Failure("a parameter required")
	}
	valB, ok := params["b"]
	if !ok {
		return Failure("b parameter required")
	}

	v, err := mathutil.Multiply(valA, valB)
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"result": valueData(v)})
}

// Divide divides a by b
func (a *arithmeticOps) Divide(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	valA, ok := params["a"]
	if !ok {
		return Failure("a parameter required")
	}
	valB, ok := params["b"]
	if !ok {
		return Failure("b parameter required")
	}

	var opts []mathutil.DivideOption
	if !boolParam(params, "raise_on_zero", true) {
		opts = append(opts, mathutil.InfOnZero())
	}

	v, err := mathutil.Divide(valA, valB, opts...)
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"result": valueData(v)})
}

// Power raises base to exponent
func (a *arithmeticOps) Power(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	base, ok := params["base"]
	if !ok {
		return Failure("base parameter required")
	}
	exponent, ok := params["exponent"]
	if !ok {
		return Failure("exponent parameter required")
	}

	v, err := mathutil.Power(intNarrowed(base), intNarrowed(exponent))
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"result": valueData(v)})
}

// Sqrt calculates the square root
func (a *arithmeticOps) Sqrt(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := params["x"]
	if !ok {
		return Failure("x parameter required")
	}

	var opts []mathutil.SqrtOption
	if boolParam(params, "allow_complex", false) {
		opts = append(opts, mathutil.AllowComplex())
	}

	v, err := mathutil.Sqrt(x, opts...)
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"result": valueData(v)})
}

// Square multiplies a number by itself
func (a *arithmeticOps) Square(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := params["x"]
	if !ok {
		return Failure("x parameter required")
	}

	v, err := mathutil.Square(x)
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"result": valueData(v)})
}
