package calc

import (
	"context"

	"github.com/TomasMT1104/Lab-Final-IA/internal/mathutil"
	"github.com/TomasMT1104/Lab-Final-IA/internal/types"
)

// statsOps handles descriptive statistics
type statsOps struct{}

// GetTools returns statistics tool definitions
func (s *statsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "calc.mean",
			Name:        "Mean",
			Description: "Arithmetic mean of a non-empty sequence",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Sequence of numbers", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calc.median",
			Name:        "Median",
			Description: "Median; even-length input averages the middle pair",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Sequence of numbers", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "calc.mode",
			Name:        "Mode",
			Description: "All values of maximum frequency, sorted ascending",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Sequence of numbers", Required: true},
			},
			Returns: "array",
		},
		{
			ID:          "calc.variance",
			Name:        "Variance",
			Description: "Sample variance by default; population=true divides by n",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Sequence of numbers", Required: true},
				{Name: "population", Type: "boolean", Description: "Population variance (default false)", Required: false},
			},
			Returns: "number",
		},
		{
			ID:          "calc.stddev",
			Name:        "Standard Deviation",
			Description: "Square root of the corresponding variance",
			Parameters: []types.Parameter{
				{Name: "numbers", Type: "array", Description: "Sequence of numbers", Required: true},
				{Name: "population", Type: "boolean", Description: "Population stddev (default false)", Required: false},
			},
			Returns: "number",
		},
	}
}

// Mean calculates the arithmetic mean
func (s *statsOps) Mean(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := params["numbers"]
	if !ok {
		return Failure("numbers array required")
	}

	result, err := mathutil.Mean(numbers)
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"result": result})
}

// Median calculates the median
func (s *statsOps) Median(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := params["numbers"]
	if !ok {
		return Failure("numbers array required")
	}

	result, err := mathutil.Median(numbers)
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"result": result})
}

// Mode finds all most-frequent values
func (s *statsOps) Mode(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := params["numbers"]
	if !ok {
		return Failure("numbers array required")
	}

	modes, err := mathutil.Mode(numbers)
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"result": modes})
}

// Variance calculates sample or population variance
func (s *statsOps) Variance(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := params["numbers"]
	if !ok {
		return Failure("numbers array required")
	}

	var opts []mathutil.StatOption
	if boolParam(params, "population", false) {
		opts = append(opts, mathutil.Population())
	}

	result, err := mathutil.Variance(numbers, opts...)
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"result": result})
}

// StdDev calculates sample or population standard deviation
func (s *statsOps) StdDev(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := params["numbers"]
	if !ok {
		return Failure("numbers array required")
	}

	var opts []mathutil.StatOption
	if boolParam(params, "population", false) {
		opts = append(opts, mathutil.Population())
	}

	result, err := mathutil.StdDev(numbers, opts...)
	if err != nil {
		return failureFrom(err)
	}
	return Success(map[string]interface{}{"result": result})
}
