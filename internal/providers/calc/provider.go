package calc

import (
	"context"
	"fmt"

	"github.com/TomasMT1104/Lab-Final-IA/internal/types"
)

// Provider implements validated numeric operations
type Provider struct {
	arithmetic *arithmeticOps
	integers   *integerOps
	stats      *statsOps
	utility    *utilityOps
}

// NewProvider creates a modular calc provider
func NewProvider() *Provider {
	return &Provider{
		arithmetic: &arithmeticOps{},
		integers:   &integerOps{},
		stats:      &statsOps{},
		utility:    &utilityOps{},
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.arithmetic.GetTools()...)
	tools = append(tools, p.integers.GetTools()...)
	tools = append(tools, p.stats.GetTools()...)
	tools = append(tools, p.utility.GetTools()...)

	return types.Service{
		ID:          "calc",
		Name:        "Calc Service",
		Description: "Validated numeric operations (arithmetic, number theory, statistics, utilities)",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"number_theory",
			"statistics",
			"utilities",
		},
		Tools: tools,
	}
}

// Execute routes to the appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Arithmetic operations
	case "calc.add":
		return p.arithmetic.Add(ctx, params, appCtx)
	case "calc.subtract":
		return p.arithmetic.Subtract(ctx, params, appCtx)
	case "calc.multiply":
		return p.arithmetic.Multiply(ctx, params, appCtx)
	case "calc.divide":
		return p.arithmetic.Divide(ctx, params, appCtx)
	case "calc.power":
		return p.arithmetic.Power(ctx, params, appCtx)
	case "calc.sqrt":
		return p.arithmetic.Sqrt(ctx, params, appCtx)
	case "calc.square":
		return p.arithmetic.Square(ctx, params, appCtx)

	// Number theory
	case "calc.factorial":
		return p.integers.Factorial(ctx, params, appCtx)
	case "calc.gcd":
		return p.integers.GCD(ctx, params, appCtx)
	case "calc.lcm":
		return p.integers.LCM(ctx, params, appCtx)
	case "calc.is_prime":
		return p.integers.IsPrime(ctx, params, appCtx)

	// Statistics
	case "calc.mean":
		return p.stats.Mean(ctx, params, appCtx)
	case "calc.median":
		return p.stats.Median(ctx, params, appCtx)
	case "calc.mode":
		return p.stats.Mode(ctx, params, appCtx)
	case "calc.variance":
		return p.stats.Variance(ctx, params, appCtx)
	case "calc.stddev":
		return p.stats.StdDev(ctx, params, appCtx)

	// Utilities
	case "calc.clamp":
		return p.utility.Clamp(ctx, params, appCtx)
	case "calc.approx_equal":
		return p.utility.ApproxEqual(ctx, params, appCtx)

	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
