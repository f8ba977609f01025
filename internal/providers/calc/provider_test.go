package calc

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderDefinition(t *testing.T) {
	p := NewProvider()
	def := p.Definition()

	assert.Equal(t, "calc", def.ID)
	assert.Len(t, def.Tools, 18)

	seen := make(map[string]bool)
	for _, tool := range def.Tools {
		assert.False(t, seen[tool.ID], "duplicate tool id %s", tool.ID)
		seen[tool.ID] = true
	}
}

func TestProviderArithmetic(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	t.Run("Add integers", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.add", map[string]interface{}{
			"a": 2, "b": 3,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, int64(5), result.Data["result"])
	})

	t.Run("Add promotes to real", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.add", map[string]interface{}{
			"a": 2, "b": 0.5,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, 2.5, result.Data["result"])
	})

	t.Run("Subtract", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.subtract", map[string]interface{}{
			"a": 10, "b": 3,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, int64(7), result.Data["result"])
	})

	t.Run("Multiply", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.multiply", map[string]interface{}{
			"a": 4, "b": 6,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, int64(24), result.Data["result"])
	})

	t.Run("Divide always real", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.divide", map[string]interface{}{
			"a": 10, "b": 4,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, 2.5, result.Data["result"])
	})

	t.Run("Divide by zero", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.divide", map[string]interface{}{
			"a": 1, "b": 0,
		}, nil)
		require.NoError(t, err)
		require.False(t, result.Success)
		require.NotNil(t, result.ErrorKind)
		assert.Equal(t, "division_by_zero", *result.ErrorKind)
	})

	t.Run("Divide by zero with raise_on_zero false", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.divide", map[string]interface{}{
			"a": 1, "b": 0, "raise_on_zero": false,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		f, ok := result.Data["result"].(float64)
		require.True(t, ok)
		assert.True(t, math.IsInf(f, 1))
	})

	t.Run("Power integer fast path", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.power", map[string]interface{}{
			"base": 2.0, "exponent": 10.0,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, int64(1024), result.Data["result"])
	})

	t.Run("Sqrt negative fails by default", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.sqrt", map[string]interface{}{
			"x": -4.0,
		}, nil)
		require.NoError(t, err)
		require.False(t, result.Success)
		require.NotNil(t, result.ErrorKind)
		assert.Equal(t, "invalid_range", *result.ErrorKind)
	})

	t.Run("Sqrt negative with allow_complex", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.sqrt", map[string]interface{}{
			"x": -4.0, "allow_complex": true,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		obj, ok := result.Data["result"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, 0.0, obj["re"])
		assert.Equal(t, 2.0, obj["im"])
	})

	t.Run("Square", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.square", map[string]interface{}{
			"x": 7,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, int64(49), result.Data["result"])
	})

	t.Run("Missing parameter", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.add", map[string]interface{}{
			"a": 1,
		}, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Nil(t, result.ErrorKind)
	})

	t.Run("Non-numeric parameter carries kind", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.add", map[string]interface{}{
			"a": "one", "b": 2,
		}, nil)
		require.NoError(t, err)
		require.False(t, result.Success)
		require.NotNil(t, result.ErrorKind)
		assert.Equal(t, "invalid_type", *result.ErrorKind)
	})
}

func TestProviderNumberTheory(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	t.Run("Factorial", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.factorial", map[string]interface{}{
			"n": 5.0,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, int64(120), result.Data["result"])
	})

	t.Run("Factorial of non-integer", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.factorial", map[string]interface{}{
			"n": 3.5,
		}, nil)
		require.NoError(t, err)
		require.False(t, result.Success)
		require.NotNil(t, result.ErrorKind)
		assert.Equal(t, "non_integer", *result.ErrorKind)
	})

	t.Run("Factorial of negative", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.factorial", map[string]interface{}{
			"n": -1.0,
		}, nil)
		require.NoError(t, err)
		require.False(t, result.Success)
		require.NotNil(t, result.ErrorKind)
		assert.Equal(t, "negative_factorial", *result.ErrorKind)
	})

	t.Run("GCD", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.gcd", map[string]interface{}{
			"numbers": []interface{}{12.0, 18.0, 24.0},
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, int64(6), result.Data["result"])
	})

	t.Run("LCM", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.lcm", map[string]interface{}{
			"numbers": []interface{}{4.0, 6.0},
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, int64(12), result.Data["result"])
	})

	t.Run("IsPrime", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.is_prime", map[string]interface{}{
			"n": 97.0,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, true, result.Data["result"])
	})
}

func TestProviderStatistics(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	data := []interface{}{1.0, 2.0, 2.0, 3.0, 4.0}

	t.Run("Mean", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.mean", map[string]interface{}{
			"numbers": data,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.InDelta(t, 2.4, result.Data["result"], 1e-12)
	})

	t.Run("Median", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.median", map[string]interface{}{
			"numbers": data,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, 2.0, result.Data["result"])
	})

	t.Run("Mode", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.mode", map[string]interface{}{
			"numbers": data,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, []float64{2.0}, result.Data["result"])
	})

	t.Run("Sample variance", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.variance", map[string]interface{}{
			"numbers": []interface{}{2.0, 4.0, 6.0},
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.InDelta(t, 4.0, result.Data["result"], 1e-12)
	})

	t.Run("Population variance", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.variance", map[string]interface{}{
			"numbers":    []interface{}{2.0, 4.0, 6.0},
			"population": true,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.InDelta(t, 8.0/3.0, result.Data["result"], 1e-12)
	})

	t.Run("Sample variance of single element", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.variance", map[string]interface{}{
			"numbers": []interface{}{5.0},
		}, nil)
		require.NoError(t, err)
		require.False(t, result.Success)
		require.NotNil(t, result.ErrorKind)
		assert.Equal(t, "insufficient_data", *result.ErrorKind)
	})

	t.Run("StdDev", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.stddev", map[string]interface{}{
			"numbers": []interface{}{2.0, 4.0, 6.0},
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.InDelta(t, 2.0, result.Data["result"], 1e-12)
	})

	t.Run("Empty sequence", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.mean", map[string]interface{}{
			"numbers": []interface{}{},
		}, nil)
		require.NoError(t, err)
		require.False(t, result.Success)
		require.NotNil(t, result.ErrorKind)
		assert.Equal(t, "empty_data", *result.ErrorKind)
	})
}

func TestProviderUtilities(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	t.Run("Clamp below range", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.clamp", map[string]interface{}{
			"x": -3.0, "low": 0.0, "high": 10.0,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, 0.0, result.Data["result"])
	})

	t.Run("Clamp inverted bounds", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.clamp", map[string]interface{}{
			"x": 1.0, "low": 10.0, "high": 0.0,
		}, nil)
		require.NoError(t, err)
		require.False(t, result.Success)
		require.NotNil(t, result.ErrorKind)
		assert.Equal(t, "invalid_range", *result.ErrorKind)
	})

	t.Run("ApproxEqual defaults", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.approx_equal", map[string]interface{}{
			"a": 1.0, "b": 1.0 + 1e-12,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, true, result.Data["result"])
	})

	t.Run("ApproxEqual absolute tolerance", func(t *testing.T) {
		result, err := p.Execute(ctx, "calc.approx_equal", map[string]interface{}{
			"a": 0.0, "b": 1e-10, "abs_tol": 1e-9,
		}, nil)
		require.NoError(t, err)
		require.True(t, result.Success)
		assert.Equal(t, true, result.Data["result"])
	})
}

func TestProviderUnknownTool(t *testing.T) {
	p := NewProvider()

	result, err := p.Execute(context.Background(), "calc.unknown", nil, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
}
