package calc

import (
	gomath "math"

	"github.com/TomasMT1104/Lab-Final-IA/internal/mathutil"
	"github.com/TomasMT1104/Lab-Final-IA/internal/types"
)

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result for protocol-level problems (missing or
// malformed params) that never reached the math core.
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// failureFrom converts a math core error into a failed result carrying the
// error kind discriminant, so callers branch on kind instead of message text.
func failureFrom(err error) (*types.Result, error) {
	msg := err.Error()
	result := &types.Result{Success: false, Error: &msg}
	if kind := mathutil.KindOf(err); kind != "" {
		result.ErrorKind = &kind
	}
	return result, nil
}

// intNarrowed narrows an integral float64 param (the JSON encoding of an
// integer) to int64 so the integer-only operations see a true integer.
// Non-integral floats are returned untouched so the math core reports the
// non-integer failure itself.
func intNarrowed(val interface{}) interface{} {
	f, ok := val.(float64)
	if !ok {
		return val
	}
	if f == gomath.Trunc(f) && !gomath.IsInf(f, 0) {
		return int64(f)
	}
	return val
}

// list extracts an array parameter, narrowing integral floats per element.
func list(params map[string]interface{}, key string) ([]interface{}, bool) {
	arr, ok := params[key].([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]interface{}, len(arr))
	for i, v := range arr {
		out[i] = intNarrowed(v)
	}
	return out, true
}

// boolParam extracts a bool with a default
func boolParam(params map[string]interface{}, key string, def bool) bool {
	if val, ok := params[key].(bool); ok {
		return val
	}
	return def
}

// floatParam extracts a float64 with a default
func floatParam(params map[string]interface{}, key string, def float64) float64 {
	if val, ok := params[key].(float64); ok {
		return val
	}
	return def
}

// valueData renders a math core Value for the JSON result. Complex values
// become {"re": ..., "im": ...} objects.
func valueData(v mathutil.Value) interface{} {
	switch v.Kind() {
	case mathutil.KindInt:
		return v.Int64()
	case mathutil.KindComplex:
		c := v.Complex128()
		return map[string]interface{}{"re": real(c), "im": imag(c)}
	}
	return v.Float64()
}
