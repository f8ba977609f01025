package service

import (
	"context"
	"testing"

	"github.com/TomasMT1104/Lab-Final-IA/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	id string
}

func (m *mockProvider) Definition() types.Service {
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "A mock service for testing",
		Category:     types.CategoryMath,
		Capabilities: []string{"arithmetic"},
		Tools: []types.Tool{
			{
				ID:          m.id + ".test",
				Name:        "Test Tool",
				Description: "A test tool",
				Returns:     "number",
			},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return &types.Result{
		Success: true,
		Data:    map[string]interface{}{"tool": toolID},
	}, nil
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "calc"}))

	_, ok := r.Get("calc")
	assert.True(t, ok)
}

func TestRegisterEmptyID(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register(&mockProvider{id: ""}))
}

func TestList(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "calc"}))
	require.NoError(t, r.Register(&mockProvider{id: "other"}))

	assert.Len(t, r.List(nil), 2)

	cat := types.CategoryMath
	assert.Len(t, r.List(&cat), 2)
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "calc"}))

	result, err := r.Execute(context.Background(), "calc.test", nil, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "calc.test", result.Data["tool"])
}

func TestExecuteUnknownService(t *testing.T) {
	r := NewRegistry()

	_, err := r.Execute(context.Background(), "nope.test", nil, nil)
	assert.Error(t, err)

	_, err = r.Execute(context.Background(), "malformed", nil, nil)
	assert.Error(t, err)
}

func TestUnregister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "calc"}))
	r.Unregister("calc")

	_, ok := r.Get("calc")
	assert.False(t, ok)
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "calc"}))

	stats := r.Stats()
	assert.Equal(t, 1, stats["total_services"])
	assert.Equal(t, 1, stats["total_tools"])
}
