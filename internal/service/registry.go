package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/TomasMT1104/Lab-Final-IA/internal/types"
)

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Registry manages service discovery and execution
type Registry struct {
	services sync.Map
}

// NewRegistry creates a new service registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a service provider
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}

	r.services.Store(def.ID, provider)
	return nil
}

// Unregister removes a service provider
func (r *Registry) Unregister(serviceID string) {
	r.services.Delete(serviceID)
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns all registered services
func (r *Registry) List(category *types.Category) []types.Service {
	var services []types.Service
	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})
	return services
}

// Execute routes a tool call to the provider owning it. Tool IDs use the
// service.tool form, so the segment before the first dot selects the
// provider.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	serviceID, _, ok := strings.Cut(toolID, ".")
	if !ok {
		return nil, fmt.Errorf("invalid tool ID: %s", toolID)
	}

	provider, found := r.Get(serviceID)
	if !found {
		return nil, fmt.Errorf("service not found: %s", serviceID)
	}

	return provider.Execute(ctx, toolID, params, appCtx)
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	totalServices := 0
	totalTools := 0
	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		totalServices++
		totalTools += len(provider.Definition().Tools)
		return true
	})

	return map[string]interface{}{
		"total_services": totalServices,
		"total_tools":    totalTools,
	}
}
