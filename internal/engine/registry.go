package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Registry stores engines and resolves a default.
type Registry struct {
	engines       map[string]Engine
	defaultEngine string
}

func NewRegistry(defaultEngine string) *Registry {
	normalizedDefault := normalizeEngineName(defaultEngine)
	if normalizedDefault == "" {
		normalizedDefault = "nllb"
	}

	return &Registry{
		engines:       make(map[string]Engine),
		defaultEngine: normalizedDefault,
	}
}

// NewRegistryFromEndpoint builds a registry with every known preset
// pointed at one sidecar endpoint.
func NewRegistryFromEndpoint(defaultEngine, endpoint string, timeout time.Duration) (*Registry, error) {
	registry := NewRegistry(defaultEngine)
	for _, name := range PresetNames() {
		remote, err := NewRemote(name, endpoint, timeout)
		if err != nil {
			return nil, err
		}
		if err := registry.Register(remote); err != nil {
			return nil, err
		}
	}

	if _, exists := registry.engines[registry.defaultEngine]; !exists {
		return nil, fmt.Errorf("default engine %q is not registered (available: %s)",
			registry.defaultEngine, strings.Join(registry.Names(), ", "))
	}
	return registry, nil
}

// Register adds one engine.
func (r *Registry) Register(e Engine) error {
	if r == nil {
		return fmt.Errorf("registry is nil")
	}
	if e == nil {
		return fmt.Errorf("engine is nil")
	}
	name := normalizeEngineName(e.Name())
	if name == "" {
		return fmt.Errorf("engine name is required")
	}
	r.engines[name] = e
	return nil
}

// Engine resolves an engine by name. Empty names use the configured default.
func (r *Registry) Engine(name string) (Engine, error) {
	if r == nil {
		return nil, fmt.Errorf("registry is nil")
	}
	if len(r.engines) == 0 {
		return nil, fmt.Errorf("no engines are registered")
	}

	resolved := normalizeEngineName(name)
	if resolved == "" {
		resolved = r.defaultEngine
	}
	if e, ok := r.engines[resolved]; ok {
		return e, nil
	}

	return nil, fmt.Errorf("engine %q is not registered (available: %s)", resolved, strings.Join(r.Names(), ", "))
}

func (r *Registry) DefaultEngine() string {
	if r == nil {
		return ""
	}
	return r.defaultEngine
}

func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeEngineName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
