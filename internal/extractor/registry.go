package extractor

import (
	"fmt"

	"docextractor/internal/domain"
	"docextractor/internal/port"
)

// Registry dispatches to a DocumentExtractor by provider tag.
type Registry struct {
	extractors map[domain.Provider]port.DocumentExtractor
}

// NewRegistry creates a Registry from the given adapters.
func NewRegistry(extractors map[domain.Provider]port.DocumentExtractor) *Registry {
	m := make(map[domain.Provider]port.DocumentExtractor, len(extractors))
	for p, e := range extractors {
		m[p] = e
	}
	return &Registry{extractors: m}
}

// Get returns the adapter registered for provider.
func (r *Registry) Get(provider domain.Provider) (port.DocumentExtractor, error) {
	e, ok := r.extractors[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProvider, provider)
	}
	return e, nil
}

// Providers lists the registered providers in domain.Providers order.
func (r *Registry) Providers() []domain.Provider {
	out := make([]domain.Provider, 0, len(r.extractors))
	for _, p := range domain.Providers {
		if _, ok := r.extractors[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
