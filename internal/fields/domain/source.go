package domain

import (
	"context"
	"fmt"
)

// Registration is a single discovered encrypted field.
type Registration struct {
	RecordType string
	FieldName  string
	Option     FieldOption
}

// MetadataSource discovers the encrypted fields of every managed record type.
type MetadataSource interface {
	Discover(ctx context.Context) ([]Registration, error)
}

// StaticSource is a MetadataSource backed by a fixed list, typically declared in code.
type StaticSource []Registration

// Discover returns a copy of the list.
func (s StaticSource) Discover(_ context.Context) ([]Registration, error) {
	out := make([]Registration, len(s))
	for i, reg := range s {
		reg.Option = reg.Option.Clone()
		out[i] = reg
	}
	return out, nil
}

// NewRegistryFromSource runs every source in order, registers what they discover, and
// returns the frozen registry. Later sources overwrite earlier ones for the same field.
func NewRegistryFromSource(ctx context.Context, sources ...MetadataSource) (*Registry, error) {
	registry := NewRegistry()

	for _, source := range sources {
		registrations, err := source.Discover(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to discover encrypted fields: %w", err)
		}
		for _, reg := range registrations {
			if err := registry.AddField(reg.RecordType, reg.FieldName, reg.Option); err != nil {
				return nil, fmt.Errorf("failed to register %s.%s: %w", reg.RecordType, reg.FieldName, err)
			}
		}
	}

	registry.Freeze()
	return registry, nil
}
