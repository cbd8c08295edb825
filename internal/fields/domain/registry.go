package domain

import (
	"fmt"
	"sort"
)

// FieldEntry pairs a registered field name with its options.
type FieldEntry struct {
	Name   string
	Option FieldOption
}

type fieldSet struct {
	names   []string
	options map[string]FieldOption
}

// Registry maps (record type, field name) to FieldOption.
//
// It is populated once at startup and frozen. AddField is not safe for concurrent use; once
// frozen the registry is read-only and may be shared freely between goroutines.
type Registry struct {
	types  map[string]*fieldSet
	frozen bool
}

// NewRegistry returns an empty, writable registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*fieldSet)}
}

// AddField registers or overwrites the options for a field. Registration order is kept so
// encode and decode walk fields deterministically.
func (r *Registry) AddField(recordType, fieldName string, opt FieldOption) error {
	if r.frozen {
		return ErrRegistryFrozen
	}
	if recordType == "" || fieldName == "" {
		return fmt.Errorf("%w: record type and field name are required", ErrInvalidRegistration)
	}

	set, ok := r.types[recordType]
	if !ok {
		set = &fieldSet{options: make(map[string]FieldOption)}
		r.types[recordType] = set
	}
	if _, exists := set.options[fieldName]; !exists {
		set.names = append(set.names, fieldName)
	}
	set.options[fieldName] = opt.Clone()

	return nil
}

// Fields returns the registered fields of recordType in registration order.
// Unknown record types yield an empty slice.
func (r *Registry) Fields(recordType string) []FieldEntry {
	set, ok := r.types[recordType]
	if !ok {
		return []FieldEntry{}
	}

	entries := make([]FieldEntry, 0, len(set.names))
	for _, name := range set.names {
		entries = append(entries, FieldEntry{Name: name, Option: set.options[name].Clone()})
	}
	return entries
}

// Field returns the options of a single field.
func (r *Registry) Field(recordType, fieldName string) (FieldOption, bool) {
	set, ok := r.types[recordType]
	if !ok {
		return FieldOption{}, false
	}
	opt, ok := set.options[fieldName]
	if !ok {
		return FieldOption{}, false
	}
	return opt.Clone(), true
}

// RecordTypes lists every record type with at least one registered field, sorted.
func (r *Registry) RecordTypes() []string {
	types := make([]string, 0, len(r.types))
	for t := range r.types {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.frozen
}
