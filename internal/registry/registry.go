// Package registry holds the configuration type descriptors that the schema
// generator walks.
package registry

import (
	"strings"
	"sync"
)

// OptionsDescriber appends JSON Schema property fragments for the fields of an
// options record. Fragments are comma-joined "name": {...} pairs without
// surrounding braces.
type OptionsDescriber interface {
	DescribeSchema(b *strings.Builder) error
}

// OptionsFactory returns a fresh options record holding its default values.
type OptionsFactory func() OptionsDescriber

type Factory struct {
	ID   string
	Name string
	// Options is nil when the factory has no typed options record.
	Options OptionsFactory
}

type ConfigurationType struct {
	ID string
	// PropertyName overrides ID as the source of the schema property name.
	PropertyName string
	DisplayName  string
	Description  string
	Factories    []Factory
}

// ConfigurationPropertyName returns the identifier the schema property name
// is derived from.
func (t ConfigurationType) ConfigurationPropertyName() string {
	if t.PropertyName != "" {
		return t.PropertyName
	}
	return t.ID
}

// Registry is an ordered collection of configuration types. Types are
// returned in registration order.
type Registry struct {
	mu    sync.RWMutex
	types []ConfigurationType
}

func New(types ...ConfigurationType) *Registry {
	r := &Registry{}
	r.Register(types...)
	return r
}

func (r *Registry) Register(types ...ConfigurationType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = append(r.types, types...)
}

// Types returns a snapshot of the registered types.
func (r *Registry) Types() []ConfigurationType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ConfigurationType, len(r.types))
	copy(out, r.types)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}
