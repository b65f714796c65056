package config

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/takumiyoshikawa/rcschema/internal/registry"
)

var optionTypes = []string{"string", "boolean", "integer", "number", "array", "object"}

type Option struct {
	Name        string   `yaml:"name" jsonschema:"required,description=Property name of the option in the run configuration file."`
	Type        string   `yaml:"type" jsonschema:"required,enum=string,enum=boolean,enum=integer,enum=number,enum=array,enum=object,description=JSON type of the option."`
	Items       string   `yaml:"items,omitempty" jsonschema:"enum=string,enum=boolean,enum=integer,enum=number,enum=object,description=JSON type of the array elements. Only valid when type is array."`
	Description string   `yaml:"description,omitempty" jsonschema:"description=Human readable description of the option."`
	Enum        []string `yaml:"enum,omitempty" jsonschema:"description=Allowed values. Only valid when type is string."`
	Default     any      `yaml:"default,omitempty" jsonschema:"description=Default value of the option."`
}

type Factory struct {
	ID   string `yaml:"id" jsonschema:"description=Factory id. The schema property name of the factory is derived from it."`
	Name string `yaml:"name,omitempty" jsonschema:"description=Name used in diagnostics. Defaults to the id."`
	// Options is nil when the factory declares no options record.
	Options []Option `yaml:"options,omitempty" jsonschema:"description=Options record of the factory. If omitted any options are accepted."`
}

type ConfigurationType struct {
	ID           string    `yaml:"id" jsonschema:"required,description=Configuration type id. The schema property name is derived from it."`
	PropertyName string    `yaml:"property_name,omitempty" jsonschema:"description=Overrides the id as the source of the schema property name."`
	DisplayName  string    `yaml:"display_name,omitempty" jsonschema:"description=Name used in diagnostics. Defaults to the id."`
	Description  string    `yaml:"description,omitempty" jsonschema:"description=Description of the schema property."`
	Factories    []Factory `yaml:"factories" jsonschema:"description=Factories of the configuration type. A type with several factories is described loosely."`
}

// Manifest lists configuration types to register in addition to the
// built-in ones.
type Manifest struct {
	Types []ConfigurationType `yaml:"types" jsonschema:"required,description=Configuration types in registration order."`
}

func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse registry file: %w", err)
	}

	if len(m.Types) == 0 {
		return nil, fmt.Errorf("at least one configuration type is required")
	}

	// Identifiers are not checked here: the schema generator reports and
	// skips the ones it cannot turn into property names.
	seen := make(map[string]bool, len(m.Types))
	for i, ct := range m.Types {
		if seen[ct.ID] {
			return nil, fmt.Errorf("types[%d]: configuration type %q is declared twice", i, ct.ID)
		}
		seen[ct.ID] = true

		for j, f := range ct.Factories {
			if err := validateOptions(f.Options); err != nil {
				return nil, fmt.Errorf("configuration type %q: factories[%d]: %w", ct.ID, j, err)
			}
		}
	}

	return &m, nil
}

func validateOptions(options []Option) error {
	names := make(map[string]bool, len(options))
	for i, o := range options {
		if o.Name == "" {
			return fmt.Errorf("options[%d] has empty name", i)
		}
		if names[o.Name] {
			return fmt.Errorf("option %q is declared twice", o.Name)
		}
		names[o.Name] = true

		if !slices.Contains(optionTypes, o.Type) {
			return fmt.Errorf("option %q: unsupported type %q (supported: %s)", o.Name, o.Type, strings.Join(optionTypes, ", "))
		}
		if o.Items != "" {
			if o.Type != "array" {
				return fmt.Errorf("option %q: items is only valid for array options", o.Name)
			}
			if o.Items == "array" || !slices.Contains(optionTypes, o.Items) {
				return fmt.Errorf("option %q: unsupported items type %q", o.Name, o.Items)
			}
		}
		if len(o.Enum) > 0 && o.Type != "string" {
			return fmt.Errorf("option %q: enum is only valid for string options", o.Name)
		}
	}
	return nil
}

func (ct ConfigurationType) EffectiveDisplayName() string {
	if ct.DisplayName != "" {
		return ct.DisplayName
	}
	return ct.ID
}

func (f Factory) EffectiveName() string {
	if f.Name != "" {
		return f.Name
	}
	return f.ID
}

// ConfigurationTypes converts the manifest into registry descriptors.
func (m *Manifest) ConfigurationTypes() []registry.ConfigurationType {
	types := make([]registry.ConfigurationType, 0, len(m.Types))
	for _, ct := range m.Types {
		rt := registry.ConfigurationType{
			ID:           ct.ID,
			PropertyName: ct.PropertyName,
			DisplayName:  ct.EffectiveDisplayName(),
			Description:  ct.Description,
		}
		for _, f := range ct.Factories {
			rf := registry.Factory{ID: f.ID, Name: f.EffectiveName()}
			if f.Options != nil {
				options := optionList(f.Options)
				rf.Options = func() registry.OptionsDescriber { return options }
			}
			rt.Factories = append(rt.Factories, rf)
		}
		types = append(types, rt)
	}
	return types
}

type optionList []Option

type optionSchema struct {
	Type        string        `json:"type"`
	Description string        `json:"description,omitempty"`
	Items       *optionSchema `json:"items,omitempty"`
	Enum        []string      `json:"enum,omitempty"`
	Default     any           `json:"default,omitempty"`
}

func (l optionList) DescribeSchema(b *strings.Builder) error {
	for i, o := range l {
		s := optionSchema{
			Type:        o.Type,
			Description: o.Description,
			Enum:        o.Enum,
			Default:     o.Default,
		}
		if o.Items != "" {
			s.Items = &optionSchema{Type: o.Items}
		}

		name, err := json.Marshal(o.Name)
		if err != nil {
			return fmt.Errorf("option %q: %w", o.Name, err)
		}
		property, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("option %q: %w", o.Name, err)
		}

		if i > 0 {
			b.WriteByte(',')
		}
		b.Write(name)
		b.WriteByte(':')
		b.Write(property)
	}
	return nil
}
