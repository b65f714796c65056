// Package schema assembles the JSON Schema of a run configuration file from
// the registered configuration types.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/takumiyoshikawa/rcschema/internal/propname"
	"github.com/takumiyoshikawa/rcschema/internal/registry"
)

// DefinitionSuffix is appended to a type's property name to form the key of
// its entry in "definitions".
const DefinitionSuffix = "RC"

// Report counts what a Build call produced and reported.
type Report struct {
	Types        int
	SkippedTypes int
	Definitions  int
	Warnings     int
	Errors       int
}

// Assembler writes the "properties" and "definitions" fragments of the
// schema. Invalid descriptors are logged and skipped; Build never fails.
// An Assembler is not safe for concurrent use.
type Assembler struct {
	Logger zerolog.Logger

	report Report
}

func NewAssembler(logger zerolog.Logger) *Assembler {
	return &Assembler{Logger: logger}
}

// Report returns the counters accumulated by previous Build calls.
func (a *Assembler) Report() Report {
	return a.report
}

// Build appends one property per configuration type to properties and the
// matching definitions to definitions. Both buffers receive comma-joined
// fragments without the enclosing braces.
//
// A type whose id cannot be normalized gets no property, but the comma that
// would follow it and its factory definitions are still written.
func (a *Assembler) Build(types []registry.ConfigurationType, properties, definitions *strings.Builder) {
	for i, ct := range types {
		a.report.Types++

		propertyName, err := propname.Normalize(ct.ConfigurationPropertyName(), propname.Subject{
			Kind: propname.KindType,
			ID:   ct.ID,
			Name: ct.DisplayName,
		})
		if err != nil {
			a.report.SkippedTypes++
			a.logError(err).Str("type", ct.ID).Msg("skipping configuration type")
		}

		definitionID := propertyName + DefinitionSuffix
		factoryProperties := a.describeFactories(ct, definitions, definitionID)

		if err == nil {
			writeProperty(properties, propertyName, definitionID, ct.Description, factoryProperties)
		}
		if i != len(types)-1 {
			properties.WriteByte(',')
		}
	}
}

func writeProperty(b *strings.Builder, propertyName, definitionID, description, factoryProperties string) {
	ref := quote("#/definitions/" + definitionID)

	fmt.Fprintf(b, `%s:{"type":["array","object"],`, quote(propertyName))
	if description != propertyName {
		fmt.Fprintf(b, `"description":%s,`, quote(description))
	}
	if factoryProperties != "" {
		fmt.Fprintf(b, `"properties":{%s},`, factoryProperties)
	}
	fmt.Fprintf(b, `"items":{"$ref":%s},"$ref":%s}`, ref, ref)
}

func (a *Assembler) logError(err error) *zerolog.Event {
	a.report.Errors++
	return a.Logger.Error().Err(err)
}

func (a *Assembler) logWarn() *zerolog.Event {
	a.report.Warnings++
	return a.Logger.Warn()
}

// quote returns s as a JSON string literal.
func quote(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		// Marshalling a string cannot fail.
		panic(err)
	}
	return string(data)
}
