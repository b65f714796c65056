package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/takumiyoshikawa/rcschema/internal/propname"
	"github.com/takumiyoshikawa/rcschema/internal/registry"
)

var errNoFactories = errors.New("factory list is empty")

// FactoryShape is how a configuration type's factories can be described.
type FactoryShape int

const (
	NoFactories FactoryShape = iota
	SeveralFactories
	AnyOptions
	DescribedOptions
)

func (s FactoryShape) String() string {
	switch s {
	case NoFactories:
		return "no factories"
	case SeveralFactories:
		return "several factories, options not described"
	case AnyOptions:
		return "any options"
	default:
		return "ok"
	}
}

// ClassifyFactories reports which definition, if any, ct gets.
func ClassifyFactories(ct registry.ConfigurationType) FactoryShape {
	switch {
	case len(ct.Factories) == 0:
		return NoFactories
	case len(ct.Factories) > 1:
		return SeveralFactories
	case ct.Factories[0].Options == nil:
		return AnyOptions
	}
	return DescribedOptions
}

// describeFactories writes the definition of ct under definitionID.
//
// A type with several factories gets no definition; instead the returned
// fragment holds an object placeholder per factory, to be embedded in the
// type's property.
func (a *Assembler) describeFactories(ct registry.ConfigurationType, definitions *strings.Builder, definitionID string) string {
	switch ClassifyFactories(ct) {
	case NoFactories:
		a.logError(fmt.Errorf("configuration type %q is not valid: %w", ct.DisplayName, errNoFactories)).
			Str("type", ct.ID).
			Msg("configuration type is not described")
		return ""
	case SeveralFactories:
		return a.factoryPlaceholders(ct.Factories)
	case AnyOptions:
		factory := ct.Factories[0]
		a.logWarn().
			Str("type", ct.ID).
			Str("factory", factory.Name).
			Msgf("configuration factory %q is not described because options are not defined", factory.Name)
		a.writeDefinition(definitions, definitionID, `"additionalProperties":true`)
		return ""
	}

	factory := ct.Factories[0]
	var optionProperties strings.Builder
	if err := factory.Options().DescribeSchema(&optionProperties); err != nil {
		a.logError(err).
			Str("type", ct.ID).
			Str("factory", factory.Name).
			Msg("describing factory options failed, accepting any options")
		a.writeDefinition(definitions, definitionID, `"additionalProperties":true`)
		return ""
	}

	a.writeDefinition(definitions, definitionID,
		fmt.Sprintf(`"properties":{%s},"additionalProperties":false`, optionProperties.String()))
	return ""
}

func (a *Assembler) factoryPlaceholders(factories []registry.Factory) string {
	// TODO: describe each factory's options once an entry can name the
	// factory it is created by.
	var b strings.Builder
	for _, factory := range factories {
		name, err := propname.Normalize(factory.ID, propname.Subject{
			Kind: propname.KindFactory,
			ID:   factory.ID,
			Name: factory.Name,
		})
		if err != nil {
			a.logError(err).Str("factory", factory.Name).Msg("skipping configuration factory")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `%s:{"type":"object"}`, quote(name))
	}
	return b.String()
}

func (a *Assembler) writeDefinition(definitions *strings.Builder, definitionID, body string) {
	a.report.Definitions++
	if definitions.Len() > 0 {
		definitions.WriteByte(',')
	}
	fmt.Fprintf(definitions, `%s:{%s}`, quote(definitionID), body)
}
