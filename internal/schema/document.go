package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/takumiyoshikawa/rcschema/internal/registry"
)

// Draft is the JSON Schema dialect of generated documents.
const Draft = "http://json-schema.org/draft-07/schema#"

// Header holds the optional top-level metadata of a generated document.
type Header struct {
	ID          string
	Title       string
	Description string
}

// Generate builds the complete schema document for types and returns it
// indented. When the assembled fragments do not form valid JSON, which can
// happen when a type is skipped, the error is logged and the document is
// returned as assembled.
func (a *Assembler) Generate(types []registry.ConfigurationType, header Header) []byte {
	var properties, definitions strings.Builder
	a.Build(types, &properties, &definitions)

	var doc strings.Builder
	fmt.Fprintf(&doc, `{"$schema":%s,`, quote(Draft))
	if header.ID != "" {
		fmt.Fprintf(&doc, `"$id":%s,`, quote(header.ID))
	}
	if header.Title != "" {
		fmt.Fprintf(&doc, `"title":%s,`, quote(header.Title))
	}
	if header.Description != "" {
		fmt.Fprintf(&doc, `"description":%s,`, quote(header.Description))
	}
	fmt.Fprintf(&doc, `"type":"object","properties":{%s},"definitions":{%s}}`, properties.String(), definitions.String())

	var out bytes.Buffer
	if err := json.Indent(&out, []byte(doc.String()), "", "  "); err != nil {
		a.logError(err).Msg("assembled schema is not valid JSON")
		return []byte(doc.String())
	}
	return out.Bytes()
}
