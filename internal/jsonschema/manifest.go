package jsonschema

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/takumiyoshikawa/rcschema/internal/config"
)

// ManifestSchema creates a JSON Schema for registry manifest files, for
// editor autocomplete and validation.
func ManifestSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Use yaml struct tags for property names instead of Go field names.
		FieldNameTag: "yaml",
	}

	s := r.Reflect(&config.Manifest{})

	s.ID = "https://raw.githubusercontent.com/takumiyoshikawa/rcschema/main/registry.schema.json"
	s.Title = "rcschema registry"
	s.Description = "Schema for rcschema registry manifests (registry.yml)"

	return json.MarshalIndent(s, "", "  ")
}
