package commands

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func decodeSchema(t *testing.T, data string) (map[string]any, map[string]any) {
	t.Helper()
	var doc map[string]any
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		t.Fatalf("schema is not valid JSON: %v\n%s", err, data)
	}
	return doc["properties"].(map[string]any), doc["definitions"].(map[string]any)
}

func TestSchemaCmdBuiltin(t *testing.T) {
	stdout, stderr, err := run(t, "schema")
	if err != nil {
		t.Fatalf("schema error: %v", err)
	}
	if stderr != "" {
		t.Errorf("unexpected diagnostics: %s", stderr)
	}

	props, defs := decodeSchema(t, stdout)
	for _, name := range []string{"jvmApplication", "applet"} {
		if _, ok := props[name]; !ok {
			t.Errorf("property %q missing", name)
		}
		if _, ok := defs[name+"RC"]; !ok {
			t.Errorf("definition %q missing", name+"RC")
		}
	}
}

func TestSchemaCmdRegistry(t *testing.T) {
	stdout, stderr, err := run(t, "schema", "--registry", "testdata/registry.yml", "--log-format", "json")
	if err != nil {
		t.Fatalf("schema error: %v", err)
	}

	props, defs := decodeSchema(t, stdout)
	for _, name := range []string{"jvmApplication", "applet", "gradle", "docker", "shell", "remote"} {
		if _, ok := props[name]; !ok {
			t.Errorf("property %q missing", name)
		}
	}
	for _, name := range []string{"jvmApplicationRC", "appletRC", "gradleRC", "shellRC"} {
		if _, ok := defs[name]; !ok {
			t.Errorf("definition %q missing", name)
		}
	}
	for _, name := range []string{"dockerRC", "remoteRC"} {
		if _, ok := defs[name]; ok {
			t.Errorf("definition %q should not be written", name)
		}
	}

	docker := props["docker"].(map[string]any)["properties"].(map[string]any)
	if _, ok := docker["dockerImage"]; !ok {
		t.Errorf("docker factory placeholders = %v", docker)
	}
	if _, ok := props["shell"].(map[string]any)["description"]; ok {
		t.Error("shell description equals its property name and should be omitted")
	}

	levels := map[string]int{}
	scanner := bufio.NewScanner(strings.NewReader(stderr))
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", scanner.Text(), err)
		}
		levels[entry["level"].(string)]++
	}
	if levels["warn"] != 1 || levels["error"] != 1 {
		t.Errorf("diagnostics by level = %v, want one warning and one error\n%s", levels, stderr)
	}
}

func TestSchemaCmdOutputFile(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "schemas", "rc.schema.json")
	stdout, _, err := run(t, "schema", "-o", outputFile, "--title", "Project run configurations")
	if err != nil {
		t.Fatalf("schema error: %v", err)
	}
	if !strings.Contains(stdout, "JSON Schema written to "+outputFile) {
		t.Errorf("stdout = %q", stdout)
	}

	data, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("reading schema: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	if doc["title"] != "Project run configurations" || doc["$id"] != defaultSchemaID {
		t.Errorf("title = %v, $id = %v", doc["title"], doc["$id"])
	}
}

func TestSchemaCmdNoTypes(t *testing.T) {
	if _, _, err := run(t, "schema", "--no-builtin"); err == nil {
		t.Error("schema should fail without any configuration type")
	}
}

func TestSchemaCmdMissingRegistry(t *testing.T) {
	if _, _, err := run(t, "schema", "-r", "testdata/missing.yml"); err == nil {
		t.Error("schema should fail for a missing registry file")
	}
}

func TestSchemaCmdInvalidLogLevel(t *testing.T) {
	if _, _, err := run(t, "schema", "--log-level", "loud"); err == nil {
		t.Error("schema should fail for an unknown log level")
	}
}

func TestTypesCmd(t *testing.T) {
	stdout, _, err := run(t, "types", "-r", "testdata/registry.yml", "--no-builtin")
	if err != nil {
		t.Fatalf("types error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want header and 4 types:\n%s", len(lines), stdout)
	}
	want := [][]string{
		{"ID", "PROPERTY", "FACTORIES", "STATUS"},
		{"GradleRunConfiguration", "gradle", "1", "ok"},
		{"docker", "docker", "2", "several"},
		{"shell", "shell", "1", "any"},
		{"Remote", "remote", "0", "no"},
	}
	for i, fields := range want {
		got := strings.Fields(lines[i])
		for j, field := range fields {
			if j >= len(got) || got[j] != field {
				t.Errorf("line %d = %q, want fields %v", i, lines[i], fields)
				break
			}
		}
	}
}

func TestManifestSchemaCmd(t *testing.T) {
	stdout, _, err := run(t, "manifest-schema")
	if err != nil {
		t.Fatalf("manifest-schema error: %v", err)
	}
	if !json.Valid([]byte(stdout)) {
		t.Errorf("output is not valid JSON:\n%s", stdout)
	}
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if !strings.HasPrefix(stdout, "rcschema ") {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stdout, "schema dialect: http://json-schema.org/draft-07/schema#") {
		t.Errorf("stdout does not name the schema dialect: %q", stdout)
	}
}
