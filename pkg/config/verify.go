package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// VerifyAgainstEmbeddedSchema checks that every config value is described by the embedded JSON schema
// and enum values are allowed by it. Reports stale schema after config changes.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var schema map[string]any
	if err := json.Unmarshal([]byte(embeddedSchema), &schema); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if err := verifyProperties(schema, resolveRef(schema, schema), configMap, ""); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

func verifyProperties(schema, node, values map[string]any, prefix string) error {
	props, _ := node["properties"].(map[string]any)
	for key, val := range values {
		prop, ok := props[key].(map[string]any)
		if !ok {
			return fmt.Errorf("%s%s is not described by schema", prefix, key)
		}
		prop = resolveRef(schema, prop)

		if nested, ok := val.(map[string]any); ok {
			if err := verifyProperties(schema, prop, nested, prefix+key+"."); err != nil {
				return err
			}
			continue
		}

		if enum, ok := prop["enum"].([]any); ok && !slices.Contains(enum, val) {
			return fmt.Errorf("%s%s must be one of %v, got %v", prefix, key, enum, val)
		}
	}
	return nil
}

// resolveRef follows a local "#/$defs/Name" reference
func resolveRef(schema, node map[string]any) map[string]any {
	ref, ok := node["$ref"].(string)
	if !ok {
		return node
	}
	defs, _ := schema["$defs"].(map[string]any)
	if def, ok := defs[strings.TrimPrefix(ref, "#/$defs/")].(map[string]any); ok {
		return def
	}
	return node
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
