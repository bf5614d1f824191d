package schema

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decode parses a YAML parameter document into a Record. Unknown
// top-level keys are rejected (P10: "parameter records containing
// unknown keys are rejected with an error carrying the unknown key
// names"), since yaml.v3's default decoding silently ignores them.
func Decode(r io.Reader) (*Record, error) {
	var doc yaml.Node
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("schema: decode document: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return &Record{}, nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fieldErrorf("<document>", nil, "expected a mapping of parameter names to values", nil)
	}

	allowed := recordFieldNames()
	var unknown []string
	for i := 0; i < len(root.Content); i += 2 {
		key := root.Content[i].Value
		if !allowed[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(unknown, ", "))
	}

	var rec Record
	if err := root.Decode(&rec); err != nil {
		return nil, fmt.Errorf("schema: decode record: %w", err)
	}
	return &rec, nil
}

// recordFieldNames returns the set of yaml tag names declared on
// Record, derived once via reflection so the allow-list can never
// drift from the struct definition.
func recordFieldNames() map[string]bool {
	names := make(map[string]bool)
	t := reflect.TypeOf(Record{})
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		if name == "-" || name == "" {
			continue
		}
		names[name] = true
	}
	return names
}
