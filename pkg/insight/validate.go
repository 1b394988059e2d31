package insight

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"google.golang.org/genai"
)

// validate walks a decoded JSON value against the declared schema. It is the
// enforcement half of the registry: required fields must be present, non-null
// and (for strings) non-empty, enum fields must hold a declared member, and
// integer bounds must hold. Returns the first violation found.
func validate(schema *genai.Schema, v any, path string) error {
	if schema == nil {
		return nil
	}
	switch schema.Type {
	case genai.TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return &InvalidValueError{Path: orRoot(path), Reason: "expected an object"}
		}
		for _, name := range schema.Required {
			child, present := obj[name]
			if !present || child == nil {
				return &MissingFieldError{Path: join(path, name)}
			}
			if s, isStr := child.(string); isStr && strings.TrimSpace(s) == "" {
				return &MissingFieldError{Path: join(path, name)}
			}
		}
		for _, name := range sortedKeys(schema.Properties) {
			child, present := obj[name]
			if !present || child == nil {
				continue // absence of optional fields is fine, required handled above
			}
			if err := validate(schema.Properties[name], child, join(path, name)); err != nil {
				return err
			}
		}
		return nil

	case genai.TypeArray:
		arr, ok := v.([]any)
		if !ok {
			return &InvalidValueError{Path: orRoot(path), Reason: "expected an array"}
		}
		for i, item := range arr {
			p := fmt.Sprintf("%s[%d]", path, i)
			if item == nil {
				return &MissingFieldError{Path: p}
			}
			if s, isStr := item.(string); isStr && strings.TrimSpace(s) == "" {
				return &InvalidValueError{Path: p, Reason: "empty string"}
			}
			if err := validate(schema.Items, item, p); err != nil {
				return err
			}
		}
		return nil

	case genai.TypeString:
		s, ok := v.(string)
		if !ok {
			return &InvalidValueError{Path: orRoot(path), Reason: "expected a string"}
		}
		if len(schema.Enum) > 0 && !contains(schema.Enum, s) {
			return &InvalidEnumError{Path: orRoot(path), Value: s}
		}
		return nil

	case genai.TypeInteger:
		n, ok := v.(float64)
		if !ok {
			return &InvalidValueError{Path: orRoot(path), Reason: "expected an integer"}
		}
		if n != math.Trunc(n) {
			return &InvalidValueError{Path: orRoot(path), Reason: "not a whole number"}
		}
		if schema.Minimum != nil && n < *schema.Minimum {
			return &InvalidValueError{Path: orRoot(path), Reason: fmt.Sprintf("must be >= %g", *schema.Minimum)}
		}
		return nil

	case genai.TypeNumber:
		if _, ok := v.(float64); !ok {
			return &InvalidValueError{Path: orRoot(path), Reason: "expected a number"}
		}
		return nil

	case genai.TypeBoolean:
		if _, ok := v.(bool); !ok {
			return &InvalidValueError{Path: orRoot(path), Reason: "expected a boolean"}
		}
		return nil
	}
	return nil
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func orRoot(path string) string {
	if path == "" {
		return "$"
	}
	return path
}

func sortedKeys(m map[string]*genai.Schema) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(hay []string, needle string) bool {
	for _, h := range hay {
		if h == needle {
			return true
		}
	}
	return false
}
