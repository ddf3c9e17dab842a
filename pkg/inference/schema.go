package inference

import "github.com/google/jsonschema-go/jsonschema"

// Small constructors so callers can describe response shapes tersely.

func Object(required []string, props map[string]*jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object", Properties: props, Required: required}
}

func String() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string"}
}

func Integer() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "integer"}
}

func Number() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "number"}
}

func Boolean() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "boolean"}
}

func StringEnum(values ...string) *jsonschema.Schema {
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = v
	}
	return &jsonschema.Schema{Type: "string", Enum: enum}
}

func ArrayOf(items *jsonschema.Schema, minItems, maxItems int) *jsonschema.Schema {
	s := &jsonschema.Schema{Type: "array", Items: items}
	if minItems > 0 {
		s.MinItems = &minItems
	}
	if maxItems > 0 {
		s.MaxItems = &maxItems
	}
	return s
}
