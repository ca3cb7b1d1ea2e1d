package validation

// Field declares the rules for one string field. Every rule of a field is
// evaluated, so a field with two independent rules may report two messages.
type Field struct {
	Name  string
	Rules []Rule
}

// Schema validates untyped key/value input against a fixed set of string fields.
type Schema struct {
	Fields []Field
}

// NewSchema builds a schema from its fields, in reporting order.
func NewSchema(fields ...Field) *Schema {
	return &Schema{Fields: fields}
}

// Validate checks input and returns the validated strings keyed by field name.
// Absent and non-string values are validated as the empty string.
// On failure the returned error is a *FieldErrors.
func (s *Schema) Validate(input map[string]any) (map[string]string, error) {
	values := make(map[string]string, len(s.Fields))
	errs := &FieldErrors{}

	for _, field := range s.Fields {
		value := stringValue(input, field.Name)
		values[field.Name] = value

		for _, rule := range field.Rules {
			if !rule.Check(value) {
				errs.Add(field.Name, rule.Message)
			}
		}
	}

	if errs.HasErrors() {
		return nil, errs
	}
	return values, nil
}

func stringValue(input map[string]any, key string) string {
	raw, ok := input[key]
	if !ok {
		return ""
	}
	switch v := raw.(type) {
	case string:
		return v
	case []string:
		// form values arrive as slices
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}
