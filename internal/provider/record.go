package provider

import "fmt"

// FromRecord builds a Provider from a decoded record. Fields with an unexpected
// type are left at their zero value.
func FromRecord(raw map[string]any) *Provider {
	p := &Provider{
		ID:            str(raw, "id"),
		DisplayName:   str(raw, "display_name"),
		Description:   str(raw, "description"),
		Website:       str(raw, "website"),
		EstimatedTime: str(raw, "estimated_time"),
		SchemaVersion: str(raw, "schema_version"),
		Version:       str(raw, "version"),
		LastVerified:  str(raw, "last_verified"),
		Category:      strs(raw, "category"),
		AuthTypes:     strs(raw, "auth_types"),
		Prerequisites: strs(raw, "prerequisites"),
		Gotchas:       strs(raw, "gotchas"),
		Raw:           raw,
	}
	for _, o := range records(raw, "outputs") {
		p.Outputs = append(p.Outputs, Output{
			Key:         str(o, "key"),
			Description: str(o, "description"),
			Sensitive:   boolean(o, "sensitive"),
		})
	}
	for _, s := range records(raw, "steps") {
		p.Steps = append(p.Steps, stepFromRecord(s))
	}
	return p
}

func stepFromRecord(raw map[string]any) Step {
	s := Step{
		ID:              str(raw, "id"),
		Type:            StepType(str(raw, "type")),
		Message:         str(raw, "message"),
		Validation:      str(raw, "validation"),
		ValidationError: str(raw, "validation_error"),
		URL:             str(raw, "url"),
		Command:         str(raw, "command"),
		Value:           str(raw, "value"),
		OutputKey:       str(raw, "output_key"),
		Method:          str(raw, "method"),
		ResumeHint:      str(raw, "resume_hint"),
		Fields:          raw,
	}
	for _, c := range records(raw, "choices") {
		s.Choices = append(s.Choices, Choice{Label: str(c, "label"), Next: str(c, "next")})
	}
	return s
}

func str(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case nil:
		return ""
	case bool, int, int64, float64:
		return fmt.Sprint(v)
	default:
		return ""
	}
}

func strs(m map[string]any, key string) []string {
	switch v := m[key].(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func boolean(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func records(m map[string]any, key string) []map[string]any {
	items, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if sub, ok := item.(map[string]any); ok {
			out = append(out, sub)
		}
	}
	return out
}
