package models

import (
	"encoding/json"
	"maps"
)

// Attributes is a flattened attribute set decoded from a reddit response.
// Values are whatever encoding/json produces for an `any` target.
type Attributes map[string]any

func (a Attributes) Has(key string) bool {
	_, ok := a[key]
	return ok
}

func (a Attributes) String(key string) string {
	s, _ := a[key].(string)
	return s
}

func (a Attributes) Bool(key string) bool {
	b, _ := a[key].(bool)
	return b
}

func (a Attributes) Float(key string) float64 {
	switch v := a[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	}
	return 0
}

func (a Attributes) Int(key string) int {
	return int(a.Float(key))
}

func (a Attributes) Strings(key string) []string {
	values, _ := a[key].([]any)
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Clone returns a shallow copy. Nested maps and slices are shared.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return Attributes{}
	}
	return maps.Clone(a)
}

// asMap reports whether value is a JSON object, either decoded or already
// wrapped as Attributes.
func asMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, v != nil
	case Attributes:
		return v, v != nil
	}
	return nil, false
}
