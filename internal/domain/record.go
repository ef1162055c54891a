package domain

import "strings"

// Record is the open-keyed structured result of a transcript extraction.
// Values are whatever the JSON decoder produced: string, float64, bool, nil,
// []any for arrays and map[string]any for nested entities (conjoint, enfants
// entries, BAE blocks). Known keys are validated and normalized by the
// guardrails and normalization layers; unknown keys pass through unchanged.
type Record map[string]any

// StringValue returns the trimmed string stored under key, or "" if the key
// is absent or holds a non-string value.
func (r Record) StringValue(key string) string {
	if v, ok := r[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// Sub returns the nested record stored under key, or nil if the key is
// absent or holds anything other than an object.
func (r Record) Sub(key string) Record {
	switch v := r[key].(type) {
	case Record:
		return v
	case map[string]any:
		return Record(v)
	default:
		return nil
	}
}

// List returns the array stored under key, or nil if the key is absent or
// holds anything other than an array.
func (r Record) List(key string) []any {
	if v, ok := r[key].([]any); ok {
		return v
	}
	return nil
}

// BoolValue returns the boolean stored under key; ok is false if the key is
// absent or holds a non-boolean value.
func (r Record) BoolValue(key string) (value, ok bool) {
	v, ok := r[key].(bool)
	return v, ok
}

// IsEmpty reports whether a value counts as "no information": nil or a
// blank string. Zero numbers and false booleans are information.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
