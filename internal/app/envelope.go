package app

import (
	"strconv"
	"strings"
)

/********** envelope checks **********/

// Every backend response is a {status, data} envelope. A payload is usable
// only when status == "success" AND the data key is present; both checks run
// before any field is read. An unusable payload is handled exactly like an
// absent one.

func usableData(p map[string]any) (any, bool) {
	if p == nil {
		return nil, false
	}
	if s, _ := p["status"].(string); s != "success" {
		return nil, false
	}
	d, ok := p["data"]
	if !ok || d == nil {
		return nil, false
	}
	return d, true
}

// usableMap validates the envelope and expects an object under data.
func usableMap(p map[string]any) (map[string]any, bool) {
	d, ok := usableData(p)
	if !ok {
		return nil, false
	}
	m, ok := d.(map[string]any)
	return m, ok
}

// usableList validates the envelope and expects an array under data.
func usableList(p map[string]any) ([]map[string]any, bool) {
	d, ok := usableData(p)
	if !ok {
		return nil, false
	}
	raw, ok := d.([]any)
	if !ok {
		return nil, false
	}
	return asMaps(raw), true
}

// objList reads a list of objects at key from an already-validated data map.
func objList(m map[string]any, key string) []map[string]any {
	raw, _ := m[key].([]any)
	return asMaps(raw)
}

func asMaps(raw []any) []map[string]any {
	out := make([]map[string]any, 0, len(raw))
	for _, it := range raw {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

/********** tiny lookup helpers **********/

// lookupStr returns the first non-empty string under the given keys.
// Numeric values render as their decimal form (booking ids sometimes arrive
// as numbers).
func lookupStr(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// lookupInt64 pulls an integer amount from number or numeric-string fields.
func lookupInt64(m map[string]any, keys ...string) int64 {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return int64(v)
		case int:
			return int64(v)
		case int64:
			return v
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				continue
			}
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return n
			}
		}
	}
	return 0
}
