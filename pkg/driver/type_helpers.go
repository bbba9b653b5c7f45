// Safe type conversion helpers for values coming back from the graph store.
// Optional matches produce nulls and the driver returns loosely typed values,
// so every read goes through one of these.
package driver

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// AsNode safely converts a record value to dbtype.Node.
// Returns the node and true if successful, zero value and false otherwise.
func AsNode(v any) (dbtype.Node, bool) {
	if v == nil {
		return dbtype.Node{}, false
	}
	node, ok := v.(dbtype.Node)
	return node, ok
}

// AsString safely converts a record value to string.
func AsString(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// AsInt64 safely converts a record value to int64.
func AsInt64(v any) (int64, bool) {
	if v == nil {
		return 0, false
	}
	i, ok := v.(int64)
	return i, ok
}

// AsFloat64 safely converts a record value to float64. Integer values are
// widened; scores may arrive as either depending on how they were written.
func AsFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// AsBool safely converts a record value to bool.
func AsBool(v any) (bool, bool) {
	if v == nil {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// AsMap safely converts a record value to map[string]any.
func AsMap(v any) (map[string]any, bool) {
	if v == nil {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

// AsAnySlice safely converts a record value to []any.
func AsAnySlice(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	s, ok := v.([]any)
	return s, ok
}

// AsDate converts a graph-native date value to a plain calendar date
// (year/month/day passthrough, midnight UTC). Accepts dbtype.Date,
// time.Time, and ISO-8601 strings.
func AsDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case dbtype.Date:
		t := d.Time()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	case time.Time:
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), true
	case string:
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	default:
		return time.Time{}, false
	}
}
