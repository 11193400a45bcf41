package listing

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TypeField is the record field used for category filtering.
const TypeField = "Type"

// Record is a single listing entry keyed by field name.
// Values are strings or values coercible to strings.
type Record map[string]any

// Dataset is the full ordered set of records loaded for a session.
// It is never modified after the Controller is constructed.
type Dataset []Record

// Field returns the string form of the named field.
// The second return value is false when the field is absent or nil.
func (r Record) Field(name string) (string, bool) {
	v, ok := r[name]
	if !ok || v == nil {
		return "", false
	}
	return strings.Join(leafStrings(nil, v), " "), true
}

// Keys returns the record's field names in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Strings returns the string form of every leaf value in the record,
// ordered by field name. Nil values are skipped; nested maps and slices
// contribute each of their leaves.
func (r Record) Strings() []string {
	out := make([]string, 0, len(r))
	for _, k := range r.Keys() {
		out = leafStrings(out, r[k])
	}
	return out
}

// leafStrings appends the string form of v's leaves to dst.
func leafStrings(dst []string, v any) []string {
	switch val := v.(type) {
	case nil:
		return dst
	case string:
		return append(dst, val)
	case []any:
		for _, item := range val {
			dst = leafStrings(dst, item)
		}
		return dst
	case []string:
		return append(dst, val...)
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			dst = leafStrings(dst, val[k])
		}
		return dst
	case Record:
		return leafStrings(dst, map[string]any(val))
	default:
		return append(dst, scalarString(val))
	}
}

// scalarString formats a non-container value the way a user would type it.
// Whole floats render without a fractional part so 50000.0 matches "50000".
func scalarString(v any) string {
	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	case []byte:
		return string(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
