// Package model contains the JSON value model.
package model

import (
	"encoding/json"
	"fmt"
	"hash"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNull
	KindObject
	KindArray
)

// Value is an immutable JSON value: string, number, bool, null, object or array
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	obj  map[string]*Value
	keys []string // object keys, sorted at construction
	arr  []*Value
}

// String creates a string value
func String(s string) *Value {
	return &Value{kind: KindString, str: s}
}

// Number creates a number value
func Number(n float64) *Value {
	return &Value{kind: KindNumber, num: n}
}

// Bool creates a boolean value
func Bool(b bool) *Value {
	return &Value{kind: KindBool, b: b}
}

// Null creates a null value
func Null() *Value {
	return &Value{kind: KindNull}
}

// Object creates an object value from the given fields
func Object(fields map[string]*Value) *Value {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Value{kind: KindObject, obj: fields, keys: keys}
}

// Array creates an array value from the given elements
func Array(elems []*Value) *Value {
	return &Value{kind: KindArray, arr: elems}
}

// Kind returns the variant of this value
func (v *Value) Kind() Kind { return v.kind }

// TypeDescription returns the JSON type name of this value
func (v *Value) TypeDescription() string {
	switch v.kind {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// IsContainer reports whether this value is an object or array
func (v *Value) IsContainer() bool {
	return v.kind == KindObject || v.kind == KindArray
}

// ChildCount returns the number of fields or elements, 0 for scalars
func (v *Value) ChildCount() int {
	switch v.kind {
	case KindObject:
		return len(v.obj)
	case KindArray:
		return len(v.arr)
	default:
		return 0
	}
}

// StringVal returns the string payload (valid for KindString)
func (v *Value) StringVal() string { return v.str }

// NumberVal returns the numeric payload (valid for KindNumber)
func (v *Value) NumberVal() float64 { return v.num }

// BoolVal returns the boolean payload (valid for KindBool)
func (v *Value) BoolVal() bool { return v.b }

// SortedKeys returns the object's keys in alphabetical order, nil for non-objects
func (v *Value) SortedKeys() []string {
	if v.kind != KindObject {
		return nil
	}
	return v.keys
}

// Field returns the value of the named object field
func (v *Value) Field(key string) (*Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	f, ok := v.obj[key]
	return f, ok
}

// At returns the array element at index i, nil when out of range
func (v *Value) At(i int) *Value {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return nil
	}
	return v.arr[i]
}

// Elements returns the array's elements in source order, nil for non-arrays
func (v *Value) Elements() []*Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// ScalarString returns the canonical string form of a scalar value.
// Containers return an empty string.
func (v *Value) ScalarString() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindNull:
		return "null"
	default:
		return ""
	}
}

// Equal reports structural equality: numbers by exact value, strings
// byte-for-byte, objects by equal key sets with pairwise-equal values,
// arrays by equal length and pairwise-equal elements in order.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	case KindNull:
		return true
	case KindObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for k, fv := range v.obj {
			ov, ok := other.obj[k]
			if !ok || !fv.Equal(ov) {
				return false
			}
		}
		return true
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i, e := range v.arr {
			if !e.Equal(other.arr[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Hash returns a structural FNV-1a hash of this value. Object fields are
// hashed in sorted key order so the hash is independent of map iteration.
func (v *Value) Hash() uint64 {
	h := fnv.New64a()
	v.writeHash(h)
	return h.Sum64()
}

func (v *Value) writeHash(h hash.Hash) {
	switch v.kind {
	case KindString:
		h.Write([]byte{'s'})
		h.Write([]byte(v.str))
	case KindNumber:
		h.Write([]byte{'n'})
		h.Write([]byte(v.ScalarString()))
	case KindBool:
		h.Write([]byte{'b'})
		h.Write([]byte(v.ScalarString()))
	case KindNull:
		h.Write([]byte{'z'})
	case KindObject:
		h.Write([]byte{'{'})
		for _, k := range v.keys {
			h.Write([]byte(k))
			h.Write([]byte{':'})
			v.obj[k].writeHash(h)
		}
		h.Write([]byte{'}'})
	case KindArray:
		h.Write([]byte{'['})
		for _, e := range v.arr {
			e.writeHash(h)
		}
		h.Write([]byte{']'})
	}
}

// EncodeJSON serializes the value to canonical JSON text: object keys in
// sorted order, and in pretty mode one element per line with braces and
// brackets on their own lines and a two-space indent unit.
func (v *Value) EncodeJSON(pretty bool) string {
	var sb strings.Builder
	v.encode(&sb, 0, pretty)
	return sb.String()
}

func (v *Value) encode(sb *strings.Builder, depth int, pretty bool) {
	switch v.kind {
	case KindString:
		sb.WriteString(quoteString(v.str))
	case KindNumber, KindBool, KindNull:
		sb.WriteString(v.ScalarString())
	case KindObject:
		if len(v.obj) == 0 {
			sb.WriteString("{ }")
			return
		}
		sb.WriteString("{")
		for i, k := range v.keys {
			if i > 0 {
				sb.WriteString(",")
			}
			if pretty {
				sb.WriteString("\n")
				writeIndent(sb, depth+1)
			}
			sb.WriteString(quoteString(k))
			sb.WriteString(" : ")
			v.obj[k].encode(sb, depth+1, pretty)
		}
		if pretty {
			sb.WriteString("\n")
			writeIndent(sb, depth)
		}
		sb.WriteString("}")
	case KindArray:
		if len(v.arr) == 0 {
			sb.WriteString("[ ]")
			return
		}
		sb.WriteString("[")
		for i, e := range v.arr {
			if i > 0 {
				sb.WriteString(",")
			}
			if pretty {
				sb.WriteString("\n")
				writeIndent(sb, depth+1)
			}
			e.encode(sb, depth+1, pretty)
		}
		if pretty {
			sb.WriteString("\n")
			writeIndent(sb, depth)
		}
		sb.WriteString("]")
	}
}

func writeIndent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}

// quoteString renders a JSON string literal including quotes and escapes
func quoteString(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		// marshalling a string cannot fail; keep the raw text as a fallback
		return `"` + s + `"`
	}
	return string(data)
}

// FromAny converts a decoded encoding/json value (nil, bool, float64,
// string, map[string]interface{}, []interface{}) into a Value
func FromAny(raw interface{}) (*Value, error) {
	switch x := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(x), nil
	case float64:
		return Number(x), nil
	case string:
		return String(x), nil
	case []interface{}:
		elems := make([]*Value, len(x))
		for i, e := range x {
			v, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return Array(elems), nil
	case map[string]interface{}:
		fields := make(map[string]*Value, len(x))
		for k, f := range x {
			v, err := FromAny(f)
			if err != nil {
				return nil, err
			}
			fields[k] = v
		}
		return Object(fields), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", raw)
	}
}

// Parse decodes JSON text into a Value
func Parse(data []byte) (*Value, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return FromAny(raw)
}

// ToAny converts a Value back into the plain interface{} shape used by
// encoding/json, for callers that need to re-serialize fragments
func (v *Value) ToAny() interface{} {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindNull:
		return nil
	case KindObject:
		m := make(map[string]interface{}, len(v.obj))
		for k, f := range v.obj {
			m[k] = f.ToAny()
		}
		return m
	case KindArray:
		s := make([]interface{}, len(v.arr))
		for i, e := range v.arr {
			s[i] = e.ToAny()
		}
		return s
	}
	return nil
}
