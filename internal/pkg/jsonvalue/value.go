package jsonvalue

import (
	"strconv"
	"strings"
)

// Kind is the JSON type of a Value
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// Member is a single name/value pair of an object.
type Member struct {
	Key   string
	Value *Value
}

// Value is a decoded JSON value. Objects keep their members in source order.
//
// A nil *Value is valid everywhere and behaves like JSON null, so lookups on
// missing members can be chained without checks.
type Value struct {
	kind    Kind
	boolean bool
	text    string // string contents or raw number literal
	items   []*Value
	members []Member
	index   map[string]int
}

func Null() *Value { return &Value{kind: KindNull} }

func Bool(b bool) *Value { return &Value{kind: KindBool, boolean: b} }

func String(s string) *Value { return &Value{kind: KindString, text: s} }

// Number creates a number value from its literal, e.g. "42" or "1.5e3".
func Number(literal string) *Value { return &Value{kind: KindNumber, text: literal} }

func Int(n int64) *Value { return Number(strconv.FormatInt(n, 10)) }

func Array(items ...*Value) *Value {
	return &Value{kind: KindArray, items: items}
}

// Object creates an object from members in the given order.
func Object(members ...Member) *Value {
	v := &Value{kind: KindObject}
	for _, m := range members {
		v.Set(m.Key, m.Value)
	}
	return v
}

// Kind returns KindNull for a nil receiver.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

func (v *Value) IsNull() bool   { return v.Kind() == KindNull }
func (v *Value) IsObject() bool { return v.Kind() == KindObject }
func (v *Value) IsArray() bool  { return v.Kind() == KindArray }

// Set adds or replaces an object member. A replaced member keeps its original
// position. Set on a non-object is a no-op.
func (v *Value) Set(key string, val *Value) {
	if v == nil || v.kind != KindObject {
		return
	}
	if v.index == nil {
		v.index = make(map[string]int)
	}
	if i, ok := v.index[key]; ok {
		v.members[i].Value = val
		return
	}
	v.index[key] = len(v.members)
	v.members = append(v.members, Member{Key: key, Value: val})
}

// Has reports whether an object contains the key, even if its value is null.
func (v *Value) Has(key string) bool {
	if !v.IsObject() {
		return false
	}
	_, ok := v.index[key]
	return ok
}

// Field returns the member value or nil when the key is absent or the value
// is null.
func (v *Value) Field(key string) *Value {
	if !v.IsObject() {
		return nil
	}
	i, ok := v.index[key]
	if !ok {
		return nil
	}
	if val := v.members[i].Value; !val.IsNull() {
		return val
	}
	return nil
}

// Path walks nested objects: v.Path("homeTeam", "name").
func (v *Value) Path(keys ...string) *Value {
	cur := v
	for _, k := range keys {
		cur = cur.Field(k)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Members returns object members in source order.
func (v *Value) Members() []Member {
	if !v.IsObject() {
		return nil
	}
	return v.members
}

// Keys returns object keys in source order.
func (v *Value) Keys() []string {
	members := v.Members()
	keys := make([]string, 0, len(members))
	for _, m := range members {
		keys = append(keys, m.Key)
	}
	return keys
}

// Items returns array elements.
func (v *Value) Items() []*Value {
	if !v.IsArray() {
		return nil
	}
	return v.items
}

// Index returns the i-th array element or nil.
func (v *Value) Index(i int) *Value {
	items := v.Items()
	if i < 0 || i >= len(items) {
		return nil
	}
	return items[i]
}

// Len is the number of members of an object or elements of an array, 0 otherwise.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindObject:
		return len(v.members)
	case KindArray:
		return len(v.items)
	default:
		return 0
	}
}

// Str returns the string contents of a string value.
func (v *Value) Str() (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}
	return v.text, true
}

// StringOr returns the string contents or def for anything that is not a string.
func (v *Value) StringOr(def string) string {
	if s, ok := v.Str(); ok {
		return s
	}
	return def
}

// Int64 returns the integer value of a number. Fractional numbers are truncated.
func (v *Value) Int64() (int64, bool) {
	if v.Kind() != KindNumber {
		return 0, false
	}
	if n, err := strconv.ParseInt(v.text, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, false
	}
	return int64(f), true
}

func (v *Value) IntOr(def int64) int64 {
	if n, ok := v.Int64(); ok {
		return n
	}
	return def
}

func (v *Value) Float64() (float64, bool) {
	if v.Kind() != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (v *Value) BoolValue() (bool, bool) {
	if v.Kind() != KindBool {
		return false, false
	}
	return v.boolean, true
}

// TypeName describes the value for structure dumps. Numbers are reported as
// "int" or "float" depending on their literal.
func (v *Value) TypeName() string {
	switch v.Kind() {
	case KindNumber:
		if strings.ContainsAny(v.text, ".eE") {
			return "float"
		}
		return "int"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return v.Kind().String()
	}
}

// Display renders a scalar for reports; null or missing values render as def.
func (v *Value) Display(def string) string {
	switch v.Kind() {
	case KindString:
		return v.text
	case KindNumber:
		return v.text
	case KindBool:
		return strconv.FormatBool(v.boolean)
	case KindObject:
		return "{...}"
	case KindArray:
		return "[...]"
	default:
		return def
	}
}
