package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind is the decoded type of an override Value.
type Kind int

const (
	KindNone Kind = iota
	KindInt
	KindString
	KindBool
	KindFloat
	KindStrings
	KindStringLists
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindFloat:
		return "float"
	case KindStrings:
		return "strings"
	case KindStringLists:
		return "string lists"
	}
	return "none"
}

// Value is a polymorphic override value. JSON decoding tries int, string,
// bool, float, string list and list of string lists in that order, the first
// successful decode wins. A value matching none of them is KindNone.
type Value struct {
	kind  Kind
	i     int64
	s     string
	b     bool
	f     float64
	list  []string
	lists [][]string
}

func IntValue(v int64) Value {
	return Value{kind: KindInt, i: v}
}

func StringValue(v string) Value {
	return Value{kind: KindString, s: v}
}

func BoolValue(v bool) Value {
	return Value{kind: KindBool, b: v}
}

func FloatValue(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

func StringsValue(v []string) Value {
	return Value{kind: KindStrings, list: v}
}

func StringListsValue(v [][]string) Value {
	return Value{kind: KindStringLists, lists: v}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsFloat accepts integer values too, payloads often drop the fraction.
func (v Value) AsFloat() (float64, bool) {
	if v.kind == KindInt {
		return float64(v.i), true
	}
	return v.f, v.kind == KindFloat
}

func (v Value) AsStrings() ([]string, bool) {
	return v.list, v.kind == KindStrings
}

func (v Value) AsStringLists() ([][]string, bool) {
	return v.lists, v.kind == KindStringLists
}

func (v *Value) UnmarshalJSON(data []byte) error {
	*v = Value{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var (
		i     int64
		s     string
		b     bool
		f     float64
		list  []string
		lists [][]string
	)
	switch {
	case json.Unmarshal(data, &i) == nil:
		*v = IntValue(i)
	case json.Unmarshal(data, &s) == nil:
		*v = StringValue(s)
	case json.Unmarshal(data, &b) == nil:
		*v = BoolValue(b)
	case json.Unmarshal(data, &f) == nil:
		*v = FloatValue(f)
	case json.Unmarshal(data, &list) == nil:
		*v = StringsValue(list)
	case json.Unmarshal(data, &lists) == nil:
		*v = StringListsValue(lists)
	}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.raw())
}

func (v Value) MarshalYAML() (any, error) {
	return v.raw(), nil
}

func (v Value) raw() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindString:
		return v.s
	case KindBool:
		return v.b
	case KindFloat:
		return v.f
	case KindStrings:
		return v.list
	case KindStringLists:
		return v.lists
	}
	return nil
}

func (v Value) GoString() string {
	return fmt.Sprintf("profile.Value{%s: %v}", v.kind, v.raw())
}
