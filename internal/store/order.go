package store

import (
	"cmp"
	"encoding/json"
	"fmt"
	"slices"
)

// value classes in ascending sort order
const (
	classMissing = iota
	classBool
	classNumber
	classString
	classObject
)

// SortByChild orders children ascending by the named field, the same way
// the realtime database orders a child query: children without the field
// first, then false, true, numbers, strings (lexicographic) and finally
// nested objects. Equal values are ordered by key. An empty field sorts by
// key only.
func SortByChild(children []Child, field string) {
	slices.SortStableFunc(children, func(a, b Child) int {
		if field != "" {
			if c := compareValues(a.Value[field], b.Value[field]); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.Key, b.Key)
	})
}

func compareValues(a, b any) int {
	ca, cb := classOf(a), classOf(b)
	if ca != cb {
		return cmp.Compare(ca, cb)
	}

	switch ca {
	case classBool:
		ba, bb := a.(bool), b.(bool)
		switch {
		case ba == bb:
			return 0
		case !ba:
			return -1
		default:
			return 1
		}
	case classNumber:
		fa, _ := AsFloat(a)
		fb, _ := AsFloat(b)
		return cmp.Compare(fa, fb)
	case classString:
		return cmp.Compare(a.(string), b.(string))
	case classObject:
		return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
	return 0
}

func classOf(v any) int {
	if v == nil {
		return classMissing
	}
	if _, ok := v.(bool); ok {
		return classBool
	}
	if _, ok := v.(string); ok {
		return classString
	}
	if _, ok := AsFloat(v); ok {
		return classNumber
	}
	return classObject
}

// AsFloat converts any numeric representation a backend may return
// (decoded JSON, protobuf struct values, native integers) to float64.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// AsInt64 is AsFloat for integral fields such as millisecond timestamps.
func AsInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
	}
	f, ok := AsFloat(v)
	if !ok {
		return 0, false
	}
	return int64(f), true
}
