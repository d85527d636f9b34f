package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(cs []Child) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Key)
	}
	return out
}

func TestSortByChild_NumbersAscending(t *testing.T) {
	cs := []Child{
		{Key: "a", Value: Fields{"timestamp": float64(100)}},
		{Key: "b", Value: Fields{"timestamp": int64(300)}},
		{Key: "c", Value: Fields{"timestamp": json.Number("200")}},
	}
	SortByChild(cs, "timestamp")
	assert.Equal(t, []string{"a", "c", "b"}, keys(cs))
}

func TestSortByChild_ClassOrder(t *testing.T) {
	cs := []Child{
		{Key: "obj", Value: Fields{"v": map[string]any{"x": 1}}},
		{Key: "str", Value: Fields{"v": "abc"}},
		{Key: "num", Value: Fields{"v": 5}},
		{Key: "true", Value: Fields{"v": true}},
		{Key: "false", Value: Fields{"v": false}},
		{Key: "missing", Value: Fields{"other": 1}},
	}
	SortByChild(cs, "v")
	assert.Equal(t, []string{"missing", "false", "true", "num", "str", "obj"}, keys(cs))
}

func TestSortByChild_TiesBrokenByKey(t *testing.T) {
	cs := []Child{
		{Key: "k3", Value: Fields{"timestamp": 1}},
		{Key: "k1", Value: Fields{"timestamp": 1}},
		{Key: "k2", Value: Fields{"timestamp": 0}},
	}
	SortByChild(cs, "timestamp")
	assert.Equal(t, []string{"k2", "k1", "k3"}, keys(cs))
}

func TestSortByChild_EmptyFieldSortsByKey(t *testing.T) {
	cs := []Child{{Key: "b"}, {Key: "a"}, {Key: "c"}}
	SortByChild(cs, "")
	assert.Equal(t, []string{"a", "b", "c"}, keys(cs))
}

func TestAsInt64(t *testing.T) {
	tests := []struct {
		in   any
		want int64
		ok   bool
	}{
		{float64(1709456700000), 1709456700000, true},
		{int64(42), 42, true},
		{json.Number("1709456700000"), 1709456700000, true},
		{7, 7, true},
		{"12", 0, false},
		{nil, 0, false},
	}
	for _, tt := range tests {
		got, ok := AsInt64(tt.in)
		require.Equal(t, tt.ok, ok, "%v", tt.in)
		require.Equal(t, tt.want, got, "%v", tt.in)
	}
}
