package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_NilAndEmpty(t *testing.T) {
	var s *Snapshot
	assert.False(t, s.Exists())
	assert.Equal(t, 0, s.Len())
	s.ForEach(func(Child) bool { t.Fatal("must not be called"); return false })

	empty := NewSnapshot(NewQuery("savedata"), nil)
	assert.False(t, empty.Exists())
}

func TestSnapshot_ForEachOrderAndStop(t *testing.T) {
	q := NewQuery("/savedata/").OrderByChild("timestamp")
	assert.Equal(t, "savedata", q.Path)

	s := NewSnapshot(q, []Child{
		{Key: "x", Value: Fields{"timestamp": 300}},
		{Key: "y", Value: Fields{"timestamp": 100}},
		{Key: "z", Value: Fields{"timestamp": 200}},
	})
	assert.True(t, s.Exists())
	assert.Equal(t, 3, s.Len())

	var seen []string
	s.ForEach(func(c Child) bool {
		seen = append(seen, c.Key)
		return len(seen) == 2
	})
	assert.Equal(t, []string{"y", "z"}, seen)
}
