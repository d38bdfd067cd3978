package partscope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection(t *testing.T) {
	s := NewSelection()
	assert.True(t, s.Empty())

	assert.True(t, s.Toggle(3))
	assert.True(t, s.Toggle(1))
	assert.True(t, s.Contains(3))
	assert.Equal(t, []RecordID{1, 3}, s.IDs())

	assert.False(t, s.Toggle(3))
	assert.False(t, s.Contains(3))
	assert.Equal(t, 1, s.Len())

	s.Clear()
	assert.True(t, s.Empty())
	assert.Empty(t, s.IDs())
}

func TestSelection_SelectAllNeverRemoves(t *testing.T) {
	s := NewSelection()
	s.Toggle(2)
	added := s.SelectAll([]RecordID{1, 2, 3})
	assert.Equal(t, 2, added)
	assert.Equal(t, []RecordID{1, 2, 3}, s.IDs())

	assert.Equal(t, 0, s.SelectAll([]RecordID{1, 2}))
	assert.Equal(t, 3, s.Len())
}
