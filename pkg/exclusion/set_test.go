package exclusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := NewSet(9, 5, 9, 5)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []int64{5, 9}, s.IDs())
	assert.True(t, s.Has(5))
	assert.False(t, s.Has(7))

	s.Add(7)
	s.Add(7)
	assert.Equal(t, []int64{5, 7, 9}, s.IDs())

	s.Remove(5)
	s.Remove(100)
	assert.Equal(t, []int64{7, 9}, s.IDs())

	empty := NewSet()
	assert.NotNil(t, empty.IDs())
	assert.Empty(t, empty.IDs())

	var nilSet Set
	assert.False(t, nilSet.Has(1))
	assert.Equal(t, 0, nilSet.Len())
}
