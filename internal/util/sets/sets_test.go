package sets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	s := New("payments", "ai")
	s.Add("ai", "email")

	assert.True(t, s.Has("email"))
	assert.False(t, s.Has("storage"))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"ai", "email", "payments"}, Sorted(s))
}

func TestSortedEmpty(t *testing.T) {
	assert.Empty(t, Sorted(New[string]()))
}
