package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreAppendIsStable(t *testing.T) {
	s := NewStore()
	i0 := s.Append(StdOut, "first")
	i1 := s.Append(StdOut, "second")

	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	assert.Equal(t, 2, s.Len(StdOut))
	assert.Equal(t, "first", s.At(StdOut, 0))
	assert.Equal(t, "second", s.At(StdOut, 1))
}

func TestStoreBuffersAreIndependent(t *testing.T) {
	s := NewStore()
	s.Append(StdOut, "out")
	s.Append(StdErr, "err")
	s.Append(Auxiliary, "aux")

	assert.Equal(t, 1, s.Len(StdOut))
	assert.Equal(t, 1, s.Len(StdErr))
	assert.Equal(t, 1, s.Len(Auxiliary))
}

func TestStoreSlice(t *testing.T) {
	s := NewStore()
	for _, l := range []string{"0", "1", "2", "3", "4"} {
		s.Append(StdOut, l)
	}
	assert.Equal(t, []string{"1", "2", "3"}, s.Slice(StdOut, 1, 4))
	assert.Nil(t, s.Slice(StdOut, 4, 1))
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, s.Slice(StdOut, -1, 100))
}

func TestStoreReset(t *testing.T) {
	s := NewStore()
	s.Append(StdOut, "x")
	s.Reset(StdOut)
	assert.Equal(t, 0, s.Len(StdOut))
}

func TestStoreReplaceAuxiliary(t *testing.T) {
	s := NewStore()
	s.Append(Auxiliary, "old")
	s.ReplaceAuxiliary([]string{"a", "b"})
	assert.Equal(t, 2, s.Len(Auxiliary))
	assert.Equal(t, "a", s.At(Auxiliary, 0))
}
