package aport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_Identical(t *testing.T) {
	t.Parallel()

	tr := New[int]()
	for i, key := range []string{"al", "arnold", "andrew", "", "hello", "helium"} {
		tr.Insert(key, i)
	}

	cp := tr.Clone()
	checkInvariants(t, cp)

	assert.Equal(t, tr.Len(), cp.Len())
	assert.Equal(t, tr.String(), cp.String())
	assert.Equal(t, collect(tr), collect(cp))
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	tr := New[int]()
	tr.Insert("shared", 1)
	tr.Insert("original", 2)

	cp := tr.Clone()

	// mutate both sides in different ways
	tr.Insert("shared", 10)
	tr.Erase("original")
	cp.Insert("copied", 3)

	val, err := cp.Get("shared")
	require.NoError(t, err)
	assert.Equal(t, 1, *val)

	assert.True(t, cp.Contains("original"))
	assert.False(t, tr.Contains("copied"))

	checkInvariants(t, tr)
	checkInvariants(t, cp)
}

type box struct {
	n *int
}

func (b box) Clone() box {
	n := *b.n
	return box{n: &n}
}

func TestClone_ClonerValues(t *testing.T) {
	t.Parallel()

	n := 1
	tr := New[box]()
	tr.Insert("k", box{n: &n})

	cp := tr.Clone()

	n = 99 // mutate the original's pointee

	val, err := cp.Get("k")
	require.NoError(t, err)
	assert.Equal(t, 1, *val.n)
}

func TestClone_SkewedTree(t *testing.T) {
	t.Parallel()

	// a degenerate chain deep enough that a recursive copy would be risky
	const depth = 5_000

	tr := New[int]()
	for i := 1; i <= depth; i++ {
		tr.Insert(strings.Repeat("a", i), i)
	}

	cp := tr.Clone()

	assert.Equal(t, depth, cp.Len())

	val, err := cp.Get(strings.Repeat("a", depth))
	require.NoError(t, err)
	assert.Equal(t, depth, *val)
}

func TestTake(t *testing.T) {
	t.Parallel()

	src := New[int]()
	src.Insert("a", 1)
	src.Insert("b", 2)

	dst := New[int]()
	dst.Insert("stale", 0)

	dst.Take(src)

	assert.Equal(t, 2, dst.Len())
	assert.True(t, dst.Contains("a"))
	assert.False(t, dst.Contains("stale"))

	// the source is empty but fully usable
	assert.Equal(t, 0, src.Len())
	assert.False(t, src.Contains("a"))
	src.Insert("fresh", 9)
	assert.True(t, src.Contains("fresh"))

	checkInvariants(t, src)
	checkInvariants(t, dst)
}

func TestTake_Self(t *testing.T) {
	t.Parallel()

	tr := New[int]()
	tr.Insert("a", 1)

	tr.Take(tr)

	assert.Equal(t, 1, tr.Len())
	assert.True(t, tr.Contains("a"))
}
