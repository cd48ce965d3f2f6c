package assigner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionFindTransitivity(t *testing.T) {
	uf := newUnionFind(5)

	uf.union(0, 1)
	uf.union(1, 2)

	assert.True(t, uf.sameSet(0, 2), "A-B and B-C should link A and C")
	assert.True(t, uf.sameSet(0, 1))
	assert.False(t, uf.sameSet(0, 3))
	assert.False(t, uf.sameSet(3, 4))
}

func TestUnionFindSelfUnion(t *testing.T) {
	uf := newUnionFind(3)

	uf.union(1, 1)
	uf.union(0, 2)
	uf.union(0, 2)

	assert.True(t, uf.sameSet(0, 2))
	assert.False(t, uf.sameSet(0, 1))
}

func TestUnionFindDisjointGroups(t *testing.T) {
	uf := newUnionFind(6)

	uf.union(0, 1)
	uf.union(2, 3)
	uf.union(4, 5)

	assert.True(t, uf.sameSet(0, 1))
	assert.True(t, uf.sameSet(2, 3))
	assert.True(t, uf.sameSet(4, 5))
	assert.False(t, uf.sameSet(1, 2))
	assert.False(t, uf.sameSet(3, 4))

	uf.union(1, 2)
	assert.True(t, uf.sameSet(0, 3))
	assert.False(t, uf.sameSet(0, 4))
}
