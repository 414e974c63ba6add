package Trees

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/stretchr/testify/require"
)

// oracle is a key->count red black tree that answers the same queries
// slowly but obviously.
type oracle struct {
	*redblacktree.Tree
	size uint
}

func newOracle() *oracle {
	return &oracle{Tree: redblacktree.NewWithIntComparator()}
}

func (o *oracle) insert(v int) {
	c, _ := o.Get(v)
	n, _ := c.(uint)
	o.Put(v, n+1)
	o.size++
}

func (o *oracle) remove(v int) bool {
	c, ok := o.Get(v)
	if !ok {
		return false
	}
	if n := c.(uint); n > 1 {
		o.Put(v, n-1)
	} else {
		o.Remove(v)
	}
	o.size--
	return true
}

func (o *oracle) rank(v int) uint {
	r := uint(1)
	it := o.Iterator()
	for it.Next() && it.Key().(int) < v {
		r += it.Value().(uint)
	}
	return r
}

func (o *oracle) predecessor(v int) (int, bool) {
	if n, ok := o.Floor(v - 1); ok {
		return n.Key.(int), true
	}
	return 0, false
}

func (o *oracle) successor(v int) (int, bool) {
	if n, ok := o.Ceiling(v + 1); ok {
		return n.Key.(int), true
	}
	return 0, false
}

func TestAVLTree_AgainstRedBlackTree(t *testing.T) {
	const valRange = 300
	tree, o := New[int, uint](0), newOracle()
	for step := range 20000 {
		v := rg.Intn(valRange) - valRange/2
		switch op := rg.Intn(6); op {
		case 0, 1:
			tree.Insert(v)
			o.insert(v)
		case 2:
			require.Equal(t, o.remove(v), tree.Remove(v), "step %d: remove %d", step, v)
		case 3:
			require.Equal(t, o.rank(v), tree.Rank(v), "step %d: rank %d", step, v)
		case 4:
			p1, ok1 := o.predecessor(v)
			p2, ok2 := tree.Predecessor(v)
			require.Equal(t, ok1, ok2, "step %d: predecessor %d", step, v)
			require.Equal(t, p1, p2, "step %d: predecessor %d", step, v)
			s1, ok1 := o.successor(v)
			s2, ok2 := tree.Successor(v)
			require.Equal(t, ok1, ok2, "step %d: successor %d", step, v)
			require.Equal(t, s1, s2, "step %d: successor %d", step, v)
		case 5:
			if o.size == 0 {
				_, err := tree.Select(1)
				require.ErrorIs(t, err, ErrInvalidRank)
				continue
			}
			k := uint(rg.Intn(int(o.size))) + 1
			got, err := tree.Select(k)
			require.NoError(t, err)
			require.LessOrEqual(t, o.rank(got), k, "step %d: select %d", step, k)
			require.Greater(t, o.rank(got+1), k, "step %d: select %d", step, k)
		}
		require.Equal(t, o.size, tree.Size())
		require.Equal(t, uint(o.Tree.Size()), tree.Len())
		if step%1000 == 0 {
			require.NoError(t, tree.Check())
		}
	}
}
