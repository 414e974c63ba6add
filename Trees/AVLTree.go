package Trees

import (
	"cmp"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// AVLTree is an ordered multiset. Every distinct value is a node holding
// a count; nodes are kept balanced through rotations by comparing the
// heights of subtrees, so the height of the tree is less than
// 1.44*log2(n+2) where n is the number of distinct values.
// T is the type of values it will hold, S is the type used for node
// indexes, counts and sizes. Inserting more than ^S(0) distinct values
// panics with ErrOverflow; S must also be wide enough for Size(), whose
// overflow isn't detected.
// Nodes are stored in an arena slice and freed indexes are reused before
// the arena grows. The zero value isn't usable; create it with New or From.
// Mutations are recursive with depth equal to the height; queries are iterative.
// AVLTree isn't safe for concurrent use, see Synced.
type AVLTree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[S]
	vs []T // vs[i-1] is the value of ifs[i].
}

// New empty tree with room for hint distinct values.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *AVLTree[T, S] {
	return &AVLTree[T, S]{base: base[S]{ifs: make([]info[S], 1, int(hint)+1)}, vs: make([]T, 0, hint)}
}

// From a slice sorted in ascending order, directly build a balanced tree.
// Equal neighbours become one node. The slice isn't retained.
// Time: O(n).
func From[T cmp.Ordered, S constraints.Unsigned](sorted []T) (*AVLTree[T, S], error) {
	if uint64(len(sorted)) >= uint64(^S(0)) {
		return nil, fmt.Errorf("%w: %d elements", ErrOverflow, len(sorted))
	}
	u := New[T, S](0)
	for i, v := range sorted {
		if i > 0 {
			if v < sorted[i-1] {
				return nil, &InvalidSliceError{Index: i, Prev: sorted[i-1], Next: v}
			} else if v == sorted[i-1] {
				u.ifs[len(u.ifs)-1].cnt++
				continue
			}
		}
		u.ifs = append(u.ifs, info[S]{cnt: 1})
		u.vs = append(u.vs, v)
	}
	u.n = S(len(u.vs))
	u.root = u.build(1, u.n)
	return u, nil
}

// alloc a node for v, filling holes before growing the arena. Panics with
// an error wrapping ErrOverflow if the new index doesn't fit S; nothing
// has been linked yet at that point so the tree stays valid.
func (u *AVLTree[T, S]) alloc(v T) S {
	if i := u.popFree(); i != 0 {
		u.n++
		u.ifs[i] = info[S]{sz: 1, cnt: 1, h: 1}
		u.vs[i-1] = v
		return i
	}
	if uint64(len(u.ifs)) > uint64(^S(0)) {
		panic(fmt.Errorf("%w: more than %d distinct values", ErrOverflow, uint64(^S(0))))
	}
	u.n++
	u.ifs = append(u.ifs, info[S]{sz: 1, cnt: 1, h: 1})
	u.vs = append(u.vs, v)
	return S(len(u.ifs) - 1)
}

// release an unlinked node.
func (u *AVLTree[T, S]) release(i S) {
	u.n--
	u.vs[i-1] = *new(T)
	u.addFree(i)
}

// Insert one occurrence of v. Recursive.
// Time: O(log n)
func (u *AVLTree[T, S]) Insert(v T) {
	u.root = u.insert(u.root, v)
}

// insert v into the subtree at curI and return the new subtree root. The
// arena may grow during the call, so ifs is indexed again afterwards.
func (u *AVLTree[T, S]) insert(curI S, v T) S {
	if curI == 0 {
		return u.alloc(v)
	}
	if cv := u.vs[curI-1]; v < cv {
		l := u.insert(u.ifs[curI].l, v)
		u.ifs[curI].l = l
	} else if v > cv {
		r := u.insert(u.ifs[curI].r, v)
		u.ifs[curI].r = r
	} else {
		u.ifs[curI].cnt++
	}
	u.up(curI)
	return u.maintain(curI)
}

// Remove one occurrence of v. Returns false, leaving the tree untouched,
// if v isn't present. Recursive.
// Time: O(log n)
func (u *AVLTree[T, S]) Remove(v T) bool {
	root, d := u.remove(u.root, v, false)
	u.root = root
	return d != 0
}

// RemoveAll occurrences of v. Returns the number removed. Recursive.
// Time: O(log n)
func (u *AVLTree[T, S]) RemoveAll(v T) S {
	root, d := u.remove(u.root, v, true)
	u.root = root
	return d
}

// remove one or all occurrences of v from the subtree at curI. Returns the
// new subtree root and the number of occurrences removed.
func (u *AVLTree[T, S]) remove(curI S, v T, all bool) (S, S) {
	if curI == 0 {
		return 0, 0
	}
	var d S
	if cv := u.vs[curI-1]; v < cv {
		var l S
		if l, d = u.remove(u.ifs[curI].l, v, all); d == 0 {
			return curI, 0
		}
		u.ifs[curI].l = l
	} else if v > cv {
		var r S
		if r, d = u.remove(u.ifs[curI].r, v, all); d == 0 {
			return curI, 0
		}
		u.ifs[curI].r = r
	} else {
		cur := &u.ifs[curI]
		if d = 1; all {
			d = cur.cnt
		}
		if cur.cnt -= d; cur.cnt != 0 {
			u.up(curI)
			return curI, d
		}
		return u.splice(curI), d
	}
	u.up(curI)
	return u.maintain(curI), d
}

// splice node i out of the tree and return the index taking its place.
// With two children, the leftmost node of the right subtree is detached
// and relinked in place of i.
func (u *AVLTree[T, S]) splice(i S) S {
	cur := u.ifs[i]
	u.release(i)
	if cur.l == 0 {
		return cur.r
	} else if cur.r == 0 {
		return cur.l
	}
	r, m := u.detachMin(cur.r)
	u.ifs[m].l, u.ifs[m].r = cur.l, r
	u.up(m)
	return u.maintain(m)
}

// find the index holding v, 0 if absent.
func (u *AVLTree[T, S]) find(v T) S {
	for curI := u.root; curI != 0; {
		if cv := u.vs[curI-1]; v < cv {
			curI = u.ifs[curI].l
		} else if v > cv {
			curI = u.ifs[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// Has v.
// Time: O(log n); Space: O(1)
func (u *AVLTree[T, S]) Has(v T) bool {
	return u.find(v) != 0
}

// Count occurrences of v.
// Time: O(log n); Space: O(1)
func (u *AVLTree[T, S]) Count(v T) S {
	return u.ifs[u.find(v)].cnt
}

// Rank of v, starting from 1: the number of elements less than v plus 1,
// whether or not v is present. Rank is 1 on an empty tree.
// Time: O(log n); Space: O(1)
func (u *AVLTree[T, S]) Rank(v T) S {
	var ra S = 1
	for curI := u.root; curI != 0; {
		if cur := &u.ifs[curI]; v <= u.vs[curI-1] {
			curI = cur.l
		} else {
			ra += u.ifs[cur.l].sz + cur.cnt
			curI = cur.r
		}
	}
	return ra
}

// Select the element whose rank range [Rank(x), Rank(x)+Count(x)-1]
// contains k. Returns a *RankError if k isn't in [1, Size()].
// Time: O(log n); Space: O(1)
func (u *AVLTree[T, S]) Select(k S) (T, error) {
	if k < 1 || k > u.Size() {
		return *new(T), &RankError{K: uint64(k), Size: uint64(u.Size())}
	}
	curI := u.root
	for {
		cur := &u.ifs[curI]
		if lsz := u.ifs[cur.l].sz; k <= lsz {
			curI = cur.l
		} else if k -= lsz; k > cur.cnt {
			k -= cur.cnt
			curI = cur.r
		} else {
			return u.vs[curI-1], nil
		}
	}
}

// Predecessor returns the greatest element less than v.
// Time: O(log n); Space: O(1)
func (u *AVLTree[T, S]) Predecessor(v T) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if v <= u.vs[curI-1] {
			curI = u.ifs[curI].l
		} else {
			p = curI
			curI = u.ifs[curI].r
		}
	}
	return u.value(p)
}

// Successor returns the smallest element greater than v.
// Time: O(log n); Space: O(1)
func (u *AVLTree[T, S]) Successor(v T) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if v < u.vs[curI-1] {
			p = curI
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	return u.value(p)
}

// Floor returns the greatest element less than or equal to v.
func (u *AVLTree[T, S]) Floor(v T) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if v < u.vs[curI-1] {
			curI = u.ifs[curI].l
		} else {
			p = curI
			curI = u.ifs[curI].r
		}
	}
	return u.value(p)
}

// Ceil returns the smallest element greater than or equal to v.
func (u *AVLTree[T, S]) Ceil(v T) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if v > u.vs[curI-1] {
			curI = u.ifs[curI].r
		} else {
			p = curI
			curI = u.ifs[curI].l
		}
	}
	return u.value(p)
}

// Minimum element.
func (u *AVLTree[T, S]) Minimum() (T, bool) {
	curI := u.root
	for curI != 0 && u.ifs[curI].l != 0 {
		curI = u.ifs[curI].l
	}
	return u.value(curI)
}

// Maximum element.
func (u *AVLTree[T, S]) Maximum() (T, bool) {
	curI := u.root
	for curI != 0 && u.ifs[curI].r != 0 {
		curI = u.ifs[curI].r
	}
	return u.value(curI)
}

func (u *AVLTree[T, S]) value(i S) (T, bool) {
	if i == 0 {
		return *new(T), false
	}
	return u.vs[i-1], true
}

// InOrder calls f on each distinct element with its count in ascending
// order until f returns false. It doesn't modify the tree.
// Time: O(n); Space: O(log n)
func (u *AVLTree[T, S]) InOrder(f func(v T, cnt S) bool) {
	u.inOrder(func(i S) bool {
		return f(u.vs[i-1], u.ifs[i].cnt)
	}, make([]S, 0, u.Height()))
}

// Clear the tree. The arena keeps its capacity for later inserts.
// Time: O(n)
func (u *AVLTree[T, S]) Clear() {
	clear(u.vs)
	u.vs = u.vs[:0]
	u.clear()
}

// Check the tree for structural corruption: broken order, unbalanced or
// miscounted nodes, zero counts, or leaked arena slots. Returns nil or an
// error wrapping ErrCorrupt that names the first bad node.
// Recursive. Time: O(n)
func (u *AVLTree[T, S]) Check() error {
	if u.ifs[0] != (info[S]{}) {
		return corrupt(0, "nil node modified: %+v", u.ifs[0])
	}
	if len(u.vs) != len(u.ifs)-1 {
		return corrupt("-", "%d values for %d nodes", len(u.vs), len(u.ifs)-1)
	}
	var seen S
	if err := u.check(u.root, nil, nil, &seen); err != nil {
		return err
	}
	if seen != u.n {
		return corrupt("-", "%d nodes linked, want %d", seen, u.n)
	}
	free := 0
	for i := u.free; i != 0; i = u.ifs[i].l {
		if free++; free > len(u.ifs) {
			return corrupt(i, "free list cycles")
		}
	}
	if free+int(u.n) != len(u.ifs)-1 {
		return corrupt("-", "%d free and %d linked of %d slots", free, u.n, len(u.ifs)-1)
	}
	return nil
}

func (u *AVLTree[T, S]) check(i S, lo, hi *T, seen *S) error {
	if i == 0 {
		return nil
	}
	if *seen++; *seen > u.n {
		return corrupt(i, "more linked nodes than %d", u.n)
	}
	cur, v := u.ifs[i], u.vs[i-1]
	if lo != nil && !(*lo < v) || hi != nil && !(v < *hi) {
		return corrupt(i, "value %v out of order", v)
	}
	if cur.cnt == 0 {
		return corrupt(i, "zero count")
	}
	if err := u.check(cur.l, lo, &v, seen); err != nil {
		return err
	}
	if err := u.check(cur.r, &v, hi, seen); err != nil {
		return err
	}
	l, r := u.ifs[cur.l], u.ifs[cur.r]
	if cur.sz != l.sz+r.sz+cur.cnt {
		return corrupt(i, "size %d, want %d", cur.sz, l.sz+r.sz+cur.cnt)
	}
	if cur.h != max(l.h, r.h)+1 {
		return corrupt(i, "height %d, want %d", cur.h, max(l.h, r.h)+1)
	}
	if d := int(l.h) - int(r.h); d > 1 || d < -1 {
		return corrupt(i, "balance factor %d", d)
	}
	return nil
}

// HeightBound is the worst case height of an AVL tree holding n distinct
// values, 1.45*log2(n+2).
func HeightBound(n uint64) float64 {
	return 1.45 * math.Log2(float64(n)+2)
}
