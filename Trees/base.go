package Trees

import (
	"golang.org/x/exp/constraints"
)

// info of a node in the arena. ifs[0] is the nil node and always stays
// the zero value, so an absent child reads as sz=0, h=0.
type info[S constraints.Unsigned] struct {
	l, r, sz, cnt S // sz is the sum of cnt over the subtree.
	h             uint8
}

type base[S constraints.Unsigned] struct {
	root, free, n S         // free is the beginning of the linked list that contains all the free indexes; info[S].l represents next. n is the number of linked nodes.
	ifs           []info[S] // 0 is the nil node. all index are based on ifs.
}

// up recomputes sz and h of i from its children.
func (u *base[S]) up(i S) {
	n := &u.ifs[i]
	n.sz = u.ifs[n.l].sz + u.ifs[n.r].sz + n.cnt
	n.h = max(u.ifs[n.l].h, u.ifs[n.r].h) + 1
}

// rotateLeft the subtree at i and return its new root. The old root is
// recomputed before the new one since the new root's height depends on it.
func (u *base[S]) rotateLeft(i S) S {
	ri := u.ifs[i].r
	u.ifs[i].r = u.ifs[ri].l
	u.ifs[ri].l = i
	u.up(i)
	u.up(ri)
	return ri
}

func (u *base[S]) rotateRight(i S) S {
	li := u.ifs[i].l
	u.ifs[i].l = u.ifs[li].r
	u.ifs[li].r = i
	u.up(i)
	u.up(li)
	return li
}

// maintain restores the balance of i, whose children are already balanced
// and whose heights differ by at most 2. Returns the new subtree root.
func (u *base[S]) maintain(i S) S {
	cur := u.ifs[i]
	if lh, rh := u.ifs[cur.l].h, u.ifs[cur.r].h; lh > rh+1 {
		if lc := u.ifs[cur.l]; u.ifs[lc.l].h < u.ifs[lc.r].h {
			u.ifs[i].l = u.rotateLeft(cur.l)
		}
		return u.rotateRight(i)
	} else if rh > lh+1 {
		if rc := u.ifs[cur.r]; u.ifs[rc.r].h < u.ifs[rc.l].h {
			u.ifs[i].r = u.rotateRight(cur.r)
		}
		return u.rotateLeft(i)
	}
	return i
}

// detachMin unlinks the leftmost node of the subtree at i, rebalancing the
// path to it. Returns the new subtree root and the detached index.
func (u *base[S]) detachMin(i S) (root, m S) {
	l := u.ifs[i].l
	if l == 0 {
		return u.ifs[i].r, i
	}
	l, m = u.detachMin(l)
	u.ifs[i].l = l
	u.up(i)
	return u.maintain(i), m
}

// addFree index once.
func (u *base[S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[S]) popFree() S {
	b := u.free
	u.free = u.ifs[b].l
	return b
}

// build a balanced subtree over the consecutive indexes [lo, hi] whose cnt
// are already set. Returns the subtree root, 0 if lo>hi.
func (u *base[S]) build(lo, hi S) S {
	if lo > hi {
		return 0
	}
	mid := lo + (hi-lo)>>1
	u.ifs[mid].l = u.build(lo, mid-1)
	if mid < hi {
		u.ifs[mid].r = u.build(mid+1, hi)
	}
	u.up(mid)
	return mid
}

// inOrder calls f on each linked index in key order using st as the stack.
// It doesn't modify the tree. Returns st for reuse.
func (u *base[S]) inOrder(f func(S) bool, st []S) []S {
	curI := u.root
	for st = st[:0]; curI != 0; curI = u.ifs[curI].l {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(curI) {
			break
		}
		for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
	}
	return st
}

// Size is the total number of occurrences.
func (u *base[S]) Size() S {
	return u.ifs[u.root].sz
}

// Len is the number of distinct keys.
func (u *base[S]) Len() S {
	return u.n
}

// Height of the tree; 0 when empty.
func (u *base[S]) Height() uint8 {
	return u.ifs[u.root].h
}

func (u *base[S]) clear() {
	u.ifs = u.ifs[:1]
	u.root, u.free, u.n = 0, 0, 0
}
