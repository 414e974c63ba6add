package Trees

import (
	"cmp"
	"sync"

	"golang.org/x/exp/constraints"
)

// Synced guards an AVLTree with a RWMutex. Mutations take the write lock
// and queries the read lock. Use Do or View to run several operations
// atomically.
type Synced[T cmp.Ordered, S constraints.Unsigned] struct {
	mu sync.RWMutex
	t  *AVLTree[T, S]
}

// NewSynced empty tree, see New.
func NewSynced[T cmp.Ordered, S constraints.Unsigned](hint S) *Synced[T, S] {
	return &Synced[T, S]{t: New[T, S](hint)}
}

// Wrap t. t mustn't be used directly afterwards.
func Wrap[T cmp.Ordered, S constraints.Unsigned](t *AVLTree[T, S]) *Synced[T, S] {
	return &Synced[T, S]{t: t}
}

// Do f with the write lock held.
func (u *Synced[T, S]) Do(f func(t *AVLTree[T, S])) {
	u.mu.Lock()
	defer u.mu.Unlock()
	f(u.t)
}

// View f with the read lock held. f mustn't modify t.
func (u *Synced[T, S]) View(f func(t *AVLTree[T, S])) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	f(u.t)
}

func (u *Synced[T, S]) Insert(v T) {
	u.mu.Lock()
	u.t.Insert(v)
	u.mu.Unlock()
}

func (u *Synced[T, S]) Remove(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Remove(v)
}

func (u *Synced[T, S]) RemoveAll(v T) S {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.RemoveAll(v)
}

func (u *Synced[T, S]) Clear() {
	u.mu.Lock()
	u.t.Clear()
	u.mu.Unlock()
}

func (u *Synced[T, S]) Rank(v T) S {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Rank(v)
}

func (u *Synced[T, S]) Select(k S) (T, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Select(k)
}

func (u *Synced[T, S]) Predecessor(v T) (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Predecessor(v)
}

func (u *Synced[T, S]) Successor(v T) (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Successor(v)
}

func (u *Synced[T, S]) Floor(v T) (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Floor(v)
}

func (u *Synced[T, S]) Ceil(v T) (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Ceil(v)
}

func (u *Synced[T, S]) Minimum() (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Minimum()
}

func (u *Synced[T, S]) Maximum() (T, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Maximum()
}

func (u *Synced[T, S]) Count(v T) S {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Count(v)
}

func (u *Synced[T, S]) Has(v T) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Has(v)
}

func (u *Synced[T, S]) Size() S {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Size()
}

func (u *Synced[T, S]) Len() S {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.t.Len()
}

// InOrder holds the read lock for the whole traversal.
func (u *Synced[T, S]) InOrder(f func(v T, cnt S) bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	u.t.InOrder(f)
}
