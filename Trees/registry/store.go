package registry

import (
	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
)

// Backend selects the concurrent map holding the registry entries.
type Backend uint8

const (
	// HaxMap uses github.com/alphadose/haxmap.
	HaxMap Backend = iota
	// HashMap uses github.com/cornelk/hashmap.
	HashMap
)

func (b Backend) String() string {
	switch b {
	case HaxMap:
		return "haxmap"
	case HashMap:
		return "hashmap"
	}
	return "unknown"
}

// store is the subset of map operations the registry needs. All methods
// are safe for concurrent use.
type store[V comparable] interface {
	get(name string) (V, bool)
	// getOrCompute returns the existing value or stores mk(); loaded tells which.
	getOrCompute(name string, mk func() V) (v V, loaded bool)
	del(name string) bool
	len() int
	each(f func(string, V) bool)
}

func newStore[V comparable](b Backend) store[V] {
	if b == HashMap {
		return cornelkStore[V]{hashmap.New[string, V]()}
	}
	return haxStore[V]{haxmap.New[string, V]()}
}

type haxStore[V comparable] struct {
	m *haxmap.Map[string, V]
}

func (u haxStore[V]) get(name string) (V, bool) {
	return u.m.Get(name)
}

func (u haxStore[V]) getOrCompute(name string, mk func() V) (V, bool) {
	return u.m.GetOrCompute(name, mk)
}

// del reports whether name was present just before the deletion.
func (u haxStore[V]) del(name string) bool {
	if _, ok := u.m.Get(name); !ok {
		return false
	}
	u.m.Del(name)
	return true
}

func (u haxStore[V]) len() int {
	return int(u.m.Len())
}

func (u haxStore[V]) each(f func(string, V) bool) {
	u.m.ForEach(f)
}

type cornelkStore[V comparable] struct {
	m *hashmap.Map[string, V]
}

func (u cornelkStore[V]) get(name string) (V, bool) {
	return u.m.Get(name)
}

func (u cornelkStore[V]) getOrCompute(name string, mk func() V) (V, bool) {
	if v, ok := u.m.Get(name); ok {
		return v, true
	}
	return u.m.GetOrInsert(name, mk())
}

func (u cornelkStore[V]) del(name string) bool {
	return u.m.Del(name)
}

func (u cornelkStore[V]) len() int {
	return u.m.Len()
}

// each skips entries Range still yields after Del, keeping only those
// that Get sees with the same value.
func (u cornelkStore[V]) each(f func(string, V) bool) {
	u.m.Range(func(name string, v V) bool {
		if cur, ok := u.m.Get(name); !ok || cur != v {
			return true
		}
		return f(name, v)
	})
}
