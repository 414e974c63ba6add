// Package registry keeps named ordered multisets for callers that share
// many independent trees between goroutines. Each entry is a
// Trees.Synced, so operations on one entry never block another.
package registry

import (
	"cmp"
	"errors"
	"log/slog"
	"slices"

	"github.com/g-m-twostay/go-multiset/Trees"
	"golang.org/x/exp/constraints"
)

// ErrEmptyName is returned by Open for "".
var ErrEmptyName = errors.New("registry: empty multiset name")

type config struct {
	backend Backend
	hint    uint64
	logger  *slog.Logger
}

// Option configures a Registry.
type Option func(*config)

// WithBackend selects the map implementation; HaxMap by default.
func WithBackend(b Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

// WithHint sets the initial capacity, in distinct values, of new multisets.
func WithHint(n uint64) Option {
	return func(c *config) {
		c.hint = n
	}
}

// WithLogger sets the logger for entry creation and removal; slog.Default() by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// Registry of named multisets. The zero value isn't usable; create it with New.
type Registry[T cmp.Ordered, S constraints.Unsigned] struct {
	m    store[*Trees.Synced[T, S]]
	hint S
	log  *slog.Logger
}

func New[T cmp.Ordered, S constraints.Unsigned](opts ...Option) *Registry[T, S] {
	c := config{backend: HaxMap}
	for _, o := range opts {
		o(&c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.hint > uint64(^S(0)) {
		c.hint = uint64(^S(0))
	}
	return &Registry[T, S]{
		m:    newStore[*Trees.Synced[T, S]](c.backend),
		hint: S(c.hint),
		log:  c.logger.With("component", "registry", "backend", c.backend.String()),
	}
}

// Open the multiset called name, creating an empty one if it doesn't exist.
// Concurrent calls with the same name return the same multiset.
func (u *Registry[T, S]) Open(name string) (*Trees.Synced[T, S], error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if s, ok := u.m.get(name); ok {
		return s, nil
	}
	s, loaded := u.m.getOrCompute(name, func() *Trees.Synced[T, S] {
		return Trees.NewSynced[T, S](u.hint)
	})
	if !loaded {
		u.log.Debug("multiset created", "name", name)
	}
	return s, nil
}

// Get the multiset called name if it exists.
func (u *Registry[T, S]) Get(name string) (*Trees.Synced[T, S], bool) {
	return u.m.get(name)
}

// Drop the multiset called name. Callers still holding it may keep using
// it, but it's no longer reachable through u.
func (u *Registry[T, S]) Drop(name string) bool {
	if !u.m.del(name) {
		return false
	}
	u.log.Debug("multiset dropped", "name", name)
	return true
}

// Len is the number of multisets.
func (u *Registry[T, S]) Len() int {
	return u.m.len()
}

// Names of all multisets in ascending order.
func (u *Registry[T, S]) Names() []string {
	names := make([]string, 0, u.m.len())
	u.m.each(func(name string, _ *Trees.Synced[T, S]) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}

// Range calls f for each multiset in no particular order until f returns false.
func (u *Registry[T, S]) Range(f func(name string, m *Trees.Synced[T, S]) bool) {
	u.m.each(f)
}

// Size is the total number of occurrences over all multisets.
func (u *Registry[T, S]) Size() uint64 {
	var total uint64
	u.m.each(func(_ string, m *Trees.Synced[T, S]) bool {
		total += uint64(m.Size())
		return true
	})
	return total
}
