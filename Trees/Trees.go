// Package Trees provides an ordered multiset backed by an AVL tree whose
// nodes live in an index arena, with rank and order statistic queries.
package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Multiset is an ordered collection of T where equal values are counted
// instead of stored repeatedly. S is the type used for sizes and counts.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined; if it's false the first value is the
// zero value of T and shouldn't be used.
// Ranks are 1 based: the smallest element has rank 1.
type Multiset[T cmp.Ordered, S constraints.Unsigned] interface {
	//Insert one occurrence of v.
	Insert(v T)
	//Remove one occurrence of v. Returns false if v isn't present.
	Remove(v T) bool
	//RemoveAll occurrences of v and return how many there were.
	RemoveAll(v T) S
	//Rank of v: 1 plus the number of elements less than v. v needn't be present.
	Rank(v T) S
	//Select the element at rank k, 1<=k<=Size(). Returns an error matching
	//ErrInvalidRank otherwise.
	Select(k S) (T, error)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Floor returns the greatest element less than or equal to v.
	Floor(v T) (T, bool)
	//Ceil returns the smallest element greater than or equal to v.
	Ceil(v T) (T, bool)
	//Minimum element.
	Minimum() (T, bool)
	//Maximum element.
	Maximum() (T, bool)
	//Count occurrences of v.
	Count(v T) S
	//Has at least one occurrence of v.
	Has(v T) bool
	//Size is the total number of occurrences.
	Size() S
	//Len is the number of distinct elements.
	Len() S
	//Clear all elements.
	Clear()
	//InOrder calls f with each distinct element and its count in ascending
	//order until f returns false. f mustn't modify the multiset.
	InOrder(f func(v T, cnt S) bool)
}

var (
	_ Multiset[int, uint] = (*AVLTree[int, uint])(nil)
	_ Multiset[int, uint] = (*Synced[int, uint])(nil)
)
