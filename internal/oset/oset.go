// Package oset provides small, deterministic ordered-set helpers shared
// by the LTL-to-Büchi pipeline.
//
// Every intermediate collection in the pipeline (symbol conjunctions, LTL
// conjunctions, accepting-transition sets, ...) must iterate in a fixed
// order so that two runs over identical input produce byte-identical
// output (see spec.md §5). Rather than re-deriving a sort-and-dedup
// routine in every stage, this package gives them one.
package oset

import "sort"

// Ordered is satisfied by any type with a total order usable as a sort
// key; most elements in the pipeline provide one via a String() method,
// so Sorted below takes an explicit key function rather than requiring
// cmp.Ordered directly on T.
type Ordered interface {
	~string | ~int
}

// Sorted returns a deduplicated copy of elems, ordered by key(e).
// Equal keys are considered duplicates and only the first occurrence is
// kept; elems is not mutated.
func Sorted[T any, K Ordered](elems []T, key func(T) K) []T {
	if len(elems) == 0 {
		return nil
	}

	idx := make([]int, len(elems))
	for i := range elems {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return key(elems[idx[i]]) < key(elems[idx[j]])
	})

	out := make([]T, 0, len(elems))
	var lastKey K
	haveLast := false
	for _, i := range idx {
		k := key(elems[i])
		if haveLast && k == lastKey {
			continue
		}
		out = append(out, elems[i])
		lastKey = k
		haveLast = true
	}
	return out
}

// Union merges a and b, deduplicating by key and sorting the result.
func Union[T any, K Ordered](a, b []T, key func(T) K) []T {
	merged := make([]T, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return Sorted(merged, key)
}

// IsSubset reports whether every element of a (by key) is present in b.
// Both slices are assumed already deduplicated by key, as returned by
// Sorted/Union.
func IsSubset[T any, K Ordered](a, b []T, key func(T) K) bool {
	if len(a) == 0 {
		return true
	}
	present := make(map[K]struct{}, len(b))
	for _, e := range b {
		present[key(e)] = struct{}{}
	}
	for _, e := range a {
		if _, ok := present[key(e)]; !ok {
			return false
		}
	}
	return true
}

// Contains reports whether elems (by key) contains an element with key k.
func Contains[T any, K Ordered](elems []T, key func(T) K, k K) bool {
	for _, e := range elems {
		if key(e) == k {
			return true
		}
	}
	return false
}

// Keys projects elems through key, useful for building map lookups or
// signature strings.
func Keys[T any, K Ordered](elems []T, key func(T) K) []K {
	out := make([]K, len(elems))
	for i, e := range elems {
		out[i] = key(e)
	}
	return out
}
