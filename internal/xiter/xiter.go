// Package xiter provides the iterator helpers used by sequence expansion.
package xiter

import "iter"

// Collect gathers all values from a sequence.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// Count returns how many values are yielded by a sequence.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Product yields the cartesian product of the given sequences in row-major
// order, one []T per combination. The yielded slice is reused between
// iterations and must not be retained. An empty input yields one empty
// combination; any empty member sequence yields nothing.
func Product[T any](seqs []iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		combo := make([]T, len(seqs))
		productFrom(seqs, combo, 0, yield)
	}
}

func productFrom[T any](seqs []iter.Seq[T], combo []T, depth int, yield func([]T) bool) bool {
	if depth == len(seqs) {
		return yield(combo)
	}
	for v := range seqs[depth] {
		combo[depth] = v
		if !productFrom(seqs, combo, depth+1, yield) {
			return false
		}
	}
	return true
}
