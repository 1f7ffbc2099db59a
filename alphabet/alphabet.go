// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alphabet

// Alphabet is an ordered, non-empty sequence of Ranges sharing a symbol
// type. It exposes a total bijection between the logical index space
// [0, Len()) and the concrete symbols covered by its Ranges.
//
// Ranges need not be disjoint as coordinates, but IndexOf resolves
// ambiguity by first match: the first Range (in construction order) that
// contains a symbol owns it. Callers that want an unambiguous mapping
// should only ever supply disjoint ranges; New does not enforce this
// itself. With overlapping ranges the lookups stay deterministic, but
// SymbolAt and IndexOf are no longer mutual inverses for the shared symbols.
type Alphabet[T Symbol] struct {
	ranges []Range[T]
	// cum[i] is the number of symbols contributed by ranges[:i]. It has
	// len(ranges)+1 entries; cum[len(ranges)] == total.
	cum   []int
	total int
}

// New builds an Alphabet from one or more Ranges, in the order given.
// It fails if no ranges are supplied.
func New[T Symbol](ranges ...Range[T]) (*Alphabet[T], error) {
	if len(ranges) == 0 {
		return nil, Error("alphabet must have at least one range")
	}
	a := &Alphabet[T]{
		ranges: append([]Range[T](nil), ranges...),
		cum:    make([]int, len(ranges)+1),
	}
	for i, r := range a.ranges {
		a.cum[i] = a.total
		a.total += r.Len()
	}
	a.cum[len(a.ranges)] = a.total
	return a, nil
}

// MustNew is like New but panics on error. It is meant for package-level
// var initializers of predefined alphabets, where the ranges are literal
// constants known to be valid.
func MustNew[T Symbol](ranges ...Range[T]) *Alphabet[T] {
	a, err := New(ranges...)
	if err != nil {
		panic(err)
	}
	return a
}

// Len reports the total number of symbols in the alphabet.
func (a *Alphabet[T]) Len() int { return a.total }

// SymbolAt returns the symbol at logical index i, 0 <= i < Len().
func (a *Alphabet[T]) SymbolAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= a.total {
		return zero, ErrOutOfRange
	}
	// Linear scan: real alphabets carry a handful of ranges, so this is
	// cheaper in practice than a binary search over cum.
	for j, r := range a.ranges {
		if i < a.cum[j+1] {
			return r.symbolAt(i - a.cum[j]), nil
		}
	}
	return zero, ErrOutOfRange // unreachable given the bounds check above
}

// IndexOf returns the logical index of s, the inverse of SymbolAt.
func (a *Alphabet[T]) IndexOf(s T) (int, error) {
	for j, r := range a.ranges {
		if r.contains(s) {
			return a.cum[j] + r.indexOf(s), nil
		}
	}
	return 0, ErrOutOfRange
}
