// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alphabet implements piecewise symbol ranges and the bijection
// between their logical indices and their concrete symbols.
//
// An Alphabet is the unit that both the LZW dictionary and the bit packer
// are parameterized over: it never assumes its symbols are contiguous bytes,
// only that they form an ordinal type with a handful of disjoint [lo, hi]
// ranges glued end to end.
package alphabet

// Symbol is any ordinal type that can serve as a concrete alphabet symbol:
// a byte, a rune, or one of the other integer types listed below (int8 and
// int16 are not among them). Ranges and alphabets are generic
// over this constraint so the same code paths serve byte alphabets (ASCII,
// binary) and wide ones (UTF-16 code points) alike.
type Symbol interface {
	~uint8 | ~uint16 | ~uint32 | ~int32 | ~int | ~uint | ~int64 | ~uint64
}

// Range is a contiguous interval [Lo, Hi] over a Symbol type.
//
// A Range is only ever constructed with Lo <= Hi; NewRange enforces this so
// that Len is always >= 1.
type Range[T Symbol] struct {
	Lo, Hi T
}

// NewRange validates lo <= hi and returns the corresponding Range.
//
// The comparison and the arithmetic below all work in uint64 space rather
// than int64: Symbol includes ~uint64 and ~uint, both of which can hold
// values >= 1<<63 that would overflow into negative int64s and corrupt
// every comparison and offset derived from them.
func NewRange[T Symbol](lo, hi T) (Range[T], error) {
	if uint64(hi) < uint64(lo) {
		return Range[T]{}, Error("range has hi < lo")
	}
	return Range[T]{Lo: lo, Hi: hi}, nil
}

// Len reports the number of symbols covered by the range.
func (r Range[T]) Len() int {
	return int(uint64(r.Hi)-uint64(r.Lo)) + 1
}

// contains reports whether s falls within [Lo, Hi].
func (r Range[T]) contains(s T) bool {
	return uint64(s) >= uint64(r.Lo) && uint64(s) <= uint64(r.Hi)
}

// symbolAt returns the i'th symbol of the range (0-based, 0 <= i < Len).
func (r Range[T]) symbolAt(i int) T {
	return T(uint64(r.Lo) + uint64(i))
}

// indexOf returns the 0-based offset of s within the range. Callers must
// have already checked contains(s).
func (r Range[T]) indexOf(s T) int {
	return int(uint64(s) - uint64(r.Lo))
}
