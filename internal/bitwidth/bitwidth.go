// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitwidth implements the small integer-log2 helpers shared by the
// alphabet and bit-packing layers.
package bitwidth

import "math/bits"

// Floor returns the greatest n such that 2^n <= x.
//
// x must be >= 1; Floor panics otherwise, since there is no integer n
// satisfying the definition for x <= 0.
func Floor(x uint64) uint {
	if x < 1 {
		panic("bitwidth: Floor requires x >= 1")
	}
	return uint(bits.Len64(x) - 1)
}

// Ceil returns the least n such that x <= 2^n.
//
// Unlike Floor, Ceil(1) is defined to be 1, not 0: representing one distinct
// value still costs one bit of code space. This asymmetry is intentional and
// load-bearing for callers that size a code word from a symbol count.
func Ceil(x uint64) uint {
	if x < 1 {
		panic("bitwidth: Ceil requires x >= 1")
	}
	if x == 1 {
		return 1
	}
	return uint(bits.Len64(x - 1))
}
