// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testutil holds small helpers shared by this module's test files.
package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand is a deterministic pseudo-random generator. Unlike math/rand, its
// output is pinned to the AES block cipher rather than to a particular Go
// version's algorithm, so property tests built on it stay reproducible
// across toolchain upgrades.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

// NewRand returns a Rand seeded deterministically from seed.
func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) next() int {
	r.Encrypt(r.blk[:], r.blk[:])
	var x int
	for i := 0; i < 7; i++ {
		x |= int(r.blk[i]) << (8 * i)
	}
	x |= int(r.blk[7]&0x3f) << 56
	return x
}

// Intn returns a non-negative pseudo-random int in [0, n).
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("testutil: Intn requires n > 0")
	}
	x := r.next() % n
	if x < 0 {
		x += n
	}
	return x
}

// Symbols fills a slice of n logical alphabet indices in [0, alphabetLen),
// useful for driving round-trip tests over an arbitrary alphabet without
// depending on its concrete symbol type.
func (r *Rand) Symbols(n, alphabetLen int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(alphabetLen)
	}
	return out
}
