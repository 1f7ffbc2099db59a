// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzwalpha

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-lzw/lzwalpha/internal/testutil"
)

// TestAlphabetBijectionProperty checks that SymbolAt and IndexOf are mutual
// inverses over every predefined alphabet, for randomly sampled indices
// rather than an exhaustive sweep.
func TestAlphabetBijectionProperty(t *testing.T) {
	rng := testutil.NewRand(42)

	t.Run("Binary256", func(t *testing.T) {
		for _, i := range rng.Symbols(64, Binary256.Len()) {
			s, err := Binary256.SymbolAt(i)
			require.NoError(t, err)
			got, err := Binary256.IndexOf(s)
			require.NoError(t, err)
			assert.Equal(t, i, got)
		}
	})
	t.Run("ASCII128", func(t *testing.T) {
		for _, i := range rng.Symbols(64, ASCII128.Len()) {
			s, err := ASCII128.SymbolAt(i)
			require.NoError(t, err)
			got, err := ASCII128.IndexOf(s)
			require.NoError(t, err)
			assert.Equal(t, i, got)
		}
	})
	t.Run("URIPack", func(t *testing.T) {
		for _, i := range rng.Symbols(64, URIPack.Len()) {
			s, err := URIPack.SymbolAt(i)
			require.NoError(t, err)
			got, err := URIPack.IndexOf(s)
			require.NoError(t, err)
			assert.Equal(t, i, got)
		}
	})
	t.Run("UTF16Pack", func(t *testing.T) {
		for _, i := range rng.Symbols(64, UTF16Pack.Len()) {
			s, err := UTF16Pack.SymbolAt(i)
			require.NoError(t, err)
			got, err := UTF16Pack.IndexOf(s)
			require.NoError(t, err)
			assert.Equal(t, i, got)
		}
	})
}

// TestStringToUTF16RoundTripProperty exercises the round-trip invariant over
// random ASCII text of varying lengths: for StringToUTF16Codec and every
// input drawn from its input alphabet, Decode(Encode(input)) == input.
func TestStringToUTF16RoundTripProperty(t *testing.T) {
	rng := testutil.NewRand(7)

	for trial := 0; trial < 30; trial++ {
		n := rng.Intn(200)
		idx := rng.Symbols(n, ASCII128.Len())
		in := make([]byte, n)
		for i, v := range idx {
			s, err := ASCII128.SymbolAt(v)
			require.NoError(t, err)
			in[i] = s
		}

		packed, err := StringToUTF16Codec.Encode(in)
		require.NoError(t, err)
		out, err := StringToUTF16Codec.Decode(packed)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}
