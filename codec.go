// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzwalpha binds a pair of alphabets into a ready-to-use LZW codec:
// an input alphabet the source symbols are drawn from, and a pack alphabet
// the compressed code stream is serialized into. Both may be any piecewise
// union of symbol ranges, not just bytes.
package lzwalpha

import (
	"github.com/go-lzw/lzwalpha/alphabet"
	"github.com/go-lzw/lzwalpha/bitpack"
	"github.com/go-lzw/lzwalpha/internal/bitwidth"
	"github.com/go-lzw/lzwalpha/lzw"
)

// Codec binds an input alphabet to a pack alphabet and exposes Encode and
// Decode over that pair. It is immutable once constructed; construct with
// NewCodec or MustNewCodec.
type Codec[In, P alphabet.Symbol] struct {
	inAlpha   *alphabet.Alphabet[In]
	packAlpha *alphabet.Alphabet[P]
}

// NewCodec binds inAlpha and packAlpha into a Codec, rejecting pairings that
// can never produce a valid code stream: packAlpha's cardinality must be at
// least the number of bits needed to name every symbol of inAlpha, and its
// payload width (bitpack.PayloadWidth) must fit a machine word.
//
// This is a necessary, not sufficient, condition: a pack alphabet just wide
// enough to pass this check still has no headroom for the LZW dictionary to
// grow past inAlpha's singleton codes, and Encode will legitimately return
// lzw.ErrCapacityExceeded for any input that needs more than that. Callers
// that want to encode more than a handful of symbols should choose a pack
// alphabet with substantially more than the minimum here.
func NewCodec[In, P alphabet.Symbol](inAlpha *alphabet.Alphabet[In], packAlpha *alphabet.Alphabet[P]) (*Codec[In, P], error) {
	c := bitpack.PayloadWidth(packAlpha)
	if c > 64 {
		return nil, ErrCodecInvalid
	}
	needed := bitwidth.Ceil(uint64(inAlpha.Len()))
	if packAlpha.Len() < int(needed) {
		return nil, ErrCodecInvalid
	}
	return &Codec[In, P]{inAlpha: inAlpha, packAlpha: packAlpha}, nil
}

// MustNewCodec is like NewCodec but panics on error. It is meant for
// package-level var initializers of predefined codecs, where the alphabets
// are literal constants known to be compatible.
func MustNewCodec[In, P alphabet.Symbol](inAlpha *alphabet.Alphabet[In], packAlpha *alphabet.Alphabet[P]) *Codec[In, P] {
	c, err := NewCodec(inAlpha, packAlpha)
	if err != nil {
		panic(err)
	}
	return c
}

// Encode compresses input, drawn from c's input alphabet, into a code
// stream serialized over c's pack alphabet.
func (c *Codec[In, P]) Encode(input []In) ([]P, error) {
	return lzw.Encode(input, c.inAlpha, c.packAlpha)
}

// Decode is the inverse of Encode.
func (c *Codec[In, P]) Decode(packed []P) ([]In, error) {
	return lzw.Decode(packed, c.inAlpha, c.packAlpha)
}

// InAlphabet returns the codec's input alphabet.
func (c *Codec[In, P]) InAlphabet() *alphabet.Alphabet[In] { return c.inAlpha }

// PackAlphabet returns the codec's pack alphabet.
func (c *Codec[In, P]) PackAlphabet() *alphabet.Alphabet[P] { return c.packAlpha }
