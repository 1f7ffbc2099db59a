// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzw implements the LZW dictionary-building compressor and
// decompressor at the heart of this module, including the first-repeat
// ("kwkwk") decode edge case. It is generic over both the input alphabet
// the source symbols are drawn from and the pack alphabet the final code
// stream is serialized into, and delegates the actual bit-level
// serialization to the bitpack package.
package lzw

import (
	"github.com/go-lzw/lzwalpha/alphabet"
	"github.com/go-lzw/lzwalpha/bitpack"
	"github.com/go-lzw/lzwalpha/internal/bitwidth"
)

// Encode builds an LZW phrase dictionary over input, drawn from inAlpha,
// and returns the bit-packed code stream serialized over packAlpha.
//
// An empty input produces an empty output with no header at all, since
// there is no bit depth to report. Any input symbol absent from inAlpha
// fails with an alphabet.ErrOutOfRange. A code stream whose final bit
// depth cannot be represented by packAlpha or a machine word fails with
// ErrCapacityExceeded.
func Encode[In, P alphabet.Symbol](input []In, inAlpha *alphabet.Alphabet[In], packAlpha *alphabet.Alphabet[P]) (out []P, err error) {
	if len(input) == 0 {
		return nil, nil
	}
	defer errRecover(&err)

	lin := inAlpha.Len()
	trie := newEncodeTrie[In](lin)
	// Pre-reserve for the common case where few repeats are found early
	// on; the dictionary keeps the code stream no longer than the input.
	codes := make([]int, 0, len(input)+len(input)/2)

	cur := mustIndex(inAlpha, input[0])
	maxCode := lin - 1
	nextCode := lin
	for _, c := range input[1:] {
		if next, ok := trie.extend(cur, c); ok {
			cur = next
			continue
		}
		trie.insert(cur, c, nextCode)
		codes = append(codes, cur)
		if cur > maxCode {
			maxCode = cur
		}
		nextCode++
		cur = mustIndex(inAlpha, c)
	}
	codes = append(codes, cur)
	if cur > maxCode {
		maxCode = cur
	}

	bitDepth := bitwidth.Ceil(uint64(maxCode + 1))
	c := bitpack.PayloadWidth(packAlpha)
	if bitDepth > 64 || bitDepth > c || int(bitDepth) >= packAlpha.Len() {
		return nil, ErrCapacityExceeded
	}
	out, err = bitpack.Pack(codes, bitDepth, packAlpha)
	if err != nil {
		// Pack re-derives the same bound from packAlpha and cannot fail
		// here given the check above; translate defensively all the same
		// so callers never see a bitpack-level sentinel from this API.
		return nil, ErrCapacityExceeded
	}
	return out, nil
}

func mustIndex[T alphabet.Symbol](a *alphabet.Alphabet[T], s T) int {
	i, err := a.IndexOf(s)
	if err != nil {
		panic(err)
	}
	return i
}
