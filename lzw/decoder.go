// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"github.com/go-lzw/lzwalpha/alphabet"
	"github.com/go-lzw/lzwalpha/bitpack"
)

// Decode is the inverse of Encode: it unpacks packed over packAlpha back
// into a code stream, then rebuilds the phrase dictionary on the fly to
// recover the original sequence of inAlpha symbols.
//
// A packed stream whose header is malformed fails with one of
// bitpack.ErrTruncated or bitpack.ErrCorrupt. A code stream whose first
// code names no known phrase, or whose later codes jump further ahead than
// the "kwkwk" case allows, fails with ErrCorrupt.
func Decode[In, P alphabet.Symbol](packed []P, inAlpha *alphabet.Alphabet[In], packAlpha *alphabet.Alphabet[P]) ([]In, error) {
	if len(packed) == 0 {
		return nil, nil
	}
	codes, err := bitpack.Unpack(packed, packAlpha)
	if err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return nil, nil
	}

	dict, err := newDecodeDict(inAlpha)
	if err != nil {
		return nil, err
	}
	if codes[0] >= dict.len() || codes[0] < 0 {
		return nil, ErrCorrupt
	}

	out := make([]In, 0, len(codes)*2)
	out = append(out, dict.at(codes[0])...)
	old := codes[0]

	for _, code := range codes[1:] {
		prevPhrase := append([]In(nil), dict.at(old)...)

		var extended []In
		switch {
		case code < dict.len():
			entry := dict.at(code)
			out = append(out, entry...)
			extended = append(prevPhrase, entry[0])
		case code == dict.len():
			extended = append(prevPhrase, prevPhrase[0])
			out = append(out, extended...)
		default:
			return nil, ErrCorrupt
		}
		dict.append(extended)
		old = code
	}
	return out, nil
}
