// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import "github.com/go-lzw/lzwalpha/alphabet"

// encodeTrie is the encode-side dictionary: a phrase -> code mapping built
// incrementally as a trie rooted at the Lin singleton codes. Node i's
// children map the next input symbol to the code of the phrase extended by
// that symbol, giving O(1) amortized "is phrase-plus-symbol known" checks
// instead of hashing the whole growing phrase on every step.
type encodeTrie[In alphabet.Symbol] struct {
	children []map[In]int
}

// newEncodeTrie seeds the trie with one node per input-alphabet symbol (lin
// of them), node i corresponding to the singleton phrase of the i'th
// symbol, at code i.
func newEncodeTrie[In alphabet.Symbol](lin int) *encodeTrie[In] {
	t := &encodeTrie[In]{children: make([]map[In]int, lin, lin+lin/2)}
	return t
}

// extend looks up the child of node cur reached by symbol c. The returned
// bool reports whether that phrase was already known.
func (t *encodeTrie[In]) extend(cur int, c In) (int, bool) {
	m := t.children[cur]
	if m == nil {
		return 0, false
	}
	next, ok := m[c]
	return next, ok
}

// insert records that node cur extended by symbol c is a newly seen
// phrase, assigning it the next code in sequence and appending its (empty)
// child map.
func (t *encodeTrie[In]) insert(cur int, c In, code int) {
	if t.children[cur] == nil {
		t.children[cur] = make(map[In]int, 1)
	}
	t.children[cur][c] = code
	t.children = append(t.children, nil)
}

// decodeDict is the decode-side dictionary: an ordered sequence of phrases
// indexed by code. Unlike encodeTrie it never needs a forward "phrase ->
// code" lookup, only "code -> phrase", so it is simply realized in full.
type decodeDict[In alphabet.Symbol] struct {
	phrases [][]In
}

// newDecodeDict seeds the dictionary with one singleton phrase per symbol
// of the input alphabet, codes 0..Lin-1.
func newDecodeDict[In alphabet.Symbol](inAlpha *alphabet.Alphabet[In]) (*decodeDict[In], error) {
	lin := inAlpha.Len()
	d := &decodeDict[In]{phrases: make([][]In, lin, lin+lin/2)}
	for i := 0; i < lin; i++ {
		s, err := inAlpha.SymbolAt(i)
		if err != nil {
			return nil, err
		}
		d.phrases[i] = []In{s}
	}
	return d, nil
}

func (d *decodeDict[In]) len() int { return len(d.phrases) }

func (d *decodeDict[In]) at(code int) []In { return d.phrases[code] }

// append records a new phrase at the next code in sequence.
func (d *decodeDict[In]) append(phrase []In) {
	d.phrases = append(d.phrases, phrase)
}
