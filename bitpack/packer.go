// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitpack implements the variable-width bit packer and unpacker
// that maps a run of integer codes of a single run-time bit depth onto
// symbols of a pack alphabet whose cardinality is generally not a power of
// two.
//
// Bit order is little-endian throughout: a code's low bit is written first,
// and a payload symbol's low bit holds the earliest unwritten bit of the
// conceptual code bitstream. This is an external, observable part of the
// wire format and must never change.
package bitpack

import (
	"github.com/go-lzw/lzwalpha/alphabet"
	"github.com/go-lzw/lzwalpha/internal/bitwidth"
)

const maxWordBits = 64

// chunkMask returns a mask of the low nb bits of a uint64, handling the
// nb == 0 and nb == 64 edges that a plain 1<<nb - 1 would get wrong.
func chunkMask(nb uint) uint64 {
	if nb == 0 {
		return 0
	}
	if nb >= maxWordBits {
		return ^uint64(0)
	}
	return uint64(1)<<nb - 1
}

// PayloadWidth returns C, the number of bits each symbol of pa carries:
// log2_floor(pa.Len()).
func PayloadWidth[P alphabet.Symbol](pa *alphabet.Alphabet[P]) uint {
	return bitwidth.Floor(uint64(pa.Len()))
}

// Pack serializes codes, each assumed to fit in bitDepth bits, into a
// stream of pa symbols: two header symbols (bit depth, dead-bit count)
// followed by the bit-packed payload.
//
// bitDepth must be at least 1, at most the machine word width, at most
// PayloadWidth(pa), and strictly less than pa.Len() (so both header values
// round-trip through pa's bijection). Violating any of these is
// ErrCapacityExceeded.
func Pack[P alphabet.Symbol](codes []int, bitDepth uint, pa *alphabet.Alphabet[P]) ([]P, error) {
	lp := pa.Len()
	c := PayloadWidth(pa)
	if bitDepth < 1 || bitDepth > maxWordBits || bitDepth > c || int(bitDepth) >= lp {
		return nil, ErrCapacityExceeded
	}

	bitsNeeded := uint64(bitDepth) * uint64(len(codes))
	payloadSymbols := (bitsNeeded + uint64(c) - 1) / uint64(c)
	deadBits := payloadSymbols*uint64(c) - bitsNeeded
	if deadBits >= uint64(lp) {
		return nil, ErrCapacityExceeded
	}

	out := make([]P, 0, 2+payloadSymbols)
	emit := func(v uint64) error {
		sym, err := pa.SymbolAt(int(v))
		if err != nil {
			return err
		}
		out = append(out, sym)
		return nil
	}
	if err := emit(uint64(bitDepth)); err != nil {
		return nil, err
	}
	if err := emit(deadBits); err != nil {
		return nil, err
	}

	var buf uint64
	var n uint
	flush := func() error {
		for n >= c {
			if err := emit(buf & chunkMask(c)); err != nil {
				return err
			}
			buf >>= c
			n -= c
		}
		return nil
	}
	for _, code := range codes {
		v := uint64(code)
		remaining := bitDepth
		for remaining > 0 {
			free := maxWordBits - n
			take := remaining
			if take > free {
				take = free
			}
			buf |= (v & chunkMask(take)) << n
			n += take
			v >>= take
			remaining -= take
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}
	if n > 0 {
		if err := emit(buf & chunkMask(c)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Unpack is the inverse of Pack: it reads the two header symbols, then
// produces exactly (n*C - deadBits) / bitDepth codes from the payload,
// where n is the number of payload symbols. That quotient must be exact,
// and the header values must be in range; any violation is ErrCorrupt.
//
// The only ad-hoc early-exit this implementation recognizes is the
// zero-payload case (an empty code list); every other termination is
// driven purely by the computed code count, not by peeking at leftover
// bits in the final symbol.
func Unpack[P alphabet.Symbol](packed []P, pa *alphabet.Alphabet[P]) ([]int, error) {
	if len(packed) == 0 {
		return nil, nil
	}
	if len(packed) < 2 {
		return nil, ErrTruncated
	}

	bdIdx, err := pa.IndexOf(packed[0])
	if err != nil {
		return nil, err
	}
	ddIdx, err := pa.IndexOf(packed[1])
	if err != nil {
		return nil, err
	}
	bitDepth := uint(bdIdx)
	deadBits := uint(ddIdx)
	c := PayloadWidth(pa)
	if bitDepth < 1 || bitDepth > maxWordBits || bitDepth > c {
		return nil, ErrCorrupt
	}
	if deadBits >= c {
		return nil, ErrCorrupt
	}

	n := len(packed) - 2
	if n == 0 {
		if deadBits != 0 {
			return nil, ErrCorrupt
		}
		return []int{}, nil
	}

	totalBits := uint64(n)*uint64(c) - uint64(deadBits)
	if totalBits == 0 || totalBits%uint64(bitDepth) != 0 {
		return nil, ErrCorrupt
	}
	outLen := totalBits / uint64(bitDepth)

	out := make([]int, 0, outLen)
	var buf uint64
	var bn uint
	idx := 2
	// Pull one payload symbol's C bits into the accumulator at a time,
	// draining complete bitDepth-sized codes between every sub-chunk push
	// (mirroring Pack's push-then-flush loop). This keeps bn bounded by a
	// machine word even when bitDepth and C are both close to 64, where
	// pushing a whole C-bit symbol before draining would overflow it.
	for uint64(len(out)) < outLen {
		if idx >= len(packed) {
			return nil, ErrCorrupt
		}
		v, err := pa.IndexOf(packed[idx])
		if err != nil {
			return nil, err
		}
		idx++
		remaining := c
		vv := uint64(v)
		for remaining > 0 {
			free := maxWordBits - bn
			take := remaining
			if take > free {
				take = free
			}
			buf |= (vv & chunkMask(take)) << bn
			bn += take
			vv >>= take
			remaining -= take
			for bn >= bitDepth && uint64(len(out)) < outLen {
				val := buf & chunkMask(bitDepth)
				buf >>= bitDepth
				bn -= bitDepth
				out = append(out, int(val))
			}
		}
	}
	return out, nil
}
