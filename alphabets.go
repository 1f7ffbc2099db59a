// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzwalpha

import "github.com/go-lzw/lzwalpha/alphabet"

// Binary256 covers every byte value: the natural alphabet for arbitrary
// binary data.
var Binary256 = alphabet.MustNew(alphabet.Range[byte]{Lo: 0, Hi: 255})

// ASCII128 covers the 7-bit ASCII range: the natural alphabet for text.
var ASCII128 = alphabet.MustNew(alphabet.Range[byte]{Lo: 0, Hi: 127})

// URIPack covers the 62 symbols safe to use unescaped in a URI path segment
// without percent-encoding: digits, then uppercase, then lowercase letters.
var URIPack = alphabet.MustNew(
	alphabet.Range[byte]{Lo: '0', Hi: '9'},
	alphabet.Range[byte]{Lo: 'A', Hi: 'Z'},
	alphabet.Range[byte]{Lo: 'a', Hi: 'z'},
)

// UTF16Pack covers the printable Basic Multilingual Plane: code points
// 0x0020 through 0xFFFF, minus the surrogate range reserved for encoding the
// plane's supplementary characters as pairs. Starting at 0x0020 rather than
// 0x0000 excludes the C0 control codes from the pack alphabet, so a packed
// stream never contains a control code point.
var UTF16Pack = alphabet.MustNew(
	alphabet.Range[uint16]{Lo: 0x0020, Hi: 0xD7FF},
	alphabet.Range[uint16]{Lo: 0xE000, Hi: 0xFFFF},
)

// BinaryCodec packs arbitrary bytes into bytes. Its pack alphabet has no
// headroom beyond Binary256's own 256 singleton codes (C == log2_ceil(Lin)
// exactly), so it only succeeds on inputs whose code stream uses nothing but
// those singleton codes (no multi-byte phrase is ever matched again); any
// input that emits a dictionary code fails with lzw.ErrCapacityExceeded.
// It exists for API completeness and as a baseline for that failure mode,
// not as a general-purpose byte compressor.
var BinaryCodec = MustNewCodec(Binary256, Binary256)

// StringCodec packs ASCII text into ASCII bytes. Like BinaryCodec, its pack
// alphabet is only as wide as strictly required to name ASCII128's
// singletons, so it has no room for dictionary growth beyond them.
var StringCodec = MustNewCodec(ASCII128, ASCII128)

// StringToUTF16Codec packs ASCII text into UTF-16 code units. UTF16Pack's
// payload width (15 bits, ~32000 representable codes) comfortably covers
// ASCII128's 128 singletons plus the dictionary growth of realistic text,
// unlike BinaryCodec and StringCodec.
var StringToUTF16Codec = MustNewCodec(ASCII128, UTF16Pack)

// StringToURICodec packs ASCII text into URI-safe bytes. URIPack's payload
// width (5 bits, 32 representable codes) is smaller than the 7 bits needed
// to name ASCII128's 128 singletons, so NewCodec's construction-time check
// — which, per this package's interpretation, compares the pack alphabet's
// cardinality rather than its payload width against the input alphabet's
// code space — still admits this pairing, but every real Encode call
// against it fails with lzw.ErrCapacityExceeded. It is kept for parity with
// the documented set of predefined codecs; callers wanting URI-safe output
// for ASCII input should pair ASCII128 with a wider pack alphabet instead.
var StringToURICodec = MustNewCodec(ASCII128, URIPack)
