// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzwalpha

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-lzw/lzwalpha/alphabet"
	"github.com/go-lzw/lzwalpha/lzw"
)

func TestNewCodecRejectsUndersizedPackAlphabet(t *testing.T) {
	in := alphabet.MustNew(alphabet.Range[byte]{Lo: 0, Hi: 199})
	pack := alphabet.MustNew(alphabet.Range[byte]{Lo: 0, Hi: 3})
	_, err := NewCodec(in, pack)
	assert.True(t, errors.Is(err, ErrCodecInvalid))
}

func TestNewCodecAcceptsExactFit(t *testing.T) {
	in := alphabet.MustNew(alphabet.Range[byte]{Lo: 0, Hi: 127})
	pack := alphabet.MustNew(alphabet.Range[byte]{Lo: 0, Hi: 127})
	_, err := NewCodec(in, pack)
	require.NoError(t, err)
}

func TestStringToUTF16RoundTrip(t *testing.T) {
	samples := []string{
		"a",
		"TOBEORNOTTOBEORTOBEORNOT",
		"the quick brown fox jumps over the lazy dog, repeatedly, over and over",
		"mississippi",
	}
	for _, s := range samples {
		t.Run(s, func(t *testing.T) {
			packed, err := StringToUTF16Codec.Encode([]byte(s))
			require.NoError(t, err)
			out, err := StringToUTF16Codec.Decode(packed)
			require.NoError(t, err)
			assert.Equal(t, s, string(out))
		})
	}
}

func TestStringToUTF16EmptyInput(t *testing.T) {
	packed, err := StringToUTF16Codec.Encode(nil)
	require.NoError(t, err)
	assert.Empty(t, packed)

	out, err := StringToUTF16Codec.Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestBinaryCodecSingleByteRoundTrip(t *testing.T) {
	// BinaryCodec has no dictionary-growth headroom, so only inputs whose
	// code stream never uses a code past Binary256's 256 singletons succeed.
	packed, err := BinaryCodec.Encode([]byte{0x42})
	require.NoError(t, err)
	out, err := BinaryCodec.Decode(packed)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x42}, out)
}

func TestBinaryCodecCapacityExceededOnGrowth(t *testing.T) {
	_, err := BinaryCodec.Encode([]byte("hello, hello, world"))
	assert.True(t, errors.Is(err, lzw.ErrCapacityExceeded))
}

func TestStringToURICodecCapacityExceeded(t *testing.T) {
	// StringToURICodec's pack alphabet is constructible per NewCodec's
	// literal cardinality check but too narrow in payload bits for
	// ASCII128's own singleton code space, so every nonempty encode fails.
	_, err := StringToURICodec.Encode([]byte("hi"))
	assert.True(t, errors.Is(err, lzw.ErrCapacityExceeded))
}

func TestPredefinedAlphabetsLen(t *testing.T) {
	assert.Equal(t, 256, Binary256.Len())
	assert.Equal(t, 128, ASCII128.Len())
	assert.Equal(t, 62, URIPack.Len())
	assert.Equal(t, 0xD7FF-0x0020+1+0x2000, UTF16Pack.Len())
}
