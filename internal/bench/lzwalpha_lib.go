// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"encoding/binary"
	"errors"

	"github.com/go-lzw/lzwalpha"
)

func init() {
	RegisterEncoder("lzwalpha", func(input []byte) ([]byte, error) {
		packed, err := lzwalpha.StringToUTF16Codec.Encode(input)
		if err != nil {
			return nil, err
		}
		out := make([]byte, len(packed)*2)
		for i, v := range packed {
			binary.LittleEndian.PutUint16(out[2*i:], v)
		}
		return out, nil
	})
	RegisterDecoder("lzwalpha", func(compressed []byte) ([]byte, error) {
		if len(compressed)%2 != 0 {
			return nil, errors.New("bench: lzwalpha stream has an odd number of bytes")
		}
		packed := make([]uint16, len(compressed)/2)
		for i := range packed {
			packed[i] = binary.LittleEndian.Uint16(compressed[2*i:])
		}
		return lzwalpha.StringToUTF16Codec.Decode(packed)
	})
}
