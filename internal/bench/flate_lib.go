// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
)

func init() {
	RegisterEncoder("flate", func(input []byte) ([]byte, error) {
		var buf bytes.Buffer
		zw, err := flate.NewWriter(&buf, flate.DefaultCompression)
		if err != nil {
			return nil, err
		}
		if _, err := zw.Write(input); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	RegisterDecoder("flate", func(compressed []byte) ([]byte, error) {
		zr := flate.NewReader(bytes.NewReader(compressed))
		defer zr.Close()
		return io.ReadAll(zr)
	})
}
