// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz"
)

func init() {
	RegisterEncoder("xz", func(input []byte) ([]byte, error) {
		var buf bytes.Buffer
		zw, err := xz.NewWriter(&buf)
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
	RegisterDecoder("xz", func(compressed []byte) ([]byte, error) {
		zr, err := xz.NewReader(bytes.NewReader(compressed))
		if err != nil {
			return nil, err
		}
		return io.ReadAll(zr)
	})
}
