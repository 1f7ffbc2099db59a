// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzwalpha

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "lzwalpha: " + string(e) }

// ErrCodecInvalid indicates a Codec's pack alphabet cannot represent its
// input alphabet's singleton code space: either the pack alphabet's payload
// width exceeds a machine word, or its cardinality is smaller than the
// number of bits needed to name every input symbol.
var ErrCodecInvalid error = Error("pack alphabet cannot represent the input alphabet's code space")
