// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "lzw: " + string(e) }

var (
	// ErrCapacityExceeded indicates the encoder's chosen bit depth cannot
	// be represented by the pack alphabet or a machine word.
	ErrCapacityExceeded error = Error("code stream needs more bits than the pack alphabet or word size allows")

	// ErrCorrupt indicates a code stream violates the decoder's dictionary
	// invariants: the first code names an unknown phrase, or a later code
	// skips further ahead than the one-past-the-end "kwkwk" case allows.
	ErrCorrupt error = Error("code stream is corrupt")
)
