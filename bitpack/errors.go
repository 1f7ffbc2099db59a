// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitpack

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "bitpack: " + string(e) }

var (
	// ErrCapacityExceeded indicates a requested bit depth cannot be
	// represented by the pack alphabet or by a machine word.
	ErrCapacityExceeded error = Error("bit depth exceeds pack alphabet or word capacity")

	// ErrTruncated indicates a packed stream ended inside the two-symbol
	// header.
	ErrTruncated error = Error("packed stream truncated in header")

	// ErrCorrupt indicates a packed stream's header or payload length is
	// inconsistent.
	ErrCorrupt error = Error("packed stream is corrupt")
)
