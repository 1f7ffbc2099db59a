// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alphabet

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "alphabet: " + string(e) }

// ErrOutOfRange indicates SymbolAt or IndexOf was queried with a value
// outside the domain the bijection is defined over.
var ErrOutOfRange error = Error("index or symbol out of range")
