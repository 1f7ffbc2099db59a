// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import "runtime"

// errRecover lets the encode loop signal an alphabet violation by
// panicking with an error value, instead of threading an err return
// through the hot phrase-extension loop. Real runtime errors (a bug, not a
// caller mistake) are allowed to keep propagating as panics.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
