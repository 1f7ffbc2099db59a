// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"

	"github.com/klauspost/cpuid"
)

// Report summarizes the host CPU, so a throughput figure from BenchmarkEncoder
// or BenchmarkDecoder can be read alongside the hardware it was measured on.
func Report() string {
	avx2 := cpuid.CPU.Features&cpuid.AVX2 != 0
	return fmt.Sprintf("%s, %d logical cores, AVX2=%v",
		cpuid.CPU.BrandName, cpuid.CPU.LogicalCores, avx2)
}
