// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench compares this module's codecs against general-purpose
// compressors with respect to encode speed, decode speed, and ratio. Unlike
// a streaming compressor, an lzwalpha Codec needs its whole input up front
// to choose a bit depth, so Encoder and Decoder here trade io.Writer/Reader
// for plain byte-slice transforms.
package bench

import (
	"runtime"
	"testing"
)

type Encoder func([]byte) ([]byte, error)
type Decoder func([]byte) ([]byte, error)

var (
	Encoders = map[string]Encoder{}
	Decoders = map[string]Decoder{}
)

func RegisterEncoder(name string, enc Encoder) { Encoders[name] = enc }
func RegisterDecoder(name string, dec Decoder) { Decoders[name] = dec }

// Ratio reports the compression ratio of compressed relative to raw: values
// above 1 mean the output is smaller than the input.
func Ratio(raw, compressed []byte) float64 {
	if len(compressed) == 0 {
		return 0
	}
	return float64(len(raw)) / float64(len(compressed))
}

// BenchmarkEncoder runs enc over input repeatedly and reports the result.
func BenchmarkEncoder(input []byte, enc Encoder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if enc == nil {
			b.Fatalf("unexpected error: nil Encoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, err := enc(input); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// BenchmarkDecoder runs dec over compressed repeatedly and reports the
// result, setting the per-iteration byte count from rawSize rather than
// len(compressed) so throughput figures are comparable across formats.
func BenchmarkDecoder(compressed []byte, dec Decoder, rawSize int) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if dec == nil {
			b.Fatalf("unexpected error: nil Decoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, err := dec(compressed); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(rawSize))
		}
	})
}
