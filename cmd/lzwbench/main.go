// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lzwbench compares this module's LZW codec against general-purpose
// compressors on a text file, reporting compression ratio and throughput for
// each.
//
// Example usage:
//
//	$ go run ./cmd/lzwbench -file path/to/input.txt -codecs lzwalpha,flate,xz
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-lzw/lzwalpha/internal/bench"
)

func main() {
	file := flag.String("file", "", "path to the input file; if empty, a built-in sample is used")
	codecsFlag := flag.String("codecs", "lzwalpha,flate,xz", "comma-separated list of registered codecs to compare")
	flag.Parse()

	input, err := loadInput(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lzwbench:", err)
		os.Exit(1)
	}

	fmt.Println(bench.Report())
	fmt.Printf("input: %d bytes\n\n", len(input))

	names := strings.Split(*codecsFlag, ",")
	sort.Strings(names)
	fmt.Printf("%-12s %10s %14s %14s\n", "codec", "ratio", "enc MB/s", "dec MB/s")
	for _, name := range names {
		enc, ok := bench.Encoders[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "lzwbench: no encoder registered under %q\n", name)
			continue
		}
		dec := bench.Decoders[name]

		compressed, err := enc(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lzwbench: %v: encode: %v\n", name, err)
			continue
		}

		encResult := bench.BenchmarkEncoder(input, enc)
		decResult := bench.BenchmarkDecoder(compressed, dec, len(input))

		fmt.Printf("%-12s %10.2f %14.2f %14.2f\n",
			name,
			bench.Ratio(input, compressed),
			encResult.MBPerSecond(),
			decResult.MBPerSecond(),
		)
	}
}

func loadInput(path string) ([]byte, error) {
	if path == "" {
		return []byte(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 200)), nil
	}
	return os.ReadFile(path)
}
