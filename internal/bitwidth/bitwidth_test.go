// Copyright 2024, The lzwalpha Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitwidth

import "testing"

func TestFloor(t *testing.T) {
	cases := []struct {
		x    uint64
		want uint
	}{
		{1, 0}, {2, 1}, {3, 1}, {4, 2}, {7, 2}, {8, 3}, {1023, 9}, {1024, 10},
	}
	for _, c := range cases {
		if got := Floor(c.x); got != c.want {
			t.Errorf("Floor(%d) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestCeil(t *testing.T) {
	cases := []struct {
		x    uint64
		want uint
	}{
		{1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4}, {1024, 10}, {1025, 11},
	}
	for _, c := range cases {
		if got := Ceil(c.x); got != c.want {
			t.Errorf("Ceil(%d) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestCeilPow2Laws(t *testing.T) {
	for n := uint(1); n < 20; n++ {
		pow := uint64(1) << n
		if got := Ceil(pow); got != n {
			t.Errorf("Ceil(2^%d) = %d, want %d", n, got, n)
		}
		if got := Ceil(pow + 1); got != n+1 {
			t.Errorf("Ceil(2^%d+1) = %d, want %d", n, got, n+1)
		}
		if got := Floor(pow); got != n {
			t.Errorf("Floor(2^%d) = %d, want %d", n, got, n)
		}
		if got := Floor(pow - 1); got != n-1 {
			t.Errorf("Floor(2^%d-1) = %d, want %d", n, got, n-1)
		}
	}
}

func TestPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Floor(0) should have panicked")
		}
	}()
	Floor(0)
}
