// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

import "testing"

func TestIBMFloatRoundTrip(t *testing.T) {
	values := []float64{
		0, 0.001, 1e-9, 1, 2, 0.5, 90, -2.5, 3.14159, 100000, -0.000001, 1e-12, 1e12,
	}
	for _, v := range values {
		t.Run("", func(t *testing.T) {
			word := ieeeToIBM(v)
			got := ibmToIEEE(word)
			if got != v {
				t.Fatalf("round trip: ieeeToIBM(%v) -> %#016x -> ibmToIEEE = %v, want %v", v, word, got, v)
			}
		})
	}
}

func TestIBMFloatZero(t *testing.T) {
	if ieeeToIBM(0) != 0 {
		t.Fatalf("ieeeToIBM(0) should be the all-zero word")
	}
	if ibmToIEEE(0) != 0 {
		t.Fatalf("ibmToIEEE(0) should decode to 0")
	}
}

func TestIBMFloatKnownEncoding(t *testing.T) {
	cases := []struct {
		value float64
		word  uint64
	}{
		{2.0, 0x4120000000000000},
		{1.0, 0x4110000000000000},
		{0.5, 0x4080000000000000},
		{0.001, 0x3e4189374bc6a7f0},
		{1e-9, 0x3944b82fa09b5a54},
	}
	for _, c := range cases {
		if got := ieeeToIBM(c.value); got != c.word {
			t.Errorf("ieeeToIBM(%v) = %#016x, want %#016x", c.value, got, c.word)
		}
		if got := ibmToIEEE(c.word); got != c.value {
			t.Errorf("ibmToIEEE(%#016x) = %v, want %v", c.word, got, c.value)
		}
	}
}
