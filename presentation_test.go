// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

import "testing"

func TestPresentationFromU16(t *testing.T) {
	// font=1, vjustify=middle(1), hjustify=center(1):
	// bits 10-11 = font, 12-13 = vjustify, 14-15 = hjustify.
	value := uint16(0x5400)
	p, err := presentationFromU16(value)
	if err != nil {
		t.Fatalf("presentationFromU16(%#04x): %v", value, err)
	}
	if p.Font != Font1 || p.VJustify != VJustifyMiddle || p.HJustify != HJustifyCenter {
		t.Fatalf("presentationFromU16(%#04x) = %+v, want Font1/Middle/Center", value, p)
	}
	if got := p.toU16(); got != value {
		t.Fatalf("toU16() = %#04x, want %#04x", got, value)
	}
}

func TestPresentationRejectsReservedJustify(t *testing.T) {
	// vjustify field (bits 12-13) = 3 is reserved.
	if _, err := presentationFromU16(0x3000); err == nil {
		t.Fatal("presentationFromU16 with vjustify=3 should fail")
	}
	// hjustify field (bits 14-15) = 3 is reserved.
	if _, err := presentationFromU16(0xC000); err == nil {
		t.Fatal("presentationFromU16 with hjustify=3 should fail")
	}
}

func TestPresentationRoundTrip(t *testing.T) {
	for font := FontNumber(0); font <= 3; font++ {
		for vj := VJustify(0); vj <= 2; vj++ {
			for hj := HJustify(0); hj <= 2; hj++ {
				p := Presentation{Font: font, VJustify: vj, HJustify: hj}
				decoded, err := presentationFromU16(p.toU16())
				if err != nil {
					t.Fatalf("round trip of %+v: %v", p, err)
				}
				if decoded != p {
					t.Fatalf("round trip of %+v produced %+v", p, decoded)
				}
			}
		}
	}
}
