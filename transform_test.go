// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

import "testing"

func TestTransformFlagsRoundTrip(t *testing.T) {
	cases := []Transform{
		{},
		{Reflect: true},
		{AbsoluteMagnification: true},
		{AbsoluteAngle: true},
		{Reflect: true, AbsoluteMagnification: true, AbsoluteAngle: true},
	}
	for _, c := range cases {
		word := c.flagsToU16()
		got := transformFlagsFromU16(word)
		if got.Reflect != c.Reflect || got.AbsoluteMagnification != c.AbsoluteMagnification || got.AbsoluteAngle != c.AbsoluteAngle {
			t.Errorf("flag round trip of %+v produced %+v (word %#04x)", c, got, word)
		}
	}
}

func TestTransformReservedBitsClearOnWrite(t *testing.T) {
	// Every bit outside the three defined flags must round-trip to zero.
	full := Transform{Reflect: true, AbsoluteMagnification: true, AbsoluteAngle: true}
	if got := full.flagsToU16(); got&transformReservedMask != 0 {
		t.Fatalf("flagsToU16() = %#04x sets reserved bits", got)
	}
}

func TestTransformMagnificationAngleDefaults(t *testing.T) {
	var tr Transform
	if got := tr.MagnificationOr(1.0); got != 1.0 {
		t.Errorf("MagnificationOr default = %v, want 1.0", got)
	}
	if got := tr.AngleOr(0.0); got != 0.0 {
		t.Errorf("AngleOr default = %v, want 0.0", got)
	}

	mag, angle := 2.5, 45.0
	tr = Transform{Magnification: &mag, Angle: &angle}
	if got := tr.MagnificationOr(1.0); got != mag {
		t.Errorf("MagnificationOr = %v, want %v", got, mag)
	}
	if got := tr.AngleOr(0.0); got != angle {
		t.Errorf("AngleOr = %v, want %v", got, angle)
	}
}

func TestTransformConvenienceConstructors(t *testing.T) {
	if got := Identity(); got.Reflect || got.Magnification != nil || got.Angle != nil {
		t.Errorf("Identity() = %+v, want the zero transform", got)
	}

	if got := MirrorX(); !got.Reflect {
		t.Errorf("MirrorX() = %+v, want Reflect=true", got)
	}

	if got := MirrorY(); !got.Reflect || got.AngleOr(0) != 180 {
		t.Errorf("MirrorY() = %+v, want Reflect=true angle=180", got)
	}

	if got := MirrorXY(); got.Reflect || got.AngleOr(0) != 180 {
		t.Errorf("MirrorXY() = %+v, want Reflect=false angle=180", got)
	}
}

func TestTransformFluentBuilders(t *testing.T) {
	tr := Identity().WithMagnification(2.0).WithRotation(90).AbsoluteMagnificationFlag().AbsoluteAngleFlag()
	if tr.MagnificationOr(1) != 2.0 {
		t.Errorf("WithMagnification did not stick")
	}
	if tr.AngleOr(0) != 90 {
		t.Errorf("WithRotation did not stick")
	}
	if !tr.AbsoluteMagnification || !tr.AbsoluteAngle {
		t.Errorf("absolute flags did not stick: %+v", tr)
	}
}

func TestTransformWithMagnificationPanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("WithMagnification(0) should panic")
		}
	}()
	Identity().WithMagnification(0)
}
