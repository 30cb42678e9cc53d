// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

import "testing"

func TestRecordTypeString(t *testing.T) {
	cases := []struct {
		rt   RecordType
		want string
	}{
		{Header, "Header"},
		{BgnLib, "BgnLib"},
		{Boundary, "Boundary"},
		{EndExtn, "EndExtn"},
		{RecordType(0xFFFF), "Unknown"},
	}
	for _, c := range cases {
		if got := c.rt.String(); got != c.want {
			t.Errorf("RecordType(%#04x).String() = %q, want %q", uint16(c.rt), got, c.want)
		}
	}
}

func TestRecordTypeFromU16(t *testing.T) {
	rt, ok := recordTypeFromU16(0x0002)
	if !ok || rt != Header {
		t.Fatalf("recordTypeFromU16(0x0002) = (%v, %v), want (Header, true)", rt, ok)
	}

	_, ok = recordTypeFromU16(0xABCD)
	if ok {
		t.Fatalf("recordTypeFromU16(0xABCD) should report false for an unsupported code")
	}
}

func TestRecordNamesCoversEveryConstant(t *testing.T) {
	all := []RecordType{
		Header, BgnLib, LibName, RefLibs, Fonts, AttrTable, Generations, Format,
		Mask, EndMasks, Units, EndLib, BgnStr, StrName, EndStr, EndEle, Boundary,
		Path, SRef, ARef, Text, Node, Box, ElFlags, Plex, Layer, DataType, Xy,
		PathType, Width, SName, STrans, Mag, Angle, ColRow, TextType,
		Presentation, String, NodeType, BoxType, BgnExtn, EndExtn,
	}
	for _, rt := range all {
		if _, ok := recordNames[rt]; !ok {
			t.Errorf("recordNames is missing an entry for %#04x", uint16(rt))
		}
	}
}
