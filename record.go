// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

// RecordType is the 16-bit tag that follows a record's length field on
// the wire. The set is closed: any code not named here fails parsing with
// an UnsupportedRecordTypeError.
type RecordType uint16

const (
	Header       RecordType = 0x0002
	BgnLib       RecordType = 0x0102
	LibName      RecordType = 0x0206
	RefLibs      RecordType = 0x1F06
	Fonts        RecordType = 0x2006
	AttrTable    RecordType = 0x2306
	Generations  RecordType = 0x2202
	Format       RecordType = 0x3602
	Mask         RecordType = 0x3706
	EndMasks     RecordType = 0x3800
	Units        RecordType = 0x0305
	EndLib       RecordType = 0x0400
	BgnStr       RecordType = 0x0502
	StrName      RecordType = 0x0606
	EndStr       RecordType = 0x0700
	EndEle       RecordType = 0x1100
	Boundary     RecordType = 0x0800
	Path         RecordType = 0x0900
	SRef         RecordType = 0x0A00
	ARef         RecordType = 0x0B00
	Text         RecordType = 0x0C00
	Node         RecordType = 0x1500
	Box          RecordType = 0x2D00
	ElFlags      RecordType = 0x2601
	Plex         RecordType = 0x2F03
	Layer        RecordType = 0x0D02
	DataType     RecordType = 0x0E02
	Xy           RecordType = 0x1003
	PathType     RecordType = 0x2102
	Width        RecordType = 0x0F03
	SName        RecordType = 0x1206
	STrans       RecordType = 0x1A01
	Mag          RecordType = 0x1B05
	Angle        RecordType = 0x1C05
	ColRow       RecordType = 0x1302
	TextType     RecordType = 0x1602
	Presentation RecordType = 0x1701
	String       RecordType = 0x1906
	NodeType     RecordType = 0x2A02
	BoxType      RecordType = 0x2E02
	BgnExtn      RecordType = 0x3003
	EndExtn      RecordType = 0x3103
)

// recordNames gives each tag a human-readable name for error messages and
// the text dump.
var recordNames = map[RecordType]string{
	Header:       "Header",
	BgnLib:       "BgnLib",
	LibName:      "LibName",
	RefLibs:      "RefLibs",
	Fonts:        "Fonts",
	AttrTable:    "AttrTable",
	Generations:  "Generations",
	Format:       "Format",
	Mask:         "Mask",
	EndMasks:     "EndMasks",
	Units:        "Units",
	EndLib:       "EndLib",
	BgnStr:       "BgnStr",
	StrName:      "StrName",
	EndStr:       "EndStr",
	EndEle:       "EndEle",
	Boundary:     "Boundary",
	Path:         "Path",
	SRef:         "SRef",
	ARef:         "ARef",
	Text:         "Text",
	Node:         "Node",
	Box:          "Box",
	ElFlags:      "ElFlags",
	Plex:         "Plex",
	Layer:        "Layer",
	DataType:     "DataType",
	Xy:           "Xy",
	PathType:     "PathType",
	Width:        "Width",
	SName:        "SName",
	STrans:       "STrans",
	Mag:          "Mag",
	Angle:        "Angle",
	ColRow:       "ColRow",
	TextType:     "TextType",
	Presentation: "Presentation",
	String:       "String",
	NodeType:     "NodeType",
	BoxType:      "BoxType",
	BgnExtn:      "BgnExtn",
	EndExtn:      "EndExtn",
}

// String implements fmt.Stringer, returning "Unknown" for any value
// outside the closed taxonomy.
func (r RecordType) String() string {
	if name, ok := recordNames[r]; ok {
		return name
	}
	return "Unknown"
}

// recordTypeFromU16 maps a wire code to a RecordType, reporting whether
// the code belongs to the closed taxonomy.
func recordTypeFromU16(value uint16) (RecordType, bool) {
	_, ok := recordNames[RecordType(value)]
	return RecordType(value), ok
}
