// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

// Text is a textual annotation element.
type Text struct {
	ElFlags  *int16
	Plex     *int32
	Layer    int16
	TextType int16

	// Presentation is nil when the PRESENTATION record is absent, which
	// means top-left justification and font 0.
	Presentation *Presentation

	// PathType is nil when the optional PATHTYPE record is absent, which
	// defaults to PathEndSquareFlush (0). A non-nil PathEndSquareFlush
	// still round-trips as an explicit PATHTYPE record, distinct from
	// absence.
	PathType *PathEndType
	Width    *int32

	Transform *Transform
	Position  Coord
	String    string
}

// NewText builds a text element with the given layer, type, position and
// string, with no presentation/transform/width set.
func NewText(layer, textType int16, position Coord, s string) *Text {
	return &Text{Layer: layer, TextType: textType, Position: position, String: s}
}
