// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

// ARef is an M-by-N array of references to another structure. On the
// wire, its position is carried as exactly three coordinates: the array
// anchor, the column-spacing endpoint, and the row-spacing endpoint. This
// type keeps all three explicitly rather than collapsing them, so the
// external (wire) form is always reconstructible without extra state.
type ARef struct {
	ElFlags   *int16
	Plex      *int32
	SName     string
	Transform *Transform

	Col, Row int16

	// Anchor, ColumnEnd and RowEnd are the three coordinates carried by
	// the element's XY record, in wire order.
	Anchor    Coord
	ColumnEnd Coord
	RowEnd    Coord
}

// NewARef builds an array reference to sName with the given column/row
// counts and the three anchor coordinates.
func NewARef(sName string, col, row int16, anchor, columnEnd, rowEnd Coord) *ARef {
	return &ARef{
		SName:     sName,
		Col:       col,
		Row:       row,
		Anchor:    anchor,
		ColumnEnd: columnEnd,
		RowEnd:    rowEnd,
	}
}
