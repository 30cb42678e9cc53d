// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

// Boundary is a closed polygon element. The first and last points of Xy
// should be equal and at least four points (a closed triangle) are
// recommended, but this is not parse-fatal: a degenerate boundary
// round-trips unchanged.
type Boundary struct {
	ElFlags  *int16
	Plex     *int32
	Layer    int16
	DataType int16
	Xy       []Coord
}

// NewBoundary builds an empty boundary on the given layer, ready to have
// its Xy populated.
func NewBoundary(layer int16) *Boundary {
	return &Boundary{Layer: layer}
}

// NewRectBoundary builds a closed rectangular boundary on layer, data
// type 0, spanning from lowerLeft to upperRight.
func NewRectBoundary(layer int16, lowerLeft, upperRight Coord) *Boundary {
	upperLeft := Coord{X: lowerLeft.X, Y: upperRight.Y}
	lowerRight := Coord{X: upperRight.X, Y: lowerLeft.Y}
	return &Boundary{
		Layer: layer,
		Xy:    []Coord{lowerLeft, upperLeft, upperRight, lowerRight, lowerLeft},
	}
}

// IsClosed reports whether Xy's first and last coordinates are equal and
// there are at least four points, the recommended-but-not-enforced shape
// of a valid boundary.
func (b *Boundary) IsClosed() bool {
	if len(b.Xy) < 4 {
		return false
	}
	first, last := b.Xy[0], b.Xy[len(b.Xy)-1]
	return first == last
}
