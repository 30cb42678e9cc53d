// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

// Box is a rectangular marker element. Xy must carry exactly five
// coordinates forming a closed rectangle.
type Box struct {
	ElFlags *int16
	Plex    *int32
	Layer   int16
	BoxType int16
	Xy      []Coord
}

// NewBoxRect builds a closed five-point box on layer spanning from
// lowerLeft to upperRight.
func NewBoxRect(layer int16, lowerLeft, upperRight Coord) *Box {
	upperLeft := Coord{X: lowerLeft.X, Y: upperRight.Y}
	lowerRight := Coord{X: upperRight.X, Y: lowerLeft.Y}
	return &Box{
		Layer: layer,
		Xy:    []Coord{lowerLeft, upperLeft, upperRight, lowerRight, lowerLeft},
	}
}
