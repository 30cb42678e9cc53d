// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

import "fmt"

// Coord is a pair of signed 32-bit integers in database units, the unit
// in which every element's xy field is expressed.
type Coord struct {
	X, Y int32
}

// NewCoord builds a Coord from its two components.
func NewCoord(x, y int32) Coord {
	return Coord{X: x, Y: y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
