// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

// SRef references another structure, by name, at a single placement
// point with an optional transform. The referenced name is not resolved
// or validated against the library's structure map; a library may
// contain dangling sref names and still round-trip.
type SRef struct {
	ElFlags   *int16
	Plex      *int32
	SName     string
	Transform *Transform
	Position  Coord
}

// NewSRef builds a reference to sName placed at position with no
// transform.
func NewSRef(sName string, position Coord) *SRef {
	return &SRef{SName: sName, Position: position}
}
