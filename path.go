// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

// Path is an open polyline element with an endpoint style.
type Path struct {
	ElFlags  *int16
	Plex     *int32
	Layer    int16
	DataType int16

	// PathType is nil when the optional PATHTYPE record is absent, which
	// defaults to PathEndSquareFlush (0). A non-nil PathEndSquareFlush
	// still round-trips as an explicit PATHTYPE record, distinct from
	// absence.
	PathType *PathEndType

	// Width is nil when the optional WIDTH record is absent. A negative
	// value means "absolute width" rather than scaled by the structure's
	// transform, per GDSII convention.
	Width *int32

	Xy []Coord

	// PurposeLayer is the value carried by a TEXTYPE record embedded in a
	// path body. This is non-standard GDSII preserved verbatim on
	// round-trip; its semantic meaning is producer-specific and not
	// otherwise interpreted.
	PurposeLayer *int16

	// BeginExtension and EndExtension preserve the BGNEXTN/ENDEXTN
	// records when Options.PreserveExtensions is set on read. They are
	// only meaningful (and only written back) when Width is also set.
	BeginExtension *int32
	EndExtension   *int32
}

// NewPath builds an empty path on the given layer, ready to have its Xy
// populated.
func NewPath(layer int16) *Path {
	return &Path{Layer: layer}
}
