// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

// LibraryFormat is the library-wide archive/filtered format code carried
// by an optional FORMAT record.
type LibraryFormat uint16

const (
	FormatGDSIIArchive  LibraryFormat = 0
	FormatGDSIIFiltered LibraryFormat = 1
	FormatEDSMArchive   LibraryFormat = 2
	FormatEDSMFiltered  LibraryFormat = 3
)

func libraryFormatFromU16(value uint16) (LibraryFormat, bool) {
	switch LibraryFormat(value) {
	case FormatGDSIIArchive, FormatGDSIIFiltered, FormatEDSMArchive, FormatEDSMFiltered:
		return LibraryFormat(value), true
	default:
		return 0, false
	}
}

func (f LibraryFormat) String() string {
	switch f {
	case FormatGDSIIArchive:
		return "GDSIIArchive"
	case FormatGDSIIFiltered:
		return "GDSIIFiltered"
	case FormatEDSMArchive:
		return "EDSMArchive"
	case FormatEDSMFiltered:
		return "EDSMFiltered"
	default:
		return "Unknown"
	}
}

// PathEndType is the PATHTYPE enumeration applied to Path and Text
// elements.
type PathEndType uint16

const (
	PathEndSquareFlush    PathEndType = 0
	PathEndRound          PathEndType = 1
	PathEndSquareExtended PathEndType = 2
)

func pathEndTypeFromU16(value uint16) (PathEndType, bool) {
	switch PathEndType(value) {
	case PathEndSquareFlush, PathEndRound, PathEndSquareExtended:
		return PathEndType(value), true
	default:
		return 0, false
	}
}

func (p PathEndType) String() string {
	switch p {
	case PathEndSquareFlush:
		return "SquareFlush"
	case PathEndRound:
		return "Round"
	case PathEndSquareExtended:
		return "SquareExtended"
	default:
		return "Unknown"
	}
}
