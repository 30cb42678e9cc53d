// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

// Library is the root entity: a named collection of structures sharing a
// unit system.
type Library struct {
	Version    int16
	CreateDate DateTime
	ModifyDate DateTime
	Name       string

	// RefLibs, when present, names exactly two reference libraries, each
	// stored (and written back) in a fixed 45-byte field.
	RefLibs *[2]string

	// Fonts, when present, names exactly four font files, each stored in
	// a fixed 44-byte field.
	Fonts *[4]string

	// AttrTable, when present, is stored in a fixed 44-byte field.
	AttrTable *string

	Generations *int16
	Format      *LibraryFormat

	UserUnitsPerDBUnit float64
	MetersPerDBUnit    float64

	// Structures maps structure name to a shared, mutable handle.
	// Insertion order is not a contract; structure names are unique
	// within a library.
	Structures map[string]*StructureHandle
}

// NewLibrary builds an empty library with the given name, version and
// unit system, ready to have structures added.
func NewLibrary(name string, version int16, userUnitsPerDBUnit, metersPerDBUnit float64) *Library {
	return &Library{
		Version:            version,
		Name:               name,
		UserUnitsPerDBUnit: userUnitsPerDBUnit,
		MetersPerDBUnit:    metersPerDBUnit,
		Structures:         make(map[string]*StructureHandle),
	}
}

// AddStructure inserts s into the library under s.Name, wrapping it in a
// fresh handle, and returns that handle. It overwrites any existing
// structure of the same name.
func (l *Library) AddStructure(s *Structure) *StructureHandle {
	h := NewStructureHandle(s)
	if l.Structures == nil {
		l.Structures = make(map[string]*StructureHandle)
	}
	l.Structures[s.Name] = h
	return h
}

// Structure returns the handle for the named structure, or nil if none
// exists.
func (l *Library) Structure(name string) *StructureHandle {
	return l.Structures[name]
}
