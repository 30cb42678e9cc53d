// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

import "testing"

func TestNewLibraryDefaults(t *testing.T) {
	lib := NewLibrary("TOP", 600, 0.001, 1e-9)
	if lib.Name != "TOP" || lib.Version != 600 {
		t.Fatalf("Name/Version = %q/%d, want TOP/600", lib.Name, lib.Version)
	}
	if lib.Structures == nil || len(lib.Structures) != 0 {
		t.Fatalf("Structures = %v, want an empty non-nil map", lib.Structures)
	}
	if lib.RefLibs != nil || lib.Fonts != nil || lib.AttrTable != nil || lib.Generations != nil || lib.Format != nil {
		t.Fatalf("optional library fields should start nil")
	}
}

func TestLibraryAddStructureAndLookup(t *testing.T) {
	lib := NewLibrary("TOP", 600, 0.001, 1e-9)
	h := lib.AddStructure(NewStructure("CELL_A"))
	if h.Name() != "CELL_A" {
		t.Errorf("AddStructure handle Name() = %q, want CELL_A", h.Name())
	}
	if got := lib.Structure("CELL_A"); got != h {
		t.Errorf("Structure(\"CELL_A\") returned a different handle than AddStructure")
	}
	if got := lib.Structure("MISSING"); got != nil {
		t.Errorf("Structure(\"MISSING\") = %v, want nil", got)
	}
}

func TestLibraryAddStructureOverwritesSameName(t *testing.T) {
	lib := NewLibrary("TOP", 600, 0.001, 1e-9)
	lib.AddStructure(NewStructure("CELL_A"))

	replacement := NewStructure("CELL_A")
	replacement.Boundaries = append(replacement.Boundaries, NewBoundary(3))
	lib.AddStructure(replacement)

	if len(lib.Structures) != 1 {
		t.Fatalf("Structures = %d, want 1 after overwriting the same name", len(lib.Structures))
	}
	lib.Structure("CELL_A").View(func(s *Structure) {
		if len(s.Boundaries) != 1 || s.Boundaries[0].Layer != 3 {
			t.Fatalf("second AddStructure(\"CELL_A\") did not replace the first")
		}
	})
}

func TestLibraryAddStructureToNilMap(t *testing.T) {
	lib := &Library{Name: "TOP", Version: 600}
	lib.AddStructure(NewStructure("CELL_A"))
	if len(lib.Structures) != 1 {
		t.Fatalf("AddStructure on a zero-value Library did not initialize Structures")
	}
}
