// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestReadEmptyLibrary(t *testing.T) {
	lib, err := ReadFile("testdata/empty.gds", nil)
	if err != nil {
		t.Fatalf("ReadFile(empty.gds): %v", err)
	}
	if lib.Name != "EMPTY" {
		t.Errorf("Name = %q, want EMPTY", lib.Name)
	}
	if lib.Version != 600 {
		t.Errorf("Version = %d, want 600", lib.Version)
	}
	if lib.UserUnitsPerDBUnit != 0.001 {
		t.Errorf("UserUnitsPerDBUnit = %v, want 0.001", lib.UserUnitsPerDBUnit)
	}
	if lib.MetersPerDBUnit != 1e-9 {
		t.Errorf("MetersPerDBUnit = %v, want 1e-9", lib.MetersPerDBUnit)
	}
	if len(lib.Structures) != 0 {
		t.Errorf("Structures = %d, want 0", len(lib.Structures))
	}
}

func TestReadBoundary(t *testing.T) {
	lib, err := ReadFile("testdata/boundary.gds", nil)
	if err != nil {
		t.Fatalf("ReadFile(boundary.gds): %v", err)
	}
	h := lib.Structure("CELL_A")
	if h == nil {
		t.Fatal("missing structure CELL_A")
	}
	h.View(func(s *Structure) {
		if len(s.Boundaries) != 1 {
			t.Fatalf("Boundaries = %d, want 1", len(s.Boundaries))
		}
		b := s.Boundaries[0]
		if b.Layer != 1 || b.DataType != 0 {
			t.Errorf("boundary layer/datatype = %d/%d, want 1/0", b.Layer, b.DataType)
		}
		want := []Coord{{0, 0}, {0, 100}, {100, 100}, {100, 0}, {0, 0}}
		if len(b.Xy) != len(want) {
			t.Fatalf("Xy len = %d, want %d", len(b.Xy), len(want))
		}
		for i := range want {
			if b.Xy[i] != want[i] {
				t.Errorf("Xy[%d] = %v, want %v", i, b.Xy[i], want[i])
			}
		}
		if !b.IsClosed() {
			t.Error("boundary should report IsClosed()")
		}
	})
}

func TestReadSRefWithTransform(t *testing.T) {
	lib, err := ReadFile("testdata/sref.gds", nil)
	if err != nil {
		t.Fatalf("ReadFile(sref.gds): %v", err)
	}
	h := lib.Structure("TOP")
	if h == nil {
		t.Fatal("missing structure TOP")
	}
	h.View(func(s *Structure) {
		if len(s.SRefs) != 1 {
			t.Fatalf("SRefs = %d, want 1", len(s.SRefs))
		}
		sr := s.SRefs[0]
		if sr.SName != "CELL_A" {
			t.Errorf("SName = %q, want CELL_A", sr.SName)
		}
		if sr.Position != (Coord{500, 500}) {
			t.Errorf("Position = %v, want (500,500)", sr.Position)
		}
		if sr.Transform == nil {
			t.Fatal("Transform should be present")
		}
		if !sr.Transform.Reflect {
			t.Error("Transform.Reflect should be true")
		}
		if sr.Transform.MagnificationOr(1) != 2.0 {
			t.Errorf("Magnification = %v, want 2.0", sr.Transform.MagnificationOr(1))
		}
		if sr.Transform.AngleOr(0) != 90.0 {
			t.Errorf("Angle = %v, want 90.0", sr.Transform.AngleOr(0))
		}
	})
}

func TestReadARef(t *testing.T) {
	lib, err := ReadFile("testdata/aref.gds", nil)
	if err != nil {
		t.Fatalf("ReadFile(aref.gds): %v", err)
	}
	h := lib.Structure("ARRAY_TOP")
	if h == nil {
		t.Fatal("missing structure ARRAY_TOP")
	}
	h.View(func(s *Structure) {
		if len(s.ARefs) != 1 {
			t.Fatalf("ARefs = %d, want 1", len(s.ARefs))
		}
		ar := s.ARefs[0]
		if ar.SName != "CELL_A" {
			t.Errorf("SName = %q, want CELL_A", ar.SName)
		}
		if ar.Col != 3 || ar.Row != 2 {
			t.Errorf("Col/Row = %d/%d, want 3/2", ar.Col, ar.Row)
		}
		if ar.Anchor != (Coord{0, 0}) || ar.ColumnEnd != (Coord{300, 0}) || ar.RowEnd != (Coord{0, 200}) {
			t.Errorf("anchor/columnEnd/rowEnd = %v/%v/%v", ar.Anchor, ar.ColumnEnd, ar.RowEnd)
		}
	})
}

func TestReadTextWithPresentation(t *testing.T) {
	lib, err := ReadFile("testdata/text.gds", nil)
	if err != nil {
		t.Fatalf("ReadFile(text.gds): %v", err)
	}
	h := lib.Structure("LABELS")
	if h == nil {
		t.Fatal("missing structure LABELS")
	}
	h.View(func(s *Structure) {
		if len(s.Texts) != 1 {
			t.Fatalf("Texts = %d, want 1", len(s.Texts))
		}
		tx := s.Texts[0]
		if tx.String != "HELLO" {
			t.Errorf("String = %q, want HELLO", tx.String)
		}
		if tx.Position != (Coord{10, 20}) {
			t.Errorf("Position = %v, want (10,20)", tx.Position)
		}
		if tx.Presentation == nil {
			t.Fatal("Presentation should be present")
		}
		if tx.Presentation.Font != Font1 || tx.Presentation.VJustify != VJustifyMiddle || tx.Presentation.HJustify != HJustifyCenter {
			t.Errorf("Presentation = %+v, want font1/middle/center", *tx.Presentation)
		}
	})
}

func TestReadMalformedBgnLibReportsOffsetAndChain(t *testing.T) {
	_, err := ReadFile("testdata/malformed_bgnlib.gds", nil)
	if err == nil {
		t.Fatal("expected a parse error for the malformed BgnLib fixture")
	}

	msg := err.Error()
	if !strings.Contains(msg, "read library begin") {
		t.Errorf("error message %q missing the read library begin label", msg)
	}
	if !strings.Contains(msg, "at offset 6") {
		t.Errorf("error message %q missing offset 6", msg)
	}

	var sizeErr *UnexpectedRecordSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("errors.As could not recover *UnexpectedRecordSizeError from %q", msg)
	}
	if sizeErr.Want != 28 || sizeErr.Got != 20 {
		t.Errorf("UnexpectedRecordSizeError = %+v, want {Want:28 Got:20}", sizeErr)
	}
}

func TestReadBytesMatchesReadFile(t *testing.T) {
	lib, err := ReadFile("testdata/boundary.gds", nil)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if lib.Name != "LIB_A" {
		t.Errorf("Name = %q, want LIB_A", lib.Name)
	}

	data, err := os.ReadFile("testdata/boundary.gds")
	if err != nil {
		t.Fatalf("os.ReadFile: %v", err)
	}
	fromBytes, err := ReadBytes(data, nil)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if fromBytes.Name != lib.Name || len(fromBytes.Structures) != len(lib.Structures) {
		t.Errorf("ReadBytes gave %q with %d structures, ReadFile gave %q with %d",
			fromBytes.Name, len(fromBytes.Structures), lib.Name, len(lib.Structures))
	}
}

func TestReadFastSkipsElements(t *testing.T) {
	lib, err := ReadFile("testdata/boundary.gds", &Options{Fast: true})
	if err != nil {
		t.Fatalf("ReadFile with Fast: %v", err)
	}
	h := lib.Structure("CELL_A")
	if h == nil {
		t.Fatal("missing structure CELL_A even in fast mode")
	}
	h.View(func(s *Structure) {
		if len(s.Boundaries) != 0 {
			t.Errorf("Fast mode should skip element bodies, got %d boundaries", len(s.Boundaries))
		}
	})
}
