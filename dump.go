// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

import (
	"fmt"
	"io"
	"sort"
)

// Dump writes a deterministic, human-readable rendering of lib to w: one
// attribute per line, structures and their elements indented by four
// spaces per nesting level, in the same order fields appear on the wire.
// It never mutates lib and takes only read locks on its structures.
func Dump(w io.Writer, lib *Library) error {
	d := &dumper{w: w}
	d.printf(0, "Library %q", lib.Name)
	d.printf(1, "Version: %d", lib.Version)
	d.printf(1, "Created: %s", lib.CreateDate)
	d.printf(1, "Modified: %s", lib.ModifyDate)
	d.printf(1, "Units: %g user units/db unit, %g meters/db unit", lib.UserUnitsPerDBUnit, lib.MetersPerDBUnit)
	if lib.RefLibs != nil {
		d.printf(1, "RefLibs: %q, %q", lib.RefLibs[0], lib.RefLibs[1])
	}
	if lib.Fonts != nil {
		d.printf(1, "Fonts: %q, %q, %q, %q", lib.Fonts[0], lib.Fonts[1], lib.Fonts[2], lib.Fonts[3])
	}
	if lib.AttrTable != nil {
		d.printf(1, "AttrTable: %q", *lib.AttrTable)
	}
	if lib.Generations != nil {
		d.printf(1, "Generations: %d", *lib.Generations)
	}
	if lib.Format != nil {
		d.printf(1, "Format: %s", *lib.Format)
	}

	names := make([]string, 0, len(lib.Structures))
	for name := range lib.Structures {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		lib.Structures[name].View(func(s *Structure) {
			d.dumpStructure(s)
		})
	}
	return d.err
}

type dumper struct {
	w   io.Writer
	err error
}

func (d *dumper) printf(depth int, format string, args ...any) {
	if d.err != nil {
		return
	}
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(d.w, "    "); err != nil {
			d.err = &IOError{Err: err}
			return
		}
	}
	if _, err := fmt.Fprintf(d.w, format+"\n", args...); err != nil {
		d.err = &IOError{Err: err}
	}
}

func (d *dumper) dumpStructure(s *Structure) {
	d.printf(1, "Structure %q", s.Name)
	d.printf(2, "Created: %s", s.CreateDate)
	d.printf(2, "Modified: %s", s.ModifyDate)

	for i, b := range s.Boundaries {
		d.printf(2, "Boundary[%d]", i)
		d.dumpElFlagsPlex(b.ElFlags, b.Plex)
		d.printf(3, "Layer: %d", b.Layer)
		d.printf(3, "DataType: %d", b.DataType)
		d.dumpXy(b.Xy)
	}
	for i, p := range s.Paths {
		d.printf(2, "Path[%d]", i)
		d.dumpElFlagsPlex(p.ElFlags, p.Plex)
		d.printf(3, "Layer: %d", p.Layer)
		d.printf(3, "DataType: %d", p.DataType)
		if p.PathType != nil {
			d.printf(3, "PathType: %s", *p.PathType)
		}
		if p.Width != nil {
			d.printf(3, "Width: %d", *p.Width)
		}
		d.dumpXy(p.Xy)
		if p.PurposeLayer != nil {
			d.printf(3, "PurposeLayer: %d", *p.PurposeLayer)
		}
		if p.BeginExtension != nil {
			d.printf(3, "BeginExtension: %d", *p.BeginExtension)
		}
		if p.EndExtension != nil {
			d.printf(3, "EndExtension: %d", *p.EndExtension)
		}
	}
	for i, sr := range s.SRefs {
		d.printf(2, "SRef[%d]", i)
		d.dumpElFlagsPlex(sr.ElFlags, sr.Plex)
		d.printf(3, "SName: %q", sr.SName)
		d.dumpTransform(sr.Transform)
		d.printf(3, "Position: %s", sr.Position)
	}
	for i, ar := range s.ARefs {
		d.printf(2, "ARef[%d]", i)
		d.dumpElFlagsPlex(ar.ElFlags, ar.Plex)
		d.printf(3, "SName: %q", ar.SName)
		d.dumpTransform(ar.Transform)
		d.printf(3, "Col: %d Row: %d", ar.Col, ar.Row)
		d.printf(3, "Anchor: %s ColumnEnd: %s RowEnd: %s", ar.Anchor, ar.ColumnEnd, ar.RowEnd)
	}
	for i, t := range s.Texts {
		d.printf(2, "Text[%d]", i)
		d.dumpElFlagsPlex(t.ElFlags, t.Plex)
		d.printf(3, "Layer: %d", t.Layer)
		d.printf(3, "TextType: %d", t.TextType)
		if t.Presentation != nil {
			d.printf(3, "Presentation: %s", *t.Presentation)
		}
		if t.PathType != nil {
			d.printf(3, "PathType: %s", *t.PathType)
		}
		if t.Width != nil {
			d.printf(3, "Width: %d", *t.Width)
		}
		d.dumpTransform(t.Transform)
		d.printf(3, "Position: %s", t.Position)
		d.printf(3, "String: %q", t.String)
	}
	for i, n := range s.Nodes {
		d.printf(2, "Node[%d]", i)
		d.dumpElFlagsPlex(n.ElFlags, n.Plex)
		d.printf(3, "Layer: %d", n.Layer)
		d.printf(3, "NodeType: %d", n.NodeType)
		d.dumpXy(n.Xy)
	}
	for i, bx := range s.Boxes {
		d.printf(2, "Box[%d]", i)
		d.dumpElFlagsPlex(bx.ElFlags, bx.Plex)
		d.printf(3, "Layer: %d", bx.Layer)
		d.printf(3, "BoxType: %d", bx.BoxType)
		d.dumpXy(bx.Xy)
	}
}

func (d *dumper) dumpElFlagsPlex(elFlags *int16, plex *int32) {
	if elFlags != nil {
		d.printf(3, "ElFlags: %d", *elFlags)
	}
	if plex != nil {
		d.printf(3, "Plex: %d", *plex)
	}
}

func (d *dumper) dumpTransform(t *Transform) {
	if t == nil {
		return
	}
	d.printf(3, "Transform: reflect=%t absMag=%t absAngle=%t mag=%g angle=%g",
		t.Reflect, t.AbsoluteMagnification, t.AbsoluteAngle, t.MagnificationOr(1), t.AngleOr(0))
}

func (d *dumper) dumpXy(xy []Coord) {
	d.printf(3, "Xy: %d points", len(xy))
	for i, c := range xy {
		d.printf(4, "[%d] %s", i, c)
	}
}
