// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"sort"
)

// Writer serializes a Library to the GDSII Stream Format. Structures are
// written in a deterministic order (sorted by name) rather than map
// iteration order, so two calls over the same library always produce
// byte-identical output.
type Writer struct {
	bw   *bufio.Writer
	opts *Options
}

// NewWriter wraps w for GDSII encoding. opts may be nil.
func NewWriter(w io.Writer, opts *Options) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, 64*1024), opts: normalizeOptions(opts)}
}

// WriteFile truncates (or creates) path and writes lib to it.
func WriteFile(path string, lib *Library, opts *Options) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Err: err}
	}
	defer f.Close()

	if err := WriteTo(f, lib, opts); err != nil {
		return err
	}
	return nil
}

// WriteTo encodes lib to w.
func WriteTo(w io.Writer, lib *Library, opts *Options) error {
	writer := NewWriter(w, opts)
	if err := writer.Write(lib); err != nil {
		return err
	}
	return writer.Flush()
}

// Flush pushes any buffered bytes to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return &IOError{Err: err}
	}
	return nil
}

// Write encodes a complete library.
func (w *Writer) Write(lib *Library) error {
	if err := w.writeHeader(lib); err != nil {
		return err
	}
	if err := w.writeLibraryBegin(lib); err != nil {
		return err
	}
	if err := w.writeLibraryOptions(lib); err != nil {
		return err
	}
	if err := w.writeStringRecord(LibName, lib.Name); err != nil {
		return err
	}
	if err := w.writeUnits(lib); err != nil {
		return err
	}
	if err := w.writeStructures(lib); err != nil {
		return err
	}
	return w.writeFixedRecord(EndLib, 4)
}

func (w *Writer) writeHeader(lib *Library) error {
	return w.writeI16Record(Header, lib.Version)
}

func (w *Writer) writeLibraryBegin(lib *Library) error {
	if err := w.writeRecordHeader(28, BgnLib); err != nil {
		return err
	}
	if err := w.writeDateTime(lib.CreateDate); err != nil {
		return err
	}
	return w.writeDateTime(lib.ModifyDate)
}

func (w *Writer) writeLibraryOptions(lib *Library) error {
	if lib.RefLibs != nil {
		if err := w.writeRecordHeader(94, RefLibs); err != nil {
			return err
		}
		if err := w.writeFixedString(lib.RefLibs[0], 45); err != nil {
			return err
		}
		if err := w.writeFixedString(lib.RefLibs[1], 45); err != nil {
			return err
		}
	}
	if lib.Fonts != nil {
		if err := w.writeRecordHeader(4*44+4, Fonts); err != nil {
			return err
		}
		for _, f := range lib.Fonts {
			if err := w.writeFixedString(f, 44); err != nil {
				return err
			}
		}
	}
	if lib.AttrTable != nil {
		if err := w.writeRecordHeader(48, AttrTable); err != nil {
			return err
		}
		if err := w.writeFixedString(*lib.AttrTable, 44); err != nil {
			return err
		}
	}
	if lib.Generations != nil {
		if err := w.writeI16Record(Generations, *lib.Generations); err != nil {
			return err
		}
	}
	if lib.Format != nil {
		if err := w.writeU16Record(Format, uint16(*lib.Format)); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeUnits(lib *Library) error {
	if err := w.writeRecordHeader(20, Units); err != nil {
		return err
	}
	if err := w.writeF64(lib.UserUnitsPerDBUnit); err != nil {
		return err
	}
	return w.writeF64(lib.MetersPerDBUnit)
}

// writeStructures visits every structure in deterministic name order,
// acquiring each one's own read lock in turn rather than holding the
// library as a whole.
func (w *Writer) writeStructures(lib *Library) error {
	names := make([]string, 0, len(lib.Structures))
	for name := range lib.Structures {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var err error
		lib.Structures[name].View(func(s *Structure) {
			err = w.writeStructure(s)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeStructure(s *Structure) error {
	if err := w.writeRecordHeader(28, BgnStr); err != nil {
		return err
	}
	if err := w.writeDateTime(s.CreateDate); err != nil {
		return err
	}
	if err := w.writeDateTime(s.ModifyDate); err != nil {
		return err
	}
	if err := w.writeStringRecord(StrName, s.Name); err != nil {
		return err
	}

	for _, b := range s.Boundaries {
		if err := w.writeBoundary(b); err != nil {
			return err
		}
	}
	for _, p := range s.Paths {
		if err := w.writePath(p); err != nil {
			return err
		}
	}
	for _, sr := range s.SRefs {
		if err := w.writeSRef(sr); err != nil {
			return err
		}
	}
	for _, ar := range s.ARefs {
		if err := w.writeARef(ar); err != nil {
			return err
		}
	}
	for _, t := range s.Texts {
		if err := w.writeText(t); err != nil {
			return err
		}
	}
	for _, n := range s.Nodes {
		if err := w.writeNode(n); err != nil {
			return err
		}
	}
	for _, bx := range s.Boxes {
		if err := w.writeBox(bx); err != nil {
			return err
		}
	}

	return w.writeFixedRecord(EndStr, 4)
}

func (w *Writer) writeElFlagsPlex(elFlags *int16, plex *int32) error {
	if elFlags != nil {
		if err := w.writeI16Record(ElFlags, *elFlags); err != nil {
			return err
		}
	}
	if plex != nil {
		if err := w.writeI32Record(Plex, *plex); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeBoundary(b *Boundary) error {
	if err := w.writeFixedRecord(Boundary, 4); err != nil {
		return err
	}
	if err := w.writeElFlagsPlex(b.ElFlags, b.Plex); err != nil {
		return err
	}
	if err := w.writeI16Record(Layer, b.Layer); err != nil {
		return err
	}
	if err := w.writeI16Record(DataType, b.DataType); err != nil {
		return err
	}
	if err := w.writeXy(b.Xy); err != nil {
		return err
	}
	return w.writeFixedRecord(EndEle, 4)
}

func (w *Writer) writePath(p *Path) error {
	if err := w.writeFixedRecord(Path, 4); err != nil {
		return err
	}
	if err := w.writeElFlagsPlex(p.ElFlags, p.Plex); err != nil {
		return err
	}
	if err := w.writeI16Record(Layer, p.Layer); err != nil {
		return err
	}
	if err := w.writeI16Record(DataType, p.DataType); err != nil {
		return err
	}
	if p.PathType != nil {
		if err := w.writeU16Record(PathType, uint16(*p.PathType)); err != nil {
			return err
		}
	}
	if p.Width != nil {
		if err := w.writeI32Record(Width, *p.Width); err != nil {
			return err
		}
	}
	if err := w.writeXy(p.Xy); err != nil {
		return err
	}
	if p.PurposeLayer != nil {
		if err := w.writeI16Record(TextType, *p.PurposeLayer); err != nil {
			return err
		}
	}
	// BeginExtension/EndExtension are only meaningful alongside an
	// explicit Width; a path parsed with Options.PreserveExtensions=false
	// never populates them, and one built programmatically without a
	// Width has nothing for them to extend.
	if p.Width != nil {
		if p.BeginExtension != nil {
			if err := w.writeI32Record(BgnExtn, *p.BeginExtension); err != nil {
				return err
			}
		}
		if p.EndExtension != nil {
			if err := w.writeI32Record(EndExtn, *p.EndExtension); err != nil {
				return err
			}
		}
	}
	return w.writeFixedRecord(EndEle, 4)
}

func (w *Writer) writeSRef(sr *SRef) error {
	if err := w.writeFixedRecord(SRef, 4); err != nil {
		return err
	}
	if err := w.writeElFlagsPlex(sr.ElFlags, sr.Plex); err != nil {
		return err
	}
	if err := w.writeStringRecord(SName, sr.SName); err != nil {
		return err
	}
	if sr.Transform != nil {
		if err := w.writeTransform(*sr.Transform); err != nil {
			return err
		}
	}
	if err := w.writeXy([]Coord{sr.Position}); err != nil {
		return err
	}
	return w.writeFixedRecord(EndEle, 4)
}

func (w *Writer) writeARef(ar *ARef) error {
	if err := w.writeFixedRecord(ARef, 4); err != nil {
		return err
	}
	if err := w.writeElFlagsPlex(ar.ElFlags, ar.Plex); err != nil {
		return err
	}
	if err := w.writeStringRecord(SName, ar.SName); err != nil {
		return err
	}
	if ar.Transform != nil {
		if err := w.writeTransform(*ar.Transform); err != nil {
			return err
		}
	}
	if err := w.writeRecordHeader(8, ColRow); err != nil {
		return err
	}
	if err := w.writeI16(ar.Col); err != nil {
		return err
	}
	if err := w.writeI16(ar.Row); err != nil {
		return err
	}
	if err := w.writeXy([]Coord{ar.Anchor, ar.ColumnEnd, ar.RowEnd}); err != nil {
		return err
	}
	return w.writeFixedRecord(EndEle, 4)
}

func (w *Writer) writeText(t *Text) error {
	if err := w.writeFixedRecord(Text, 4); err != nil {
		return err
	}
	if err := w.writeElFlagsPlex(t.ElFlags, t.Plex); err != nil {
		return err
	}
	if err := w.writeI16Record(Layer, t.Layer); err != nil {
		return err
	}
	if err := w.writeI16Record(TextType, t.TextType); err != nil {
		return err
	}
	if t.Presentation != nil {
		if err := w.writeU16Record(Presentation, t.Presentation.toU16()); err != nil {
			return err
		}
	}
	if t.PathType != nil {
		if err := w.writeU16Record(PathType, uint16(*t.PathType)); err != nil {
			return err
		}
	}
	if t.Width != nil {
		if err := w.writeI32Record(Width, *t.Width); err != nil {
			return err
		}
	}
	if t.Transform != nil {
		if err := w.writeTransform(*t.Transform); err != nil {
			return err
		}
	}
	if err := w.writeXy([]Coord{t.Position}); err != nil {
		return err
	}
	if err := w.writeStringRecord(String, t.String); err != nil {
		return err
	}
	return w.writeFixedRecord(EndEle, 4)
}

func (w *Writer) writeNode(n *Node) error {
	if err := w.writeFixedRecord(Node, 4); err != nil {
		return err
	}
	if err := w.writeElFlagsPlex(n.ElFlags, n.Plex); err != nil {
		return err
	}
	if err := w.writeI16Record(Layer, n.Layer); err != nil {
		return err
	}
	if err := w.writeI16Record(NodeType, n.NodeType); err != nil {
		return err
	}
	if err := w.writeXy(n.Xy); err != nil {
		return err
	}
	return w.writeFixedRecord(EndEle, 4)
}

func (w *Writer) writeBox(b *Box) error {
	if err := w.writeFixedRecord(Box, 4); err != nil {
		return err
	}
	if err := w.writeElFlagsPlex(b.ElFlags, b.Plex); err != nil {
		return err
	}
	if err := w.writeI16Record(Layer, b.Layer); err != nil {
		return err
	}
	if err := w.writeI16Record(BoxType, b.BoxType); err != nil {
		return err
	}
	if err := w.writeXy(b.Xy); err != nil {
		return err
	}
	return w.writeFixedRecord(EndEle, 4)
}

func (w *Writer) writeTransform(t Transform) error {
	if err := w.writeU16Record(STrans, t.flagsToU16()); err != nil {
		return err
	}
	if t.Magnification != nil {
		if err := w.writeF64Record(Mag, *t.Magnification); err != nil {
			return err
		}
	}
	if t.Angle != nil {
		if err := w.writeF64Record(Angle, *t.Angle); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeXy(xy []Coord) error {
	size := 4 + len(xy)*8
	if err := w.writeRecordHeader(size, Xy); err != nil {
		return err
	}
	for _, c := range xy {
		if err := w.writeI32(c.X); err != nil {
			return err
		}
		if err := w.writeI32(c.Y); err != nil {
			return err
		}
	}
	return nil
}

// --- record-level primitives -------------------------------------------------

func (w *Writer) writeRecordHeader(size int, tag RecordType) error {
	var buf [4]byte
	binary.BigEndian.PutUint16(buf[0:2], uint16(size))
	binary.BigEndian.PutUint16(buf[2:4], uint16(tag))
	return w.write(buf[:])
}

// writeFixedRecord writes a bare header-only record (e.g. BOUNDARY,
// ENDEL, ENDLIB) whose declared size is exactly 4.
func (w *Writer) writeFixedRecord(tag RecordType, size int) error {
	return w.writeRecordHeader(size, tag)
}

func (w *Writer) writeI16Record(tag RecordType, v int16) error {
	if err := w.writeRecordHeader(6, tag); err != nil {
		return err
	}
	return w.writeI16(v)
}

func (w *Writer) writeU16Record(tag RecordType, v uint16) error {
	if err := w.writeRecordHeader(6, tag); err != nil {
		return err
	}
	return w.writeU16(v)
}

func (w *Writer) writeI32Record(tag RecordType, v int32) error {
	if err := w.writeRecordHeader(8, tag); err != nil {
		return err
	}
	return w.writeI32(v)
}

func (w *Writer) writeF64Record(tag RecordType, v float64) error {
	if err := w.writeRecordHeader(12, tag); err != nil {
		return err
	}
	return w.writeF64(v)
}

// writeStringRecord writes a variable-length string record, padding its
// payload to an even length with a trailing NUL as GDSII requires.
func (w *Writer) writeStringRecord(tag RecordType, s string) error {
	payload := []byte(s)
	if len(payload)%2 != 0 {
		payload = append(payload, 0)
	}
	if err := w.writeRecordHeader(4+len(payload), tag); err != nil {
		return err
	}
	return w.write(payload)
}

// writeFixedString writes exactly n bytes: s truncated or NUL-padded to
// fit, used for the fixed-width RefLibs/Fonts/AttrTable slots.
func (w *Writer) writeFixedString(s string, n int) error {
	buf := make([]byte, n)
	copy(buf, s)
	return w.write(buf)
}

func (w *Writer) writeDateTime(d DateTime) error {
	if err := w.writeI16(d.Year); err != nil {
		return err
	}
	if err := w.writeI16(d.Month); err != nil {
		return err
	}
	if err := w.writeI16(d.Day); err != nil {
		return err
	}
	if err := w.writeI16(d.Hour); err != nil {
		return err
	}
	if err := w.writeI16(d.Minute); err != nil {
		return err
	}
	return w.writeI16(d.Second)
}

// --- byte-level primitives ---------------------------------------------------

func (w *Writer) write(buf []byte) error {
	if _, err := w.bw.Write(buf); err != nil {
		return &IOError{Err: err}
	}
	return nil
}

func (w *Writer) writeU16(v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	return w.write(buf[:])
}

func (w *Writer) writeI16(v int16) error {
	return w.writeU16(uint16(v))
}

func (w *Writer) writeI32(v int32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	return w.write(buf[:])
}

func (w *Writer) writeF64(v float64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], ieeeToIBM(v))
	return w.write(buf[:])
}
