// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	mmap "github.com/edsrzf/mmap-go"
)

// Reader turns a GDSII byte stream into a Library. It is single-threaded
// and makes one forward pass over its input, peeking the next record's
// tag without consuming it whenever the grammar has an optional record
// to decide on.
type Reader struct {
	br     *bufio.Reader
	offset int64
	opts   *Options
}

// NewReader wraps r for GDSII decoding. opts may be nil.
func NewReader(r io.Reader, opts *Options) *Reader {
	return &Reader{br: bufio.NewReaderSize(r, 64*1024), opts: normalizeOptions(opts)}
}

// ReadBytes decodes a complete library from an in-memory buffer.
func ReadBytes(data []byte, opts *Options) (*Library, error) {
	return NewReader(bytes.NewReader(data), opts).Read()
}

// ReadFile memory-maps path and decodes a complete library from it,
// instead of buffering the file whole.
func ReadFile(path string, opts *Options) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Err: err}
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, &IOError{Err: err}
	}
	defer data.Unmap()

	return ReadBytes([]byte(data), opts)
}

// Read parses a whole library: HEADER BGNLIB [options] LIBNAME UNITS
// Structure* ENDLIB.
func (r *Reader) Read() (*Library, error) {
	lib := &Library{Structures: make(map[string]*StructureHandle)}

	if err := r.readHeader(lib); err != nil {
		return nil, wrap("read header", r.offset, err)
	}
	if err := r.readLibrary(lib); err != nil {
		return nil, wrap("read library", r.offset, err)
	}
	return lib, nil
}

func (r *Reader) readHeader(lib *Library) error {
	if err := r.ensureRecord(6, Header); err != nil {
		return err
	}
	v, err := r.takeI16Record()
	if err != nil {
		return err
	}
	lib.Version = v
	return nil
}

func (r *Reader) readLibrary(lib *Library) error {
	if err := r.readLibraryBegin(lib); err != nil {
		return wrap("read library begin", r.offset, err)
	}
	if err := r.readLibraryOptions(lib); err != nil {
		return wrap("read library options", r.offset, err)
	}
	if err := r.readLibraryName(lib); err != nil {
		return wrap("read library name", r.offset, err)
	}
	if err := r.readUnits(lib); err != nil {
		return wrap("read units", r.offset, err)
	}

	structures, err := r.readStructures()
	if err != nil {
		return wrap("read structures", r.offset, err)
	}
	lib.Structures = structures

	if err := r.readLibraryEnd(); err != nil {
		return wrap("read library end", r.offset, err)
	}
	return nil
}

func (r *Reader) readLibraryBegin(lib *Library) error {
	if err := r.ensureRecord(28, BgnLib); err != nil {
		return err
	}
	if err := r.consumeHeader(); err != nil {
		return err
	}
	create, err := r.readDateTime()
	if err != nil {
		return err
	}
	modify, err := r.readDateTime()
	if err != nil {
		return err
	}
	lib.CreateDate = create
	lib.ModifyDate = modify
	return nil
}

func (r *Reader) readLibraryName(lib *Library) error {
	if err := r.ensureRecordType(LibName); err != nil {
		return err
	}
	name, err := r.takeStringRecord()
	if err != nil {
		return err
	}
	lib.Name = name
	return nil
}

func (r *Reader) readUnits(lib *Library) error {
	if err := r.ensureRecord(20, Units); err != nil {
		return err
	}
	if err := r.consumeHeader(); err != nil {
		return err
	}
	user, err := r.readF64()
	if err != nil {
		return err
	}
	meters, err := r.readF64()
	if err != nil {
		return err
	}
	lib.UserUnitsPerDBUnit = user
	lib.MetersPerDBUnit = meters
	return nil
}

func (r *Reader) readLibraryEnd() error {
	if err := r.ensureRecord(4, EndLib); err != nil {
		return err
	}
	return r.discard(4)
}

// readLibraryOptions reads the optional header metadata block:
// (RefLibs | Fonts | AttrTable | Generations | Format [Mask* EndMasks])*
func (r *Reader) readLibraryOptions(lib *Library) error {
	for {
		tp, err := r.peekRecordType()
		if err != nil {
			return err
		}
		switch tp {
		case RefLibs:
			if err := r.readRefLibs(lib); err != nil {
				return wrap("read reflibs", r.offset, err)
			}
		case Fonts:
			if err := r.readFonts(lib); err != nil {
				return wrap("read fonts", r.offset, err)
			}
		case AttrTable:
			if err := r.readAttrTable(lib); err != nil {
				return wrap("read attrtable", r.offset, err)
			}
		case Generations:
			if err := r.readGenerations(lib); err != nil {
				return wrap("read generations", r.offset, err)
			}
		case Format:
			if err := r.readFormat(lib); err != nil {
				return wrap("read format", r.offset, err)
			}
		default:
			return nil
		}
	}
}

func (r *Reader) readRefLibs(lib *Library) error {
	if err := r.ensureRecord(94, RefLibs); err != nil {
		return err
	}
	if err := r.consumeHeader(); err != nil {
		return err
	}
	a, err := r.takeString(45)
	if err != nil {
		return err
	}
	b, err := r.takeString(45)
	if err != nil {
		return err
	}
	lib.RefLibs = &[2]string{a, b}
	return nil
}

func (r *Reader) readFonts(lib *Library) error {
	if err := r.ensureRecord(4*44+4, Fonts); err != nil {
		return err
	}
	if err := r.consumeHeader(); err != nil {
		return err
	}
	var fonts [4]string
	for i := range fonts {
		s, err := r.takeString(44)
		if err != nil {
			return err
		}
		fonts[i] = s
	}
	lib.Fonts = &fonts
	return nil
}

func (r *Reader) readAttrTable(lib *Library) error {
	if err := r.ensureRecord(48, AttrTable); err != nil {
		return err
	}
	if err := r.consumeHeader(); err != nil {
		return err
	}
	s, err := r.takeString(44)
	if err != nil {
		return err
	}
	lib.AttrTable = &s
	return nil
}

func (r *Reader) readGenerations(lib *Library) error {
	v, err := r.takeI16Record()
	if err != nil {
		return err
	}
	lib.Generations = &v
	return nil
}

func (r *Reader) readFormat(lib *Library) error {
	value, err := r.takeU16Record()
	if err != nil {
		return err
	}
	fmtCode, ok := libraryFormatFromU16(value)
	if !ok {
		return &InvalidEnumValueError{Field: "format", Value: value}
	}
	lib.Format = &fmtCode

	// Mask/EndMasks are accepted and discarded when present; skipping
	// them without error is sufficient since neither feeds the data
	// model.
	for {
		tp, err := r.peekRecordType()
		if err != nil {
			return err
		}
		if tp != Mask && tp != EndMasks {
			return nil
		}
		if err := r.skipRecord(); err != nil {
			return err
		}
		if tp == EndMasks {
			return nil
		}
	}
}

// skipRecord discards the record currently peeked, whatever its payload.
func (r *Reader) skipRecord() error {
	size, err := r.peekRecordSize()
	if err != nil {
		return err
	}
	return r.discard(size)
}

func (r *Reader) readStructures() (map[string]*StructureHandle, error) {
	structures := make(map[string]*StructureHandle)
	var count uint32
	for {
		tp, err := r.peekRecordType()
		if err != nil {
			return nil, err
		}
		if tp != BgnStr {
			return structures, nil
		}
		if count >= r.opts.MaxStructures {
			return nil, errors.New("gds: too many structures (exceeds MaxStructures)")
		}
		s, err := r.readStructure()
		if err != nil {
			return nil, wrap("read structure", r.offset, err)
		}
		structures[s.Name] = NewStructureHandle(s)
		count++
	}
}

func (r *Reader) readStructure() (*Structure, error) {
	s := &Structure{}

	if err := r.readStructureBegin(s); err != nil {
		return nil, wrap("read structure begin", r.offset, err)
	}
	if err := r.readStructureName(s); err != nil {
		return nil, wrap("read structure name", r.offset, err)
	}
	if r.opts.Fast {
		if err := r.skipStructureElements(); err != nil {
			return nil, wrap("skip structure elements", r.offset, err)
		}
	} else if err := r.readStructureElements(s); err != nil {
		return nil, wrap("read structure elements", r.offset, err)
	}
	if err := r.readStructureEnd(); err != nil {
		return nil, wrap("read structure end", r.offset, err)
	}
	return s, nil
}

func (r *Reader) readStructureBegin(s *Structure) error {
	if err := r.ensureRecord(28, BgnStr); err != nil {
		return err
	}
	if err := r.consumeHeader(); err != nil {
		return err
	}
	create, err := r.readDateTime()
	if err != nil {
		return err
	}
	modify, err := r.readDateTime()
	if err != nil {
		return err
	}
	s.CreateDate = create
	s.ModifyDate = modify
	return nil
}

func (r *Reader) readStructureName(s *Structure) error {
	if err := r.ensureRecordType(StrName); err != nil {
		return err
	}
	name, err := r.takeStringRecord()
	if err != nil {
		return err
	}
	s.Name = name
	return nil
}

func (r *Reader) readStructureEnd() error {
	if err := r.ensureRecord(4, EndStr); err != nil {
		return err
	}
	return r.discard(4)
}

// skipStructureElements advances past every element record without
// building entities, for Options.Fast.
func (r *Reader) skipStructureElements() error {
	for {
		tp, err := r.peekRecordType()
		if err != nil {
			return err
		}
		switch tp {
		case Boundary, Path, SRef, ARef, Text, Node, Box:
			for {
				inner, err := r.peekRecordType()
				if err != nil {
					return err
				}
				if err := r.skipRecord(); err != nil {
					return err
				}
				if inner == EndEle {
					break
				}
			}
		default:
			return nil
		}
	}
}

func (r *Reader) readStructureElements(s *Structure) error {
	for {
		tp, err := r.peekRecordType()
		if err != nil {
			return err
		}
		switch tp {
		case Boundary:
			b, err := r.readBoundaryElement()
			if err != nil {
				return wrap("read boundary", r.offset, err)
			}
			s.Boundaries = append(s.Boundaries, b)
		case Path:
			p, err := r.readPathElement()
			if err != nil {
				return wrap("read path", r.offset, err)
			}
			s.Paths = append(s.Paths, p)
		case SRef:
			sr, err := r.readSRefElement()
			if err != nil {
				return wrap("read sref", r.offset, err)
			}
			s.SRefs = append(s.SRefs, sr)
		case ARef:
			ar, err := r.readARefElement()
			if err != nil {
				return wrap("read aref", r.offset, err)
			}
			s.ARefs = append(s.ARefs, ar)
		case Text:
			t, err := r.readTextElement()
			if err != nil {
				return wrap("read text", r.offset, err)
			}
			s.Texts = append(s.Texts, t)
		case Node:
			n, err := r.readNodeElement()
			if err != nil {
				return wrap("read node", r.offset, err)
			}
			s.Nodes = append(s.Nodes, n)
		case Box:
			bx, err := r.readBoxElement()
			if err != nil {
				return wrap("read box", r.offset, err)
			}
			s.Boxes = append(s.Boxes, bx)
		default:
			return nil
		}
	}
}

// readElementHeader consumes the empty element-opening record (e.g.
// BOUNDARY, PATH) whose tag the caller has already peeked and switched
// on.
func (r *Reader) readElementHeader() error {
	if err := r.ensureRecordSize(4); err != nil {
		return err
	}
	return r.discard(4)
}

func (r *Reader) readElementEnd() error {
	if err := r.ensureRecord(4, EndEle); err != nil {
		return err
	}
	return r.discard(4)
}

// readOptionalElFlags/readOptionalPlex read the two fields every element
// may carry, returning nil pointers when absent.
func (r *Reader) readOptionalElFlags() (*int16, error) {
	tp, err := r.peekRecordType()
	if err != nil {
		return nil, err
	}
	if tp != ElFlags {
		return nil, nil
	}
	v, err := r.takeI16Record()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Reader) readOptionalPlex() (*int32, error) {
	tp, err := r.peekRecordType()
	if err != nil {
		return nil, err
	}
	if tp != Plex {
		return nil, nil
	}
	v, err := r.takeI32Record()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Reader) readBoundaryElement() (*Boundary, error) {
	if err := r.readElementHeader(); err != nil {
		return nil, err
	}
	b := &Boundary{}

	elFlags, err := r.readOptionalElFlags()
	if err != nil {
		return nil, err
	}
	b.ElFlags = elFlags

	plex, err := r.readOptionalPlex()
	if err != nil {
		return nil, err
	}
	b.Plex = plex

	if err := r.ensureRecordType(Layer); err != nil {
		return nil, &MissingRequiredFieldError{Element: "Boundary", Field: "Layer"}
	}
	layer, err := r.takeI16Record()
	if err != nil {
		return nil, err
	}
	b.Layer = layer

	if err := r.ensureRecordType(DataType); err != nil {
		return nil, &MissingRequiredFieldError{Element: "Boundary", Field: "DataType"}
	}
	dataType, err := r.takeI16Record()
	if err != nil {
		return nil, err
	}
	b.DataType = dataType

	if err := r.ensureRecordType(Xy); err != nil {
		return nil, &MissingRequiredFieldError{Element: "Boundary", Field: "Xy"}
	}
	xy, err := r.readXy()
	if err != nil {
		return nil, err
	}
	b.Xy = xy

	if err := r.readElementEnd(); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *Reader) readPathElement() (*Path, error) {
	if err := r.readElementHeader(); err != nil {
		return nil, err
	}
	p := &Path{}

	elFlags, err := r.readOptionalElFlags()
	if err != nil {
		return nil, err
	}
	p.ElFlags = elFlags

	plex, err := r.readOptionalPlex()
	if err != nil {
		return nil, err
	}
	p.Plex = plex

	if err := r.ensureRecordType(Layer); err != nil {
		return nil, &MissingRequiredFieldError{Element: "Path", Field: "Layer"}
	}
	layer, err := r.takeI16Record()
	if err != nil {
		return nil, err
	}
	p.Layer = layer

	if err := r.ensureRecordType(DataType); err != nil {
		return nil, &MissingRequiredFieldError{Element: "Path", Field: "DataType"}
	}
	dataType, err := r.takeI16Record()
	if err != nil {
		return nil, err
	}
	p.DataType = dataType

	tp, err := r.peekRecordType()
	if err != nil {
		return nil, err
	}
	if tp == PathType {
		pt, err := r.readPathEndType()
		if err != nil {
			return nil, err
		}
		p.PathType = &pt
	}

	tp, err = r.peekRecordType()
	if err != nil {
		return nil, err
	}
	if tp == Width {
		w, err := r.takeI32Record()
		if err != nil {
			return nil, err
		}
		p.Width = &w
	}

	if err := r.ensureRecordType(Xy); err != nil {
		return nil, &MissingRequiredFieldError{Element: "Path", Field: "Xy"}
	}
	xy, err := r.readXy()
	if err != nil {
		return nil, err
	}
	p.Xy = xy

	tp, err = r.peekRecordType()
	if err != nil {
		return nil, err
	}
	if tp == TextType {
		pl, err := r.takeI16Record()
		if err != nil {
			return nil, err
		}
		p.PurposeLayer = &pl
	}

	tp, err = r.peekRecordType()
	if err != nil {
		return nil, err
	}
	if tp == BgnExtn {
		v, err := r.takeI32Record()
		if err != nil {
			return nil, err
		}
		if r.opts.PreserveExtensions {
			p.BeginExtension = &v
		}
	}

	tp, err = r.peekRecordType()
	if err != nil {
		return nil, err
	}
	if tp == EndExtn {
		v, err := r.takeI32Record()
		if err != nil {
			return nil, err
		}
		if r.opts.PreserveExtensions {
			p.EndExtension = &v
		}
	}

	if err := r.readElementEnd(); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *Reader) readSRefElement() (*SRef, error) {
	if err := r.readElementHeader(); err != nil {
		return nil, err
	}
	sr := &SRef{}

	elFlags, err := r.readOptionalElFlags()
	if err != nil {
		return nil, err
	}
	sr.ElFlags = elFlags

	plex, err := r.readOptionalPlex()
	if err != nil {
		return nil, err
	}
	sr.Plex = plex

	if err := r.ensureRecordType(SName); err != nil {
		return nil, &MissingRequiredFieldError{Element: "SRef", Field: "SName"}
	}
	sname, err := r.takeStringRecord()
	if err != nil {
		return nil, err
	}
	sr.SName = sname

	tp, err := r.peekRecordType()
	if err != nil {
		return nil, err
	}
	if tp == STrans {
		t, err := r.readTransform()
		if err != nil {
			return nil, err
		}
		sr.Transform = &t
	}

	if err := r.ensureRecordType(Xy); err != nil {
		return nil, &MissingRequiredFieldError{Element: "SRef", Field: "Position"}
	}
	pos, err := r.readPosition()
	if err != nil {
		return nil, err
	}
	sr.Position = pos

	if err := r.readElementEnd(); err != nil {
		return nil, err
	}
	return sr, nil
}

func (r *Reader) readARefElement() (*ARef, error) {
	if err := r.readElementHeader(); err != nil {
		return nil, err
	}
	ar := &ARef{}

	elFlags, err := r.readOptionalElFlags()
	if err != nil {
		return nil, err
	}
	ar.ElFlags = elFlags

	plex, err := r.readOptionalPlex()
	if err != nil {
		return nil, err
	}
	ar.Plex = plex

	if err := r.ensureRecordType(SName); err != nil {
		return nil, &MissingRequiredFieldError{Element: "ARef", Field: "SName"}
	}
	sname, err := r.takeStringRecord()
	if err != nil {
		return nil, err
	}
	ar.SName = sname

	tp, err := r.peekRecordType()
	if err != nil {
		return nil, err
	}
	if tp == STrans {
		t, err := r.readTransform()
		if err != nil {
			return nil, err
		}
		ar.Transform = &t
	}

	if err := r.ensureRecordType(ColRow); err != nil {
		return nil, &MissingRequiredFieldError{Element: "ARef", Field: "ColRow"}
	}
	col, row, err := r.readColRow()
	if err != nil {
		return nil, err
	}
	ar.Col, ar.Row = col, row

	if err := r.ensureRecordType(Xy); err != nil {
		return nil, &MissingRequiredFieldError{Element: "ARef", Field: "Xy"}
	}
	xy, err := r.readXy()
	if err != nil {
		return nil, err
	}
	if len(xy) != 3 {
		return nil, &UnexpectedCoordinateCountError{Count: len(xy)}
	}
	ar.Anchor, ar.ColumnEnd, ar.RowEnd = xy[0], xy[1], xy[2]

	if err := r.readElementEnd(); err != nil {
		return nil, err
	}
	return ar, nil
}

func (r *Reader) readTextElement() (*Text, error) {
	if err := r.readElementHeader(); err != nil {
		return nil, err
	}
	t := &Text{}

	elFlags, err := r.readOptionalElFlags()
	if err != nil {
		return nil, err
	}
	t.ElFlags = elFlags

	plex, err := r.readOptionalPlex()
	if err != nil {
		return nil, err
	}
	t.Plex = plex

	if err := r.ensureRecordType(Layer); err != nil {
		return nil, &MissingRequiredFieldError{Element: "Text", Field: "Layer"}
	}
	layer, err := r.takeI16Record()
	if err != nil {
		return nil, err
	}
	t.Layer = layer

	if err := r.ensureRecordType(TextType); err != nil {
		return nil, &MissingRequiredFieldError{Element: "Text", Field: "TextType"}
	}
	textType, err := r.takeI16Record()
	if err != nil {
		return nil, err
	}
	t.TextType = textType

	tp, err := r.peekRecordType()
	if err != nil {
		return nil, err
	}
	if tp == Presentation {
		p, err := r.readPresentation()
		if err != nil {
			return nil, err
		}
		t.Presentation = &p
	}

	tp, err = r.peekRecordType()
	if err != nil {
		return nil, err
	}
	if tp == PathType {
		pt, err := r.readPathEndType()
		if err != nil {
			return nil, err
		}
		t.PathType = &pt
	}

	tp, err = r.peekRecordType()
	if err != nil {
		return nil, err
	}
	if tp == Width {
		w, err := r.takeI32Record()
		if err != nil {
			return nil, err
		}
		t.Width = &w
	}

	tp, err = r.peekRecordType()
	if err != nil {
		return nil, err
	}
	if tp == STrans {
		tr, err := r.readTransform()
		if err != nil {
			return nil, err
		}
		t.Transform = &tr
	}

	if err := r.ensureRecordType(Xy); err != nil {
		return nil, &MissingRequiredFieldError{Element: "Text", Field: "Position"}
	}
	pos, err := r.readPosition()
	if err != nil {
		return nil, err
	}
	t.Position = pos

	if err := r.ensureRecordType(String); err != nil {
		return nil, &MissingRequiredFieldError{Element: "Text", Field: "String"}
	}
	s, err := r.takeStringRecord()
	if err != nil {
		return nil, err
	}
	t.String = s

	if err := r.readElementEnd(); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *Reader) readNodeElement() (*Node, error) {
	if err := r.readElementHeader(); err != nil {
		return nil, err
	}
	n := &Node{}

	elFlags, err := r.readOptionalElFlags()
	if err != nil {
		return nil, err
	}
	n.ElFlags = elFlags

	plex, err := r.readOptionalPlex()
	if err != nil {
		return nil, err
	}
	n.Plex = plex

	if err := r.ensureRecordType(Layer); err != nil {
		return nil, &MissingRequiredFieldError{Element: "Node", Field: "Layer"}
	}
	layer, err := r.takeI16Record()
	if err != nil {
		return nil, err
	}
	n.Layer = layer

	if err := r.ensureRecordType(NodeType); err != nil {
		return nil, &MissingRequiredFieldError{Element: "Node", Field: "NodeType"}
	}
	nodeType, err := r.takeI16Record()
	if err != nil {
		return nil, err
	}
	n.NodeType = nodeType

	if err := r.ensureRecordType(Xy); err != nil {
		return nil, &MissingRequiredFieldError{Element: "Node", Field: "Xy"}
	}
	xy, err := r.readXy()
	if err != nil {
		return nil, err
	}
	n.Xy = xy

	if err := r.readElementEnd(); err != nil {
		return nil, err
	}
	return n, nil
}

func (r *Reader) readBoxElement() (*Box, error) {
	if err := r.readElementHeader(); err != nil {
		return nil, err
	}
	b := &Box{}

	elFlags, err := r.readOptionalElFlags()
	if err != nil {
		return nil, err
	}
	b.ElFlags = elFlags

	plex, err := r.readOptionalPlex()
	if err != nil {
		return nil, err
	}
	b.Plex = plex

	if err := r.ensureRecordType(Layer); err != nil {
		return nil, &MissingRequiredFieldError{Element: "Box", Field: "Layer"}
	}
	layer, err := r.takeI16Record()
	if err != nil {
		return nil, err
	}
	b.Layer = layer

	if err := r.ensureRecordType(BoxType); err != nil {
		return nil, &MissingRequiredFieldError{Element: "Box", Field: "BoxType"}
	}
	boxType, err := r.takeI16Record()
	if err != nil {
		return nil, err
	}
	b.BoxType = boxType

	if err := r.ensureRecordType(Xy); err != nil {
		return nil, &MissingRequiredFieldError{Element: "Box", Field: "Xy"}
	}
	xy, err := r.readXy()
	if err != nil {
		return nil, err
	}
	b.Xy = xy

	if err := r.readElementEnd(); err != nil {
		return nil, err
	}
	return b, nil
}

// readXy consumes an XY record and returns its coordinates. Its payload
// length must be a multiple of 8 (two 32-bit integers per point).
func (r *Reader) readXy() ([]Coord, error) {
	size, err := r.peekRecordSize()
	if err != nil {
		return nil, err
	}
	if err := r.ensureRecordType(Xy); err != nil {
		return nil, err
	}
	if (size-4)%8 != 0 {
		return nil, &InvalidRecordSizeError{Size: size, Why: "Xy payload must be a multiple of 8 bytes"}
	}
	if err := r.consumeHeader(); err != nil {
		return nil, err
	}
	count := (size - 4) / 8
	coords := make([]Coord, count)
	for i := 0; i < count; i++ {
		x, err := r.readI32()
		if err != nil {
			return nil, err
		}
		y, err := r.readI32()
		if err != nil {
			return nil, err
		}
		coords[i] = Coord{X: x, Y: y}
	}
	return coords, nil
}

// readPosition reads an XY record that must carry exactly one
// coordinate, used for sref/text placement points.
func (r *Reader) readPosition() (Coord, error) {
	xy, err := r.readXy()
	if err != nil {
		return Coord{}, err
	}
	if len(xy) != 1 {
		return Coord{}, &UnexpectedCoordinateCountError{Count: len(xy)}
	}
	return xy[0], nil
}

func (r *Reader) readTransform() (Transform, error) {
	value, err := r.takeU16Record()
	if err != nil {
		return Transform{}, err
	}
	t := transformFlagsFromU16(value)

	tp, err := r.peekRecordType()
	if err != nil {
		return Transform{}, err
	}
	if tp == Mag {
		m, err := r.takeF64Record()
		if err != nil {
			return Transform{}, err
		}
		t.Magnification = &m
	}

	tp, err = r.peekRecordType()
	if err != nil {
		return Transform{}, err
	}
	if tp == Angle {
		a, err := r.takeF64Record()
		if err != nil {
			return Transform{}, err
		}
		t.Angle = &a
	}

	return t, nil
}

func (r *Reader) readPathEndType() (PathEndType, error) {
	value, err := r.takeU16Record()
	if err != nil {
		return 0, err
	}
	pt, ok := pathEndTypeFromU16(value)
	if !ok {
		return 0, &InvalidEnumValueError{Field: "path type", Value: value}
	}
	return pt, nil
}

func (r *Reader) readPresentation() (Presentation, error) {
	value, err := r.takeU16Record()
	if err != nil {
		return Presentation{}, err
	}
	return presentationFromU16(value)
}

func (r *Reader) readColRow() (int16, int16, error) {
	if err := r.ensureRecord(8, ColRow); err != nil {
		return 0, 0, err
	}
	if err := r.consumeHeader(); err != nil {
		return 0, 0, err
	}
	col, err := r.readI16()
	if err != nil {
		return 0, 0, err
	}
	row, err := r.readI16()
	if err != nil {
		return 0, 0, err
	}
	return col, row, nil
}

// --- record-level primitives -------------------------------------------------

func (r *Reader) peekRecordSize() (int, error) {
	b, err := r.peek(2)
	if err != nil {
		return 0, err
	}
	size := int(binary.BigEndian.Uint16(b))
	if size < 4 {
		return 0, &InvalidRecordSizeError{Size: size, Why: "record size must be >= 4"}
	}
	if size%2 != 0 {
		return 0, &InvalidRecordSizeError{Size: size, Why: "record size must be even"}
	}
	return size, nil
}

func (r *Reader) peekRecordType() (RecordType, error) {
	b, err := r.peek(4)
	if err != nil {
		return 0, err
	}
	value := binary.BigEndian.Uint16(b[2:4])
	rt, ok := recordTypeFromU16(value)
	if !ok {
		return 0, &UnsupportedRecordTypeError{Value: value}
	}
	return rt, nil
}

func (r *Reader) ensureRecordType(want RecordType) error {
	got, err := r.peekRecordType()
	if err != nil {
		return err
	}
	if got != want {
		return &UnexpectedRecordTypeError{Want: want, Got: got}
	}
	return nil
}

func (r *Reader) ensureRecordSize(want int) error {
	got, err := r.peekRecordSize()
	if err != nil {
		return err
	}
	if got != want {
		return &UnexpectedRecordSizeError{Want: want, Got: got}
	}
	return nil
}

func (r *Reader) ensureRecord(size int, tag RecordType) error {
	if err := r.ensureRecordSize(size); err != nil {
		return err
	}
	return r.ensureRecordType(tag)
}

func (r *Reader) consumeHeader() error {
	return r.discard(4)
}

func (r *Reader) takeI16Record() (int16, error) {
	if err := r.ensureRecordSize(6); err != nil {
		return 0, err
	}
	if err := r.consumeHeader(); err != nil {
		return 0, err
	}
	return r.readI16()
}

func (r *Reader) takeU16Record() (uint16, error) {
	if err := r.ensureRecordSize(6); err != nil {
		return 0, err
	}
	if err := r.consumeHeader(); err != nil {
		return 0, err
	}
	return r.readU16()
}

func (r *Reader) takeI32Record() (int32, error) {
	if err := r.ensureRecordSize(8); err != nil {
		return 0, err
	}
	if err := r.consumeHeader(); err != nil {
		return 0, err
	}
	return r.readI32()
}

func (r *Reader) takeF64Record() (float64, error) {
	if err := r.ensureRecordSize(12); err != nil {
		return 0, err
	}
	if err := r.consumeHeader(); err != nil {
		return 0, err
	}
	return r.readF64()
}

func (r *Reader) takeStringRecord() (string, error) {
	size, err := r.peekRecordSize()
	if err != nil {
		return "", err
	}
	if err := r.consumeHeader(); err != nil {
		return "", err
	}
	return r.takeString(size - 4)
}

// --- byte-level primitives ---------------------------------------------------

func (r *Reader) peek(n int) ([]byte, error) {
	b, err := r.br.Peek(n)
	if err != nil {
		return nil, &IOError{Err: err}
	}
	return b, nil
}

func (r *Reader) discard(n int) error {
	k, err := r.br.Discard(n)
	r.offset += int64(k)
	if err != nil {
		return &IOError{Err: err}
	}
	return nil
}

func (r *Reader) readFull(buf []byte) error {
	n, err := io.ReadFull(r.br, buf)
	r.offset += int64(n)
	if err != nil {
		return &IOError{Err: err}
	}
	return nil
}

func (r *Reader) readU16() (uint16, error) {
	var buf [2]byte
	if err := r.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

func (r *Reader) readI16() (int16, error) {
	v, err := r.readU16()
	return int16(v), err
}

func (r *Reader) readI32() (int32, error) {
	var buf [4]byte
	if err := r.readFull(buf[:]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

func (r *Reader) readF64() (float64, error) {
	var buf [8]byte
	if err := r.readFull(buf[:]); err != nil {
		return 0, err
	}
	return ibmToIEEE(binary.BigEndian.Uint64(buf[:])), nil
}

func (r *Reader) readDateTime() (DateTime, error) {
	var d DateTime
	var err error
	if d.Year, err = r.readI16(); err != nil {
		return DateTime{}, err
	}
	if d.Month, err = r.readI16(); err != nil {
		return DateTime{}, err
	}
	if d.Day, err = r.readI16(); err != nil {
		return DateTime{}, err
	}
	if d.Hour, err = r.readI16(); err != nil {
		return DateTime{}, err
	}
	if d.Minute, err = r.readI16(); err != nil {
		return DateTime{}, err
	}
	if d.Second, err = r.readI16(); err != nil {
		return DateTime{}, err
	}
	return d, nil
}

// takeString reads exactly n raw bytes, strips trailing NUL padding, and
// validates the remainder as UTF-8.
func (r *Reader) takeString(n int) (string, error) {
	buf := make([]byte, n)
	if err := r.readFull(buf); err != nil {
		return "", err
	}
	i := len(buf)
	for i > 0 && buf[i-1] == 0 {
		i--
	}
	buf = buf[:i]
	if !utf8.Valid(buf) {
		return "", &EncodingError{Err: errors.New("invalid utf-8 sequence after null-stripping")}
	}
	return string(buf), nil
}
