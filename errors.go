// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

import "fmt"

// UnsupportedRecordTypeError is returned when a 16-bit tag read from the
// stream does not belong to the closed record taxonomy.
type UnsupportedRecordTypeError struct {
	Value uint16
}

func (e *UnsupportedRecordTypeError) Error() string {
	return fmt.Sprintf("unsupported record type: 0x%04x", e.Value)
}

// InvalidRecordSizeError covers a declared record length that is too
// small, odd where evenness is required, or not a multiple of the
// per-record alignment (e.g. Xy payload not a multiple of 8).
type InvalidRecordSizeError struct {
	Size int
	Why  string
}

func (e *InvalidRecordSizeError) Error() string {
	return fmt.Sprintf("invalid record size %d: %s", e.Size, e.Why)
}

// UnexpectedRecordTypeError is raised when a required-tag slot in the
// grammar observes a tag other than the one it must be.
type UnexpectedRecordTypeError struct {
	Want, Got RecordType
}

func (e *UnexpectedRecordTypeError) Error() string {
	return fmt.Sprintf("expected record %s, got %s", e.Want, e.Got)
}

// UnexpectedRecordSizeError is raised when a fixed-size record arrives
// with the wrong length (e.g. BgnLib must be 28 bytes).
type UnexpectedRecordSizeError struct {
	Want, Got int
}

func (e *UnexpectedRecordSizeError) Error() string {
	return fmt.Sprintf("expected record size %d, got %d", e.Want, e.Got)
}

// InvalidEnumValueError is raised when a 16-bit code for format,
// presentation subfield, or path type falls outside its valid range.
type InvalidEnumValueError struct {
	Field string
	Value uint16
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid %s value: %d", e.Field, e.Value)
}

// MissingRequiredFieldError is raised when an element builder finalizes
// without a required field ever having been set, e.g. because the
// required record's tag slot was absent from the stream.
type MissingRequiredFieldError struct {
	Element, Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Element, e.Field)
}

// UnexpectedCoordinateCountError is raised when a single-point record
// (an sref/text/aref position) carries more or fewer than one coordinate.
type UnexpectedCoordinateCountError struct {
	Count int
}

func (e *UnexpectedCoordinateCountError) Error() string {
	return fmt.Sprintf("expected exactly one coordinate, got %d", e.Count)
}

// EncodingError is raised when a string payload is not valid UTF-8 after
// null-stripping.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("string is not valid utf-8: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// wrap attaches a static contextual label and the stream's current byte
// offset to err, producing the "label (at offset N): cause" chain that
// errors.Is/errors.As can still see through via %w. Applied at every
// recursive-descent call site, not only at the top, so an error
// accumulates one label per grammar level it passes through.
func wrap(label string, offset int64, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s (at offset %d): %w", label, offset, err)
}

// IOError wraps a failure from the underlying reader or writer (a short
// read, a write that didn't complete, a failed mmap) distinctly from the
// structural errors above, which all describe well-formed bytes that
// violate the format.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("i/o error: %v", e.Err) }

func (e *IOError) Unwrap() error { return e.Err }
