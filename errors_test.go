// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapNil(t *testing.T) {
	if err := wrap("label", 10, nil); err != nil {
		t.Fatalf("wrap(..., nil) = %v, want nil", err)
	}
}

func TestWrapChain(t *testing.T) {
	leaf := &UnexpectedRecordSizeError{Want: 28, Got: 20}
	err := wrap("read library begin", 6, leaf)

	msg := err.Error()
	if !strings.Contains(msg, "read library begin") || !strings.Contains(msg, "at offset 6") {
		t.Fatalf("wrapped error message %q missing label or offset", msg)
	}

	var got *UnexpectedRecordSizeError
	if !errors.As(err, &got) {
		t.Fatalf("errors.As could not recover the leaf *UnexpectedRecordSizeError from %q", msg)
	}
	if got.Want != 28 || got.Got != 20 {
		t.Fatalf("recovered leaf = %+v, want {Want:28 Got:20}", got)
	}
}

func TestWrapNesting(t *testing.T) {
	leaf := &MissingRequiredFieldError{Element: "Boundary", Field: "Layer"}
	err := wrap("read boundary", 40, leaf)
	err = wrap("read structure elements", 40, err)
	err = wrap("read structure", 36, err)

	msg := err.Error()
	for _, want := range []string{"read structure", "read structure elements", "read boundary", "Boundary"} {
		if !strings.Contains(msg, want) {
			t.Errorf("nested wrap message %q missing %q", msg, want)
		}
	}

	var got *MissingRequiredFieldError
	if !errors.As(err, &got) {
		t.Fatalf("errors.As could not see through triple-nested wrap to the leaf error")
	}
}

func TestIOErrorUnwrap(t *testing.T) {
	cause := errors.New("unexpected eof")
	err := &IOError{Err: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(IOError, cause) = false, want true")
	}
}

func TestEncodingErrorUnwrap(t *testing.T) {
	cause := errors.New("invalid byte")
	err := &EncodingError{Err: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(EncodingError, cause) = false, want true")
	}
}
