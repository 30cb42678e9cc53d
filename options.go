// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

import (
	"os"

	"github.com/goeda/gogds/internal/gdslog"
)

// MaxDefaultStructures bounds the number of structures ReadFile/ReadBytes
// will parse before giving up, unless overridden by Options. It guards
// against a corrupt or hostile stream whose BgnStr/EndStr framing never
// terminates.
const MaxDefaultStructures = 1 << 20

// Options configures parsing. A nil *Options is equivalent to &Options{}.
type Options struct {
	// Fast parses only the library and structure headers, skipping every
	// element body.
	Fast bool

	// MaxStructures caps how many structures will be parsed out of a
	// single library, by default MaxDefaultStructures.
	MaxStructures uint32

	// PreserveExtensions, when true, keeps a Path's BGNEXTN/ENDEXTN
	// records as Path.BeginExtension/EndExtension. When false (the zero
	// value, and the default for a nil *Options), they are read and
	// discarded.
	PreserveExtensions bool

	// Logger is the diagnostic sink carried by the normalized options.
	// No reader or writer code path writes to it, so it never affects the
	// returned library or error. Defaults to a stdout logger filtered to
	// error level.
	Logger gdslog.Logger
}

func normalizeOptions(opts *Options) *Options {
	out := Options{}
	if opts != nil {
		out = *opts
	}
	if out.MaxStructures == 0 {
		out.MaxStructures = MaxDefaultStructures
	}
	if out.Logger == nil {
		out.Logger = gdslog.NewFilter(gdslog.NewStdLogger(os.Stdout), gdslog.FilterLevel(gdslog.LevelError))
	}
	return &out
}

func helperFor(opts *Options) *gdslog.Helper {
	return gdslog.NewHelper(opts.Logger)
}
