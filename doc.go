// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

// Package gds reads and writes the GDSII Stream Format, the binary
// interchange format for integrated-circuit layout geometry. A GDSII
// file encodes a library of named structures (cells); each structure
// holds geometric elements (boundaries, paths, srefs, arefs, texts,
// nodes, boxes) and references other structures by name.
package gds
