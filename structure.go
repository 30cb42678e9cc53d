// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

import "sync"

// Structure is a named cell: a container of geometric elements, plus
// references to other structures embedded in its SRefs/ARefs. Element
// order within each of the seven kinds is preserved across a read/write
// cycle; order across kinds on the wire is always boundaries, paths,
// srefs, arefs, texts, nodes, boxes.
type Structure struct {
	Name       string
	CreateDate DateTime
	ModifyDate DateTime

	Boundaries []*Boundary
	Paths      []*Path
	SRefs      []*SRef
	ARefs      []*ARef
	Texts      []*Text
	Nodes      []*Node
	Boxes      []*Box
}

// NewStructure builds an empty, otherwise zero-valued structure with the
// given name.
func NewStructure(name string) *Structure {
	return &Structure{Name: name}
}

// StructureHandle is a shared, mutable handle to a Structure. Multiple
// observers may hold a handle to the same structure and read it
// concurrently; a single writer excludes all readers for the duration of
// a mutation. Locking is per structure, not library-wide: a sync.RWMutex
// guards a single owned *Structure, granted out by the library's
// structure map.
type StructureHandle struct {
	mu   sync.RWMutex
	data *Structure
}

// NewStructureHandle wraps s in a fresh handle.
func NewStructureHandle(s *Structure) *StructureHandle {
	return &StructureHandle{data: s}
}

// View runs fn with a read lock held, for callers (the writer, the text
// dump) that only inspect the structure. Multiple Views may run
// concurrently.
func (h *StructureHandle) View(fn func(*Structure)) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	fn(h.data)
}

// Update runs fn with a write lock held, excluding all concurrent readers
// and writers for its duration.
func (h *StructureHandle) Update(fn func(*Structure)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn(h.data)
}

// Name returns the structure's name, reading it under the read lock so
// callers need not go through View. Changing the name through Update does
// not change the key the structure is stored under in the library's map.
func (h *StructureHandle) Name() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.data.Name
}

// Clone returns a deep-enough copy of the underlying structure (element
// slices copied, element values shared) suitable for a caller that wants
// a point-in-time snapshot without holding a lock afterwards.
func (h *StructureHandle) Clone() *Structure {
	h.mu.RLock()
	defer h.mu.RUnlock()
	clone := *h.data
	clone.Boundaries = append([]*Boundary(nil), h.data.Boundaries...)
	clone.Paths = append([]*Path(nil), h.data.Paths...)
	clone.SRefs = append([]*SRef(nil), h.data.SRefs...)
	clone.ARefs = append([]*ARef(nil), h.data.ARefs...)
	clone.Texts = append([]*Text(nil), h.data.Texts...)
	clone.Nodes = append([]*Node(nil), h.data.Nodes...)
	clone.Boxes = append([]*Box(nil), h.data.Boxes...)
	return &clone
}
