// Copyright 2026 The gogds Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be
// found in the LICENSE file.

package gds

// Node is an electrical node marker element.
type Node struct {
	ElFlags  *int16
	Plex     *int32
	Layer    int16
	NodeType int16
	Xy       []Coord
}

// NewNode builds an empty node on the given layer and node type.
func NewNode(layer, nodeType int16) *Node {
	return &Node{Layer: layer, NodeType: nodeType}
}
