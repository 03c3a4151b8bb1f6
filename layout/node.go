// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"cogentcore.org/glint/math32"
)

// Node is one node in the computed geometry tree produced by layout.
// It mirrors the widget tree that produced it: each node holds the
// concrete size of its widget, its position relative to its parent,
// and the nodes of the widget's children.
type Node struct {

	// Size is the resolved size of the widget.
	Size math32.Vector2

	// Pos is the position of the widget relative to its parent.
	Pos math32.Vector2

	// Children are the layout nodes of the widget's children.
	Children []Node
}

// NewNode returns a new childless [Node] of the given size.
func NewNode(size math32.Vector2) Node {
	return Node{Size: size}
}

// NewNodeChildren returns a new [Node] of the given size
// with the given children.
func NewNodeChildren(size math32.Vector2, children []Node) Node {
	return Node{Size: size, Children: children}
}

// Move sets the position of this node relative to its parent.
func (n *Node) Move(pos math32.Vector2) {
	n.Pos = pos
}

// Placed is a [Node] resolved to an absolute position, formed by
// accumulating parent offsets while traversing the tree. Widgets
// receive a Placed during event dispatch and drawing so that bounds
// checks against the cursor use scene coordinates.
type Placed struct {
	Node   *Node
	Origin math32.Vector2
}

// Place returns the given root node placed at the given origin.
func Place(n *Node, origin math32.Vector2) Placed {
	return Placed{Node: n, Origin: origin}
}

// Bounds returns the absolute bounding box of this node.
func (p Placed) Bounds() math32.Box2 {
	return math32.B2FromPosSize(p.Origin.Add(p.Node.Pos), p.Node.Size)
}

// NumChildren returns the number of child nodes.
func (p Placed) NumChildren() int {
	return len(p.Node.Children)
}

// Child returns the i'th child placed relative to this node's bounds.
func (p Placed) Child(i int) Placed {
	return Placed{Node: &p.Node.Children[i], Origin: p.Bounds().Min}
}
