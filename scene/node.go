// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Walk function return values.
const (
	// Continue tells a walk function to keep going into the children.
	Continue = true

	// Break tells a walk function to skip the children of the current node.
	Break = false
)

// Node is an element in the scene graph. All nodes embed [NodeBase].
type Node interface {

	// AsNodeBase returns the [NodeBase] for this Node,
	// which provides the core functionality of a node.
	AsNodeBase() *NodeBase
}

// NodeBase is the basic scene graph node: a named transform with an
// ordered list of children. A node has at most one parent, and owns
// its children exclusively.
type NodeBase struct {

	// Name is the name of the node, unique among its siblings by convention.
	Name string

	// Pose is the position, rotation and scale relative to the parent.
	Pose Pose

	// Hidden excludes the node and its children from rendering.
	Hidden bool

	this   Node
	parent Node
	kids   []Node
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

// InitName initializes the node with the given outer type (the struct
// embedding this NodeBase) and name. It must be called by constructors.
func (nb *NodeBase) InitName(this Node, name string) {
	nb.this = this
	nb.Name = name
	nb.Pose.Defaults()
}

// This returns the outer node embedding this NodeBase.
func (nb *NodeBase) This() Node {
	if nb.this == nil {
		return nb
	}
	return nb.this
}

// Parent returns the parent of this node, or nil for a root.
func (nb *NodeBase) Parent() Node {
	return nb.parent
}

// Children returns the children of this node, in order.
func (nb *NodeBase) Children() []Node {
	return nb.kids
}

// NumChildren returns the number of children.
func (nb *NodeBase) NumChildren() int {
	return len(nb.kids)
}

// IsAncestorOf returns whether this node is k or one of its ancestors.
func (nb *NodeBase) IsAncestorOf(k Node) bool {
	for cur := k; cur != nil; cur = cur.AsNodeBase().parent {
		if cur.AsNodeBase() == nb {
			return true
		}
	}
	return false
}

// AddChild adds the given node as the last child of this node. If the node
// already has a parent it is removed from it first, so that every node
// appears in the tree exactly once. It is an error to add a node to itself
// or to one of its own descendants.
func (nb *NodeBase) AddChild(kid Node) error {
	kb := kid.AsNodeBase()
	if kb.IsAncestorOf(nb.This()) {
		return fmt.Errorf("scene: cannot add %q as a child of its descendant %q", kb.Name, nb.Name)
	}
	if kb.parent != nil {
		kb.parent.AsNodeBase().RemoveChild(kid)
	}
	kb.parent = nb.This()
	nb.kids = append(nb.kids, kid)
	return nil
}

// RemoveChild removes the given child, returning false if it was not a child.
func (nb *NodeBase) RemoveChild(kid Node) bool {
	kb := kid.AsNodeBase()
	idx := slices.IndexFunc(nb.kids, func(k Node) bool { return k.AsNodeBase() == kb })
	if idx < 0 {
		return false
	}
	nb.kids = slices.Delete(nb.kids, idx, idx+1)
	kb.parent = nil
	return true
}

// WalkDown calls the given function on this node and then recursively
// on its children, skipping the children of any node for which the
// function returns [Break].
func (nb *NodeBase) WalkDown(fun func(n Node) bool) {
	if !fun(nb.This()) {
		return
	}
	for _, k := range nb.kids {
		k.AsNodeBase().WalkDown(fun)
	}
}

// FindByName returns the first node with the given name in the subtree
// rooted at this node, in depth-first order, or nil if there is none.
func (nb *NodeBase) FindByName(name string) Node {
	var found Node
	nb.WalkDown(func(n Node) bool {
		if found != nil {
			return Break
		}
		if n.AsNodeBase().Name == name {
			found = n
			return Break
		}
		return Continue
	})
	return found
}

// Path returns the slash-separated names from the root to this node.
func (nb *NodeBase) Path() string {
	var names []string
	for cur := nb.This(); cur != nil; cur = cur.AsNodeBase().parent {
		names = append(names, cur.AsNodeBase().Name)
	}
	slices.Reverse(names)
	return "/" + strings.Join(names, "/")
}

// WorldMatrix returns the transform from this node's local space to
// world space, composing the poses of all ancestors.
func (nb *NodeBase) WorldMatrix() mgl32.Mat4 {
	local := nb.Pose.Matrix()
	if nb.parent == nil {
		return local
	}
	return nb.parent.AsNodeBase().WorldMatrix().Mul4(local)
}

// WorldPosition returns the position of this node in world space.
func (nb *NodeBase) WorldPosition() mgl32.Vec3 {
	return nb.WorldMatrix().Col(3).Vec3()
}

// WorldQuat returns the rotation of this node in world space,
// ignoring any scale.
func (nb *NodeBase) WorldQuat() mgl32.Quat {
	return RotationOf(nb.WorldMatrix())
}

// LookAt rotates the node so that its local +Z axis points at the given
// world-space target, keeping +Y as close to world up as possible.
func (nb *NodeBase) LookAt(target mgl32.Vec3) {
	nb.lookAt(target, false)
}

// lookAt sets the rotation so the node faces target. Cameras look down
// their -Z axis, all other nodes down +Z.
func (nb *NodeBase) lookAt(target mgl32.Vec3, camera bool) {
	pos := nb.WorldPosition()
	var rot mgl32.Mat4
	if camera {
		rot = LookAtRotation(pos, target, AxisY)
	} else {
		rot = LookAtRotation(target, pos, AxisY)
	}
	q := mgl32.Mat4ToQuat(rot)
	if nb.parent != nil {
		q = nb.parent.AsNodeBase().WorldQuat().Inverse().Mul(q)
	}
	nb.Pose.Quat = q.Normalize()
}

// LookAtRotation returns the rotation matrix whose +Z axis points from
// target toward eye, with the given up direction.
func LookAtRotation(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	z := eye.Sub(target)
	if z.Dot(z) == 0 {
		z[2] = 1 // eye and target coincide
	}
	z = z.Normalize()
	x := up.Cross(z)
	if x.Dot(x) == 0 { // up and z are parallel
		if up[2] == 1 || up[2] == -1 {
			z[0] += 0.0001
		} else {
			z[2] += 0.0001
		}
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)
	return mgl32.Mat3FromCols(x, y, z).Mat4()
}

// RotationOf returns the rotation part of the given transform matrix,
// removing any scale from its axes.
func RotationOf(m mgl32.Mat4) mgl32.Quat {
	x := m.Col(0).Vec3().Normalize()
	y := m.Col(1).Vec3().Normalize()
	z := m.Col(2).Vec3().Normalize()
	return mgl32.Mat4ToQuat(mgl32.Mat3FromCols(x, y, z).Mat4())
}
