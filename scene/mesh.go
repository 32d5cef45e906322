// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh holds the immutable triangle geometry of a shape, in local
// coordinates. Meshes can be shared among any number of solids.
type Mesh struct {

	// Name is the name of the mesh shape.
	Name string

	// Vertices are the vertex positions.
	Vertices []mgl32.Vec3

	// Faces are triangles, as indexes into Vertices.
	Faces [][3]int

	// Normals are the unit face normals, one per face, pointing outward.
	Normals []mgl32.Vec3
}

// addFace adds a triangle, skipping degenerate ones.
func (ms *Mesh) addFace(a, b, c int) {
	va, vb, vc := ms.Vertices[a], ms.Vertices[b], ms.Vertices[c]
	n := vb.Sub(va).Cross(vc.Sub(va))
	if n.Len() < 1e-6 {
		return
	}
	ms.Faces = append(ms.Faces, [3]int{a, b, c})
	ms.Normals = append(ms.Normals, n.Normalize())
}

// orientOutward flips any face whose normal points toward the local
// origin, for shapes that enclose or surround the origin.
func (ms *Mesh) orientOutward() {
	for i, f := range ms.Faces {
		c := ms.FaceCenter(i)
		if ms.Normals[i].Dot(c) < 0 {
			ms.Faces[i] = [3]int{f[0], f[2], f[1]}
			ms.Normals[i] = ms.Normals[i].Mul(-1)
		}
	}
}

// FaceCenter returns the centroid of the given face.
func (ms *Mesh) FaceCenter(i int) mgl32.Vec3 {
	f := ms.Faces[i]
	return ms.Vertices[f[0]].Add(ms.Vertices[f[1]]).Add(ms.Vertices[f[2]]).Mul(1.0 / 3)
}

func positive(shape, what string, v float32) error {
	if !(v > 0) || math32.IsInf(v, 1) {
		return fmt.Errorf("scene.%s: %s must be positive and finite, have %v", shape, what, v)
	}
	return nil
}

// NewBox returns a new box [Mesh] centered on the origin with the given
// width (X), height (Y) and depth (Z).
func NewBox(width, height, depth float32) (*Mesh, error) {
	for _, d := range []struct {
		n string
		v float32
	}{{"width", width}, {"height", height}, {"depth", depth}} {
		if err := positive("NewBox", d.n, d.v); err != nil {
			return nil, err
		}
	}
	x, y, z := width/2, height/2, depth/2
	ms := &Mesh{Name: "box"}
	ms.Vertices = []mgl32.Vec3{
		{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
		{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
	}
	quads := [][4]int{
		{4, 5, 6, 7}, // +z
		{1, 0, 3, 2}, // -z
		{5, 1, 2, 6}, // +x
		{0, 4, 7, 3}, // -x
		{7, 6, 2, 3}, // +y
		{0, 1, 5, 4}, // -y
	}
	for _, q := range quads {
		ms.addFace(q[0], q[1], q[2])
		ms.addFace(q[0], q[2], q[3])
	}
	ms.orientOutward()
	return ms, nil
}

// NewCylinder returns a new capped cylinder [Mesh] along the Y axis,
// centered on the origin, with the given radii, height and number of
// radial segments.
func NewCylinder(radiusTop, radiusBottom, height float32, segments int) (*Mesh, error) {
	if segments < 3 {
		return nil, fmt.Errorf("scene.NewCylinder: need at least 3 segments, have %d", segments)
	}
	if err := positive("NewCylinder", "height", height); err != nil {
		return nil, err
	}
	if radiusTop < 0 || radiusBottom < 0 || radiusTop+radiusBottom == 0 {
		return nil, fmt.Errorf("scene.NewCylinder: invalid radii %v, %v", radiusTop, radiusBottom)
	}
	ms := &Mesh{Name: "cylinder"}
	hy := height / 2
	for i := range segments {
		a := 2 * math32.Pi * float32(i) / float32(segments)
		s, c := math32.Sin(a), math32.Cos(a)
		ms.Vertices = append(ms.Vertices,
			mgl32.Vec3{radiusTop * s, hy, radiusTop * c},
			mgl32.Vec3{radiusBottom * s, -hy, radiusBottom * c})
	}
	top := len(ms.Vertices)
	ms.Vertices = append(ms.Vertices, mgl32.Vec3{0, hy, 0}, mgl32.Vec3{0, -hy, 0})
	bot := top + 1
	for i := range segments {
		j := (i + 1) % segments
		t0, b0, t1, b1 := 2*i, 2*i+1, 2*j, 2*j+1
		ms.addFace(t0, b0, b1)
		ms.addFace(t0, b1, t1)
		ms.addFace(top, t0, t1)
		ms.addFace(bot, b1, b0)
	}
	ms.orientOutward()
	return ms, nil
}

// NewSphere returns a new sphere [Mesh] centered on the origin.
// The phi range sweeps around the Y axis and the theta range sweeps
// down from the +Y pole, so that a theta length of Pi/2 gives a dome.
func NewSphere(radius float32, widthSegments, heightSegments int, phiStart, phiLength, thetaStart, thetaLength float32) (*Mesh, error) {
	if err := positive("NewSphere", "radius", radius); err != nil {
		return nil, err
	}
	if widthSegments < 3 || heightSegments < 2 {
		return nil, fmt.Errorf("scene.NewSphere: need at least 3 width and 2 height segments, have %d, %d", widthSegments, heightSegments)
	}
	if !(phiLength > 0) || !(thetaLength > 0) {
		return nil, fmt.Errorf("scene.NewSphere: phi and theta lengths must be positive, have %v, %v", phiLength, thetaLength)
	}
	ms := &Mesh{Name: "sphere"}
	grid := make([][]int, heightSegments+1)
	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		theta := thetaStart + v*thetaLength
		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			phi := phiStart + u*phiLength
			grid[iy] = append(grid[iy], len(ms.Vertices))
			ms.Vertices = append(ms.Vertices, mgl32.Vec3{
				-radius * math32.Cos(phi) * math32.Sin(theta),
				radius * math32.Cos(theta),
				radius * math32.Sin(phi) * math32.Sin(theta),
			})
		}
	}
	for iy := range heightSegments {
		for ix := range widthSegments {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			ms.addFace(a, b, d) // degenerate pole faces are skipped
			ms.addFace(b, c, d)
		}
	}
	ms.orientOutward()
	return ms, nil
}

// NewPlane returns a new plane [Mesh] in the XY plane, centered on the
// origin and facing +Z, with the given width and height.
func NewPlane(width, height float32) (*Mesh, error) {
	if err := positive("NewPlane", "width", width); err != nil {
		return nil, err
	}
	if err := positive("NewPlane", "height", height); err != nil {
		return nil, err
	}
	x, y := width/2, height/2
	ms := &Mesh{Name: "plane"}
	ms.Vertices = []mgl32.Vec3{{-x, -y, 0}, {x, -y, 0}, {x, y, 0}, {-x, y, 0}}
	ms.addFace(0, 1, 2)
	ms.addFace(0, 2, 3)
	return ms, nil
}
