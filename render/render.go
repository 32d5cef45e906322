// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws a [scene.Scene] from a [scene.Camera] into an
// image, using the gg software rasterizer. Solids are flat shaded and
// drawn back to front, with projected planar shadows on the floor.
package render

import (
	"fmt"
	"image"
	"sort"

	"cogentcore.org/tankscene/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Renderer renders scenes into an image of a given size. It is not safe
// for concurrent use; all calls are expected from the frame loop.
type Renderer struct {

	// ShadowAlpha is the opacity of projected shadows.
	ShadowAlpha float64

	// CaptionSize is the font size of the caption in points.
	CaptionSize float64

	// Stats has the primitive counts of the last Render call.
	Stats Stats

	dc   *gg.Context
	font *text.FontSource
	face text.Face
}

// Stats counts what was drawn in one frame.
type Stats struct {

	// Faces is the number of triangles drawn.
	Faces int

	// Culled is the number of triangles facing away from the camera.
	Culled int

	// Clipped is the number of triangles or segments outside the view.
	Clipped int

	// Shadows is the number of projected shadow triangles.
	Shadows int

	// Segments is the number of line segments drawn.
	Segments int
}

// New returns a new [Renderer] with an output image of the given size.
func New(width, height int) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render.New: invalid size %dx%d", width, height)
	}
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render.New: loading caption font: %w", err)
	}
	r := &Renderer{ShadowAlpha: 0.35, CaptionSize: 16, dc: gg.NewContext(width, height), font: src}
	r.face = src.Face(r.CaptionSize)
	r.dc.SetFont(r.face)
	return r, nil
}

// SetSize resizes the output image. Setting the current size is a no-op.
func (r *Renderer) SetSize(width, height int) error {
	if err := r.dc.Resize(width, height); err != nil {
		return fmt.Errorf("render.SetSize: %w", err)
	}
	return nil
}

// Size returns the size of the output image.
func (r *Renderer) Size() image.Point {
	return image.Pt(r.dc.Width(), r.dc.Height())
}

// Image returns the rendered image.
func (r *Renderer) Image() image.Image {
	return r.dc.Image()
}

// Close releases the drawing context.
func (r *Renderer) Close() error {
	return r.dc.Close()
}

// DrawCaption draws the given text in a dark box in the top left corner
// of the image, over whatever has been rendered.
func (r *Renderer) DrawCaption(s string) error {
	if s == "" {
		return nil
	}
	if r.face == nil || r.face.Size() != r.CaptionSize {
		r.face = r.font.Face(r.CaptionSize)
		r.dc.SetFont(r.face)
	}
	const margin, pad = 16.0, 8.0
	w, h := r.dc.MeasureString(s)
	r.dc.SetRGBA(0, 0, 0, 0.8)
	r.dc.DrawRectangle(margin, margin, w+2*pad, h+2*pad)
	if err := r.dc.Fill(); err != nil {
		return fmt.Errorf("render.DrawCaption: %w", err)
	}
	r.dc.SetRGB(1, 1, 1)
	r.dc.DrawString(s, margin+pad, margin+pad+h*0.8)
	return nil
}

// prim is a projected primitive ready to be drawn.
type prim struct {
	pts   []point
	color gg.RGBA
	depth float32
	line  float32 // line width, 0 for filled polygons
}

type point struct {
	X, Y float64
}

// caster is a shadow-casting solid with its world transform.
type caster struct {
	solid *scene.Solid
	world mgl32.Mat4
}

// frame holds the per-render state.
type frame struct {
	sc       *scene.Scene
	viewProj mgl32.Mat4
	camPos   mgl32.Vec3
	width    float64
	height   float64
	floorY   float32
	hasFloor bool
	floor    []prim
	prims    []prim
	casters  []caster
	stats    Stats
}

// Render draws the scene as seen from the given camera, replacing
// the previous image.
func (r *Renderer) Render(sc *scene.Scene, cam *scene.Camera) error {
	if sc == nil || cam == nil {
		return fmt.Errorf("render.Render: nil scene or camera")
	}
	fr := &frame{
		sc:       sc,
		viewProj: cam.Projection().Mul4(cam.ViewMatrix()),
		camPos:   cam.WorldPosition(),
		width:    float64(r.dc.Width()),
		height:   float64(r.dc.Height()),
	}
	fr.walk(sc, mgl32.Ident4())

	r.dc.ClearWithColor(sc.Background)
	sortPrims(fr.floor)
	sortPrims(fr.prims)
	if err := r.draw(fr.floor); err != nil {
		return err
	}
	if err := r.drawShadows(fr); err != nil {
		return err
	}
	if err := r.draw(fr.prims); err != nil {
		return err
	}
	r.Stats = fr.stats
	return nil
}

// walk collects the primitives of n and its children.
func (fr *frame) walk(n scene.Node, parentWorld mgl32.Mat4) {
	nb := n.AsNodeBase()
	if nb.Hidden {
		return
	}
	world := parentWorld.Mul4(nb.Pose.Matrix())
	switch nd := n.(type) {
	case *scene.Solid:
		fr.addSolid(nd, world)
	case *scene.Line:
		fr.addLine(nd, world)
	}
	for _, k := range nb.Children() {
		fr.walk(k, world)
	}
}

func (fr *frame) addSolid(sd *scene.Solid, world mgl32.Mat4) {
	if sd.Mesh == nil || sd.Material == nil {
		return
	}
	if sd.CastShadow {
		fr.casters = append(fr.casters, caster{sd, world})
	}
	dest := &fr.prims
	if sd.ReceiveShadow {
		dest = &fr.floor
		if !fr.hasFloor {
			fr.floorY = world.Col(3).Y()
			fr.hasFloor = true
		}
	}
	ms := sd.Mesh
	wv := make([]mgl32.Vec3, len(ms.Vertices))
	for i, v := range ms.Vertices {
		wv[i] = world.Mul4x1(v.Vec4(1)).Vec3()
	}
	for i, f := range ms.Faces {
		tri := []mgl32.Vec3{wv[f[0]], wv[f[1]], wv[f[2]]}
		n := world.Mul4x1(ms.Normals[i].Vec4(0)).Vec3().Normalize()
		center := tri[0].Add(tri[1]).Add(tri[2]).Mul(1.0 / 3)
		if n.Dot(fr.camPos.Sub(center)) <= 0 {
			if !sd.Material.DoubleSided {
				fr.stats.Culled++
				continue
			}
			n = n.Mul(-1)
		}
		pts, depth, ok := fr.project(tri)
		if !ok {
			fr.stats.Clipped++
			continue
		}
		*dest = append(*dest, prim{pts: pts, color: shade(fr.sc, sd.Material, n), depth: depth})
		fr.stats.Faces++
	}
}

func (fr *frame) addLine(ln *scene.Line, world mgl32.Mat4) {
	if ln.Material == nil {
		return
	}
	for i := 1; i < len(ln.Points); i++ {
		a := world.Mul4x1(ln.Points[i-1].Vec4(1))
		b := world.Mul4x1(ln.Points[i].Vec4(1))
		pts, depth, ok := fr.projectSegment(a.Vec3(), b.Vec3())
		if !ok {
			fr.stats.Clipped++
			continue
		}
		fr.prims = append(fr.prims, prim{pts: pts, color: ln.Material.Color, depth: depth, line: ln.Width})
		fr.stats.Segments++
	}
}

// shade returns the flat shaded color of a surface with the given
// world normal under the scene lights.
func shade(sc *scene.Scene, mt *scene.Material, n mgl32.Vec3) gg.RGBA {
	lr, lg, lb := sc.Ambient, sc.Ambient, sc.Ambient
	for _, lt := range sc.Lights {
		d := n.Dot(lt.Dir().Mul(-1)) * lt.Intensity
		if d <= 0 {
			continue
		}
		lr += d * float32(lt.Color.R)
		lg += d * float32(lt.Color.G)
		lb += d * float32(lt.Color.B)
	}
	c := mt.Color
	return gg.RGBA{
		R: clamp01(c.R*float64(lr) + mt.Emissive.R),
		G: clamp01(c.G*float64(lg) + mt.Emissive.G),
		B: clamp01(c.B*float64(lb) + mt.Emissive.B),
		A: c.A,
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// sortPrims sorts primitives far to near.
func sortPrims(ps []prim) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].depth > ps[j].depth
	})
}

func (r *Renderer) draw(ps []prim) error {
	for _, p := range ps {
		r.dc.SetRGBA(p.color.R, p.color.G, p.color.B, p.color.A)
		r.dc.MoveTo(p.pts[0].X, p.pts[0].Y)
		for _, pt := range p.pts[1:] {
			r.dc.LineTo(pt.X, pt.Y)
		}
		var err error
		if p.line > 0 {
			r.dc.SetLineWidth(float64(p.line))
			err = r.dc.Stroke()
		} else {
			r.dc.ClosePath()
			err = r.dc.Fill()
		}
		if err != nil {
			return fmt.Errorf("render: drawing primitive: %w", err)
		}
	}
	return nil
}
