// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/tankscene/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pixel(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func background(sc *scene.Scene) color.RGBA {
	return color.RGBAModel.Convert(sc.Background.Color()).(color.RGBA)
}

// assertNear asserts that two colors match within rounding.
func assertNear(t *testing.T, want, got color.RGBA) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 2)
	assert.InDelta(t, want.G, got.G, 2)
	assert.InDelta(t, want.B, got.B, 2)
}

// testScene has a floor, a red box above it lit from above,
// and a camera looking at the box from the front.
func testScene(t *testing.T) (*scene.Scene, *scene.Camera, *scene.Solid) {
	sc := scene.NewScene("scene")
	sc.Background = gg.Hex("#aaaaaa")
	sun := scene.NewDirLight("sun", mgl32.Vec3{0, 20, 0}, 1)
	sun.CastShadow = true
	sun.Shadow = scene.DefaultShadow(50)
	sc.AddLight(sun)
	sc.AddLight(scene.NewDirLight("fill", mgl32.Vec3{1, 2, 4}, 1))

	floorMesh, err := scene.NewPlane(50, 50)
	require.NoError(t, err)
	floor := scene.NewSolid(sc, "floor", floorMesh, scene.NewHexMaterial("#cc8866"))
	floor.SetEulerRotation(-mgl32.DegToRad(90), 0, 0)
	floor.ReceiveShadow = true

	boxMesh, err := scene.NewBox(2, 2, 2)
	require.NoError(t, err)
	box := scene.NewSolid(sc, "box", boxMesh, scene.NewHexMaterial("#ff0000")).SetPos(0, 2, 0)
	box.CastShadow = true

	cam := scene.NewCamera(sc, "cam", 40)
	cam.Pose.SetPos(0, 4, 12)
	cam.LookAt(mgl32.Vec3{0, 2, 0})
	cam.SetAspect(1)
	return sc, cam, box
}

func TestNewErrors(t *testing.T) {
	_, err := New(0, 10)
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	sc, cam, _ := testScene(t)
	r, err := New(64, 64)
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, r.Render(sc, cam))
	img := r.Image()
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())

	// the box covers the center of the image and is reddish
	c := pixel(img, 32, 32)
	assert.Greater(t, c.R, c.G)
	assert.Greater(t, c.R, c.B)
	// the sky above the floor horizon keeps the background color
	assertNear(t, background(sc), pixel(img, 32, 0))

	assert.Greater(t, r.Stats.Faces, 0)
	assert.Greater(t, r.Stats.Culled, 0)
	assert.Greater(t, r.Stats.Shadows, 0)
}

func TestRenderLookingAway(t *testing.T) {
	sc, cam, _ := testScene(t)
	cam.LookAt(mgl32.Vec3{0, 30, 40})
	r, err := New(32, 32)
	require.NoError(t, err)
	require.NoError(t, r.Render(sc, cam))
	assert.Equal(t, 0, r.Stats.Faces)
	assertNear(t, background(sc), pixel(r.Image(), 16, 16))
}

func TestRenderNearClip(t *testing.T) {
	sc, cam, box := testScene(t)
	// camera inside the box: faces cross the near plane
	cam.Pose.SetPos(0, 2, 0.5)
	cam.LookAt(mgl32.Vec3{0, 2, -5})
	box.Material.DoubleSided = true
	r, err := New(32, 32)
	require.NoError(t, err)
	assert.NoError(t, r.Render(sc, cam))
	assert.Greater(t, r.Stats.Faces, 0)
}

func TestLines(t *testing.T) {
	sc, cam, box := testScene(t)
	box.Hidden = true
	pts := []mgl32.Vec3{{-3, 0.05, 0}, {3, 0.05, 0}, {3, 0.05, -3}}
	scene.NewLine(sc, "path", pts, scene.NewHexMaterial("#ff0000"))
	r, err := New(32, 32)
	require.NoError(t, err)
	require.NoError(t, r.Render(sc, cam))
	assert.Equal(t, 2, r.Stats.Segments)
	assert.Equal(t, 0, r.Stats.Shadows)
}

func TestSetSizeAndCaption(t *testing.T) {
	sc, cam, _ := testScene(t)
	r, err := New(64, 32)
	require.NoError(t, err)
	require.NoError(t, r.SetSize(64, 32))
	require.NoError(t, r.SetSize(96, 48))
	assert.Equal(t, image.Pt(96, 48), r.Size())
	assert.Error(t, r.SetSize(0, 48))

	require.NoError(t, r.Render(sc, cam))
	require.NoError(t, r.DrawCaption("detached camera"))
	assert.Equal(t, image.Rect(0, 0, 96, 48), r.Image().Bounds())
	// the caption box darkens the top left corner
	c := pixel(r.Image(), 18, 18)
	assert.Less(t, c.R, background(sc).R)
	assert.NoError(t, r.DrawCaption(""))
}

func TestShade(t *testing.T) {
	sc := scene.NewScene("scene")
	sc.AddLight(scene.NewDirLight("sun", mgl32.Vec3{0, 1, 0}, 1))
	mt := scene.NewMaterial(gg.RGB(0.5, 0.5, 0.5))
	up := shade(sc, mt, mgl32.Vec3{0, 1, 0})
	down := shade(sc, mt, mgl32.Vec3{0, -1, 0})
	assert.InDelta(t, 0.5, up.R, 1e-6)
	assert.InDelta(t, 0, down.R, 1e-6)

	mt.Emissive = gg.RGB(0, 0.25, 0)
	assert.InDelta(t, 0.25, shade(sc, mt, mgl32.Vec3{0, -1, 0}).G, 1e-6)
}

func TestClipPolygon(t *testing.T) {
	// one vertex behind the camera, two in front and below the view;
	// only the clipped polygon shows that nothing is visible
	behind := mgl32.Vec4{0, 2, -2, -1}
	poly := []mgl32.Vec4{{0, -3, 0.5, 1}, {1, -3, 0.5, 1}, behind}
	assert.False(t, outside(poly))
	_, ok := clipPolygon(poly)
	assert.False(t, ok)

	// the same shape raised into view survives, minus the part behind
	poly = []mgl32.Vec4{{0, 0, 0.5, 1}, {0.5, 0, 0.5, 1}, behind}
	clip, ok := clipPolygon(poly)
	require.True(t, ok)
	assert.Len(t, clip, 4)
	for _, c := range clip {
		assert.Greater(t, c.Z()+c.W(), float32(0))
	}
}
