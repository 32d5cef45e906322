// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a retained-mode 3D scene graph: transform nodes
// with local poses, solids with meshes and materials, polylines, cameras
// and directional lights.
package scene

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Scene is the overall scene graph root containing nodes as children,
// along with the lights and background color used for rendering.
type Scene struct {
	NodeBase

	// Background is the color the frame is cleared to.
	Background gg.RGBA

	// Ambient is the ambient light level added to all lit surfaces.
	Ambient float32

	// Lights are all of the lights in the scene.
	Lights []*DirLight
}

// NewScene returns a new empty [Scene] with the given name.
func NewScene(name string) *Scene {
	sc := &Scene{Background: gg.White}
	sc.InitName(sc, name)
	return sc
}

// AddLight adds the given light to the scene.
func (sc *Scene) AddLight(lt *DirLight) {
	sc.Lights = append(sc.Lights, lt)
}

// Validate checks that every node in the scene appears exactly once and
// that parent links agree with child lists.
func (sc *Scene) Validate() error {
	seen := map[*NodeBase]bool{}
	var err error
	sc.WalkDown(func(n Node) bool {
		nb := n.AsNodeBase()
		if seen[nb] {
			err = fmt.Errorf("scene.Scene %q: node %q appears more than once", sc.Name, nb.Path())
			return Break
		}
		seen[nb] = true
		for _, k := range nb.kids {
			if k.AsNodeBase().parent.AsNodeBase() != nb {
				err = fmt.Errorf("scene.Scene %q: node %q has the wrong parent", sc.Name, k.AsNodeBase().Path())
			}
		}
		return Continue
	})
	return err
}
