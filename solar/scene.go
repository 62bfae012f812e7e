// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"image/color"

	"cogentcore.org/core/math32"
)

const (
	// AmbientLumens is the intensity of the ambient light.
	AmbientLumens = 0.2

	// SunLumens is the intensity of the point light at the sun.
	SunLumens = 2

	// BackdropRadius is the radius of the backdrop sphere, which must
	// enclose the camera at its maximum distance.
	BackdropRadius = 200
)

// BackdropColor is the color of the empty space around the scene.
var BackdropColor = color.RGBA{5, 5, 16, 255}

// Layout is a complete composed scene: a flat list of primitives,
// in drawing order. Order does not matter for correctness, except
// that the semi-transparent orbit rings need alpha blending.
type Layout struct {
	Primitives []Primitive
}

// Compose assembles the scene for the current animation state:
// ambient light, the sun with its point light, all planets with their
// labels (and orbit rings if [Config.ShowOrbits]), and the backdrop.
func Compose(cfg Config, an *Animator, cache *PathCache) *Layout {
	ly := &Layout{}
	ly.add(Primitive{Kind: AmbientLight, Name: "ambient", Lumens: AmbientLumens, Color: color.RGBA{255, 255, 255, 255}})
	ly.add(Primitive{Kind: SunSphere, Name: Sun.Name, Radius: Sun.Radius, Spin: float32(an.SunSpin()), Color: Sun.Color, Emissive: Sun.Color})
	ly.add(Primitive{Kind: PointLight, Name: "sun-light", Pos: math32.Vector3{}, Lumens: SunLumens, Color: color.RGBA{255, 255, 255, 255}})
	for i, b := range an.Bodies() {
		ly.add(RenderBody(b, an.StateAt(i), cfg.ShowOrbits, cache)...)
	}
	ly.add(Primitive{Kind: Backdrop, Name: "backdrop", Radius: BackdropRadius, Color: BackdropColor})
	return ly
}

func (ly *Layout) add(prims ...Primitive) {
	ly.Primitives = append(ly.Primitives, prims...)
}

// Count returns the number of primitives of the given kind.
func (ly *Layout) Count(kind Kinds) int {
	n := 0
	for i := range ly.Primitives {
		if ly.Primitives[i].Kind == kind {
			n++
		}
	}
	return n
}

// Find returns the primitive of the given kind and name, or nil.
func (ly *Layout) Find(kind Kinds, name string) *Primitive {
	for i := range ly.Primitives {
		pr := &ly.Primitives[i]
		if pr.Kind == kind && pr.Name == name {
			return pr
		}
	}
	return nil
}

// Names returns the names of all primitives of the given kind, in order.
func (ly *Layout) Names(kind Kinds) []string {
	var nms []string
	for i := range ly.Primitives {
		if ly.Primitives[i].Kind == kind {
			nms = append(nms, ly.Primitives[i].Name)
		}
	}
	return nms
}
