// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// Kinds are the kinds of [Primitive] in a [Layout].
type Kinds int32 //enums:enum -transform kebab

const (
	// AmbientLight is the uniform fill light.
	AmbientLight Kinds = iota

	// PointLight is the light emitted by the sun.
	PointLight

	// SunSphere is the emissive sphere of the sun.
	SunSphere

	// PlanetSphere is the sphere of one planet.
	PlanetSphere

	// Label is the name label floating above a planet.
	Label

	// OrbitRing is the semi-transparent orbit path of a planet.
	OrbitRing

	// Backdrop is the inverted sphere enclosing the whole scene.
	Backdrop
)

// Primitive is one renderable element of the scene, described
// independently of any particular rendering system.
type Primitive struct {

	// Kind is the kind of primitive.
	Kind Kinds

	// Name is the name of the associated body, or of the light or backdrop.
	Name string

	// Pos is the position of the center of the primitive.
	Pos math32.Vector3

	// Radius is the sphere radius, for spheres and the backdrop.
	Radius float32

	// Spin is the rotation about the vertical axis, in radians.
	Spin float32

	// Color is the surface or text color. Orbit rings are semi-transparent.
	Color color.RGBA

	// Emissive is the glow color, for the sun.
	Emissive color.RGBA

	// Lumens is the normalized 0-1 intensity, for lights.
	Lumens float32

	// Text is the label text.
	Text string

	// Points is the closed polyline of an orbit ring.
	Points []math32.Vector3
}

const (
	// LabelOffset is the gap between the top of a planet and its label.
	LabelOffset = 0.6

	// orbitAlpha is the opacity of the orbit rings.
	orbitAlpha = 77
)

// Position returns the position of a body at the given orbit angle:
// a point at the body's orbit radius in the y = 0 plane.
func Position(b Body, orbit float64) math32.Vector3 {
	ang := float32(orbit)
	return math32.Vec3(b.OrbitRadius*math32.Cos(ang), 0, b.OrbitRadius*math32.Sin(ang))
}

// RenderBody returns the primitives for one planet in the given state:
// its sphere, its label, and, if showOrbits is true, its orbit ring,
// whose path comes from the given cache.
func RenderBody(b Body, st OrbitState, showOrbits bool, cache *PathCache) []Primitive {
	pos := Position(b, st.Orbit)
	prims := []Primitive{
		{Kind: PlanetSphere, Name: b.Name, Pos: pos, Radius: b.Radius, Spin: float32(st.Spin), Color: b.Color},
		{Kind: Label, Name: b.Name, Pos: math32.Vec3(pos.X, b.Radius+LabelOffset, pos.Z), Color: LabelColor(b.Color), Text: b.Name},
	}
	if showOrbits && b.OrbitRadius > 0 {
		rc := b.Color
		rc.A = orbitAlpha
		prims = append(prims, Primitive{Kind: OrbitRing, Name: b.Name, Color: rc, Points: cache.Path(b.OrbitRadius)})
	}
	return prims
}

// LabelColor returns the text color for the label of a body with the
// given color: the body color blended halfway to white, so that labels
// stay readable against the dark backdrop.
func LabelColor(c color.RGBA) color.RGBA {
	cf, _ := colorful.MakeColor(c)
	r, g, b := cf.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.5).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}
