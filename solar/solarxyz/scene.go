// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solarxyz renders a [solar.Layout] into an [xyz.Scene].
package solarxyz

import (
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/text/text"
	"cogentcore.org/core/xyz"
	"cogentcore.org/solarsystem/solar"
)

const (
	// SphereMesh is the name of the unit sphere mesh shared by all
	// spheres, which are scaled to their radius.
	SphereMesh = "solar-sphere"

	// SphereSegments is the tessellation of the sphere mesh.
	SphereSegments = 48

	// RingWidth is the thickness of the orbit ring lines.
	RingWidth = 0.04

	// LabelScale is the height of a label in scene units.
	LabelScale = 0.6
)

// key identifies the node for one primitive.
type key struct {
	kind solar.Kinds
	name string
}

// Scene keeps an [xyz.Scene] in sync with successive [solar.Layout]s.
// Nodes are created the first time their primitive appears, updated in
// place on later calls, and deleted when their primitive is no longer
// present, e.g., the orbit rings when orbit paths are turned off.
// Lights are created once, since they live on the xyz.Scene itself.
type Scene struct {

	// XYZ is the scene being rendered into.
	XYZ *xyz.Scene

	// Billboard makes labels face the camera on every sync.
	Billboard bool

	solids map[key]*xyz.Solid
	labels map[string]*xyz.Text2D
	lights map[string]bool
	sphere xyz.Mesh
	rings  map[string]xyz.Mesh
}

// New returns a new [Scene] rendering into the given xyz.Scene.
func New(sc *xyz.Scene) *Scene {
	ss := &Scene{XYZ: sc, Billboard: true}
	ss.solids = make(map[key]*xyz.Solid)
	ss.labels = make(map[string]*xyz.Text2D)
	ss.lights = make(map[string]bool)
	ss.rings = make(map[string]xyz.Mesh)
	sc.Background = colors.Uniform(solar.BackdropColor)
	return ss
}

// Sync updates the xyz scene to match the given layout.
// It returns true if any nodes were added or removed, in which case
// GPU resources must be rebuilt before the next render (see [Scene.Update]).
func (ss *Scene) Sync(ly *solar.Layout) bool {
	seen := make(map[key]bool, len(ly.Primitives))
	changed := false
	for i := range ly.Primitives {
		pr := &ly.Primitives[i]
		k := key{pr.Kind, pr.Name}
		seen[k] = true
		switch pr.Kind {
		case solar.AmbientLight, solar.PointLight:
			ss.syncLight(pr)
		case solar.Label:
			if ss.syncLabel(pr) {
				changed = true
			}
		default:
			if ss.syncSolid(k, pr) {
				changed = true
			}
		}
	}
	for k, sld := range ss.solids {
		if seen[k] {
			continue
		}
		sld.Delete()
		delete(ss.solids, k)
		changed = true
	}
	for nm, lbl := range ss.labels {
		if seen[key{solar.Label, nm}] {
			continue
		}
		lbl.Delete()
		delete(ss.labels, nm)
		changed = true
	}
	return changed
}

// Update syncs the given layout and flags the xyz scene for the
// appropriate level of update: a full rebuild after structural changes,
// and a pose update otherwise.
func (ss *Scene) Update(ly *solar.Layout) {
	if ss.Sync(ly) {
		ss.XYZ.Rebuild()
	}
	ss.XYZ.SetNeedsUpdate()
}

// Solid returns the solid for the primitive of the given kind and name,
// or nil if there is none.
func (ss *Scene) Solid(kind solar.Kinds, name string) *xyz.Solid {
	return ss.solids[key{kind, name}]
}

// Label returns the label node for the given body, or nil.
func (ss *Scene) Label(name string) *xyz.Text2D {
	return ss.labels[name]
}

// NumSolids returns the number of solids of the given kind.
func (ss *Scene) NumSolids(kind solar.Kinds) int {
	n := 0
	for k := range ss.solids {
		if k.kind == kind {
			n++
		}
	}
	return n
}

func (ss *Scene) syncLight(pr *solar.Primitive) {
	if ss.lights[pr.Name] {
		return
	}
	ss.lights[pr.Name] = true
	switch pr.Kind {
	case solar.AmbientLight:
		xyz.NewAmbient(ss.XYZ, pr.Name, pr.Lumens, xyz.DirectSun)
	case solar.PointLight:
		pt := xyz.NewPoint(ss.XYZ, pr.Name, pr.Lumens, xyz.DirectSun)
		pt.Pos = pr.Pos
	}
}

func (ss *Scene) sphereMesh() xyz.Mesh {
	if ss.sphere == nil {
		ss.sphere = xyz.NewSphere(ss.XYZ, SphereMesh, 1, SphereSegments)
	}
	return ss.sphere
}

func (ss *Scene) ringMesh(pr *solar.Primitive) xyz.Mesh {
	if ms, ok := ss.rings[pr.Name]; ok {
		return ms
	}
	ms := xyz.NewLines(ss.XYZ, "orbit-"+pr.Name, pr.Points, math32.Vec2(RingWidth, RingWidth), xyz.OpenLines)
	ss.rings[pr.Name] = ms
	return ms
}

// syncSolid creates or updates the solid for a sphere, ring, or backdrop
// primitive, returning true if it was newly created.
func (ss *Scene) syncSolid(k key, pr *solar.Primitive) bool {
	sld, has := ss.solids[k]
	if !has {
		sld = xyz.NewSolid(ss.XYZ)
		sld.SetName(pr.Kind.String() + "-" + pr.Name)
		switch pr.Kind {
		case solar.OrbitRing:
			sld.SetMesh(ss.ringMesh(pr))
		default:
			sld.SetMesh(ss.sphereMesh())
		}
		ss.solids[k] = sld
		slog.Debug("solarxyz: added solid", "name", sld.Name)
	}
	sld.SetColor(pr.Color)
	switch pr.Kind {
	case solar.SunSphere:
		sld.SetEmissive(pr.Emissive)
	case solar.Backdrop:
		sld.SetEmissive(pr.Color)
		// inverted so that its inside faces the camera
		sld.Pose.Scale.SetScalar(-pr.Radius)
		return !has
	case solar.OrbitRing:
		return !has
	default:
		sld.SetShiny(30).SetReflective(0.1)
	}
	sld.Pose.Pos = pr.Pos
	sld.Pose.Scale.SetScalar(pr.Radius)
	sld.Pose.SetAxisRotation(0, 1, 0, math32.RadToDeg(pr.Spin))
	return !has
}

// syncLabel creates or updates the label for a body,
// returning true if it was newly created.
func (ss *Scene) syncLabel(pr *solar.Primitive) bool {
	lbl, has := ss.labels[pr.Name]
	if !has {
		lbl = xyz.NewText2D(ss.XYZ)
		lbl.SetName("label-" + pr.Name)
		lbl.SetText(pr.Text)
		lbl.Styles.Color = colors.Uniform(pr.Color)
		lbl.Styles.Text.Align = text.Center
		lbl.Styles.Text.AlignV = text.Center
		lbl.Pose.Scale.SetScalar(LabelScale)
		ss.labels[pr.Name] = lbl
	}
	lbl.Pose.Pos = pr.Pos
	if ss.Billboard {
		lbl.Pose.Quat = ss.XYZ.Camera.Pose.Quat
	}
	return !has
}
