// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solar provides the model for a simplified, illustrative solar
// system: a fixed registry of bodies, their orbit paths, a per-frame
// animator, and a renderer-independent scene layout.
// See package solarcore for the interactive 3D view.
package solar

//go:generate core generate

import (
	"image/color"
	"strings"

	"cogentcore.org/core/colors"
)

// Body describes one celestial body. Values are illustrative proportions
// chosen for visual clarity, not astronomical ratios. Bodies are never
// mutated after startup; only their [OrbitState] changes over time.
type Body struct {

	// Name is the unique display name of the body.
	Name string

	// Radius is the radius of the body's sphere.
	Radius float32 `min:"0"`

	// OrbitRadius is the distance of the body from the sun.
	OrbitRadius float32 `min:"0"`

	// Color is the surface color of the body.
	Color color.RGBA

	// Speed is the angular speed factor of the orbit relative to Earth,
	// i.e., inversely related to the real orbital period.
	Speed float64 `min:"0"`
}

// Sun is the central emissive body at the origin.
var Sun = Body{Name: "Sun", Radius: 2.5, Color: colors.FromRGB(253, 184, 19)}

// bodies is the fixed, ordered planet table.
var bodies = [...]Body{
	{Name: "Mercury", Radius: 0.25, OrbitRadius: 4.5, Color: colors.FromRGB(140, 120, 83), Speed: 4.15},
	{Name: "Venus", Radius: 0.45, OrbitRadius: 6.5, Color: colors.FromRGB(255, 198, 73), Speed: 1.62},
	{Name: "Earth", Radius: 0.5, OrbitRadius: 9, Color: colors.FromRGB(107, 147, 214), Speed: 1},
	{Name: "Mars", Radius: 0.35, OrbitRadius: 12, Color: colors.FromRGB(205, 92, 92), Speed: 0.53},
	{Name: "Jupiter", Radius: 1.6, OrbitRadius: 17, Color: colors.FromRGB(216, 202, 157), Speed: 0.084},
	{Name: "Saturn", Radius: 1.35, OrbitRadius: 23, Color: colors.FromRGB(250, 213, 165), Speed: 0.034},
	{Name: "Uranus", Radius: 0.9, OrbitRadius: 29, Color: colors.FromRGB(79, 208, 231), Speed: 0.012},
	{Name: "Neptune", Radius: 0.85, OrbitRadius: 34, Color: colors.FromRGB(75, 112, 221), Speed: 0.006},
}

// NumBodies is the number of planets in the registry.
const NumBodies = len(bodies)

// Bodies returns the planets in order of distance from the sun.
// A new slice is returned on each call, so callers may modify it freely.
func Bodies() []Body {
	bs := make([]Body, NumBodies)
	copy(bs, bodies[:])
	return bs
}

// BodyByName returns the planet (or the sun) with the given name,
// ignoring case.
func BodyByName(name string) (Body, bool) {
	if strings.EqualFold(name, Sun.Name) {
		return Sun, true
	}
	for _, b := range bodies {
		if strings.EqualFold(name, b.Name) {
			return b, true
		}
	}
	return Body{}, false
}
