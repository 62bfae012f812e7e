// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"cogentcore.org/core/math32"
)

// Camera holds the initial camera placement and the navigation limits
// of the view.
type Camera struct {

	// Pos is the initial camera position.
	Pos math32.Vector3

	// Target is the point the camera initially looks at.
	Target math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32 `default:"60"`

	// MinDistance is the closest the camera can get to its target.
	MinDistance float32 `default:"3"`

	// MaxDistance is the farthest the camera can get from its target.
	MaxDistance float32 `default:"50"`
}

// Defaults sets the default camera.
func (cm *Camera) Defaults() {
	cm.Pos = math32.Vec3(0, 20, 40)
	cm.Target = math32.Vector3{}
	cm.FOV = 60
	cm.MinDistance = 3
	cm.MaxDistance = 50
}

// DefaultCamera returns the default [Camera].
func DefaultCamera() Camera {
	cm := Camera{}
	cm.Defaults()
	return cm
}

// Clamp returns pos moved along the line to target so that its distance
// to target is within [Camera.MinDistance, Camera.MaxDistance].
// The second return value is false if pos was already within range.
func (cm *Camera) Clamp(pos, target math32.Vector3) (math32.Vector3, bool) {
	off := pos.Sub(target)
	d := off.Length()
	switch {
	case d < cm.MinDistance:
		if d == 0 {
			off = cm.Pos.Sub(cm.Target)
			d = off.Length()
			if d == 0 {
				off = math32.Vec3(0, 0, 1)
				d = 1
			}
		}
		return target.Add(off.MulScalar(cm.MinDistance / d)), true
	case d > cm.MaxDistance:
		return target.Add(off.MulScalar(cm.MaxDistance / d)), true
	}
	return pos, false
}
