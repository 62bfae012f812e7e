// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"cogentcore.org/core/math32"
)

// OrbitSegments is the number of line segments used to
// approximate an orbit circle.
const OrbitSegments = 64

// OrbitPath returns the closed polyline approximating a circle of the
// given radius in the y = 0 orbital plane. It has segments+1 points,
// and the last point is identical to the first.
func OrbitPath(radius float32, segments int) []math32.Vector3 {
	if segments < 3 {
		segments = 3
	}
	pts := make([]math32.Vector3, segments+1)
	for i := range segments {
		ang := 2 * math32.Pi * float32(i) / float32(segments)
		pts[i] = math32.Vec3(radius*math32.Cos(ang), 0, radius*math32.Sin(ang))
	}
	pts[segments] = pts[0]
	return pts
}

// PathCache holds orbit paths keyed by radius, so that each path
// is only computed when its radius is first needed.
// It is not safe for concurrent use; it lives on the render loop.
type PathCache struct {

	// Segments is the number of segments per path; 0 means [OrbitSegments].
	Segments int

	paths map[float32][]math32.Vector3
}

// Path returns the orbit path for the given radius, computing it
// if it has not been computed yet. The returned slice is shared
// and must not be modified.
func (pc *PathCache) Path(radius float32) []math32.Vector3 {
	if pts, ok := pc.paths[radius]; ok {
		return pts
	}
	if pc.paths == nil {
		pc.paths = make(map[float32][]math32.Vector3)
	}
	segs := pc.Segments
	if segs == 0 {
		segs = OrbitSegments
	}
	pts := OrbitPath(radius, segs)
	pc.paths[radius] = pts
	return pts
}

// Len returns the number of cached paths.
func (pc *PathCache) Len() int {
	return len(pc.paths)
}

// Reset discards all cached paths.
func (pc *PathCache) Reset() {
	pc.paths = nil
}
