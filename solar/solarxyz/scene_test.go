// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solarxyz

import (
	"testing"

	"cogentcore.org/core/xyz"
	"cogentcore.org/solarsystem/solar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene(t *testing.T) (*Scene, *solar.Animator, *solar.PathCache) {
	t.Helper()
	ss := New(xyz.NewScene())
	return ss, solar.NewAnimator(), &solar.PathCache{}
}

func TestSync(t *testing.T) {
	ss, an, cache := newTestScene(t)
	ly := solar.Compose(solar.DefaultConfig(), an, cache)
	assert.True(t, ss.Sync(ly))

	assert.Equal(t, 1, ss.NumSolids(solar.SunSphere))
	assert.Equal(t, 8, ss.NumSolids(solar.PlanetSphere))
	assert.Equal(t, 8, ss.NumSolids(solar.OrbitRing))
	assert.Equal(t, 1, ss.NumSolids(solar.Backdrop))
	for _, b := range solar.Bodies() {
		require.NotNil(t, ss.Label(b.Name), b.Name)
		assert.NotNil(t, ss.XYZ.ChildByName("planet-sphere-"+b.Name), b.Name)
	}
	assert.Equal(t, 2, ss.XYZ.Lights.Len())

	// a second sync of the same structure only updates poses
	an.Tick(solar.DefaultConfig())
	assert.False(t, ss.Sync(solar.Compose(solar.DefaultConfig(), an, cache)))
	assert.Equal(t, 2, ss.XYZ.Lights.Len())
}

func TestSyncPoses(t *testing.T) {
	ss, an, cache := newTestScene(t)
	an.Advance(solar.DefaultConfig(), 100)
	ly := solar.Compose(solar.DefaultConfig(), an, cache)
	ss.Sync(ly)

	pr := ly.Find(solar.PlanetSphere, "Mercury")
	require.NotNil(t, pr)
	sld := ss.Solid(solar.PlanetSphere, "Mercury")
	require.NotNil(t, sld)
	assert.Equal(t, pr.Pos, sld.Pose.Pos)
	assert.InDelta(t, pr.Radius, sld.Pose.Scale.X, 1e-6)

	bd := ss.Solid(solar.Backdrop, "backdrop")
	require.NotNil(t, bd)
	assert.Less(t, bd.Pose.Scale.X, float32(0))

	lbl := ss.Label("Mercury")
	require.NotNil(t, lbl)
	assert.Equal(t, "Mercury", lbl.Text)
	assert.Greater(t, lbl.Pose.Pos.Y, pr.Pos.Y)
}

func TestSyncToggleOrbits(t *testing.T) {
	ss, an, cache := newTestScene(t)
	on := solar.DefaultConfig()
	off := on
	off.ShowOrbits = false

	ss.Sync(solar.Compose(on, an, cache))
	sun := ss.Solid(solar.SunSphere, "Sun")
	earth := ss.Solid(solar.PlanetSphere, "Earth")
	nkids := ss.XYZ.NumChildren()

	assert.True(t, ss.Sync(solar.Compose(off, an, cache)))
	assert.Equal(t, 0, ss.NumSolids(solar.OrbitRing))
	assert.Equal(t, nkids-8, ss.XYZ.NumChildren())
	assert.Same(t, sun, ss.Solid(solar.SunSphere, "Sun"))
	assert.Same(t, earth, ss.Solid(solar.PlanetSphere, "Earth"))
	assert.Equal(t, 8, ss.NumSolids(solar.PlanetSphere))

	assert.True(t, ss.Sync(solar.Compose(on, an, cache)))
	assert.Equal(t, 8, ss.NumSolids(solar.OrbitRing))
	assert.Equal(t, nkids, ss.XYZ.NumChildren())
	assert.Len(t, ss.rings, 8)
}
