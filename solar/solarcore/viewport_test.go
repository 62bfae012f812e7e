// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solarcore

import (
	"math"
	"testing"

	"cogentcore.org/core/core"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/solarsystem/solar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewportDefaults(t *testing.T) {
	vp := NewViewport(core.NewBody())
	assert.Equal(t, DefaultTitle, vp.Title)
	assert.Equal(t, solar.DefaultConfig(), vp.Config)
	assert.Equal(t, solar.DefaultCamera(), vp.Camera)
	require.NotNil(t, vp.Animator)
	assert.Len(t, vp.Animator.Bodies(), solar.NumBodies)
}

func TestSetConfig(t *testing.T) {
	vp := NewViewport(core.NewBody())
	for _, speed := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		err := vp.SetConfig(solar.Config{ShowOrbits: false, Speed: speed})
		assert.ErrorIs(t, err, solar.ErrInvalidSpeed, "speed %g", speed)
		assert.Equal(t, solar.DefaultConfig(), vp.Config)
	}

	want := solar.Config{ShowOrbits: false, Speed: 2.5}
	require.NoError(t, vp.SetConfig(want))
	assert.Equal(t, want, vp.Config)
}

func TestProposeConfigDisplayOnly(t *testing.T) {
	vp := NewViewport(core.NewBody())
	vp.proposeConfig(solar.Config{ShowOrbits: false, Speed: 3})
	assert.Equal(t, solar.DefaultConfig(), vp.Config)
}

func TestProposeConfigOwner(t *testing.T) {
	vp := NewViewport(core.NewBody())
	var got []solar.Config
	vp.OnConfigChange(func(cfg solar.Config) {
		got = append(got, cfg)
	})

	// the owner ignores the proposal
	proposed := solar.Config{ShowOrbits: false, Speed: 3}
	vp.proposeConfig(proposed)
	assert.Equal(t, []solar.Config{proposed}, got)
	assert.Equal(t, solar.DefaultConfig(), vp.Config)

	// the owner applies the proposal
	vp.OnConfigChange(func(cfg solar.Config) {
		assert.NoError(t, vp.SetConfig(cfg))
	})
	vp.proposeConfig(proposed)
	assert.Len(t, got, 2)
	assert.Equal(t, proposed, vp.Config)
}

func TestClose(t *testing.T) {
	vp := NewViewport(core.NewBody())
	called := false
	vp.OnConfigChange(func(cfg solar.Config) {
		called = true
	})
	vp.Close()
	vp.Close()
	vp.proposeConfig(solar.Config{ShowOrbits: true, Speed: 2})
	assert.False(t, called)
}

func TestClampCamera(t *testing.T) {
	vp := NewViewport(core.NewBody())
	sc := xyz.NewScene()
	sc.Camera.Pose.Pos = math32.Vec3(0, 0, 500)
	sc.Camera.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))

	vp.clampCamera(sc)
	assert.InDelta(t, vp.Camera.MaxDistance, sc.Camera.Pose.Pos.Length(), 1e-3)

	sc.Camera.Pose.Pos = math32.Vec3(0, 1, 0.5)
	vp.clampCamera(sc)
	assert.InDelta(t, vp.Camera.MinDistance, sc.Camera.Pose.Pos.Length(), 1e-3)

	inside := math32.Vec3(0, 10, 20)
	sc.Camera.Pose.Pos = inside
	vp.clampCamera(sc)
	assert.Equal(t, inside, sc.Camera.Pose.Pos)
}

// newBuiltViewport returns a viewport whose widget tree has been built,
// and the function that runs one animation frame.
func newBuiltViewport(t *testing.T) (*core.Body, *Viewport, func() *core.Animation) {
	t.Helper()
	b := core.NewBody()
	vp := NewViewport(b)
	b.Update()
	require.Equal(t, 3, vp.NumChildren())
	require.Len(t, vp.Scene.Animations, 1)
	a := vp.Scene.Animations[0]
	return b, vp, func() *core.Animation {
		a.Func(a)
		return a
	}
}

// setting returns the settings widget with the given name.
func setting[T tree.Node](vp *Viewport, name string) T {
	return vp.ChildByName("settings", 2).AsTree().ChildByName(name, 0).(T)
}

func TestViewportBuild(t *testing.T) {
	_, vp, _ := newBuiltViewport(t)
	title := vp.ChildByName("title", 0).AsTree().Child(0).(*core.Text)
	assert.Equal(t, DefaultTitle, title.Text)

	sc := vp.SceneXYZ()
	assert.Equal(t, vp.Camera.FOV, sc.Camera.FOV)
	assert.Equal(t, vp.Camera.Pos, sc.Camera.Pose.Pos)
	assert.Equal(t, solar.NumBodies, vp.scene.NumSolids(solar.OrbitRing))

	assert.True(t, setting[*core.Switch](vp, "orbits").IsChecked())
	assert.InDelta(t, 1, setting[*core.Slider](vp, "speed").Value, 1e-6)
}

func TestViewportStep(t *testing.T) {
	_, vp, frame := newBuiltViewport(t)
	for range 3 {
		assert.False(t, frame().Done)
	}
	assert.Equal(t, 3, vp.Animator.Ticks)
	st, ok := vp.Animator.State("Earth")
	require.True(t, ok)
	assert.InDelta(t, 0.03, st.Orbit, 1e-9)
	assert.Equal(t, solar.NumBodies, vp.scene.NumSolids(solar.OrbitRing))
	assert.Equal(t, solar.NumBodies, vp.scene.NumSolids(solar.PlanetSphere))

	// navigation beyond the limit is pulled back on the next frame
	vp.SceneXYZ().Camera.Pose.Pos = math32.Vec3(0, 0, 300)
	frame()
	assert.InDelta(t, vp.Camera.MaxDistance, vp.SceneXYZ().Camera.Pose.Pos.Length(), 1e-3)
}

func TestViewportToggleOrbits(t *testing.T) {
	_, vp, frame := newBuiltViewport(t)
	vp.OnConfigChange(func(cfg solar.Config) {
		assert.NoError(t, vp.SetConfig(cfg))
	})
	frame()

	sw := setting[*core.Switch](vp, "orbits")
	sw.SetChecked(false)
	sw.SendChange()
	frame()

	assert.False(t, vp.Config.ShowOrbits)
	assert.False(t, setting[*core.Switch](vp, "orbits").IsChecked())
	assert.Zero(t, vp.scene.NumSolids(solar.OrbitRing))
	assert.Equal(t, solar.NumBodies, vp.scene.NumSolids(solar.PlanetSphere))
	assert.Equal(t, 1, vp.scene.NumSolids(solar.SunSphere))
}

func TestViewportSnapBack(t *testing.T) {
	_, vp, frame := newBuiltViewport(t)
	sw := setting[*core.Switch](vp, "orbits")
	sw.SetChecked(false)
	sw.SendChange()
	frame()

	assert.True(t, vp.Config.ShowOrbits)
	assert.True(t, setting[*core.Switch](vp, "orbits").IsChecked())
	assert.Equal(t, solar.NumBodies, vp.scene.NumSolids(solar.OrbitRing))
}

func TestViewportSpeedAboveSlider(t *testing.T) {
	_, vp, _ := newBuiltViewport(t)
	require.NoError(t, vp.SetConfig(solar.Config{ShowOrbits: true, Speed: 10}))
	sr := setting[*core.Slider](vp, "speed")
	assert.InDelta(t, 10, sr.Value, 1e-5)
	assert.Equal(t, float32(10), sr.Max)
	assert.Equal(t, "Speed: 10.0x", setting[*core.Text](vp, "speed-label").Text)

	require.NoError(t, vp.SetConfig(solar.Config{ShowOrbits: true, Speed: 2}))
	assert.InDelta(t, 2, sr.Value, 1e-6)
	assert.Equal(t, float32(SliderMax), sr.Max)
}

func TestViewportResetCamera(t *testing.T) {
	_, vp, _ := newBuiltViewport(t)
	sc := vp.SceneXYZ()
	sc.Camera.Pose.Pos = math32.Vec3(10, 10, 10)
	vp.ResetCamera()
	assert.Equal(t, vp.Camera.Pos, sc.Camera.Pose.Pos)
}

func TestViewportDestroy(t *testing.T) {
	b, vp, frame := newBuiltViewport(t)
	frame()
	b.DeleteChildren()
	assert.True(t, vp.closed)
	assert.True(t, frame().Done)
	assert.Equal(t, 1, vp.Animator.Ticks)
}
