// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solarcore provides an interactive GUI view of the solar system.
package solarcore

//go:generate core generate

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/solarsystem/solar"
	"cogentcore.org/solarsystem/solar/solarxyz"
)

// DefaultTitle is the default caption of a [Viewport].
const DefaultTitle = "3D Solar System"

// SliderMax is the upper end of the speed slider, unless the
// current speed is higher.
const SliderMax = 5

// Viewport is a widget that shows the animated solar system, filling its
// parent. Dragging orbits the camera, Shift-dragging pans, and scrolling
// zooms, within the distance limits of [Viewport.Camera].
//
// The settings panel shows the current [solar.Config]. Changes made there
// are not applied by the Viewport: they are sent as proposed configs to
// the functions registered with [Viewport.OnConfigChange], and the owner
// of the config decides whether to call [Viewport.SetConfig]. Without any
// registered functions, the settings are display-only.
type Viewport struct {
	core.Frame

	// Title is the caption shown above the scene.
	Title string

	// Camera is the initial camera and the navigation limits.
	Camera solar.Camera

	// Config is the current scene configuration, as last set
	// by [Viewport.SetConfig].
	Config solar.Config `set:"-"`

	// Animator holds the orbit state of all bodies.
	Animator *solar.Animator `set:"-" display:"-"`

	// paths caches the orbit paths.
	paths solar.PathCache

	// scene renders layouts into the xyz scene.
	scene *solarxyz.Scene

	// configFuncs are called with proposed configs.
	configFuncs []func(cfg solar.Config)

	// closed is set by Close, and stops the animation.
	closed bool
}

func (vp *Viewport) Init() {
	vp.Frame.Init()
	vp.Title = DefaultTitle
	vp.Camera.Defaults()
	vp.Config.Defaults()
	vp.Animator = solar.NewAnimator()
	vp.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 1)
	})

	tree.AddChildAt(vp, "title", func(w *core.Frame) {
		w.Styler(func(s *styles.Style) {
			s.Direction = styles.Column
		})
		w.Maker(vp.makeTitle)
	})
	tree.AddChildAt(vp, "scene", func(w *xyzcore.Scene) {
		vp.configScene(w)
		w.Animate(func(a *core.Animation) {
			vp.step(w, a)
		})
	})
	tree.AddChildAt(vp, "settings", func(w *core.Frame) {
		w.Styler(func(s *styles.Style) {
			s.Align.Items = styles.Center
			s.Gap.X.Em(1)
		})
		w.Maker(vp.makeSettings)
	})
}

// SceneWidget returns the [xyzcore.Scene] widget.
func (vp *Viewport) SceneWidget() *xyzcore.Scene {
	return vp.ChildByName("scene", 1).(*xyzcore.Scene)
}

// SceneXYZ returns the [xyz.Scene].
func (vp *Viewport) SceneXYZ() *xyz.Scene {
	return vp.SceneWidget().XYZ
}

// OnConfigChange adds a function that is called with the new config
// whenever the user changes a setting. The function should call
// [Viewport.SetConfig] if the change is to be applied.
func (vp *Viewport) OnConfigChange(fun func(cfg solar.Config)) *Viewport {
	vp.configFuncs = append(vp.configFuncs, fun)
	return vp
}

// SetConfig validates and applies the given config, updating the
// scene on the next frame and the settings panel immediately.
// An invalid config is logged, returned, and not applied.
func (vp *Viewport) SetConfig(cfg solar.Config) error {
	if err := cfg.Validate(); err != nil {
		return errors.Log(err)
	}
	if cfg == vp.Config {
		return nil
	}
	slog.Info("solarcore: applying config", "ShowOrbits", cfg.ShowOrbits, "Speed", cfg.Speed)
	vp.Config = cfg
	vp.refresh()
	return nil
}

// proposeConfig sends the given config to the config functions.
// The settings panel is then updated from the current config, so that
// any change that was not applied snaps back.
func (vp *Viewport) proposeConfig(cfg solar.Config) {
	if len(vp.configFuncs) == 0 {
		slog.Info("solarcore: settings are display-only; no config handler registered")
	}
	for _, fun := range vp.configFuncs {
		fun(cfg)
	}
	vp.refresh()
}

// refresh updates the settings panel from the current config,
// once the widget has been built.
func (vp *Viewport) refresh() {
	if vp.HasChildren() {
		vp.Update()
	}
}

// Close stops the animation and releases the cached scene data.
// It is called automatically when the widget is destroyed.
func (vp *Viewport) Close() {
	if vp.closed {
		return
	}
	vp.closed = true
	vp.configFuncs = nil
	vp.paths.Reset()
	slog.Info("solarcore: viewport closed", "ticks", vp.Animator.Ticks)
}

func (vp *Viewport) Destroy() {
	vp.Close()
	vp.Frame.Destroy()
}

// ResetCamera restores the initial camera view.
func (vp *Viewport) ResetCamera() {
	sw := vp.SceneWidget()
	errors.Log(sw.XYZ.SetCamera("default"))
	sw.XYZ.SetNeedsUpdate()
	sw.NeedsRender()
}

// configScene sets up the camera and the initial scene contents.
func (vp *Viewport) configScene(sw *xyzcore.Scene) {
	sc := sw.XYZ
	sc.Camera.FOV = vp.Camera.FOV
	sc.Camera.Far = 4 * solar.BackdropRadius
	sc.Camera.Pose.Pos = vp.Camera.Pos
	sc.Camera.LookAt(vp.Camera.Target, math32.Vec3(0, 1, 0))
	sc.SaveCamera("default")

	vp.scene = solarxyz.New(sc)
	vp.scene.Sync(solar.Compose(vp.Config, vp.Animator, &vp.paths))
}

// step is the animation function, called once per display frame.
func (vp *Viewport) step(sw *xyzcore.Scene, a *core.Animation) {
	if vp.closed {
		a.Done = true
		return
	}
	vp.Animator.Tick(vp.Config)
	vp.clampCamera(sw.XYZ)
	vp.scene.Update(solar.Compose(vp.Config, vp.Animator, &vp.paths))
	sw.NeedsRender()
}

// clampCamera keeps the camera within the distance limits
// after navigation events have moved it.
func (vp *Viewport) clampCamera(sc *xyz.Scene) {
	cam := &sc.Camera
	pos, clamped := vp.Camera.Clamp(cam.Pose.Pos, cam.Target)
	if !clamped {
		return
	}
	cam.Pose.Pos = pos
	cam.LookAt(cam.Target, cam.UpDir)
}

func (vp *Viewport) makeTitle(p *tree.Plan) {
	tree.Add(p, func(w *core.Text) {
		w.SetType(core.TextHeadlineSmall)
		w.Updater(func() {
			w.SetText(vp.Title)
		})
	})
	tree.Add(p, func(w *core.Text) {
		w.SetType(core.TextBodySmall).
			SetText("Drag to orbit, Shift+drag to pan, scroll to zoom")
	})
}

func (vp *Viewport) makeSettings(p *tree.Plan) {
	tree.AddAt(p, "orbits", func(w *core.Switch) {
		w.SetText("Orbit paths").SetTooltip("Show the orbit path of each planet")
		w.Updater(func() {
			w.SetChecked(vp.Config.ShowOrbits)
		})
		w.OnChange(func(e events.Event) {
			cfg := vp.Config
			cfg.ShowOrbits = w.IsChecked()
			vp.proposeConfig(cfg)
		})
	})
	tree.AddAt(p, "speed-label", func(w *core.Text) {
		w.Updater(func() {
			w.SetText(fmt.Sprintf("Speed: %.1fx", vp.Config.Speed))
		})
	})
	tree.AddAt(p, "speed", func(w *core.Slider) {
		w.SetMin(0.1).SetMax(SliderMax).SetStep(0.1).
			SetTooltip("Orbital speed multiplier (does not affect rotation)")
		w.Updater(func() {
			// any valid speed can be set, so the range grows to show it
			speed := float32(vp.Config.Speed)
			w.SetMax(max(SliderMax, speed))
			w.SetValue(speed)
		})
		w.OnChange(func(e events.Event) {
			cfg := vp.Config
			cfg.Speed = float64(w.Value)
			vp.proposeConfig(cfg)
		})
	})
	tree.AddAt(p, "reset", func(w *core.Button) {
		w.SetIcon(icons.Update).SetTooltip("Reset to the initial view").
			OnClick(func(e events.Event) {
				vp.ResetCamera()
			})
	})
}
