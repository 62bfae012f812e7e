// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command solarsystem shows an interactive 3D view of the solar system.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/core"
	"cogentcore.org/solarsystem/solar"
	"cogentcore.org/solarsystem/solar/solarcore"
	"cogentcore.org/solarsystem/solar/watch"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the solarsystem command.
type Config struct {

	// Title is the caption shown above the scene.
	Title string `default:"3D Solar System"`

	// ShowOrbits is whether to show the orbit path of each planet.
	ShowOrbits bool `default:"true"`

	// Speed is the orbital speed multiplier. It must be > 0.
	Speed float64 `default:"1"`

	// Watch is a TOML config file to watch for changes to
	// ShowOrbits and Speed while running.
	Watch string `cmd:"run" flag:"w,watch"`

	// Ticks is the number of animation ticks to run before
	// printing the state.
	Ticks int `cmd:"state" default:"100"`

	// Body restricts the printed state to the planet with this name.
	// The sun has no orbit, so it is not accepted.
	Body string `cmd:"state"`

	// Format is the output format of the state: toml or yaml.
	Format string `cmd:"state" default:"toml"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("solarsystem", "An interactive 3D view of the solar system.")
	opts.DefaultFiles = []string{"solarsystem.toml"}
	cli.Run(opts, &Config{}, Run, State)
}

// sceneConfig returns the validated scene config.
func (c *Config) sceneConfig() (solar.Config, error) {
	cfg := solar.Config{ShowOrbits: c.ShowOrbits, Speed: c.Speed}
	return cfg, cfg.Validate()
}

// startConfig returns the scene config to open with. The watched file,
// if any, takes the place of the flags, as it does on each reload.
func (c *Config) startConfig() (solar.Config, error) {
	if c.Watch != "" {
		return watch.Load(c.Watch)
	}
	return c.sceneConfig()
}

// Run opens the interactive 3D view of the solar system.
func Run(c *Config) error { //cli:cmd -root
	cfg, err := c.startConfig()
	if err != nil {
		return err
	}
	b := core.NewBody(c.Title)
	vp := solarcore.NewViewport(b).SetTitle(c.Title)
	if err := vp.SetConfig(cfg); err != nil {
		return err
	}
	vp.OnConfigChange(func(cfg solar.Config) {
		if err := vp.SetConfig(cfg); err != nil {
			core.ErrorSnackbar(vp, err, "Invalid settings")
		}
	})
	if c.Watch != "" {
		w, err := watch.New(c.Watch, func(cfg solar.Config) {
			vp.AsyncLock()
			errors.Log(vp.SetConfig(cfg))
			vp.AsyncUnlock()
		})
		if err != nil {
			return err
		}
		defer func() { errors.Log(w.Close()) }()
	}
	b.RunMainWindow()
	return nil
}

// State runs the animation without a window for the given number
// of ticks, and prints the resulting state of each planet.
func State(c *Config) error {
	return writeState(os.Stdout, c)
}

// BodyState is the printed state of one planet.
type BodyState struct {
	Name  string  `toml:"name" yaml:"name"`
	Orbit float64 `toml:"orbit" yaml:"orbit"`
	Spin  float64 `toml:"spin" yaml:"spin"`
	X     float32 `toml:"x" yaml:"x"`
	Y     float32 `toml:"y" yaml:"y"`
	Z     float32 `toml:"z" yaml:"z"`
}

// StateReport is the printed state of the animation.
type StateReport struct {
	Ticks   int         `toml:"ticks" yaml:"ticks"`
	Speed   float64     `toml:"speed" yaml:"speed"`
	SunSpin float64     `toml:"sun_spin" yaml:"sun_spin"`
	Bodies  []BodyState `toml:"bodies" yaml:"bodies"`
}

// stateReport runs the animation and returns the resulting report.
func stateReport(c *Config) (*StateReport, error) {
	cfg, err := c.sceneConfig()
	if err != nil {
		return nil, err
	}
	if c.Ticks < 0 {
		return nil, fmt.Errorf("ticks must be >= 0 (got %d)", c.Ticks)
	}
	only := ""
	if c.Body != "" {
		b, ok := solar.BodyByName(c.Body)
		if !ok || b.Name == solar.Sun.Name {
			return nil, fmt.Errorf("unknown planet %q", c.Body)
		}
		only = b.Name
	}
	an := solar.NewAnimator()
	an.Advance(cfg, c.Ticks)
	rep := &StateReport{Ticks: an.Ticks, Speed: cfg.Speed, SunSpin: an.SunSpin()}
	for i, b := range an.Bodies() {
		if only != "" && b.Name != only {
			continue
		}
		st := an.StateAt(i)
		pos := solar.Position(b, st.Orbit)
		rep.Bodies = append(rep.Bodies, BodyState{Name: b.Name, Orbit: st.Orbit, Spin: st.Spin, X: pos.X, Y: pos.Y, Z: pos.Z})
	}
	return rep, nil
}

// writeState writes the state report to the given writer in the
// configured format.
func writeState(w io.Writer, c *Config) error {
	rep, err := stateReport(c)
	if err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case "", "toml":
		return toml.NewEncoder(w).Encode(rep)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return errors.Join(enc.Encode(rep), enc.Close())
	}
	return fmt.Errorf("unknown format %q; must be toml or yaml", c.Format)
}
