// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"fmt"
	"math"

	"cogentcore.org/core/base/errors"
)

// ErrInvalidSpeed is returned by [Config.Validate] when the
// animation speed is not a finite positive number.
var ErrInvalidSpeed = errors.New("solar: animation speed must be a finite number > 0")

// Config is the scene configuration supplied by the embedding owner.
// It is read-only to the animator and composer.
type Config struct {

	// ShowOrbits is whether to draw the orbit path of each planet.
	ShowOrbits bool `default:"true"`

	// Speed multiplies the orbital revolution rate of all planets.
	// It does not affect the rotation of bodies about their own axes.
	// Any finite value > 0 is valid.
	Speed float64 `default:"1" step:"0.1"`
}

// Defaults sets the default configuration.
func (c *Config) Defaults() {
	c.ShowOrbits = true
	c.Speed = 1
}

// DefaultConfig returns a new [Config] with default values.
func DefaultConfig() Config {
	c := Config{}
	c.Defaults()
	return c
}

// Validate returns an error wrapping [ErrInvalidSpeed] if the
// speed would freeze or reverse the animation.
func (c *Config) Validate() error {
	if math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0) || c.Speed <= 0 {
		return fmt.Errorf("%w (got %g)", ErrInvalidSpeed, c.Speed)
	}
	return nil
}
