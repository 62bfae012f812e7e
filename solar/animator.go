// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"math"
)

// OrbitState is the time-varying state of one body.
// Both angles are in radians and kept in [0, 2π).
type OrbitState struct {

	// Orbit is the angle of the body around the sun.
	Orbit float64

	// Spin is the rotation angle of the body about its own axis.
	Spin float64
}

// Steps are the per-tick angle increments, in radians.
type Steps struct {

	// Orbit is the base orbital step, multiplied by [Body.Speed]
	// and [Config.Speed].
	Orbit float64 `default:"0.01"`

	// Spin is the self-rotation step of the planets.
	Spin float64 `default:"0.02"`

	// SunSpin is the self-rotation step of the sun.
	SunSpin float64 `default:"0.005"`
}

// Defaults sets the default steps.
func (st *Steps) Defaults() {
	st.Orbit = 0.01
	st.Spin = 0.02
	st.SunSpin = 0.005
}

// DefaultSteps returns the default [Steps].
func DefaultSteps() Steps {
	st := Steps{}
	st.Defaults()
	return st
}

// Animator advances the [OrbitState] of every body once per display
// frame. It owns all of the animation state; renderers read it through
// [Animator.State] and [Animator.SunSpin].
//
// An Animator is driven by a single render loop and is not safe for
// concurrent use.
type Animator struct {

	// Steps are the per-tick increments.
	Steps Steps

	// Ticks is the total number of ticks since creation or the last Reset.
	Ticks int

	bodies  []Body
	states  []OrbitState
	sunSpin float64
}

// NewAnimator returns a new Animator for the given bodies,
// which defaults to [Bodies] if none are given.
func NewAnimator(bodies ...Body) *Animator {
	if len(bodies) == 0 {
		bodies = Bodies()
	}
	an := &Animator{bodies: bodies}
	an.Steps.Defaults()
	an.states = make([]OrbitState, len(bodies))
	return an
}

// Bodies returns the bodies animated by this Animator.
func (an *Animator) Bodies() []Body {
	return an.bodies
}

// Tick advances all angles by one frame. Orbital angles are scaled by
// each body's [Body.Speed] and the [Config.Speed]; self-rotation is not
// affected by the config speed. Tick never fails; a zero speed
// freezes the orbits while the bodies keep spinning.
func (an *Animator) Tick(cfg Config) {
	for i := range an.states {
		st := &an.states[i]
		st.Orbit = wrapAngle(st.Orbit + an.bodies[i].Speed*an.Steps.Orbit*cfg.Speed)
		st.Spin = wrapAngle(st.Spin + an.Steps.Spin)
	}
	an.sunSpin = wrapAngle(an.sunSpin + an.Steps.SunSpin)
	an.Ticks++
}

// Advance calls [Animator.Tick] n times.
func (an *Animator) Advance(cfg Config, n int) {
	for range n {
		an.Tick(cfg)
	}
}

// State returns the state of the body with the given name.
func (an *Animator) State(name string) (OrbitState, bool) {
	for i, b := range an.bodies {
		if b.Name == name {
			return an.states[i], true
		}
	}
	return OrbitState{}, false
}

// StateAt returns the state of the body at the given index.
func (an *Animator) StateAt(idx int) OrbitState {
	return an.states[idx]
}

// States returns a copy of the states of all bodies, in body order.
func (an *Animator) States() []OrbitState {
	sts := make([]OrbitState, len(an.states))
	copy(sts, an.states)
	return sts
}

// SunSpin returns the self-rotation angle of the sun.
func (an *Animator) SunSpin() float64 {
	return an.sunSpin
}

// Reset sets all angles and the tick count back to zero.
func (an *Animator) Reset() {
	clear(an.states)
	an.sunSpin = 0
	an.Ticks = 0
}

// wrapAngle returns the given angle in [0, 2π).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
