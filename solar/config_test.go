// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.ShowOrbits)
	assert.Equal(t, 1.0, cfg.Speed)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	for _, sp := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		cfg := Config{ShowOrbits: true, Speed: sp}
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidSpeed, "%g", sp)
	}
	for _, sp := range []float64{0.01, 1, 2, 100} {
		cfg := Config{Speed: sp}
		assert.NoError(t, cfg.Validate(), "%g", sp)
	}
}
