// Package config centralizes all tunable sandbox parameters.
package config

import "time"

// Max render resolution. Larger terminals get a centered canvas with a border.
const (
	MaxTermWidth  = 240
	MaxTermHeight = 80
)

// Default world dimensions when a scene does not set them.
const (
	WorldWidth  = 120
	WorldHeight = 80
)

// Controls applied to the selected body.
const (
	MoveSpeed   = 30.0 // Logical units per second
	RotateSpeed = 2.0  // Radians per second
)

// Broad phase. The grid cell is never smaller than MinCellSize even when
// every body is tiny.
const (
	MinCellSize = 8.0
)

// Contact markers
const (
	MarkerLifetime   = 0.4 // Seconds
	MaxMarkers       = 64
	CorrectionFactor = 0.8 // Fraction of depth resolved per step
	CorrectionSlop   = 0.01
)

// Frame rate for the interactive loop.
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Headless probe defaults
const (
	ProbeSteps = 120
	ProbeDelta = time.Second / 60
)
