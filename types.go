package main

import (
	"log/slog"
	"math/rand/v2"
)

type ConfettiParticle struct {
	ID    int
	X     float64
	Y     float64
	VX    float64
	VY    float64
	Color string
	Size  float64
}

type Balloon struct {
	ID         int
	X          float64
	Y          float64
	Color      string
	Size       float64
	Delay      float64 // seconds before the bob cycle starts
	FloatSpeed float64 // seconds per bob cycle
}

// Viewport is measured in pixels; see cellWidth and cellHeight.
type Viewport struct {
	Width  float64
	Height float64
}

type model struct {
	width  int // terminal columns
	height int // terminal rows
	ready  bool
	mode   Mode

	name      string
	cursorPos int

	viewport Viewport
	confetti []ConfettiParticle
	balloons []Balloon
	anim     animation
	elapsed  float64 // seconds of animation since the greeting opened
	rng      *rand.Rand
	config   *Config
	logger   *slog.Logger

	errorMessage   string
	successMessage string
}
