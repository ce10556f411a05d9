package main

import (
	"math"
	"math/rand/v2"
)

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func randColor(rng *rand.Rand) string {
	return palette[rng.IntN(len(palette))]
}

func generateConfetti(rng *rand.Rand, vp Viewport) []ConfettiParticle {
	particles := make([]ConfettiParticle, confettiCount)
	for i := range particles {
		particles[i] = ConfettiParticle{
			ID:    i,
			X:     randRange(rng, 0, vp.Width),
			Y:     confettiStartY,
			VX:    randRange(rng, -confettiMaxVX, confettiMaxVX),
			VY:    randRange(rng, confettiMinVY, confettiMaxVY),
			Color: randColor(rng),
			Size:  randRange(rng, confettiMinSize, confettiMaxSize),
		}
	}
	return particles
}

func generateBalloons(rng *rand.Rand, vp Viewport) []Balloon {
	balloons := make([]Balloon, balloonCount)
	for i := range balloons {
		balloons[i] = Balloon{
			ID:         i,
			X:          randRange(rng, 0, vp.Width),
			Y:          randRange(rng, 0, vp.Height),
			Color:      randColor(rng),
			Size:       randRange(rng, balloonMinSize, balloonMaxSize),
			Delay:      randRange(rng, 0, balloonMaxDelay),
			FloatSpeed: randRange(rng, balloonMinFloatSpeed, balloonMaxFloatSpeed),
		}
	}
	return balloons
}

// stepConfetti advances every particle by one tick and culls the ones that
// fell below the viewport. The input slice is left untouched.
func stepConfetti(particles []ConfettiParticle, vp Viewport) []ConfettiParticle {
	limit := vp.Height + cullMargin
	next := make([]ConfettiParticle, 0, len(particles))
	for _, p := range particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += gravity
		if p.Y < limit {
			next = append(next, p)
		}
	}
	return next
}

// Bob returns the balloon's vertical offset in pixels at the given time.
// Balloons rise and settle once per FloatSpeed seconds after Delay.
func (b Balloon) Bob(elapsed float64) float64 {
	t := elapsed - b.Delay
	if t <= 0 || b.FloatSpeed <= 0 {
		return 0
	}
	amplitude := b.Size * 0.2
	return -amplitude * (1 - math.Cos(2*math.Pi*t/b.FloatSpeed)) / 2
}
