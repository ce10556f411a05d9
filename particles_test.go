package main

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestGenerateConfetti(t *testing.T) {
	convey.Convey("Given a seeded generator and a viewport", t, func() {
		rng := rand.New(rand.NewPCG(7, 11))
		vp := Viewport{Width: 1024, Height: 768}

		convey.Convey("When generating many confetti batches", func() {
			for batch := 0; batch < 20; batch++ {
				particles := generateConfetti(rng, vp)

				convey.So(particles, convey.ShouldHaveLength, confettiCount)
				ids := map[int]bool{}
				for _, p := range particles {
					convey.So(p.Y, convey.ShouldEqual, -10.0)
					convey.So(p.X, convey.ShouldBeGreaterThanOrEqualTo, 0.0)
					convey.So(p.X, convey.ShouldBeLessThan, vp.Width)
					convey.So(p.VX, convey.ShouldBeBetweenOrEqual, -4.0, 4.0)
					convey.So(p.VY, convey.ShouldBeBetweenOrEqual, 2.0, 5.0)
					convey.So(p.Size, convey.ShouldBeBetweenOrEqual, 4.0, 12.0)
					convey.So(slices.Contains(palette, p.Color), convey.ShouldBeTrue)
					ids[p.ID] = true
				}
				convey.So(ids, convey.ShouldHaveLength, confettiCount)
			}
		})
	})
}

func TestGenerateBalloons(t *testing.T) {
	convey.Convey("Given a seeded generator and a viewport", t, func() {
		rng := rand.New(rand.NewPCG(3, 5))
		vp := Viewport{Width: 640, Height: 480}

		convey.Convey("Then every balloon batch stays within its ranges", func() {
			for batch := 0; batch < 20; batch++ {
				balloons := generateBalloons(rng, vp)

				convey.So(balloons, convey.ShouldHaveLength, balloonCount)
				for i, b := range balloons {
					convey.So(b.ID, convey.ShouldEqual, i)
					convey.So(b.X, convey.ShouldBeGreaterThanOrEqualTo, 0.0)
					convey.So(b.X, convey.ShouldBeLessThan, vp.Width)
					convey.So(b.Y, convey.ShouldBeGreaterThanOrEqualTo, 0.0)
					convey.So(b.Y, convey.ShouldBeLessThan, vp.Height)
					convey.So(b.Size, convey.ShouldBeBetweenOrEqual, 60.0, 100.0)
					convey.So(b.Delay, convey.ShouldBeGreaterThanOrEqualTo, 0.0)
					convey.So(b.Delay, convey.ShouldBeLessThan, 2.0)
					convey.So(b.FloatSpeed, convey.ShouldBeGreaterThanOrEqualTo, 1.0)
					convey.So(b.FloatSpeed, convey.ShouldBeLessThan, 3.0)
					convey.So(slices.Contains(palette, b.Color), convey.ShouldBeTrue)
				}
			}
		})
	})
}

func TestStepConfetti(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}

	convey.Convey("Given the motion updater", t, func() {
		convey.Convey("When stepping an empty collection", func() {
			next := stepConfetti(nil, vp)

			convey.Convey("Then the result is still empty", func() {
				convey.So(next, convey.ShouldBeEmpty)
				convey.So(stepConfetti(next, vp), convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When stepping a single particle once", func() {
			in := []ConfettiParticle{{ID: 1, X: 10, Y: 20, VX: -2, VY: 3, Color: palette[0], Size: 5}}
			out := stepConfetti(in, vp)

			convey.Convey("Then position advances by velocity and gravity accrues", func() {
				convey.So(out, convey.ShouldHaveLength, 1)
				convey.So(out[0].X, convey.ShouldEqual, 8.0)
				convey.So(out[0].Y, convey.ShouldEqual, 23.0)
				convey.So(out[0].VY, convey.ShouldAlmostEqual, 3.1, 1e-9)
				convey.So(out[0].VX, convey.ShouldEqual, -2.0)
			})

			convey.Convey("Then the input slice is not mutated", func() {
				convey.So(in[0].Y, convey.ShouldEqual, 20.0)
				convey.So(in[0].VY, convey.ShouldEqual, 3.0)
			})
		})

		convey.Convey("When a particle crosses the culling line", func() {
			in := []ConfettiParticle{
				{ID: 0, Y: vp.Height + cullMargin - 1, VY: 1},
				{ID: 1, Y: vp.Height + cullMargin - 5, VY: 1},
			}
			out := stepConfetti(in, vp)

			convey.Convey("Then only the particle still above it survives", func() {
				convey.So(out, convey.ShouldHaveLength, 1)
				convey.So(out[0].ID, convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When a batch runs for k ticks", func() {
			rng := rand.New(rand.NewPCG(1, 2))
			initial := generateConfetti(rng, vp)
			startVY := map[int]float64{}
			for _, p := range initial {
				startVY[p.ID] = p.VY
			}

			current := initial
			for k := 1; k <= 10; k++ {
				current = stepConfetti(current, vp)
				for _, p := range current {
					convey.So(p.VY, convey.ShouldAlmostEqual, startVY[p.ID]+gravity*float64(k), 1e-9)
				}
			}
		})

		convey.Convey("When a fresh batch runs until it empties", func() {
			rng := rand.New(rand.NewPCG(9, 9))
			current := generateConfetti(rng, vp)
			ticks := 0
			for len(current) > 0 && ticks < 10_000 {
				current = stepConfetti(current, vp)
				ticks++
			}

			convey.Convey("Then it terminates in a finite number of ticks", func() {
				convey.So(current, convey.ShouldBeEmpty)
				convey.So(ticks, convey.ShouldBeLessThan, 10_000)
			})
		})
	})
}

func TestBalloonBob(t *testing.T) {
	convey.Convey("Given a balloon with a delay", t, func() {
		b := Balloon{Size: 80, Delay: 1, FloatSpeed: 2}

		convey.Convey("Then it rests before the delay elapses", func() {
			convey.So(b.Bob(0), convey.ShouldEqual, 0.0)
			convey.So(b.Bob(1), convey.ShouldEqual, 0.0)
		})

		convey.Convey("Then it peaks half a cycle later and settles after a full one", func() {
			convey.So(b.Bob(2), convey.ShouldAlmostEqual, -16, 1e-9)
			convey.So(math.Abs(b.Bob(3)), convey.ShouldBeLessThan, 1e-9)
		})
	})
}
