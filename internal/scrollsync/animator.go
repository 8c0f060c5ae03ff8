package scrollsync

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Animator eases a scroll offset towards a target with a critically
// damped spring. It is stepped once per display frame.
type Animator struct {
	spring  harmonica.Spring
	pos     float64
	vel     float64
	target  float64
	running bool
}

// NewAnimator creates an animator stepped fps times per second
func NewAnimator(fps int) *Animator {
	return &Animator{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
	}
}

// Start begins moving from offset from to offset to. A running animation
// is retargeted and keeps its current position and velocity.
func (a *Animator) Start(from, to int) {
	if !a.running {
		a.pos = float64(from)
		a.vel = 0
	}
	a.target = float64(to)
	a.running = true
}

// Step advances one frame and returns the offset to display. done is true
// once the offset has settled on the target.
func (a *Animator) Step() (offset int, done bool) {
	if !a.running {
		return int(a.target), true
	}

	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if math.Abs(a.target-a.pos) < 0.5 && math.Abs(a.vel) < 0.5 {
		a.pos = a.target
		a.vel = 0
		a.running = false
		return int(a.target), true
	}
	return int(math.Round(a.pos)), false
}

// Running reports whether an animation is in progress
func (a *Animator) Running() bool {
	return a.running
}

// Target returns the offset the animation is heading to
func (a *Animator) Target() int {
	return int(a.target)
}

// Stop abandons the animation at its current position
func (a *Animator) Stop() {
	a.running = false
	a.vel = 0
}
