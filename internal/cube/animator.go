package cube

import (
	"context"
	"time"
)

// Animator advances a Rotation once per frame on a fixed clock.
type Animator struct {
	interval time.Duration
	rotation Rotation
	frames   int
	onFrame  func(frame int, r Rotation)
}

// NewAnimator returns an animator ticking fps times a second. onFrame runs on
// the animator's goroutine and must not block.
func NewAnimator(fps int, onFrame func(frame int, r Rotation)) *Animator {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Animator{
		interval: time.Second / time.Duration(fps),
		onFrame:  onFrame,
	}
}

// Run ticks until ctx is done and returns the final rotation.
func (a *Animator) Run(ctx context.Context) Rotation {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return a.rotation
		case <-ticker.C:
			a.Tick()
		}
	}
}

// Tick performs one frame synchronously.
func (a *Animator) Tick() {
	a.rotation.Advance()
	a.frames++
	if a.onFrame != nil {
		a.onFrame(a.frames, a.rotation)
	}
}

// Interval is the time between frames.
func (a *Animator) Interval() time.Duration {
	return a.interval
}
