// Package viewer holds the interaction state machines behind the photo
// viewer: swipe navigation, pinch zoom, scrubber seeking and the drifting
// masonry auto-scroll. They are pure and clock-free — callers feed pointer
// positions and timestamps in — so every contract is unit-testable.
package viewer

import (
	"math"
	"time"
)

// SwipeConfig tunes the drag-release navigation.
type SwipeConfig struct {
	// DistanceThreshold is the fraction of the viewport a drag must cover
	// to advance at all.
	DistanceThreshold float64
	// FlickVelocity is the speed, in viewport widths per second, at which
	// each additional step is added on release.
	FlickVelocity float64
	// MaxStep caps how many photos a single flick can advance.
	MaxStep int
}

func DefaultSwipeConfig() SwipeConfig {
	return SwipeConfig{
		DistanceThreshold: 0.2,
		FlickVelocity:     2.0,
		MaxStep:           3,
	}
}

// Swiper tracks one horizontal drag across the viewer and decides, on
// release, how many photos to advance and in which direction.
type Swiper struct {
	cfg      SwipeConfig
	count    int
	index    int
	viewport float64

	active bool
	startX float64
	startT time.Duration
}

func NewSwiper(cfg SwipeConfig, count int, viewport float64) *Swiper {
	return &Swiper{
		cfg:      cfg,
		count:    count,
		viewport: viewport,
	}
}

func (s *Swiper) Index() int { return s.index }

func (s *Swiper) Start(x float64, at time.Duration) {
	s.active = true
	s.startX = x
	s.startT = at
}

// Release ends the drag and returns the new photo index. A drag shorter
// than the distance threshold stays put; a fast flick advances multiple
// steps, clamped to the photo range.
func (s *Swiper) Release(x float64, at time.Duration) int {
	if !s.active || s.viewport <= 0 {
		return s.index
	}
	s.active = false

	delta := x - s.startX
	dist := math.Abs(delta) / s.viewport

	if dist < s.cfg.DistanceThreshold {
		return s.index
	}

	steps := 1
	if elapsed := (at - s.startT).Seconds(); elapsed > 0 {
		steps += int(dist / elapsed / s.cfg.FlickVelocity)
	}
	if steps > s.cfg.MaxStep {
		steps = s.cfg.MaxStep
	}

	// Dragging left pulls the next photo in.
	if delta < 0 {
		s.index += steps
	} else {
		s.index -= steps
	}

	if s.index < 0 {
		s.index = 0
	}
	if s.index > s.count-1 {
		s.index = s.count - 1
	}

	return s.index
}

// Zoom clamps pinch scaling to [MinScale, MaxScale] and snaps back to 1
// when a pinch ends just above it. DoubleTap toggles between 1 and a fixed
// factor.
type Zoom struct {
	DoubleTapScale float64
	MinScale       float64
	MaxScale       float64
	SnapThreshold  float64

	scale float64
}

func NewZoom() *Zoom {
	return &Zoom{
		DoubleTapScale: 2.5,
		MinScale:       1,
		MaxScale:       5,
		SnapThreshold:  0.05,
		scale:          1,
	}
}

func (z *Zoom) Scale() float64 { return z.scale }

// Pinch applies a relative scale factor from a two-finger gesture.
func (z *Zoom) Pinch(factor float64) float64 {
	z.scale *= factor

	if z.scale < z.MinScale {
		z.scale = z.MinScale
	}
	if z.scale > z.MaxScale {
		z.scale = z.MaxScale
	}

	return z.scale
}

// End finishes a pinch; a scale within the snap threshold of 1 settles
// back to exactly 1.
func (z *Zoom) End() float64 {
	if z.scale < z.MinScale+z.SnapThreshold {
		z.scale = z.MinScale
	}

	return z.scale
}

func (z *Zoom) DoubleTap() float64 {
	if z.scale != z.MinScale {
		z.scale = z.MinScale
	} else {
		z.scale = z.DoubleTapScale
	}

	return z.scale
}

// Scrubber maps a pointer position on the seek bar linearly to a photo
// index.
type Scrubber struct {
	Count int
	Width float64
}

func (s Scrubber) Seek(x float64) int {
	if s.Count == 0 || s.Width <= 0 {
		return 0
	}

	idx := int(x / s.Width * float64(s.Count))

	if idx < 0 {
		idx = 0
	}
	if idx > s.Count-1 {
		idx = s.Count - 1
	}

	return idx
}

// Drift generates the looping, eased scroll position for the masonry grid.
// Any interaction pauses it; it resumes from the frozen position after a
// quiet period.
type Drift struct {
	Period time.Duration
	Quiet  time.Duration

	phaseShift float64
	pausedAt   time.Duration
	resumeAt   time.Duration
	paused     bool
	frozen     float64
}

func NewDrift(period, quiet time.Duration) *Drift {
	return &Drift{
		Period: period,
		Quiet:  quiet,
	}
}

// easeInOut is a cubic ease applied to each loop cycle.
func easeInOut(u float64) float64 {
	if u < 0.5 {
		return 4 * u * u * u
	}

	v := -2*u + 2

	return 1 - v*v*v/2
}

// Position returns the eased scroll offset in [0, 1) at time at.
func (d *Drift) Position(at time.Duration) float64 {
	if d.paused {
		if at < d.resumeAt {
			return d.frozen
		}
		// Resume where we left off: shift the phase so the eased
		// position is continuous at the resume point.
		d.paused = false
		d.phaseShift += (d.resumeAt - d.pausedAt).Seconds() / d.Period.Seconds()
	}

	u := at.Seconds()/d.Period.Seconds() - d.phaseShift
	u -= math.Floor(u)

	return easeInOut(u)
}

// Interact pauses the drift at the current position until the quiet period
// elapses with no further interaction.
func (d *Drift) Interact(at time.Duration) {
	d.frozen = d.Position(at)
	d.paused = true
	d.pausedAt = at
	d.resumeAt = at + d.Quiet
}

func (d *Drift) Paused(at time.Duration) bool {
	return d.paused && at < d.resumeAt
}
