package viewer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"photoGallery/internal/viewer"
)

func TestSwiperShortDragStaysPut(t *testing.T) {
	s := viewer.NewSwiper(viewer.DefaultSwipeConfig(), 10, 1000)

	s.Start(500, 0)
	require.Equal(t, 0, s.Release(400, 300*time.Millisecond)) // 10% of viewport
}

func TestSwiperSlowDragAdvancesOne(t *testing.T) {
	s := viewer.NewSwiper(viewer.DefaultSwipeConfig(), 10, 1000)

	s.Start(800, 0)
	require.Equal(t, 1, s.Release(400, time.Second)) // 40%, 0.4 viewports/s
}

func TestSwiperFlickAdvancesMultiple(t *testing.T) {
	s := viewer.NewSwiper(viewer.DefaultSwipeConfig(), 10, 1000)

	// Half a viewport in 100ms is 5 viewports/s: 1 + 5/2 = 3 steps.
	s.Start(900, 0)
	require.Equal(t, 3, s.Release(400, 100*time.Millisecond))
}

func TestSwiperFlickCappedAtMaxStep(t *testing.T) {
	cfg := viewer.DefaultSwipeConfig()
	s := viewer.NewSwiper(cfg, 100, 1000)

	s.Start(1000, 0)
	got := s.Release(0, 10*time.Millisecond)
	require.Equal(t, cfg.MaxStep, got)
}

func TestSwiperRightDragGoesBackAndClamps(t *testing.T) {
	s := viewer.NewSwiper(viewer.DefaultSwipeConfig(), 10, 1000)

	// Already at the first photo: dragging right cannot go below 0.
	s.Start(100, 0)
	require.Equal(t, 0, s.Release(600, time.Second))

	// Advance, then go back.
	s.Start(800, 2*time.Second)
	require.Equal(t, 1, s.Release(300, 3*time.Second))
	s.Start(100, 4*time.Second)
	require.Equal(t, 0, s.Release(600, 5*time.Second))
}

func TestSwiperClampsAtLastPhoto(t *testing.T) {
	s := viewer.NewSwiper(viewer.DefaultSwipeConfig(), 2, 1000)

	s.Start(1000, 0)
	require.Equal(t, 1, s.Release(0, 10*time.Millisecond)) // flick, but only 2 photos
}

func TestZoomPinchClamped(t *testing.T) {
	z := viewer.NewZoom()

	require.InDelta(t, 2.0, z.Pinch(2.0), 1e-9)
	require.InDelta(t, 4.0, z.Pinch(2.0), 1e-9)
	require.InDelta(t, 5.0, z.Pinch(2.0), 1e-9) // clamped at max

	z.Pinch(0.01)
	require.InDelta(t, 1.0, z.Scale(), 1e-9) // clamped at min
}

func TestZoomSnapsToOne(t *testing.T) {
	z := viewer.NewZoom()

	z.Pinch(1.03)
	require.InDelta(t, 1.0, z.End(), 1e-9)

	z.Pinch(1.2)
	require.InDelta(t, 1.2, z.End(), 1e-9)
}

func TestZoomDoubleTapToggles(t *testing.T) {
	z := viewer.NewZoom()

	require.InDelta(t, 2.5, z.DoubleTap(), 1e-9)
	require.InDelta(t, 1.0, z.DoubleTap(), 1e-9)

	// From any other zoom level a double tap returns to 1x first.
	z.Pinch(3.0)
	require.InDelta(t, 1.0, z.DoubleTap(), 1e-9)
}

func TestScrubberSeek(t *testing.T) {
	s := viewer.Scrubber{Count: 10, Width: 500}

	require.Equal(t, 0, s.Seek(0))
	require.Equal(t, 0, s.Seek(49))
	require.Equal(t, 5, s.Seek(250))
	require.Equal(t, 9, s.Seek(499))
	require.Equal(t, 9, s.Seek(5000)) // over the end clamps
	require.Equal(t, 0, s.Seek(-20))  // before the start clamps
}

func TestDriftLoopsAndEases(t *testing.T) {
	d := viewer.NewDrift(10*time.Second, 2*time.Second)

	require.InDelta(t, 0, d.Position(0), 1e-9)
	require.InDelta(t, 0.5, d.Position(5*time.Second), 1e-9)

	// The eased curve is slow at the edges, fast in the middle.
	require.Less(t, d.Position(1*time.Second), 0.1)
	require.Greater(t, d.Position(6*time.Second), 0.6)

	// Loops: one full period later the position repeats.
	require.InDelta(t, d.Position(3*time.Second), d.Position(13*time.Second), 1e-9)
}

func TestDriftPausesAndResumes(t *testing.T) {
	d := viewer.NewDrift(10*time.Second, 2*time.Second)

	posBefore := d.Position(3 * time.Second)
	d.Interact(3 * time.Second)

	require.True(t, d.Paused(4*time.Second))
	require.InDelta(t, posBefore, d.Position(4*time.Second), 1e-9)

	// Still frozen right up to the quiet deadline.
	require.InDelta(t, posBefore, d.Position(4999*time.Millisecond), 1e-9)

	// After the quiet period it resumes from the frozen position.
	require.False(t, d.Paused(5*time.Second))
	require.InDelta(t, posBefore, d.Position(5*time.Second), 1e-6)
	require.Greater(t, d.Position(6*time.Second), posBefore)
}

func TestDriftInteractionExtendsQuietPeriod(t *testing.T) {
	d := viewer.NewDrift(10*time.Second, 2*time.Second)

	d.Interact(3 * time.Second)
	d.Interact(4 * time.Second)

	require.True(t, d.Paused(5500*time.Millisecond))
	require.False(t, d.Paused(6*time.Second))
}
