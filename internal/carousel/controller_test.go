package carousel

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidereel/internal/domain"
	"slidereel/internal/schedule"
)

const (
	interval = 5000 * time.Millisecond
	duration = 450 * time.Millisecond
)

type transition struct {
	from, to int
	dir      Direction
}

type recorder struct {
	started   []transition
	completed []int
}

func (r *recorder) TransitionStarted(from, to int, dir Direction) {
	r.started = append(r.started, transition{from: from, to: to, dir: dir})
}

func (r *recorder) TransitionCompleted(index int, _ Direction) {
	r.completed = append(r.completed, index)
}

func slides(urls ...string) domain.SlideSet {
	set := make(domain.SlideSet, len(urls))
	for i, u := range urls {
		set[i] = domain.Slide{ID: u, ImageURL: u}
	}
	return set
}

func newController(t *testing.T, set domain.SlideSet) (*Controller, *schedule.Manual, *recorder) {
	t.Helper()
	clock := schedule.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	rec := &recorder{}
	c := New(set, Options{Interval: interval, TransitionDuration: duration, Autoplay: true}, clock, rec)
	return c, clock, rec
}

func TestInitialState(t *testing.T) {
	c, _, _ := newController(t, slides("a", "b", "c"))

	s := c.Snapshot()
	assert.Equal(t, 0, s.CurrentIndex)
	assert.False(t, s.Transitioning)
	assert.Equal(t, 3, s.Length)
	assert.True(t, c.HasControls())
	assert.False(t, c.AutoplayArmed(), "autoplay waits for Start")
}

func TestGoToCommitsAfterTransitionDuration(t *testing.T) {
	c, clock, rec := newController(t, slides("a", "b", "c"))

	require.True(t, c.GoTo(1, Forward))
	s := c.Snapshot()
	assert.True(t, s.Transitioning)
	assert.Equal(t, 0, s.CurrentIndex, "index changes only on commit")
	assert.Equal(t, 1, s.PendingIndex)
	assert.Equal(t, []transition{{0, 1, Forward}}, rec.started)

	clock.Advance(duration - time.Millisecond)
	assert.True(t, c.Snapshot().Transitioning)

	clock.Advance(time.Millisecond)
	s = c.Snapshot()
	assert.False(t, s.Transitioning)
	assert.Equal(t, 1, s.CurrentIndex)
	assert.Equal(t, []int{1}, rec.completed)
}

func TestSingleFlight(t *testing.T) {
	c, clock, rec := newController(t, slides("a", "b", "c", "d"))

	require.True(t, c.GoTo(2, Forward))
	pending := clock.Pending()

	assert.False(t, c.GoTo(3, Backward))
	assert.False(t, c.Next())
	assert.False(t, c.Previous())
	assert.False(t, c.SelectSlide(1))

	s := c.Snapshot()
	assert.Equal(t, 2, s.PendingIndex)
	assert.Equal(t, Forward, s.Direction)
	assert.Equal(t, pending, clock.Pending(), "no second completion scheduled")
	assert.Len(t, rec.started, 1)

	clock.Advance(duration)
	assert.Equal(t, 2, c.Snapshot().CurrentIndex)
	assert.Equal(t, []int{2}, rec.completed)
}

func TestGoToCurrentIsNoop(t *testing.T) {
	c, clock, rec := newController(t, slides("a", "b"))

	assert.False(t, c.GoTo(0, Forward))
	assert.False(t, c.GoTo(0, Backward))
	assert.False(t, c.Snapshot().Transitioning)
	assert.Empty(t, rec.started)
	assert.Zero(t, clock.Pending())
}

func TestGoToOutOfRangeIsNoop(t *testing.T) {
	c, _, rec := newController(t, slides("a", "b"))

	assert.False(t, c.GoTo(-1, Backward))
	assert.False(t, c.GoTo(2, Forward))
	assert.Empty(t, rec.started)
}

func TestWraparound(t *testing.T) {
	c, clock, rec := newController(t, slides("a", "b", "c", "d"))

	require.True(t, c.Previous())
	assert.Equal(t, transition{0, 3, Backward}, rec.started[0])
	clock.Advance(duration)
	require.Equal(t, 3, c.Snapshot().CurrentIndex)

	require.True(t, c.Next())
	assert.Equal(t, transition{3, 0, Forward}, rec.started[1])
	clock.Advance(duration)
	assert.Equal(t, 0, c.Snapshot().CurrentIndex)
}

func TestSelectSlideDirection(t *testing.T) {
	c, clock, rec := newController(t, slides("a", "b", "c", "d"))

	require.True(t, c.SelectSlide(3))
	clock.Advance(duration)
	require.True(t, c.SelectSlide(1))
	clock.Advance(duration)

	require.Len(t, rec.started, 2)
	assert.Equal(t, Forward, rec.started[0].dir)
	assert.Equal(t, Backward, rec.started[1].dir)
}

func TestIndexStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 3, 5, 8} {
		urls := make([]string, n)
		for i := range urls {
			urls[i] = string(rune('a' + i))
		}
		c, clock, _ := newController(t, slides(urls...))
		c.Start()

		for step := 0; step < 500; step++ {
			switch rng.Intn(4) {
			case 0:
				c.Next()
			case 1:
				c.Previous()
			case 2:
				c.SelectSlide(rng.Intn(n))
			case 3:
				clock.Advance(time.Duration(rng.Intn(6000)) * time.Millisecond)
			}
			s := c.Snapshot()
			require.GreaterOrEqual(t, s.CurrentIndex, 0)
			require.Less(t, s.CurrentIndex, n)
			require.GreaterOrEqual(t, s.PendingIndex, 0)
			require.Less(t, s.PendingIndex, n)
		}
	}
}

func TestAutoplayAdvances(t *testing.T) {
	c, clock, rec := newController(t, slides("a", "b", "c"))
	c.Start()
	require.True(t, c.AutoplayArmed())

	clock.Advance(interval)
	require.Len(t, rec.started, 1)
	assert.Equal(t, transition{0, 1, Forward}, rec.started[0])

	clock.Advance(duration)
	assert.Equal(t, 1, c.Snapshot().CurrentIndex)

	clock.Advance(interval - duration)
	require.Len(t, rec.started, 2)
	assert.Equal(t, transition{1, 2, Forward}, rec.started[1])
}

func TestManualNavigationResetsAutoplayPhase(t *testing.T) {
	c, clock, rec := newController(t, slides("a", "b", "c"))
	c.Start()

	clock.Advance(3 * time.Second)
	require.True(t, c.Next()) // manual at T
	clock.Advance(interval - time.Millisecond)
	require.Len(t, rec.started, 1, "no autoplay before T+interval")

	clock.Advance(time.Millisecond)
	require.Len(t, rec.started, 2)
	assert.Equal(t, transition{1, 2, Forward}, rec.started[1])
}

func TestSingleSlideHasNoAutoplayOrControls(t *testing.T) {
	c, clock, rec := newController(t, slides("only"))
	c.Start()

	assert.False(t, c.HasControls())
	assert.False(t, c.AutoplayArmed())
	clock.Advance(10 * interval)
	assert.Empty(t, rec.started)
	assert.False(t, c.Next())
	assert.False(t, c.Previous())
}

func TestEmptySlideSetUsesFallback(t *testing.T) {
	c, _, _ := newController(t, nil)
	c.Start()

	assert.Equal(t, domain.FallbackSlideSet(""), c.Slides())
	assert.Equal(t, 1, c.Snapshot().Length)
	assert.False(t, c.HasControls())
	assert.False(t, c.AutoplayArmed())
}

func TestStopCancelsTimersAndPendingCommit(t *testing.T) {
	c, clock, rec := newController(t, slides("a", "b", "c"))
	c.Start()
	require.True(t, c.Next())

	c.Stop()
	assert.Zero(t, clock.Pending())
	assert.False(t, c.Snapshot().Transitioning)

	clock.Advance(10 * interval)
	assert.Empty(t, rec.completed)
	assert.Equal(t, 0, c.Snapshot().CurrentIndex)

	c.Start()
	assert.True(t, c.AutoplayArmed())
	assert.True(t, c.Next(), "navigation works again after remount")
}

func TestSetSlidesResetsStateAndTimers(t *testing.T) {
	c, clock, rec := newController(t, slides("only"))
	c.Start()
	require.False(t, c.AutoplayArmed())

	c.SetSlides(slides("a", "b", "c", "d"))
	assert.True(t, c.AutoplayArmed())
	assert.True(t, c.HasControls())

	clock.Advance(interval)
	require.Len(t, rec.started, 1)
	require.True(t, c.Snapshot().Transitioning)

	c.SetSlides(slides("x", "y"))
	s := c.Snapshot()
	assert.False(t, s.Transitioning)
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Equal(t, 2, s.Length)

	clock.Advance(duration)
	assert.Empty(t, rec.completed, "stale commit was cancelled")

	c.SetSlides(nil)
	assert.False(t, c.AutoplayArmed())
	assert.Equal(t, 1, c.Snapshot().Length)
}

func TestPauseAndResume(t *testing.T) {
	c, clock, rec := newController(t, slides("a", "b", "c"))
	c.Start()

	assert.True(t, c.TogglePause())
	assert.False(t, c.AutoplayArmed())
	clock.Advance(3 * interval)
	assert.Empty(t, rec.started)

	require.True(t, c.Next(), "manual navigation works while paused")
	assert.False(t, c.AutoplayArmed(), "manual navigation does not resume autoplay")
	clock.Advance(duration)

	assert.False(t, c.TogglePause())
	clock.Advance(interval)
	assert.Len(t, rec.started, 2)
}

func TestAutoplayWithoutOptionNeverArms(t *testing.T) {
	clock := schedule.NewManual(time.Now())
	c := New(slides("a", "b"), Options{Autoplay: false}, clock, nil)
	c.Start()

	assert.False(t, c.AutoplayArmed())
	assert.Equal(t, DefaultInterval, c.Options().Interval)
	assert.Equal(t, DefaultTransitionDuration, c.Options().TransitionDuration)
}

func TestEndToEndScenario(t *testing.T) {
	c, clock, rec := newController(t, slides("A", "B", "C"))
	c.Start()

	require.True(t, c.SelectSlide(2))
	s := c.Snapshot()
	assert.Equal(t, Forward, s.Direction)
	assert.True(t, s.Transitioning)

	clock.Advance(duration)
	s = c.Snapshot()
	assert.Equal(t, 2, s.CurrentIndex)
	assert.False(t, s.Transitioning)

	require.True(t, c.Next())
	assert.Equal(t, transition{2, 0, Forward}, rec.started[len(rec.started)-1])
}

func TestProgress(t *testing.T) {
	c, clock, _ := newController(t, slides("a", "b"))
	require.True(t, c.Next())

	clock.Advance(225 * time.Millisecond)
	s := c.Snapshot()
	assert.InDelta(t, 0.5, s.Progress(clock.Now(), duration), 0.001)
	assert.Equal(t, 0.0, State{}.Progress(clock.Now(), duration))
}
