package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// countingFrames wraps a FrameQueue and counts requests and cancels.
type countingFrames struct {
	*FrameQueue
	requests int
	cancels  int
}

func newCountingFrames() *countingFrames {
	return &countingFrames{FrameQueue: NewFrameQueue()}
}

func (f *countingFrames) RequestFrame(cb func()) FrameID {
	f.requests++
	return f.FrameQueue.RequestFrame(cb)
}

func (f *countingFrames) CancelFrame(id FrameID) {
	f.cancels++
	f.FrameQueue.CancelFrame(id)
}

func TestFrameQueueDefersRequestsMadeWhileFlushing(t *testing.T) {
	q := NewFrameQueue()
	var calls []string
	q.RequestFrame(func() {
		calls = append(calls, "a")
		q.RequestFrame(func() { calls = append(calls, "c") })
	})
	q.RequestFrame(func() { calls = append(calls, "b") })

	require.Equal(t, 2, q.Flush())
	require.Equal(t, []string{"a", "b"}, calls)
	require.Equal(t, 1, q.Pending())

	require.Equal(t, 1, q.Flush())
	require.Equal(t, []string{"a", "b", "c"}, calls)
}

func TestFrameQueueCancel(t *testing.T) {
	q := NewFrameQueue()
	ran := false
	id := q.RequestFrame(func() { ran = true })
	q.CancelFrame(id)
	require.Zero(t, q.Flush())
	require.False(t, ran)
}

func TestSchedulerAdvancesWhilePlaying(t *testing.T) {
	q := NewFrameQueue()
	var seen []uint64
	s := NewScheduler(q, func(frame uint64) { seen = append(seen, frame) })
	s.Start()
	s.Start()

	for i := 0; i < 3; i++ {
		require.Equal(t, 1, q.Flush(), "one loop only")
	}
	require.Equal(t, []uint64{1, 2, 3}, seen)
	require.Equal(t, uint64(3), s.Frame())
}

func TestSchedulerPauseFreezesFrame(t *testing.T) {
	q := NewFrameQueue()
	var seen []uint64
	s := NewScheduler(q, func(frame uint64) { seen = append(seen, frame) })
	s.Start()
	q.Flush()

	require.False(t, s.TogglePlay())
	q.Flush()
	q.Flush()
	require.Equal(t, []uint64{1, 1, 1}, seen, "tick still runs while paused")

	require.True(t, s.TogglePlay())
	q.Flush()
	require.Equal(t, uint64(2), s.Frame())
}

func TestSchedulerStopCancelsExactlyOnce(t *testing.T) {
	f := newCountingFrames()
	ticks := 0
	s := NewScheduler(f, func(uint64) { ticks++ })
	s.Start()
	f.Flush()
	require.True(t, s.Running())

	s.Stop()
	s.Stop()
	require.Equal(t, 1, f.cancels)
	require.False(t, s.Running())

	require.Zero(t, f.Flush())
	require.Equal(t, 1, ticks)

	s.Start()
	require.Zero(t, f.Pending(), "a stopped scheduler cannot restart")
}

func TestSchedulerStopFromTick(t *testing.T) {
	f := newCountingFrames()
	var s *Scheduler
	s = NewScheduler(f, func(uint64) { s.Stop() })
	s.Start()
	f.Flush()
	require.Zero(t, f.Pending())
	require.Equal(t, 1, f.requests)
	require.Zero(t, f.cancels, "nothing pending to cancel")
}

func TestSchedulerFrameMonotonic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		q := NewFrameQueue()
		last := uint64(0)
		s := NewScheduler(q, func(frame uint64) {
			require.GreaterOrEqual(rt, frame, last)
			last = frame
		})
		s.Start()
		playing := true
		played := uint64(0)
		steps := rapid.SliceOfN(rapid.Bool(), 1, 50).Draw(rt, "toggles")
		for _, toggle := range steps {
			if toggle {
				playing = s.TogglePlay()
			}
			if playing {
				played++
			}
			q.Flush()
		}
		require.Equal(rt, played, s.Frame())
	})
}
