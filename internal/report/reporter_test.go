package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ChartPulse/internal/recorder"
)

type captureRecorder struct {
	frames   []recorder.FrameSample
	sessions []recorder.SessionEvent
}

func (c *captureRecorder) RecordFrame(s *recorder.FrameSample) error {
	c.frames = append(c.frames, *s)
	return nil
}

func (c *captureRecorder) RecordSession(evt *recorder.SessionEvent) error {
	c.sessions = append(c.sessions, *evt)
	return nil
}

func (c *captureRecorder) Close() error { return nil }

func TestObserveForwardsAndAggregates(t *testing.T) {
	rec := &captureRecorder{}
	r := NewReporter(rec, nil)

	r.Observe(&recorder.FrameSample{Composer: "line", DTMillis: 16, Ops: 40, MaxDepth: 2})
	r.Observe(&recorder.FrameSample{Composer: "line", DTMillis: 33, Ops: 60, MaxDepth: 3})

	require.Len(t, rec.frames, 2)
	require.Equal(t, 2, r.frames)
	require.Equal(t, 100, r.ops)
	require.Equal(t, 33.0, r.dtMax)
	require.Equal(t, 3, r.depth)

	r.flush()
	require.Equal(t, 0, r.frames)
	require.Equal(t, 0, r.ops)
}

func TestRegisterRejectsBadSpec(t *testing.T) {
	r := NewReporter(&captureRecorder{}, nil)
	require.Error(t, r.Register("not a cron spec"))
	require.NoError(t, r.Register("0 * * * * *"))
}
