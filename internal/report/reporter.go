// Package report aggregates per-frame render statistics and logs a periodic
// summary on a cron schedule.
package report

import (
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"ChartPulse/internal/recorder"
)

// Reporter sits between the render loop and the recorder: every frame sample
// is forwarded to the recorder and folded into a running aggregate that gets
// logged on the configured schedule.
type Reporter struct {
	Cron     *cron.Cron
	Recorder recorder.Recorder
	Log      *logrus.Entry

	mu     sync.Mutex
	frames int
	ops    int
	dtSum  float64
	dtMax  float64
	depth  int
}

// NewReporter creates a Reporter writing through to rec.
func NewReporter(rec recorder.Recorder, log *logrus.Entry) *Reporter {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Reporter{
		Cron:     cron.New(cron.WithSeconds()),
		Recorder: rec,
		Log:      log.WithField("component", "report"),
	}
}

// Register schedules the periodic summary.
func (r *Reporter) Register(statsCron string) error {
	if _, err := r.Cron.AddFunc(statsCron, r.flush); err != nil {
		return fmt.Errorf("register stats task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (r *Reporter) Start() {
	r.Cron.Start()
	r.Log.Info("reporter started")
}

// Stop stops the scheduler and logs a final summary.
func (r *Reporter) Stop() {
	r.Cron.Stop()
	r.flush()
	r.Log.Info("reporter stopped")
}

// Observe records one frame.
func (r *Reporter) Observe(s *recorder.FrameSample) {
	if err := r.Recorder.RecordFrame(s); err != nil {
		r.Log.WithError(err).Error("record frame")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames++
	r.ops += s.Ops
	r.dtSum += s.DTMillis
	if s.DTMillis > r.dtMax {
		r.dtMax = s.DTMillis
	}
	if s.MaxDepth > r.depth {
		r.depth = s.MaxDepth
	}
}

func (r *Reporter) flush() {
	r.mu.Lock()
	frames, ops, dtSum, dtMax, depth := r.frames, r.ops, r.dtSum, r.dtMax, r.depth
	r.frames, r.ops, r.dtSum, r.dtMax, r.depth = 0, 0, 0, 0, 0
	r.mu.Unlock()

	if frames == 0 {
		return
	}
	r.Log.WithFields(logrus.Fields{
		"frames":    frames,
		"avg_ops":   ops / frames,
		"avg_dt_ms": dtSum / float64(frames),
		"max_dt_ms": dtMax,
		"max_depth": depth,
	}).Info("render stats")
}
