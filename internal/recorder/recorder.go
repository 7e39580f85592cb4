package recorder

// FrameSample holds per-frame render statistics.
type FrameSample struct {
	Composer string // "line", "multi", or "candle"
	DTMillis float64
	Ops      int // draw operations emitted
	MaxDepth int // deepest layer nesting reached
	Reveal   float64
	Points   int
}

// SessionEvent records a lifecycle change of the render session.
type SessionEvent struct {
	EventType string // "START", "STOP", "FEED_SWITCH"
	Feed      string
	Symbol    string
	Note      string
}

// Recorder persists render history for offline analysis.
type Recorder interface {
	RecordFrame(s *FrameSample) error
	RecordSession(evt *SessionEvent) error
	Close() error
}
