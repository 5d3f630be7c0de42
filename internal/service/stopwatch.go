package service

import "time"

// Stopwatch measures how long a piece has been selected. It is guarded by the
// owning session's mutex.
type Stopwatch struct {
	now       func() time.Time
	started   time.Time
	isRunning bool
}

func NewStopwatch(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{now: now}
}

func (s *Stopwatch) Start() {
	s.started = s.now()
	s.isRunning = true
}

func (s *Stopwatch) Stop() {
	s.isRunning = false
}

// Elapsed returns the time since Start. The second result is false when the
// stopwatch is stopped, in which case no duration is known.
func (s *Stopwatch) Elapsed() (time.Duration, bool) {
	if !s.isRunning {
		return 0, false
	}
	return s.now().Sub(s.started), true
}
