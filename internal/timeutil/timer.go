package timeutil

import (
	"log/slog"
	"sync"
	"time"
)

// TimerState is the state of a [Timer].
type TimerState string

const (
	// TimerStateRunning indicates the timer is currently running.
	TimerStateRunning TimerState = "running"
	// TimerStateStopped indicates the timer was stopped before expiration.
	TimerStateStopped TimerState = "stopped"
	// TimerStateExpired indicates the timer has expired.
	TimerStateExpired TimerState = "expired"
)

// Timer is a one-shot timer created with [AfterFunc].
type Timer struct {
	mu        sync.Mutex
	startTime time.Time
	duration  time.Duration
	stopTime  time.Time
	state     TimerState
	real      *time.Timer
}

// AfterFunc starts a timer that calls f in its own goroutine after the duration.
// The timer is expired by the time f is called.
func AfterFunc(duration time.Duration, f func()) *Timer {
	t := &Timer{
		startTime: time.Now(),
		duration:  duration,
		state:     TimerStateRunning,
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.real = time.AfterFunc(duration, func() {
		t.mu.Lock()
		if t.state != TimerStateRunning {
			t.mu.Unlock()
			return
		}
		t.state = TimerStateExpired
		t.stopTime = time.Now()
		t.real = nil
		t.mu.Unlock()

		f()
	})
	return t
}

// Stop prevents the timer from firing.
// It returns false if the timer has already expired or been stopped.
func (t *Timer) Stop() bool {
	if t == nil {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != TimerStateRunning {
		return false
	}
	t.state = TimerStateStopped
	t.stopTime = time.Now()
	if t.real != nil {
		t.real.Stop()
		t.real = nil
	}
	return true
}

// State returns the current timer state.
func (t *Timer) State() TimerState {
	if t == nil {
		return ""
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Duration returns the timer duration.
func (t *Timer) Duration() time.Duration {
	if t == nil {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.duration
}

// Left returns the time remaining until the timer expires.
// Returns 0 if the timer is expired or stopped.
func (t *Timer) Left() time.Duration {
	if t == nil {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != TimerStateRunning {
		return 0
	}
	return max(t.duration-time.Since(t.startTime), 0)
}

// LogValue implements [slog.LogValuer].
func (t *Timer) LogValue() slog.Value {
	if t == nil {
		return slog.Value{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return slog.GroupValue(
		slog.Any("state", t.state),
		slog.Duration("duration", t.duration),
		slog.Time("start_time", t.startTime),
	)
}
