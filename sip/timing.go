package sip

import (
	"log/slog"
	"time"
)

// Default values for SIP timers as described in RFC 3261.
const (
	// T1 is the message RTT estimate.
	T1 = 500 * time.Millisecond
	// T2 is the maximum retransmit interval for non-INVITE requests and INVITE responses.
	T2 = 4 * time.Second
	// T4 is the maximum duration a message will remain in the network.
	T4 = 5 * time.Second
	// TimeD is the wait duration for response retransmits via unreliable transport.
	TimeD = 32 * time.Second
)

// TimingConfig represents SIP timing config.
// Zero value uses default base values [T1], [T2], [T4], [TimeD].
// All other timings are calculated based on these base values.
type TimingConfig struct {
	t1, t2, t4,
	timeD time.Duration
}

// NewTimings creates a new SIP timing config with specified base values.
func NewTimings(t1, t2, t4, timeD time.Duration) TimingConfig {
	return TimingConfig{t1, t2, t4, timeD}
}

// T1 is the message RTT estimate.
func (c TimingConfig) T1() time.Duration {
	if c.t1 == 0 {
		return T1
	}
	return c.t1
}

// T2 is the maximum retransmit interval for non-INVITE requests.
func (c TimingConfig) T2() time.Duration {
	if c.t2 == 0 {
		return T2
	}
	return c.t2
}

// T4 is the maximum duration a message will remain in the network.
func (c TimingConfig) T4() time.Duration {
	if c.t4 == 0 {
		return T4
	}
	return c.t4
}

// TimeA returns initial INVITE request retransmit interval for unreliable transport.
func (c TimingConfig) TimeA() time.Duration { return c.T1() }

// TimeB returns INVITE client transaction timeout.
func (c TimingConfig) TimeB() time.Duration { return 64 * c.T1() }

// TimeD is the wait duration for response retransmits via unreliable transport.
func (c TimingConfig) TimeD() time.Duration {
	if c.timeD == 0 {
		return TimeD
	}
	return c.timeD
}

// TimeE returns initial non-INVITE request retransmit interval for unreliable transport.
func (c TimingConfig) TimeE() time.Duration { return c.T1() }

// TimeF returns non-INVITE client transaction timeout.
func (c TimingConfig) TimeF() time.Duration { return 64 * c.T1() }

// NextRetrans returns the retransmission interval following prev.
// INVITE intervals double without limit (timer A). Non-INVITE intervals double up to T2 (timer E)
// and stay at T2 once a provisional response was received.
func (c TimingConfig) NextRetrans(invite, proceeding bool, prev time.Duration) time.Duration {
	if invite {
		return 2 * prev
	}
	if proceeding {
		return c.T2()
	}
	return min(2*prev, c.T2())
}

func (c TimingConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("t1", c.T1()),
		slog.Duration("t2", c.T2()),
		slog.Duration("t4", c.T4()),
		slog.Duration("timer_d", c.TimeD()),
	)
}
