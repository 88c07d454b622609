package sim

// Retry pacing constants, matching the reference behavior: a delay
// proportional to the attempt counter, applied only while the counter is
// below MaxConnectionAttempts. Crossing the maximum does NOT stop retries —
// UEs keep attempting every tick, the pacing delay just stops growing the
// clock. (The "max attempts" name promises a give-up that never happens;
// that quirk is preserved deliberately.)
const (
	MaxConnectionAttempts = 5
	BackoffBaseMillis     = 100
)

// BackoffPolicy computes the virtual pacing delay after a failed connection
// attempt. Delays are logical time only: nothing in the simulation sleeps.
type BackoffPolicy struct {
	BaseMillis  int64
	MaxAttempts int
}

// DefaultBackoffPolicy returns the reference pacing policy.
func DefaultBackoffPolicy() BackoffPolicy {
	return BackoffPolicy{BaseMillis: BackoffBaseMillis, MaxAttempts: MaxConnectionAttempts}
}

// DelayMillis returns the virtual delay to charge after a failed attempt
// with the given counter value. Zero at or beyond MaxAttempts.
func (b BackoffPolicy) DelayMillis(attempts int) int64 {
	if attempts >= b.MaxAttempts {
		return 0
	}
	return b.BaseMillis * int64(attempts)
}

// VirtualClock accrues logical milliseconds across a run. It exists so the
// reference model's real-time pacing sleeps survive as causal ordering and
// log timestamps without ever blocking the simulation thread.
type VirtualClock struct {
	millis int64
}

// Advance adds d logical milliseconds. Negative advances are ignored.
func (c *VirtualClock) Advance(d int64) {
	if d > 0 {
		c.millis += d
	}
}

// NowMillis returns the accrued logical time.
func (c *VirtualClock) NowMillis() int64 {
	return c.millis
}
