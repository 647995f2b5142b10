package breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// fakeClock lets tests advance time manually.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestBreaker(threshold int, reset time.Duration, opts ...Option) (*Breaker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}
	opts = append(opts, WithClock(clock.now))
	return New("test", threshold, reset, opts...), clock
}

func failN(b *Breaker, n int) {
	for i := 0; i < n; i++ {
		_ = b.Execute(func() error { return errBoom })
	}
}

func TestBreaker_TripsAfterThreshold(t *testing.T) {
	b, _ := newTestBreaker(3, time.Minute)

	failN(b, 2)
	assert.Equal(t, StatusClosed, b.Snapshot().State)

	failN(b, 1)
	assert.Equal(t, StatusOpen, b.Snapshot().State)

	// Open: wrapped function must not run.
	called := false
	err := b.Execute(func() error { called = true; return nil })
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestBreaker_HalfOpenProbe(t *testing.T) {
	b, clock := newTestBreaker(3, time.Minute)
	failN(b, 3)
	require.Equal(t, StatusOpen, b.Snapshot().State)

	// Before the reset timeout elapses the breaker stays open.
	clock.advance(59 * time.Second)
	require.ErrorIs(t, b.Execute(func() error { return nil }), ErrCircuitOpen)

	// After the timeout a single probe is permitted; success closes.
	clock.advance(2 * time.Second)
	require.NoError(t, b.Execute(func() error { return nil }))
	snap := b.Snapshot()
	assert.Equal(t, StatusClosed, snap.State)
	assert.Equal(t, 0, snap.ConsecutiveFailures)
}

func TestBreaker_HalfOpenProbeFailureReopens(t *testing.T) {
	b, clock := newTestBreaker(3, time.Minute)
	failN(b, 3)
	clock.advance(61 * time.Second)

	require.ErrorIs(t, b.Execute(func() error { return errBoom }), errBoom)
	assert.Equal(t, StatusOpen, b.Snapshot().State)

	// The re-open restarts the reset timeout.
	clock.advance(30 * time.Second)
	require.ErrorIs(t, b.Execute(func() error { return nil }), ErrCircuitOpen)
}

func TestBreaker_TransientNotCounted(t *testing.T) {
	errTransient := errors.New("overloaded")
	b, _ := newTestBreaker(3, time.Minute,
		WithTransient(func(err error) bool { return errors.Is(err, errTransient) }))

	failN(b, 2)
	require.Equal(t, 2, b.Snapshot().ConsecutiveFailures)

	// Transient failures neither trip nor reset the count.
	for i := 0; i < 5; i++ {
		require.ErrorIs(t, b.Execute(func() error { return errTransient }), errTransient)
	}
	snap := b.Snapshot()
	assert.Equal(t, StatusClosed, snap.State)
	assert.Equal(t, 2, snap.ConsecutiveFailures)

	// One more real failure reaches the threshold.
	failN(b, 1)
	assert.Equal(t, StatusOpen, b.Snapshot().State)
}

func TestBreaker_SuccessResetsCount(t *testing.T) {
	b, _ := newTestBreaker(3, time.Minute)
	failN(b, 2)
	require.NoError(t, b.Execute(func() error { return nil }))
	assert.Equal(t, 0, b.Snapshot().ConsecutiveFailures)

	failN(b, 2)
	assert.Equal(t, StatusClosed, b.Snapshot().State)
}

func TestBreaker_PanicReleasesProbe(t *testing.T) {
	b, clock := newTestBreaker(1, time.Minute)
	failN(b, 1)
	require.Equal(t, StatusOpen, b.Snapshot().State)

	clock.advance(61 * time.Second)
	assert.Panics(t, func() {
		_ = b.Execute(func() error { panic("boom") })
	})

	// The probe slot is free again, so the next call may probe and close.
	require.NoError(t, b.Execute(func() error { return nil }))
	assert.Equal(t, StatusClosed, b.Snapshot().State)
}

func TestBreaker_SnapshotSerializable(t *testing.T) {
	b, _ := newTestBreaker(1, time.Minute)
	failN(b, 1)

	snap := b.Snapshot()
	assert.Equal(t, "test", snap.Name)
	assert.Equal(t, StatusOpen, snap.State)
	require.NotNil(t, snap.OpenedAt)
}
