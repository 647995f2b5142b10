// Package breaker implements a named three-state circuit breaker used to
// isolate failures of external dependencies (Anthropic API, MCP servers,
// the database).
//
// States: closed → open after N consecutive failures; open → half-open after
// the reset timeout, permitting a single probe; half-open → closed on probe
// success, back to open on probe failure. A configurable transient predicate
// marks errors (e.g. LLM overload) that are surfaced to the caller but
// neither increment nor reset the consecutive-failure count.
package breaker

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrCircuitOpen is returned by Execute while the breaker is open and the
// reset timeout has not yet elapsed. The wrapped function is not called.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// Status is one of the three breaker states.
type Status string

const (
	StatusClosed   Status = "closed"
	StatusOpen     Status = "open"
	StatusHalfOpen Status = "half-open"
)

// Snapshot is a serializable view of a breaker for health endpoints.
type Snapshot struct {
	Name                string     `json:"name"`
	State               Status     `json:"state"`
	ConsecutiveFailures int        `json:"consecutive_failures"`
	OpenedAt            *time.Time `json:"opened_at,omitempty"`
}

// Option configures a Breaker.
type Option func(*Breaker)

// WithTransient installs a predicate identifying failures that should not
// count toward tripping the breaker. Transient failures are still returned
// to the caller; the consecutive-failure count is left untouched.
func WithTransient(fn func(error) bool) Option {
	return func(b *Breaker) { b.isTransient = fn }
}

// WithClock overrides the time source (tests only).
func WithClock(now func() time.Time) Option {
	return func(b *Breaker) { b.now = now }
}

// Breaker is a three-state circuit breaker. Safe for concurrent use; the
// wrapped function runs outside the internal critical section.
type Breaker struct {
	name             string
	failureThreshold int
	resetTimeout     time.Duration
	isTransient      func(error) bool
	now              func() time.Time

	mu            sync.Mutex
	state         Status
	consecFails   int
	openedAt      time.Time
	probeInFlight bool
}

// New creates a closed breaker.
func New(name string, failureThreshold int, resetTimeout time.Duration, opts ...Option) *Breaker {
	b := &Breaker{
		name:             name,
		failureThreshold: failureThreshold,
		resetTimeout:     resetTimeout,
		state:            StatusClosed,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the breaker's name.
func (b *Breaker) Name() string { return b.name }

// Execute runs fn under the breaker.
//
// Open + timeout not elapsed: returns ErrCircuitOpen without calling fn.
// Open + timeout elapsed: transitions to half-open and permits one probe;
// concurrent callers during the probe fast-fail with ErrCircuitOpen.
func (b *Breaker) Execute(fn func() error) error {
	if err := b.beforeCall(); err != nil {
		return err
	}

	// A panicking fn must still release the half-open probe slot.
	completed := false
	defer func() {
		if !completed {
			b.mu.Lock()
			b.probeInFlight = false
			b.mu.Unlock()
		}
	}()

	err := fn()
	completed = true
	b.afterCall(err)
	return err
}

func (b *Breaker) beforeCall() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StatusClosed:
		return nil
	case StatusOpen:
		if b.now().Sub(b.openedAt) < b.resetTimeout {
			return fmt.Errorf("%s: %w", b.name, ErrCircuitOpen)
		}
		b.state = StatusHalfOpen
		b.probeInFlight = true
		return nil
	case StatusHalfOpen:
		if b.probeInFlight {
			return fmt.Errorf("%s: %w", b.name, ErrCircuitOpen)
		}
		b.probeInFlight = true
		return nil
	}
	return nil
}

func (b *Breaker) afterCall(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.probeInFlight = false

	if err == nil {
		b.state = StatusClosed
		b.consecFails = 0
		return
	}

	// Transient errors are surfaced but not counted.
	if b.isTransient != nil && b.isTransient(err) {
		return
	}

	b.consecFails++
	if b.state == StatusHalfOpen || b.consecFails >= b.failureThreshold {
		b.state = StatusOpen
		b.openedAt = b.now()
	}
}

// Snapshot returns the current state for health reporting.
func (b *Breaker) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := Snapshot{
		Name:                b.name,
		State:               b.state,
		ConsecutiveFailures: b.consecFails,
	}
	if b.state != StatusClosed && !b.openedAt.IsZero() {
		t := b.openedAt
		s.OpenedAt = &t
	}
	return s
}
