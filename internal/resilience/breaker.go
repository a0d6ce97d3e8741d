// Package resilience implements a small circuit breaker guarding the one
// external dependency of the engine, the ephemeris service.
package resilience

import (
	"errors"
	"sync"
	"time"
)

// ErrOpen is returned while the breaker is rejecting calls.
var ErrOpen = errors.New("circuit breaker open")

// State of the breaker.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Settings tunes the breaker.
type Settings struct {
	// FailureThreshold is the number of consecutive failures that opens
	// the breaker.
	FailureThreshold int
	// Cooldown is how long the breaker stays open before probing again.
	Cooldown time.Duration
}

// Breaker trips after consecutive failures and probes again after a
// cooldown. Zero-value settings get sensible defaults.
type Breaker struct {
	name     string
	settings Settings

	mu       sync.Mutex
	failures int
	openedAt time.Time
	open     bool
	probing  bool
}

// New creates a breaker.
func New(name string, settings Settings) *Breaker {
	if settings.FailureThreshold <= 0 {
		settings.FailureThreshold = 5
	}
	if settings.Cooldown <= 0 {
		settings.Cooldown = 30 * time.Second
	}
	return &Breaker{name: name, settings: settings}
}

// Name returns the breaker's name.
func (b *Breaker) Name() string {
	return b.name
}

// State reports the current state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return StateClosed
	}
	if time.Since(b.openedAt) >= b.settings.Cooldown {
		return StateHalfOpen
	}
	return StateOpen
}

// Do runs fn unless the breaker is open. In half-open state a single probe
// is allowed through; its outcome closes or re-opens the breaker.
func (b *Breaker) Do(fn func() error) error {
	if err := b.before(); err != nil {
		return err
	}
	err := fn()
	b.after(err == nil)
	return err
}

func (b *Breaker) before() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return nil
	}
	if time.Since(b.openedAt) < b.settings.Cooldown {
		return ErrOpen
	}
	// Half-open: admit one probe at a time.
	if b.probing {
		return ErrOpen
	}
	b.probing = true
	return nil
}

func (b *Breaker) after(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.probing = false
	if success {
		b.failures = 0
		b.open = false
		return
	}

	b.failures++
	if b.open || b.failures >= b.settings.FailureThreshold {
		b.open = true
		b.openedAt = time.Now()
	}
}
