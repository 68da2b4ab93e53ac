package circuit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBreaker(clock *fakeClock) *Breaker {
	return New("case-service",
		WithFailureThreshold(3),
		WithSuccessThreshold(2),
		WithCooldown(time.Second),
		WithClock(clock.Now),
	)
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	b := newTestBreaker(clock)

	assert.Equal(t, StateChange{}, b.RecordFailure())
	assert.Equal(t, StateChange{}, b.RecordFailure())
	assert.True(t, b.Allow())

	assert.Equal(t, StateChange{Opened: true}, b.RecordFailure())
	assert.False(t, b.Allow())
	assert.Equal(t, StateOpen, b.State())
}

func TestBreakerSuccessResetsFailureRun(t *testing.T) {
	b := newTestBreaker(&fakeClock{t: time.Unix(0, 0)})

	b.RecordFailure()
	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()
	b.RecordFailure()

	assert.True(t, b.Allow())
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerHalfOpenAfterCooldown(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	b := newTestBreaker(clock)
	for range 3 {
		b.RecordFailure()
	}

	clock.Advance(999 * time.Millisecond)
	assert.False(t, b.Allow())

	clock.Advance(time.Millisecond)
	assert.True(t, b.Allow())
	assert.Equal(t, StateHalfOpen, b.State())

	assert.Equal(t, StateChange{}, b.RecordSuccess())
	assert.Equal(t, StateChange{Closed: true}, b.RecordSuccess())
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerHalfOpenFailureReopens(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	b := newTestBreaker(clock)
	for range 3 {
		b.RecordFailure()
	}
	clock.Advance(time.Second)
	assert.True(t, b.Allow())

	assert.Equal(t, StateChange{Opened: true}, b.RecordFailure())
	assert.False(t, b.Allow())
}

func TestBreakerReset(t *testing.T) {
	b := newTestBreaker(&fakeClock{t: time.Unix(0, 0)})
	for range 3 {
		b.RecordFailure()
	}
	b.Reset()
	assert.True(t, b.Allow())
	assert.Equal(t, "closed", b.State().String())
	assert.Equal(t, "case-service", b.Name())
}
