package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Provider is the default clock used whenever no clock is injected explicitly.
var Provider Clock = NewRealClock()

type Clock interface {
	After(d time.Duration) <-chan time.Time
	Now() time.Time
	Since(t time.Time) time.Duration
	Sleep(d time.Duration)
}

type FakeClock interface {
	Clock
	Advance(d time.Duration)
	BlockUntil(n int)
}

func NewRealClock() Clock {
	return realClock{}
}

func NewFakeClock() FakeClock {
	return clockwork.NewFakeClock()
}

func NewFakeClockAt(t time.Time) FakeClock {
	return clockwork.NewFakeClockAt(t)
}

type realClock struct{}

func (c realClock) After(d time.Duration) <-chan time.Time {
	if shouldUseUTC() {
		c := time.After(d)
		// use a small buffered channel so our go routine can
		// terminate as soon as the timeout expires even if there
		// is no one receiving the time (anymore)
		utcChan := make(chan time.Time, 1)

		go func() {
			t := <-c
			utcChan <- t.UTC()
		}()

		return utcChan
	}

	return time.After(d)
}

func (c realClock) Now() time.Time {
	if shouldUseUTC() {
		return time.Now().UTC()
	}

	return time.Now()
}

func (c realClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

func (c realClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
