//go:build !tinygo

package hal

import "time"

// hostTime turns wall-clock progress into a millisecond tick stream.
// Ticks are dropped when nobody drains the channel.
type hostTime struct {
	ch  chan uint64
	seq uint64

	tickDur time.Duration
	now     func() time.Time
	last    time.Time
	acc     time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{
		ch:      make(chan uint64, 1024),
		tickDur: time.Millisecond,
		now:     time.Now,
	}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step is called once per host frame.
func (t *hostTime) step() {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.stepN(1)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / t.tickDur)
	if ticks == 0 {
		return
	}
	t.acc = t.acc % t.tickDur
	t.stepN(ticks)
}

func (t *hostTime) stepN(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
