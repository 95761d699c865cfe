package component

import "github.com/corvid-labs/tessera/ecs"

const KindTimer ecs.Kind = "timer"

// Timer fires its callback once elapsed time reaches Duration. Repeating
// timers reset to zero and keep running; one-shot timers freeze with
// Finished set.
type Timer struct {
	ecs.Owned
	Duration float64 // seconds
	Elapsed  float64
	Callback func()
	Repeat   bool
	Finished bool
}

// NewTimer creates a timer; callback may be nil
func NewTimer(duration float64, callback func(), repeat bool) *Timer {
	return &Timer{Duration: duration, Callback: callback, Repeat: repeat}
}

func (*Timer) Kind() ecs.Kind { return KindTimer }

// Advance adds dt and fires the callback when the timer completes
func (t *Timer) Advance(dt float64) {
	if t.Finished {
		return
	}
	t.Elapsed += dt
	if t.Elapsed < t.Duration {
		return
	}
	if t.Callback != nil {
		t.Callback()
	}
	if t.Repeat {
		t.Elapsed = 0
		return
	}
	t.Finished = true
}
