package loop

import (
	"fmt"
	"sort"
	"time"
)

type virtualTimer struct {
	id TaskID
	at time.Duration
	fn func()
}

// Virtual is a deterministic Scheduler for tests. Time only moves on Advance,
// and off-loop work only runs when a test resolves it, in any order.
type Virtual struct {
	now    time.Duration
	queue  []func()
	jobs   []func() func()
	timers []virtualTimer
	nextID TaskID
}

func NewVirtual() *Virtual {
	return &Virtual{}
}

func (v *Virtual) Post(fn func()) { v.queue = append(v.queue, fn) }

func (v *Virtual) Go(work func() func()) { v.jobs = append(v.jobs, work) }

func (v *Virtual) AfterFunc(d time.Duration, fn func()) TaskID {
	v.nextID++
	v.timers = append(v.timers, virtualTimer{id: v.nextID, at: v.now + d, fn: fn})
	return v.nextID
}

// Now returns the virtual time elapsed since construction.
func (v *Virtual) Now() time.Duration { return v.now }

// Jobs reports how many off-loop work items are waiting to be resolved.
func (v *Virtual) Jobs() int { return len(v.jobs) }

// Timers reports how many timer callbacks have not fired yet.
func (v *Virtual) Timers() int { return len(v.timers) }

// Drain runs queued callbacks, including ones they queue, until none remain.
func (v *Virtual) Drain() {
	for len(v.queue) > 0 {
		fn := v.queue[0]
		v.queue = v.queue[1:]
		fn()
	}
}

// Resolve runs the i-th pending work item, queues its continuation and drains.
func (v *Virtual) Resolve(i int) {
	if i < 0 || i >= len(v.jobs) {
		panic(fmt.Sprintf("loop: no pending job %d (have %d)", i, len(v.jobs)))
	}
	work := v.jobs[i]
	v.jobs = append(v.jobs[:i:i], v.jobs[i+1:]...)

	if next := work(); next != nil {
		v.Post(next)
	}
	v.Drain()
}

// ResolveAll resolves jobs in FIFO order, including jobs spawned meanwhile.
func (v *Virtual) ResolveAll() {
	v.Drain()
	for len(v.jobs) > 0 {
		v.Resolve(0)
	}
}

// Advance moves time forward by d, firing due timers in schedule order.
func (v *Virtual) Advance(d time.Duration) {
	target := v.now + d
	v.Drain()
	for {
		sort.SliceStable(v.timers, func(i, j int) bool { return v.timers[i].at < v.timers[j].at })
		if len(v.timers) == 0 || v.timers[0].at > target {
			break
		}
		t := v.timers[0]
		v.timers = v.timers[1:]
		v.now = t.at
		t.fn()
		v.Drain()
	}
	v.now = target
}
