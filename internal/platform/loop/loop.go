// Package loop provides the single logical thread that owns render state.
//
// Callbacks passed to Post, AfterFunc and the continuation returned from a Go
// work function always run on the loop, one at a time. Blocking work (network
// calls) runs off-loop inside Go and hands its result back as a continuation.
package loop

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// TaskID identifies a scheduled timer callback.
type TaskID uint64

// Scheduler is the capability the controller needs from a loop.
type Scheduler interface {
	// Post queues fn to run on the loop.
	Post(fn func())
	// Go runs work off-loop and queues the continuation it returns, if any.
	Go(work func() func())
	// AfterFunc queues fn after d. Scheduled tasks are not cancellable.
	AfterFunc(d time.Duration, fn func()) TaskID
}

// EventLoop is the production Scheduler backed by a goroutine.
type EventLoop struct {
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	nextID atomic.Uint64
}

func New() *EventLoop {
	return &EventLoop{wake: make(chan struct{}, 1)}
}

func (l *EventLoop) Post(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *EventLoop) Go(work func() func()) {
	go func() {
		if next := work(); next != nil {
			l.Post(next)
		}
	}()
}

func (l *EventLoop) AfterFunc(d time.Duration, fn func()) TaskID {
	id := TaskID(l.nextID.Add(1))
	time.AfterFunc(d, func() { l.Post(fn) })
	return id
}

// Run executes queued callbacks until ctx is done.
func (l *EventLoop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
			l.drain()
		}
	}
}

func (l *EventLoop) drain() {
	for {
		l.mu.Lock()
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()

		if len(batch) == 0 {
			return
		}
		for _, fn := range batch {
			fn()
		}
	}
}
