package loop

import (
	"context"
	"testing"
	"time"
)

func TestVirtualAdvanceFiresInOrder(t *testing.T) {
	v := NewVirtual()
	var got []string

	v.AfterFunc(3000*time.Millisecond, func() { got = append(got, "expire") })
	v.AfterFunc(50*time.Millisecond, func() { got = append(got, "relayout") })
	v.AfterFunc(50*time.Millisecond, func() { got = append(got, "relayout2") })

	v.Advance(49 * time.Millisecond)
	if len(got) != 0 {
		t.Fatalf("fired early: %v", got)
	}

	v.Advance(time.Millisecond)
	if len(got) != 2 || got[0] != "relayout" || got[1] != "relayout2" {
		t.Fatalf("got %v, want [relayout relayout2]", got)
	}

	v.Advance(3 * time.Second)
	if len(got) != 3 || got[2] != "expire" {
		t.Fatalf("got %v, want expire last", got)
	}
	if v.Timers() != 0 {
		t.Fatalf("Timers() = %d, want 0", v.Timers())
	}
	if v.Now() != 3050*time.Millisecond {
		t.Fatalf("Now() = %v, want 3.05s", v.Now())
	}
}

func TestVirtualResolveOutOfOrder(t *testing.T) {
	v := NewVirtual()
	var got []int

	for i := 1; i <= 3; i++ {
		n := i
		v.Go(func() func() {
			return func() { got = append(got, n) }
		})
	}
	if v.Jobs() != 3 {
		t.Fatalf("Jobs() = %d, want 3", v.Jobs())
	}

	v.Resolve(2)
	v.Resolve(0)
	v.ResolveAll()

	if len(got) != 3 || got[0] != 3 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("got %v, want [3 1 2]", got)
	}
}

func TestVirtualTimerScheduledFromTimer(t *testing.T) {
	v := NewVirtual()
	fired := 0
	v.AfterFunc(10*time.Millisecond, func() {
		v.AfterFunc(10*time.Millisecond, func() { fired++ })
	})

	v.Advance(20 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
}

func TestEventLoopRunsPostedWorkInOrder(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan []int, 1)
	var got []int

	go func() { _ = l.Run(ctx) }()

	l.Go(func() func() {
		return func() { got = append(got, 1) }
	})
	l.AfterFunc(20*time.Millisecond, func() {
		got = append(got, 2)
		done <- got
	})

	select {
	case res := <-done:
		if len(res) != 2 || res[0] != 1 || res[1] != 2 {
			t.Fatalf("got %v, want [1 2]", res)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event loop did not run callbacks")
	}
}
