package engine

import (
	"context"
	"sync"
	"time"
)

// Advancer is the single serialized update path the loop drives. Advance
// applies one tick against the latest stored state and reports whether
// any project is still running afterwards.
type Advancer interface {
	Advance(ctx context.Context) (running bool, err error)
}

// AdvancerFunc adapts a function to the Advancer interface.
type AdvancerFunc func(ctx context.Context) (bool, error)

func (f AdvancerFunc) Advance(ctx context.Context) (bool, error) {
	return f(ctx)
}

// Loop owns the process-wide one-second ticker. Its lifetime is bound to
// the predicate "some project is running": Kick starts the goroutine when
// a timer starts, and the goroutine tears itself down the moment a tick
// observes no running project or an error.
type Loop struct {
	advancer Advancer
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewLoop creates a stopped loop ticking once per second.
func NewLoop(a Advancer) *Loop {
	return &Loop{advancer: a, interval: time.Second}
}

// NewLoopWithInterval creates a stopped loop with a custom tick interval.
// Tests use this to compress time.
func NewLoopWithInterval(a Advancer, interval time.Duration) *Loop {
	return &Loop{advancer: a, interval: interval}
}

// Kick ensures the tick goroutine is running. Calling Kick while the loop
// is already active is a no-op.
func (l *Loop) Kick() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.wg.Add(1)
	go l.run(ctx)
}

// Stop tears the loop down and waits for the goroutine to exit. Safe to
// call on a stopped loop.
func (l *Loop) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	l.wg.Wait()
}

// Active reports whether the tick goroutine is currently running.
func (l *Loop) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancel != nil
}

func (l *Loop) run(ctx context.Context) {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			running, err := l.advancer.Advance(ctx)
			if err != nil || !running {
				l.mu.Lock()
				if l.cancel != nil {
					l.cancel()
					l.cancel = nil
				}
				l.mu.Unlock()
				return
			}
		}
	}
}
