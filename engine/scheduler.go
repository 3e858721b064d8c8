package engine

import (
	"context"
	"sync"
	"time"
)

func (s *Simulation) currentInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speed.Interval()
}

// Run drives the simulation until ctx is done.
//
// The timer is re-armed after every firing with the interval in effect at
// that moment, so a speed change applies from the next scheduled tick.
// Paused ticks still fire and do nothing.
func (s *Simulation) Run(ctx context.Context) error {
	s.logger.Printf("scheduler started")
	defer s.logger.Printf("scheduler stopped")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		select {
		case <-ctx.Done():
			return nil
		case <-s.after(s.currentInterval()):
			s.Tick()
		}
	}
}

// Start runs the scheduler in its own goroutine and returns its cancel handle.
// stop blocks until the loop has exited; no tick fires after it returns.
func (s *Simulation) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.Run(ctx)
	}()

	var once sync.Once
	return func() {
		once.Do(cancel)
		<-done
	}
}
