package simulation

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Runner plays turns on a Session with real timers. Starting a turn cancels
// the previous one and waits for its loops to exit before submitting.
type Runner struct {
	session *Session
	log     *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRunner returns a runner for session.
func NewRunner(session *Session) *Runner {
	return &Runner{session: session, log: session.log.Named("runner")}
}

// Session returns the session the runner drives.
func (r *Runner) Session() *Session {
	return r.session
}

// Start submits query and plays it in the background.
func (r *Runner) Start(ctx context.Context, query string, opts Options) (Turn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()

	turn, err := r.session.Submit(query, opts)
	if err != nil {
		return Turn{}, err
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done
	go func() {
		defer close(done)
		defer cancel()
		r.play(ctx, turn)
	}()
	return turn, nil
}

// Wait blocks until the current turn has finished playing or ctx ends.
func (r *Runner) Wait(ctx context.Context) error {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancels the current turn and waits for it to stop.
func (r *Runner) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

func (r *Runner) stopLocked() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	r.cancel = nil
	r.done = nil
}

func (r *Runner) play(ctx context.Context, turn Turn) {
	pacing := r.session.Pacing()
	if !sleep(ctx, pacing.Think) {
		r.log.Debug("turn cancelled before dispatch", zap.Uint64("turn", turn.ID))
		return
	}
	if !r.session.Dispatch(turn.ID) {
		return
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		loop(ctx, func() Tick { return r.session.Step(turn.ID) })
	}()
	go func() {
		defer wg.Done()
		loop(ctx, func() Tick { return r.session.TypeStep(turn.ID) })
	}()
	wg.Wait()
}

func loop(ctx context.Context, step func() Tick) {
	for {
		tick := step()
		if tick.Done {
			return
		}
		if !sleep(ctx, tick.Delay) {
			return
		}
	}
}

// sleep waits for d and reports false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		select {
		case <-ctx.Done():
			return false
		default:
			return true
		}
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
