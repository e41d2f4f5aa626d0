package animation

import (
	"context"
	"sync"
	"time"

	"github.com/go-drift/wavetext/pkg/errors"
)

// LoopScheduler is a [Scheduler] backed by a single UI goroutine.
//
// Run executes every callback, one at a time, on the goroutine that called
// it. Delayed callbacks use real timers that only enqueue work onto the
// loop, so callbacks never run concurrently with each other. A callback
// cancelled on the loop goroutine never runs, even if its timer already
// fired.
type LoopScheduler struct {
	tasks chan func()
	done  chan struct{}

	mu      sync.Mutex
	next    Token
	pending map[Token]*time.Timer
	stopped bool
}

// NewLoopScheduler returns a scheduler whose task queue holds up to buffer
// callbacks before Post blocks.
func NewLoopScheduler(buffer int) *LoopScheduler {
	if buffer <= 0 {
		buffer = 64
	}
	return &LoopScheduler{
		tasks:   make(chan func(), buffer),
		done:    make(chan struct{}),
		pending: make(map[Token]*time.Timer),
	}
}

// Run processes callbacks until ctx is cancelled. It returns ctx.Err().
// Run must be called at most once.
func (s *LoopScheduler) Run(ctx context.Context) error {
	defer s.shutdown()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-s.tasks:
			s.run(fn)
		}
	}
}

func (s *LoopScheduler) run(fn func()) {
	defer errors.Recover("animation.LoopScheduler")
	fn()
}

func (s *LoopScheduler) shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	for tok, timer := range s.pending {
		timer.Stop()
		delete(s.pending, tok)
	}
	close(s.done)
}

// Post enqueues fn to run on the loop as soon as possible. It is safe to
// call from any goroutine and returns false once the loop has stopped.
func (s *LoopScheduler) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.tasks <- fn:
		return true
	case <-s.done:
		return false
	}
}

// PostDelayed arms a timer that enqueues fn after delay.
func (s *LoopScheduler) PostDelayed(delay time.Duration, fn func()) Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	tok := s.next
	if s.stopped {
		return tok
	}
	s.pending[tok] = time.AfterFunc(delay, func() {
		s.Post(func() {
			if s.take(tok) && fn != nil {
				fn()
			}
		})
	})
	return tok
}

// take claims tok for execution; false means it was cancelled.
func (s *LoopScheduler) take(tok Token) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pending[tok]; !ok {
		return false
	}
	delete(s.pending, tok)
	return true
}

// Cancel stops the timer for tok and drops the callback if it is already
// queued on the loop.
func (s *LoopScheduler) Cancel(tok Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if timer, ok := s.pending[tok]; ok {
		timer.Stop()
		delete(s.pending, tok)
	}
}

// Pending returns the number of delayed callbacks not yet run or cancelled.
func (s *LoopScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
