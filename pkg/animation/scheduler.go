package animation

import (
	"sort"
	"sync"
	"time"
)

// Token identifies a posted callback. The zero Token is never issued.
type Token uint64

// Scheduler runs callbacks after a delay on the host's UI thread.
type Scheduler interface {
	// PostDelayed schedules fn to run once after delay.
	PostDelayed(delay time.Duration, fn func()) Token
	// Cancel removes a pending callback. Cancelling an unknown or already
	// executed token is a no-op.
	Cancel(tok Token)
}

type queued struct {
	tok Token
	due time.Time
	seq uint64
	fn  func()
}

// QueueScheduler keeps posted callbacks in due-time order and runs them
// when pumped. It never runs anything on its own: a frame loop or a test
// calls RunDue, and callbacks execute on the caller's goroutine.
type QueueScheduler struct {
	mu    sync.Mutex
	next  Token
	seq   uint64
	queue []queued
}

// NewQueueScheduler returns an empty scheduler.
func NewQueueScheduler() *QueueScheduler {
	return &QueueScheduler{}
}

// PostDelayed queues fn to run at Now()+delay.
func (q *QueueScheduler) PostDelayed(delay time.Duration, fn func()) Token {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	q.seq++
	item := queued{tok: q.next, due: Now().Add(delay), seq: q.seq, fn: fn}
	// Equal due times keep posting order.
	i := sort.Search(len(q.queue), func(i int) bool {
		return q.queue[i].due.After(item.due)
	})
	q.queue = append(q.queue, queued{})
	copy(q.queue[i+1:], q.queue[i:])
	q.queue[i] = item
	return item.tok
}

// Cancel drops the callback for tok if it has not run yet.
func (q *QueueScheduler) Cancel(tok Token) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, item := range q.queue {
		if item.tok == tok {
			q.queue = append(q.queue[:i], q.queue[i+1:]...)
			return
		}
	}
}

// RunDue runs every callback due at the current clock time and returns how
// many ran. Callbacks posted while pumping wait for the next call, even
// with a zero delay.
func (q *QueueScheduler) RunDue() int {
	q.mu.Lock()
	limit := q.seq
	q.mu.Unlock()

	ran := 0
	for {
		q.mu.Lock()
		if len(q.queue) == 0 {
			q.mu.Unlock()
			return ran
		}
		now := Now()
		idx := -1
		for i, item := range q.queue {
			if item.due.After(now) {
				break
			}
			if item.seq <= limit {
				idx = i
				break
			}
		}
		if idx < 0 {
			q.mu.Unlock()
			return ran
		}
		item := q.queue[idx]
		q.queue = append(q.queue[:idx], q.queue[idx+1:]...)
		q.mu.Unlock()

		if item.fn != nil {
			item.fn()
		}
		ran++
	}
}

// NextDue returns the due time of the earliest pending callback.
func (q *QueueScheduler) NextDue() (time.Time, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.queue) == 0 {
		return time.Time{}, false
	}
	return q.queue[0].due, true
}

// Pending returns the number of queued callbacks.
func (q *QueueScheduler) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queue)
}
