package assist

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"listing-marketplace/internal/domain"
	"listing-marketplace/internal/logger"
	"listing-marketplace/internal/metrics"
)

// Task is a handle on an asynchronous enhancement. Once issued it runs to
// completion; Dispose only discards its result.
type Task struct {
	ID        string
	DraftKey  string
	CreatedAt time.Time

	done chan struct{}

	mu         sync.Mutex
	text       string
	ok         bool
	finished   bool
	finishedAt time.Time
	disposed   bool
}

// TaskSnapshot is a point-in-time view of a task.
type TaskSnapshot struct {
	ID         string
	DraftKey   string
	Finished   bool
	Text       string
	OK         bool
	CreatedAt  time.Time
	FinishedAt time.Time
}

func newTask(draftKey string, now time.Time) *Task {
	return &Task{
		ID:        uuid.New().String(),
		DraftKey:  draftKey,
		CreatedAt: now,
		done:      make(chan struct{}),
	}
}

// Done is closed when the task finishes, whether or not it was disposed.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Result returns the generated text once the task has finished.
// A disposed task never reports a result.
func (t *Task) Result() (text string, ok bool, finished bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.disposed {
		return "", false, t.finished
	}
	return t.text, t.ok, t.finished
}

// Dispose discards the task's result, now or when it arrives.
func (t *Task) Dispose() {
	t.mu.Lock()
	t.disposed = true
	t.text = ""
	t.ok = false
	t.mu.Unlock()
}

// Disposed reports whether Dispose was called.
func (t *Task) Disposed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.disposed
}

// Snapshot returns a copy of the task state.
func (t *Task) Snapshot() TaskSnapshot {
	text, ok, finished := t.Result()
	t.mu.Lock()
	finishedAt := t.finishedAt
	t.mu.Unlock()
	return TaskSnapshot{
		ID:         t.ID,
		DraftKey:   t.DraftKey,
		Finished:   finished,
		Text:       text,
		OK:         ok,
		CreatedAt:  t.CreatedAt,
		FinishedAt: finishedAt,
	}
}

func (t *Task) finish(text string, ok bool, now time.Time) {
	t.mu.Lock()
	t.finished = true
	t.finishedAt = now
	if !t.disposed {
		t.text = text
		t.ok = ok
	}
	t.mu.Unlock()
	close(t.done)
}

func (t *Task) outstanding() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.finished && !t.disposed
}

// TaskRunner runs enhancements on a bounded worker pool and tracks their
// handles until they are collected, disposed, or swept.
type TaskRunner struct {
	enhancer Enhancer
	pool     *ants.Pool
	now      func() time.Time

	mu      sync.Mutex
	tasks   map[string]*Task
	byDraft map[string]*Task
}

// NewTaskRunner creates a TaskRunner with the given number of workers.
// Submissions beyond the pool capacity fail instead of blocking.
func NewTaskRunner(enhancer Enhancer, workers int) (*TaskRunner, error) {
	pool, err := ants.NewPool(workers, ants.WithNonblocking(true))
	if err != nil {
		return nil, fmt.Errorf("create assist pool: %w", err)
	}
	return &TaskRunner{
		enhancer: enhancer,
		pool:     pool,
		now:      time.Now,
		tasks:    make(map[string]*Task),
		byDraft:  make(map[string]*Task),
	}, nil
}

// Start issues an enhancement. A non-empty draftKey allows at most one
// outstanding task per draft; a second Start fails with domain.ErrTaskPending.
func (r *TaskRunner) Start(draftKey, title, category string) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if draftKey != "" {
		if prev, ok := r.byDraft[draftKey]; ok && prev.outstanding() {
			return nil, fmt.Errorf("%w: %s", domain.ErrTaskPending, prev.ID)
		}
	}

	task := newTask(draftKey, r.now())
	metrics.AssistTasksInFlight.Inc()
	err := r.pool.Submit(func() {
		defer metrics.AssistTasksInFlight.Dec()
		text, ok := r.enhancer.Enhance(context.Background(), title, category)
		task.finish(text, ok, r.now())
		if task.Disposed() {
			logger.WithTaskID(task.ID).Debug("Discarded result of disposed task")
		}
	})
	if err != nil {
		metrics.AssistTasksInFlight.Dec()
		return nil, fmt.Errorf("submit assist task: %w", err)
	}

	r.tasks[task.ID] = task
	if draftKey != "" {
		r.byDraft[draftKey] = task
	}
	return task, nil
}

// Get returns a tracked task.
func (r *TaskRunner) Get(id string) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

// Dispose discards a task and stops tracking it.
func (r *TaskRunner) Dispose(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	task.Dispose()
	r.forget(task)
	return nil
}

// Sweep forgets tasks that finished more than ttl ago and returns how many
// were removed.
func (r *TaskRunner) Sweep(ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-ttl)
	removed := 0
	for _, task := range r.tasks {
		s := task.Snapshot()
		if s.Finished && s.FinishedAt.Before(cutoff) {
			r.forget(task)
			removed++
		}
	}
	if removed > 0 {
		logger.Debug("Swept finished assist tasks", slog.Int("removed", removed))
	}
	return removed
}

// Len returns the number of tracked tasks.
func (r *TaskRunner) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

// Close releases the worker pool. Tasks already running finish on their own.
func (r *TaskRunner) Close() {
	r.pool.Release()
}

// forget must be called with r.mu held.
func (r *TaskRunner) forget(task *Task) {
	delete(r.tasks, task.ID)
	if task.DraftKey != "" && r.byDraft[task.DraftKey] == task {
		delete(r.byDraft, task.DraftKey)
	}
}
