package log

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tarantool/permrank/internal/permrank/cli/progress"
	"github.com/tarantool/permrank/internal/permrank/cli/utils"
	"github.com/tarantool/permrank/internal/permrank/usecase"
)

// Verify interface compliance in compile time.
var _ progress.Tracker = (*ProgressLogManager)(nil)

const (
	windowSize = 50
	template   = "%s %d%% (%d / %d) ETA %s"
)

// window keeps the last windowSize progress steps to estimate speed.
type window struct {
	durations [windowSize]time.Duration
	completed [windowSize]uint64
	next      int
}

func (w *window) push(elapsed time.Duration, completed uint64) {
	w.durations[w.next] = elapsed
	w.completed[w.next] = completed
	w.next = (w.next + 1) % windowSize
}

// remaining estimates time left to complete left items.
func (w *window) remaining(left uint64) time.Duration {
	var (
		elapsed   time.Duration
		completed uint64
	)

	for i := range windowSize {
		elapsed += w.durations[i]
		completed += w.completed[i]
	}

	if completed == 0 {
		return 0
	}

	return time.Duration(float64(elapsed) / float64(completed) * float64(left))
}

type task struct {
	title      string
	total      uint64
	current    uint64
	lastUpdate time.Time
	speed      window
}

func (t *task) isDone() bool {
	return t.current >= t.total
}

func (t *task) eta() string {
	remaining := t.speed.remaining(t.total - t.current).Round(time.Second)

	return fmt.Sprintf(
		"%02d:%02d:%02d",
		int64(remaining/time.Hour),
		int64(remaining/time.Minute)%60, //nolint:mnd
		int64(remaining/time.Second)%60, //nolint:mnd
	)
}

// ProgressLogManager type is implementation of progress.Tracker writing progress lines to slog.
type ProgressLogManager struct {
	ctx   context.Context //nolint:containedctx
	tasks map[string]*task
	wg    sync.WaitGroup
}

func NewProgressLogManager(ctx context.Context) *ProgressLogManager {
	return &ProgressLogManager{
		ctx:   ctx,
		tasks: make(map[string]*task),
	}
}

func (p *ProgressLogManager) AddTask(name, title string, total uint64) {
	if _, ok := p.tasks[name]; ok {
		return
	}

	p.tasks[name] = &task{
		title:      title,
		total:      total,
		lastUpdate: time.Now(),
	}

	p.wg.Add(1)
}

// UpdateProgress logs a line only when progress of the task has moved.
func (p *ProgressLogManager) UpdateProgress(name string, progress usecase.Progress) {
	t, ok := p.tasks[name]
	if !ok || t.isDone() || progress.Done == t.current {
		return
	}

	now := time.Now()

	t.speed.push(now.Sub(t.lastUpdate), progress.Done-t.current)
	t.current = progress.Done
	t.lastUpdate = now

	slog.Info(fmt.Sprintf(template, t.title, utils.GetPercentage(t.total, t.current), t.current, t.total, t.eta()))

	if t.isDone() {
		p.wg.Done()
	}
}

// Wait blocks until every task is done or context is closed.
func (p *ProgressLogManager) Wait() {
	done := make(chan struct{})

	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-p.ctx.Done():
	case <-done:
	}
}
