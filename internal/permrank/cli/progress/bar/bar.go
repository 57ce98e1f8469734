package bar

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/tarantool/permrank/internal/permrank/cli/progress"
	"github.com/tarantool/permrank/internal/permrank/usecase"
)

// ewmaAge is the number of samples averaged by ETA decorator.
const ewmaAge = 30

// Verify interface compliance in compile time.
var _ progress.Tracker = (*ProgressBarManager)(nil)

type trackedBar struct {
	*mpb.Bar
	updatedAt time.Time
}

// ProgressBarManager type is implementation of progress.Tracker drawing mpb bars.
type ProgressBarManager struct {
	container *mpb.Progress
	bars      map[string]*trackedBar
}

// NewProgressBarManager creates ProgressBarManager object rendering to out.
func NewProgressBarManager(ctx context.Context, out io.Writer) *ProgressBarManager {
	return &ProgressBarManager{
		container: mpb.NewWithContext(ctx, mpb.WithOutput(out), mpb.WithWidth(40)), //nolint:mnd
		bars:      make(map[string]*trackedBar),
	}
}

func (p *ProgressBarManager) AddTask(name, title string, total uint64) {
	if _, ok := p.bars[name]; ok {
		return
	}

	bar, err := p.container.Add(
		int64(total),
		mpb.BarStyle().Lbound("[").Filler("=").Tip(">").Padding(" ").Rbound("]").Build(),
		mpb.PrependDecorators(
			decor.Name(title, decor.WCSyncSpaceR),
			decor.CountersNoUnit("%d / %d", decor.WCSyncSpaceR),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WCSyncSpace), "done"),
			decor.OnComplete(decor.EwmaETA(decor.ET_STYLE_MMSS, ewmaAge, decor.WCSyncSpace), ""),
		),
	)
	if err != nil {
		slog.Error("failed to add progress bar", slog.String("task", name), slog.String("error", err.Error()))

		return
	}

	p.bars[name] = &trackedBar{Bar: bar, updatedAt: time.Now()}
}

func (p *ProgressBarManager) UpdateProgress(name string, progress usecase.Progress) {
	bar, ok := p.bars[name]
	if !ok {
		return
	}

	now := time.Now()

	bar.EwmaSetCurrent(int64(progress.Done), now.Sub(bar.updatedAt))
	bar.updatedAt = now
}

// Wait blocks until all bars are complete.
func (p *ProgressBarManager) Wait() {
	p.container.Wait()
}
