package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"

	"github.com/tarantool/permrank/internal/permrank/cli"
	"github.com/tarantool/permrank/internal/permrank/cli/options"
	"github.com/tarantool/permrank/internal/permrank/usecase"
	"github.com/tarantool/permrank/internal/permrank/usecase/general"
)

// App type wires use case and CLI together and owns process lifecycle.
type App struct {
	cliOpts  *options.CliOptions
	cli      *cli.Cli
	useCase  usecase.UseCase
	profiler *profiler
}

func NewApp(version string) *App {
	useCase := general.NewUseCase(general.UseCaseConfig{})
	cliOpts := options.NewCliOptions(useCase, version)
	permRankCli := cli.NewCli(cliOpts)
	permRankCli.MustSetup()

	return &App{
		useCase:  useCase,
		cliOpts:  cliOpts,
		cli:      permRankCli,
		profiler: newProfiler(cliOpts.CPUProfile(), cliOpts.MemoryProfile()),
	}
}

// Run executes the selected command and exits with non-zero code on failure.
func (a *App) Run() {
	ctx, cancelCtx := a.notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	a.run(ctx, cancelCtx)

	//nolint:errorlint
	switch err := context.Cause(ctx); err.(type) {
	case nil:
	case *SignalError:
		slog.Warn("permrank finished due to event", slog.String("event", err.Error()))
	default:
		slog.Error("permrank finished due error", slog.String("error", err.Error()))

		if a.cliOpts.DebugMode() {
			logStackTrace(err)
		}

		os.Exit(1)
	}
}

func (a *App) notifyContext(ctx context.Context, signals ...os.Signal) (context.Context, context.CancelCauseFunc) {
	osSignalChannel := make(chan os.Signal, 1)
	signal.Notify(osSignalChannel, signals...)

	ctxCause, cancelCtx := context.WithCancelCause(ctx)

	go func() {
		osSignal := <-osSignalChannel
		slog.Info("got os signal, canceling", slog.String("signal", osSignal.String()))
		cancelCtx(NewSignalError(osSignal))

		osSignal = <-osSignalChannel
		slog.Error("got os signal, force exit", slog.String("signal", osSignal.String()))
		os.Exit(1)
	}()

	return ctxCause, cancelCtx
}

func (a *App) run(ctx context.Context, cancelCtx context.CancelCauseFunc) {
	a.profiler.start()
	defer a.profiler.stop()

	if err := a.useCase.Setup(); err != nil {
		cancelCtx(err)

		return
	}

	if err := a.cli.Run(ctx); err != nil {
		cancelCtx(err)

		return
	}

	if err := a.useCase.Teardown(); err != nil {
		cancelCtx(err)
	}
}

// stackFrames returns "function\n\tfile:line" lines of the deepest stack trace attached to err.
func stackFrames(err error) []string {
	tracer, ok := errors.Cause(err).(stackTracer) //nolint:errorlint
	if !ok {
		return nil
	}

	frames := make([]string, 0, 2*len(tracer.StackTrace()))

	for _, frame := range tracer.StackTrace() {
		frames = append(frames, strings.Split(fmt.Sprintf("%+v", frame), "\n")...)
	}

	return frames
}

func logStackTrace(err error) {
	for _, line := range stackFrames(err) {
		slog.Error(line)
	}
}
