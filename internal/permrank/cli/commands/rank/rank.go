package rank

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tarantool/permrank/internal/permrank/cli/commands"
	"github.com/tarantool/permrank/internal/permrank/cli/options"
	"github.com/tarantool/permrank/internal/permrank/cli/progress"
	"github.com/tarantool/permrank/internal/permrank/cli/progress/bar"
	"github.com/tarantool/permrank/internal/permrank/cli/progress/log"
	"github.com/tarantool/permrank/internal/permrank/cli/render"
	"github.com/tarantool/permrank/internal/permrank/cli/utils"
	"github.com/tarantool/permrank/internal/permrank/client"
	"github.com/tarantool/permrank/internal/permrank/models"
	"github.com/tarantool/permrank/internal/permrank/ranker"
	"github.com/tarantool/permrank/internal/permrank/usecase"
)

const progressTaskName = "rank"

// rankOptions type is used to describe 'rank' command options.
type rankOptions struct {
	useCase      usecase.UseCase
	renderer     render.Renderer
	fs           afero.Fs
	useTTY       bool
	filePath     string
	maxLength    int
	workersCount int
	serverURL    string
	inputs       []string
}

// NewRankCommand creates 'rank' command for CLI.
func NewRankCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := &rankOptions{}

	cmd := &cobra.Command{
		Use:   "rank [FLAGS] [STRING...]",
		Short: "Prints rank of strings among sorted permutations of their characters",
		Example: `  permrank rank question
  permrank rank -f words.txt
  permrank rank -s http://localhost:8080 bookkeeper`,
		DisableFlagsInUseLine: true,
		PreRun: func(_ *cobra.Command, _ []string) {
			opts.useCase = cliOpts.UseCase()
			opts.renderer = cliOpts.Renderer()
			opts.fs = cliOpts.Fs()
			opts.useTTY = cliOpts.UseTTY()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			configureOptions(opts, cliOpts.AppConfig())

			err := getInputs(ctx, opts, args)
			if err != nil {
				return errors.WithMessage(err, "failed to get strings to rank")
			}

			slog.Debug("ranking started", slog.Int("inputs", len(opts.inputs)))

			err = runRank(ctx, cmd.OutOrStdout(), opts)
			if err != nil {
				return commands.AsUsageError(
					errors.WithMessage(err, "failed to rank"),
					ranker.ErrInvalidInput, models.ErrInputTooLong,
				)
			}

			return nil
		},
	}

	cmd.SetOut(cliOpts.Out())

	setupFlags(cmd.Flags(), opts)

	return cmd
}

// setupFlags sets flags for 'rank' command and bind them to rankOptions fields.
func setupFlags(flags *pflag.FlagSet, opts *rankOptions) {
	flags.StringVarP(
		&opts.filePath,
		commands.InputFileFlag,
		commands.InputFileShortFlag,
		commands.InputFileDefaultValue,
		commands.InputFileUsage,
	)

	flags.IntVarP(
		&opts.maxLength,
		commands.MaxLengthFlag,
		commands.MaxLengthShortFlag,
		commands.MaxLengthDefaultValue,
		commands.MaxLengthUsage,
	)

	flags.IntVarP(
		&opts.workersCount,
		commands.WorkersCountFlag,
		commands.WorkersCountShortFlag,
		commands.WorkersCountDefaultValue,
		commands.WorkersCountUsage,
	)

	flags.StringVarP(
		&opts.serverURL,
		commands.ServerURLFlag,
		commands.ServerURLShortFlag,
		commands.ServerURLDefaultValue,
		commands.ServerURLUsage,
	)
}

// configureOptions configures rank options using config and flags.
func configureOptions(opts *rankOptions, appConfig *models.AppConfig) {
	if opts.maxLength <= 0 {
		opts.maxLength = appConfig.MaxLength
	}

	if opts.workersCount <= 0 {
		opts.workersCount = appConfig.WorkersCount
	}
}

// getInputs collects strings from arguments and file, or asks user for one.
func getInputs(ctx context.Context, opts *rankOptions, args []string) error {
	opts.inputs = append(opts.inputs[:0], args...)

	if opts.filePath != "" {
		fileInputs, err := utils.ReadInputs(opts.fs, opts.filePath)
		if err != nil {
			return err
		}

		opts.inputs = append(opts.inputs, fileInputs...)
	}

	if len(opts.inputs) > 0 {
		return nil
	}

	input, err := opts.renderer.InputMenu(
		ctx,
		fmt.Sprintf("Enter a string up to %d characters", opts.maxLength),
		utils.ValidateRankInput(opts.maxLength),
	)
	if err != nil {
		return err
	}

	opts.inputs = []string{input}

	return nil
}

// runRank executes an `rank` command.
func runRank(ctx context.Context, out io.Writer, opts *rankOptions) error {
	var (
		results []*models.RankResult
		err     error
	)

	switch {
	case opts.serverURL != "":
		results, err = rankRemotely(ctx, opts)
	case len(opts.inputs) == 1:
		var result *models.RankResult

		result, err = opts.useCase.Rank(opts.inputs[0], opts.maxLength)
		results = []*models.RankResult{result}
	default:
		results, err = rankInTask(ctx, out, opts)
	}

	if err != nil {
		return err
	}

	for _, result := range results {
		_, _ = fmt.Fprintln(out, result.String())
	}

	return nil
}

// rankRemotely ranks inputs one by one on server showing spinner.
func rankRemotely(ctx context.Context, opts *rankOptions) ([]*models.RankResult, error) {
	for _, input := range opts.inputs {
		if err := models.ValidateInput(input, opts.maxLength); err != nil {
			return nil, err
		}
	}

	c, err := client.New(opts.serverURL, client.DefaultRetryMax)
	if err != nil {
		return nil, err
	}

	results := make([]*models.RankResult, 0, len(opts.inputs))

	opts.renderer.WithSpinner(fmt.Sprintf("Ranking on %s", opts.serverURL), func() {
		for _, input := range opts.inputs {
			var result *models.RankResult

			result, err = c.Rank(ctx, input)
			if err != nil {
				return
			}

			results = append(results, result)
		}
	})

	if err != nil {
		return nil, err
	}

	return results, nil
}

// rankInTask ranks inputs in background task tracking its progress.
func rankInTask(ctx context.Context, out io.Writer, opts *rankOptions) ([]*models.RankResult, error) {
	taskID, err := opts.useCase.CreateTask(
		ctx, usecase.TaskConfig{
			Inputs:       opts.inputs,
			MaxLength:    opts.maxLength,
			WorkersCount: opts.workersCount,
		},
	)
	if err != nil {
		return nil, err
	}

	var (
		finished atomic.Bool
		wg       sync.WaitGroup
	)

	startProgressTracking(ctx, out, opts, taskID, &finished, &wg)

	err = opts.useCase.WaitResult(taskID)

	finished.Store(true)

	wg.Wait()

	if err != nil {
		return nil, err
	}

	return opts.useCase.GetResults(taskID)
}

// startProgressTracking runs function to track progress of task
// by getting progress from usecase object and displaying it.
func startProgressTracking(
	ctx context.Context,
	out io.Writer,
	opts *rankOptions,
	taskID string,
	finished *atomic.Bool,
	wg *sync.WaitGroup,
) {
	const delay = 500 * time.Millisecond

	var tracker progress.Tracker

	if opts.useTTY {
		tracker = bar.NewProgressBarManager(ctx, out)
	} else {
		tracker = log.NewProgressLogManager(ctx)
	}

	tracker.AddTask(progressTaskName, "ranking strings", uint64(len(opts.inputs)))

	wg.Add(1)

	go func() {
		defer wg.Done()

		var current usecase.Progress

		for {
			isLast := finished.Load()

			p, err := opts.useCase.GetProgress(taskID)
			if err != nil {
				slog.Error("error getting progress", slog.String("taskID", taskID), slog.Any("error", err))

				return
			}

			current = p
			tracker.UpdateProgress(progressTaskName, current)

			if isLast {
				break
			}

			time.Sleep(delay)
		}

		// unfinished bars of a failed task are never completed
		if current.Done == current.Total {
			tracker.Wait()
		}
	}()
}
