package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tarantool/permrank/internal/permrank/cli/commands"
	"github.com/tarantool/permrank/internal/permrank/cli/commands/permrank"
	clierrors "github.com/tarantool/permrank/internal/permrank/cli/errors"
	"github.com/tarantool/permrank/internal/permrank/cli/options"
	"github.com/tarantool/permrank/internal/permrank/cli/render/prompt"
	"github.com/tarantool/permrank/internal/permrank/logger/handlers"
)

// Cli type is used to describe permrank CLI.
type Cli struct {
	opts *options.CliOptions
	cmd  *cobra.Command
}

func NewCli(opts *options.CliOptions) *Cli {
	return &Cli{
		opts: opts,
		cmd:  permrank.NewPermRankCommand(opts),
	}
}

func (cli *Cli) MustSetup() {
	if err := cli.Setup(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(cli.cmd.OutOrStdout(), err.Error())

		os.Exit(1)
	}
}

// Setup parses root flags from args and configures CLI with config and flags.
func (cli *Cli) Setup(args []string) error {
	if err := cli.handleAppFlags(args); err != nil {
		return err
	}

	return cli.initialize()
}

func (cli *Cli) Run(ctx context.Context) error {
	var usageErr *clierrors.UsageError

	err := cli.cmd.ExecuteContext(ctx)
	if err != nil && errors.As(err, &usageErr) {
		_, _ = fmt.Fprintln(cli.cmd.OutOrStdout(), err.Error())

		os.Exit(1)
	}

	return err //nolint:wrapcheck
}

func (cli *Cli) Options() *options.CliOptions {
	return cli.opts
}

// handleAppFlags parses flags of root command before executing it.
func (cli *Cli) handleAppFlags(args []string) error {
	cmd := cli.cmd

	flags := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	flags.SetInterspersed(false)

	flags.AddFlagSet(cmd.Flags())
	flags.AddFlagSet(cmd.PersistentFlags())

	if err := flags.Parse(args); err != nil {
		return commands.FlagErrorFunc(cmd, err)
	}

	return nil
}

// initialize configures the permrank CLI using config and flags.
func (cli *Cli) initialize() error {
	cliOpts := cli.opts

	appConfig := cliOpts.AppConfig()
	rootOpts := cliOpts.PermRankOpts()

	// set tty mode
	if !*rootOpts.NoTTY.Changed && !*rootOpts.TTY.Changed {
		cliOpts.SetUseTTY(rootOpts.TTY.Value)
	} else {
		cliOpts.SetUseTTY(*rootOpts.TTY.Changed)
	}

	err := appConfig.ParseFromFile(rootOpts.ConfigPath)
	if err != nil {
		return errors.WithMessage(err, "error during initializing cli")
	}

	// setup logger
	logLevel := slog.LevelInfo
	if rootOpts.DebugMode {
		logLevel = slog.LevelDebug
	}

	logHandler, err := handlers.New(appConfig.LogFormat, cliOpts.Out(), logLevel)
	if err != nil {
		return errors.WithMessage(err, "error during initializing cli")
	}

	slog.SetDefault(slog.New(logHandler))

	// setup renderer
	renderer := prompt.NewRenderer(cliOpts.In(), cliOpts.Out(), cliOpts.UseTTY())
	cliOpts.SetRenderer(renderer)

	return nil
}
