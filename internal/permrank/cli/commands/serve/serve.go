package serve

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tarantool/permrank/internal/permrank/cli/commands"
	"github.com/tarantool/permrank/internal/permrank/cli/options"
	"github.com/tarantool/permrank/internal/permrank/models"
	"github.com/tarantool/permrank/internal/permrank/usecase"
)

// serveOptions type is used to describe 'serve' command options.
type serveOptions struct {
	useCase       usecase.UseCase
	listenAddress string
	readTimeout   time.Duration
	writeTimeout  time.Duration
	idleTimeout   time.Duration
	bodyLimit     string
	maxLength     int
	workersCount  int
}

// NewServeCommand creates 'serve' command for CLI.
func NewServeCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:                   "serve [FLAGS]",
		Short:                 "Runs HTTP API for ranking strings",
		Args:                  commands.NoArgs,
		DisableFlagsInUseLine: true,
		PreRun: func(_ *cobra.Command, _ []string) {
			opts.useCase = cliOpts.UseCase()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			slog.Info("permrank server started", slog.String("version", cliOpts.Version()))

			configureOptions(opts, cliOpts.AppConfig())

			err := runServe(cmd.Context(), opts)
			if err != nil {
				return errors.WithMessagef(err, "failed to serve http server")
			}

			slog.Info("permrank server finished")

			return nil
		},
	}

	cmd.SetOut(cliOpts.Out())

	setupFlags(cmd.Flags(), opts)

	return cmd
}

// setupFlags sets flags for 'serve' command and bind them to serveOptions fields.
func setupFlags(flags *pflag.FlagSet, opts *serveOptions) {
	flags.StringVarP(
		&opts.listenAddress,
		commands.HTTPListenAddressFlag,
		commands.HTTPListenAddressShortFlag,
		commands.HTTPListenAddressDefaultValue,
		commands.HTTPListenAddressUsage,
	)

	flags.DurationVarP(
		&opts.readTimeout,
		commands.HTTPReadTimeoutFlag,
		commands.HTTPReadTimeoutShortFlag,
		commands.HTTPReadTimeoutDefaultValue,
		commands.HTTPReadTimeoutUsage,
	)

	flags.DurationVarP(
		&opts.writeTimeout,
		commands.HTTPWriteTimeoutFlag,
		commands.HTTPWriteTimeoutShortFlag,
		commands.HTTPWriteTimeoutDefaultValue,
		commands.HTTPWriteTimeoutUsage,
	)

	flags.DurationVarP(
		&opts.idleTimeout,
		commands.HTTPIdleTimeoutFlag,
		commands.HTTPIdleTimeoutShortFlag,
		commands.HTTPIdleTimeoutDefaultValue,
		commands.HTTPIdleTimeoutUsage,
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
}

// configureOptions configures serve options using config and flags.
func configureOptions(opts *serveOptions, appConfig *models.AppConfig) {
	httpConfig := appConfig.HTTPConfig

	if opts.listenAddress == "" {
		opts.listenAddress = httpConfig.ListenAddress
	}

	if opts.readTimeout == 0 {
		opts.readTimeout = httpConfig.ReadTimeout
	}

	if opts.writeTimeout == 0 {
		opts.writeTimeout = httpConfig.WriteTimeout
	}

	if opts.idleTimeout == 0 {
		opts.idleTimeout = httpConfig.IdleTimeout
	}

	if opts.bodyLimit == "" {
		opts.bodyLimit = httpConfig.BodyLimit
	}

	if opts.maxLength <= 0 {
		opts.maxLength = appConfig.MaxLength
	}

	if opts.workersCount <= 0 {
		opts.workersCount = appConfig.WorkersCount
	}
}

// newHandler creates echo instance with all routes of API.
func newHandler(opts *serveOptions) *echo.Echo {
	handler := echo.New()
	handler.HideBanner = true
	handler.HidePort = true

	setupRoutes(handlerOptions{
		useCase:      opts.useCase,
		maxLength:    opts.maxLength,
		workersCount: opts.workersCount,
		bodyLimit:    opts.bodyLimit,
	}, handler)

	return handler
}

// runServe executes an `serve` command.
func runServe(
	ctx context.Context,
	opts *serveOptions,
) error {
	const timeout = 5 * time.Second

	server := &http.Server{
		Handler:      newHandler(opts),
		Addr:         opts.listenAddress,
		ReadTimeout:  opts.readTimeout,
		WriteTimeout: opts.writeTimeout,
		IdleTimeout:  opts.idleTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		_ = server.Shutdown(shutdownCtx)
	}()

	slog.Info("running HTTP server with params:",
		slog.Any("listen-address", opts.listenAddress),
		slog.Any("read-timeout", opts.readTimeout),
		slog.Any("write-timeout", opts.writeTimeout),
		slog.Any("idle-timeout", opts.idleTimeout),
		slog.Any("max-length", opts.maxLength),
	)

	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.New(err.Error())
	}

	return nil
}
