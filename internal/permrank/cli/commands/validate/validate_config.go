package validate

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tarantool/permrank/internal/permrank/cli/commands"
	"github.com/tarantool/permrank/internal/permrank/cli/options"
	"github.com/tarantool/permrank/internal/permrank/cli/render"
	"github.com/tarantool/permrank/internal/permrank/cli/utils"
	"github.com/tarantool/permrank/internal/permrank/models"
)

// validateOptions type is used to describe 'validate-config' command options.
type validateOptions struct {
	renderer      render.Renderer
	appConfigPath string
}

// NewValidateConfigCommand creates 'validate-config' command for CLI.
func NewValidateConfigCommand(cliOpts *options.CliOptions) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:                   "validate-config [PATH]",
		Short:                 "Validate application config",
		Args:                  commands.RequiresMaxArgs(1),
		DisableFlagsInUseLine: true,
		PreRun: func(_ *cobra.Command, _ []string) {
			opts.renderer = cliOpts.Renderer()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := getAppConfigFilePath(cmd.Context(), opts, args)
			if err != nil {
				return errors.WithMessagef(err, "failed to get config file path")
			}

			return runValidate(cmd.OutOrStdout(), opts)
		},
	}

	cmd.SetOut(cliOpts.Out())

	return cmd
}

// getAppConfigFilePath gets config file path from arguments or user input.
func getAppConfigFilePath(ctx context.Context, opts *validateOptions, args []string) error {
	if len(args) > 0 {
		opts.appConfigPath = args[0]

		return nil
	}

	filePath, err := opts.renderer.InputMenu(
		ctx,
		"Enter path to config file",
		utils.ValidateFileFormat(".yml", ".yaml", ".json"),
	)
	if err != nil {
		return err
	}

	opts.appConfigPath = filePath

	return nil
}

// runValidate executes an `validate-config` command.
func runValidate(out io.Writer, opts *validateOptions) error {
	var appConfig models.AppConfig

	err := appConfig.ParseFromFile(opts.appConfigPath)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, "Config is valid")

	return nil
}
