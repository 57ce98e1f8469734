package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tarantool/permrank/internal/permrank/cli/commands"
	"github.com/tarantool/permrank/internal/permrank/cli/options"
)

const devVersion = "dev"

// NewVersionCommand creates 'version' command for CLI.
func NewVersionCommand(cliOpts *options.CliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:                   "version",
		Short:                 "Show permrank version",
		Args:                  commands.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			version := cliOpts.Version()
			if version == "" {
				version = devVersion
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "permrank version %s (%s %s/%s)\n",
				version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}

	cmd.SetOut(cliOpts.Out())

	return cmd
}
