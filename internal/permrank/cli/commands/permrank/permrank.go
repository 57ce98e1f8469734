package permrank

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tarantool/permrank/internal/permrank/cli/commands"
	"github.com/tarantool/permrank/internal/permrank/cli/commands/rank"
	"github.com/tarantool/permrank/internal/permrank/cli/commands/serve"
	"github.com/tarantool/permrank/internal/permrank/cli/commands/validate"
	"github.com/tarantool/permrank/internal/permrank/cli/commands/version"
	"github.com/tarantool/permrank/internal/permrank/cli/options"
	"github.com/tarantool/permrank/internal/permrank/cli/utils"
)

// NewPermRankCommand creates root 'permrank' command. Without a subcommand it lets user pick one.
func NewPermRankCommand(cliOpts *options.CliOptions) *cobra.Command {
	cobra.EnableCommandSorting = false

	cmd := &cobra.Command{
		Use:                   "permrank [FLAGS] [COMMAND]",
		Short:                 "CLI for ranking strings among permutations of their characters",
		Args:                  commands.NoArgs,
		SilenceUsage:          true,
		SilenceErrors:         true,
		TraverseChildren:      true,
		DisableFlagsInUseLine: true,
		CompletionOptions:     cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return utils.ChooseCommand(cmd, args, cliOpts.Renderer())
		},
	}

	cmd.SetOut(cliOpts.Out())
	cmd.SetFlagErrorFunc(commands.FlagErrorFunc)
	cmd.SetUsageTemplate(usageTemplate)

	setupFlags(cmd.Flags(), cliOpts.PermRankOpts(), cliOpts.In().IsTerminal())

	cmd.PersistentFlags().BoolP("help", "h", false, "Print usage")
	cmd.PersistentFlags().Lookup("help").Hidden = true

	cmd.MarkFlagsMutuallyExclusive(commands.TTYFlag, commands.NoTTYFlag)

	cmd.AddCommand(
		rank.NewRankCommand(cliOpts),
		serve.NewServeCommand(cliOpts),
		validate.NewValidateConfigCommand(cliOpts),
		version.NewVersionCommand(cliOpts),
	)

	return cmd
}

// setupFlags binds root flags to opts. TTY mode defaults to whether stdin is a terminal.
func setupFlags(flags *pflag.FlagSet, opts *options.PermRankOptions, inputIsTerminal bool) {
	flags.StringVarP(&opts.ConfigPath,
		commands.ConfigPathFlag, commands.ConfigPathShortFlag, commands.ConfigPathDefaultValue, commands.ConfigPathUsage)
	flags.BoolVarP(&opts.DebugMode,
		commands.DebugModeFlag, commands.DebugModeShortFlag, commands.DebugModeDefaultValue, commands.DebugModeUsage)

	flags.BoolVarP(&opts.TTY.Value,
		commands.TTYFlag, commands.TTYShortFlag, inputIsTerminal, commands.TTYUsage)
	flags.BoolVarP(&opts.NoTTY.Value,
		commands.NoTTYFlag, commands.NoTTYShortFlag, commands.NoTTYDefaultValue, commands.NoTTYUsage)

	opts.TTY.Changed = &flags.Lookup(commands.TTYFlag).Changed
	opts.NoTTY.Changed = &flags.Lookup(commands.NoTTYFlag).Changed

	flags.StringVar(&opts.CPUProfile, commands.CPUProfileFlag, "", commands.CPUProfileUsage)
	flags.StringVar(&opts.MemoryProfile, commands.MemoryProfileFlag, "", commands.MemoryProfileUsage)
}

const usageTemplate = `Usage:
  {{.UseLine}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
