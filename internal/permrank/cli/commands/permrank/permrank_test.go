package permrank

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tarantool/permrank/internal/permrank/cli/commands"
	"github.com/tarantool/permrank/internal/permrank/cli/options"
	"github.com/tarantool/permrank/internal/permrank/cli/streams"
	"github.com/tarantool/permrank/internal/permrank/usecase/general"
)

func TestNewPermRankCommand(t *testing.T) {
	out := new(bytes.Buffer)

	cliOpts := options.NewCliOptions(general.NewUseCase(general.UseCaseConfig{}), "test")
	cliOpts.SetIn(streams.NewIn(strings.NewReader("")))
	cliOpts.SetOut(streams.NewOut(out))

	cmd := NewPermRankCommand(cliOpts)

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}

	require.Equal(t, []string{"rank", "serve", "validate-config", "version"}, names)

	for _, flag := range []string{
		commands.ConfigPathFlag, commands.DebugModeFlag, commands.TTYFlag,
		commands.NoTTYFlag, commands.CPUProfileFlag, commands.MemoryProfileFlag,
	} {
		require.NotNil(t, cmd.Flags().Lookup(flag), flag)
	}

	require.False(t, cliOpts.PermRankOpts().TTY.Value)
	require.False(t, *cliOpts.PermRankOpts().TTY.Changed)

	require.NoError(t, cmd.ParseFlags([]string{"--tty", "--cpu-profile", "cpu.prof"}))
	require.True(t, *cliOpts.PermRankOpts().TTY.Changed)
	require.Equal(t, "cpu.prof", cliOpts.CPUProfile())

	require.NoError(t, cmd.Usage())
	require.Contains(t, out.String(), "Commands:\n  rank")
	require.Contains(t, out.String(), "--memory-profile")
	require.NotContains(t, out.String(), "Aliases:")
	require.NotContains(t, out.String(), "Global Flags:")
}
