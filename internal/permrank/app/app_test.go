package app

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSignalError(t *testing.T) {
	err := NewSignalError(syscall.SIGINT)

	require.EqualError(t, err, "interrupt signal")
	require.Equal(t, syscall.SIGINT, err.Signal())

	var signalErr *SignalError

	require.True(t, errors.As(errors.WithMessage(err, "canceled"), &signalErr))
}

func TestStackFrames(t *testing.T) {
	require.Empty(t, stackFrames(os.ErrNotExist))

	frames := stackFrames(errors.WithMessage(errors.New("boom"), "failed"))
	require.NotEmpty(t, frames)
	require.Contains(t, frames[0], "TestStackFrames")
}

func TestProfiler(t *testing.T) {
	dir := t.TempDir()

	p := newProfiler(filepath.Join(dir, "cpu.prof"), filepath.Join(dir, "mem.prof"))
	p.start()
	p.stop()

	for _, name := range []string{"cpu.prof", "mem.prof"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err)
		require.NotZero(t, info.Size(), name)
	}

	disabled := newProfiler("", "")
	disabled.start()
	disabled.stop()
	require.Nil(t, disabled.cpuFile)
}
