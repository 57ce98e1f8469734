package app

import (
	"log/slog"
	"os"
	"runtime/pprof"
)

// profiler writes CPU and heap profiles to the paths given by --cpu-profile and --memory-profile.
// Empty path disables the corresponding profile.
type profiler struct {
	cpuPath    string
	memoryPath string
	cpuFile    *os.File
}

func newProfiler(cpuPath, memoryPath string) *profiler {
	return &profiler{
		cpuPath:    cpuPath,
		memoryPath: memoryPath,
	}
}

func (p *profiler) start() {
	if p.cpuPath == "" {
		return
	}

	file, err := os.Create(p.cpuPath)
	if err != nil {
		slog.Error("failed to create CPU profile file", slog.String("error", err.Error()))

		return
	}

	if err = pprof.StartCPUProfile(file); err != nil {
		slog.Error("failed to start CPU profiling", slog.String("error", err.Error()))
		_ = file.Close()

		return
	}

	p.cpuFile = file
}

func (p *profiler) stop() {
	if p.cpuFile != nil {
		pprof.StopCPUProfile()

		if err := p.cpuFile.Close(); err != nil {
			slog.Error("failed to close CPU profile file", slog.String("error", err.Error()))
		}

		p.cpuFile = nil
	}

	if p.memoryPath == "" {
		return
	}

	file, err := os.Create(p.memoryPath)
	if err != nil {
		slog.Error("failed to create memory profile file", slog.String("error", err.Error()))

		return
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close memory profile file", slog.String("error", err.Error()))
		}
	}()

	if err = pprof.WriteHeapProfile(file); err != nil {
		slog.Error("failed to write memory profiling results", slog.String("error", err.Error()))
	}
}
