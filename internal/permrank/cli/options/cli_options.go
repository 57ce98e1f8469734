package options

import (
	"os"

	"github.com/spf13/afero"

	"github.com/tarantool/permrank/internal/permrank/cli/render"
	"github.com/tarantool/permrank/internal/permrank/cli/streams"
	"github.com/tarantool/permrank/internal/permrank/models"
	"github.com/tarantool/permrank/internal/permrank/usecase"
)

// Option type is a value wrapper with a flag indicating whether its value has been modified.
type Option[T any] struct {
	Value   T
	Changed *bool
}

// PermRankOptions type is used to describe root command options.
type PermRankOptions struct {
	TTY           Option[bool]
	NoTTY         Option[bool]
	ConfigPath    string
	DebugMode     bool
	CPUProfile    string
	MemoryProfile string
}

type CliOptions struct {
	useCase         usecase.UseCase
	renderer        render.Renderer
	fs              afero.Fs
	in              *streams.In
	out             *streams.Out
	appConfig       *models.AppConfig
	permRankOptions *PermRankOptions
	version         string
	useTTY          bool
}

func NewCliOptions(useCase usecase.UseCase, version string) *CliOptions {
	return &CliOptions{
		useCase:         useCase,
		version:         version,
		fs:              afero.NewOsFs(),
		in:              streams.NewIn(os.Stdin),
		out:             streams.NewOut(os.Stdout),
		appConfig:       &models.AppConfig{},
		permRankOptions: &PermRankOptions{},
	}
}

func (opts *CliOptions) UseCase() usecase.UseCase {
	return opts.useCase
}

func (opts *CliOptions) SetUseCase(useCase usecase.UseCase) {
	opts.useCase = useCase
}

func (opts *CliOptions) Renderer() render.Renderer {
	return opts.renderer
}

func (opts *CliOptions) SetRenderer(renderer render.Renderer) {
	opts.renderer = renderer
}

// Fs returns filesystem to read input files from, OS filesystem by default.
func (opts *CliOptions) Fs() afero.Fs {
	if opts.fs == nil {
		return afero.NewOsFs()
	}

	return opts.fs
}

func (opts *CliOptions) SetFs(fs afero.Fs) {
	opts.fs = fs
}

func (opts *CliOptions) In() *streams.In {
	return opts.in
}

func (opts *CliOptions) SetIn(in *streams.In) {
	opts.in = in
}

func (opts *CliOptions) Out() *streams.Out {
	return opts.out
}

func (opts *CliOptions) SetOut(out *streams.Out) {
	opts.out = out
}

// AppConfig returns application config, an empty one filled with defaults if it was never set.
func (opts *CliOptions) AppConfig() *models.AppConfig {
	if opts.appConfig == nil {
		opts.appConfig = &models.AppConfig{}
		opts.appConfig.FillDefaults()
	}

	return opts.appConfig
}

func (opts *CliOptions) SetAppConfig(appConfig *models.AppConfig) {
	opts.appConfig = appConfig
}

func (opts *CliOptions) PermRankOpts() *PermRankOptions {
	if opts.permRankOptions == nil {
		opts.permRankOptions = &PermRankOptions{}
	}

	return opts.permRankOptions
}

func (opts *CliOptions) SetPermRankOpts(permRankOpts *PermRankOptions) {
	opts.permRankOptions = permRankOpts
}

func (opts *CliOptions) UseTTY() bool {
	return opts.useTTY
}

func (opts *CliOptions) SetUseTTY(useTTY bool) {
	opts.useTTY = useTTY
}

func (opts *CliOptions) Version() string {
	return opts.version
}

func (opts *CliOptions) SetVersion(version string) {
	opts.version = version
}

func (opts *CliOptions) DebugMode() bool {
	return opts.PermRankOpts().DebugMode
}

func (opts *CliOptions) SetDebugMode(debugMode bool) {
	opts.PermRankOpts().DebugMode = debugMode
}

func (opts *CliOptions) CPUProfile() string {
	return opts.PermRankOpts().CPUProfile
}

func (opts *CliOptions) SetCPUProfile(profile string) {
	opts.PermRankOpts().CPUProfile = profile
}

func (opts *CliOptions) MemoryProfile() string {
	return opts.PermRankOpts().MemoryProfile
}

func (opts *CliOptions) SetMemoryProfile(profile string) {
	opts.PermRankOpts().MemoryProfile = profile
}
