package commands

const (
	ConfigPathFlag         = "config"
	ConfigPathShortFlag    = "c"
	ConfigPathDefaultValue = ""
	ConfigPathUsage        = "Location of config file"

	TTYFlag      = "tty"
	TTYShortFlag = "t"
	TTYUsage     = "Activate TTY mode"

	NoTTYFlag         = "no-tty"
	NoTTYShortFlag    = "T"
	NoTTYDefaultValue = false
	NoTTYUsage        = "Deactivate TTY mode"

	DebugModeFlag         = "debug"
	DebugModeShortFlag    = "d"
	DebugModeDefaultValue = false
	DebugModeUsage        = "Enable debug mode"

	CPUProfileFlag  = "cpu-profile"
	CPUProfileUsage = "Path to GoLang CPU profile file"

	MemoryProfileFlag  = "memory-profile"
	MemoryProfileUsage = "Path to GoLang memory profile file"

	InputFileFlag         = "file"
	InputFileShortFlag    = "f"
	InputFileDefaultValue = ""
	InputFileUsage        = "Location of file with strings to rank, one per line"

	MaxLengthFlag         = "max-length"
	MaxLengthShortFlag    = "l"
	MaxLengthDefaultValue = 0
	MaxLengthUsage        = "Maximum length of string in characters, overrides config"

	WorkersCountFlag         = "workers"
	WorkersCountShortFlag    = "w"
	WorkersCountDefaultValue = 0
	WorkersCountUsage        = "Number of workers ranking strings in parallel, overrides config"

	ServerURLFlag         = "server"
	ServerURLShortFlag    = "s"
	ServerURLDefaultValue = ""
	ServerURLUsage        = "Base URL of permrank HTTP API to rank strings remotely"

	HTTPListenAddressFlag         = "listen-address"
	HTTPListenAddressShortFlag    = "a"
	HTTPListenAddressDefaultValue = ""
	HTTPListenAddressUsage        = "HTTP listen address"

	HTTPReadTimeoutFlag         = "read-timeout"
	HTTPReadTimeoutShortFlag    = "r"
	HTTPReadTimeoutDefaultValue = 0
	HTTPReadTimeoutUsage        = "HTTP read timeout"

	HTTPWriteTimeoutFlag         = "write-timeout"
	HTTPWriteTimeoutShortFlag    = ""
	HTTPWriteTimeoutDefaultValue = 0
	HTTPWriteTimeoutUsage        = "HTTP write timeout"

	HTTPIdleTimeoutFlag         = "idle-timeout"
	HTTPIdleTimeoutShortFlag    = "i"
	HTTPIdleTimeoutDefaultValue = 0
	HTTPIdleTimeoutUsage        = "HTTP idle timeout"
)
