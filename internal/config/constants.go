package config

const SourceFileExt = ".lox"

// ConfigFileName is looked up from the working directory upwards.
const ConfigFileName = "lox.yaml"

// Process exit codes, following sysexits.h.
const (
	ExitOK        = 0
	ExitUsage     = 64
	ExitDataError = 65
	ExitSoftware  = 70
	ExitIOError   = 74
)

// Names the runtime treats specially
const (
	InitMethodName = "init"
	ThisName       = "this"
	SuperName      = "super"
	ClockFuncName  = "clock"
)

// MaxArity is the largest number of parameters or arguments a call can have.
const MaxArity = 255

// Defaults for fields missing from lox.yaml
const (
	DefaultLogLevel     = "warn"
	DefaultColorMode    = "auto"
	DefaultMaxCallDepth = 10000
	DefaultPrompt       = "> "
	DefaultContinuation = "... "
	DefaultHistoryFile  = "~/.lox_history"
)
