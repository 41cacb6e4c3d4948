package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Flags holds the global command-line flags. Parsing stops at the first
// non-flag argument, the command name, so per-command flags stay in Args.
type Flags struct {
	Help    bool
	Version bool

	DataDir string
	Config  string

	Language string
	Words    int

	KeystoreBackend string

	LogLevel string
	LogFile  string
	LogJSON  bool

	// Remaining args: command and its arguments.
	Args []string

	// Explicitly-set bool flags (for true/false overrides).
	SetLogJSON bool
}

// ParseFlags parses the global flags in args (without the program name).
func ParseFlags(args []string, output io.Writer) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("klingnet-mnemonic", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")

	fs.StringVar(&f.DataDir, "datadir", "", "Data directory path")
	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")

	fs.StringVar(&f.Language, "language", "", "Default word list language")
	fs.IntVar(&f.Words, "words", 0, "Default phrase length (12, 15, 18, 21, 24)")
	fs.StringVar(&f.KeystoreBackend, "keystore-backend", "", "Keystore backend (badger or memory)")

	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	f.SetLogJSON = isFlagSet(fs, "log-json")
	f.Args = fs.Args()
	return f, nil
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}
	if f.Language != "" {
		cfg.Language = strings.ToLower(f.Language)
	}
	if f.Words != 0 {
		cfg.WordCount = f.Words
	}
	if f.KeystoreBackend != "" {
		cfg.Keystore.Backend = strings.ToLower(f.KeystoreBackend)
	}

	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// isFlagSet checks if a flag was explicitly set.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// Load resolves configuration with the following precedence:
// 1. Default values
// 2. Config file (created with defaults on first use)
// 3. Environment variables
// 4. Command-line flags
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	// The data directory decides where the config file lives, so resolve it
	// from env and flags before reading the file.
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}

	configPath := f.Config
	if configPath == "" {
		if err := EnsureDataDirs(cfg); err != nil {
			return nil, fmt.Errorf("ensuring data dirs: %w", err)
		}
		configPath = cfg.ConfigFile()
	}

	fileValues, err := LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, fmt.Errorf("applying config file: %w", err)
	}

	// Env and flags win over the file.
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	ApplyFlags(cfg, f)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
