// Package config handles klingnet-mnemonic configuration.
//
// Settings are resolved in order: built-in defaults, the key = value config
// file, KLINGNET_MNEMONIC_* environment variables, then command-line flags.
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config holds the runtime configuration of the mnemonic tool.
type Config struct {
	DataDir string `conf:"datadir" env:"KLINGNET_MNEMONIC_DATADIR"`

	// Defaults for generate and wallet create.
	Language  string `conf:"language" env:"KLINGNET_MNEMONIC_LANGUAGE"`
	WordCount int    `conf:"words" env:"KLINGNET_MNEMONIC_WORDS"`

	Keystore KeystoreConfig
	RPC      RPCConfig
	Log      LogConfig
}

// KeystoreConfig holds encrypted wallet storage settings.
type KeystoreConfig struct {
	Backend string `conf:"keystore.backend" env:"KLINGNET_MNEMONIC_KEYSTORE_BACKEND"` // badger or memory
	Dir     string `conf:"keystore.dir" env:"KLINGNET_MNEMONIC_KEYSTORE_DIR"`         // default: <datadir>/keystore

	// Argon2id parameters for newly created wallets.
	KDFMemory      uint32 `conf:"keystore.kdf_memory" env:"KLINGNET_MNEMONIC_KDF_MEMORY"` // KiB
	KDFIterations  uint32 `conf:"keystore.kdf_iterations" env:"KLINGNET_MNEMONIC_KDF_ITERATIONS"`
	KDFParallelism uint8  `conf:"keystore.kdf_parallelism" env:"KLINGNET_MNEMONIC_KDF_PARALLELISM"`

	// Unlock attempts per wallet: UnlockBurst at once, refilled at
	// UnlockPerMinute.
	UnlockPerMinute float64 `conf:"keystore.unlock_per_minute" env:"KLINGNET_MNEMONIC_UNLOCK_PER_MINUTE"`
	UnlockBurst     int     `conf:"keystore.unlock_burst" env:"KLINGNET_MNEMONIC_UNLOCK_BURST"`
}

// RPCConfig holds settings for the local JSON-RPC server started by serve.
type RPCConfig struct {
	Addr        string   `conf:"rpc.addr" env:"KLINGNET_MNEMONIC_RPC_ADDR"`
	Port        int      `conf:"rpc.port" env:"KLINGNET_MNEMONIC_RPC_PORT"`
	AllowedIPs  []string `conf:"rpc.allowed" env:"KLINGNET_MNEMONIC_RPC_ALLOWED" envSeparator:","`
	CORSOrigins []string `conf:"rpc.cors" env:"KLINGNET_MNEMONIC_RPC_CORS" envSeparator:","` // "*" = all
}

// ListenAddr returns the host:port the RPC server binds to.
func (r RPCConfig) ListenAddr() string {
	return net.JoinHostPort(r.Addr, strconv.Itoa(r.Port))
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level" env:"KLINGNET_MNEMONIC_LOG_LEVEL"`
	File  string `conf:"log.file" env:"KLINGNET_MNEMONIC_LOG_FILE"`
	JSON  bool   `conf:"log.json" env:"KLINGNET_MNEMONIC_LOG_JSON"`
}

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.klingnet-mnemonic
//	macOS:   ~/Library/Application Support/KlingnetMnemonic
//	Windows: %APPDATA%\KlingnetMnemonic
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".klingnet-mnemonic"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "KlingnetMnemonic")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "KlingnetMnemonic")
		}
		return filepath.Join(home, "AppData", "Roaming", "KlingnetMnemonic")
	default:
		return filepath.Join(home, ".klingnet-mnemonic")
	}
}

// KeystoreDir returns the keystore database directory.
func (c *Config) KeystoreDir() string {
	if c.Keystore.Dir != "" {
		return c.Keystore.Dir
	}
	return filepath.Join(c.DataDir, "keystore")
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "klingnet-mnemonic.conf")
}

// EnsureDataDirs creates the data directory and writes a default config
// file on first use.
func EnsureDataDirs(cfg *Config) error {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return fmt.Errorf("creating directory %s: %w", cfg.DataDir, err)
	}
	configPath := cfg.ConfigFile()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := WriteDefaultConfig(configPath); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}
	}
	return nil
}
