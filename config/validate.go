package config

import (
	"fmt"

	"github.com/Klingon-tech/klingnet-mnemonic/internal/log"
	"github.com/Klingon-tech/klingnet-mnemonic/pkg/mnemonic"
)

// Validate checks the config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("datadir must not be empty")
	}
	if _, err := mnemonic.WordListFor(mnemonic.Language(cfg.Language)); err != nil {
		return fmt.Errorf("language: %w", err)
	}
	if !mnemonic.ValidWordCount(cfg.WordCount) {
		return fmt.Errorf("words must be one of 12, 15, 18, 21, 24, got %d", cfg.WordCount)
	}

	switch cfg.Keystore.Backend {
	case "badger", "memory":
	default:
		return fmt.Errorf("keystore.backend must be badger or memory, got %q", cfg.Keystore.Backend)
	}
	if cfg.Keystore.KDFMemory == 0 || cfg.Keystore.KDFIterations == 0 || cfg.Keystore.KDFParallelism == 0 {
		return fmt.Errorf("keystore.kdf_* values must be non-zero")
	}
	if cfg.Keystore.UnlockPerMinute < 0 || cfg.Keystore.UnlockBurst < 0 {
		return fmt.Errorf("keystore.unlock_* values must not be negative")
	}

	if cfg.RPC.Port < 0 || cfg.RPC.Port > 65535 {
		return fmt.Errorf("rpc.port must be between 0 and 65535, got %d", cfg.RPC.Port)
	}

	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", cfg.Log.Level)
	}
	return nil
}
