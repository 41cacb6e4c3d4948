package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadFile loads configuration from a .conf file.
// Format: key = value (one per line, # for comments). A missing file yields
// no values.
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}
		key = strings.TrimSpace(key)
		value = unquote(strings.TrimSpace(value))
		values[key] = value
	}

	return values, scanner.Err()
}

func unquote(value string) string {
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	case "datadir":
		cfg.DataDir = value
	case "language":
		cfg.Language = strings.ToLower(value)
	case "words":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.WordCount = n

	// Keystore
	case "keystore.backend":
		cfg.Keystore.Backend = strings.ToLower(value)
	case "keystore.dir":
		cfg.Keystore.Dir = value
	case "keystore.kdf_memory":
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return err
		}
		cfg.Keystore.KDFMemory = uint32(n)
	case "keystore.kdf_iterations":
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return err
		}
		cfg.Keystore.KDFIterations = uint32(n)
	case "keystore.kdf_parallelism":
		n, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return err
		}
		cfg.Keystore.KDFParallelism = uint8(n)
	case "keystore.unlock_per_minute":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		cfg.Keystore.UnlockPerMinute = f
	case "keystore.unlock_burst":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Keystore.UnlockBurst = n

	// RPC
	case "rpc.addr":
		cfg.RPC.Addr = value
	case "rpc.port":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.RPC.Port = n
	case "rpc.allowed":
		cfg.RPC.AllowedIPs = splitList(value)
	case "rpc.cors":
		cfg.RPC.CORSOrigins = splitList(value)

	// Logging
	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)

	default:
		// Unknown keys are ignored
	}
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// splitList splits a comma-separated value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// WriteDefaultConfig writes a default configuration file.
func WriteDefaultConfig(path string) error {
	content := `# klingnet-mnemonic configuration
#
# Environment variables (KLINGNET_MNEMONIC_*) and command-line flags
# override the values in this file.

# Data directory (default: ~/.klingnet-mnemonic)
# datadir = ~/.klingnet-mnemonic

# ============================================================================
# Phrases
# ============================================================================

# Word list: english, japanese, spanish, chinese_simplified,
# chinese_traditional, french, italian, czech, korean
language = english

# Words in generated phrases: 12, 15, 18, 21 or 24
words = 24

# ============================================================================
# Keystore
# ============================================================================

# Storage backend: badger or memory (memory forgets wallets on exit)
keystore.backend = badger
# keystore.dir = ~/.klingnet-mnemonic/keystore

# Argon2id cost for new wallets (memory in KiB)
keystore.kdf_memory = 65536
keystore.kdf_iterations = 3
keystore.kdf_parallelism = 4

# Unlock attempts allowed per wallet before waiting
keystore.unlock_burst = 5
keystore.unlock_per_minute = 5

# ============================================================================
# RPC (klingnet-mnemonic serve)
# ============================================================================

rpc.addr = 127.0.0.1
rpc.port = 8645
# Comma-separated IPs or CIDRs allowed to connect (empty = all)
# rpc.allowed = 127.0.0.1
# rpc.cors =

# ============================================================================
# Logging
# ============================================================================

log.level = warn
# log.file =
log.json = false
`
	return os.WriteFile(path, []byte(content), 0600)
}
