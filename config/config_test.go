package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/caarlos0/env/v11"
)

func writeConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.conf")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func TestDefault_IsValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("Validate(Default()) error: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConf(t, `
# comment
language = japanese
words=12
keystore.dir = "/tmp/ks"
log.json = yes
`)
	values, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	want := map[string]string{
		"language":     "japanese",
		"words":        "12",
		"keystore.dir": "/tmp/ks",
		"log.json":     "yes",
	}
	if len(values) != len(want) {
		t.Fatalf("LoadFile() = %v, want %v", values, want)
	}
	for k, v := range want {
		if values[k] != v {
			t.Errorf("values[%q] = %q, want %q", k, values[k], v)
		}
	}
}

func TestLoadFile_Missing(t *testing.T) {
	values, err := LoadFile(filepath.Join(t.TempDir(), "nope.conf"))
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("missing file should yield no values, got %v", values)
	}
}

func TestLoadFile_BadLine(t *testing.T) {
	path := writeConf(t, "language = english\njust words\n")
	if _, err := LoadFile(path); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("LoadFile() error = %v, want line 2 error", err)
	}
}

func TestApplyFileConfig(t *testing.T) {
	cfg := Default()
	err := ApplyFileConfig(cfg, map[string]string{
		"language":                 "Korean",
		"words":                    "18",
		"keystore.backend":         "memory",
		"keystore.kdf_memory":      "128",
		"keystore.kdf_iterations":  "2",
		"keystore.kdf_parallelism": "1",
		"keystore.unlock_burst":    "9",
		"unknown.key":              "ignored",
	})
	if err != nil {
		t.Fatalf("ApplyFileConfig() error: %v", err)
	}
	if cfg.Language != "korean" || cfg.WordCount != 18 || cfg.Keystore.Backend != "memory" {
		t.Errorf("config = %+v", cfg)
	}
	if cfg.Keystore.KDFMemory != 128 || cfg.Keystore.KDFIterations != 2 || cfg.Keystore.KDFParallelism != 1 {
		t.Errorf("KDF params = %+v", cfg.Keystore)
	}
	if cfg.Keystore.UnlockBurst != 9 {
		t.Errorf("UnlockBurst = %d, want 9", cfg.Keystore.UnlockBurst)
	}

	if err := ApplyFileConfig(cfg, map[string]string{"words": "many"}); err == nil {
		t.Error("non-numeric words should fail")
	}
	if err := ApplyFileConfig(cfg, map[string]string{"keystore.kdf_parallelism": "300"}); err == nil {
		t.Error("parallelism above 255 should fail")
	}
}

func TestApplyFileConfig_RPC(t *testing.T) {
	cfg := Default()
	err := ApplyFileConfig(cfg, map[string]string{
		"rpc.addr":    "0.0.0.0",
		"rpc.port":    "9000",
		"rpc.allowed": "127.0.0.1, 10.0.0.0/8,",
		"rpc.cors":    "*",
	})
	if err != nil {
		t.Fatalf("ApplyFileConfig() error: %v", err)
	}
	if got := cfg.RPC.ListenAddr(); got != "0.0.0.0:9000" {
		t.Errorf("ListenAddr() = %q, want 0.0.0.0:9000", got)
	}
	if len(cfg.RPC.AllowedIPs) != 2 || cfg.RPC.AllowedIPs[1] != "10.0.0.0/8" {
		t.Errorf("AllowedIPs = %v", cfg.RPC.AllowedIPs)
	}
	if len(cfg.RPC.CORSOrigins) != 1 || cfg.RPC.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v", cfg.RPC.CORSOrigins)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	cfg.Language = "spanish"

	err := applyEnv(cfg, env.Options{Environment: map[string]string{
		"KLINGNET_MNEMONIC_WORDS":            "15",
		"KLINGNET_MNEMONIC_KEYSTORE_BACKEND": "memory",
		"KLINGNET_MNEMONIC_KDF_PARALLELISM":  "2",
		"KLINGNET_MNEMONIC_LOG_JSON":         "true",
		"KLINGNET_MNEMONIC_RPC_ALLOWED":      "127.0.0.1,::1",
	}})
	if err != nil {
		t.Fatalf("applyEnv() error: %v", err)
	}
	if cfg.WordCount != 15 || cfg.Keystore.Backend != "memory" || cfg.Keystore.KDFParallelism != 2 || !cfg.Log.JSON {
		t.Errorf("config after env = %+v", cfg)
	}
	if len(cfg.RPC.AllowedIPs) != 2 || cfg.RPC.AllowedIPs[1] != "::1" {
		t.Errorf("RPC.AllowedIPs = %v", cfg.RPC.AllowedIPs)
	}
	if cfg.Language != "spanish" {
		t.Errorf("unset variable changed Language to %q", cfg.Language)
	}

	err = applyEnv(cfg, env.Options{Environment: map[string]string{"KLINGNET_MNEMONIC_WORDS": "x"}})
	if err == nil {
		t.Error("applyEnv() should fail on a non-numeric word count")
	}
}

func TestParseFlags(t *testing.T) {
	f, err := ParseFlags([]string{"--datadir", "/data", "--words", "12", "--log-json", "generate", "--language", "french"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	if f.DataDir != "/data" || f.Words != 12 || !f.SetLogJSON {
		t.Errorf("flags = %+v", f)
	}
	// Flags after the command belong to the command.
	if len(f.Args) != 3 || f.Args[0] != "generate" || f.Language != "" {
		t.Errorf("Args = %v, Language = %q", f.Args, f.Language)
	}

	if _, err := ParseFlags([]string{"--no-such-flag"}, io.Discard); err == nil {
		t.Error("ParseFlags() should reject unknown flags")
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.conf")
	os.WriteFile(path, []byte("language = italian\nwords = 18\nlog.level = info\n"), 0600)

	t.Setenv("KLINGNET_MNEMONIC_WORDS", "21")

	f, err := ParseFlags([]string{"--datadir", dir, "--config", path, "--log-level", "debug"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	cfg, err := Load(f)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Language != "italian" {
		t.Errorf("Language = %q, want italian from file", cfg.Language)
	}
	if cfg.WordCount != 21 {
		t.Errorf("WordCount = %d, want 21 from env", cfg.WordCount)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug from flags", cfg.Log.Level)
	}
	if cfg.KeystoreDir() != filepath.Join(dir, "keystore") {
		t.Errorf("KeystoreDir() = %q", cfg.KeystoreDir())
	}
}

func TestLoad_WritesDefaultConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh")
	f, err := ParseFlags([]string{"--datadir", dir}, io.Discard)
	if err != nil {
		t.Fatalf("ParseFlags() error: %v", err)
	}
	cfg, err := Load(f)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	values, err := LoadFile(cfg.ConfigFile())
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if values["language"] != "english" || values["keystore.backend"] != "badger" {
		t.Errorf("default config values = %v", values)
	}

	// The written defaults must load back into a valid config.
	fresh := Default()
	if err := ApplyFileConfig(fresh, values); err != nil {
		t.Fatalf("ApplyFileConfig() error: %v", err)
	}
	if err := Validate(fresh); err != nil {
		t.Errorf("Validate() error on written defaults: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown language", func(c *Config) { c.Language = "klingon" }},
		{"bad word count", func(c *Config) { c.WordCount = 13 }},
		{"unknown backend", func(c *Config) { c.Keystore.Backend = "leveldb" }},
		{"zero kdf memory", func(c *Config) { c.Keystore.KDFMemory = 0 }},
		{"negative burst", func(c *Config) { c.Keystore.UnlockBurst = -1 }},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"rpc port out of range", func(c *Config) { c.RPC.Port = 70000 }},
		{"empty datadir", func(c *Config) { c.DataDir = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}

	if err := Validate(nil); err == nil {
		t.Error("Validate(nil) should fail")
	}
}
