package config

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir:   DefaultDataDir(),
		Language:  "english",
		WordCount: 24,
		Keystore: KeystoreConfig{
			Backend:         "badger",
			KDFMemory:       64 * 1024, // 64 MB
			KDFIterations:   3,
			KDFParallelism:  4,
			UnlockPerMinute: 5,
			UnlockBurst:     5,
		},
		RPC: RPCConfig{
			Addr: "127.0.0.1",
			Port: 8645,
		},
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
