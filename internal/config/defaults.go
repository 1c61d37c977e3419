package config

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		PDFPath: "data/shops.pdf",
		Cache: CacheCfg{
			Enabled:  true,
			TTLHours: 24,
		},
		Server: ServerCfg{
			Host: "127.0.0.1",
			Port: "8080",
		},
	}
}
