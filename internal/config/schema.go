package config

// Config holds shopdex configuration.
// Stored at: ./config.yaml or ~/.shopdex/config.yaml
type Config struct {
	// PDFPath is the source document with the partner-shop table. The
	// table layout (numeric id, two-token category, name, phone, region,
	// district, address, offer columns) is the de facto wire format this
	// parser targets; upstream layout changes degrade output quality
	// silently rather than raising a structural error.
	PDFPath string    `mapstructure:"pdf_path" yaml:"pdf_path"`
	Cache   CacheCfg  `mapstructure:"cache" yaml:"cache"`
	Server  ServerCfg `mapstructure:"server" yaml:"server"`
}

// CacheCfg controls the record-list cache.
type CacheCfg struct {
	Enabled  bool `mapstructure:"enabled" yaml:"enabled"`
	TTLHours int  `mapstructure:"ttl_hours" yaml:"ttl_hours"`
}

// ServerCfg holds HTTP server settings.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`
}
