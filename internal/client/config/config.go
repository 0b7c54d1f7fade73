package config

import "time"

// Config holds runtime settings for the tapcoin CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the tap-coin REST backend.
//   - RequestTimeout: per-request timeout; no request may hang the UI.
//   - PollInterval: how often the balance ticker refetches the profile.
//   - DatabasePath: sqlite file holding the durable session slot.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	PollInterval   time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://tap-coin-backend.onrender.com"
	c.RequestTimeout = 15 * time.Second
	c.PollInterval = 10 * time.Second
	c.DatabasePath = "tapcoin.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables (a .env file is honored) and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
