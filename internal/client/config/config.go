package config

import "time"

// Config holds runtime settings for the CobraGPT CLI.
//
// Fields:
//   - DataDir: directory holding the local database.
//   - DatabaseName: file name of the SQLite database inside DataDir.
//   - AuthDelay: simulated latency of login and registration.
//   - LogoutDelay: simulated latency of logout.
//   - ReplyDelay: simulated time the assistant takes to answer.
//   - LogLevel: one of debug, info, warn, error.
type Config struct {
	DataDir      string
	DatabaseName string
	AuthDelay    time.Duration
	LogoutDelay  time.Duration
	ReplyDelay   time.Duration
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.DatabaseName = "cobragpt.db"
	c.AuthDelay = time.Second
	c.LogoutDelay = 500 * time.Millisecond
	c.ReplyDelay = time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
