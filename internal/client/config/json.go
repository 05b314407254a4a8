package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/cobragpt/internal/flagx"
	"github.com/dmitrijs2005/cobragpt/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Every field is
// optional; absent fields leave the current value untouched.
type JsonConfig struct {
	DataDir      *string         `json:"data_dir"`
	DatabaseName *string         `json:"database_name"`
	AuthDelay    *timex.Duration `json:"auth_delay"`
	LogoutDelay  *timex.Duration `json:"logout_delay"`
	ReplyDelay   *timex.Duration `json:"reply_delay"`
	LogLevel     *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config. It does
// nothing when no file is given and panics when the file cannot be read or
// decoded.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.DatabaseName != nil {
		cfg.DatabaseName = *jc.DatabaseName
	}
	if jc.AuthDelay != nil {
		cfg.AuthDelay = jc.AuthDelay.Duration
	}
	if jc.LogoutDelay != nil {
		cfg.LogoutDelay = jc.LogoutDelay.Duration
	}
	if jc.ReplyDelay != nil {
		cfg.ReplyDelay = jc.ReplyDelay.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
