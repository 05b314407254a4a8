package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "conf.json", "-d", "data"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-d", "data"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags and positionals ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-t", "1s"},
			allowedFlags: []string{"-c", "-t"},
			want:         []string{"-c", "-t", "1s"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-l", "debug", "-l", "warn"},
			allowedFlags: []string{"-l"},
			want:         []string{"-l", "debug", "-l", "warn"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/path/short.json", ConfigPath([]string{"-c", "/path/short.json"}))
	assert.Equal(t, "/path/long.json", ConfigPath([]string{"-config", "/path/long.json"}))
	assert.Equal(t, "/path/eq.json", ConfigPath([]string{"-d", "x", "-config=/path/eq.json"}))
	assert.Equal(t, "/path/2.json", ConfigPath([]string{"-c", "/path/1.json", "-config", "/path/2.json"}))
	assert.Empty(t, ConfigPath([]string{"-x", "1"}))
}
