package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/reoring/atlasshift/internal/config"
)

func TestNew_Levels(t *testing.T) {
	cases := []struct {
		name    string
		cfg     config.LogConfig
		verbose bool
		want    zapcore.Level
	}{
		{"default", config.LogConfig{}, false, zapcore.WarnLevel},
		{"explicit", config.LogConfig{Level: "info", Format: "json"}, false, zapcore.InfoLevel},
		{"verbose wins", config.LogConfig{Level: "error", Format: "console"}, true, zapcore.DebugLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := New(tc.cfg, tc.verbose)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tc.want))
			if tc.want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tc.want-1))
			}
		})
	}
}

func TestNew_Rejects(t *testing.T) {
	_, err := New(config.LogConfig{Format: "xml"}, false)
	assert.Error(t, err)
	_, err = New(config.LogConfig{Level: "loud"}, false)
	assert.Error(t, err)
}
