package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want zapcore.Level
	}{
		{"debug json", Config{Level: "debug", Format: "json"}, zapcore.DebugLevel},
		{"warn console", Config{Level: "warn", Format: "console"}, zapcore.WarnLevel},
		{"bad level falls back", Config{Level: "loud"}, zapcore.InfoLevel},
		{"development", Config{Level: "error", Development: true}, zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.want-1))
			}
		})
	}
}
