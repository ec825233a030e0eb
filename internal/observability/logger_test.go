package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/atsys/trading-system/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantErr   bool
		wantLevel zapcore.Level
	}{
		{"default level", "info", false, zapcore.InfoLevel},
		{"debug level", "debug", false, zapcore.DebugLevel},
		{"warn level", "warn", false, zapcore.WarnLevel},
		{"uppercase accepted", "INFO", false, zapcore.InfoLevel},
		{"unknown level", "verbose", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewMonitoringConfig()
			cfg.LogLevel = tt.logLevel

			logger, err := NewLogger(cfg)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.logLevel)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.True(t, logger.Core().Enabled(tt.wantLevel))
			if tt.wantLevel != zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.wantLevel-1))
			}
		})
	}
}
