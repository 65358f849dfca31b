package logger_test

import (
	"testing"

	"github.com/MikeRez0/shopx/internal/adapter/config"
	"github.com/MikeRez0/shopx/internal/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		conf     config.App
		enabled  zapcore.Level
		disabled zapcore.Level
		expErr   bool
	}{
		{name: "Develop debug", conf: config.App{LogLevel: "debug", Mode: config.AppModeDevelop},
			enabled: zapcore.DebugLevel, disabled: zapcore.DebugLevel - 1},
		{name: "Production warn", conf: config.App{LogLevel: "warn", Mode: config.AppModeProduction},
			enabled: zapcore.WarnLevel, disabled: zapcore.InfoLevel},
		{name: "Level defaults to info", conf: config.App{Mode: config.AppModeProduction},
			enabled: zapcore.InfoLevel, disabled: zapcore.DebugLevel},
		{name: "Unknown level", conf: config.App{LogLevel: "loud"}, expErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l, err := logger.NewLogger(&test.conf)
			if test.expErr {
				assert.Error(t, err)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(test.enabled))
			assert.False(t, l.Core().Enabled(test.disabled))
		})
	}
}
