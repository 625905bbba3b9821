package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLevel(t *testing.T) {
	t.Run("ParseLevel", func(t *testing.T) {
		cases := map[string]Level{
			"info":  LevelInfo,
			"InFo":  LevelInfo,
			"INFO":  LevelInfo,
			"warn":  LevelWarn,
			"error": LevelError,
			"debug": LevelDebug,
			"":      LevelInfo,
		}

		for in, want := range cases {
			t.Run(in, func(t *testing.T) {
				got, err := ParseLevel(in)
				require.NoError(t, err)
				require.Equal(t, want, got)
			})
		}
	})

	t.Run("ParseLevel invalid", func(t *testing.T) {
		_, err := ParseLevel("noisy")
		require.Error(t, err)
	})

	t.Run("toZapCoreLevel", func(t *testing.T) {
		cases := map[string]zapcore.Level{
			"info":  zapcore.InfoLevel,
			"warn":  zapcore.WarnLevel,
			"error": zapcore.ErrorLevel,
			"debug": zapcore.DebugLevel,
			"":      zapcore.InfoLevel,
		}

		for in, want := range cases {
			t.Run(in, func(t *testing.T) {
				got, err := Level(in).toZapCoreLevel()
				require.NoError(t, err)
				require.Equal(t, want, got)
			})
		}
	})
}

func TestConfigValidate(t *testing.T) {
	c := &Config{}
	require.NoError(t, c.Validate())

	c = &Config{Level: "verbose"}
	require.Error(t, c.Validate())

	c = &Config{}
	c.MaxSize = -1
	require.Error(t, c.Validate())
}
