package logger

import (
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/typed.go/configuration"
)

func init() {
	defaultEncoderConfig.TimeKey = "" // no timestamps in tests
}

func TestNewRootLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expectRx string
	}{
		{
			name: "console",
			cfg: Config{
				Level:    "info",
				Encoding: "console",
			},
			expectRx: `INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\n`,
		},
		{
			name: "json",
			cfg: Config{
				Level:    "info",
				Encoding: "json",
			},
			expectRx: `{"level":"INFO","caller":"logger/logger_test.go:\d+","msg":"info"}\n` +
				`{"level":"WARN","caller":"logger/logger_test.go:\d+","msg":"warn"}`,
		},
		{
			name: "debug",
			cfg: Config{
				Level: "debug",
			},
			expectRx: `DEBUG\tlogger/logger_test.go:\d+\tdebug\n` +
				`INFO\tlogger/logger_test.go:\d+\tinfo\n` +
				`WARN\tlogger/logger_test.go:\d+\twarn\n`,
		},
		{
			name: "noCaller",
			cfg: Config{
				DisableCaller: true,
			},
			expectRx: "INFO\tinfo\n" +
				"WARN\twarn\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), "typed-logger-test.log")
			tt.cfg.OutputPaths = []string{logFile}

			logger, err := NewRootLogger(tt.cfg)
			require.NoError(t, err, "Unexpected error constructing logger.")

			logger.Debug("debug")
			logger.Info("info")
			logger.Warn("warn")
			_ = logger.Sync()

			assert.Regexp(t, tt.expectRx, getLogs(t, logFile), "Unexpected log output.")
		})
	}
}

func TestNewRootLoggerInvalidSettings(t *testing.T) {
	_, err := NewRootLogger(Config{Level: "loud"})
	require.Error(t, err)

	_, err = NewRootLogger(Config{Encoding: "xml"})
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.LoadDefaults(Defaults()))

	flagSet := configuration.NewUnsortedFlagSet("", flag.ContinueOnError)
	flagSet.String(ConfigurationKeyEncoding, defaultCfg.Encoding, "")
	require.NoError(t, flagSet.Parse([]string{"--logger.encoding=json"}))
	require.NoError(t, config.LoadFlagSet(flagSet))

	cfg, err := LoadConfig(config)
	require.NoError(t, err)
	require.Equal(t, Config{
		Level:       "info",
		Encoding:    "json",
		OutputPaths: []string{"stdout"},
	}, cfg)
}

func TestNewNopLogger(t *testing.T) {
	require.NotPanics(t, func() {
		NewNopLogger().Infow("discarded", "key", "value")
	})
}

func getLogs(t *testing.T, logFile string) string {
	t.Helper()

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err, "Failed to read log file.")

	return string(logs)
}
