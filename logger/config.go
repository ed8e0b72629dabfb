package logger

import (
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/typed.go/configuration"
)

const (
	ConfigurationKeyLevel             = "logger.level"
	ConfigurationKeyDisableCaller     = "logger.disableCaller"
	ConfigurationKeyDisableStacktrace = "logger.disableStacktrace"
	ConfigurationKeyEncoding          = "logger.encoding"
	ConfigurationKeyOutputPaths       = "logger.outputPaths"
)

// Config holds the settings to configure a root logger instance.
type Config struct {
	// Level is the minimum enabled logging level.
	// The default is "info".
	Level string `json:"level" koanf:"level"`
	// DisableCaller stops annotating logs with the calling function's file name and line number.
	// By default, all logs are annotated.
	DisableCaller bool `json:"disableCaller" koanf:"disablecaller"`
	// DisableStacktrace disables automatic stacktrace capturing.
	// By default, stacktraces are captured for LevelError and above.
	DisableStacktrace bool `json:"disableStacktrace" koanf:"disablestacktrace"`
	// Encoding sets the logger's encoding. Valid values are "json" and "console".
	// The default is "console".
	Encoding string `json:"encoding" koanf:"encoding"`
	// OutputPaths is a list of URLs, file paths or stdout/stderr to write logging output to.
	// The default is ["stdout"].
	OutputPaths []string `json:"outputPaths" koanf:"outputpaths"`
}

var defaultCfg = Config{
	Level:       "info",
	Encoding:    "console",
	OutputPaths: []string{"stdout"},
}

var defaultEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.CapitalLevelEncoder,    // level in upper case
	EncodeTime:     zapcore.RFC3339TimeEncoder,     // timestamp according to RFC3339
	EncodeDuration: zapcore.SecondsDurationEncoder, // duration in seconds
	EncodeCaller:   zapcore.ShortCallerEncoder,     // caller according to package/file:line
}

// Defaults returns the default settings keyed by their configuration keys.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		ConfigurationKeyLevel:             defaultCfg.Level,
		ConfigurationKeyDisableCaller:     defaultCfg.DisableCaller,
		ConfigurationKeyDisableStacktrace: defaultCfg.DisableStacktrace,
		ConfigurationKeyEncoding:          defaultCfg.Encoding,
		ConfigurationKeyOutputPaths:       defaultCfg.OutputPaths,
	}
}

// LoadConfig reads the logger settings from the given configuration.
func LoadConfig(config *configuration.Configuration) (cfg Config, err error) {
	if err = config.Unmarshal("logger", &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) withDefaults() Config {
	if c.Level == "" {
		c.Level = defaultCfg.Level
	}
	if c.Encoding == "" {
		c.Encoding = defaultCfg.Encoding
	}
	if len(c.OutputPaths) == 0 {
		c.OutputPaths = defaultCfg.OutputPaths
	}

	return c
}
