package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	flag "github.com/spf13/pflag"
)

var (
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = errors.New("unknown config file format")
)

// Configuration holds config parameters from several sources (defaults, file, env vars, flags). Sources loaded later
// overwrite the values of sources loaded earlier.
type Configuration struct {
	config *koanf.Koanf
}

// New returns a new configuration.
func New() *Configuration {
	return &Configuration{
		config: koanf.New("."),
	}
}

// LoadDefaults merges the given nested or dot-delimited default values into the loaded config.
func (c *Configuration) LoadDefaults(defaults map[string]interface{}) error {
	lowerDefaults := make(map[string]interface{}, len(defaults))
	for key, value := range defaults {
		lowerDefaults[strings.ToLower(key)] = value
	}

	return c.config.Load(confmap.Provider(lowerDefaults, "."), nil)
}

// LoadFile loads parameters from a JSON, YAML or TOML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return errors.Wrapf(err, "unable to access config file %s", filePath)
	}

	parser, err := parserFor(filePath)
	if err != nil {
		return err
	}

	if err := c.config.Load(file.Provider(filePath), parser); err != nil {
		return errors.Wrapf(err, "unable to load config file %s", filePath)
	}

	return nil
}

// StoreFile stores the current config to a JSON, YAML or TOML file.
func (c *Configuration) StoreFile(filePath string) error {
	parser, err := parserFor(filePath)
	if err != nil {
		return err
	}

	data, err := parser.Marshal(c.config.Raw())
	if err != nil {
		return errors.Wrap(err, "unable to marshal config file")
	}

	if err := os.WriteFile(filePath, data, 0o600); err != nil {
		return errors.Wrap(err, "unable to save config file")
	}

	return nil
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including
// default values and merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
// If not given via command line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars, an underscore in the remaining name separates the levels of the key.
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}

// Unmarshal decodes the subtree at the given path into the struct pointed to by target, using the "koanf" field tags.
func (c *Configuration) Unmarshal(path string, target interface{}) error {
	if err := c.config.Unmarshal(strings.ToLower(path), target); err != nil {
		return errors.Wrapf(err, "unable to unmarshal config path %q", path)
	}

	return nil
}

func parserFor(filePath string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return &JSONLowerParser{prefix: "", indent: "  "}, nil
	case ".yaml", ".yml":
		return &YAMLLowerParser{}, nil
	case ".toml":
		return &TOMLLowerParser{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownConfigFormat, "unsupported extension of %s", filePath)
	}
}
