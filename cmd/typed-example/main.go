// typed-example populates collections of dogs, ducks, cats and printers and walks through them.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/dig"

	"github.com/iotaledger/typed.go/configuration"
	"github.com/iotaledger/typed.go/internal/zoo"
	"github.com/iotaledger/typed.go/logger"
)

const (
	// envPrefix is the prefix of the environment variables that override loaded settings, e.g. TYPED_LOGGER_LEVEL.
	envPrefix = "TYPED"
	// flagConfig is the path to an optional JSON, YAML or TOML configuration file.
	flagConfig = "config"
	// flagDumpConfig is the path the merged configuration is written to before the walkthrough.
	flagDumpConfig = "dump-config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "typed-example: %s\n", err)
		os.Exit(1)
	}
}

type dependencies struct {
	dig.In

	Configuration *configuration.Configuration
	Zoo           *zoo.Zoo
	Logger        *logger.Logger
}

func run(args []string, out io.Writer) error {
	// program flags select files and are not part of the stored settings
	programFlags := configuration.NewUnsortedFlagSet("typed-example", flag.ContinueOnError)
	configFile := programFlags.String(flagConfig, "", "path to a JSON, YAML or TOML configuration file")
	dumpConfigFile := programFlags.String(flagDumpConfig, "", "write the merged configuration to this JSON, YAML or TOML file")

	settingFlags := configuration.NewUnsortedFlagSet("typed-example", flag.ContinueOnError)
	settingFlags.String(logger.ConfigurationKeyLevel, "info", "the minimum enabled logging level")
	settingFlags.String(logger.ConfigurationKeyEncoding, "console", "the logger's encoding (console or json)")

	flagSet := configuration.NewUnsortedFlagSet("typed-example", flag.ContinueOnError)
	flagSet.SetOutput(out)
	flagSet.AddFlagSet(programFlags)
	flagSet.AddFlagSet(settingFlags)

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	container := dig.New()

	if err := container.Provide(func() (*configuration.Configuration, error) {
		return loadConfiguration(*configFile, settingFlags)
	}); err != nil {
		return err
	}

	if err := container.Provide(func(config *configuration.Configuration) (*logger.Logger, error) {
		cfg, err := logger.LoadConfig(config)
		if err != nil {
			return nil, err
		}

		return logger.NewRootLogger(cfg)
	}); err != nil {
		return err
	}

	if err := container.Provide(func(config *configuration.Configuration, log *logger.Logger) (*zoo.Zoo, error) {
		cfg, err := zoo.LoadConfig(config)
		if err != nil {
			return nil, err
		}

		return zoo.New(cfg, log.Named("zoo"))
	}); err != nil {
		return err
	}

	return dig.RootCause(container.Invoke(func(deps dependencies) error {
		defer func() { _ = deps.Logger.Sync() }()

		if *dumpConfigFile != "" {
			if err := deps.Configuration.StoreFile(*dumpConfigFile); err != nil {
				return err
			}
			deps.Logger.Infow("stored configuration", "path", *dumpConfigFile)
		}

		for _, line := range deps.Zoo.Run().Lines() {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return errors.Wrap(err, "unable to write report")
			}
		}

		return nil
	}))
}

// loadConfiguration merges defaults, the optional configuration file, environment variables and flags, in this order.
func loadConfiguration(filePath string, flagSet *flag.FlagSet) (*configuration.Configuration, error) {
	config := configuration.New()

	if err := config.LoadDefaults(logger.Defaults()); err != nil {
		return nil, err
	}
	if err := config.LoadDefaults(zoo.Defaults()); err != nil {
		return nil, err
	}

	if filePath != "" {
		if err := config.LoadFile(filePath); err != nil {
			return nil, err
		}
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, err
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return nil, err
	}

	return config, nil
}
