package zoo

import (
	"github.com/iotaledger/typed.go/configuration"
)

const (
	ConfigurationKeyDogs           = "zoo.dogs"
	ConfigurationKeyDucks          = "zoo.ducks"
	ConfigurationKeyCats           = "zoo.cats"
	ConfigurationKeyPrinters       = "zoo.printers"
	ConfigurationKeyLookupsDog     = "zoo.lookups.dog"
	ConfigurationKeyLookupsCat     = "zoo.lookups.cat"
	ConfigurationKeyLookupsPrinter = "zoo.lookups.printer"
)

// Config lists the entities a Zoo is populated with, in insertion order, and the ids the walkthrough looks up.
type Config struct {
	Dogs     []uint64 `koanf:"dogs"`
	Ducks    []uint64 `koanf:"ducks"`
	Cats     []string `koanf:"cats"`
	// Printers are given as serial numbers in "version.region.facility" notation.
	Printers []string `koanf:"printers"`
	Lookups  Lookups  `koanf:"lookups"`
}

// Lookups are the ids searched for by Zoo.Run.
type Lookups struct {
	Dog     uint64 `koanf:"dog"`
	Cat     string `koanf:"cat"`
	Printer string `koanf:"printer"`
}

// DefaultConfig returns the classic scenario: two dogs, one duck, two cats and three printers.
func DefaultConfig() Config {
	return Config{
		Dogs:     []uint64{1, 2},
		Ducks:    []uint64{1},
		Cats:     []string{"Cat-2022-04-27-01", "Cat-2022-04-27-02"},
		Printers: []string{"2.10.2553", "2.10.2555", "2.10.2753"},
		Lookups: Lookups{
			Dog:     1,
			Cat:     "Cat-2022-04-27-02",
			Printer: "2.10.2555",
		},
	}
}

// Defaults returns DefaultConfig keyed by the configuration keys.
func Defaults() map[string]interface{} {
	cfg := DefaultConfig()

	return map[string]interface{}{
		ConfigurationKeyDogs:           cfg.Dogs,
		ConfigurationKeyDucks:          cfg.Ducks,
		ConfigurationKeyCats:           cfg.Cats,
		ConfigurationKeyPrinters:       cfg.Printers,
		ConfigurationKeyLookupsDog:     cfg.Lookups.Dog,
		ConfigurationKeyLookupsCat:     cfg.Lookups.Cat,
		ConfigurationKeyLookupsPrinter: cfg.Lookups.Printer,
	}
}

// LoadConfig reads the zoo settings from the given configuration.
func LoadConfig(config *configuration.Configuration) (cfg Config, err error) {
	if err = config.Unmarshal("zoo", &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
