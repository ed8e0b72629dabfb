package zoo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/typed.go/configuration"
	"github.com/iotaledger/typed.go/internal/zoo"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config := configuration.New()
	require.NoError(t, config.LoadDefaults(zoo.Defaults()))

	cfg, err := zoo.LoadConfig(config)
	require.NoError(t, err)
	require.Equal(t, zoo.DefaultConfig(), cfg)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "zoo.yaml")
	require.NoError(t, os.WriteFile(filePath, []byte("zoo:\n  dogs: [5, 6, 7]\n  lookups:\n    cat: Felix\n"), 0o600))

	config := configuration.New()
	require.NoError(t, config.LoadDefaults(zoo.Defaults()))
	require.NoError(t, config.LoadFile(filePath))

	cfg, err := zoo.LoadConfig(config)
	require.NoError(t, err)
	require.Equal(t, []uint64{5, 6, 7}, cfg.Dogs)
	require.Equal(t, "Felix", cfg.Lookups.Cat)
	require.Equal(t, zoo.DefaultConfig().Printers, cfg.Printers)
}
