package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/typed.go/configuration"
)

func TestRun_DefaultScenario(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"--logger.level=error"}, &out))

	require.Equal(t, strings.Join([]string{
		"IDs match",
		"Found dog with ID 1",
		"The 0-th dog has ID 1",
		"Duck 0 has ID 1",
		"Cat 1 has ID Cat-2022-04-27-01",
		"Cat 2 has ID Cat-2022-04-27-02",
		"We've got 3 printers.",
		"Found printer with serial number 2.10.2555",
	}, "\n")+"\n", out.String())
}

func TestRun_ConfigFile(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(filePath, []byte(`
[logger]
level = "error"

[zoo]
printers = ["1.1.1"]

[zoo.lookups]
printer = "1.1.1"
`), 0o600))

	var out bytes.Buffer
	require.NoError(t, run([]string{"--config", filePath}, &out))
	require.Contains(t, out.String(), "We've got 1 printers.\nFound printer with serial number 1.1.1\n")
}

func TestRun_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("TYPED_ZOO_LOOKUPS_CAT", "Garfield")

	var out bytes.Buffer
	require.NoError(t, run([]string{"--logger.level=error"}, &out))
	require.Contains(t, out.String(), "No cat with ID Garfield\n")
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, run([]string{"--unknown"}, &out))
	require.ErrorIs(t, run([]string{"--config", filepath.Join(t.TempDir(), "config.ini")}, &out), os.ErrNotExist)

	filePath := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(filePath, []byte("level=info"), 0o600))
	require.ErrorIs(t, run([]string{"--config", filePath}, &out), configuration.ErrUnknownConfigFormat)

	require.Error(t, run([]string{"--logger.level=loud"}, &out))
}

func TestRun_DumpConfig(t *testing.T) {
	t.Setenv("TYPED_ZOO_LOOKUPS_CAT", "Garfield")
	dumpFile := filepath.Join(t.TempDir(), "dumped.yaml")

	var out bytes.Buffer
	require.NoError(t, run([]string{"--logger.level=error", "--dump-config", dumpFile}, &out))
	require.Contains(t, out.String(), "No cat with ID Garfield\n")

	var rerun bytes.Buffer
	require.NoError(t, run([]string{"--config", dumpFile}, &rerun))
	require.Equal(t, out.String(), rerun.String())

	dumped, err := os.ReadFile(dumpFile)
	require.NoError(t, err)
	require.NotContains(t, string(dumped), "dump-config")
	require.Contains(t, string(dumped), "level: error")
}
