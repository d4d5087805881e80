/*
File    : apscript/cli/root_test.go
Package : cli
*/
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoot_RegistersEveryCommand(t *testing.T) {
	root := Root()
	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"run", "validate", "repl", "serve", "version"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	noColorOpt = true
	seedOpt = 99
	stepsOpt = 7
	defer func() { noColorOpt, seedOpt, stepsOpt = false, 0, 0 }()

	require := assert.New(t)
	require.NoError(loadConfig())
	require.False(globalCfg.Color)
	require.EqualValues(99, globalCfg.Seed)
	require.Equal(7, globalCfg.StepBudget)
}
