package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/metamap-cli/internal/core/domain"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "metamap-cli", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "extract")
	assert.Contains(t, commandNames, "history")
	assert.Contains(t, commandNames, "config")
	assert.Contains(t, commandNames, "version")
	assert.Contains(t, commandNames, "mcp")
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag, "verbose flag should exist")
	assert.Equal(t, "v", flag.Shorthand)
}

func TestRequireToolPath_Configured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	assert.NoError(t, requireToolPath())
}

func TestRequireToolPath_Missing(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	configStore = &mockConfigStore{data: map[string]any{}}

	err := requireToolPath()
	assert.ErrorIs(t, err, domain.ErrToolNotConfigured)
	assert.Contains(t, err.Error(), "metamap-cli config set metamap.path")
}
