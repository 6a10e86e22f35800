package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()

	names := make([]string, 0, 3)
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "ingest")
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "categorize")

	flag := root.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
}

func TestIngestRequiresArgs(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"ingest"})
	err := root.Execute()
	require.Error(t, err)
}
