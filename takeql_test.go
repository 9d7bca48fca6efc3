package takeql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickyhof/takeql/core"
)

func TestInstanceEngine(t *testing.T) {
	engine := Open(nil).Engine()

	parsed, result, err := engine.Run("take 42\ntake 42\ntake 42\n")
	require.NoError(t, err)

	expected := core.NewProgram(core.TakeCommand{N: 42}, core.TakeCommand{N: 42}, core.TakeCommand{N: 42})
	assert.True(t, parsed.Program.Equal(expected))
	assert.Equal(t, core.Limit(42), result.Bound)
}
