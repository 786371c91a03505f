package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/token"
)

func TestRegister_DefinesClock(t *testing.T) {
	globals := interpreter.NewEnvironment(nil)
	Register(globals)

	value, err := globals.Get(token.New(token.IDENTIFIER, "clock", nil, 1))
	require.NoError(t, err)

	native, ok := value.(*interpreter.NativeFunction)
	require.True(t, ok)
	assert.Equal(t, "clock", native.Name)
	assert.Equal(t, 0, native.Arity())
}

func TestClock_ReturnsNonNegativeSeconds(t *testing.T) {
	result, err := clock(nil, nil)
	require.NoError(t, err)
	seconds, ok := result.(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, seconds, 0.0)
}
