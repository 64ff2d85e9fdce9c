package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alao-ohio/roster/internal/core/domain"
)

func TestNormaliseCmd_Aliases(t *testing.T) {
	assert.Contains(t, normaliseCmd.Aliases, "normalize")
}

func TestNormaliseCmd_PrintsEachValue(t *testing.T) {
	_, cleanup := setupServices(t)
	defer cleanup()

	out, err := execute(t, "normalise", "phone", "614.555.1234", "5551234")

	require.NoError(t, err)
	assert.Equal(t, "phone:614.555.1234\nphone:5551234\n", out)
}

func TestNormaliseCmd_UnknownRule(t *testing.T) {
	_, cleanup := setupServices(t)
	defer cleanup()

	_, err := execute(t, "normalise", "zodiac", "x")

	assert.ErrorIs(t, err, domain.ErrUnknownRule)
}

func TestNormaliseCmd_RequiresValue(t *testing.T) {
	_, cleanup := setupServices(t)
	defer cleanup()

	_, err := execute(t, "normalise", "phone")

	assert.Error(t, err)
}
