package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alao-ohio/roster/internal/core/domain"
)

func TestColumnsCmd(t *testing.T) {
	svc, cleanup := setupServices(t)
	defer cleanup()

	out, err := execute(t, "columns")

	require.NoError(t, err)
	assert.Contains(t, out, "41 columns dropped (strict)")
	assert.Contains(t, out, "  Password\n")
	assert.Contains(t, out, "  Membership History (2010 & prior)\n")

	svc.settings.settings.Strict = false
	svc.settings.settings.DropColumns = []string{"Notes"}

	out, err = execute(t, "columns")
	require.NoError(t, err)
	assert.Contains(t, out, "1 columns dropped (lenient)")
	assert.Len(t, domain.DefaultDropColumns(), 41)
}
