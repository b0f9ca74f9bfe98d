package cli

import (
	"errors"
	"testing"

	"github.com/ralt/pkgcheck/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckNameCommand(t *testing.T) {
	out, err := runCmd(t, "check-name", "bar_2go", "2bar", "bar-bza")
	require.Error(t, err)

	var manifestErr *models.ManifestError
	require.True(t, errors.As(err, &manifestErr))
	assert.Equal(t, models.ErrValidation, manifestErr.Type)
	assert.Equal(t, "[Validation] 2 of 3 names are invalid", err.Error())

	assert.Equal(t, "bar_2go: ok\n"+
		"2bar: must start with a lowercase letter\n"+
		"bar-bza: must not contain hyphens\n", out)
}

func TestCheckNameCommandAllValid(t *testing.T) {
	out, err := runCmd(t, "check-name", "bar")
	require.NoError(t, err)
	assert.Equal(t, "bar: ok\n", out)
}

func TestCheckEmailCommand(t *testing.T) {
	out, err := runCmd(t, "check-email", "foo@bar.com", "foo[at]bar.com", "foo<bar.com")
	require.Error(t, err)
	assert.Equal(t, "foo@bar.com: ok\nfoo[at]bar.com: ok\nfoo<bar.com: invalid\n", out)
}

func TestRulesCommand(t *testing.T) {
	out, err := runCmd(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "1. name\n2. author-emails\n")
	assert.Contains(t, out, "8. dependencies\n")
}
