package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ralt/pkgcheck/internal/models"
	"github.com/ralt/pkgcheck/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var validArgs = []string{
	"validate",
	"--filename", "foo",
	"--name", "bar_2go",
	"--version", "0.0.0",
	"--package-format", "1",
	"--description", "pdesc",
	"--license", "BSD",
	"--maintainer", "John Foo <foo@bar.com>",
}

func TestValidateCommand(t *testing.T) {
	out, err := runCmd(t, validArgs...)
	require.NoError(t, err)
	assert.Equal(t, "bar_2go@0.0.0: ok\n", out)
}

func TestValidateCommandReportsAllProblems(t *testing.T) {
	args := append([]string{}, validArgs...)
	args = append(args,
		"--name", "BAR",
		"--author", "One <foo bar.com>",
		"--author", "Two",
	)

	out, err := runCmd(t, args...)
	require.Error(t, err)

	var manifestErr *models.ManifestError
	require.True(t, errors.As(err, &manifestErr))
	assert.Equal(t, models.ErrValidation, manifestErr.Type)
	assert.True(t, errors.Is(err, validator.ErrInvalidPackage))

	assert.Contains(t, out, "BAR@0.0.0: 2 problems")
	assert.Contains(t, out, `package name "BAR" must not contain uppercase letters`)
	assert.Contains(t, out, `author "One" has an invalid email "foo bar.com"`)
}

func TestValidateCommandYAMLOutput(t *testing.T) {
	args := append([]string{}, validArgs...)
	args = append(args, "--output", "yaml", "--run-depend", "bar_2go")

	out, err := runCmd(t, args...)
	require.Error(t, err)

	var report Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, "bar_2go@0.0.0", report.Package)
	assert.Equal(t, "foo", report.Filename)
	assert.False(t, report.Valid)
	assert.Equal(t, []string{`run_depends entry "bar_2go" must not refer to the package itself`}, report.Problems)
}

func TestValidateCommandUnknownField(t *testing.T) {
	args := append([]string{}, validArgs...)
	args = append(args, "--field", "unknownattribute=42")

	_, err := runCmd(t, args...)
	require.Error(t, err)

	var manifestErr *models.ManifestError
	require.True(t, errors.As(err, &manifestErr))
	assert.Equal(t, models.ErrConstruction, manifestErr.Type)
	assert.True(t, errors.Is(err, models.ErrUnknownField))
}

func TestValidateCommandRawFields(t *testing.T) {
	_, err := runCmd(t,
		"validate",
		"--field", "name=bar",
		"--field", "version=1.0.0",
		"--field", "description=raw",
		"--license", "MIT",
		"--maintainer", "Jane <jane[at]example.com>",
	)
	require.NoError(t, err)
}

func TestValidateCommandInvalidOutput(t *testing.T) {
	args := append([]string{}, validArgs...)
	args = append(args, "--output", "xml")

	_, err := runCmd(t, args...)

	var manifestErr *models.ManifestError
	require.True(t, errors.As(err, &manifestErr))
	assert.Equal(t, models.ErrInvalidConfig, manifestErr.Type)
}

func TestValidateCommandBadDependency(t *testing.T) {
	args := append([]string{}, validArgs...)
	args = append(args, "--build-depend", "catkin>=")

	_, err := runCmd(t, args...)

	var manifestErr *models.ManifestError
	require.True(t, errors.As(err, &manifestErr))
	assert.Equal(t, models.ErrConstruction, manifestErr.Type)
}

func TestBuildPackage(t *testing.T) {
	config := &models.CheckConfig{
		Filename:     "pkg/package.xml",
		Name:         "bar",
		Fields:       map[string]string{"name": "ignored", "version_abi": "pabi"},
		Maintainers:  []string{"John Foo <foo@bar.com>"},
		Authors:      []string{"Jane"},
		Licenses:     []string{"BSD", "MIT"},
		URLs:         []string{"https://example.com", "bugtracker=https://example.com/issues"},
		BuildDepends: []string{"catkin >= 0.5, < 1.0"},
		Conflicts:    []string{"old_bar"},
	}

	pkg, err := buildPackage(config)
	require.NoError(t, err)

	assert.Equal(t, "pkg/package.xml", pkg.Filename)
	assert.Equal(t, "bar", pkg.Name)
	assert.Equal(t, "pabi", pkg.VersionABI)
	assert.Equal(t, []models.Contact{models.Person{Name: "John Foo", Email: "foo@bar.com"}}, pkg.Maintainers)
	assert.Equal(t, []models.Contact{models.Person{Name: "Jane"}}, pkg.Authors)
	assert.Equal(t, []string{"BSD", "MIT"}, pkg.Licenses)
	assert.Equal(t, []models.URL{
		{URL: "https://example.com", Type: "website"},
		{URL: "https://example.com/issues", Type: "bugtracker"},
	}, pkg.URLs)
	require.Len(t, pkg.BuildDepends, 1)
	assert.Equal(t, &models.Dependency{Name: "catkin", VersionGTE: "0.5", VersionLT: "1.0"}, pkg.BuildDepends[0])
	assert.Equal(t, "old_bar", pkg.Conflicts[0].GetName())
	assert.Equal(t, []models.Requirement{}, pkg.RunDepends)
}
