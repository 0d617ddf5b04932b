package format_test

import (
	"bytes"
	"testing"

	"github.com/codescope/codescope/cli/format"
	"github.com/codescope/codescope/internal/engines"
	"github.com/codescope/codescope/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configFiles = []*engines.ConfigFile{
	{
		Engine:       engines.Engine{Name: "rubocop", Image: "codescope/rubocop"},
		Path:         "/tmp/config-1.json",
		IncludePaths: []string{"lib/a.rb", "lib/b.rb"},
		ExcludePaths: []string{"vendor/c.rb"},
	},
}

func TestResolve(t *testing.T) {
	t.Parallel()

	formatter, err := format.Resolve("text")
	require.NoError(t, err)
	assert.IsType(t, &format.TextFormatter{}, formatter)

	formatter, err = format.Resolve("json")
	require.NoError(t, err)
	assert.IsType(t, &format.JSONFormatter{}, formatter)
}

func TestResolveInvalidFormatter(t *testing.T) {
	t.Parallel()

	formatter, err := format.Resolve("xml")
	require.Error(t, err)
	assert.Nil(t, formatter)

	var formatterErr format.InvalidFormatterError
	require.True(t, errors.As(err, &formatterErr))
	assert.Equal(t, "xml", formatterErr.Name)
	assert.Equal(t, `"xml" is not a valid formatter, valid options are: json, text`, err.Error())
	assert.Equal(t, 1, errors.ExitCode(err, 0))
}

func TestTextFormatter(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	formatter := &format.TextFormatter{}

	require.NoError(t, formatter.Paths(&out, []string{"lib/a.rb", "lib/b.rb"}))
	assert.Equal(t, "lib/a.rb\nlib/b.rb\n", out.String())

	out.Reset()

	require.NoError(t, formatter.ConfigFiles(&out, configFiles))
	assert.Equal(t, "rubocop (codescope/rubocop): /tmp/config-1.json, 2 included, 1 excluded\n", out.String())
}

func TestJSONFormatter(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	formatter := &format.JSONFormatter{}

	require.NoError(t, formatter.Paths(&out, nil))
	assert.JSONEq(t, `{"paths": []}`, out.String())

	out.Reset()

	require.NoError(t, formatter.Paths(&out, []string{"lib/a.rb"}))
	assert.JSONEq(t, `{"paths": ["lib/a.rb"]}`, out.String())

	out.Reset()

	require.NoError(t, formatter.ConfigFiles(&out, configFiles))
	assert.JSONEq(t, `{"engines": [{
		"engine": {"name": "rubocop", "image": "codescope/rubocop"},
		"path": "/tmp/config-1.json",
		"include_paths": ["lib/a.rb", "lib/b.rb"],
		"exclude_paths": ["vendor/c.rb"]
	}]}`, out.String())
}
