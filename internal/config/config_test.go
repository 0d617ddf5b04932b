package config_test

import (
	"os"
	"testing"

	"github.com/codescope/codescope/internal/config"
	"github.com/codescope/codescope/internal/errors"
	"github.com/codescope/codescope/internal/vfs"
	"github.com/codescope/codescope/test/helpers"
	"github.com/codescope/codescope/test/helpers/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullConfig = `
include_paths:
  - lib
  - app
exclude_paths:
  - "**/vendor/**"
  - test/fixtures
engines:
  rubocop:
    enabled: true
    exclude_paths: config/**
    config:
      file: .rubocop.yml
  eslint:
    enabled: false
  duplication:
    enabled: true
`

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(fullConfig))
	require.NoError(t, err)

	assert.Equal(t, config.Patterns{"lib", "app"}, cfg.IncludePaths)
	assert.Equal(t, config.Patterns{"**/vendor/**", "test/fixtures"}, cfg.ExcludePaths)
	require.Len(t, cfg.Engines, 3)

	rubocop := cfg.Engine("rubocop")
	require.NotNil(t, rubocop)
	assert.True(t, rubocop.Enabled)
	assert.Equal(t, config.Patterns{"config/**"}, rubocop.ExcludePaths)
	assert.Equal(t, map[string]any{"file": ".rubocop.yml"}, rubocop.Config)

	assert.Equal(t, []string{"duplication", "rubocop"}, cfg.EngineNames())
	assert.Nil(t, cfg.Engine("missing"))
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"null lists", "include_paths:\nexclude_paths: ~\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.Parse([]byte(tc.data))
			require.NoError(t, err)

			assert.Empty(t, cfg.IncludePaths)
			assert.Empty(t, cfg.ExcludePaths)
			assert.Empty(t, cfg.EngineNames())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		data     string
		expected string
	}{
		{"syntax", "exclude_paths: [unclosed\n", "yaml"},
		{"unknown field", "exclude_path: vendor\n", "exclude_path"},
		{"mapping as patterns", "exclude_paths:\n  vendor: true\n", "expected a string or a list of strings"},
		{"engine is not a mapping", "engines:\n  rubocop: yes\n", "yaml"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := config.Parse([]byte(tc.data))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tc.expected)
		})
	}
}

func TestEngineConfigReturnsCopy(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(fullConfig))
	require.NoError(t, err)

	values := cfg.EngineConfig("rubocop")
	values["include_paths"] = []string{"lib"}

	assert.NotContains(t, cfg.Engine("rubocop").Config, "include_paths")
	assert.NotNil(t, cfg.EngineConfig("eslint"))
	assert.NotNil(t, cfg.EngineConfig("missing"))
}

func TestEngineExcludePaths(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(fullConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"**/vendor/**", "test/fixtures", "config/**"}, cfg.EngineExcludePaths("rubocop"))
	assert.Equal(t, []string{"**/vendor/**", "test/fixtures"}, cfg.EngineExcludePaths("duplication"))

	var empty *config.Config
	assert.Empty(t, empty.EngineExcludePaths("rubocop"))
	assert.Empty(t, empty.EngineNames())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	fs := helpers.CreateMemProject(t, "lib/a.rb")
	path := helpers.ProjectRoot + "/" + config.DefaultConfigFile
	require.NoError(t, vfs.WriteFile(fs, path, []byte(fullConfig), 0644))

	cfg, err := config.Load(logger.CreateLogger(), fs, helpers.ProjectRoot, "")
	require.NoError(t, err)

	assert.Equal(t, path, cfg.SourceFile)
	assert.Equal(t, config.Patterns{"lib", "app"}, cfg.IncludePaths)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Parallel()

	fs := helpers.CreateMemProject(t, "lib/a.rb")

	cfg, err := config.Load(logger.CreateLogger(), fs, helpers.ProjectRoot, "")
	require.NoError(t, err)

	assert.Empty(t, cfg.SourceFile)
	assert.Empty(t, cfg.ExcludePaths)
	assert.Empty(t, cfg.EngineNames())
}

func TestLoadExplicitFile(t *testing.T) {
	t.Parallel()

	fs := helpers.CreateMemProject(t, "lib/a.rb", "ci/")
	require.NoError(t, vfs.WriteFile(fs, helpers.ProjectRoot+"/ci/codescope.yml", []byte("exclude_paths: lib\n"), 0644))

	cfg, err := config.Load(logger.CreateLogger(), fs, helpers.ProjectRoot, "ci/codescope.yml")
	require.NoError(t, err)

	assert.Equal(t, helpers.ProjectRoot+"/ci/codescope.yml", cfg.SourceFile)
	assert.Equal(t, config.Patterns{"lib"}, cfg.ExcludePaths)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Parallel()

	fs := helpers.CreateMemProject(t, "lib/a.rb")

	_, err := config.Load(logger.CreateLogger(), fs, helpers.ProjectRoot, "missing.yml")
	require.Error(t, err)

	var configErr config.ConfigError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, helpers.ProjectRoot+"/missing.yml", configErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidFile(t *testing.T) {
	t.Parallel()

	fs := helpers.CreateMemProject(t, "lib/a.rb")
	path := helpers.ProjectRoot + "/" + config.DefaultConfigFile
	require.NoError(t, vfs.WriteFile(fs, path, []byte("engines: [\n"), 0644))

	_, err := config.Load(logger.CreateLogger(), fs, helpers.ProjectRoot, "")
	require.Error(t, err)

	var configErr config.ConfigError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, path, configErr.Path)
	assert.Contains(t, err.Error(), `invalid configuration file "`+path+`"`)
}
