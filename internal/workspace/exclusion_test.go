package workspace_test

import (
	"os"
	"testing"

	"github.com/codescope/codescope/internal/errors"
	"github.com/codescope/codescope/internal/vfs"
	"github.com/codescope/codescope/internal/workspace"
	"github.com/codescope/codescope/test/helpers"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingFS fails to open a single directory, as if it was not readable.
type failingFS struct {
	afero.Fs
	fail string
}

func (fs *failingFS) Open(name string) (afero.File, error) {
	if name == fs.fail {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}

	return fs.Fs.Open(name)
}

var exclusionProject = []string{
	"README.md",
	"a.rb",
	"src/a.rb",
	"src/b.rb",
	"src/lib/c.rb",
	"test/a_test.rb",
	"test/fixtures/data.yml",
}

func TestExclusionExpand(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		pattern  string
		expected []string
	}{
		{"src", []string{"src", "src/a.rb", "src/b.rb", "src/lib", "src/lib/c.rb"}},
		{"src/", []string{"src", "src/a.rb", "src/b.rb", "src/lib", "src/lib/c.rb"}},
		{"./src/lib", []string{"src/lib", "src/lib/c.rb"}},
		{"src/a.rb", []string{"src/a.rb"}},
		{helpers.ProjectRoot + "/src/a.rb", []string{"src/a.rb"}},
		{"missing", nil},
		{"missing/file.rb", nil},
		{"nonexistent/**", nil},
		{"*.py", nil},
		{"**/*.rb", []string{"a.rb", "src/a.rb", "src/b.rb", "src/lib/c.rb", "test/a_test.rb"}},
		{"*.rb", []string{"a.rb"}},
		{"src/*.rb", []string{"src/a.rb", "src/b.rb"}},
		{helpers.ProjectRoot + "/src/*.rb", []string{"src/a.rb", "src/b.rb"}},
		{"test/**", []string{"test/a_test.rb", "test/fixtures", "test/fixtures/data.yml"}},
		{"src/[ab].rb", []string{"src/a.rb", "src/b.rb"}},
		{"src/[!a].rb", []string{"src/b.rb"}},
		{"src/?.rb", []string{"src/a.rb", "src/b.rb"}},
		{"*/lib", []string{"src/lib", "src/lib/c.rb"}},
		{"{src,test}/a*.rb", []string{"src/a.rb", "test/a_test.rb"}},
		{"src/[{]*", nil},
		{`src/\{a.rb`, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.pattern, func(t *testing.T) {
			t.Parallel()

			fs := helpers.CreateMemProject(t, exclusionProject...)

			expansion, err := workspace.NewExclusion(fs, helpers.ProjectRoot, tc.pattern).Expand()
			require.NoError(t, err)

			assert.Equal(t, tc.pattern, expansion.Pattern)
			assert.Equal(t, tc.expected, expansion.Paths)
			assert.Empty(t, expansion.Warnings)
		})
	}
}

func TestExclusionInvalidPattern(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		pattern string
	}{
		{"empty", ""},
		{"blank", "  "},
		{"null byte", "src/\x00*.rb"},
		{"unclosed character class", "src/[ab.rb"},
		{"unclosed brace", "src/{a.rb"},
		{"unclosed nested brace", "{src,test/{a,b}/*.rb"},
		{"dangling escape", `src/\`},
		{"outside root", "../other/*.rb"},
		{"absolute outside root", "/etc/*"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fs := helpers.CreateMemProject(t, exclusionProject...)

			expansion, err := workspace.NewExclusion(fs, helpers.ProjectRoot, tc.pattern).Expand()
			require.Error(t, err)
			assert.Nil(t, expansion)

			var patternErr workspace.PatternError
			require.True(t, errors.As(err, &patternErr), "expected PatternError, got %T", err)
			assert.Equal(t, tc.pattern, patternErr.Pattern)
			assert.Contains(t, err.Error(), "invalid exclude pattern")
		})
	}
}

func TestExclusionIsEvaluatedFresh(t *testing.T) {
	t.Parallel()

	fs := helpers.CreateMemProject(t, "src/a.rb")
	exclusion := workspace.NewExclusion(fs, helpers.ProjectRoot, "src/*.rb")

	expansion, err := exclusion.Expand()
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.rb"}, expansion.Paths)

	require.NoError(t, vfs.WriteFile(fs, helpers.ProjectRoot+"/src/b.rb", nil, 0644))

	expansion, err = exclusion.Expand()
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.rb", "src/b.rb"}, expansion.Paths)
}

func TestExclusionSkipsUnreadableEntries(t *testing.T) {
	t.Parallel()

	fs := &failingFS{
		Fs:   helpers.CreateMemProject(t, "src/a.rb", "secret/key.rb"),
		fail: helpers.ProjectRoot + "/secret",
	}

	expansion, err := workspace.NewExclusion(fs, helpers.ProjectRoot, "*/*.rb").Expand()
	require.NoError(t, err)

	assert.Equal(t, []string{"src/a.rb"}, expansion.Paths)
	require.Len(t, expansion.Warnings, 1)

	var expansionErr workspace.ExpansionError
	require.True(t, errors.As(expansion.Warnings[0], &expansionErr))
	assert.Equal(t, "secret", expansionErr.Path)
	assert.ErrorIs(t, expansion.Warnings[0], os.ErrPermission)
}
