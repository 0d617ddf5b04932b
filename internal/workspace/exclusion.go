package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/codescope/codescope/internal/errors"
	"github.com/codescope/codescope/internal/vfs"
)

const (
	wildcardChars = "*?[{"

	// anyDirPrefix also matches at the top level, so `**/*.rb` matches `a.rb` as well as `lib/a.rb`.
	anyDirPrefix = "**/"
)

// Exclusion is a single exclude pattern as supplied by configuration.
type Exclusion struct {
	fs      vfs.FS
	pattern string
	rootDir string
}

// Expansion is the result of resolving an Exclusion against the filesystem.
type Expansion struct {
	// Pattern is the pattern as supplied.
	Pattern string
	// Paths are the matched paths relative to the root, in lexical walk order.
	Paths []string
	// Warnings holds an ExpansionError for every entry that was skipped because it vanished or could not be read.
	Warnings []error
}

// NewExclusion returns an exclusion of pattern, resolved against rootDir.
func NewExclusion(fs vfs.FS, rootDir, pattern string) *Exclusion {
	return &Exclusion{
		fs:      fs,
		pattern: pattern,
		rootDir: rootDir,
	}
}

// Expand resolves the pattern against the current state of the filesystem. Nothing is cached between calls.
//
// A pattern without wildcards names a single path: a directory expands to itself and everything nested within it,
// a file to itself, and a missing path to nothing. A pattern with wildcards expands to every matching path, plus
// everything nested within matching directories. A pattern that matches nothing is not an error.
//
// Wildcards never cross a `/`, except for `**`, and they also match names starting with a dot, so `*.yml` matches
// `.codescope.yml`. A character class is negated with `[!...]`, not `[^...]`. A pattern with an
// unclosed `[` or `{`, or ending with an unescaped `\`, is rejected with a PatternError.
func (exclusion *Exclusion) Expand() (*Expansion, error) {
	pattern, err := exclusion.normalize()
	if err != nil {
		return nil, err
	}

	if err := checkSyntax(pattern); err != nil {
		return nil, NewPatternError(exclusion.pattern, err)
	}

	expansion := &Expansion{Pattern: exclusion.pattern}

	if !strings.ContainsAny(pattern, wildcardChars) {
		exclusion.walk(pattern, expansion, func(string) bool { return true })

		return expansion, nil
	}

	globs, err := compileGlobs(pattern)
	if err != nil {
		return nil, NewPatternError(exclusion.pattern, err)
	}

	exclusion.walk(literalPrefix(pattern), expansion, func(rel string) bool {
		for _, g := range globs {
			if g.Match(rel) {
				return true
			}
		}

		return false
	})

	return expansion, nil
}

func (exclusion *Exclusion) normalize() (string, error) {
	if strings.TrimSpace(exclusion.pattern) == "" {
		return "", NewPatternError(exclusion.pattern, errors.New("pattern is empty"))
	}

	rel, err := relativePath(exclusion.rootDir, exclusion.pattern)
	if err != nil {
		var pathErr InvalidPathError
		if errors.As(err, &pathErr) {
			return "", NewPatternError(exclusion.pattern, errors.New(pathErr.Reason))
		}

		return "", NewPatternError(exclusion.pattern, err)
	}

	return rel, nil
}

// walk visits base and everything beneath it. Every path accepted by match is recorded together with the whole
// subtree of an accepted directory.
func (exclusion *Exclusion) walk(base string, expansion *Expansion, match func(rel string) bool) {
	var matchedDir string

	basePath := absPath(exclusion.rootDir, base)

	err := vfs.Walk(exclusion.fs, basePath, func(path string, info os.FileInfo, err error) error {
		rel := exclusion.relative(path)

		if err != nil {
			if path == basePath && os.IsNotExist(err) {
				return nil
			}

			expansion.Warnings = append(expansion.Warnings, NewExpansionError(rel, err))

			return nil
		}

		if matchedDir != "" && (matchedDir == rootPath || strings.HasPrefix(rel, matchedDir+"/")) {
			expansion.Paths = append(expansion.Paths, rel)

			return nil
		}

		matchedDir = ""

		if !match(rel) {
			return nil
		}

		expansion.Paths = append(expansion.Paths, rel)

		if info.IsDir() {
			matchedDir = rel
		}

		return nil
	})
	if err != nil {
		expansion.Warnings = append(expansion.Warnings, NewExpansionError(base, err))
	}
}

func (exclusion *Exclusion) relative(path string) string {
	rel, err := filepath.Rel(exclusion.rootDir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}

	return filepath.ToSlash(rel)
}

func compileGlobs(pattern string) ([]glob.Glob, error) {
	patterns := []string{pattern}

	if rest, ok := strings.CutPrefix(pattern, anyDirPrefix); ok && rest != "" {
		patterns = append(patterns, rest)
	}

	globs := make([]glob.Glob, 0, len(patterns))

	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, err
		}

		globs = append(globs, g)
	}

	return globs, nil
}

// checkSyntax rejects the malformed patterns that glob.Compile accepts: an unclosed `{` and a dangling escape.
func checkSyntax(pattern string) error {
	var (
		escaped bool
		inClass bool
		depth   int
	)

	for _, char := range pattern {
		switch {
		case inClass:
			inClass = char != ']'
		case escaped:
			escaped = false
		case char == '\\':
			escaped = true
		case char == '[':
			inClass = true
		case char == '{':
			depth++
		case char == '}' && depth > 0:
			depth--
		}
	}

	switch {
	case escaped:
		return errors.Errorf("pattern ends with an unescaped %q", `\`)
	case depth > 0:
		return errors.Errorf("unclosed %q", "{")
	}

	return nil
}

// literalPrefix returns the leading segments of pattern that contain no wildcards, or the root if there are none.
func literalPrefix(pattern string) string {
	var prefix []string

	for _, segment := range strings.Split(pattern, "/") {
		if strings.ContainsAny(segment, wildcardChars) {
			break
		}

		prefix = append(prefix, segment)
	}

	if len(prefix) == 0 {
		return rootPath
	}

	return strings.Join(prefix, "/")
}
