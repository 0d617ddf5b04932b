package engines

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"dario.cat/mergo"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"

	"github.com/codescope/codescope/internal/config"
	"github.com/codescope/codescope/internal/errors"
	"github.com/codescope/codescope/internal/filesystem"
	"github.com/codescope/codescope/internal/vfs"
	"github.com/codescope/codescope/internal/workspace"
	"github.com/codescope/codescope/pkg/log"
)

const (
	includePathsKey = "include_paths"
	excludePathsKey = "exclude_paths"
)

// ConfigFile is a configuration file written for a single engine.
type ConfigFile struct {
	Engine       Engine   `json:"engine"`
	Path         string   `json:"path"`
	IncludePaths []string `json:"include_paths"`
	ExcludePaths []string `json:"exclude_paths"`
}

// Preparer writes the configuration files of the enabled engines.
type Preparer struct {
	Registry   Registry
	Filesystem *filesystem.Filesystem
	OutputFS   vfs.FS
	OutputDir  string
}

// Prepare writes one configuration file per engine enabled in cfg and returns them sorted by engine name.
//
// Every engine works on its own clone of ws, with the engine's exclude patterns removed from it. The file holds the
// engine's `config` map with `include_paths` set to the paths of that workspace, and `exclude_paths` set to the
// project files matching the project and engine exclude patterns. Unknown engines are reported before any file is
// written.
func (preparer *Preparer) Prepare(ctx context.Context, l log.Logger, ws *workspace.Workspace, cfg *config.Config) ([]*ConfigFile, error) {
	names := cfg.EngineNames()

	engines := make([]Engine, 0, len(names))

	var errs *errors.MultiError

	for _, name := range names {
		engine, err := preparer.Registry.Lookup(name)
		if err != nil {
			errs = errs.Append(errors.New(err))

			continue
		}

		engines = append(engines, engine)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	if len(engines) == 0 {
		l.Infof("No engines enabled")

		return nil, nil
	}

	if err := preparer.OutputFS.MkdirAll(preparer.OutputDir, os.ModePerm); err != nil {
		return nil, errors.New(err)
	}

	results := xsync.NewMapOf[string, *ConfigFile]()

	errGroup, ctx := errgroup.WithContext(ctx)

	for _, engine := range engines {
		engineWS := ws.Clone()

		errGroup.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			file, err := preparer.prepare(l.WithField(log.FieldKeyEngine, engine.Name), engine, engineWS, cfg)
			if err != nil {
				return err
			}

			results.Store(engine.Name, file)

			return nil
		})
	}

	if err := errGroup.Wait(); err != nil {
		return nil, err
	}

	files := make([]*ConfigFile, 0, results.Size())

	results.Range(func(_ string, file *ConfigFile) bool {
		files = append(files, file)

		return true
	})

	sort.Slice(files, func(i, j int) bool {
		return files[i].Engine.Name < files[j].Engine.Name
	})

	return files, nil
}

func (preparer *Preparer) prepare(l log.Logger, engine Engine, ws *workspace.Workspace, cfg *config.Config) (*ConfigFile, error) {
	if engineCfg := cfg.Engine(engine.Name); engineCfg != nil {
		if err := ws.Remove(engineCfg.ExcludePaths...); err != nil {
			return nil, errors.WithStackTraceAndPrefix(err, "engine %q", engine.Name)
		}
	}

	file := &ConfigFile{
		Engine:       engine,
		Path:         filepath.Join(preparer.OutputDir, "config-"+uuid.NewString()+".json"),
		IncludePaths: ws.Paths(),
	}

	excludePaths, err := preparer.Filesystem.FilesMatching(cfg.EngineExcludePaths(engine.Name)...)
	if err != nil {
		return nil, err
	}

	file.ExcludePaths = excludePaths

	values := cfg.EngineConfig(engine.Name)

	paths := map[string]any{
		includePathsKey: nonNil(file.IncludePaths),
		excludePathsKey: nonNil(file.ExcludePaths),
	}

	if err := mergo.Merge(&values, paths, mergo.WithOverride); err != nil {
		return nil, errors.New(err)
	}

	data, err := json.Marshal(values)
	if err != nil {
		return nil, errors.New(err)
	}

	if err := vfs.WriteFile(preparer.OutputFS, file.Path, data, 0644); err != nil {
		return nil, errors.New(err)
	}

	l.Debugf("Wrote engine config %s with %d included and %d excluded paths", file.Path, len(file.IncludePaths), len(file.ExcludePaths))

	return file, nil
}

// nonNil keeps empty lists as `[]` rather than `null` in the engine config.
func nonNil(paths []string) []string {
	if paths == nil {
		return []string{}
	}

	return paths
}
