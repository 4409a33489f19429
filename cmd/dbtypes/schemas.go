package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/boyter/gocodewalker"
	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"github.com/nmsdosti/newquiz4-sub001/module"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Schema loading errors.
var (
	ErrNoSchemaFiles = errors.New("no .schema.yaml files found")
)

const schemaSuffix = ".schema.yaml"

// loadConfig returns the nearest config, or nil when there is none.
func loadConfig(log *zap.Logger) (*dbtypes.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting cwd: %w", err)
	}

	cfg, err := dbtypes.LoadConfig(cwd)
	if errors.Is(err, dbtypes.ErrConfigNotFound) {
		log.Debug("no config file found", zap.String("dir", cwd))

		return nil, nil //nolint:nilnil
	}

	if err != nil {
		return nil, err
	}

	log.Debug("loaded config", zap.String("dir", cfg.Dir()))

	return cfg, nil
}

// collectSchemaFiles resolves command arguments to schema files. Without
// arguments the config's schema globs are used, then the working directory.
func collectSchemaFiles(args []string, cfg *dbtypes.Config) ([]string, error) {
	if len(args) == 0 && cfg != nil && len(cfg.Schemas) > 0 {
		files, err := cfg.SchemaFiles()
		if err != nil {
			return nil, err
		}

		if len(files) == 0 {
			return nil, ErrNoSchemaFiles
		}

		return files, nil
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			files = append(files, arg)

			continue
		}

		found, err := walkDir(arg)
		if err != nil {
			return nil, err
		}

		files = append(files, found...)
	}

	if len(files) == 0 {
		return nil, ErrNoSchemaFiles
	}

	return files, nil
}

// walkDir finds schema files under root, respecting .gitignore.
func walkDir(root string) ([]string, error) {
	fileListQueue := make(chan *gocodewalker.File, 100)

	fileWalker := gocodewalker.NewFileWalker(root, fileListQueue)
	fileWalker.AllowListExtensions = []string{"yaml"}

	var walkErr error

	fileWalker.SetErrorHandler(func(e error) bool {
		walkErr = e

		return true
	})

	var (
		files []string
		wg    sync.WaitGroup
	)

	wg.Add(1)

	go func() {
		defer wg.Done()

		for f := range fileListQueue {
			if strings.HasSuffix(f.Location, schemaSuffix) {
				files = append(files, f.Location)
			}
		}
	}()

	if err := fileWalker.Start(); err != nil {
		return nil, err
	}

	wg.Wait()

	slices.Sort(files)

	return files, walkErr
}

// loadDatabase parses files concurrently and merges them into one registry.
// A file named more than once, directly or through a directory, is merged
// once.
func loadDatabase(ctx context.Context, log *zap.Logger, files []string) (*dbtypes.Database, error) {
	loader := module.NewLoader()
	mods := make([]*module.Module, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			mod, err := loader.Load(path)
			if err != nil {
				return err
			}

			mods[i] = mod

			log.Debug("loaded schema file", zap.String("path", mod.Path))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var parsed []module.ParsedFile

	seen := make(map[string]bool, len(mods))

	for _, mod := range mods {
		if seen[mod.Path] {
			log.Debug("skipping repeated schema file", zap.String("path", mod.Path))
			continue
		}

		seen[mod.Path] = true
		parsed = append(parsed, module.ParsedFile{Database: mod.Database, Path: mod.Path})
	}

	if len(parsed) == 1 {
		return parsed[0].Database, nil
	}

	db, warnings, err := module.Merge(parsed)
	if err != nil {
		return nil, fmt.Errorf("merging schema files: %w", err)
	}

	for _, w := range warnings {
		log.Warn(w.Message, zap.String("path", w.Path), zap.String("code", w.Code))
	}

	return db, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

func cfgString(cfg *dbtypes.Config, getter func(*dbtypes.Config) string) string {
	if cfg == nil {
		return ""
	}

	return getter(cfg)
}
