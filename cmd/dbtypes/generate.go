package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"github.com/nmsdosti/newquiz4-sub001/analysis"
	"github.com/nmsdosti/newquiz4-sub001/language"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"gen"},
		Usage:     "Generate typed records from schema files",
		ArgsUsage: "[files or directories...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "target language (go)",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output directory (default: directory of the first schema file)",
			},
			&cli.StringFlag{
				Name:    "package",
				Aliases: []string{"p"},
				Usage:   "Go package name (default: inferred from the output directory)",
			},
			&cli.StringFlag{
				Name:  "file",
				Usage: "file name for a single-schema registry (default: <schema>.gen.go)",
			},
		},
		Action: runGenerate,
	}
}

func runGenerate(ctx context.Context, cmd *cli.Command) error {
	log := loggerFrom(ctx)

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	langName := firstNonEmpty(cmd.String("lang"), cfgString(cfg, func(c *dbtypes.Config) string { return c.Generate.Lang }), dbtypes.LangGo)
	packageName := firstNonEmpty(cmd.String("package"), cfgString(cfg, func(c *dbtypes.Config) string { return c.Generate.Package }))
	fileName := firstNonEmpty(cmd.String("file"), cfgString(cfg, func(c *dbtypes.Config) string { return c.Generate.File }))

	outputDir := cmd.String("out")
	if outputDir == "" && cfg != nil && cfg.Generate.Out != "" {
		outputDir = cfg.Resolve(cfg.Generate.Out)
	}

	lang := language.Get(langName)
	if lang == nil {
		return fmt.Errorf("%w: %s (available: %v)", dbtypes.ErrUnknownLanguage, langName, language.RegisteredLanguages())
	}

	files, err := collectSchemaFiles(cmd.Args().Slice(), cfg)
	if err != nil {
		return err
	}

	db, err := loadDatabase(ctx, log, files)
	if err != nil {
		return err
	}

	rules := analysis.DefaultRules()
	if cfg != nil {
		if rules, err = analysis.RulesFromConfig(cfg.Check); err != nil {
			return err
		}
	}

	report := analysis.Check(db, analysis.WithRules(rules))
	if report.HasErrors() {
		stderr := cmd.Root().ErrWriter
		for _, diag := range report.Errors() {
			fmt.Fprintln(stderr, diag)
		}

		return ErrSchemaErrors
	}

	if outputDir == "" {
		outputDir = filepath.Dir(files[0])
	}

	generated, err := lang.Generate(&language.GenerateContext{
		Database:    db,
		OutputDir:   outputDir,
		PackageName: packageName,
		FileName:    fileName,
		Logger:      log,
	})
	if err != nil {
		return fmt.Errorf("generating code for %v: %w", files, err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil { //nolint:gosec // G301: generated sources are world-readable
		return fmt.Errorf("creating %s: %w", outputDir, err)
	}

	names := make([]string, 0, len(generated))
	for name := range generated {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		outPath := filepath.Join(outputDir, name)

		err := os.WriteFile(outPath, generated[name], 0o644) //nolint:gosec // G306: output file permissions are fine
		if err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		log.Debug("wrote generated file", zap.String("path", outPath), zap.Int("bytes", len(generated[name])))
		fmt.Fprintf(cmd.Root().Writer, "wrote %s\n", outPath)
	}

	return nil
}
