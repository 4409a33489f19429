package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/nmsdosti/newquiz4-sub001/analysis"
	"github.com/nmsdosti/newquiz4-sub001/runner"
	"github.com/urfave/cli/v3"
)

// Check command errors.
var (
	ErrSchemaErrors = errors.New("schema files contain errors")
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Run structural checks over schema files",
		ArgsUsage: "[files or directories...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "output results as JSON",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "verbose output",
			},
			&cli.BoolFlag{
				Name:  "fail-fast",
				Usage: "stop on first failure",
			},
			&cli.StringFlag{
				Name:  "run",
				Usage: "run only checks matching pattern",
			},
		},
		Action: runCheck,
	}
}

type summarizer interface {
	Summary(result *runner.Result) error
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	log := loggerFrom(ctx)

	cfg, err := loadConfig(log)
	if err != nil {
		return err
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

	source := filepath.Clean(files[0])
	if len(files) > 1 {
		source = fmt.Sprintf("%d schema files", len(files))
	}

	stdout, stderr := cmd.Root().Writer, cmd.Root().ErrWriter

	var formatHandler runner.Handler

	switch {
	case cmd.Bool("json"):
		formatHandler = runner.NewFormatHandler(runner.NewJSONFormatter(stdout), stderr)
	case cmd.Bool("verbose"):
		formatHandler = runner.NewFormatHandler(runner.NewVerboseFormatter(stdout), stderr)
	case runner.IsTerminal(stdout):
		tuiHandler := runner.NewTUIHandler(stdout, stderr)
		tuiHandler.SetTrees([]runner.CheckTree{runner.BuildCheckTree(db, rules, source)})

		if err := tuiHandler.Start(); err != nil {
			return fmt.Errorf("failed to start TUI: %w", err)
		}

		formatHandler = tuiHandler
	default:
		formatHandler = runner.NewFormatHandler(runner.NewDotsFormatter(stdout), stderr)
	}

	checkRunner := runner.New(
		runner.WithRules(rules),
		runner.WithHandler(formatHandler),
		runner.WithFailFast(cmd.Bool("fail-fast")),
		runner.WithFilter(cmd.String("run")),
		runner.WithLogger(log),
	)

	result, runErr := checkRunner.Run(ctx, db, source)
	if result == nil {
		result = runner.NewResult()
		result.Finish()
	}

	if s, ok := formatHandler.(summarizer); ok {
		_ = s.Summary(result)
	}

	if runErr != nil {
		return fmt.Errorf("checking %s: %w", source, runErr)
	}

	if !result.Ok() {
		return cli.Exit("", 1)
	}

	return nil
}
