// Command dbtypes generates typed Go records from schema inventories and
// checks inventories for structural problems.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	// Register languages and dialects.
	_ "github.com/nmsdosti/newquiz4-sub001/dialects/sql"
	_ "github.com/nmsdosti/newquiz4-sub001/language/go"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "dbtypes",
		Usage: "Typed records for relational schemas",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("DBTYPES_DEBUG"),
			},
		},
		Before: setupLogger,
		After: func(ctx context.Context, _ *cli.Command) error {
			_ = loggerFrom(ctx).Sync()

			return nil
		},
		Commands: []*cli.Command{
			generateCommand(),
			checkCommand(),
			importCommand(),
			inspectCommand(),
			exportCommand(),
		},
	}
}

type loggerKey struct{}

// setupLogger builds a development logger on stderr and stores it in the
// command context.
func setupLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	if cmd.Bool("debug") {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return ctx, fmt.Errorf("building logger: %w", err)
	}

	return context.WithValue(ctx, loggerKey{}, logger), nil
}

func loggerFrom(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return l
	}

	return zap.NewNop()
}
