package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"github.com/nmsdosti/newquiz4-sub001/analysis"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// Import command errors.
var (
	ErrMissingDDL = errors.New("missing DDL file")
)

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Convert SQL DDL into a schema file",
		ArgsUsage: "<file.sql>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dialect",
				Aliases: []string{"d"},
				Usage:   "DDL dialect",
				Value:   dbtypes.DatabasePostgres,
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "write the schema file here instead of stdout",
			},
		},
		Action: runImport,
	}
}

func runImport(ctx context.Context, cmd *cli.Command) error {
	log := loggerFrom(ctx)

	if cmd.Args().Len() != 1 {
		return ErrMissingDDL
	}

	dialect, err := dbtypes.GetDialect(cmd.String("dialect"))
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, dbtypes.RegisteredDialects())
	}

	path := cmd.Args().First()

	src, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	db, err := dialect.Import(src)
	if err != nil {
		return fmt.Errorf("importing %s: %w", path, err)
	}

	log.Debug("imported DDL",
		zap.String("path", path), zap.String("dialect", dialect.Name()), zap.Int("relationships", len(db.Relationships())))

	var buf bytes.Buffer
	if err := analysis.WriteSchema(&buf, db); err != nil {
		return fmt.Errorf("encoding schema: %w", err)
	}

	out := cmd.String("out")
	if out == "" {
		_, err := cmd.Root().Writer.Write(buf.Bytes())

		return err
	}

	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil { //nolint:gosec // G306: output file permissions are fine
		return fmt.Errorf("writing %s: %w", out, err)
	}

	fmt.Fprintf(cmd.Root().Writer, "wrote %s\n", out)

	return nil
}
