package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"github.com/nmsdosti/newquiz4-sub001/runner"
	"github.com/urfave/cli/v3"
)

// Inspect command errors.
var (
	ErrMissingSelector = errors.New("missing selector (e.g. public.users)")
)

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Print the shape a selector resolves to",
		ArgsUsage: "<selector> [files or directories...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Usage:   "shape kind (row, insert, update, enum, composite_type)",
				Value:   string(dbtypes.ShapeRow),
			},
		},
		Action: runInspect,
	}
}

func runInspect(ctx context.Context, cmd *cli.Command) error {
	log := loggerFrom(ctx)

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return ErrMissingSelector
	}

	sel, err := dbtypes.ParseSelector(args[0])
	if err != nil {
		return err
	}

	kind, err := dbtypes.ParseShapeKind(cmd.String("kind"))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	files, err := collectSchemaFiles(args[1:], cfg)
	if err != nil {
		return err
	}

	db, err := loadDatabase(ctx, log, files)
	if err != nil {
		return err
	}

	return renderShape(cmd.Root().Writer, db.Project(sel, kind), runner.DefaultStyles())
}

// renderShape prints a shape as an aligned field list. The no-match shape
// prints as "never".
func renderShape(w io.Writer, shape dbtypes.Shape, styles *runner.Styles) error {
	var b strings.Builder

	title := fmt.Sprintf("%s.%s", shape.Schema, shape.Name)
	b.WriteString(styles.Bold.Render(title) + " " + styles.Muted.Render("("+string(shape.Kind)+")") + "\n")

	switch {
	case shape.IsNever():
		b.WriteString("  " + styles.Fail.Render("never") + "\n")
	case shape.Kind == dbtypes.ShapeEnum:
		for _, v := range shape.Values {
			b.WriteString("  " + styles.Pass.Render(fmt.Sprintf("%q", v)) + "\n")
		}
	default:
		renderFields(&b, shape.Fields, styles)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func renderFields(b *strings.Builder, fields []dbtypes.Field, styles *runner.Styles) {
	nameWidth, typeWidth := 0, 0

	for _, f := range fields {
		nameWidth = max(nameWidth, len(f.Name))
		typeWidth = max(typeWidth, len(fieldType(f)))
	}

	nameCol := lipgloss.NewStyle().Width(nameWidth + 2)
	typeCol := lipgloss.NewStyle().Width(typeWidth + 2)

	for _, f := range fields {
		presence := styles.Warn.Render("required")
		if f.Optional {
			presence = styles.Muted.Render("optional")
		}

		b.WriteString("  " + nameCol.Render(f.Name) + typeCol.Render(styles.Path.Render(fieldType(f))) + presence + "\n")
	}
}

func fieldType(f dbtypes.Field) string {
	if f.Nullable {
		return f.Type.String() + " | null"
	}

	return f.Type.String()
}
