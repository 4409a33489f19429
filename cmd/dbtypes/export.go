package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"github.com/nmsdosti/newquiz4-sub001/databases/neo4j"
	"github.com/urfave/cli/v3"
)

// Export command errors.
var (
	ErrNoConnectionURI = errors.New("no connection URI specified (use --uri or the neo4j section of .dbtypes.yaml)")
)

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the registry to another system",
		Commands: []*cli.Command{
			exportNeo4jCommand(),
		},
	}
}

func exportNeo4jCommand() *cli.Command {
	return &cli.Command{
		Name:      "neo4j",
		Usage:     "Write schemas, tables, columns and references into Neo4j",
		ArgsUsage: "[files or directories...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "uri",
				Usage:   "Neo4j connection URI",
				Sources: cli.EnvVars("DBTYPES_NEO4J_URI"),
			},
			&cli.StringFlag{
				Name:    "username",
				Aliases: []string{"u"},
				Usage:   "Neo4j username",
				Sources: cli.EnvVars("DBTYPES_NEO4J_USERNAME"),
			},
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Usage:   "Neo4j password",
				Sources: cli.EnvVars("DBTYPES_NEO4J_PASSWORD"),
			},
			&cli.StringFlag{
				Name:    "database",
				Aliases: []string{"d"},
				Usage:   "Neo4j database (default: server default)",
				Sources: cli.EnvVars("DBTYPES_NEO4J_DATABASE"),
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "print the Cypher statements instead of running them",
			},
		},
		Action: runExportNeo4j,
	}
}

// neo4jConfig merges flags over the config file section.
func neo4jConfig(cmd *cli.Command, cfg *dbtypes.Config) (*dbtypes.Neo4jConfig, error) {
	neo4jCfg := &dbtypes.Neo4jConfig{}
	if cfg != nil && cfg.Neo4j != nil {
		c := *cfg.Neo4j
		neo4jCfg = &c
	}

	if uri := cmd.String("uri"); uri != "" {
		neo4jCfg.URI = uri
	}

	if username := cmd.String("username"); username != "" {
		neo4jCfg.Username = username
	}

	if password := cmd.String("password"); password != "" {
		neo4jCfg.Password = password
	}

	if database := cmd.String("database"); database != "" {
		neo4jCfg.Database = database
	}

	if neo4jCfg.URI == "" {
		return nil, ErrNoConnectionURI
	}

	return neo4jCfg, nil
}

func runExportNeo4j(ctx context.Context, cmd *cli.Command) error {
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

	out := cmd.Root().Writer

	if cmd.Bool("dry-run") {
		for _, st := range neo4j.Statements(db) {
			fmt.Fprintf(out, "%s;\n// %v\n\n", st.Cypher, st.Params)
		}

		return nil
	}

	neo4jCfg, err := neo4jConfig(cmd, cfg)
	if err != nil {
		return err
	}

	exporter, err := neo4j.New(ctx, neo4jCfg, neo4j.WithLogger(log))
	if err != nil {
		return err
	}

	defer func() { _ = exporter.Close(ctx) }()

	stats, err := exporter.Export(ctx, db)
	if err != nil {
		return fmt.Errorf("exporting to %s: %w", neo4jCfg.URI, err)
	}

	fmt.Fprintf(out, "exported %d statements: %d nodes, %d relationships created, %d properties set\n",
		stats.Statements, stats.NodesCreated, stats.RelationshipsCreated, stats.PropertiesSet)

	counts, err := exporter.CountTables(ctx)
	if err != nil {
		return fmt.Errorf("counting exported tables: %w", err)
	}

	writeTableCounts(out, db, counts)

	return nil
}

// writeTableCounts prints the relations the graph holds per exported schema
// next to the number the registry declares.
func writeTableCounts(w io.Writer, db *dbtypes.Database, counts map[string]int64) {
	for _, name := range db.SchemaNames() {
		schema := db.Schemas[name]
		declared := len(schema.Tables) + len(schema.Views)
		fmt.Fprintf(w, "  %s: %d relations in graph (%d declared)\n", name, counts[name], declared)
	}

	var extra []string

	for name := range counts {
		if _, ok := db.Schemas[name]; !ok {
			extra = append(extra, name)
		}
	}

	slices.Sort(extra)

	for _, name := range extra {
		fmt.Fprintf(w, "  %s: %d relations in graph (not in registry)\n", name, counts[name])
	}
}
