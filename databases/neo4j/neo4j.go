// Package neo4j exports a schema registry into Neo4j as a metadata graph:
//
//	(:Schema)-[:HAS_TABLE]->(:Table)-[:HAS_COLUMN]->(:Column)
//	(:Table)-[:REFERENCES {name, columns, referencedColumns, isOneToOne}]->(:Table)
//
// Every statement is a MERGE, so exporting the same registry twice leaves the
// graph unchanged.
package neo4j

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	dbtypes "github.com/nmsdosti/newquiz4-sub001"
	"go.uber.org/zap"
)

// Sentinel errors.
var (
	// ErrInvalidConfig is returned when no URI is configured.
	ErrInvalidConfig = errors.New("neo4j: uri is required")

	// ErrNoDatabase is returned when Export is given no registry.
	ErrNoDatabase = errors.New("neo4j: no database to export")
)

// Statement is a single parameterized Cypher statement.
type Statement struct {
	Cypher string
	Params map[string]any
}

const (
	mergeSchema = `MERGE (s:Schema {name: $schema})`

	mergeTable = `MATCH (s:Schema {name: $schema})
MERGE (t:Table {schema: $schema, name: $name})
SET t.isView = $isView
MERGE (s)-[:HAS_TABLE]->(t)`

	mergeColumns = `MATCH (t:Table {schema: $schema, name: $table})
UNWIND $columns AS col
MERGE (c:Column {schema: $schema, table: $table, name: col.name})
SET c.type = col.type,
    c.position = col.position,
    c.nullable = col.nullable,
    c.hasDefault = col.hasDefault,
    c.identity = col.identity,
    c.default = col.default
MERGE (t)-[:HAS_COLUMN]->(c)`

	mergeReference = `MATCH (src:Table {schema: $schema, name: $table})
MATCH (dst:Table {schema: $referencedSchema, name: $referencedRelation})
MERGE (src)-[r:REFERENCES {name: $name}]->(dst)
SET r.columns = $columns,
    r.referencedColumns = $referencedColumns,
    r.isOneToOne = $isOneToOne`
)

// Statements builds the statements that export db, in execution order:
// schemas, then tables and views with their columns, then references.
func Statements(db *dbtypes.Database) []Statement {
	var stmts []Statement

	for _, schemaName := range db.SchemaNames() {
		schema := db.Schemas[schemaName]

		stmts = append(stmts, Statement{Cypher: mergeSchema, Params: map[string]any{"schema": schemaName}})

		relation := func(t *dbtypes.Table, isView bool) {
			stmts = append(stmts, Statement{Cypher: mergeTable, Params: map[string]any{
				"schema": schemaName,
				"name":   t.Name,
				"isView": isView,
			}})

			if len(t.Columns) == 0 {
				return
			}

			stmts = append(stmts, Statement{Cypher: mergeColumns, Params: map[string]any{
				"schema":  schemaName,
				"table":   t.Name,
				"columns": columnParams(t.Columns),
			}})
		}

		for _, name := range schema.TableNames() {
			relation(schema.Tables[name], false)
		}

		for _, name := range schema.ViewNames() {
			relation(schema.Views[name], true)
		}
	}

	for _, rel := range db.Relationships() {
		stmts = append(stmts, Statement{Cypher: mergeReference, Params: map[string]any{
			"schema":             rel.Schema,
			"table":              rel.Table,
			"name":               rel.ForeignKeyName,
			"referencedSchema":   rel.TargetSchema(rel.Schema),
			"referencedRelation": rel.ReferencedRelation,
			"columns":            stringParams(rel.Columns),
			"referencedColumns":  stringParams(rel.ReferencedColumns),
			"isOneToOne":         rel.IsOneToOne,
		}})
	}

	return stmts
}

func columnParams(cols []*dbtypes.Column) []any {
	out := make([]any, len(cols))
	for i, c := range cols {
		out[i] = map[string]any{
			"name":       c.Name,
			"type":       c.Type.String(),
			"position":   int64(i),
			"nullable":   c.Nullable,
			"hasDefault": c.HasDefault,
			"identity":   c.Identity,
			"default":    c.Default,
		}
	}

	return out
}

// stringParams converts to []any, the list type the driver sends as a Cypher list.
func stringParams(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}

// Stats summarizes the writes of an export.
type Stats struct {
	Statements           int
	NodesCreated         int
	RelationshipsCreated int
	PropertiesSet        int
}

// Exporter writes registries to a Neo4j database.
type Exporter struct {
	driver   neo4j.DriverWithContext
	database string
	log      *zap.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithDatabase selects the Neo4j database. Empty means the server default.
func WithDatabase(name string) Option {
	return func(e *Exporter) {
		e.database = name
	}
}

// WithLogger sets the logger for export progress.
func WithLogger(log *zap.Logger) Option {
	return func(e *Exporter) {
		e.log = log
	}
}

// New connects to Neo4j using cfg and verifies connectivity.
func New(ctx context.Context, cfg *dbtypes.Neo4jConfig, opts ...Option) (*Exporter, error) {
	if cfg == nil || cfg.URI == "" {
		return nil, ErrInvalidConfig
	}

	auth := neo4j.NoAuth()
	if cfg.Username != "" {
		auth = neo4j.BasicAuth(cfg.Username, cfg.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(cfg.URI, auth)
	if err != nil {
		return nil, fmt.Errorf("neo4j: failed to create driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)

		return nil, fmt.Errorf("neo4j: failed to connect: %w", err)
	}

	opts = append([]Option{WithDatabase(cfg.Database)}, opts...)

	return NewWithDriver(driver, opts...), nil
}

// NewWithDriver creates an Exporter over an existing driver.
func NewWithDriver(driver neo4j.DriverWithContext, opts ...Option) *Exporter {
	e := &Exporter{driver: driver, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Exporter) session(ctx context.Context, mode neo4j.AccessMode) neo4j.SessionWithContext {
	return e.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: mode, DatabaseName: e.database})
}

// Export writes db in a single write transaction. Either every statement
// applies or none does.
func (e *Exporter) Export(ctx context.Context, db *dbtypes.Database) (*Stats, error) {
	if db == nil {
		return nil, ErrNoDatabase
	}

	stmts := Statements(db)

	session := e.session(ctx, neo4j.AccessModeWrite)
	defer func() { _ = session.Close(ctx) }()

	out, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		stats := &Stats{}

		for _, st := range stmts {
			res, err := tx.Run(ctx, st.Cypher, st.Params)
			if err != nil {
				return nil, fmt.Errorf("neo4j: statement failed: %w", err)
			}

			summary, err := res.Consume(ctx)
			if err != nil {
				return nil, fmt.Errorf("neo4j: failed to consume result: %w", err)
			}

			counters := summary.Counters()
			stats.Statements++
			stats.NodesCreated += counters.NodesCreated()
			stats.RelationshipsCreated += counters.RelationshipsCreated()
			stats.PropertiesSet += counters.PropertiesSet()
		}

		return stats, nil
	})
	if err != nil {
		return nil, err
	}

	stats, _ := out.(*Stats)

	e.log.Info("exported registry",
		zap.Int("statements", stats.Statements),
		zap.Int("nodes_created", stats.NodesCreated),
		zap.Int("relationships_created", stats.RelationshipsCreated))

	return stats, nil
}

// Query runs a read query and returns flattened rows.
// Nodes and relationships are expanded so their properties are accessible
// as "alias.property" keys (e.g., "t.name" for RETURN t).
func (e *Exporter) Query(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error) {
	session := e.session(ctx, neo4j.AccessModeRead)
	defer func() { _ = session.Close(ctx) }()

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, fmt.Errorf("neo4j: query execution failed: %w", err)
	}

	records, err := result.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("neo4j: failed to collect results: %w", err)
	}

	rows := make([]map[string]any, len(records))
	for i, record := range records {
		rows[i] = flattenRecord(record.Keys, record.Values)
	}

	return rows, nil
}

const countTables = `MATCH (s:Schema)-[:HAS_TABLE]->(t:Table)
RETURN s.name AS schema, count(t) AS tables`

// CountTables returns the number of tables and views per schema now in the
// graph, including relations exported by earlier runs.
func (e *Exporter) CountTables(ctx context.Context) (map[string]int64, error) {
	rows, err := e.Query(ctx, countTables, nil)
	if err != nil {
		return nil, err
	}

	return tableCounts(rows), nil
}

// tableCounts reads the rows of the countTables query.
func tableCounts(rows []map[string]any) map[string]int64 {
	counts := make(map[string]int64, len(rows))

	for _, row := range rows {
		name, ok := row["schema"].(string)
		if !ok {
			continue
		}

		n, _ := row["tables"].(int64)
		counts[name] += n
	}

	return counts
}

// Close releases the driver.
func (e *Exporter) Close(ctx context.Context) error {
	if e.driver == nil {
		return nil
	}

	if err := e.driver.Close(ctx); err != nil {
		return fmt.Errorf("neo4j: failed to close driver: %w", err)
	}

	return nil
}

// flattenRecord converts a Neo4j record into a flat map.
func flattenRecord(keys []string, values []any) map[string]any {
	result := make(map[string]any)

	for i, key := range keys {
		flattenValue(result, key, values[i])
	}

	return result
}

func flattenValue(result map[string]any, key string, value any) {
	switch v := value.(type) {
	case dbtype.Node:
		for prop, propVal := range v.Props {
			result[key+"."+prop] = propVal
		}

		result[key+".labels"] = v.Labels
		result[key+".elementId"] = v.ElementId

	case dbtype.Relationship:
		for prop, propVal := range v.Props {
			result[key+"."+prop] = propVal
		}

		result[key+".type"] = v.Type
		result[key+".elementId"] = v.ElementId

	case map[string]any:
		for k, val := range v {
			result[key+"."+k] = val
		}

	default:
		result[key] = v
	}
}
