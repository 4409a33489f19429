package dbtypes

// DefaultSchema is the schema used when a selector carries no qualifier.
const DefaultSchema = "public"

// Database names.
const (
	DatabasePostgres = "postgres"
	DatabaseNeo4j    = "neo4j"
)

// Language names.
const (
	LangGo = "go"
)

// SchemaFileExt is the extension of schema inventory files.
const SchemaFileExt = ".schema.yaml"

// GeneratedHeader starts every generated file.
const GeneratedHeader = "// Code generated by dbtypes. DO NOT EDIT."

// ImportPath is the import path generated code uses for this package.
const ImportPath = "github.com/nmsdosti/newquiz4-sub001"

// Generated file names.
const (
	GeneratedFileSuffix = ".gen.go"
	RegistryFileName    = "database" + GeneratedFileSuffix
)
