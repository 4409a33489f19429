package dbtypes_test

import (
	dbtypes "github.com/nmsdosti/newquiz4-sub001"
)

// fixtureDatabase returns a small two-schema registry covering tables, a
// view, an enum and a composite type.
func fixtureDatabase() *dbtypes.Database {
	authors := &dbtypes.Table{
		Name: "authors",
		Columns: []*dbtypes.Column{
			{Name: "id", Type: dbtypes.TypeInteger, Identity: true},
			{Name: "name", Type: dbtypes.TypeText},
			{Name: "bio", Type: dbtypes.TypeText, Nullable: true},
			{Name: "created_at", Type: dbtypes.TypeText, HasDefault: true, Default: "now()"},
		},
	}

	posts := &dbtypes.Table{
		Name: "posts",
		Columns: []*dbtypes.Column{
			{Name: "id", Type: dbtypes.TypeText, HasDefault: true},
			{Name: "author_id", Type: dbtypes.TypeInteger},
			{Name: "title", Type: dbtypes.TypeText},
			{Name: "status", Type: dbtypes.NamedType("post_status"), HasDefault: true},
			{Name: "tags", Type: dbtypes.ArrayOf(dbtypes.TypeText), Nullable: true},
		},
		Relationships: []*dbtypes.Relationship{
			{
				ForeignKeyName:     "posts_author_id_fkey",
				Columns:            []string{"author_id"},
				ReferencedRelation: "authors",
				ReferencedColumns:  []string{"id"},
			},
		},
	}

	return &dbtypes.Database{
		Schemas: map[string]*dbtypes.Schema{
			"public": {
				Name:   "public",
				Tables: map[string]*dbtypes.Table{"authors": authors, "posts": posts},
				Views: map[string]*dbtypes.Table{
					"post_counts": {
						Name: "post_counts",
						Columns: []*dbtypes.Column{
							{Name: "author_id", Type: dbtypes.TypeInteger, Nullable: true},
							{Name: "total", Type: dbtypes.TypeInteger, Nullable: true},
						},
					},
				},
				Enums: map[string]*dbtypes.Enum{
					"post_status": {Name: "post_status", Values: []string{"draft", "published"}},
				},
				CompositeTypes: map[string]*dbtypes.CompositeType{
					"address": {Name: "address", Attributes: []*dbtypes.Attribute{
						{Name: "street", Type: dbtypes.TypeText},
						{Name: "zip", Type: dbtypes.TypeText, Nullable: true},
					}},
				},
			},
			"audit": {
				Name: "audit",
				Tables: map[string]*dbtypes.Table{
					"events": {
						Name: "events",
						Columns: []*dbtypes.Column{
							{Name: "id", Type: dbtypes.TypeInteger, Identity: true},
							{Name: "payload", Type: dbtypes.TypeJSON},
						},
					},
				},
			},
		},
	}
}
