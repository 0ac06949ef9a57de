package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// SalesRecord is one POS sales line attributed to its report month. Inserts
// skip rows whose composite key already exists; sales exports are re-imported
// whole.
type SalesRecord struct{ ent.Schema }

func (SalesRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sales_records"},
	}
}

func (SalesRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.Time("sale_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("code").NotEmpty(),
		field.String("item_name").NotEmpty(),
		field.String("category").Default(""),
		field.Float("quantity").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("price").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("net_total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (SalesRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sale_date", "code", "item_name", "category").Unique(),
		index.Fields("sale_date"),
	}
}
