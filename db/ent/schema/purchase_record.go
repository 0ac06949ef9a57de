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

// PurchaseRecord is one canonical invoice line item. Rows are written
// through an upsert keyed on (vendor, tx_date, item_name, amount), so
// re-extracting the same document never duplicates lines.
type PurchaseRecord struct{ ent.Schema }

func (PurchaseRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "purchase_records"},
	}
}

func (PurchaseRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("vendor").NotEmpty(),
		field.Time("tx_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("item_name").NotEmpty(),
		field.Float("quantity").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.String("unit").Default("pc"),
		field.Float("unit_price").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		// Amount may be negative: credit and return lines are kept.
		field.Float("amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("category").Default(""),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (PurchaseRecord) Indexes() []ent.Index {
	return []ent.Index{
		// Conflict target for the batch upsert.
		index.Fields("vendor", "tx_date", "item_name", "amount").Unique(),
		index.Fields("tx_date"),
		index.Fields("vendor", "tx_date"),
	}
}
