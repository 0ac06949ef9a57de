package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/bistrodata/invoice-tracker/constants"
	"github.com/bistrodata/invoice-tracker/db/ent/schema/utils"

	"github.com/google/uuid"
)

// ExtractJob is the audit row for one extraction session: which strategy
// handled the file, how it ended, and the full diagnostic trace.
type ExtractJob struct{ ent.Schema }

func (ExtractJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extract_job"},
	}
}

func (ExtractJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("file_id", uuid.UUID{}),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("strategy").Optional().Nillable().
			Validate(utils.EnumValidator(constants.StrategiesAsStringSlice()...)),
		field.String("status").NotEmpty().
			Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(constants.JobStatusesAsStringSlice()...)),
		field.String("vendor").Optional().Nillable(),
		field.Bool("is_scanned").Default(false),
		field.Int("record_count").NonNegative().Default(0),
		field.Int("sales_count").NonNegative().Default(0),
		field.JSON("trace", []string{}).Optional(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
	}
}

func (ExtractJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", InvoiceFile.Type).
			Ref("jobs").
			Field("file_id").
			Unique().
			Required(),
	}
}

func (ExtractJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "started_at"),
		index.Fields("file_id"),
	}
}
