package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// Case storage lives outside this service; the id is opaque here.
		field.String("case_id").NotEmpty(),
		field.String("file_name").NotEmpty(),
		field.String("file_path").NotEmpty(),
		field.String("format").Optional().
			Validate(utils.OneOf(append([]string{""}, constants.Formats...)...)),
		field.String("ocr_status").
			Default(string(constants.OCRNone)).
			Validate(utils.OneOf(constants.OCRStatuses...)),
		field.Int("ocr_progress").Default(0).Min(0).Max(100),
		field.Time("ocr_started_at").Optional().Nillable(),
		field.String("ocr_error").Optional().Nillable(),
		field.String("text_path").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now),
		field.Time("processed_at").Optional().Nillable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY transactions
		edge.To("transactions", Transaction.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id", "uploaded_at"),
		index.Fields("ocr_status"),
	}
}
