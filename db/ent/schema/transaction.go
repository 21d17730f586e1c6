package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Transaction struct{ ent.Schema }

func (Transaction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "transactions"},
	}
}

func (Transaction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("case_id").NotEmpty(),
		// explicit FKs so we can define composite indexes
		field.UUID("document_id", uuid.UUID{}),
		field.String("source_account").Optional(),
		field.String("recipient_account").Optional(),
		field.String("recipient_name").Optional(),
		// canonical fixed-point string form, e.g. "-1234.50"
		field.String("amount").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("currency").Optional().MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.String("description").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("tx_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}).
			Immutable(),
		field.String("tx_hash").NotEmpty().MinLen(64).MaxLen(64).
			SchemaType(map[string]string{dialect.Postgres: "char(64)"}).
			Immutable(),
		field.JSON("tags", map[string]string{}).Optional(),
		// rows are never deleted, only flagged, to preserve the audit trail
		field.Bool("excluded").Default(false),
		field.UUID("notice_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Transaction) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY transactions -> ONE document (FK: transactions.document_id)
		edge.From("document", Document.Type).
			Ref("transactions").
			Field("document_id").
			Required().
			Unique(),
		// OPTIONAL: MANY transactions -> ONE notice (FK: transactions.notice_id)
		edge.From("notice", Notice.Type).
			Ref("transactions").
			Field("notice_id").
			Unique(),
	}
}

func (Transaction) Indexes() []ent.Index {
	return []ent.Index{
		// the sole ordering-independent dedup correctness mechanism
		index.Fields("case_id", "tx_hash").Unique(),
		index.Fields("case_id", "tx_date"),
		index.Fields("document_id"),
		index.Fields("notice_id"),
	}
}
