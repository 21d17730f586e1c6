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

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/db/ent/schema/utils"
)

type Notice struct{ ent.Schema }

func (Notice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "notices"},
	}
}

func (Notice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("case_id").NotEmpty(),
		field.String("counterparty_name").NotEmpty(),
		field.String("counterparty_account").Optional(),
		field.String("status").
			Default(string(constants.NoticeGenerated)).
			Validate(utils.OneOf(constants.NoticeStatuses...)),
		field.String("file_path").NotEmpty(),
		field.String("content").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Notice) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE notice -> MANY transactions; disjoint per case unless regenerated
		edge.To("transactions", Transaction.Type),
	}
}

func (Notice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id", "status"),
	}
}
