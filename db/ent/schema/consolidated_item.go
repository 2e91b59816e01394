package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/catalogkit/extractor/constants"
	"github.com/google/uuid"
)

// ConsolidatedItem rows are derived data: the full set for a document is
// replaced in one transaction whenever consolidation runs.
type ConsolidatedItem struct{ ent.Schema }

func (ConsolidatedItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "consolidated_items"},
	}
}

func (ConsolidatedItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("document_id", uuid.UUID{}),
		field.String("brand_code").Optional(),
		field.String("part_number").Optional(),
		field.String("price_type").Optional(),
		field.Float("price_value").Optional().Nillable(),
		field.String("currency").Default(constants.DefaultCurrency),
		field.Int("page").NonNegative(),
		field.Float("avg_confidence").Default(0),
		field.Int("source_count").Default(1),
		field.JSON("contributing_item_ids", []uuid.UUID{}).Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (ConsolidatedItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("consolidated_items").
			Field("document_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (ConsolidatedItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
		index.Fields("document_id", "part_number", "page"),
	}
}
