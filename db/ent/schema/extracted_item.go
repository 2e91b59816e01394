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

	"github.com/catalogkit/extractor/constants"
	"github.com/google/uuid"
)

// ExtractedItem rows are append-only: nothing updates them after insert and
// only cascading deletes remove them.
type ExtractedItem struct{ ent.Schema }

func (ExtractedItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracted_items"},
	}
}

func (ExtractedItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("pass_id", uuid.UUID{}),
		field.String("brand_code").Optional(),
		field.String("part_number").Optional(),
		field.String("price_type").Optional(),
		field.Float("price_value").Optional().Nillable(),
		field.String("currency").Default(constants.DefaultCurrency),
		field.Int("page").NonNegative(),
		field.Float("confidence").Default(0),
		field.String("raw_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("bbox_x").Optional().Nillable(),
		field.Int("bbox_y").Optional().Nillable(),
		field.Int("bbox_width").Optional().Nillable(),
		field.Int("bbox_height").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (ExtractedItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pass", ExtractionPass.Type).
			Ref("items").
			Field("pass_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (ExtractedItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pass_id"),
		index.Fields("part_number"),
		index.Fields("page"),
	}
}
