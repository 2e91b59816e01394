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
	"github.com/catalogkit/extractor/db/ent/schema/utils"
	"github.com/google/uuid"
)

type ExtractionPass struct{ ent.Schema }

func (ExtractionPass) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_passes"},
	}
}

func (ExtractionPass) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("document_id", uuid.UUID{}),
		field.Int("pass_number").Positive(),
		field.String("method").NotEmpty().
			Validate(utils.EnumValidator(constants.Methods()...)),
		// configuration
		field.Int("start_page").Default(0).NonNegative(),
		field.Int("end_page").Optional().Nillable(),
		field.Int("dpi").Default(300),
		field.Float("min_confidence").Default(50),
		field.Bool("force_ocr").Default(false),
		field.Bool("debug").Default(false),
		field.JSON("pages", []int{}).Optional(),
		// lifecycle
		field.String("status").Default(string(constants.PassStatusQueued)).
			Validate(utils.EnumValidator(constants.PassStatuses...)),
		// results
		field.Int("items_extracted").Default(0),
		field.Float("avg_confidence").Optional().Nillable(),
		field.Float("processing_time").Optional().Nillable(), // seconds
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// metadata
		field.Time("created_at").Default(time.Now),
		field.Time("started_at").Optional().Nillable(),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (ExtractionPass) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("passes").
			Field("document_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		// ONE pass -> MANY raw items
		edge.To("items", ExtractedItem.Type),
	}
}

func (ExtractionPass) Indexes() []ent.Index {
	return []ent.Index{
		// pass numbers are contiguous per document and never reused
		index.Fields("document_id", "pass_number").Unique(),
		index.Fields("document_id", "status"),
	}
}
