// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConsolidatedItemsColumns holds the columns for the "consolidated_items" table.
	ConsolidatedItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "brand_code", Type: field.TypeString, Nullable: true},
		{Name: "part_number", Type: field.TypeString, Nullable: true},
		{Name: "price_type", Type: field.TypeString, Nullable: true},
		{Name: "price_value", Type: field.TypeFloat64, Nullable: true},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "page", Type: field.TypeInt},
		{Name: "avg_confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "source_count", Type: field.TypeInt, Default: 1},
		{Name: "contributing_item_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ConsolidatedItemsTable holds the schema information for the "consolidated_items" table.
	ConsolidatedItemsTable = &schema.Table{
		Name:       "consolidated_items",
		Columns:    ConsolidatedItemsColumns,
		PrimaryKey: []*schema.Column{ConsolidatedItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "consolidated_items_documents_consolidated_items",
				Columns:    []*schema.Column{ConsolidatedItemsColumns[11]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "consolidateditem_document_id",
				Unique:  false,
				Columns: []*schema.Column{ConsolidatedItemsColumns[11]},
			},
			{
				Name:    "consolidateditem_document_id_part_number_page",
				Unique:  false,
				Columns: []*schema.Column{ConsolidatedItemsColumns[11], ConsolidatedItemsColumns[2], ConsolidatedItemsColumns[6]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "source_path", Type: field.TypeString},
		{Name: "page_count", Type: field.TypeInt},
		{Name: "pass_seq", Type: field.TypeInt, Default: 0},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[2]},
			},
			{
				Name:    "document_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6]},
			},
		},
	}
	// ExtractedItemsColumns holds the columns for the "extracted_items" table.
	ExtractedItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "brand_code", Type: field.TypeString, Nullable: true},
		{Name: "part_number", Type: field.TypeString, Nullable: true},
		{Name: "price_type", Type: field.TypeString, Nullable: true},
		{Name: "price_value", Type: field.TypeFloat64, Nullable: true},
		{Name: "currency", Type: field.TypeString, Default: "USD"},
		{Name: "page", Type: field.TypeInt},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "bbox_x", Type: field.TypeInt, Nullable: true},
		{Name: "bbox_y", Type: field.TypeInt, Nullable: true},
		{Name: "bbox_width", Type: field.TypeInt, Nullable: true},
		{Name: "bbox_height", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "pass_id", Type: field.TypeUUID},
	}
	// ExtractedItemsTable holds the schema information for the "extracted_items" table.
	ExtractedItemsTable = &schema.Table{
		Name:       "extracted_items",
		Columns:    ExtractedItemsColumns,
		PrimaryKey: []*schema.Column{ExtractedItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_items_extraction_passes_items",
				Columns:    []*schema.Column{ExtractedItemsColumns[14]},
				RefColumns: []*schema.Column{ExtractionPassesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extracteditem_pass_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractedItemsColumns[14]},
			},
			{
				Name:    "extracteditem_part_number",
				Unique:  false,
				Columns: []*schema.Column{ExtractedItemsColumns[2]},
			},
			{
				Name:    "extracteditem_page",
				Unique:  false,
				Columns: []*schema.Column{ExtractedItemsColumns[6]},
			},
		},
	}
	// ExtractionPassesColumns holds the columns for the "extraction_passes" table.
	ExtractionPassesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "pass_number", Type: field.TypeInt},
		{Name: "method", Type: field.TypeString},
		{Name: "start_page", Type: field.TypeInt, Default: 0},
		{Name: "end_page", Type: field.TypeInt, Nullable: true},
		{Name: "dpi", Type: field.TypeInt, Default: 300},
		{Name: "min_confidence", Type: field.TypeFloat64, Default: 50},
		{Name: "force_ocr", Type: field.TypeBool, Default: false},
		{Name: "debug", Type: field.TypeBool, Default: false},
		{Name: "pages", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "items_extracted", Type: field.TypeInt, Default: 0},
		{Name: "avg_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "processing_time", Type: field.TypeFloat64, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ExtractionPassesTable holds the schema information for the "extraction_passes" table.
	ExtractionPassesTable = &schema.Table{
		Name:       "extraction_passes",
		Columns:    ExtractionPassesColumns,
		PrimaryKey: []*schema.Column{ExtractionPassesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_passes_documents_passes",
				Columns:    []*schema.Column{ExtractionPassesColumns[18]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionpass_document_id_pass_number",
				Unique:  true,
				Columns: []*schema.Column{ExtractionPassesColumns[18], ExtractionPassesColumns[1]},
			},
			{
				Name:    "extractionpass_document_id_status",
				Unique:  false,
				Columns: []*schema.Column{ExtractionPassesColumns[18], ExtractionPassesColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConsolidatedItemsTable,
		DocumentsTable,
		ExtractedItemsTable,
		ExtractionPassesTable,
	}
)

func init() {
	ConsolidatedItemsTable.ForeignKeys[0].RefTable = DocumentsTable
	ConsolidatedItemsTable.Annotation = &entsql.Annotation{
		Table: "consolidated_items",
	}
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExtractedItemsTable.ForeignKeys[0].RefTable = ExtractionPassesTable
	ExtractedItemsTable.Annotation = &entsql.Annotation{
		Table: "extracted_items",
	}
	ExtractionPassesTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractionPassesTable.Annotation = &entsql.Annotation{
		Table: "extraction_passes",
	}
}
