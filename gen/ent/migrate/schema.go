// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "case_id", Type: field.TypeString},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "format", Type: field.TypeString, Nullable: true},
		{Name: "ocr_status", Type: field.TypeString, Default: "none"},
		{Name: "ocr_progress", Type: field.TypeInt, Default: 0},
		{Name: "ocr_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "ocr_error", Type: field.TypeString, Nullable: true},
		{Name: "text_path", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_case_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[10]},
			},
			{
				Name:    "document_ocr_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[5]},
			},
		},
	}
	// NoticesColumns holds the columns for the "notices" table.
	NoticesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "case_id", Type: field.TypeString},
		{Name: "counterparty_name", Type: field.TypeString},
		{Name: "counterparty_account", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "GENERATED"},
		{Name: "file_path", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// NoticesTable holds the schema information for the "notices" table.
	NoticesTable = &schema.Table{
		Name:       "notices",
		Columns:    NoticesColumns,
		PrimaryKey: []*schema.Column{NoticesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notice_case_id_status",
				Unique:  false,
				Columns: []*schema.Column{NoticesColumns[1], NoticesColumns[4]},
			},
		},
	}
	// TransactionsColumns holds the columns for the "transactions" table.
	TransactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "case_id", Type: field.TypeString},
		{Name: "source_account", Type: field.TypeString, Nullable: true},
		{Name: "recipient_account", Type: field.TypeString, Nullable: true},
		{Name: "recipient_name", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeString, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "currency", Type: field.TypeString, Nullable: true, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "tx_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "tx_hash", Type: field.TypeString, Size: 64, SchemaType: map[string]string{"postgres": "char(64)"}},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "excluded", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "notice_id", Type: field.TypeUUID, Nullable: true},
	}
	// TransactionsTable holds the schema information for the "transactions" table.
	TransactionsTable = &schema.Table{
		Name:       "transactions",
		Columns:    TransactionsColumns,
		PrimaryKey: []*schema.Column{TransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transactions_documents_transactions",
				Columns:    []*schema.Column{TransactionsColumns[14]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "transactions_notices_transactions",
				Columns:    []*schema.Column{TransactionsColumns[15]},
				RefColumns: []*schema.Column{NoticesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transaction_case_id_tx_hash",
				Unique:  true,
				Columns: []*schema.Column{TransactionsColumns[1], TransactionsColumns[9]},
			},
			{
				Name:    "transaction_case_id_tx_date",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[1], TransactionsColumns[8]},
			},
			{
				Name:    "transaction_document_id",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[14]},
			},
			{
				Name:    "transaction_notice_id",
				Unique:  false,
				Columns: []*schema.Column{TransactionsColumns[15]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		NoticesTable,
		TransactionsTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	NoticesTable.Annotation = &entsql.Annotation{
		Table: "notices",
	}
	TransactionsTable.ForeignKeys[0].RefTable = DocumentsTable
	TransactionsTable.ForeignKeys[1].RefTable = NoticesTable
	TransactionsTable.Annotation = &entsql.Annotation{
		Table: "transactions",
	}
}
