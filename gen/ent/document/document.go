// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldOcrStatus holds the string denoting the ocr_status field in the database.
	FieldOcrStatus = "ocr_status"
	// FieldOcrProgress holds the string denoting the ocr_progress field in the database.
	FieldOcrProgress = "ocr_progress"
	// FieldOcrStartedAt holds the string denoting the ocr_started_at field in the database.
	FieldOcrStartedAt = "ocr_started_at"
	// FieldOcrError holds the string denoting the ocr_error field in the database.
	FieldOcrError = "ocr_error"
	// FieldTextPath holds the string denoting the text_path field in the database.
	FieldTextPath = "text_path"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// EdgeTransactions holds the string denoting the transactions edge name in mutations.
	EdgeTransactions = "transactions"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// TransactionsTable is the table that holds the transactions relation/edge.
	TransactionsTable = "transactions"
	// TransactionsInverseTable is the table name for the Transaction entity.
	// It exists in this package in order to avoid circular dependency with the "transaction" package.
	TransactionsInverseTable = "transactions"
	// TransactionsColumn is the table column denoting the transactions relation/edge.
	TransactionsColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldCaseID,
	FieldFileName,
	FieldFilePath,
	FieldFormat,
	FieldOcrStatus,
	FieldOcrProgress,
	FieldOcrStartedAt,
	FieldOcrError,
	FieldTextPath,
	FieldUploadedAt,
	FieldProcessedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CaseIDValidator is a validator for the "case_id" field. It is called by the builders before save.
	CaseIDValidator func(string) error
	// FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	FileNameValidator func(string) error
	// FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	FilePathValidator func(string) error
	// FormatValidator is a validator for the "format" field. It is called by the builders before save.
	FormatValidator func(string) error
	// DefaultOcrStatus holds the default value on creation for the "ocr_status" field.
	DefaultOcrStatus string
	// OcrStatusValidator is a validator for the "ocr_status" field. It is called by the builders before save.
	OcrStatusValidator func(string) error
	// DefaultOcrProgress holds the default value on creation for the "ocr_progress" field.
	DefaultOcrProgress int
	// OcrProgressValidator is a validator for the "ocr_progress" field. It is called by the builders before save.
	OcrProgressValidator func(int) error
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByFileName orders the results by the file_name field.
func ByFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileName, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByOcrStatus orders the results by the ocr_status field.
func ByOcrStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrStatus, opts...).ToFunc()
}

// ByOcrProgress orders the results by the ocr_progress field.
func ByOcrProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrProgress, opts...).ToFunc()
}

// ByOcrStartedAt orders the results by the ocr_started_at field.
func ByOcrStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrStartedAt, opts...).ToFunc()
}

// ByOcrError orders the results by the ocr_error field.
func ByOcrError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOcrError, opts...).ToFunc()
}

// ByTextPath orders the results by the text_path field.
func ByTextPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextPath, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByTransactionsCount orders the results by transactions count.
func ByTransactionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTransactionsStep(), opts...)
	}
}

// ByTransactions orders the results by transactions terms.
func ByTransactions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTransactionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTransactionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TransactionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TransactionsTable, TransactionsColumn),
	)
}
