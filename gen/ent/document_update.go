// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent/document"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent/predicate"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent/transaction"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *DocumentUpdate) SetCaseID(v string) *DocumentUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCaseID(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentUpdate) SetFileName(v string) *DocumentUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DocumentUpdate) SetFilePath(v string) *DocumentUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilePath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *DocumentUpdate) SetFormat(v string) *DocumentUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFormat(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// ClearFormat clears the value of the "format" field.
func (_u *DocumentUpdate) ClearFormat() *DocumentUpdate {
	_u.mutation.ClearFormat()
	return _u
}

// SetOcrStatus sets the "ocr_status" field.
func (_u *DocumentUpdate) SetOcrStatus(v string) *DocumentUpdate {
	_u.mutation.SetOcrStatus(v)
	return _u
}

// SetNillableOcrStatus sets the "ocr_status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOcrStatus(*v)
	}
	return _u
}

// SetOcrProgress sets the "ocr_progress" field.
func (_u *DocumentUpdate) SetOcrProgress(v int) *DocumentUpdate {
	_u.mutation.ResetOcrProgress()
	_u.mutation.SetOcrProgress(v)
	return _u
}

// SetNillableOcrProgress sets the "ocr_progress" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrProgress(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetOcrProgress(*v)
	}
	return _u
}

// AddOcrProgress adds value to the "ocr_progress" field.
func (_u *DocumentUpdate) AddOcrProgress(v int) *DocumentUpdate {
	_u.mutation.AddOcrProgress(v)
	return _u
}

// SetOcrStartedAt sets the "ocr_started_at" field.
func (_u *DocumentUpdate) SetOcrStartedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetOcrStartedAt(v)
	return _u
}

// SetNillableOcrStartedAt sets the "ocr_started_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrStartedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetOcrStartedAt(*v)
	}
	return _u
}

// ClearOcrStartedAt clears the value of the "ocr_started_at" field.
func (_u *DocumentUpdate) ClearOcrStartedAt() *DocumentUpdate {
	_u.mutation.ClearOcrStartedAt()
	return _u
}

// SetOcrError sets the "ocr_error" field.
func (_u *DocumentUpdate) SetOcrError(v string) *DocumentUpdate {
	_u.mutation.SetOcrError(v)
	return _u
}

// SetNillableOcrError sets the "ocr_error" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrError(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOcrError(*v)
	}
	return _u
}

// ClearOcrError clears the value of the "ocr_error" field.
func (_u *DocumentUpdate) ClearOcrError() *DocumentUpdate {
	_u.mutation.ClearOcrError()
	return _u
}

// SetTextPath sets the "text_path" field.
func (_u *DocumentUpdate) SetTextPath(v string) *DocumentUpdate {
	_u.mutation.SetTextPath(v)
	return _u
}

// SetNillableTextPath sets the "text_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTextPath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetTextPath(*v)
	}
	return _u
}

// ClearTextPath clears the value of the "text_path" field.
func (_u *DocumentUpdate) ClearTextPath() *DocumentUpdate {
	_u.mutation.ClearTextPath()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DocumentUpdate) SetUploadedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableUploadedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *DocumentUpdate) SetProcessedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProcessedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *DocumentUpdate) ClearProcessedAt() *DocumentUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_u *DocumentUpdate) AddTransactionIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_u *DocumentUpdate) AddTransactions(v ...*Transaction) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (_u *DocumentUpdate) ClearTransactions() *DocumentUpdate {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (_u *DocumentUpdate) RemoveTransactionIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (_u *DocumentUpdate) RemoveTransactions(v ...*Transaction) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.CaseID(); ok {
		if err := document.CaseIDValidator(v); err != nil {
			return &ValidationError{Name: "case_id", err: fmt.Errorf(`ent: validator failed for field "Document.case_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := document.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Document.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := document.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Document.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := document.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Document.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OcrStatus(); ok {
		if err := document.OcrStatusValidator(v); err != nil {
			return &ValidationError{Name: "ocr_status", err: fmt.Errorf(`ent: validator failed for field "Document.ocr_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OcrProgress(); ok {
		if err := document.OcrProgressValidator(v); err != nil {
			return &ValidationError{Name: "ocr_progress", err: fmt.Errorf(`ent: validator failed for field "Document.ocr_progress": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(document.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(document.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(document.FieldFormat, field.TypeString, value)
	}
	if _u.mutation.FormatCleared() {
		_spec.ClearField(document.FieldFormat, field.TypeString)
	}
	if value, ok := _u.mutation.OcrStatus(); ok {
		_spec.SetField(document.FieldOcrStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrProgress(); ok {
		_spec.SetField(document.FieldOcrProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOcrProgress(); ok {
		_spec.AddField(document.FieldOcrProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OcrStartedAt(); ok {
		_spec.SetField(document.FieldOcrStartedAt, field.TypeTime, value)
	}
	if _u.mutation.OcrStartedAtCleared() {
		_spec.ClearField(document.FieldOcrStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OcrError(); ok {
		_spec.SetField(document.FieldOcrError, field.TypeString, value)
	}
	if _u.mutation.OcrErrorCleared() {
		_spec.ClearField(document.FieldOcrError, field.TypeString)
	}
	if value, ok := _u.mutation.TextPath(); ok {
		_spec.SetField(document.FieldTextPath, field.TypeString, value)
	}
	if _u.mutation.TextPathCleared() {
		_spec.ClearField(document.FieldTextPath, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(document.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(document.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(document.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.TransactionsTable,
			Columns: []string{document.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.TransactionsTable,
			Columns: []string{document.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.TransactionsTable,
			Columns: []string{document.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetCaseID sets the "case_id" field.
func (_u *DocumentUpdateOne) SetCaseID(v string) *DocumentUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCaseID(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentUpdateOne) SetFileName(v string) *DocumentUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DocumentUpdateOne) SetFilePath(v string) *DocumentUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilePath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *DocumentUpdateOne) SetFormat(v string) *DocumentUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFormat(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// ClearFormat clears the value of the "format" field.
func (_u *DocumentUpdateOne) ClearFormat() *DocumentUpdateOne {
	_u.mutation.ClearFormat()
	return _u
}

// SetOcrStatus sets the "ocr_status" field.
func (_u *DocumentUpdateOne) SetOcrStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetOcrStatus(v)
	return _u
}

// SetNillableOcrStatus sets the "ocr_status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrStatus(*v)
	}
	return _u
}

// SetOcrProgress sets the "ocr_progress" field.
func (_u *DocumentUpdateOne) SetOcrProgress(v int) *DocumentUpdateOne {
	_u.mutation.ResetOcrProgress()
	_u.mutation.SetOcrProgress(v)
	return _u
}

// SetNillableOcrProgress sets the "ocr_progress" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrProgress(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrProgress(*v)
	}
	return _u
}

// AddOcrProgress adds value to the "ocr_progress" field.
func (_u *DocumentUpdateOne) AddOcrProgress(v int) *DocumentUpdateOne {
	_u.mutation.AddOcrProgress(v)
	return _u
}

// SetOcrStartedAt sets the "ocr_started_at" field.
func (_u *DocumentUpdateOne) SetOcrStartedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetOcrStartedAt(v)
	return _u
}

// SetNillableOcrStartedAt sets the "ocr_started_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrStartedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrStartedAt(*v)
	}
	return _u
}

// ClearOcrStartedAt clears the value of the "ocr_started_at" field.
func (_u *DocumentUpdateOne) ClearOcrStartedAt() *DocumentUpdateOne {
	_u.mutation.ClearOcrStartedAt()
	return _u
}

// SetOcrError sets the "ocr_error" field.
func (_u *DocumentUpdateOne) SetOcrError(v string) *DocumentUpdateOne {
	_u.mutation.SetOcrError(v)
	return _u
}

// SetNillableOcrError sets the "ocr_error" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrError(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrError(*v)
	}
	return _u
}

// ClearOcrError clears the value of the "ocr_error" field.
func (_u *DocumentUpdateOne) ClearOcrError() *DocumentUpdateOne {
	_u.mutation.ClearOcrError()
	return _u
}

// SetTextPath sets the "text_path" field.
func (_u *DocumentUpdateOne) SetTextPath(v string) *DocumentUpdateOne {
	_u.mutation.SetTextPath(v)
	return _u
}

// SetNillableTextPath sets the "text_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTextPath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetTextPath(*v)
	}
	return _u
}

// ClearTextPath clears the value of the "text_path" field.
func (_u *DocumentUpdateOne) ClearTextPath() *DocumentUpdateOne {
	_u.mutation.ClearTextPath()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DocumentUpdateOne) SetUploadedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableUploadedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *DocumentUpdateOne) SetProcessedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProcessedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *DocumentUpdateOne) ClearProcessedAt() *DocumentUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_u *DocumentUpdateOne) AddTransactionIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_u *DocumentUpdateOne) AddTransactions(v ...*Transaction) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (_u *DocumentUpdateOne) ClearTransactions() *DocumentUpdateOne {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (_u *DocumentUpdateOne) RemoveTransactionIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (_u *DocumentUpdateOne) RemoveTransactions(v ...*Transaction) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.CaseID(); ok {
		if err := document.CaseIDValidator(v); err != nil {
			return &ValidationError{Name: "case_id", err: fmt.Errorf(`ent: validator failed for field "Document.case_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := document.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Document.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := document.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Document.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := document.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Document.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OcrStatus(); ok {
		if err := document.OcrStatusValidator(v); err != nil {
			return &ValidationError{Name: "ocr_status", err: fmt.Errorf(`ent: validator failed for field "Document.ocr_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OcrProgress(); ok {
		if err := document.OcrProgressValidator(v); err != nil {
			return &ValidationError{Name: "ocr_progress", err: fmt.Errorf(`ent: validator failed for field "Document.ocr_progress": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(document.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(document.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(document.FieldFormat, field.TypeString, value)
	}
	if _u.mutation.FormatCleared() {
		_spec.ClearField(document.FieldFormat, field.TypeString)
	}
	if value, ok := _u.mutation.OcrStatus(); ok {
		_spec.SetField(document.FieldOcrStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrProgress(); ok {
		_spec.SetField(document.FieldOcrProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOcrProgress(); ok {
		_spec.AddField(document.FieldOcrProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OcrStartedAt(); ok {
		_spec.SetField(document.FieldOcrStartedAt, field.TypeTime, value)
	}
	if _u.mutation.OcrStartedAtCleared() {
		_spec.ClearField(document.FieldOcrStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OcrError(); ok {
		_spec.SetField(document.FieldOcrError, field.TypeString, value)
	}
	if _u.mutation.OcrErrorCleared() {
		_spec.ClearField(document.FieldOcrError, field.TypeString)
	}
	if value, ok := _u.mutation.TextPath(); ok {
		_spec.SetField(document.FieldTextPath, field.TypeString, value)
	}
	if _u.mutation.TextPathCleared() {
		_spec.ClearField(document.FieldTextPath, field.TypeString)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(document.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(document.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(document.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.TransactionsTable,
			Columns: []string{document.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.TransactionsTable,
			Columns: []string{document.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.TransactionsTable,
			Columns: []string{document.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
