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
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent/notice"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent/predicate"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent/transaction"
)

// TransactionUpdate is the builder for updating Transaction entities.
type TransactionUpdate struct {
	config
	hooks    []Hook
	mutation *TransactionMutation
}

// Where appends a list predicates to the TransactionUpdate builder.
func (_u *TransactionUpdate) Where(ps ...predicate.Transaction) *TransactionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *TransactionUpdate) SetCaseID(v string) *TransactionUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableCaseID(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *TransactionUpdate) SetDocumentID(v uuid.UUID) *TransactionUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableDocumentID(v *uuid.UUID) *TransactionUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetSourceAccount sets the "source_account" field.
func (_u *TransactionUpdate) SetSourceAccount(v string) *TransactionUpdate {
	_u.mutation.SetSourceAccount(v)
	return _u
}

// SetNillableSourceAccount sets the "source_account" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableSourceAccount(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetSourceAccount(*v)
	}
	return _u
}

// ClearSourceAccount clears the value of the "source_account" field.
func (_u *TransactionUpdate) ClearSourceAccount() *TransactionUpdate {
	_u.mutation.ClearSourceAccount()
	return _u
}

// SetRecipientAccount sets the "recipient_account" field.
func (_u *TransactionUpdate) SetRecipientAccount(v string) *TransactionUpdate {
	_u.mutation.SetRecipientAccount(v)
	return _u
}

// SetNillableRecipientAccount sets the "recipient_account" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableRecipientAccount(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetRecipientAccount(*v)
	}
	return _u
}

// ClearRecipientAccount clears the value of the "recipient_account" field.
func (_u *TransactionUpdate) ClearRecipientAccount() *TransactionUpdate {
	_u.mutation.ClearRecipientAccount()
	return _u
}

// SetRecipientName sets the "recipient_name" field.
func (_u *TransactionUpdate) SetRecipientName(v string) *TransactionUpdate {
	_u.mutation.SetRecipientName(v)
	return _u
}

// SetNillableRecipientName sets the "recipient_name" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableRecipientName(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetRecipientName(*v)
	}
	return _u
}

// ClearRecipientName clears the value of the "recipient_name" field.
func (_u *TransactionUpdate) ClearRecipientName() *TransactionUpdate {
	_u.mutation.ClearRecipientName()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TransactionUpdate) SetAmount(v string) *TransactionUpdate {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableAmount(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *TransactionUpdate) SetCurrency(v string) *TransactionUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableCurrency(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *TransactionUpdate) ClearCurrency() *TransactionUpdate {
	_u.mutation.ClearCurrency()
	return _u
}

// SetDescription sets the "description" field.
func (_u *TransactionUpdate) SetDescription(v string) *TransactionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableDescription(v *string) *TransactionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TransactionUpdate) ClearDescription() *TransactionUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetTags sets the "tags" field.
func (_u *TransactionUpdate) SetTags(v map[string]string) *TransactionUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *TransactionUpdate) ClearTags() *TransactionUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetExcluded sets the "excluded" field.
func (_u *TransactionUpdate) SetExcluded(v bool) *TransactionUpdate {
	_u.mutation.SetExcluded(v)
	return _u
}

// SetNillableExcluded sets the "excluded" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableExcluded(v *bool) *TransactionUpdate {
	if v != nil {
		_u.SetExcluded(*v)
	}
	return _u
}

// SetNoticeID sets the "notice_id" field.
func (_u *TransactionUpdate) SetNoticeID(v uuid.UUID) *TransactionUpdate {
	_u.mutation.SetNoticeID(v)
	return _u
}

// SetNillableNoticeID sets the "notice_id" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableNoticeID(v *uuid.UUID) *TransactionUpdate {
	if v != nil {
		_u.SetNoticeID(*v)
	}
	return _u
}

// ClearNoticeID clears the value of the "notice_id" field.
func (_u *TransactionUpdate) ClearNoticeID() *TransactionUpdate {
	_u.mutation.ClearNoticeID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TransactionUpdate) SetCreatedAt(v time.Time) *TransactionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TransactionUpdate) SetNillableCreatedAt(v *time.Time) *TransactionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TransactionUpdate) SetUpdatedAt(v time.Time) *TransactionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *TransactionUpdate) SetDocument(v *Document) *TransactionUpdate {
	return _u.SetDocumentID(v.ID)
}

// SetNotice sets the "notice" edge to the Notice entity.
func (_u *TransactionUpdate) SetNotice(v *Notice) *TransactionUpdate {
	return _u.SetNoticeID(v.ID)
}

// Mutation returns the TransactionMutation object of the builder.
func (_u *TransactionUpdate) Mutation() *TransactionMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *TransactionUpdate) ClearDocument() *TransactionUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearNotice clears the "notice" edge to the Notice entity.
func (_u *TransactionUpdate) ClearNotice() *TransactionUpdate {
	_u.mutation.ClearNotice()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TransactionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TransactionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TransactionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := transaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransactionUpdate) check() error {
	if v, ok := _u.mutation.CaseID(); ok {
		if err := transaction.CaseIDValidator(v); err != nil {
			return &ValidationError{Name: "case_id", err: fmt.Errorf(`ent: validator failed for field "Transaction.case_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := transaction.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Transaction.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := transaction.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Transaction.currency": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Transaction.document"`)
	}
	return nil
}

func (_u *TransactionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(transaction.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceAccount(); ok {
		_spec.SetField(transaction.FieldSourceAccount, field.TypeString, value)
	}
	if _u.mutation.SourceAccountCleared() {
		_spec.ClearField(transaction.FieldSourceAccount, field.TypeString)
	}
	if value, ok := _u.mutation.RecipientAccount(); ok {
		_spec.SetField(transaction.FieldRecipientAccount, field.TypeString, value)
	}
	if _u.mutation.RecipientAccountCleared() {
		_spec.ClearField(transaction.FieldRecipientAccount, field.TypeString)
	}
	if value, ok := _u.mutation.RecipientName(); ok {
		_spec.SetField(transaction.FieldRecipientName, field.TypeString, value)
	}
	if _u.mutation.RecipientNameCleared() {
		_spec.ClearField(transaction.FieldRecipientName, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(transaction.FieldAmount, field.TypeString, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(transaction.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(transaction.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(transaction.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(transaction.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(transaction.FieldTags, field.TypeJSON, value)
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(transaction.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Excluded(); ok {
		_spec.SetField(transaction.FieldExcluded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(transaction.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(transaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.DocumentTable,
			Columns: []string{transaction.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.DocumentTable,
			Columns: []string{transaction.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NoticeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.NoticeTable,
			Columns: []string{transaction.NoticeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NoticeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.NoticeTable,
			Columns: []string{transaction.NoticeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TransactionUpdateOne is the builder for updating a single Transaction entity.
type TransactionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TransactionMutation
}

// SetCaseID sets the "case_id" field.
func (_u *TransactionUpdateOne) SetCaseID(v string) *TransactionUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableCaseID(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *TransactionUpdateOne) SetDocumentID(v uuid.UUID) *TransactionUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableDocumentID(v *uuid.UUID) *TransactionUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetSourceAccount sets the "source_account" field.
func (_u *TransactionUpdateOne) SetSourceAccount(v string) *TransactionUpdateOne {
	_u.mutation.SetSourceAccount(v)
	return _u
}

// SetNillableSourceAccount sets the "source_account" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableSourceAccount(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetSourceAccount(*v)
	}
	return _u
}

// ClearSourceAccount clears the value of the "source_account" field.
func (_u *TransactionUpdateOne) ClearSourceAccount() *TransactionUpdateOne {
	_u.mutation.ClearSourceAccount()
	return _u
}

// SetRecipientAccount sets the "recipient_account" field.
func (_u *TransactionUpdateOne) SetRecipientAccount(v string) *TransactionUpdateOne {
	_u.mutation.SetRecipientAccount(v)
	return _u
}

// SetNillableRecipientAccount sets the "recipient_account" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableRecipientAccount(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetRecipientAccount(*v)
	}
	return _u
}

// ClearRecipientAccount clears the value of the "recipient_account" field.
func (_u *TransactionUpdateOne) ClearRecipientAccount() *TransactionUpdateOne {
	_u.mutation.ClearRecipientAccount()
	return _u
}

// SetRecipientName sets the "recipient_name" field.
func (_u *TransactionUpdateOne) SetRecipientName(v string) *TransactionUpdateOne {
	_u.mutation.SetRecipientName(v)
	return _u
}

// SetNillableRecipientName sets the "recipient_name" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableRecipientName(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetRecipientName(*v)
	}
	return _u
}

// ClearRecipientName clears the value of the "recipient_name" field.
func (_u *TransactionUpdateOne) ClearRecipientName() *TransactionUpdateOne {
	_u.mutation.ClearRecipientName()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TransactionUpdateOne) SetAmount(v string) *TransactionUpdateOne {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableAmount(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *TransactionUpdateOne) SetCurrency(v string) *TransactionUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableCurrency(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// ClearCurrency clears the value of the "currency" field.
func (_u *TransactionUpdateOne) ClearCurrency() *TransactionUpdateOne {
	_u.mutation.ClearCurrency()
	return _u
}

// SetDescription sets the "description" field.
func (_u *TransactionUpdateOne) SetDescription(v string) *TransactionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableDescription(v *string) *TransactionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TransactionUpdateOne) ClearDescription() *TransactionUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetTags sets the "tags" field.
func (_u *TransactionUpdateOne) SetTags(v map[string]string) *TransactionUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *TransactionUpdateOne) ClearTags() *TransactionUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetExcluded sets the "excluded" field.
func (_u *TransactionUpdateOne) SetExcluded(v bool) *TransactionUpdateOne {
	_u.mutation.SetExcluded(v)
	return _u
}

// SetNillableExcluded sets the "excluded" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableExcluded(v *bool) *TransactionUpdateOne {
	if v != nil {
		_u.SetExcluded(*v)
	}
	return _u
}

// SetNoticeID sets the "notice_id" field.
func (_u *TransactionUpdateOne) SetNoticeID(v uuid.UUID) *TransactionUpdateOne {
	_u.mutation.SetNoticeID(v)
	return _u
}

// SetNillableNoticeID sets the "notice_id" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableNoticeID(v *uuid.UUID) *TransactionUpdateOne {
	if v != nil {
		_u.SetNoticeID(*v)
	}
	return _u
}

// ClearNoticeID clears the value of the "notice_id" field.
func (_u *TransactionUpdateOne) ClearNoticeID() *TransactionUpdateOne {
	_u.mutation.ClearNoticeID()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TransactionUpdateOne) SetCreatedAt(v time.Time) *TransactionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TransactionUpdateOne) SetNillableCreatedAt(v *time.Time) *TransactionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TransactionUpdateOne) SetUpdatedAt(v time.Time) *TransactionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *TransactionUpdateOne) SetDocument(v *Document) *TransactionUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// SetNotice sets the "notice" edge to the Notice entity.
func (_u *TransactionUpdateOne) SetNotice(v *Notice) *TransactionUpdateOne {
	return _u.SetNoticeID(v.ID)
}

// Mutation returns the TransactionMutation object of the builder.
func (_u *TransactionUpdateOne) Mutation() *TransactionMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *TransactionUpdateOne) ClearDocument() *TransactionUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearNotice clears the "notice" edge to the Notice entity.
func (_u *TransactionUpdateOne) ClearNotice() *TransactionUpdateOne {
	_u.mutation.ClearNotice()
	return _u
}

// Where appends a list predicates to the TransactionUpdate builder.
func (_u *TransactionUpdateOne) Where(ps ...predicate.Transaction) *TransactionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TransactionUpdateOne) Select(field string, fields ...string) *TransactionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Transaction entity.
func (_u *TransactionUpdateOne) Save(ctx context.Context) (*Transaction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionUpdateOne) SaveX(ctx context.Context) *Transaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TransactionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TransactionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := transaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TransactionUpdateOne) check() error {
	if v, ok := _u.mutation.CaseID(); ok {
		if err := transaction.CaseIDValidator(v); err != nil {
			return &ValidationError{Name: "case_id", err: fmt.Errorf(`ent: validator failed for field "Transaction.case_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Amount(); ok {
		if err := transaction.AmountValidator(v); err != nil {
			return &ValidationError{Name: "amount", err: fmt.Errorf(`ent: validator failed for field "Transaction.amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := transaction.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Transaction.currency": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Transaction.document"`)
	}
	return nil
}

func (_u *TransactionUpdateOne) sqlSave(ctx context.Context) (_node *Transaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transaction.Table, transaction.Columns, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Transaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transaction.FieldID)
		for _, f := range fields {
			if !transaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transaction.FieldID {
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
		_spec.SetField(transaction.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceAccount(); ok {
		_spec.SetField(transaction.FieldSourceAccount, field.TypeString, value)
	}
	if _u.mutation.SourceAccountCleared() {
		_spec.ClearField(transaction.FieldSourceAccount, field.TypeString)
	}
	if value, ok := _u.mutation.RecipientAccount(); ok {
		_spec.SetField(transaction.FieldRecipientAccount, field.TypeString, value)
	}
	if _u.mutation.RecipientAccountCleared() {
		_spec.ClearField(transaction.FieldRecipientAccount, field.TypeString)
	}
	if value, ok := _u.mutation.RecipientName(); ok {
		_spec.SetField(transaction.FieldRecipientName, field.TypeString, value)
	}
	if _u.mutation.RecipientNameCleared() {
		_spec.ClearField(transaction.FieldRecipientName, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(transaction.FieldAmount, field.TypeString, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(transaction.FieldCurrency, field.TypeString, value)
	}
	if _u.mutation.CurrencyCleared() {
		_spec.ClearField(transaction.FieldCurrency, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(transaction.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(transaction.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(transaction.FieldTags, field.TypeJSON, value)
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(transaction.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Excluded(); ok {
		_spec.SetField(transaction.FieldExcluded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(transaction.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(transaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.DocumentTable,
			Columns: []string{transaction.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.DocumentTable,
			Columns: []string{transaction.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NoticeCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.NoticeTable,
			Columns: []string{transaction.NoticeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NoticeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.NoticeTable,
			Columns: []string{transaction.NoticeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Transaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
