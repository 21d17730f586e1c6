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
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent/notice"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent/predicate"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent/transaction"
)

// NoticeUpdate is the builder for updating Notice entities.
type NoticeUpdate struct {
	config
	hooks    []Hook
	mutation *NoticeMutation
}

// Where appends a list predicates to the NoticeUpdate builder.
func (_u *NoticeUpdate) Where(ps ...predicate.Notice) *NoticeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *NoticeUpdate) SetCaseID(v string) *NoticeUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableCaseID(v *string) *NoticeUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetCounterpartyName sets the "counterparty_name" field.
func (_u *NoticeUpdate) SetCounterpartyName(v string) *NoticeUpdate {
	_u.mutation.SetCounterpartyName(v)
	return _u
}

// SetNillableCounterpartyName sets the "counterparty_name" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableCounterpartyName(v *string) *NoticeUpdate {
	if v != nil {
		_u.SetCounterpartyName(*v)
	}
	return _u
}

// SetCounterpartyAccount sets the "counterparty_account" field.
func (_u *NoticeUpdate) SetCounterpartyAccount(v string) *NoticeUpdate {
	_u.mutation.SetCounterpartyAccount(v)
	return _u
}

// SetNillableCounterpartyAccount sets the "counterparty_account" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableCounterpartyAccount(v *string) *NoticeUpdate {
	if v != nil {
		_u.SetCounterpartyAccount(*v)
	}
	return _u
}

// ClearCounterpartyAccount clears the value of the "counterparty_account" field.
func (_u *NoticeUpdate) ClearCounterpartyAccount() *NoticeUpdate {
	_u.mutation.ClearCounterpartyAccount()
	return _u
}

// SetStatus sets the "status" field.
func (_u *NoticeUpdate) SetStatus(v string) *NoticeUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableStatus(v *string) *NoticeUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *NoticeUpdate) SetFilePath(v string) *NoticeUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableFilePath(v *string) *NoticeUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *NoticeUpdate) SetContent(v string) *NoticeUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableContent(v *string) *NoticeUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *NoticeUpdate) SetCreatedAt(v time.Time) *NoticeUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableCreatedAt(v *time.Time) *NoticeUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NoticeUpdate) SetUpdatedAt(v time.Time) *NoticeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_u *NoticeUpdate) AddTransactionIDs(ids ...uuid.UUID) *NoticeUpdate {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_u *NoticeUpdate) AddTransactions(v ...*Transaction) *NoticeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// Mutation returns the NoticeMutation object of the builder.
func (_u *NoticeUpdate) Mutation() *NoticeMutation {
	return _u.mutation
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (_u *NoticeUpdate) ClearTransactions() *NoticeUpdate {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (_u *NoticeUpdate) RemoveTransactionIDs(ids ...uuid.UUID) *NoticeUpdate {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (_u *NoticeUpdate) RemoveTransactions(v ...*Transaction) *NoticeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NoticeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NoticeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NoticeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NoticeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NoticeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NoticeUpdate) check() error {
	if v, ok := _u.mutation.CaseID(); ok {
		if err := notice.CaseIDValidator(v); err != nil {
			return &ValidationError{Name: "case_id", err: fmt.Errorf(`ent: validator failed for field "Notice.case_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CounterpartyName(); ok {
		if err := notice.CounterpartyNameValidator(v); err != nil {
			return &ValidationError{Name: "counterparty_name", err: fmt.Errorf(`ent: validator failed for field "Notice.counterparty_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := notice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Notice.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := notice.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Notice.file_path": %w`, err)}
		}
	}
	return nil
}

func (_u *NoticeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notice.Table, notice.Columns, sqlgraph.NewFieldSpec(notice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(notice.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CounterpartyName(); ok {
		_spec.SetField(notice.FieldCounterpartyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CounterpartyAccount(); ok {
		_spec.SetField(notice.FieldCounterpartyAccount, field.TypeString, value)
	}
	if _u.mutation.CounterpartyAccountCleared() {
		_spec.ClearField(notice.FieldCounterpartyAccount, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(notice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(notice.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(notice.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(notice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notice.TransactionsTable,
			Columns: []string{notice.TransactionsColumn},
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
			Table:   notice.TransactionsTable,
			Columns: []string{notice.TransactionsColumn},
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
			Table:   notice.TransactionsTable,
			Columns: []string{notice.TransactionsColumn},
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
			err = &NotFoundError{notice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NoticeUpdateOne is the builder for updating a single Notice entity.
type NoticeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NoticeMutation
}

// SetCaseID sets the "case_id" field.
func (_u *NoticeUpdateOne) SetCaseID(v string) *NoticeUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableCaseID(v *string) *NoticeUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetCounterpartyName sets the "counterparty_name" field.
func (_u *NoticeUpdateOne) SetCounterpartyName(v string) *NoticeUpdateOne {
	_u.mutation.SetCounterpartyName(v)
	return _u
}

// SetNillableCounterpartyName sets the "counterparty_name" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableCounterpartyName(v *string) *NoticeUpdateOne {
	if v != nil {
		_u.SetCounterpartyName(*v)
	}
	return _u
}

// SetCounterpartyAccount sets the "counterparty_account" field.
func (_u *NoticeUpdateOne) SetCounterpartyAccount(v string) *NoticeUpdateOne {
	_u.mutation.SetCounterpartyAccount(v)
	return _u
}

// SetNillableCounterpartyAccount sets the "counterparty_account" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableCounterpartyAccount(v *string) *NoticeUpdateOne {
	if v != nil {
		_u.SetCounterpartyAccount(*v)
	}
	return _u
}

// ClearCounterpartyAccount clears the value of the "counterparty_account" field.
func (_u *NoticeUpdateOne) ClearCounterpartyAccount() *NoticeUpdateOne {
	_u.mutation.ClearCounterpartyAccount()
	return _u
}

// SetStatus sets the "status" field.
func (_u *NoticeUpdateOne) SetStatus(v string) *NoticeUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableStatus(v *string) *NoticeUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *NoticeUpdateOne) SetFilePath(v string) *NoticeUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableFilePath(v *string) *NoticeUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *NoticeUpdateOne) SetContent(v string) *NoticeUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableContent(v *string) *NoticeUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *NoticeUpdateOne) SetCreatedAt(v time.Time) *NoticeUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableCreatedAt(v *time.Time) *NoticeUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NoticeUpdateOne) SetUpdatedAt(v time.Time) *NoticeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_u *NoticeUpdateOne) AddTransactionIDs(ids ...uuid.UUID) *NoticeUpdateOne {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_u *NoticeUpdateOne) AddTransactions(v ...*Transaction) *NoticeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// Mutation returns the NoticeMutation object of the builder.
func (_u *NoticeUpdateOne) Mutation() *NoticeMutation {
	return _u.mutation
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (_u *NoticeUpdateOne) ClearTransactions() *NoticeUpdateOne {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (_u *NoticeUpdateOne) RemoveTransactionIDs(ids ...uuid.UUID) *NoticeUpdateOne {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (_u *NoticeUpdateOne) RemoveTransactions(v ...*Transaction) *NoticeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// Where appends a list predicates to the NoticeUpdate builder.
func (_u *NoticeUpdateOne) Where(ps ...predicate.Notice) *NoticeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NoticeUpdateOne) Select(field string, fields ...string) *NoticeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Notice entity.
func (_u *NoticeUpdateOne) Save(ctx context.Context) (*Notice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NoticeUpdateOne) SaveX(ctx context.Context) *Notice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NoticeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NoticeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NoticeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NoticeUpdateOne) check() error {
	if v, ok := _u.mutation.CaseID(); ok {
		if err := notice.CaseIDValidator(v); err != nil {
			return &ValidationError{Name: "case_id", err: fmt.Errorf(`ent: validator failed for field "Notice.case_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CounterpartyName(); ok {
		if err := notice.CounterpartyNameValidator(v); err != nil {
			return &ValidationError{Name: "counterparty_name", err: fmt.Errorf(`ent: validator failed for field "Notice.counterparty_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := notice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Notice.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := notice.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Notice.file_path": %w`, err)}
		}
	}
	return nil
}

func (_u *NoticeUpdateOne) sqlSave(ctx context.Context) (_node *Notice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notice.Table, notice.Columns, sqlgraph.NewFieldSpec(notice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Notice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notice.FieldID)
		for _, f := range fields {
			if !notice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notice.FieldID {
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
		_spec.SetField(notice.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CounterpartyName(); ok {
		_spec.SetField(notice.FieldCounterpartyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CounterpartyAccount(); ok {
		_spec.SetField(notice.FieldCounterpartyAccount, field.TypeString, value)
	}
	if _u.mutation.CounterpartyAccountCleared() {
		_spec.ClearField(notice.FieldCounterpartyAccount, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(notice.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(notice.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(notice.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(notice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TransactionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notice.TransactionsTable,
			Columns: []string{notice.TransactionsColumn},
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
			Table:   notice.TransactionsTable,
			Columns: []string{notice.TransactionsColumn},
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
			Table:   notice.TransactionsTable,
			Columns: []string{notice.TransactionsColumn},
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
	_node = &Notice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
