// Code generated by ent, DO NOT EDIT.

package notice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldID, id))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldCaseID, v))
}

// CounterpartyName applies equality check predicate on the "counterparty_name" field. It's identical to CounterpartyNameEQ.
func CounterpartyName(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldCounterpartyName, v))
}

// CounterpartyAccount applies equality check predicate on the "counterparty_account" field. It's identical to CounterpartyAccountEQ.
func CounterpartyAccount(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldCounterpartyAccount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldStatus, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldFilePath, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldContent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldUpdatedAt, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldCaseID, v))
}

// CounterpartyNameEQ applies the EQ predicate on the "counterparty_name" field.
func CounterpartyNameEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldCounterpartyName, v))
}

// CounterpartyNameNEQ applies the NEQ predicate on the "counterparty_name" field.
func CounterpartyNameNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldCounterpartyName, v))
}

// CounterpartyNameIn applies the In predicate on the "counterparty_name" field.
func CounterpartyNameIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldCounterpartyName, vs...))
}

// CounterpartyNameNotIn applies the NotIn predicate on the "counterparty_name" field.
func CounterpartyNameNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldCounterpartyName, vs...))
}

// CounterpartyNameGT applies the GT predicate on the "counterparty_name" field.
func CounterpartyNameGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldCounterpartyName, v))
}

// CounterpartyNameGTE applies the GTE predicate on the "counterparty_name" field.
func CounterpartyNameGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldCounterpartyName, v))
}

// CounterpartyNameLT applies the LT predicate on the "counterparty_name" field.
func CounterpartyNameLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldCounterpartyName, v))
}

// CounterpartyNameLTE applies the LTE predicate on the "counterparty_name" field.
func CounterpartyNameLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldCounterpartyName, v))
}

// CounterpartyNameContains applies the Contains predicate on the "counterparty_name" field.
func CounterpartyNameContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldCounterpartyName, v))
}

// CounterpartyNameHasPrefix applies the HasPrefix predicate on the "counterparty_name" field.
func CounterpartyNameHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldCounterpartyName, v))
}

// CounterpartyNameHasSuffix applies the HasSuffix predicate on the "counterparty_name" field.
func CounterpartyNameHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldCounterpartyName, v))
}

// CounterpartyNameEqualFold applies the EqualFold predicate on the "counterparty_name" field.
func CounterpartyNameEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldCounterpartyName, v))
}

// CounterpartyNameContainsFold applies the ContainsFold predicate on the "counterparty_name" field.
func CounterpartyNameContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldCounterpartyName, v))
}

// CounterpartyAccountEQ applies the EQ predicate on the "counterparty_account" field.
func CounterpartyAccountEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldCounterpartyAccount, v))
}

// CounterpartyAccountNEQ applies the NEQ predicate on the "counterparty_account" field.
func CounterpartyAccountNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldCounterpartyAccount, v))
}

// CounterpartyAccountIn applies the In predicate on the "counterparty_account" field.
func CounterpartyAccountIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldCounterpartyAccount, vs...))
}

// CounterpartyAccountNotIn applies the NotIn predicate on the "counterparty_account" field.
func CounterpartyAccountNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldCounterpartyAccount, vs...))
}

// CounterpartyAccountGT applies the GT predicate on the "counterparty_account" field.
func CounterpartyAccountGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldCounterpartyAccount, v))
}

// CounterpartyAccountGTE applies the GTE predicate on the "counterparty_account" field.
func CounterpartyAccountGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldCounterpartyAccount, v))
}

// CounterpartyAccountLT applies the LT predicate on the "counterparty_account" field.
func CounterpartyAccountLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldCounterpartyAccount, v))
}

// CounterpartyAccountLTE applies the LTE predicate on the "counterparty_account" field.
func CounterpartyAccountLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldCounterpartyAccount, v))
}

// CounterpartyAccountContains applies the Contains predicate on the "counterparty_account" field.
func CounterpartyAccountContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldCounterpartyAccount, v))
}

// CounterpartyAccountHasPrefix applies the HasPrefix predicate on the "counterparty_account" field.
func CounterpartyAccountHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldCounterpartyAccount, v))
}

// CounterpartyAccountHasSuffix applies the HasSuffix predicate on the "counterparty_account" field.
func CounterpartyAccountHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldCounterpartyAccount, v))
}

// CounterpartyAccountIsNil applies the IsNil predicate on the "counterparty_account" field.
func CounterpartyAccountIsNil() predicate.Notice {
	return predicate.Notice(sql.FieldIsNull(FieldCounterpartyAccount))
}

// CounterpartyAccountNotNil applies the NotNil predicate on the "counterparty_account" field.
func CounterpartyAccountNotNil() predicate.Notice {
	return predicate.Notice(sql.FieldNotNull(FieldCounterpartyAccount))
}

// CounterpartyAccountEqualFold applies the EqualFold predicate on the "counterparty_account" field.
func CounterpartyAccountEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldCounterpartyAccount, v))
}

// CounterpartyAccountContainsFold applies the ContainsFold predicate on the "counterparty_account" field.
func CounterpartyAccountContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldCounterpartyAccount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldStatus, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldFilePath, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldContent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTransactions applies the HasEdge predicate on the "transactions" edge.
func HasTransactions() predicate.Notice {
	return predicate.Notice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TransactionsTable, TransactionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTransactionsWith applies the HasEdge predicate on the "transactions" edge with a given conditions (other predicates).
func HasTransactionsWith(preds ...predicate.Transaction) predicate.Notice {
	return predicate.Notice(func(s *sql.Selector) {
		step := newTransactionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Notice) predicate.Notice {
	return predicate.Notice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Notice) predicate.Notice {
	return predicate.Notice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Notice) predicate.Notice {
	return predicate.Notice(sql.NotPredicates(p))
}
