// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCaseID, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileName, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilePath, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFormat, v))
}

// OcrStatus applies equality check predicate on the "ocr_status" field. It's identical to OcrStatusEQ.
func OcrStatus(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrStatus, v))
}

// OcrProgress applies equality check predicate on the "ocr_progress" field. It's identical to OcrProgressEQ.
func OcrProgress(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrProgress, v))
}

// OcrStartedAt applies equality check predicate on the "ocr_started_at" field. It's identical to OcrStartedAtEQ.
func OcrStartedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrStartedAt, v))
}

// OcrError applies equality check predicate on the "ocr_error" field. It's identical to OcrErrorEQ.
func OcrError(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrError, v))
}

// TextPath applies equality check predicate on the "text_path" field. It's identical to TextPathEQ.
func TextPath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTextPath, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessedAt, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldCaseID, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileName, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFilePath, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatIsNil applies the IsNil predicate on the "format" field.
func FormatIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldFormat))
}

// FormatNotNil applies the NotNil predicate on the "format" field.
func FormatNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldFormat))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFormat, v))
}

// OcrStatusEQ applies the EQ predicate on the "ocr_status" field.
func OcrStatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrStatus, v))
}

// OcrStatusNEQ applies the NEQ predicate on the "ocr_status" field.
func OcrStatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrStatus, v))
}

// OcrStatusIn applies the In predicate on the "ocr_status" field.
func OcrStatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrStatus, vs...))
}

// OcrStatusNotIn applies the NotIn predicate on the "ocr_status" field.
func OcrStatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrStatus, vs...))
}

// OcrStatusGT applies the GT predicate on the "ocr_status" field.
func OcrStatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrStatus, v))
}

// OcrStatusGTE applies the GTE predicate on the "ocr_status" field.
func OcrStatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrStatus, v))
}

// OcrStatusLT applies the LT predicate on the "ocr_status" field.
func OcrStatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrStatus, v))
}

// OcrStatusLTE applies the LTE predicate on the "ocr_status" field.
func OcrStatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrStatus, v))
}

// OcrStatusContains applies the Contains predicate on the "ocr_status" field.
func OcrStatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOcrStatus, v))
}

// OcrStatusHasPrefix applies the HasPrefix predicate on the "ocr_status" field.
func OcrStatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOcrStatus, v))
}

// OcrStatusHasSuffix applies the HasSuffix predicate on the "ocr_status" field.
func OcrStatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOcrStatus, v))
}

// OcrStatusEqualFold applies the EqualFold predicate on the "ocr_status" field.
func OcrStatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOcrStatus, v))
}

// OcrStatusContainsFold applies the ContainsFold predicate on the "ocr_status" field.
func OcrStatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOcrStatus, v))
}

// OcrProgressEQ applies the EQ predicate on the "ocr_progress" field.
func OcrProgressEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrProgress, v))
}

// OcrProgressNEQ applies the NEQ predicate on the "ocr_progress" field.
func OcrProgressNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrProgress, v))
}

// OcrProgressIn applies the In predicate on the "ocr_progress" field.
func OcrProgressIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrProgress, vs...))
}

// OcrProgressNotIn applies the NotIn predicate on the "ocr_progress" field.
func OcrProgressNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrProgress, vs...))
}

// OcrProgressGT applies the GT predicate on the "ocr_progress" field.
func OcrProgressGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrProgress, v))
}

// OcrProgressGTE applies the GTE predicate on the "ocr_progress" field.
func OcrProgressGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrProgress, v))
}

// OcrProgressLT applies the LT predicate on the "ocr_progress" field.
func OcrProgressLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrProgress, v))
}

// OcrProgressLTE applies the LTE predicate on the "ocr_progress" field.
func OcrProgressLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrProgress, v))
}

// OcrStartedAtEQ applies the EQ predicate on the "ocr_started_at" field.
func OcrStartedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrStartedAt, v))
}

// OcrStartedAtNEQ applies the NEQ predicate on the "ocr_started_at" field.
func OcrStartedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrStartedAt, v))
}

// OcrStartedAtIn applies the In predicate on the "ocr_started_at" field.
func OcrStartedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrStartedAt, vs...))
}

// OcrStartedAtNotIn applies the NotIn predicate on the "ocr_started_at" field.
func OcrStartedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrStartedAt, vs...))
}

// OcrStartedAtGT applies the GT predicate on the "ocr_started_at" field.
func OcrStartedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrStartedAt, v))
}

// OcrStartedAtGTE applies the GTE predicate on the "ocr_started_at" field.
func OcrStartedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrStartedAt, v))
}

// OcrStartedAtLT applies the LT predicate on the "ocr_started_at" field.
func OcrStartedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrStartedAt, v))
}

// OcrStartedAtLTE applies the LTE predicate on the "ocr_started_at" field.
func OcrStartedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrStartedAt, v))
}

// OcrStartedAtIsNil applies the IsNil predicate on the "ocr_started_at" field.
func OcrStartedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOcrStartedAt))
}

// OcrStartedAtNotNil applies the NotNil predicate on the "ocr_started_at" field.
func OcrStartedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOcrStartedAt))
}

// OcrErrorEQ applies the EQ predicate on the "ocr_error" field.
func OcrErrorEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldOcrError, v))
}

// OcrErrorNEQ applies the NEQ predicate on the "ocr_error" field.
func OcrErrorNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldOcrError, v))
}

// OcrErrorIn applies the In predicate on the "ocr_error" field.
func OcrErrorIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldOcrError, vs...))
}

// OcrErrorNotIn applies the NotIn predicate on the "ocr_error" field.
func OcrErrorNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldOcrError, vs...))
}

// OcrErrorGT applies the GT predicate on the "ocr_error" field.
func OcrErrorGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldOcrError, v))
}

// OcrErrorGTE applies the GTE predicate on the "ocr_error" field.
func OcrErrorGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldOcrError, v))
}

// OcrErrorLT applies the LT predicate on the "ocr_error" field.
func OcrErrorLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldOcrError, v))
}

// OcrErrorLTE applies the LTE predicate on the "ocr_error" field.
func OcrErrorLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldOcrError, v))
}

// OcrErrorContains applies the Contains predicate on the "ocr_error" field.
func OcrErrorContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldOcrError, v))
}

// OcrErrorHasPrefix applies the HasPrefix predicate on the "ocr_error" field.
func OcrErrorHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldOcrError, v))
}

// OcrErrorHasSuffix applies the HasSuffix predicate on the "ocr_error" field.
func OcrErrorHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldOcrError, v))
}

// OcrErrorIsNil applies the IsNil predicate on the "ocr_error" field.
func OcrErrorIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldOcrError))
}

// OcrErrorNotNil applies the NotNil predicate on the "ocr_error" field.
func OcrErrorNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldOcrError))
}

// OcrErrorEqualFold applies the EqualFold predicate on the "ocr_error" field.
func OcrErrorEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldOcrError, v))
}

// OcrErrorContainsFold applies the ContainsFold predicate on the "ocr_error" field.
func OcrErrorContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldOcrError, v))
}

// TextPathEQ applies the EQ predicate on the "text_path" field.
func TextPathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTextPath, v))
}

// TextPathNEQ applies the NEQ predicate on the "text_path" field.
func TextPathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTextPath, v))
}

// TextPathIn applies the In predicate on the "text_path" field.
func TextPathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTextPath, vs...))
}

// TextPathNotIn applies the NotIn predicate on the "text_path" field.
func TextPathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTextPath, vs...))
}

// TextPathGT applies the GT predicate on the "text_path" field.
func TextPathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldTextPath, v))
}

// TextPathGTE applies the GTE predicate on the "text_path" field.
func TextPathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldTextPath, v))
}

// TextPathLT applies the LT predicate on the "text_path" field.
func TextPathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldTextPath, v))
}

// TextPathLTE applies the LTE predicate on the "text_path" field.
func TextPathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldTextPath, v))
}

// TextPathContains applies the Contains predicate on the "text_path" field.
func TextPathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldTextPath, v))
}

// TextPathHasPrefix applies the HasPrefix predicate on the "text_path" field.
func TextPathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldTextPath, v))
}

// TextPathHasSuffix applies the HasSuffix predicate on the "text_path" field.
func TextPathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldTextPath, v))
}

// TextPathIsNil applies the IsNil predicate on the "text_path" field.
func TextPathIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldTextPath))
}

// TextPathNotNil applies the NotNil predicate on the "text_path" field.
func TextPathNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldTextPath))
}

// TextPathEqualFold applies the EqualFold predicate on the "text_path" field.
func TextPathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldTextPath, v))
}

// TextPathContainsFold applies the ContainsFold predicate on the "text_path" field.
func TextPathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldTextPath, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUploadedAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldProcessedAt))
}

// HasTransactions applies the HasEdge predicate on the "transactions" edge.
func HasTransactions() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TransactionsTable, TransactionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTransactionsWith applies the HasEdge predicate on the "transactions" edge with a given conditions (other predicates).
func HasTransactionsWith(preds ...predicate.Transaction) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newTransactionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
