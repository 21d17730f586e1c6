// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/db/ent/schema"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent/document"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent/notice"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/gen/ent/transaction"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescCaseID is the schema descriptor for case_id field.
	documentDescCaseID := documentFields[1].Descriptor()
	// document.CaseIDValidator is a validator for the "case_id" field. It is called by the builders before save.
	document.CaseIDValidator = documentDescCaseID.Validators[0].(func(string) error)
	// documentDescFileName is the schema descriptor for file_name field.
	documentDescFileName := documentFields[2].Descriptor()
	// document.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	document.FileNameValidator = documentDescFileName.Validators[0].(func(string) error)
	// documentDescFilePath is the schema descriptor for file_path field.
	documentDescFilePath := documentFields[3].Descriptor()
	// document.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	document.FilePathValidator = documentDescFilePath.Validators[0].(func(string) error)
	// documentDescFormat is the schema descriptor for format field.
	documentDescFormat := documentFields[4].Descriptor()
	// document.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	document.FormatValidator = documentDescFormat.Validators[0].(func(string) error)
	// documentDescOcrStatus is the schema descriptor for ocr_status field.
	documentDescOcrStatus := documentFields[5].Descriptor()
	// document.DefaultOcrStatus holds the default value on creation for the ocr_status field.
	document.DefaultOcrStatus = documentDescOcrStatus.Default.(string)
	// document.OcrStatusValidator is a validator for the "ocr_status" field. It is called by the builders before save.
	document.OcrStatusValidator = documentDescOcrStatus.Validators[0].(func(string) error)
	// documentDescOcrProgress is the schema descriptor for ocr_progress field.
	documentDescOcrProgress := documentFields[6].Descriptor()
	// document.DefaultOcrProgress holds the default value on creation for the ocr_progress field.
	document.DefaultOcrProgress = documentDescOcrProgress.Default.(int)
	// document.OcrProgressValidator is a validator for the "ocr_progress" field. It is called by the builders before save.
	document.OcrProgressValidator = func() func(int) error {
		validators := documentDescOcrProgress.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(ocr_progress int) error {
			for _, fn := range fns {
				if err := fn(ocr_progress); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[10].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	noticeFields := schema.Notice{}.Fields()
	_ = noticeFields
	// noticeDescCaseID is the schema descriptor for case_id field.
	noticeDescCaseID := noticeFields[1].Descriptor()
	// notice.CaseIDValidator is a validator for the "case_id" field. It is called by the builders before save.
	notice.CaseIDValidator = noticeDescCaseID.Validators[0].(func(string) error)
	// noticeDescCounterpartyName is the schema descriptor for counterparty_name field.
	noticeDescCounterpartyName := noticeFields[2].Descriptor()
	// notice.CounterpartyNameValidator is a validator for the "counterparty_name" field. It is called by the builders before save.
	notice.CounterpartyNameValidator = noticeDescCounterpartyName.Validators[0].(func(string) error)
	// noticeDescStatus is the schema descriptor for status field.
	noticeDescStatus := noticeFields[4].Descriptor()
	// notice.DefaultStatus holds the default value on creation for the status field.
	notice.DefaultStatus = noticeDescStatus.Default.(string)
	// notice.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	notice.StatusValidator = noticeDescStatus.Validators[0].(func(string) error)
	// noticeDescFilePath is the schema descriptor for file_path field.
	noticeDescFilePath := noticeFields[5].Descriptor()
	// notice.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	notice.FilePathValidator = noticeDescFilePath.Validators[0].(func(string) error)
	// noticeDescCreatedAt is the schema descriptor for created_at field.
	noticeDescCreatedAt := noticeFields[7].Descriptor()
	// notice.DefaultCreatedAt holds the default value on creation for the created_at field.
	notice.DefaultCreatedAt = noticeDescCreatedAt.Default.(func() time.Time)
	// noticeDescUpdatedAt is the schema descriptor for updated_at field.
	noticeDescUpdatedAt := noticeFields[8].Descriptor()
	// notice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notice.DefaultUpdatedAt = noticeDescUpdatedAt.Default.(func() time.Time)
	// notice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notice.UpdateDefaultUpdatedAt = noticeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// noticeDescID is the schema descriptor for id field.
	noticeDescID := noticeFields[0].Descriptor()
	// notice.DefaultID holds the default value on creation for the id field.
	notice.DefaultID = noticeDescID.Default.(func() uuid.UUID)
	transactionFields := schema.Transaction{}.Fields()
	_ = transactionFields
	// transactionDescCaseID is the schema descriptor for case_id field.
	transactionDescCaseID := transactionFields[1].Descriptor()
	// transaction.CaseIDValidator is a validator for the "case_id" field. It is called by the builders before save.
	transaction.CaseIDValidator = transactionDescCaseID.Validators[0].(func(string) error)
	// transactionDescAmount is the schema descriptor for amount field.
	transactionDescAmount := transactionFields[6].Descriptor()
	// transaction.AmountValidator is a validator for the "amount" field. It is called by the builders before save.
	transaction.AmountValidator = transactionDescAmount.Validators[0].(func(string) error)
	// transactionDescCurrency is the schema descriptor for currency field.
	transactionDescCurrency := transactionFields[7].Descriptor()
	// transaction.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	transaction.CurrencyValidator = transactionDescCurrency.Validators[0].(func(string) error)
	// transactionDescTxHash is the schema descriptor for tx_hash field.
	transactionDescTxHash := transactionFields[10].Descriptor()
	// transaction.TxHashValidator is a validator for the "tx_hash" field. It is called by the builders before save.
	transaction.TxHashValidator = func() func(string) error {
		validators := transactionDescTxHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(tx_hash string) error {
			for _, fn := range fns {
				if err := fn(tx_hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// transactionDescExcluded is the schema descriptor for excluded field.
	transactionDescExcluded := transactionFields[12].Descriptor()
	// transaction.DefaultExcluded holds the default value on creation for the excluded field.
	transaction.DefaultExcluded = transactionDescExcluded.Default.(bool)
	// transactionDescCreatedAt is the schema descriptor for created_at field.
	transactionDescCreatedAt := transactionFields[14].Descriptor()
	// transaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	transaction.DefaultCreatedAt = transactionDescCreatedAt.Default.(func() time.Time)
	// transactionDescUpdatedAt is the schema descriptor for updated_at field.
	transactionDescUpdatedAt := transactionFields[15].Descriptor()
	// transaction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	transaction.DefaultUpdatedAt = transactionDescUpdatedAt.Default.(func() time.Time)
	// transaction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	transaction.UpdateDefaultUpdatedAt = transactionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// transactionDescID is the schema descriptor for id field.
	transactionDescID := transactionFields[0].Descriptor()
	// transaction.DefaultID holds the default value on creation for the id field.
	transaction.DefaultID = transactionDescID.Default.(func() uuid.UUID)
}
