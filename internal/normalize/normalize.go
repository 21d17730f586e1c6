// Package normalize converts raw extracted rows into canonical, typed
// transactions. Amounts become fixed-point decimals, dates a single calendar
// representation; display strings keep their original casing.
package normalize

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/entity"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/extract"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/profile"
)

type Normalizer struct {
	Profile *profile.Profile
}

func New(p *profile.Profile) *Normalizer {
	return &Normalizer{Profile: p}
}

// Normalize builds the canonical (unhashed) transaction for one raw row.
// Failures are row-scoped: the returned error is a common.RowError meant to
// be collected as a warning, never to abort the document.
func (n *Normalizer) Normalize(row extract.RawRow, caseID string, documentID uuid.UUID) (*entity.Transaction, error) {
	get := func(field string) string { return strings.TrimSpace(row.Fields[field]) }

	rawAmount := get(extract.FieldAmount)
	rawDate := get(extract.FieldDate)
	srcAccount := normalizeAccount(get(extract.FieldSourceAccount))
	rcpAccount := normalizeAccount(get(extract.FieldRecipientAccount))
	rcpName := get(extract.FieldRecipientName)
	description := collapseWhitespace(get(extract.FieldDescription))

	if rawAmount == "" && rawDate == "" && srcAccount == "" && rcpAccount == "" && rcpName == "" && description == "" {
		return nil, common.RowError{Row: row.Line, Err: fmt.Errorf("all key fields empty")}
	}

	amount, err := ParseAmount(rawAmount, n.Profile.DecimalComma)
	if err != nil {
		return nil, common.RowError{Row: row.Line, Field: extract.FieldAmount, Value: rawAmount, Err: err}
	}
	date, err := ParseDate(rawDate, n.Profile.DateOrder)
	if err != nil {
		return nil, common.RowError{Row: row.Line, Field: extract.FieldDate, Value: rawDate, Err: err}
	}

	currency := strings.ToUpper(get(extract.FieldCurrency))
	if currency == "" {
		currency = strings.ToUpper(n.Profile.DefaultCurrency)
	}
	if len(currency) > 3 {
		currency = currency[:3]
	}

	return &entity.Transaction{
		CaseID:           caseID,
		DocumentID:       documentID,
		SourceAccount:    srcAccount,
		RecipientAccount: rcpAccount,
		RecipientName:    rcpName,
		Amount:           amount,
		Currency:         currency,
		Description:      description,
		TxDate:           date,
	}, nil
}

// normalizeAccount strips interior whitespace and uppercases, the way IBANs
// are printed versus stored.
func normalizeAccount(s string) string {
	if s == "" || s == "-" || s == "—" {
		return ""
	}
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

// collapseWhitespace folds runs of whitespace into single spaces while
// preserving the original character casing for display.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
