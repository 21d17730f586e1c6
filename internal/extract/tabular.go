package extract

import (
	"context"
	"strings"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/profile"
)

// columnIndexes is the resolved mapping for one tabular pass.
type columnIndexes struct {
	sourceAccount    int
	recipientAccount int
	recipientName    int
	amount           int
	currency         int
	description      int
	date             int
}

func resolveColumns(p *profile.Profile, header []string) columnIndexes {
	return columnIndexes{
		sourceAccount:    profile.ResolveIndex(p.Columns.SourceAccount, header),
		recipientAccount: profile.ResolveIndex(p.Columns.RecipientAccount, header),
		recipientName:    profile.ResolveIndex(p.Columns.RecipientName, header),
		amount:           profile.ResolveIndex(p.Columns.Amount, header),
		currency:         profile.ResolveIndex(p.Columns.Currency, header),
		description:      profile.ResolveIndex(p.Columns.Description, header),
		date:             profile.ResolveIndex(p.Columns.Date, header),
	}
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// eachTabular walks row-oriented records (CSV, spreadsheets) through the
// mapping profile. The first record becomes the header when the profile says
// so; rows whose mapped fields are all empty are skipped, not reported.
func eachTabular(ctx context.Context, records func(yield func(line int, record []string) error) error, p *profile.Profile, fn func(RawRow) error) ([]common.RowError, error) {
	var warnings []common.RowError
	var cols columnIndexes
	resolved := false
	if !p.HasHeader {
		cols = resolveColumns(p, nil)
		resolved = true
	}

	err := records(func(line int, record []string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !resolved {
			cols = resolveColumns(p, record)
			resolved = true
			if cols.amount < 0 || cols.date < 0 {
				warnings = append(warnings, common.RowError{
					Row:   line,
					Value: strings.Join(record, ","),
					Err:   common.WrapError(common.ErrInvalidInput, "header does not match mapping profile"),
				})
			}
			return nil
		}

		row := RawRow{
			Line: line,
			Fields: map[string]string{
				FieldSourceAccount:    cell(record, cols.sourceAccount),
				FieldRecipientAccount: cell(record, cols.recipientAccount),
				FieldRecipientName:    cell(record, cols.recipientName),
				FieldAmount:           cell(record, cols.amount),
				FieldCurrency:         cell(record, cols.currency),
				FieldDescription:      cell(record, cols.description),
				FieldDate:             cell(record, cols.date),
			},
		}
		if allEmpty(row.Fields) {
			return nil
		}
		return fn(row)
	})
	return warnings, err
}

func allEmpty(fields map[string]string) bool {
	for _, v := range fields {
		if v != "" {
			return false
		}
	}
	return true
}
