package export

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/entity"
)

// TransactionStore is the read side the exporter needs.
type TransactionStore interface {
	ListByCase(ctx context.Context, caseID string) ([]*entity.Transaction, error)
}

// Service produces XLSX bytes of a case's transactions, for handoff to
// counsel or the court.
type Service struct {
	txs    TransactionStore
	logger *slog.Logger
}

func NewService(txs TransactionStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{txs: txs, logger: logger}
}

// ExportTransactionsXLSX renders every transaction of the case into one
// worksheet, ordered as the store returns them (date, then insertion).
func (s *Service) ExportTransactionsXLSX(ctx context.Context, caseID string) ([]byte, int, error) {
	start := time.Now()

	txs, err := s.txs.ListByCase(ctx, caseID)
	if err != nil {
		return nil, 0, fmt.Errorf("query transactions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Transactions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, 0, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the default sheet excelize creates
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := []string{
		"Date",
		"Source Account",
		"Recipient Account",
		"Recipient Name",
		"Amount",
		"Currency",
		"Description",
		"Excluded",
		"Notice",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, t := range txs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, t.TxDate.Format("2006-01-02"))
		write(2, t.SourceAccount)
		write(3, t.RecipientAccount)
		write(4, t.RecipientName)
		write(5, t.Amount.StringFixed(2))
		write(6, t.Currency)
		write(7, truncate(t.Description, 140))
		if t.Excluded {
			write(8, "yes")
		}
		if t.NoticeID != nil {
			write(9, t.NoticeID.String())
		}
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "C", 26)
	_ = f.SetColWidth(sheet, "D", "D", 28)
	_ = f.SetColWidth(sheet, "E", "F", 12)
	_ = f.SetColWidth(sheet, "G", "G", 48)
	_ = f.SetColWidth(sheet, "I", "I", 38)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"case_id", caseID,
		"rows", len(txs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), len(txs), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
