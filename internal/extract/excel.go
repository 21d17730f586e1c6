package extract

import (
	"context"
	"fmt"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/constants"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/profile"
)

// ExcelSource reads spreadsheet exports. Modern .xlsx goes through excelize;
// legacy BIFF .xls files need their own reader.
type ExcelSource struct {
	Path    string
	Profile *profile.Profile
}

func (s *ExcelSource) Each(ctx context.Context, fn func(RawRow) error) ([]common.RowError, error) {
	var rows [][]string
	var err error
	if constants.ExtOf(s.Path) == "xls" {
		rows, err = readXLS(s.Path)
	} else {
		rows, err = readXLSX(s.Path)
	}
	if err != nil {
		return nil, err
	}

	return eachTabular(ctx, func(yield func(int, []string) error) error {
		for i, record := range rows {
			if err := yield(i+1, record); err != nil {
				return err
			}
		}
		return nil
	}, s.Profile, fn)
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("xlsx has no sheets: %w", common.ErrUnsupportedFormat)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read xlsx sheet %s: %w", sheet, err)
	}
	return rows, nil
}

func readXLS(path string) ([][]string, error) {
	book, err := xls.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}
	sheet, err := book.GetSheet(0)
	if err != nil || sheet == nil {
		return nil, fmt.Errorf("xls has no sheets: %w", common.ErrUnsupportedFormat)
	}

	var rows [][]string
	for _, xlsRow := range sheet.GetRows() {
		var record []string
		for _, col := range xlsRow.GetCols() {
			record = append(record, col.GetString())
		}
		rows = append(rows, record)
	}
	return rows, nil
}
