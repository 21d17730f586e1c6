package extract

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/profile"
)

// PDFTextSource extracts rows from PDF statement text, either the PDF's own
// text layer or the OCR sidecar produced for a scanned document.
//
// Row boundary heuristic (lossy by nature, kept replaceable behind the
// RowSource interface): a transaction row starts at a line whose first few
// characters match a date pattern and which carries an amount-shaped token;
// following lines without a date anchor are treated as wrapped description
// text and folded into the current row. Anything before the first anchor
// (headers, balances, addresses) is ignored. Column positions are NOT
// recoverable from flowed text, so only date, amount and description are
// emitted; account fields come from the mapping profile's defaults or stay
// empty.
type PDFTextSource struct {
	Path     string
	TextPath string // when set, read this sidecar instead of the PDF itself
	Profile  *profile.Profile
}

var (
	// DD.MM.YYYY, DD/MM/YYYY, DD-MM-YY and ISO dates, anchored near line start
	rowDatePattern = regexp.MustCompile(`^\s{0,3}(\d{1,2}[./-]\d{1,2}[./-]\d{2,4}|\d{4}-\d{2}-\d{2})\b`)
	// amount token: optional sign or parens, grouped thousands, 2 decimals
	amountPattern = regexp.MustCompile(`[-+]?\(?\d{1,3}(?:[.,\x{00A0}]?\d{3})*[.,]\d{2}\)?`)
)

func (s *PDFTextSource) Each(ctx context.Context, fn func(RawRow) error) ([]common.RowError, error) {
	text, err := s.load()
	if err != nil {
		return nil, err
	}

	var warnings []common.RowError
	var current *RawRow
	flush := func() error {
		if current == nil {
			return nil
		}
		row := *current
		current = nil
		return fn(row)
	}

	for i, line := range strings.Split(text, "\n") {
		if err := ctx.Err(); err != nil {
			return warnings, err
		}
		line = strings.TrimRight(line, " \t\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		m := rowDatePattern.FindStringSubmatch(line)
		if m == nil {
			// wrapped continuation of the current row's description
			if current != nil {
				current.Fields[FieldDescription] = strings.TrimSpace(
					current.Fields[FieldDescription] + " " + trimmed)
			}
			continue
		}

		if err := flush(); err != nil {
			return warnings, err
		}

		date := m[1]
		rest := strings.TrimSpace(line[len(m[0]):])
		amounts := amountPattern.FindAllString(rest, -1)
		if len(amounts) == 0 {
			warnings = append(warnings, common.RowError{
				Row:   i + 1,
				Field: FieldAmount,
				Value: truncateValue(trimmed),
				Err:   fmt.Errorf("date-anchored line without amount token"),
			})
			continue
		}
		// statements print the booked amount last (a trailing balance column,
		// when present, is beyond the profile's reach in flowed text)
		amount := strings.TrimSpace(amounts[len(amounts)-1])
		desc := strings.TrimSpace(strings.Replace(rest, amount, "", 1))

		current = &RawRow{
			Line: i + 1,
			Fields: map[string]string{
				FieldDate:        date,
				FieldAmount:      amount,
				FieldDescription: desc,
			},
		}
	}
	if err := flush(); err != nil {
		return warnings, err
	}
	return warnings, nil
}

func (s *PDFTextSource) load() (string, error) {
	if s.TextPath != "" {
		raw, err := os.ReadFile(s.TextPath)
		if err != nil {
			return "", fmt.Errorf("read ocr sidecar: %w", err)
		}
		return string(raw), nil
	}
	return extractPDFText(s.Path)
}

// extractPDFText pulls the text layer row by row, recovering from library
// panics on malformed files.
func extractPDFText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf text extraction panicked: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
	}
	return b.String(), nil
}

func truncateValue(s string) string {
	const max = 120
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
