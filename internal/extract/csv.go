package extract

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/common"
	"github.com/yturchin/insolventz-v5-dashboard-upgraded/internal/profile"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVSource reads bank statement CSV exports. The delimiter is sniffed from
// the first chunk of the file, since German exports favor semicolons while
// anglophone ones use commas.
type CSVSource struct {
	Path    string
	Profile *profile.Profile
}

func (s *CSVSource) Each(ctx context.Context, fn func(RawRow) error) ([]common.RowError, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	sample, _ := br.Peek(4096)
	if bytes.HasPrefix(sample, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
		sample = sample[len(utf8BOM):]
	}

	r := csv.NewReader(br)
	r.Comma = sniffDelimiter(sample)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	var rowErrs []common.RowError
	warnings, err := eachTabular(ctx, func(yield func(int, []string) error) error {
		line := 0
		for {
			record, err := r.Read()
			if err == io.EOF {
				return nil
			}
			line++
			if err != nil {
				var perr *csv.ParseError
				if errors.As(err, &perr) {
					// bad quoting on one line does not fail the document
					rowErrs = append(rowErrs, common.RowError{Row: line, Err: err})
					continue
				}
				return fmt.Errorf("read csv: %w", err)
			}
			if err := yield(line, record); err != nil {
				return err
			}
		}
	}, s.Profile, fn)
	return append(warnings, rowErrs...), err
}

// sniffDelimiter picks ';' when the sample contains at least as many
// semicolons as commas, matching how the statements we ingest are exported.
func sniffDelimiter(sample []byte) rune {
	if bytes.Contains(sample, []byte(";")) &&
		bytes.Count(sample, []byte(";")) >= bytes.Count(sample, []byte(",")) {
		return ';'
	}
	return ','
}
