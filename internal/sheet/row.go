package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row is one data row keyed by the sheet's header row. Column order is
// preserved: Find resolves against columns in sheet order, so when several
// headers match the same keyword the leftmost column wins.
type Row struct {
	headers []string
	values  []string
}

// Get returns the value under an exact header, or "".
func (r Row) Get(header string) string {
	for i, h := range r.headers {
		if h == header {
			return r.values[i]
		}
	}
	return ""
}

// Find returns the value of the first column whose lowercased header contains
// any of the keywords as a substring. Missing columns are not an error; ""
// is the "no data" sentinel propagated downstream.
//
// The match is deliberately fuzzy: the sheet is maintained by hand and headers
// get renamed ("Nombre del Negocio", "Nombre:", ...) without notice.
func (r Row) Find(keywords ...string) string {
	for i, h := range r.headers {
		lower := strings.ToLower(h)
		for _, kw := range keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return r.values[i]
			}
		}
	}
	return ""
}

// FindOr is Find with a default for the empty result.
func (r Row) FindOr(fallback string, keywords ...string) string {
	if v := r.Find(keywords...); v != "" {
		return v
	}
	return fallback
}

// ParseRows reads comma-delimited text where the first record is the header
// row. Ragged and quote-mangled rows are tolerated; rows shorter than the
// header are padded with "" and fully empty rows are skipped.
func ParseRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv read error: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv data is empty")
	}

	headers := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if isEmpty(rec) {
			continue
		}
		values := make([]string, len(headers))
		for i := range headers {
			if i < len(rec) {
				values[i] = rec[i]
			}
		}
		rows = append(rows, Row{headers: headers, values: values})
	}
	return rows, nil
}

// NewRow builds a row directly, mainly for tests.
func NewRow(headers, values []string) Row {
	vals := make([]string, len(headers))
	copy(vals, values)
	return Row{headers: headers, values: vals}
}

func isEmpty(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
