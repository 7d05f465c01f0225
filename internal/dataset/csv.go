package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Row represents a single table row with column name to value mapping. A
// row shorter than the header only carries the columns it has values for;
// fields past the last header column are dropped.
type Row map[string]string

// Table is a parsed table file: the header row and the data rows under it.
// An empty file has neither.
type Table struct {
	Header []string
	Rows   []Row
}

// HasColumn reports whether the header names column.
func (t *Table) HasColumn(column string) bool {
	for _, h := range t.Header {
		if h == column {
			return true
		}
	}
	return false
}

// Option configures how a table file is parsed.
type Option func(*csv.Reader)

// WithComma sets the field delimiter, e.g. '\t' for tab-separated files.
func WithComma(r rune) Option {
	return func(cr *csv.Reader) {
		cr.Comma = r
	}
}

// Load reads a delimited table file. The first row is treated as headers
// (column names). Fields default to comma-separated. Rows may have fewer or
// more fields than the header.
func Load(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	for _, opt := range opts {
		opt(reader)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: parse %s: %w", path, err)
	}

	table := &Table{}
	if len(records) == 0 {
		return table, nil
	}

	table.Header = records[0]
	table.Rows = make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		n := min(len(record), len(table.Header))
		row := make(Row, n)
		for j := range n {
			row[table.Header[j]] = record[j]
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// LoadTSV reads a tab-separated table file.
func LoadTSV(path string) (*Table, error) {
	return Load(path, WithComma('\t'))
}
