package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSVSource reads a single timetable CSV with the registrar's headers.
type CSVSource struct {
	Path  string
	Comma rune
}

// NewCSVSource creates a comma separated source.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path, Comma: ','}
}

// Load reads every row of the file.
func (s *CSVSource) Load(ctx context.Context) ([]Row, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrCatalogLoad, s.Path, err)
	}
	defer f.Close()

	rows, err := ReadCSV(ctx, f, s.Comma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return rows, nil
}

// ReadCSV decodes rows from r.
func ReadCSV(ctx context.Context, r io.Reader, comma rune) ([]Row, error) {
	reader := csv.NewReader(r)
	if comma != 0 {
		reader.Comma = comma
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: read csv: %v", ErrCatalogLoad, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := decodeRecords(records)
	if err != nil {
		return nil, fmt.Errorf("%w: decode csv: %v", ErrCatalogLoad, err)
	}
	return rows, nil
}
