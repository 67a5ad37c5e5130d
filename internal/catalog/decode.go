package catalog

import (
	"io"
	"strings"

	"github.com/gocarina/gocsv"
)

// recordReader feeds already split records to gocsv.
type recordReader struct {
	records [][]string
	pos     int
}

func (r *recordReader) Read() ([]string, error) {
	if r.pos >= len(r.records) {
		return nil, io.EOF
	}
	rec := r.records[r.pos]
	r.pos++
	return rec, nil
}

func (r *recordReader) ReadAll() ([][]string, error) {
	rest := r.records[r.pos:]
	r.pos = len(r.records)
	return rest, nil
}

// decodeRecords maps a header row plus data rows onto Row using the csv tags.
// Header cells are trimmed and aliased; short rows are padded.
func decodeRecords(records [][]string) ([]Row, error) {
	if len(records) == 0 {
		return nil, nil
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if alias, ok := headerAliases[h]; ok {
			h = alias
		}
		header[i] = h
	}

	normalized := make([][]string, 0, len(records))
	normalized = append(normalized, header)
	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		if len(rec) < len(header) {
			padded := make([]string, len(header))
			copy(padded, rec)
			rec = padded
		}
		normalized = append(normalized, rec)
	}

	var rows []Row
	if err := gocsv.UnmarshalCSV(&recordReader{records: normalized}, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func isBlank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
