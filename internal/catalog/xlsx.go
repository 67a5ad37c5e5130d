package catalog

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Default sheet names of the registrar's workbook.
const (
	DefaultMajorSheet   = "2학기 전공 시간표"
	DefaultGeneralSheet = "2학기 교양 시간표"
)

// XLSXSource reads the general-education and major sheets of a workbook.
// General rows come first, then major rows.
type XLSXSource struct {
	Path         string
	MajorSheet   string
	GeneralSheet string
}

// NewXLSXSource creates a workbook source. Empty sheet names use the defaults.
func NewXLSXSource(path, majorSheet, generalSheet string) *XLSXSource {
	if majorSheet == "" {
		majorSheet = DefaultMajorSheet
	}
	if generalSheet == "" {
		generalSheet = DefaultGeneralSheet
	}
	return &XLSXSource{Path: path, MajorSheet: majorSheet, GeneralSheet: generalSheet}
}

// Load reads both sheets. A missing sheet fails the load.
func (s *XLSXSource) Load(ctx context.Context) ([]Row, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrCatalogLoad, s.Path, err)
	}
	defer f.Close()

	var all []Row
	for _, sheet := range []string{s.GeneralSheet, s.MajorSheet} {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("%w: read sheet %q: %v", ErrCatalogLoad, sheet, err)
		}

		rows, err := decodeRecords(records)
		if err != nil {
			return nil, fmt.Errorf("%w: decode sheet %q: %v", ErrCatalogLoad, sheet, err)
		}
		all = append(all, rows...)
	}

	return all, nil
}
