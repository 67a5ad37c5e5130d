package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"go.uber.org/zap"
)

// File formats accepted by OpenSource.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// FileSource picks a loader by file extension.
func FileSource(path, majorSheet, generalSheet string) (Source, error) {
	return OpenSource("", path, majorSheet, generalSheet)
}

// OpenSource returns a loader for format. An empty format is inferred from
// the file extension; an explicit one wins over the extension.
func OpenSource(format, path, majorSheet, generalSheet string) (Source, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv":
			format = FormatCSV
		case ".xlsx", ".xlsm":
			format = FormatXLSX
		}
	}

	switch format {
	case FormatCSV:
		return NewCSVSource(path), nil
	case FormatXLSX:
		return NewXLSXSource(path, majorSheet, generalSheet), nil
	case "":
		return nil, fmt.Errorf("%w: unsupported catalog file %q", ErrCatalogLoad, path)
	default:
		return nil, fmt.Errorf("%w: unknown catalog format %q", ErrCatalogLoad, format)
	}
}

// Load reads src, validates the rows and builds the catalog.
func Load(ctx context.Context, src Source, logger *zap.Logger) (*timetable.Catalog, error) {
	raw, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}

	rows, dropped, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no courses in source", ErrCatalogLoad)
	}

	cat := timetable.BuildCatalog(rows)

	untimed := 0
	for _, c := range cat.Courses() {
		if c.Untimed() {
			untimed++
		}
	}

	logger.Info("Catalog loaded",
		zap.Int("raw_rows", len(raw)),
		zap.Int("dropped_rows", dropped),
		zap.Int("courses", cat.Len()),
		zap.Int("untimed", untimed),
		zap.Int("departments", len(cat.Departments())),
		zap.Int("duplicate_keys", len(cat.Duplicates())),
	)
	for _, k := range cat.Duplicates() {
		logger.Warn("Duplicate course key in catalog, keeping first row",
			zap.String("course_key", k.String()))
	}

	return cat, nil
}
