package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Freeeeeet/timetable_bot/internal/catalog"
	"github.com/Freeeeeet/timetable_bot/internal/repository/base"
	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var courseColumns = []string{
	"code", "section", "name", "instructor", "credits",
	"category", "department", "time_text", "campus", "position",
}

// CourseRepository хранит каталог курсов семестра в Postgres
type CourseRepository struct {
	*base.Repository
	logger *zap.Logger
}

func NewCourseRepository(pool *pgxpool.Pool, logger *zap.Logger) *CourseRepository {
	return &CourseRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// Load читает каталог в порядке импорта; реализует catalog.Source
func (r *CourseRepository) Load(ctx context.Context) ([]catalog.Row, error) {
	query := `
		SELECT code, section, name, instructor, credits, category, department, time_text, campus
		FROM courses
		ORDER BY position
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query courses", zap.Error(err))
		return nil, fmt.Errorf("%w: query courses: %v", catalog.ErrCatalogLoad, err)
	}
	defer rows.Close()

	var out []catalog.Row
	for rows.Next() {
		var (
			code    int64
			section int
			credits float64
			row     catalog.Row
		)
		err := rows.Scan(
			&code,
			&section,
			&row.Name,
			&row.Instructor,
			&credits,
			&row.Category,
			&row.Department,
			&row.TimeText,
			&row.Campus,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan course: %v", catalog.ErrCatalogLoad, err)
		}
		row.Code = strconv.FormatInt(code, 10)
		row.Section = strconv.Itoa(section)
		row.Credits = strconv.FormatFloat(credits, 'f', -1, 64)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate courses: %v", catalog.ErrCatalogLoad, err)
	}

	r.logger.Info("Retrieved courses", zap.Int("count", len(out)))

	return out, nil
}

// ReplaceAll заменяет весь каталог одной транзакцией.
// Повторяющиеся ключи пропускаются, сохраняется первая строка.
func (r *CourseRepository) ReplaceAll(ctx context.Context, rows []timetable.Row) (int64, error) {
	seen := make(map[timetable.CourseKey]struct{}, len(rows))
	data := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		key := timetable.CourseKey{Code: row.Code, Section: row.Section}
		if _, dup := seen[key]; dup {
			r.logger.Warn("Skipping duplicate course key", zap.String("course_key", key.String()))
			continue
		}
		seen[key] = struct{}{}
		data = append(data, []interface{}{
			row.Code, row.Section, row.Name, row.Instructor, row.Credits,
			row.Category, row.Department, row.TimeText, row.Campus, len(data),
		})
	}

	var copied int64
	err := r.InTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM courses`); err != nil {
			return fmt.Errorf("clear courses: %w", err)
		}

		n, err := tx.CopyFrom(ctx, pgx.Identifier{"courses"}, courseColumns, pgx.CopyFromRows(data))
		if err != nil {
			return fmt.Errorf("copy courses: %w", err)
		}
		copied = n
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to replace catalog", zap.Error(err))
		return 0, fmt.Errorf("replace courses: %w", err)
	}

	r.logger.Info("Catalog replaced", zap.Int64("courses", copied))

	return copied, nil
}

// Count возвращает количество курсов в каталоге
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return n, nil
}
