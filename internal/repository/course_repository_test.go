package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Freeeeeet/timetable_bot/internal/app"
	"github.com/Freeeeeet/timetable_bot/internal/catalog"
	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRepository поднимает репозиторий на TEST_DB_DSN; без него тест пропускается
func newTestRepository(t *testing.T) *CourseRepository {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	migrator, err := app.NewMigrator(pool, "../../migrations", zap.NewNop())
	require.NoError(t, err)
	defer migrator.Close()
	require.NoError(t, migrator.Run(ctx))

	return NewCourseRepository(pool, zap.NewNop())
}

func TestCourseRepository_ReplaceAndLoad(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	n, err := repo.ReplaceAll(ctx, []timetable.Row{
		{Code: 200, Section: 1, Credits: 3, TimeText: "월2,3", Name: "선형대수", Department: "수학과"},
		{Code: 100, Section: 1, Credits: 2.5, TimeText: "월1,2[공301]", Name: "자료구조", Department: "컴퓨터공학과"},
		{Code: 200, Section: 1, Credits: 1, TimeText: "금9", Name: "중복"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	rows, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "200", rows[0].Code)
	assert.Equal(t, "선형대수", rows[0].Name)
	assert.Equal(t, "2.5", rows[1].Credits)
	assert.Equal(t, "월1,2[공301]", rows[1].TimeText)

	cat, err := catalog.Load(ctx, repo, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())
}

func TestCourseRepository_ReplaceClearsPrevious(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.ReplaceAll(ctx, []timetable.Row{{Code: 1, Section: 1, Name: "a"}, {Code: 2, Section: 1, Name: "b"}})
	require.NoError(t, err)
	_, err = repo.ReplaceAll(ctx, []timetable.Row{{Code: 3, Section: 1, Name: "c"}})
	require.NoError(t, err)

	rows, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "3", rows[0].Code)
}
