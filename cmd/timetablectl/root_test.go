package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = "교과목명,교수명,학점,이수구분,학부(과),분반,강의시간/강의실,캠퍼스구분,교과목코드\n" +
	"자료구조,김교수,3,전공필수,컴퓨터공학과,1,\"월1,2[공301]\",서울,100\n" +
	"자료구조,김교수,3,전공필수,컴퓨터공학과,2,\"화1,2\",서울,100\n" +
	"선형대수,이교수,3,전공선택,수학과,1,\"월2,3\",서울,200\n" +
	"채플,,1,교양,교양,1,,서울,300\n"

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))
	return path
}

func TestBuildSelection(t *testing.T) {
	cat := timetable.BuildCatalog([]timetable.Row{
		{Code: 100, Section: 1, TimeText: "월1,2", Name: "자료구조"},
		{Code: 100, Section: 2, TimeText: "화1,2", Name: "자료구조"},
		{Code: 200, Section: 1, TimeText: "월2,3", Name: "선형대수"},
		{Code: 300, Section: 1, Name: "채플"},
	})

	sel, rejected := buildSelection(cat, "100-1, 200-1,100-2,bad,,300-1,999-1")

	assert.Equal(t, timetable.Selection{{Code: 100, Section: 1}, {Code: 300, Section: 1}}, sel)
	require.Len(t, rejected, 4)
	assert.ErrorIs(t, rejected[0], timetable.ErrTimeConflict)
	assert.ErrorIs(t, rejected[1], timetable.ErrDuplicateSelection)
	assert.ErrorIs(t, rejected[3], timetable.ErrNotFound)
}

func TestCheckCommand(t *testing.T) {
	path := writeCatalog(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"check", "--file", path})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "courses:     4")
	assert.Contains(t, out.String(), "untimed:     1")
	assert.Contains(t, out.String(), "departments: 3")
}

func TestExportCommand(t *testing.T) {
	path := writeCatalog(t)
	dst := filepath.Join(t.TempDir(), "out.csv")

	var errOut bytes.Buffer
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"export", "--file", path, "--select", "100-1,200-1,300-1", "--out", dst})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), "자료구조")
	assert.Contains(t, string(data), "채플")
	assert.NotContains(t, string(data), "선형대수")
	assert.Contains(t, errOut.String(), "skipped")
}

func TestRenderCommand(t *testing.T) {
	path := writeCatalog(t)
	dst := filepath.Join(t.TempDir(), "week.png")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"render", "--file", path, "--select", "100-1", "--out", dst})
	require.NoError(t, rootCmd.Execute())

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	assert.Contains(t, out.String(), "1 courses, 3 credits")
}
