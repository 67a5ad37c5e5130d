package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheets map[string][][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			r := row
			require.NoError(t, f.SetSheetRow(name, cell, &r))
		}
	}

	path := filepath.Join(t.TempDir(), "timetable.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSXSourceLoad(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		DefaultGeneralSheet: {
			{"교과목명", "교수명", "학점", "이수구분", "학과", "수강반번호", "강의시간/강의실", "캠퍼스구분", "교과목코드"},
			{"글쓰기", "김철수", 2, "교양", "국어국문학과", 1, "화1,2", "가좌", 5678},
		},
		DefaultMajorSheet: {
			{"교과목명", "교수명", "학점", "이수구분", "학부(과)", "분반", "강의시간/강의실", "캠퍼스구분", "교과목코드"},
			{"자료구조", "홍길동", 3, "전공필수", "컴퓨터공학과", 1, "월1,2[공301]", "가좌", 1234},
			{"캡스톤", "박", 3, "전공선택", "컴퓨터공학과", 2},
		},
	})

	rows, err := NewXLSXSource(path, "", "").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "글쓰기", rows[0].Name)
	assert.Equal(t, "국어국문학과", rows[0].Department)
	assert.Equal(t, "1", rows[0].Section)
	assert.Equal(t, "자료구조", rows[1].Name)
	assert.Equal(t, "월1,2[공301]", rows[1].TimeText)
	assert.Equal(t, "", rows[2].Code)
}

func TestXLSXSourceMissingSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		DefaultMajorSheet: {{"교과목명", "분반", "교과목코드"}},
	})

	_, err := NewXLSXSource(path, "", "").Load(context.Background())
	assert.ErrorIs(t, err, ErrCatalogLoad)
}
