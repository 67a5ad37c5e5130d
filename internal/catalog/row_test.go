package catalog

import (
	"testing"

	"github.com/Freeeeeet/timetable_bot/internal/timetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	raw := []Row{
		{Name: "자료구조", Instructor: " 홍길동 ", Credits: "3", Department: "컴퓨터공학과", Section: "1", TimeText: "월1,2[공301]", Code: "1234"},
		{Name: "교양영어", Credits: "1.5", Section: "2.0", Code: "5678.0"},
		{Name: "no code", Section: "1", Code: " "},
		{Name: "no section", Code: "42"},
		{Name: "no credits", Section: "1", Code: "9"},
	}

	rows, dropped, err := Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, 2, dropped)
	assert.Equal(t, []timetable.Row{
		{Code: 1234, Section: 1, Credits: 3, TimeText: "월1,2[공301]", Name: "자료구조", Instructor: "홍길동", Department: "컴퓨터공학과"},
		{Code: 5678, Section: 2, Credits: 1.5, Name: "교양영어"},
		{Code: 9, Section: 1, Credits: 0, Name: "no credits"},
	}, rows)
}

func TestNormalizeRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		row  Row
	}{
		{"code text", Row{Code: "ABC", Section: "1"}},
		{"fractional code", Row{Code: "12.5", Section: "1"}},
		{"section text", Row{Code: "1", Section: "가"}},
		{"credits text", Row{Code: "1", Section: "1", Credits: "three"}},
		{"credits nan", Row{Code: "1", Section: "1", Credits: "NaN"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, _, err := Normalize([]Row{{Code: "1", Section: "1"}, tt.row})
			require.ErrorIs(t, err, ErrCatalogLoad)
			assert.Nil(t, rows)
		})
	}
}
