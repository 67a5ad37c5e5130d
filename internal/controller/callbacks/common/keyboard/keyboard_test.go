package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name                 string
		total, perPage, page int
		want                 Page
	}{
		{name: "empty", total: 0, perPage: 8, page: 0, want: Page{Number: 0, Total: 1, Start: 0, End: 0}},
		{name: "first", total: 20, perPage: 8, page: 0, want: Page{Number: 0, Total: 3, Start: 0, End: 8}},
		{name: "last partial", total: 20, perPage: 8, page: 2, want: Page{Number: 2, Total: 3, Start: 16, End: 20}},
		{name: "past end clamps", total: 20, perPage: 8, page: 9, want: Page{Number: 2, Total: 3, Start: 16, End: 20}},
		{name: "negative clamps", total: 5, perPage: 8, page: -1, want: Page{Number: 0, Total: 1, Start: 0, End: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paginate(tt.total, tt.perPage, tt.page))
		})
	}
}

func TestPaginationButtons(t *testing.T) {
	assert.Nil(t, PaginationButtons("p:", 0, 1))

	first := PaginationButtons("p:", 0, 3)
	require.Len(t, first, 2)
	assert.Equal(t, "noop", first[0].CallbackData)
	assert.Equal(t, "p:1", first[1].CallbackData)

	middle := PaginationButtons("p:", 1, 3)
	require.Len(t, middle, 3)
	assert.Equal(t, "p:0", middle[0].CallbackData)
	assert.Equal(t, "📄 2/3", middle[1].Text)
	assert.Equal(t, "p:2", middle[2].CallbackData)
}

func TestBuilder_Grid(t *testing.T) {
	kb := NewBuilder().
		Grid(2, Button("a", "1"), Button("b", "2"), Button("c", "3")).
		AddBackToMainButton().
		Build()

	require.Len(t, kb.InlineKeyboard, 3)
	assert.Len(t, kb.InlineKeyboard[0], 2)
	assert.Len(t, kb.InlineKeyboard[1], 1)
	assert.Equal(t, "back_to_main", kb.InlineKeyboard[2][0].CallbackData)
}
