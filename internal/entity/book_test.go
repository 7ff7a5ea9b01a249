package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBook_Equal(t *testing.T) {
	base := NewBook("Test Book", "Test Author", "Test Genre", decimal.RequireFromString("10.99"))

	tests := []struct {
		name  string
		other *Book
		want  bool
	}{
		{"same fields", NewBook("Test Book", "Test Author", "Test Genre", decimal.RequireFromString("10.99")), true},
		{"trailing zero price", NewBook("Test Book", "Test Author", "Test Genre", decimal.RequireFromString("10.990")), true},
		{"different title", NewBook("Other Book", "Test Author", "Test Genre", decimal.RequireFromString("10.99")), false},
		{"different author", NewBook("Test Book", "Other Author", "Test Genre", decimal.RequireFromString("10.99")), false},
		{"different genre", NewBook("Test Book", "Test Author", "Other Genre", decimal.RequireFromString("10.99")), false},
		{"different price", NewBook("Test Book", "Test Author", "Test Genre", decimal.RequireFromString("11.99")), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Equal(tt.other))
		})
	}

	t.Run("reviews ignored", func(t *testing.T) {
		reviewed := NewBook("Test Book", "Test Author", "Test Genre", decimal.RequireFromString("10.99"))
		reviewed.AddReview("Great book!")
		assert.True(t, base.Equal(reviewed))
	})
}

func TestBook_Matches(t *testing.T) {
	b := NewBook("Book 1", "Author 1", "Genre 1", decimal.RequireFromString("12.99"))

	assert.True(t, b.Matches(""))
	assert.True(t, b.Matches("Book"))
	assert.True(t, b.Matches("Author"))
	assert.True(t, b.Matches("Genre 1"))
	assert.False(t, b.Matches("author"), "match is case-sensitive")
	assert.False(t, b.Matches("Publisher"))
}

func TestBook_AddReview(t *testing.T) {
	b := NewBook("Book 1", "Author 1", "Genre 1", decimal.RequireFromString("12.99"))
	b.AddReview("first")
	b.AddReview("second")

	assert.Equal(t, []string{"first", "second"}, b.Reviews)
}

func TestIndexOf(t *testing.T) {
	b1 := NewBook("Book 1", "Author 1", "Genre 1", decimal.RequireFromString("12.99"))
	b2 := NewBook("Book 2", "Author 2", "Genre 2", decimal.RequireFromString("14.99"))
	books := []*Book{b1, b2}

	assert.Equal(t, 1, IndexOf(books, NewBook("Book 2", "Author 2", "Genre 2", decimal.RequireFromString("14.99"))))
	assert.Equal(t, -1, IndexOf(books, NewBook("Book 3", "Author 3", "Genre 3", decimal.RequireFromString("1"))))
	assert.Equal(t, -1, IndexOf(nil, b1))
}
