package testutil

import (
	"bookstore/internal/entity"

	"github.com/shopspring/decimal"
)

// NewTestUser returns a fresh account for tests.
func NewTestUser() *entity.User {
	return entity.NewUser("testUser", "testPassword", "test@google.com")
}

// NewTestBook returns a fresh catalog book for tests.
func NewTestBook() *entity.Book {
	return entity.NewBook("Test Book", "Test Author", "Test Genre", decimal.RequireFromString("10.99"))
}

// NewSearchBooks returns two books that share "Book", "Author" and "Genre"
// in their fields.
func NewSearchBooks() (*entity.Book, *entity.Book) {
	book1 := entity.NewBook("Book 1", "Author 1", "Genre 1", decimal.RequireFromString("12.99"))
	book2 := entity.NewBook("Book 2", "Author 2", "Genre 2", decimal.RequireFromString("14.99"))
	return book1, book2
}
