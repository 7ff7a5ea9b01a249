package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Book is a catalog record. Reviews are kept in insertion order.
type Book struct {
	Title   string          `json:"title"`
	Author  string          `json:"author"`
	Genre   string          `json:"genre"`
	Price   decimal.Decimal `json:"price"`
	Reviews []string        `json:"reviews"`
}

func NewBook(title, author, genre string, price decimal.Decimal) *Book {
	return &Book{
		Title:   title,
		Author:  author,
		Genre:   genre,
		Price:   price,
		Reviews: []string{},
	}
}

// Equal reports whether b and other describe the same book. Reviews are
// not part of a book's identity.
func (b *Book) Equal(other *Book) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Title == other.Title &&
		b.Author == other.Author &&
		b.Genre == other.Genre &&
		b.Price.Equal(other.Price)
}

// Matches reports whether keyword occurs in the title, author or genre.
// The match is case-sensitive and an empty keyword matches every book.
func (b *Book) Matches(keyword string) bool {
	return strings.Contains(b.Title, keyword) ||
		strings.Contains(b.Author, keyword) ||
		strings.Contains(b.Genre, keyword)
}

func (b *Book) AddReview(text string) {
	b.Reviews = append(b.Reviews, text)
}

// IndexOf returns the position of the first book in books equal to b, or -1.
func IndexOf(books []*Book, b *Book) int {
	for i, candidate := range books {
		if candidate.Equal(b) {
			return i
		}
	}
	return -1
}
