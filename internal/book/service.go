package book

import (
	"context"
	"sync"

	"bookstore/internal/entity"
)

// Service owns the book catalog and the purchase and review workflow.
type Service struct {
	mu        sync.Mutex
	catalog   []*entity.Book
	purchases PurchaseRepository
}

// NewService creates a book service with an empty catalog.
func NewService(purchases PurchaseRepository) *Service {
	return &Service{purchases: purchases}
}

// Search returns the catalog books whose title, author or genre contains
// keyword, in catalog order.
func (s *Service) Search(_ context.Context, keyword string) []*entity.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]*entity.Book, 0)
	for _, b := range s.catalog {
		if b.Matches(keyword) {
			results = append(results, b)
		}
	}
	return results
}

// Add appends b to the catalog unless an equal book is already listed.
func (s *Service) Add(_ context.Context, b *entity.Book) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entity.IndexOf(s.catalog, b) >= 0 {
		return false
	}
	s.catalog = append(s.catalog, b)
	return true
}

// Remove drops the first catalog book equal to b.
func (s *Service) Remove(_ context.Context, b *entity.Book) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := entity.IndexOf(s.catalog, b)
	if i < 0 {
		return false
	}
	s.catalog = append(s.catalog[:i], s.catalog[i+1:]...)
	return true
}

// Purchase records the catalog copy of b in u's purchased books.
func (s *Service) Purchase(ctx context.Context, u *entity.User, b *entity.Book) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := entity.IndexOf(s.catalog, b)
	if i < 0 {
		return false
	}
	s.purchases.AddPurchasedBook(ctx, u, s.catalog[i])
	return true
}

// AddReview appends text to the reviews of the catalog copy of b. Only
// users who bought the book may review it.
func (s *Service) AddReview(ctx context.Context, u *entity.User, b *entity.Book, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := entity.IndexOf(s.catalog, b)
	if i < 0 {
		return false
	}
	if entity.IndexOf(s.purchases.GetPurchasedBooks(ctx, u), b) < 0 {
		return false
	}
	s.catalog[i].AddReview(text)
	return true
}

// Reviews returns the reviews of the catalog copy of b.
func (s *Service) Reviews(_ context.Context, b *entity.Book) ([]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := entity.IndexOf(s.catalog, b)
	if i < 0 {
		return nil, false
	}
	reviews := make([]string, len(s.catalog[i].Reviews))
	copy(reviews, s.catalog[i].Reviews)
	return reviews, true
}

// Catalog returns a snapshot of the catalog in insertion order.
func (s *Service) Catalog(_ context.Context) []*entity.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	books := make([]*entity.Book, len(s.catalog))
	copy(books, s.catalog)
	return books
}

// Clear empties the catalog.
func (s *Service) Clear(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = nil
}
