package store

import (
	"context"
	"sync"

	"bookstore/internal/book"
	"bookstore/internal/entity"
	"bookstore/internal/user"
)

var (
	_ user.Repository         = (*UserMemory)(nil)
	_ book.PurchaseRepository = (*UserMemory)(nil)
)

// UserMemory is the in-memory user database: accounts keyed by username
// and the purchased-books list of each account.
type UserMemory struct {
	mu        sync.RWMutex
	users     map[string]*entity.User
	purchases map[*entity.User][]*entity.Book
}

func NewUserMemory() *UserMemory {
	return &UserMemory{
		users:     make(map[string]*entity.User),
		purchases: make(map[*entity.User][]*entity.Book),
	}
}

func (r *UserMemory) ContainsKey(_ context.Context, username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[username]
	return ok
}

func (r *UserMemory) Get(_ context.Context, username string) (*entity.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[username]
	return u, ok
}

func (r *UserMemory) Put(_ context.Context, username string, u *entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[username] = u
}

func (r *UserMemory) Remove(_ context.Context, username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, username)
}

// GetPurchasedBooks returns a copy of the books u has bought, oldest first.
// Purchases follow the account, not its current username.
func (r *UserMemory) GetPurchasedBooks(_ context.Context, u *entity.User) []*entity.Book {
	r.mu.RLock()
	defer r.mu.RUnlock()
	books := r.purchases[u]
	out := make([]*entity.Book, len(books))
	copy(out, books)
	return out
}

func (r *UserMemory) AddPurchasedBook(_ context.Context, u *entity.User, b *entity.Book) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purchases[u] = append(r.purchases[u], b)
}

// Len returns the number of registered usernames.
func (r *UserMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
