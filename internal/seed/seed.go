package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"bookstore/internal/book"
	"bookstore/internal/entity"
	"bookstore/internal/user"
	"bookstore/internal/validation"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownUser = errors.New("unknown user")
	ErrUnknownBook = errors.New("unknown book")
)

// Fixture is the initial state of a bookstore: accounts, catalog and the
// purchases already made.
type Fixture struct {
	Users     []UserFixture     `yaml:"users" validate:"dive"`
	Books     []BookFixture     `yaml:"books" validate:"dive"`
	Purchases []PurchaseFixture `yaml:"purchases" validate:"dive"`
}

type UserFixture struct {
	Username string `yaml:"username" validate:"required"`
	Password string `yaml:"password"`
	Email    string `yaml:"email" validate:"omitempty,email"`
}

type BookFixture struct {
	Title   string   `yaml:"title" validate:"required"`
	Author  string   `yaml:"author"`
	Genre   string   `yaml:"genre"`
	Price   string   `yaml:"price" validate:"required,price"`
	Reviews []string `yaml:"reviews"`
}

// Book converts the fixture into a catalog record. The price must already
// have been validated.
func (f BookFixture) Book() (*entity.Book, error) {
	price, err := decimal.NewFromString(f.Price)
	if err != nil {
		return nil, fmt.Errorf("book %q: price: %w", f.Title, err)
	}
	b := entity.NewBook(f.Title, f.Author, f.Genre, price)
	b.Reviews = append(b.Reviews, f.Reviews...)
	return b, nil
}

// PurchaseFixture names a registered user and a catalog book by title.
type PurchaseFixture struct {
	Username string `yaml:"username" validate:"required"`
	Title    string `yaml:"title" validate:"required"`
}

// Summary counts what Apply changed.
type Summary struct {
	UsersRegistered int `json:"users_registered"`
	UsersSkipped    int `json:"users_skipped"`
	BooksAdded      int `json:"books_added"`
	BooksSkipped    int `json:"books_skipped"`
	Purchases       int `json:"purchases"`
}

func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if err := validation.Struct(f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Apply registers the fixture's users, adds its books and replays its
// purchases. Users and books that already exist are skipped.
func Apply(ctx context.Context, f *Fixture, users *user.Service, books *book.Service, logger *slog.Logger) (Summary, error) {
	var summary Summary

	for _, uf := range f.Users {
		if users.Register(ctx, entity.NewUser(uf.Username, uf.Password, uf.Email)) {
			summary.UsersRegistered++
			continue
		}
		summary.UsersSkipped++
		logger.Warn("seed user skipped", "username", uf.Username, "reason", "username taken")
	}

	byTitle := make(map[string]*entity.Book, len(f.Books))
	for _, bf := range f.Books {
		b, err := bf.Book()
		if err != nil {
			return summary, err
		}
		if _, seen := byTitle[b.Title]; !seen {
			byTitle[b.Title] = b
		}
		if books.Add(ctx, b) {
			summary.BooksAdded++
			continue
		}
		summary.BooksSkipped++
		logger.Warn("seed book skipped", "title", bf.Title, "reason", "already in catalog")
	}

	for _, pf := range f.Purchases {
		u, ok := users.Get(ctx, pf.Username)
		if !ok {
			return summary, fmt.Errorf("purchase by %q: %w", pf.Username, ErrUnknownUser)
		}
		b, ok := byTitle[pf.Title]
		if !ok || !books.Purchase(ctx, u, b) {
			return summary, fmt.Errorf("purchase of %q: %w", pf.Title, ErrUnknownBook)
		}
		summary.Purchases++
	}

	logger.Info("seed applied",
		"users_registered", summary.UsersRegistered,
		"users_skipped", summary.UsersSkipped,
		"books_added", summary.BooksAdded,
		"books_skipped", summary.BooksSkipped,
		"purchases", summary.Purchases,
	)
	return summary, nil
}
