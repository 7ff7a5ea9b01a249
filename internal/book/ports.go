package book

import (
	"context"

	"bookstore/internal/entity"
)

//go:generate mockgen -source=ports.go -destination=../store/mocks/purchase_repository.go -package=mocks -mock_names=PurchaseRepository=MockPurchaseRepository

// PurchaseRepository records which books each user has bought.
type PurchaseRepository interface {
	GetPurchasedBooks(ctx context.Context, u *entity.User) []*entity.Book
	AddPurchasedBook(ctx context.Context, u *entity.User, b *entity.Book)
}
