package user

import (
	"context"

	"bookstore/internal/entity"
)

//go:generate mockgen -source=ports.go -destination=../store/mocks/user_repository.go -package=mocks -mock_names=Repository=MockUserRepository

type Repository interface {
	ContainsKey(ctx context.Context, username string) bool
	Get(ctx context.Context, username string) (*entity.User, bool)
	Put(ctx context.Context, username string, u *entity.User)
	Remove(ctx context.Context, username string)
}
