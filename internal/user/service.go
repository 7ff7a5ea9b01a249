package user

import (
	"context"

	"bookstore/internal/entity"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register stores u under its username. It fails if the username is taken.
func (s *Service) Register(ctx context.Context, u *entity.User) bool {
	if s.repo.ContainsKey(ctx, u.Username) {
		return false
	}
	s.repo.Put(ctx, u.Username, u)
	return true
}

// Login returns the account for username when password matches. A missing
// account and a wrong password both yield (nil, false).
func (s *Service) Login(ctx context.Context, username, password string) (*entity.User, bool) {
	u, ok := s.repo.Get(ctx, username)
	if !ok || u == nil || u.Password != password {
		return nil, false
	}
	return u, true
}

// UpdateProfile overwrites the account fields of u and re-keys it under
// newUsername. It fails without changes if newUsername belongs to another
// account.
func (s *Service) UpdateProfile(ctx context.Context, u *entity.User, newUsername, newPassword, newEmail string) bool {
	oldUsername := u.Username
	if newUsername != oldUsername && s.repo.ContainsKey(ctx, newUsername) {
		return false
	}

	u.Username = newUsername
	u.Password = newPassword
	u.Email = newEmail

	if newUsername != oldUsername {
		if current, ok := s.repo.Get(ctx, oldUsername); ok && current == u {
			s.repo.Remove(ctx, oldUsername)
		}
	}
	s.repo.Put(ctx, newUsername, u)
	return true
}

// Get looks up an account by username.
func (s *Service) Get(ctx context.Context, username string) (*entity.User, bool) {
	return s.repo.Get(ctx, username)
}
