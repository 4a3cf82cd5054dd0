package service

import (
	"context"

	"github.com/hirewire/hirewire/internal/auth/domain"
	"github.com/hirewire/hirewire/internal/auth/store"
)

type UserService struct {
	Store store.Store
}

// GetBySubjectID fetches a user by subject id.
func (s *UserService) GetBySubjectID(ctx context.Context, subjectID string) (domain.User, error) {
	return s.Store.Users().GetBySubjectID(ctx, subjectID)
}

// GetByID fetches a user by primary id.
func (s *UserService) GetByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetByID(ctx, userID)
}
