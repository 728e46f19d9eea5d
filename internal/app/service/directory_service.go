package service

import (
	"context"
	"fmt"

	"tanglaw_backend/internal/domain/model"
	"tanglaw_backend/internal/domain/repository"
)

type DirectoryService struct {
	userRepo repository.UserRepository
}

func NewDirectoryService(userRepo repository.UserRepository) *DirectoryService {
	return &DirectoryService{userRepo: userRepo}
}

// ListUsers returns every account as an anonymized directory entry. A
// non-zero excludeID drops that row, so callers can omit themselves.
func (s *DirectoryService) ListUsers(ctx context.Context, excludeID int64) ([]model.DirectoryEntry, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	entries := make([]model.DirectoryEntry, 0, len(users))
	for _, u := range users {
		if excludeID != 0 && u.ID == excludeID {
			continue
		}
		entries = append(entries, model.DirectoryEntry{
			ID:    u.ID,
			Alias: model.Alias(u.ID, u.Role),
			Role:  u.Role,
		})
	}
	return entries, nil
}
