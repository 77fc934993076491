package service

import (
	"context"

	"socialhub/internal/export"
	"socialhub/internal/models"
	"socialhub/internal/observability"
	"socialhub/internal/repository"
)

// FriendshipService provides friendship pair management. The pair is
// unordered and nothing enforces uniqueness or symmetry; duplicate rows
// are accepted.
type FriendshipService struct {
	friendshipRepo repository.FriendshipRepository
}

// NewFriendshipService returns a new FriendshipService.
func NewFriendshipService(friendshipRepo repository.FriendshipRepository) *FriendshipService {
	return &FriendshipService{friendshipRepo: friendshipRepo}
}

// ListFriendships returns all friendships ordered by id.
func (s *FriendshipService) ListFriendships(ctx context.Context) ([]models.Friendship, error) {
	return s.friendshipRepo.List(ctx)
}

// GetFriendship returns a single friendship by id.
func (s *FriendshipService) GetFriendship(ctx context.Context, id uint) (*models.Friendship, error) {
	return s.friendshipRepo.GetByID(ctx, id)
}

// CreateFriendship persists a new friendship pair.
func (s *FriendshipService) CreateFriendship(ctx context.Context, friendship *models.Friendship) (*models.Friendship, error) {
	if friendship.User1ID == 0 || friendship.User2ID == 0 {
		return nil, models.NewValidationError("Both user IDs are required")
	}
	if err := s.friendshipRepo.Create(ctx, friendship); err != nil {
		return nil, err
	}
	return friendship, nil
}

// DeleteFriendship removes a friendship by id.
func (s *FriendshipService) DeleteFriendship(ctx context.Context, id uint) error {
	return s.friendshipRepo.Delete(ctx, id)
}

// Export renders all friendships into a spreadsheet workbook.
func (s *FriendshipService) Export(ctx context.Context) ([]byte, error) {
	span, ctx := observability.NewSpan(ctx, "export.friendships")
	defer span.End()

	friendships, err := s.friendshipRepo.List(ctx)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	observability.SpreadsheetExports.WithLabelValues("friendship").Inc()
	return export.Workbook(export.FriendshipsSheet(friendships))
}
