package service

import (
	"context"

	"socialhub/internal/export"
	"socialhub/internal/models"
	"socialhub/internal/observability"
	"socialhub/internal/repository"
)

// LikeService provides read access to likes. Writes go through the post
// aggregate in PostService.
type LikeService struct {
	likeRepo repository.LikeRepository
}

// NewLikeService returns a new LikeService.
func NewLikeService(likeRepo repository.LikeRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo}
}

// ListLikes returns all likes ordered by id.
func (s *LikeService) ListLikes(ctx context.Context) ([]models.Like, error) {
	return s.likeRepo.List(ctx)
}

// GetLike returns a single like by id.
func (s *LikeService) GetLike(ctx context.Context, id uint) (*models.Like, error) {
	return s.likeRepo.GetByID(ctx, id)
}

// Export renders all likes into a spreadsheet workbook.
func (s *LikeService) Export(ctx context.Context) ([]byte, error) {
	span, ctx := observability.NewSpan(ctx, "export.likes")
	defer span.End()

	likes, err := s.likeRepo.List(ctx)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	observability.SpreadsheetExports.WithLabelValues("like").Inc()
	return export.Workbook(export.LikesSheet(likes))
}
