package service

import (
	"context"

	"socialhub/internal/export"
	"socialhub/internal/models"
	"socialhub/internal/observability"
	"socialhub/internal/repository"
)

// CommentService provides read access to comments. Writes go through the
// post aggregate in PostService.
type CommentService struct {
	commentRepo repository.CommentRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// ListComments returns all comments ordered by id.
func (s *CommentService) ListComments(ctx context.Context) ([]models.Comment, error) {
	return s.commentRepo.List(ctx)
}

// GetComment returns a single comment by id.
func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

// Export renders all comments into a spreadsheet workbook.
func (s *CommentService) Export(ctx context.Context) ([]byte, error) {
	span, ctx := observability.NewSpan(ctx, "export.comments")
	defer span.End()

	comments, err := s.commentRepo.List(ctx)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	observability.SpreadsheetExports.WithLabelValues("comment").Inc()
	return export.Workbook(export.CommentsSheet(comments))
}
