package service

import (
	"context"
	"time"

	"socialhub/internal/export"
	"socialhub/internal/models"
	"socialhub/internal/observability"
	"socialhub/internal/repository"
)

const (
	maxPostContentLen    = 255
	maxCommentContentLen = 100
)

// PostService provides post management and the post aggregate writes
// (comments and likes attached to a post).
type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	likeRepo    repository.LikeRepository
	now         func() time.Time
}

// NewPostService returns a new PostService.
func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	likeRepo repository.LikeRepository,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		now:         time.Now,
	}
}

// AddCommentInput carries the fields for attaching a comment to a post.
type AddCommentInput struct {
	PostID  uint
	UserID  uint
	Content string
}

// UpdateCommentInput carries the fields for editing a comment on a post.
type UpdateCommentInput struct {
	PostID    uint
	CommentID uint
	UserID    uint
	Content   string
}

// AddLikeInput carries the fields for attaching a like to a post.
// LikeID is caller-supplied, not store-assigned; a collision with an
// existing like surfaces as a Conflict.
type AddLikeInput struct {
	PostID uint
	UserID uint
	LikeID uint
}

// ListPosts returns all posts ordered by id.
func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

// GetPost returns a single post by id.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func validatePostContent(content string) error {
	if content == "" {
		return models.NewValidationError("Content is required")
	}
	if len(content) > maxPostContentLen {
		return models.NewValidationError("Content too long (max 255 characters)")
	}
	return nil
}

// CreatePost persists a new post stamped with the current time.
func (s *PostService) CreatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	if err := validatePostContent(post.Content); err != nil {
		return nil, err
	}
	if post.UserID == 0 {
		return nil, models.NewValidationError("User ID is required")
	}
	post.CreatedAt = s.now()
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost copies content and author onto an existing post.
func (s *PostService) UpdatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	if err := validatePostContent(post.Content); err != nil {
		return nil, err
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// DeletePost removes a post. Comments and likes referencing it are left
// in place; deletes do not cascade.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	return s.postRepo.Delete(ctx, id)
}

func validateCommentContent(content string) error {
	if content == "" {
		return models.NewValidationError("Content is required")
	}
	if len(content) > maxCommentContentLen {
		return models.NewValidationError("Content too long (max 100 characters)")
	}
	return nil
}

// AddComment attaches a comment to a post, stamped with the current time.
// Fails with NotFound when the post is absent.
func (s *PostService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}
	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:   in.Content,
		CreatedAt: s.now(),
		UserID:    in.UserID,
		PostID:    in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// UpdateComment edits a comment's content. Edits restamp the creation
// time; comments carry no separate updated-at field.
func (s *PostService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != in.PostID {
		return nil, models.NewNotFoundError("Comment", in.CommentID)
	}
	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}

	comment.Content = in.Content
	comment.CreatedAt = s.now()
	if in.UserID != 0 {
		comment.UserID = in.UserID
	}
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment from a post. Fails with NotFound when the
// comment is absent or belongs to a different post.
func (s *PostService) DeleteComment(ctx context.Context, postID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.PostID != postID {
		return models.NewNotFoundError("Comment", commentID)
	}
	return s.commentRepo.Delete(ctx, commentID)
}

// AddLike attaches a like to a post using the caller-supplied like id.
// The like is always stored as liked; there is no unlike flag.
func (s *PostService) AddLike(ctx context.Context, in AddLikeInput) (*models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}
	if in.LikeID == 0 {
		return nil, models.NewValidationError("Like ID is required")
	}
	if in.UserID == 0 {
		return nil, models.NewValidationError("User ID is required")
	}

	like := &models.Like{
		ID:        in.LikeID,
		Liked:     true,
		CreatedAt: s.now(),
		UserID:    in.UserID,
		PostID:    in.PostID,
	}
	if err := s.likeRepo.Create(ctx, like); err != nil {
		return nil, err
	}
	return like, nil
}

// RemoveLike removes the like only when it exists and belongs to the given
// post; otherwise it completes without error and without touching the store.
func (s *PostService) RemoveLike(ctx context.Context, postID, likeID uint) error {
	return s.likeRepo.DeleteByPost(ctx, postID, likeID)
}

// Export renders all posts into a spreadsheet workbook.
func (s *PostService) Export(ctx context.Context) ([]byte, error) {
	span, ctx := observability.NewSpan(ctx, "export.posts")
	defer span.End()

	posts, err := s.postRepo.List(ctx)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	observability.SpreadsheetExports.WithLabelValues("post").Inc()
	return export.Workbook(export.PostsSheet(posts))
}
