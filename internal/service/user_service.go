package service

import (
	"context"

	"socialhub/internal/export"
	"socialhub/internal/models"
	"socialhub/internal/observability"
	"socialhub/internal/repository"
)

// UserService provides user management and the ad-hoc user queries.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func validateUser(user *models.User) error {
	if user.Name == "" {
		return models.NewValidationError("Name is required")
	}
	if user.Surname == "" {
		return models.NewValidationError("Surname is required")
	}
	return nil
}

// ListUsers returns all users ordered by id.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// GetUser returns a single user by id.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// CreateUser persists a new user. Group capacity is not checked: a user may
// be assigned to a group that is already full.
func (s *UserService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser copies profile fields onto an existing user.
func (s *UserService) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, user.ID)
}

// DeleteUser removes a user. Posts, comments, likes and friendships
// referencing the user are left in place; deletes do not cascade.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}

// UsersByLocation returns users with an exact location match.
func (s *UserService) UsersByLocation(ctx context.Context, location string) ([]models.User, error) {
	return s.userRepo.ByLocation(ctx, location)
}

// UsersByGender returns users with an exact gender match.
func (s *UserService) UsersByGender(ctx context.Context, gender string) ([]models.User, error) {
	return s.userRepo.ByGender(ctx, gender)
}

// OldestUser returns the user with the earliest birthday, or nil when the
// store is empty.
func (s *UserService) OldestUser(ctx context.Context) (*models.User, error) {
	return s.userRepo.Oldest(ctx)
}

// YoungestUser returns the user with the latest birthday, or nil when the
// store is empty.
func (s *UserService) YoungestUser(ctx context.Context) (*models.User, error) {
	return s.userRepo.Youngest(ctx)
}

// SearchUsers returns users whose name or surname matches the term exactly.
func (s *UserService) SearchUsers(ctx context.Context, term string) ([]models.User, error) {
	return s.userRepo.Search(ctx, term)
}

// SearchPartialUsers returns users whose name or surname contains the term.
func (s *UserService) SearchPartialUsers(ctx context.Context, term string) ([]models.User, error) {
	return s.userRepo.SearchPartial(ctx, term)
}

// Export renders all users into a spreadsheet workbook.
func (s *UserService) Export(ctx context.Context) ([]byte, error) {
	span, ctx := observability.NewSpan(ctx, "export.users")
	defer span.End()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	observability.SpreadsheetExports.WithLabelValues("user").Inc()
	return export.Workbook(export.UsersSheet(users))
}
