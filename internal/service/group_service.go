// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"

	"socialhub/internal/export"
	"socialhub/internal/models"
	"socialhub/internal/observability"
	"socialhub/internal/repository"
)

// GroupService provides group management and membership query logic.
type GroupService struct {
	groupRepo repository.GroupRepository
}

// NewGroupService returns a new GroupService.
func NewGroupService(groupRepo repository.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

// ListGroups returns all groups ordered by id.
func (s *GroupService) ListGroups(ctx context.Context) ([]models.Group, error) {
	return s.groupRepo.List(ctx)
}

// GetGroup returns a single group by id.
func (s *GroupService) GetGroup(ctx context.Context, id uint) (*models.Group, error) {
	return s.groupRepo.GetByID(ctx, id)
}

// CreateGroup persists a new group.
func (s *GroupService) CreateGroup(ctx context.Context, group *models.Group) (*models.Group, error) {
	if group.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if group.Limit < 0 {
		return nil, models.NewValidationError("Limit must not be negative")
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// UpdateGroup copies name and limit onto an existing group.
func (s *GroupService) UpdateGroup(ctx context.Context, group *models.Group) (*models.Group, error) {
	if group.Name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if group.Limit < 0 {
		return nil, models.NewValidationError("Limit must not be negative")
	}
	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, err
	}
	return s.groupRepo.GetByID(ctx, group.ID)
}

// DeleteGroup removes a group. Members keep their group reference; deletes
// do not cascade.
func (s *GroupService) DeleteGroup(ctx context.Context, id uint) error {
	return s.groupRepo.Delete(ctx, id)
}

// Members returns the users referencing the group.
func (s *GroupService) Members(ctx context.Context, groupID uint) ([]models.User, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	return s.groupRepo.Members(ctx, groupID)
}

// FillPercentage returns memberCount / limit * 100 for the group.
// A zero limit yields 0.0 rather than a division error.
func (s *GroupService) FillPercentage(ctx context.Context, groupID uint) (float64, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return 0, err
	}
	if group.Limit == 0 {
		return 0.0, nil
	}

	count, err := s.groupRepo.MemberCount(ctx, groupID)
	if err != nil {
		return 0, err
	}
	return float64(count) / float64(group.Limit) * 100.0, nil
}

// EmptyGroup returns the first group with a positive limit and no members,
// or nil when no such group exists.
func (s *GroupService) EmptyGroup(ctx context.Context) (*models.Group, error) {
	return s.groupRepo.FirstEmpty(ctx)
}

// GroupsByName returns all groups sorted ascending by name.
func (s *GroupService) GroupsByName(ctx context.Context) ([]models.Group, error) {
	return s.groupRepo.ListByName(ctx)
}

// SearchGroups returns groups whose name matches the term exactly.
func (s *GroupService) SearchGroups(ctx context.Context, term string) ([]models.Group, error) {
	return s.groupRepo.Search(ctx, term)
}

// SearchPartialGroups returns groups whose name contains the term.
func (s *GroupService) SearchPartialGroups(ctx context.Context, term string) ([]models.Group, error) {
	return s.groupRepo.SearchPartial(ctx, term)
}

// Export renders all groups into a spreadsheet workbook.
func (s *GroupService) Export(ctx context.Context) ([]byte, error) {
	span, ctx := observability.NewSpan(ctx, "export.groups")
	defer span.End()

	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	observability.SpreadsheetExports.WithLabelValues("group").Inc()
	return export.Workbook(export.GroupsSheet(groups))
}
