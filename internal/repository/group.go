// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"socialhub/internal/models"
	"socialhub/internal/observability"

	"gorm.io/gorm"
)

// GroupRepository defines persistence operations for groups and their
// implicit membership (users referencing a group).
type GroupRepository interface {
	List(ctx context.Context) ([]models.Group, error)
	GetByID(ctx context.Context, id uint) (*models.Group, error)
	Create(ctx context.Context, group *models.Group) error
	Update(ctx context.Context, group *models.Group) error
	Delete(ctx context.Context, id uint) error
	Members(ctx context.Context, groupID uint) ([]models.User, error)
	MemberCount(ctx context.Context, groupID uint) (int64, error)
	ListByName(ctx context.Context) ([]models.Group, error)
	FirstEmpty(ctx context.Context) (*models.Group, error)
	Search(ctx context.Context, term string) ([]models.Group, error)
	SearchPartial(ctx context.Context, term string) ([]models.Group, error)
}

type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) List(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.WithContext(ctx).Order("id").Find(&groups).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return groups, nil
}

func (r *groupRepository) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	if err := r.db.WithContext(ctx).First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Group", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &group, nil
}

func (r *groupRepository) Create(ctx context.Context, group *models.Group) error {
	if err := r.db.WithContext(ctx).Create(group).Error; err != nil {
		return models.NewInternalError(err)
	}
	observability.EntityWrites.WithLabelValues("group", "create").Inc()
	return nil
}

func (r *groupRepository) Update(ctx context.Context, group *models.Group) error {
	res := r.db.WithContext(ctx).
		Model(&models.Group{}).
		Where("id = ?", group.ID).
		Select("name", "member_limit").
		Updates(group)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Group", group.ID)
	}
	observability.EntityWrites.WithLabelValues("group", "update").Inc()
	return nil
}

func (r *groupRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Group{}, id)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Group", id)
	}
	observability.EntityWrites.WithLabelValues("group", "delete").Inc()
	return nil
}

func (r *groupRepository) Members(ctx context.Context, groupID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Where("group_id = ?", groupID).Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *groupRepository) MemberCount(ctx context.Context, groupID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("group_id = ?", groupID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *groupRepository) ListByName(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.WithContext(ctx).Order("name").Find(&groups).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return groups, nil
}

// FirstEmpty returns the first group (by ascending id) with a positive limit
// and no members, or nil when every such group has at least one member.
func (r *groupRepository) FirstEmpty(ctx context.Context) (*models.Group, error) {
	var group models.Group
	if err := r.db.WithContext(ctx).
		Where("member_limit > 0 AND NOT EXISTS (SELECT 1 FROM users WHERE users.group_id = groups.id)").
		Order("id").
		First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &group, nil
}

func (r *groupRepository) Search(ctx context.Context, term string) ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.WithContext(ctx).Where("name = ?", term).Find(&groups).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return groups, nil
}

func (r *groupRepository) SearchPartial(ctx context.Context, term string) ([]models.Group, error) {
	var groups []models.Group
	if err := r.db.WithContext(ctx).Where("name LIKE ?", "%"+term+"%").Find(&groups).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return groups, nil
}
