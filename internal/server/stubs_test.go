package server

import (
	"context"

	"socialhub/internal/models"
)

// Function-field repository stubs for wiring handlers to canned data.

type userStoreStub struct {
	listFn          func(context.Context) ([]models.User, error)
	getByIDFn       func(context.Context, uint) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
	byLocationFn    func(context.Context, string) ([]models.User, error)
	byGenderFn      func(context.Context, string) ([]models.User, error)
	oldestFn        func(context.Context) (*models.User, error)
	youngestFn      func(context.Context) (*models.User, error)
	searchFn        func(context.Context, string) ([]models.User, error)
	searchPartialFn func(context.Context, string) ([]models.User, error)
}

func (s *userStoreStub) List(ctx context.Context) ([]models.User, error) { return s.listFn(ctx) }
func (s *userStoreStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userStoreStub) Create(ctx context.Context, u *models.User) error { return s.createFn(ctx, u) }
func (s *userStoreStub) Update(ctx context.Context, u *models.User) error { return s.updateFn(ctx, u) }
func (s *userStoreStub) Delete(ctx context.Context, id uint) error        { return s.deleteFn(ctx, id) }
func (s *userStoreStub) ByLocation(ctx context.Context, location string) ([]models.User, error) {
	return s.byLocationFn(ctx, location)
}
func (s *userStoreStub) ByGender(ctx context.Context, gender string) ([]models.User, error) {
	return s.byGenderFn(ctx, gender)
}
func (s *userStoreStub) Oldest(ctx context.Context) (*models.User, error)   { return s.oldestFn(ctx) }
func (s *userStoreStub) Youngest(ctx context.Context) (*models.User, error) { return s.youngestFn(ctx) }
func (s *userStoreStub) Search(ctx context.Context, term string) ([]models.User, error) {
	return s.searchFn(ctx, term)
}
func (s *userStoreStub) SearchPartial(ctx context.Context, term string) ([]models.User, error) {
	return s.searchPartialFn(ctx, term)
}

func newUserStoreStub() *userStoreStub {
	return &userStoreStub{
		listFn: func(context.Context) ([]models.User, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		createFn:        func(context.Context, *models.User) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		byLocationFn:    func(context.Context, string) ([]models.User, error) { return nil, nil },
		byGenderFn:      func(context.Context, string) ([]models.User, error) { return nil, nil },
		oldestFn:        func(context.Context) (*models.User, error) { return nil, nil },
		youngestFn:      func(context.Context) (*models.User, error) { return nil, nil },
		searchFn:        func(context.Context, string) ([]models.User, error) { return nil, nil },
		searchPartialFn: func(context.Context, string) ([]models.User, error) { return nil, nil },
	}
}

type groupStoreStub struct {
	listFn          func(context.Context) ([]models.Group, error)
	getByIDFn       func(context.Context, uint) (*models.Group, error)
	createFn        func(context.Context, *models.Group) error
	updateFn        func(context.Context, *models.Group) error
	deleteFn        func(context.Context, uint) error
	membersFn       func(context.Context, uint) ([]models.User, error)
	memberCountFn   func(context.Context, uint) (int64, error)
	listByNameFn    func(context.Context) ([]models.Group, error)
	firstEmptyFn    func(context.Context) (*models.Group, error)
	searchFn        func(context.Context, string) ([]models.Group, error)
	searchPartialFn func(context.Context, string) ([]models.Group, error)
}

func (s *groupStoreStub) List(ctx context.Context) ([]models.Group, error) { return s.listFn(ctx) }
func (s *groupStoreStub) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	return s.getByIDFn(ctx, id)
}
func (s *groupStoreStub) Create(ctx context.Context, g *models.Group) error {
	return s.createFn(ctx, g)
}
func (s *groupStoreStub) Update(ctx context.Context, g *models.Group) error {
	return s.updateFn(ctx, g)
}
func (s *groupStoreStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }
func (s *groupStoreStub) Members(ctx context.Context, groupID uint) ([]models.User, error) {
	return s.membersFn(ctx, groupID)
}
func (s *groupStoreStub) MemberCount(ctx context.Context, groupID uint) (int64, error) {
	return s.memberCountFn(ctx, groupID)
}
func (s *groupStoreStub) ListByName(ctx context.Context) ([]models.Group, error) {
	return s.listByNameFn(ctx)
}
func (s *groupStoreStub) FirstEmpty(ctx context.Context) (*models.Group, error) {
	return s.firstEmptyFn(ctx)
}
func (s *groupStoreStub) Search(ctx context.Context, term string) ([]models.Group, error) {
	return s.searchFn(ctx, term)
}
func (s *groupStoreStub) SearchPartial(ctx context.Context, term string) ([]models.Group, error) {
	return s.searchPartialFn(ctx, term)
}

func newGroupStoreStub() *groupStoreStub {
	return &groupStoreStub{
		listFn: func(context.Context) ([]models.Group, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Group, error) {
			return &models.Group{ID: id}, nil
		},
		createFn:        func(context.Context, *models.Group) error { return nil },
		updateFn:        func(context.Context, *models.Group) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		membersFn:       func(context.Context, uint) ([]models.User, error) { return nil, nil },
		memberCountFn:   func(context.Context, uint) (int64, error) { return 0, nil },
		listByNameFn:    func(context.Context) ([]models.Group, error) { return nil, nil },
		firstEmptyFn:    func(context.Context) (*models.Group, error) { return nil, nil },
		searchFn:        func(context.Context, string) ([]models.Group, error) { return nil, nil },
		searchPartialFn: func(context.Context, string) ([]models.Group, error) { return nil, nil },
	}
}
