package service

import (
	"context"
	"errors"
	"testing"

	"socialhub/internal/models"
)

// Function-field stubs for the repository interfaces, shared by the service
// tests in this package.

type userRepoStub struct {
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

func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) { return s.listFn(ctx) }
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) Create(ctx context.Context, u *models.User) error { return s.createFn(ctx, u) }
func (s *userRepoStub) Update(ctx context.Context, u *models.User) error { return s.updateFn(ctx, u) }
func (s *userRepoStub) Delete(ctx context.Context, id uint) error        { return s.deleteFn(ctx, id) }
func (s *userRepoStub) ByLocation(ctx context.Context, loc string) ([]models.User, error) {
	return s.byLocationFn(ctx, loc)
}
func (s *userRepoStub) ByGender(ctx context.Context, g string) ([]models.User, error) {
	return s.byGenderFn(ctx, g)
}
func (s *userRepoStub) Oldest(ctx context.Context) (*models.User, error)   { return s.oldestFn(ctx) }
func (s *userRepoStub) Youngest(ctx context.Context) (*models.User, error) { return s.youngestFn(ctx) }
func (s *userRepoStub) Search(ctx context.Context, term string) ([]models.User, error) {
	return s.searchFn(ctx, term)
}
func (s *userRepoStub) SearchPartial(ctx context.Context, term string) ([]models.User, error) {
	return s.searchPartialFn(ctx, term)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		listFn:          func(context.Context) ([]models.User, error) { return nil, nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
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

type groupRepoStub struct {
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

func (s *groupRepoStub) List(ctx context.Context) ([]models.Group, error) { return s.listFn(ctx) }
func (s *groupRepoStub) GetByID(ctx context.Context, id uint) (*models.Group, error) {
	return s.getByIDFn(ctx, id)
}
func (s *groupRepoStub) Create(ctx context.Context, g *models.Group) error { return s.createFn(ctx, g) }
func (s *groupRepoStub) Update(ctx context.Context, g *models.Group) error { return s.updateFn(ctx, g) }
func (s *groupRepoStub) Delete(ctx context.Context, id uint) error         { return s.deleteFn(ctx, id) }
func (s *groupRepoStub) Members(ctx context.Context, id uint) ([]models.User, error) {
	return s.membersFn(ctx, id)
}
func (s *groupRepoStub) MemberCount(ctx context.Context, id uint) (int64, error) {
	return s.memberCountFn(ctx, id)
}
func (s *groupRepoStub) ListByName(ctx context.Context) ([]models.Group, error) {
	return s.listByNameFn(ctx)
}
func (s *groupRepoStub) FirstEmpty(ctx context.Context) (*models.Group, error) {
	return s.firstEmptyFn(ctx)
}
func (s *groupRepoStub) Search(ctx context.Context, term string) ([]models.Group, error) {
	return s.searchFn(ctx, term)
}
func (s *groupRepoStub) SearchPartial(ctx context.Context, term string) ([]models.Group, error) {
	return s.searchPartialFn(ctx, term)
}

func noopGroupRepo() *groupRepoStub {
	return &groupRepoStub{
		listFn:          func(context.Context) ([]models.Group, error) { return nil, nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.Group, error) { return &models.Group{ID: id}, nil },
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

type postRepoStub struct {
	listFn    func(context.Context) ([]models.Post, error)
	getByIDFn func(context.Context, uint) (*models.Post, error)
	createFn  func(context.Context, *models.Post) error
	updateFn  func(context.Context, *models.Post) error
	deleteFn  func(context.Context, uint) error
}

func (s *postRepoStub) List(ctx context.Context) ([]models.Post, error) { return s.listFn(ctx) }
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Create(ctx context.Context, p *models.Post) error { return s.createFn(ctx, p) }
func (s *postRepoStub) Update(ctx context.Context, p *models.Post) error { return s.updateFn(ctx, p) }
func (s *postRepoStub) Delete(ctx context.Context, id uint) error        { return s.deleteFn(ctx, id) }

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		listFn:    func(context.Context) ([]models.Post, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		createFn:  func(context.Context, *models.Post) error { return nil },
		updateFn:  func(context.Context, *models.Post) error { return nil },
		deleteFn:  func(context.Context, uint) error { return nil },
	}
}

type commentRepoStub struct {
	listFn       func(context.Context) ([]models.Comment, error)
	getByIDFn    func(context.Context, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]models.Comment, error)
	createFn     func(context.Context, *models.Comment) error
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) List(ctx context.Context) ([]models.Comment, error) { return s.listFn(ctx) }
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) Update(ctx context.Context, c *models.Comment) error {
	return s.updateFn(ctx, c)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		listFn:       func(context.Context) ([]models.Comment, error) { return nil, nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByPostFn: func(context.Context, uint) ([]models.Comment, error) { return nil, nil },
		createFn:     func(context.Context, *models.Comment) error { return nil },
		updateFn:     func(context.Context, *models.Comment) error { return nil },
		deleteFn:     func(context.Context, uint) error { return nil },
	}
}

type likeRepoStub struct {
	listFn         func(context.Context) ([]models.Like, error)
	getByIDFn      func(context.Context, uint) (*models.Like, error)
	createFn       func(context.Context, *models.Like) error
	deleteByPostFn func(context.Context, uint, uint) error
}

func (s *likeRepoStub) List(ctx context.Context) ([]models.Like, error) { return s.listFn(ctx) }
func (s *likeRepoStub) GetByID(ctx context.Context, id uint) (*models.Like, error) {
	return s.getByIDFn(ctx, id)
}
func (s *likeRepoStub) Create(ctx context.Context, l *models.Like) error { return s.createFn(ctx, l) }
func (s *likeRepoStub) DeleteByPost(ctx context.Context, postID, likeID uint) error {
	return s.deleteByPostFn(ctx, postID, likeID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		listFn:         func(context.Context) ([]models.Like, error) { return nil, nil },
		getByIDFn:      func(_ context.Context, id uint) (*models.Like, error) { return &models.Like{ID: id}, nil },
		createFn:       func(context.Context, *models.Like) error { return nil },
		deleteByPostFn: func(context.Context, uint, uint) error { return nil },
	}
}

type eventRepoStub struct {
	listFn           func(context.Context) ([]models.Event, error)
	getByIDFn        func(context.Context, uint) (*models.Event, error)
	createFn         func(context.Context, *models.Event) error
	updateFn         func(context.Context, *models.Event) error
	deleteFn         func(context.Context, uint) error
	searchFn         func(context.Context, string) ([]models.Event, error)
	searchPartialFn  func(context.Context, string) ([]models.Event, error)
	hasParticipantFn func(context.Context, uint, uint) (bool, error)
	addParticipantFn func(context.Context, *models.Event, *models.User) error
}

func (s *eventRepoStub) List(ctx context.Context) ([]models.Event, error) { return s.listFn(ctx) }
func (s *eventRepoStub) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	return s.getByIDFn(ctx, id)
}
func (s *eventRepoStub) Create(ctx context.Context, e *models.Event) error { return s.createFn(ctx, e) }
func (s *eventRepoStub) Update(ctx context.Context, e *models.Event) error { return s.updateFn(ctx, e) }
func (s *eventRepoStub) Delete(ctx context.Context, id uint) error         { return s.deleteFn(ctx, id) }
func (s *eventRepoStub) Search(ctx context.Context, term string) ([]models.Event, error) {
	return s.searchFn(ctx, term)
}
func (s *eventRepoStub) SearchPartial(ctx context.Context, term string) ([]models.Event, error) {
	return s.searchPartialFn(ctx, term)
}
func (s *eventRepoStub) HasParticipant(ctx context.Context, eventID, userID uint) (bool, error) {
	return s.hasParticipantFn(ctx, eventID, userID)
}
func (s *eventRepoStub) AddParticipant(ctx context.Context, e *models.Event, u *models.User) error {
	return s.addParticipantFn(ctx, e, u)
}

func noopEventRepo() *eventRepoStub {
	return &eventRepoStub{
		listFn:           func(context.Context) ([]models.Event, error) { return nil, nil },
		getByIDFn:        func(_ context.Context, id uint) (*models.Event, error) { return &models.Event{ID: id}, nil },
		createFn:         func(context.Context, *models.Event) error { return nil },
		updateFn:         func(context.Context, *models.Event) error { return nil },
		deleteFn:         func(context.Context, uint) error { return nil },
		searchFn:         func(context.Context, string) ([]models.Event, error) { return nil, nil },
		searchPartialFn:  func(context.Context, string) ([]models.Event, error) { return nil, nil },
		hasParticipantFn: func(context.Context, uint, uint) (bool, error) { return false, nil },
		addParticipantFn: func(context.Context, *models.Event, *models.User) error { return nil },
	}
}

type adRepoStub struct {
	listFn       func(context.Context) ([]models.Advertisement, error)
	listActiveFn func(context.Context) ([]models.Advertisement, error)
	getByIDFn    func(context.Context, uint) (*models.Advertisement, error)
	createFn     func(context.Context, *models.Advertisement) error
	updateFn     func(context.Context, *models.Advertisement) error
	deleteFn     func(context.Context, uint) error
}

func (s *adRepoStub) List(ctx context.Context) ([]models.Advertisement, error) {
	return s.listFn(ctx)
}
func (s *adRepoStub) ListActive(ctx context.Context) ([]models.Advertisement, error) {
	return s.listActiveFn(ctx)
}
func (s *adRepoStub) GetByID(ctx context.Context, id uint) (*models.Advertisement, error) {
	return s.getByIDFn(ctx, id)
}
func (s *adRepoStub) Create(ctx context.Context, a *models.Advertisement) error {
	return s.createFn(ctx, a)
}
func (s *adRepoStub) Update(ctx context.Context, a *models.Advertisement) error {
	return s.updateFn(ctx, a)
}
func (s *adRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

func noopAdRepo() *adRepoStub {
	return &adRepoStub{
		listFn:       func(context.Context) ([]models.Advertisement, error) { return nil, nil },
		listActiveFn: func(context.Context) ([]models.Advertisement, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Advertisement, error) {
			return &models.Advertisement{ID: id}, nil
		},
		createFn: func(context.Context, *models.Advertisement) error { return nil },
		updateFn: func(context.Context, *models.Advertisement) error { return nil },
		deleteFn: func(context.Context, uint) error { return nil },
	}
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != code {
		t.Fatalf("expected %s app error, got %#v", code, err)
	}
}
