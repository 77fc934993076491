// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"socialhub/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db: db,
		// #nosec G404: acceptable for seeding
		r: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// pastTime returns a timestamp spread over the last maxDays days.
func (f *Factory) pastTime(maxDays int) time.Time {
	daysBack := f.r.Intn(maxDays)
	hoursBack := f.r.Intn(24)
	minsBack := f.r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	genders := []string{"male", "female"}
	user := &models.User{
		Name:        truncate(gofakeit.FirstName(), 20),
		Surname:     truncate(gofakeit.LastName(), 30),
		Gender:      genders[f.r.Intn(len(genders))],
		Birthday:    gofakeit.DateRange(time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC)),
		Location:    truncate(gofakeit.City(), 20),
		PhoneNumber: truncate(gofakeit.Phone(), 15),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateGroup constructs and persists a sample `models.Group`.
func (f *Factory) CreateGroup(overrides ...func(*models.Group)) (*models.Group, error) {
	group := &models.Group{
		Name:  truncate(gofakeit.HackerNoun(), 20),
		Limit: gofakeit.Number(5, 50),
	}

	for _, override := range overrides {
		override(group)
	}

	if err := f.db.Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

// CreatePost constructs and persists a sample `models.Post` for the given user.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Content:   truncate(gofakeit.Sentence(12), 255),
		CreatedAt: f.pastTime(90),
		UserID:    user.ID,
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided post authored by the provided user.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content:   truncate(gofakeit.Sentence(6), 100),
		CreatedAt: f.pastTime(30),
		UserID:    user.ID,
		PostID:    post.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from `user` on `post`.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := &models.Like{
		Liked:     true,
		CreatedAt: f.pastTime(30),
		UserID:    user.ID,
		PostID:    post.ID,
	}
	return f.db.Create(like).Error
}

// CreateFriendship persists a friendship pair between two users.
func (f *Factory) CreateFriendship(user1, user2 *models.User) error {
	friendship := &models.Friendship{
		User1ID: user1.ID,
		User2ID: user2.ID,
	}
	return f.db.Create(friendship).Error
}

// CreateEvent constructs and persists a sample `models.Event` organized by
// the given user.
func (f *Factory) CreateEvent(user *models.User, overrides ...func(*models.Event)) (*models.Event, error) {
	event := &models.Event{
		Name:        truncate(gofakeit.BuzzWord()+" meetup", 30),
		Description: truncate(gofakeit.Paragraph(1, 2, 8, " "), 500),
		StartTime:   time.Now().Add(time.Duration(f.r.Intn(60*24)) * time.Hour),
		UserID:      user.ID,
	}

	for _, override := range overrides {
		override(event)
	}

	if err := f.db.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// CreateAdvertisement constructs and persists a sample `models.Advertisement`.
func (f *Factory) CreateAdvertisement(overrides ...func(*models.Advertisement)) (*models.Advertisement, error) {
	ad := &models.Advertisement{
		Title:          gofakeit.Company(),
		Description:    gofakeit.Sentence(10),
		ImageURL:       fmt.Sprintf("https://picsum.photos/seed/ad-%s/600/200", gofakeit.UUID()),
		DestinationURL: gofakeit.URL(),
		IsActive:       f.r.Intn(4) > 0,
	}

	for _, override := range overrides {
		override(ad)
	}

	if err := f.db.Create(ad).Error; err != nil {
		return nil, err
	}
	return ad, nil
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
