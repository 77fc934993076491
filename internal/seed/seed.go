// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"

	"socialhub/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers  int
	NumGroups int
	NumPosts  int
	NumEvents int
	NumAds    int
}

// Seeder orchestrates populating the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded rows. Children go first because nothing
// cascades at the schema level.
func (s *Seeder) ClearAll() error {
	tables := []string{
		"event_participants", "likes", "comments", "posts",
		"friendships", "events", "advertisements", "users", "groups",
	}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Println("✓ Existing data cleared")
	return nil
}

// Seed populates the database with a connected set of demo data.
func (s *Seeder) Seed(opts Options) error {
	log.Printf("🌱 Seeding %d users, %d groups, %d posts, %d events, %d ads...",
		opts.NumUsers, opts.NumGroups, opts.NumPosts, opts.NumEvents, opts.NumAds)

	groups := make([]*models.Group, 0, opts.NumGroups)
	for i := 0; i < opts.NumGroups; i++ {
		group, err := s.factory.CreateGroup()
		if err != nil {
			return fmt.Errorf("failed to create group: %w", err)
		}
		groups = append(groups, group)
	}
	log.Printf("✓ %d groups created", len(groups))

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		var override func(*models.User)
		// roughly two thirds of users belong to a group
		if len(groups) > 0 && s.factory.r.Intn(3) > 0 {
			groupID := groups[s.factory.r.Intn(len(groups))].ID
			override = func(u *models.User) { u.GroupID = &groupID }
		} else {
			override = func(u *models.User) {}
		}
		user, err := s.factory.CreateUser(override)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("✓ %d users created", len(users))
	if len(users) == 0 {
		return nil
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[s.factory.r.Intn(len(users))]
		post, err := s.factory.CreatePost(author)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("✓ %d posts created", len(posts))

	commentCount := 0
	likeCount := 0
	for _, post := range posts {
		for i := 0; i < s.factory.r.Intn(4); i++ {
			commenter := users[s.factory.r.Intn(len(users))]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			commentCount++
		}
		for i := 0; i < s.factory.r.Intn(6); i++ {
			liker := users[s.factory.r.Intn(len(users))]
			if err := s.factory.CreateLike(liker, post); err != nil {
				return fmt.Errorf("failed to create like: %w", err)
			}
			likeCount++
		}
	}
	log.Printf("✓ %d comments, %d likes created", commentCount, likeCount)

	friendshipCount := 0
	for _, user := range users {
		for i := 0; i < s.factory.r.Intn(3); i++ {
			friend := users[s.factory.r.Intn(len(users))]
			if friend.ID == user.ID {
				continue
			}
			if err := s.factory.CreateFriendship(user, friend); err != nil {
				return fmt.Errorf("failed to create friendship: %w", err)
			}
			friendshipCount++
		}
	}
	log.Printf("✓ %d friendships created", friendshipCount)

	for i := 0; i < opts.NumEvents; i++ {
		organizer := users[s.factory.r.Intn(len(users))]
		event, err := s.factory.CreateEvent(organizer)
		if err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}
		// a handful of participants per event, duplicates skipped
		for j := 0; j < s.factory.r.Intn(5); j++ {
			participant := users[s.factory.r.Intn(len(users))]
			err := s.db.Model(event).Association("Participants").Append(participant)
			if err != nil {
				log.Printf("⚠️  skipping duplicate participant for event %d: %v", event.ID, err)
			}
		}
	}
	log.Printf("✓ %d events created", opts.NumEvents)

	for i := 0; i < opts.NumAds; i++ {
		if _, err := s.factory.CreateAdvertisement(); err != nil {
			return fmt.Errorf("failed to create advertisement: %w", err)
		}
	}
	log.Printf("✓ %d advertisements created", opts.NumAds)

	return nil
}
