// Command main runs the database seeder for Social Hub.
package main

import (
	"flag"
	"log"

	"socialhub/internal/config"
	"socialhub/internal/database"
	"socialhub/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 50, "Number of users to create")
	numGroups := flag.Int("groups", 8, "Number of groups to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	numEvents := flag.Int("events", 10, "Number of events to create")
	numAds := flag.Int("ads", 12, "Number of advertisements to create")
	adFixtures := flag.String("ad-fixtures", "", "YAML file of advertisements to load instead of generating them")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d groups, %d posts, %d events, clean=%v\n",
		*numUsers, *numGroups, *numPosts, *numEvents, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	_, err = database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run seeder
	s := seed.NewSeeder(database.DB)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	ads := *numAds
	if *adFixtures != "" {
		// Hand-curated fixtures replace generated ads entirely.
		ads = 0
	}

	if err := s.Seed(seed.Options{
		NumUsers:  *numUsers,
		NumGroups: *numGroups,
		NumPosts:  *numPosts,
		NumEvents: *numEvents,
		NumAds:    ads,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	if *adFixtures != "" {
		n, err := s.LoadAdvertisementFixtures(*adFixtures)
		if err != nil {
			log.Fatalf("❌ Advertisement fixture loading failed: %v", err)
		}
		log.Printf("✓ %d advertisements loaded from %s", n, *adFixtures)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
}
