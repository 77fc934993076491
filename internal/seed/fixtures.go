package seed

import (
	"fmt"
	"log"
	"os"

	"socialhub/internal/models"

	"gopkg.in/yaml.v3"
)

// advertisementFixture is the YAML shape of a single advertisement entry.
type advertisementFixture struct {
	Title          string `yaml:"title"`
	Description    string `yaml:"description"`
	ImageURL       string `yaml:"image_url"`
	DestinationURL string `yaml:"destination_url"`
	IsActive       bool   `yaml:"is_active"`
}

type advertisementFixtureFile struct {
	Advertisements []advertisementFixture `yaml:"advertisements"`
}

// LoadAdvertisementFixtures reads a YAML fixture file and persists its
// advertisements. Campaign teams hand-curate these files, so fixtures are
// preferred over generated ads when a file is provided.
func (s *Seeder) LoadAdvertisementFixtures(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read fixture file: %w", err)
	}

	var file advertisementFixtureFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return 0, fmt.Errorf("failed to parse fixture file: %w", err)
	}

	created := 0
	for _, fx := range file.Advertisements {
		if fx.Title == "" || fx.DestinationURL == "" {
			log.Printf("⚠️  skipping fixture with missing title or destination URL")
			continue
		}
		ad := &models.Advertisement{
			Title:          fx.Title,
			Description:    fx.Description,
			ImageURL:       fx.ImageURL,
			DestinationURL: fx.DestinationURL,
			IsActive:       fx.IsActive,
		}
		if err := s.db.Create(ad).Error; err != nil {
			return created, fmt.Errorf("failed to create advertisement %q: %w", fx.Title, err)
		}
		created++
	}
	return created, nil
}
