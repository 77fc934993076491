// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"socialhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

type advertisementRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	ImageURL       string `json:"image_url"`
	DestinationURL string `json:"destination_url"`
	IsActive       bool   `json:"is_active"`
}

func (r *advertisementRequest) toModel() *models.Advertisement {
	return &models.Advertisement{
		Title:          r.Title,
		Description:    r.Description,
		ImageURL:       r.ImageURL,
		DestinationURL: r.DestinationURL,
		IsActive:       r.IsActive,
	}
}

// GetAdvertisements returns all advertisements
func (s *Server) GetAdvertisements(c *fiber.Ctx) error {
	ads, err := s.adService.ListAdvertisements(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(ads)
}

// GetActiveAdvertisements returns only currently active advertisements
func (s *Server) GetActiveAdvertisements(c *fiber.Ctx) error {
	ads, err := s.adService.ListActiveAdvertisements(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(ads)
}

// GetAdvertisement returns a single advertisement by ID
func (s *Server) GetAdvertisement(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ad, err := s.adService.GetAdvertisement(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(ad)
}

// CreateAdvertisement creates a new advertisement
func (s *Server) CreateAdvertisement(c *fiber.Ctx) error {
	var req advertisementRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	created, err := s.adService.CreateAdvertisement(c.UserContext(), req.toModel())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateAdvertisement replaces an existing advertisement's fields
func (s *Server) UpdateAdvertisement(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req advertisementRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	updated, err := s.adService.UpdateAdvertisement(c.UserContext(), id, req.toModel())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(updated)
}

// DeleteAdvertisement removes an advertisement by ID
func (s *Server) DeleteAdvertisement(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.adService.DeleteAdvertisement(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// ExportAdvertisements streams all advertisements as a spreadsheet download
func (s *Server) ExportAdvertisements(c *fiber.Ctx) error {
	data, err := s.adService.Export(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return sendWorkbook(c, "advertisements.xlsx", data)
}
