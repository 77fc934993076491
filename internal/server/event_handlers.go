// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"time"

	"socialhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

type eventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	UserID      uint      `json:"user_id"`
}

func (r *eventRequest) toModel() *models.Event {
	return &models.Event{
		Name:        r.Name,
		Description: r.Description,
		StartTime:   r.StartTime,
		UserID:      r.UserID,
	}
}

// GetEvents returns all events
func (s *Server) GetEvents(c *fiber.Ctx) error {
	events, err := s.eventService.ListEvents(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(events)
}

// GetEvent returns a single event with its participants
func (s *Server) GetEvent(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	event, err := s.eventService.GetEvent(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(event)
}

// CreateEvent creates a new event
func (s *Server) CreateEvent(c *fiber.Ctx) error {
	var req eventRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	created, err := s.eventService.CreateEvent(c.UserContext(), req.toModel())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateEvent replaces an existing event's fields
func (s *Server) UpdateEvent(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req eventRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	event := req.toModel()
	event.ID = id
	updated, err := s.eventService.UpdateEvent(c.UserContext(), event)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(updated)
}

// DeleteEvent removes an event by ID
func (s *Server) DeleteEvent(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.eventService.DeleteEvent(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// JoinEvent registers a user as an event participant. Joining twice
// yields a conflict; a missing event or user yields not found.
func (s *Server) JoinEvent(c *fiber.Ctx) error {
	eventID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.eventService.JoinEvent(c.UserContext(), eventID, userID); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// SearchEvents returns events whose name equals the term
func (s *Server) SearchEvents(c *fiber.Ctx) error {
	events, err := s.eventService.SearchEvents(c.UserContext(), c.Params("term"))
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(events)
}

// SearchEventsPartial returns events whose name contains the term
func (s *Server) SearchEventsPartial(c *fiber.Ctx) error {
	events, err := s.eventService.SearchPartialEvents(c.UserContext(), c.Params("term"))
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(events)
}

// ExportEvents streams all events as a spreadsheet download
func (s *Server) ExportEvents(c *fiber.Ctx) error {
	data, err := s.eventService.Export(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return sendWorkbook(c, "events.xlsx", data)
}
