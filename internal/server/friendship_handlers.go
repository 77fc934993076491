// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"socialhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFriendships returns all friendships
func (s *Server) GetFriendships(c *fiber.Ctx) error {
	friendships, err := s.friendshipService.ListFriendships(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(friendships)
}

// GetFriendship returns a single friendship by ID
func (s *Server) GetFriendship(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	friendship, err := s.friendshipService.GetFriendship(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(friendship)
}

// CreateFriendship creates a new friendship pair
func (s *Server) CreateFriendship(c *fiber.Ctx) error {
	var req struct {
		User1ID uint `json:"user1_id"`
		User2ID uint `json:"user2_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	created, err := s.friendshipService.CreateFriendship(c.UserContext(), &models.Friendship{
		User1ID: req.User1ID,
		User2ID: req.User2ID,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// DeleteFriendship removes a friendship by ID
func (s *Server) DeleteFriendship(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.friendshipService.DeleteFriendship(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// ExportFriendships streams all friendships as a spreadsheet download
func (s *Server) ExportFriendships(c *fiber.Ctx) error {
	data, err := s.friendshipService.Export(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return sendWorkbook(c, "friendships.xlsx", data)
}
