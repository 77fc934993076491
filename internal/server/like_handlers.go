// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"socialhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetLikes returns all likes
func (s *Server) GetLikes(c *fiber.Ctx) error {
	likes, err := s.likeService.ListLikes(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(likes)
}

// GetLike returns a single like by ID
func (s *Server) GetLike(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	like, err := s.likeService.GetLike(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(like)
}

// ExportLikes streams all likes as a spreadsheet download
func (s *Server) ExportLikes(c *fiber.Ctx) error {
	data, err := s.likeService.Export(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return sendWorkbook(c, "likes.xlsx", data)
}
