// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"socialhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetComments returns all comments
func (s *Server) GetComments(c *fiber.Ctx) error {
	comments, err := s.commentService.ListComments(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(comments)
}

// GetComment returns a single comment by ID
func (s *Server) GetComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetComment(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(comment)
}

// ExportComments streams all comments as a spreadsheet download
func (s *Server) ExportComments(c *fiber.Ctx) error {
	data, err := s.commentService.Export(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return sendWorkbook(c, "comments.xlsx", data)
}
