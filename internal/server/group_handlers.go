// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"socialhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

type groupRequest struct {
	Name  string `json:"name"`
	Limit int    `json:"limit"`
}

// GetGroups returns all groups
func (s *Server) GetGroups(c *fiber.Ctx) error {
	groups, err := s.groupService.ListGroups(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(groups)
}

// GetGroup returns a single group by ID
func (s *Server) GetGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	group, err := s.groupService.GetGroup(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(group)
}

// CreateGroup creates a new group
func (s *Server) CreateGroup(c *fiber.Ctx) error {
	var req groupRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	created, err := s.groupService.CreateGroup(c.UserContext(), &models.Group{
		Name:  req.Name,
		Limit: req.Limit,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateGroup replaces an existing group's fields
func (s *Server) UpdateGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req groupRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	updated, err := s.groupService.UpdateGroup(c.UserContext(), &models.Group{
		ID:    id,
		Name:  req.Name,
		Limit: req.Limit,
	})
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(updated)
}

// DeleteGroup removes a group by ID
func (s *Server) DeleteGroup(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.groupService.DeleteGroup(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// GetGroupMembers returns the users referencing a group
func (s *Server) GetGroupMembers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	members, err := s.groupService.Members(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(members)
}

// GetGroupFillPercentage returns how full a group is as a percentage.
// A group with no capacity limit reports 0.
func (s *Server) GetGroupFillPercentage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	pct, err := s.groupService.FillPercentage(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(pct)
}

// GetEmptyGroup returns the first group with capacity but no members
func (s *Server) GetEmptyGroup(c *fiber.Ctx) error {
	group, err := s.groupService.EmptyGroup(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	if group == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Group", "empty"))
	}
	return c.JSON(group)
}

// GetGroupsByName returns all groups sorted by name
func (s *Server) GetGroupsByName(c *fiber.Ctx) error {
	groups, err := s.groupService.GroupsByName(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(groups)
}

// SearchGroups returns groups whose name equals the term query parameter
func (s *Server) SearchGroups(c *fiber.Ctx) error {
	groups, err := s.groupService.SearchGroups(c.UserContext(), c.Query("term"))
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(groups)
}

// SearchGroupsPartial returns groups whose name contains the term query parameter
func (s *Server) SearchGroupsPartial(c *fiber.Ctx) error {
	groups, err := s.groupService.SearchPartialGroups(c.UserContext(), c.Query("term"))
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(groups)
}

// ExportGroups streams all groups as a spreadsheet download
func (s *Server) ExportGroups(c *fiber.Ctx) error {
	data, err := s.groupService.Export(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return sendWorkbook(c, "groups.xlsx", data)
}
