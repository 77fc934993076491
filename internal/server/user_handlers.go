// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"time"

	"socialhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

type userRequest struct {
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	Gender      string    `json:"gender"`
	Birthday    time.Time `json:"birthday"`
	Location    string    `json:"location"`
	PhoneNumber string    `json:"phone_number"`
	GroupID     *uint     `json:"group_id"`
}

func (r *userRequest) toModel() *models.User {
	return &models.User{
		Name:        r.Name,
		Surname:     r.Surname,
		Gender:      r.Gender,
		Birthday:    r.Birthday,
		Location:    r.Location,
		PhoneNumber: r.PhoneNumber,
		GroupID:     r.GroupID,
	}
}

// GetUsers returns all users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userService.ListUsers(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(users)
}

// GetUser returns a single user by ID
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(user)
}

// CreateUser creates a new user
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req userRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	created, err := s.userService.CreateUser(c.UserContext(), req.toModel())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateUser replaces an existing user's fields
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req userRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user := req.toModel()
	user.ID = id
	updated, err := s.userService.UpdateUser(c.UserContext(), user)
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(updated)
}

// DeleteUser removes a user by ID
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteUser(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// GetUsersByLocation returns users with an exact location match
func (s *Server) GetUsersByLocation(c *fiber.Ctx) error {
	users, err := s.userService.UsersByLocation(c.UserContext(), c.Params("location"))
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(users)
}

// GetUsersByGender returns users with an exact gender match
func (s *Server) GetUsersByGender(c *fiber.Ctx) error {
	users, err := s.userService.UsersByGender(c.UserContext(), c.Params("gender"))
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(users)
}

// GetOldestUser returns the user with the earliest birthday
func (s *Server) GetOldestUser(c *fiber.Ctx) error {
	user, err := s.userService.OldestUser(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("User", "oldest"))
	}
	return c.JSON(user)
}

// GetYoungestUser returns the user with the latest birthday
func (s *Server) GetYoungestUser(c *fiber.Ctx) error {
	user, err := s.userService.YoungestUser(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("User", "youngest"))
	}
	return c.JSON(user)
}

// SearchUsers returns users whose name or surname equals the term
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	users, err := s.userService.SearchUsers(c.UserContext(), c.Params("term"))
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(users)
}

// SearchUsersPartial returns users whose name or surname contains the term
func (s *Server) SearchUsersPartial(c *fiber.Ctx) error {
	users, err := s.userService.SearchPartialUsers(c.UserContext(), c.Params("term"))
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return c.JSON(users)
}

// ExportUsers streams all users as a spreadsheet download
func (s *Server) ExportUsers(c *fiber.Ctx) error {
	data, err := s.userService.Export(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, statusForError(err), err)
	}
	return sendWorkbook(c, "users.xlsx", data)
}
