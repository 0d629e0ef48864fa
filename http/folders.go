// http/folders.go
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/thinkful-ei27/peter-noteful-v3/apperr"
	"github.com/thinkful-ei27/peter-noteful-v3/domain"
	"github.com/thinkful-ei27/peter-noteful-v3/store"
	"github.com/thinkful-ei27/peter-noteful-v3/validate"
)

// requestID validates the :id path parameter syntactically. Existence
// is the store's concern.
func requestID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Params("id")
	if !validate.ValidID(raw) {
		return uuid.Nil, apperr.BadRequest("The `id` is not valid")
	}
	return validate.ParseID(raw)
}

func (s *Server) listFolders(c *fiber.Ctx) error {
	filter := store.NameFilter{SearchTerm: c.Query("searchTerm")}

	folders, err := s.store.Folders.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(folders)
}

func (s *Server) getFolder(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return err
	}

	folder, err := s.store.Folders.Get(c.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound()
	}
	if err != nil {
		return err
	}
	return c.JSON(folder)
}

func (s *Server) createFolder(c *fiber.Ctx) error {
	var req domain.UpsertFolderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("The request body is not valid")
	}
	if !validate.Required(req.Name) {
		return apperr.BadRequest("`name` field is missing")
	}

	folder, err := s.store.Folders.Create(c.Context(), req.Name)
	if store.IsUniqueViolation(err) {
		return apperr.BadRequest("The folder name already exists")
	}
	if err != nil {
		return err
	}

	c.Location(c.Path() + "/" + folder.ID.String())
	return c.Status(fiber.StatusCreated).JSON(folder)
}

func (s *Server) updateFolder(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return err
	}

	var req domain.UpsertFolderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("The request body is not valid")
	}
	if !validate.Required(req.Name) {
		return apperr.BadRequest("`name` field is missing")
	}

	folder, err := s.store.Folders.Update(c.Context(), id, req.Name)
	if store.IsUniqueViolation(err) {
		return apperr.BadRequest("The folder name already exists")
	}
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound()
	}
	if err != nil {
		return err
	}
	return c.JSON(folder)
}

func (s *Server) deleteFolder(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return err
	}

	if err := s.store.Folders.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
