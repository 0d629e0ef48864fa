// http/tags.go
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/thinkful-ei27/peter-noteful-v3/apperr"
	"github.com/thinkful-ei27/peter-noteful-v3/domain"
	"github.com/thinkful-ei27/peter-noteful-v3/store"
	"github.com/thinkful-ei27/peter-noteful-v3/validate"
)

func (s *Server) listTags(c *fiber.Ctx) error {
	filter := store.NameFilter{SearchTerm: c.Query("searchTerm")}

	tags, err := s.store.Tags.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(tags)
}

func (s *Server) getTag(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return err
	}

	tag, err := s.store.Tags.Get(c.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound()
	}
	if err != nil {
		return err
	}
	return c.JSON(tag)
}

func (s *Server) createTag(c *fiber.Ctx) error {
	var req domain.UpsertTagRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("The request body is not valid")
	}
	if !validate.Required(req.Name) {
		return apperr.BadRequest("Missing `name` in request body")
	}

	tag, err := s.store.Tags.Create(c.Context(), req.Name)
	if store.IsUniqueViolation(err) {
		return apperr.BadRequest("Tag name already exists")
	}
	if err != nil {
		return err
	}

	c.Location(c.Path() + "/" + tag.ID.String())
	return c.Status(fiber.StatusCreated).JSON(tag)
}

func (s *Server) updateTag(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return err
	}

	var req domain.UpsertTagRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("The request body is not valid")
	}
	if !validate.Required(req.Name) {
		return apperr.BadRequest("Missing `name` in request body")
	}

	tag, err := s.store.Tags.Update(c.Context(), id, req.Name)
	if store.IsUniqueViolation(err) {
		return apperr.BadRequest("Tag name already exists")
	}
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound()
	}
	if err != nil {
		return err
	}
	return c.JSON(tag)
}

func (s *Server) deleteTag(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return err
	}

	if err := s.store.Tags.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
