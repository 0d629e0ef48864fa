// http/notes.go
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/thinkful-ei27/peter-noteful-v3/apperr"
	"github.com/thinkful-ei27/peter-noteful-v3/domain"
	"github.com/thinkful-ei27/peter-noteful-v3/store"
	"github.com/thinkful-ei27/peter-noteful-v3/validate"
)

func (s *Server) listNotes(c *fiber.Ctx) error {
	filter := store.NoteFilter{SearchTerm: c.Query("searchTerm")}

	if raw := c.Query("folderId"); raw != "" {
		id, err := validate.ParseID(raw)
		if err != nil {
			return apperr.BadRequest("The `folderId` is not valid")
		}
		filter.FolderID = &id
	}
	if raw := c.Query("tagId"); raw != "" {
		id, err := validate.ParseID(raw)
		if err != nil {
			return apperr.BadRequest("The `tagId` is not valid")
		}
		filter.TagID = &id
	}

	notes, err := s.store.Notes.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(notes)
}

func (s *Server) getNote(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return err
	}

	note, err := s.store.Notes.Get(c.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound()
	}
	if err != nil {
		return err
	}
	return c.JSON(note)
}

func (s *Server) createNote(c *fiber.Ctx) error {
	var req domain.UpsertNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("The request body is not valid")
	}

	data, err := noteData(req)
	if err != nil {
		return err
	}

	note, err := s.store.Notes.Create(c.Context(), data)
	if err != nil {
		return err
	}

	c.Location(c.Path() + "/" + note.ID.String())
	return c.Status(fiber.StatusCreated).JSON(note)
}

func (s *Server) updateNote(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return err
	}

	var req domain.UpsertNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("The request body is not valid")
	}

	data, err := noteData(req)
	if err != nil {
		return err
	}

	note, err := s.store.Notes.Update(c.Context(), id, data)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound()
	}
	if err != nil {
		return err
	}
	return c.JSON(note)
}

func (s *Server) deleteNote(c *fiber.Ctx) error {
	id, err := requestID(c)
	if err != nil {
		return err
	}

	if err := s.store.Notes.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// noteData validates a note request body into the store's write model.
// An empty folderId clears the folder reference, so a PUT with
// folderId "" (or without the field) moves the note out of its folder.
func noteData(req domain.UpsertNoteRequest) (store.NoteData, error) {
	if !validate.Required(req.Title) {
		return store.NoteData{}, apperr.BadRequest("Missing `title` in request body")
	}

	data := store.NoteData{Title: req.Title, Content: req.Content}

	if req.FolderID != "" {
		id, err := validate.ParseID(req.FolderID)
		if err != nil {
			return store.NoteData{}, apperr.BadRequest("The `folderId` is not valid")
		}
		data.FolderID = &id
	}

	for _, raw := range req.Tags {
		id, err := validate.ParseID(raw)
		if err != nil {
			return store.NoteData{}, apperr.BadRequest("The `tags` array contains an invalid `id`")
		}
		data.TagIDs = append(data.TagIDs, id)
	}

	return data, nil
}
