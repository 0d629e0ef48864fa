// http/server.go
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	recoverer "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/thinkful-ei27/peter-noteful-v3/apperr"
	"github.com/thinkful-ei27/peter-noteful-v3/store"
)

type Server struct {
	app   *fiber.App
	store *store.Store
	log   zerolog.Logger
}

func NewServer(st *store.Store, log zerolog.Logger, env string) *Server {
	s := &Server{store: st, log: log}

	s.app = fiber.New(fiber.Config{
		ErrorHandler:          s.handleError,
		DisableStartupMessage: true,
	})

	s.app.Use(recoverer.New())
	if env != "test" {
		s.app.Use(s.requestLogger())
	}

	s.app.Static("/", "./public")

	api := s.app.Group("/api")

	api.Get("/folders", s.listFolders)
	api.Post("/folders", s.createFolder)
	api.Get("/folders/:id", s.getFolder)
	api.Put("/folders/:id", s.updateFolder)
	api.Delete("/folders/:id", s.deleteFolder)

	api.Get("/tags", s.listTags)
	api.Post("/tags", s.createTag)
	api.Get("/tags/:id", s.getTag)
	api.Put("/tags/:id", s.updateTag)
	api.Delete("/tags/:id", s.deleteTag)

	api.Get("/notes", s.listNotes)
	api.Post("/notes", s.createNote)
	api.Get("/notes/:id", s.getNote)
	api.Put("/notes/:id", s.updateNote)
	api.Delete("/notes/:id", s.deleteNote)

	// Anything unmatched is a JSON 404, same shape as every other error.
	s.app.Use(func(c *fiber.Ctx) error {
		return apperr.NotFound()
	})

	return s
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber app for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}

// handleError renders every error as {"message": ...}. Typed errors
// keep their status and message; anything else is logged and returned
// as a generic 500 so storage detail never reaches the client.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return c.Status(appErr.Status).JSON(appErr)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
	}

	s.log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal Server Error"})
}
