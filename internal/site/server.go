// Package site serves the portfolio pages over HTTP.
package site

import (
	"context"
	"embed"
	"errors"
	"net/http"
	"time"

	"github.com/ezerfernandes/mdfolio/internal/blog"
	"github.com/ezerfernandes/mdfolio/internal/config"
	"github.com/ezerfernandes/mdfolio/internal/content"
	"github.com/ezerfernandes/mdfolio/internal/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/django/v3"
)

//go:embed views
var views embed.FS

//go:embed static
var static embed.FS

// Blog is the content the server renders.
type Blog interface {
	Posts(ctx context.Context) ([]blog.Post, error)
	Post(ctx context.Context, slug string) (*blog.Article, error)
	Page(ctx context.Context, name string) (*blog.Article, error)
}

// Config tunes the HTTP server.
type Config struct {
	Site         config.Site
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server is the fiber application serving the portfolio.
type Server struct {
	app    *fiber.App
	blog   Blog
	site   config.Site
	logger logging.Logger
}

// Option customises a Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(logger logging.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New builds the server and registers its routes.
func New(b Blog, cfg Config, opts ...Option) *Server {
	s := &Server{
		blog:   b,
		site:   cfg.Site,
		logger: logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	engine := django.NewPathForwardingFileSystem(http.FS(views), "/views", ".django")

	s.app = fiber.New(fiber.Config{
		AppName:               "mdfolio",
		Views:                 engine,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})

	s.app.Use(recover.New())
	s.app.Use(s.logRequests)
	s.app.Use(etag.New())

	s.app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(static),
		PathPrefix: "static",
	}))

	s.app.Get("/", s.home)
	s.app.Get("/about", s.about)
	s.app.Get("/blog", s.blogIndex)
	s.app.Get("/blog/:slug", s.blogPost)

	return s
}

// App exposes the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.logger.Info("server listening", "addr", addr)

	return s.app.Listen(addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) logRequests(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()

	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}

	s.logger.Debug("request",
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"duration", time.Since(start).String(),
	)

	return err
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	status := http.StatusBadGateway
	title := "Content unavailable"
	message := "The content repository could not be reached. Please try again later."

	var fe *fiber.Error

	switch {
	case content.IsNotFound(err):
		status = http.StatusNotFound
		title = "Not found"
		message = "The page you are looking for does not exist."
	case errors.As(err, &fe):
		status = fe.Code
		title = http.StatusText(fe.Code)
		message = fe.Message
	default:
		s.logger.Error("content fetch failed", "path", c.Path(), "error", err)
	}

	c.Status(status)

	renderErr := c.Render("error", s.bind("", fiber.Map{
		"status":  status,
		"title":   title,
		"message": message,
	}))
	if renderErr != nil {
		s.logger.Error("error page render failed", "error", renderErr)

		return c.Status(status).SendString(title)
	}

	return nil
}
