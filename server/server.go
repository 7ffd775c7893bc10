package server

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/filemap-go/filemap"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Server serves read-only lookups over a built map.
type Server struct {
	*fiber.App
	config Config
	m      *filemap.Map
}

// New creates the server for m. The map is never modified; serving a newer file
// means building a new map and a new server.
func New(m *filemap.Map, opts ...ConfigOption) *Server {
	config := getConfig(opts)

	s := &Server{fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
		JSONDecoder: func(data []byte, v interface{}) error {
			return json.Unmarshal(data, v)
		},
		JSONEncoder: func(v interface{}) ([]byte, error) {
			return json.Marshal(v)
		},
	}), config, m}

	s.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	s.Use(helmet.New())

	if config.logging {
		s.Use(logger.New())
	}

	if config.compress {
		s.Use(compress.New())
	}

	s.routes()

	return s
}

// Start starts the server. It blocks until SIGINT is received and then shuts the server down gracefully.
func (s *Server) Start() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	go s.startHTTP()

	<-ctx.Done()

	if err := s.Shutdown(); err != nil {
		log.Fatal(err)
	}
}

func (s *Server) startHTTP() {
	log.Infof("serving %d entries from %s on %s", s.m.Len(), s.m.Path(), s.config.addr())
	log.Fatal(s.Listen(s.config.addr()))
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
