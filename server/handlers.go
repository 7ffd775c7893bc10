package server

import (
	"errors"

	"github.com/filemap-go/filemap"
	"github.com/gofiber/fiber/v2"
)

type entryResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type metaResponse struct {
	Path              string `json:"path"`
	PairSeparator     string `json:"pair_separator"`
	KeyValueSeparator string `json:"key_value_separator"`
	Count             int    `json:"count"`
}

func (s *Server) routes() {
	s.Get("/entries", s.listEntries)
	s.Get("/entries/:key", s.getEntry)
	s.Get("/meta", s.meta)
	s.Post("/parse", parseBody)
}

func (s *Server) listEntries(c *fiber.Ctx) error {
	return c.JSON(s.m.Entries())
}

func (s *Server) getEntry(c *fiber.Ctx) error {
	key := c.Params("key")
	v, ok := s.m.Get(key)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "key not found: "+key)
	}

	return c.JSON(entryResponse{Key: key, Value: v})
}

func (s *Server) meta(c *fiber.Ctx) error {
	return c.JSON(metaResponse{
		Path:              s.m.Path(),
		PairSeparator:     s.m.PairSeparator(),
		KeyValueSeparator: s.m.KeyValueSeparator(),
		Count:             s.m.Len(),
	})
}

// parseBody parses the request body with the separators given in the query string.
func parseBody(c *fiber.Ctx) error {
	var opts []filemap.Option
	if sep := c.Query("pair_sep"); sep != "" {
		opts = append(opts, filemap.WithPairSeparator(sep))
	}
	if sep := c.Query("kv_sep"); sep != "" {
		opts = append(opts, filemap.WithKeyValueSeparator(sep))
	}
	if c.QueryBool("strict") {
		opts = append(opts, filemap.WithStrictKeys(true))
	}

	m, err := filemap.Parse(string(c.Body()), opts...)
	if err != nil {
		var parseErr *filemap.ParseError
		if errors.As(err, &parseErr) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(m)
}
