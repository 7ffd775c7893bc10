// Package filemap parses a flat file of key-value pairs into a read-only map.
package filemap

import (
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultPairSeparator splits the file content into pairs.
	DefaultPairSeparator = "\n"
	// DefaultKeyValueSeparator splits a pair into its key and value.
	DefaultKeyValueSeparator = "="
)

// Builder holds the path and separators used to build a Map. No I/O happens until Build is called.
// A Builder must not be shared between goroutines while it is being configured or built.
type Builder struct {
	path        string
	pairSep     string
	keyValueSep string
	strictKeys  bool
}

// New creates a builder for the file at path with the default separators.
func New(path string, opts ...Option) *Builder {
	b := &Builder{
		path:        path,
		pairSep:     DefaultPairSeparator,
		keyValueSep: DefaultKeyValueSeparator,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// SetKeyValueSeparator changes the key-value separator. The default is "=".
func (b *Builder) SetKeyValueSeparator(sep string) *Builder {
	b.keyValueSep = sep
	return b
}

// SetPairSeparator changes the pair separator. The default is a new line, but any non-empty string works.
func (b *Builder) SetPairSeparator(sep string) *Builder {
	b.pairSep = sep
	return b
}

// SetStrictKeys makes Build fail when a key shows up more than once. By default the last occurrence wins.
func (b *Builder) SetStrictKeys(strict bool) *Builder {
	b.strictKeys = strict
	return b
}

// Build reads the file and creates the map. Call it after changing the separators (if necessary).
// Errors from reading the file are returned as they are, and content that is not valid UTF-8
// fails with a *fs.PathError wrapping ErrInvalidUTF8. A pair without the key-value separator
// fails the whole build with a *ParseError and no map is returned.
func (b *Builder) Build() (*Map, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		return nil, &fs.PathError{Op: "read", Path: b.path, Err: ErrInvalidUTF8}
	}

	return b.parse(string(data))
}

// Load is a shorthand for New(path, opts...).Build().
func Load(path string, opts ...Option) (*Map, error) {
	return New(path, opts...).Build()
}

// Parse builds a map from text that is already in memory. The returned map has an empty path.
func Parse(text string, opts ...Option) (*Map, error) {
	b := New("", opts...)
	if err := b.validate(); err != nil {
		return nil, err
	}

	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}

	return b.parse(text)
}

func (b *Builder) validate() error {
	if b.pairSep == "" {
		return &SeparatorError{Name: "pair"}
	}

	if b.keyValueSep == "" {
		return &SeparatorError{Name: "key-value"}
	}

	return nil
}

func (b *Builder) parse(text string) (*Map, error) {
	text = stripTrailingNewline(text)

	segments := strings.Split(text, b.pairSep)
	entries := make(map[string]string, len(segments))

	for i, segment := range segments {
		key, value, found := strings.Cut(segment, b.keyValueSep)
		if !found {
			return nil, &ParseError{
				Path:      b.path,
				Pair:      i + 1,
				Segment:   segment,
				Separator: b.keyValueSep,
				Err:       ErrMissingSeparator,
			}
		}

		if _, exists := entries[key]; exists && b.strictKeys {
			return nil, &ParseError{
				Path:      b.path,
				Pair:      i + 1,
				Segment:   segment,
				Separator: b.keyValueSep,
				Err:       ErrDuplicateKey,
			}
		}

		entries[key] = value
	}

	return &Map{
		entries:     entries,
		path:        b.path,
		pairSep:     b.pairSep,
		keyValueSep: b.keyValueSep,
	}, nil
}

// stripTrailingNewline removes a single trailing line terminator. Some editors on unix-based systems add one.
func stripTrailingNewline(s string) string {
	if trimmed, ok := strings.CutSuffix(s, "\r\n"); ok {
		return trimmed
	}

	return strings.TrimSuffix(s, "\n")
}
