package filemap

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSeparator = errors.New("key-value separator not found")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrEmptySeparator   = errors.New("separator must not be empty")
	ErrInvalidUTF8      = errors.New("stream did not contain valid UTF-8")
)

// ParseError reports a pair that could not be turned into a key and a value.
type ParseError struct {
	Path      string // empty when the text did not come from a file
	Pair      int    // 1-based position of the pair in the file
	Segment   string
	Separator string
	Err       error
}

func (e *ParseError) Error() string {
	where := fmt.Sprintf("pair %d", e.Pair)
	if e.Path != "" {
		where = fmt.Sprintf("%s: pair %d", e.Path, e.Pair)
	}

	if errors.Is(e.Err, ErrDuplicateKey) {
		return fmt.Sprintf("%s: %v in %q", where, e.Err, e.Segment)
	}

	return fmt.Sprintf("%s: cannot find %q in %q", where, e.Separator, e.Segment)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SeparatorError is returned by Build when one of the separators is empty.
type SeparatorError struct {
	Name string
}

func (e *SeparatorError) Error() string {
	return fmt.Sprintf("%s %v", e.Name, ErrEmptySeparator)
}

func (e *SeparatorError) Unwrap() error {
	return ErrEmptySeparator
}
