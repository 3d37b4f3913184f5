package errors

import (
	"fmt"
)

// ParseError represents a palette or settings decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures palette and settings validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownTokenError reports a token name that a palette does not define for a scheme.
// It signals a packaging defect: resolvers panic with it rather than substituting a color.
type UnknownTokenError struct {
	Palette string
	Token   string
	Scheme  string
}

// NewUnknownTokenError constructs an UnknownTokenError.
func NewUnknownTokenError(palette, token, scheme string) error {
	return &UnknownTokenError{Palette: palette, Token: token, Scheme: scheme}
}

func (e *UnknownTokenError) Error() string {
	if e == nil {
		return ""
	}
	name := e.Token
	if name == "" {
		name = "<unset>"
	}
	if e.Palette != "" {
		return fmt.Sprintf("unknown token %s for %s scheme in palette %s", name, e.Scheme, e.Palette)
	}
	return fmt.Sprintf("unknown token %s for %s scheme", name, e.Scheme)
}
