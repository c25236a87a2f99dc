// Package greeting validates caller-supplied names and formats greeting statements.
package greeting

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultFormat is the greeting template used when none is configured
const DefaultFormat = "Hello, %s!"

// NameNotProvidedMessage is the reason reported when no usable name was given
const NameNotProvidedMessage = "name not provided"

var (
	// ErrNameNotProvided is returned when the name is unset or empty
	ErrNameNotProvided = errors.New(NameNotProvidedMessage)
	// ErrInvalidFormat is returned when a template cannot hold exactly one name
	ErrInvalidFormat = errors.New("greeting format must contain exactly one %s verb")
)

// Greeter formats greeting statements from a fixed template.
// It holds no mutable state and is safe for concurrent use.
type Greeter struct {
	format string
}

// NewGreeter creates a greeter for the given template.
// An empty format selects DefaultFormat.
func NewGreeter(format string) (*Greeter, error) {
	if format == "" {
		format = DefaultFormat
	}
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	return &Greeter{format: format}, nil
}

// MustNewGreeter is like NewGreeter but panics on an invalid template
func MustNewGreeter(format string) *Greeter {
	g, err := NewGreeter(format)
	if err != nil {
		panic(err)
	}
	return g
}

// Format returns the template in use
func (g *Greeter) Format() string {
	return g.format
}

// Greet returns the greeting statement for name.
// A nil or empty name yields ErrNameNotProvided. Whitespace is not trimmed,
// so a name of only spaces is treated as provided.
func (g *Greeter) Greet(name *string) (string, error) {
	if name == nil || *name == "" {
		return "", ErrNameNotProvided
	}
	return fmt.Sprintf(g.format, *name), nil
}

// ValidateFormat checks that format has exactly one %s verb and no other verbs.
// A literal percent sign is written as %%.
func ValidateFormat(format string) error {
	verbs := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 >= len(format) {
			return fmt.Errorf("%w: trailing %%", ErrInvalidFormat)
		}
		i++
		switch format[i] {
		case '%':
		case 's':
			verbs++
		default:
			return fmt.Errorf("%w: unsupported verb %q", ErrInvalidFormat, "%"+string(format[i]))
		}
	}
	if verbs != 1 {
		return fmt.Errorf("%w: found %d in %q", ErrInvalidFormat, verbs, strings.TrimSpace(format))
	}
	return nil
}
