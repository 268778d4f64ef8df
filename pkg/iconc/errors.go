package iconc

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSVGElement is returned when the markup has no <svg> element
	ErrNoSVGElement = errors.New("no root <svg> element")

	// ErrMissingViewBox is returned when the root <svg> has no viewBox attribute
	ErrMissingViewBox = errors.New("missing viewBox attribute")

	// ErrInvalidIdentifier is matched by every *InvalidIdentifierError
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrIndexCollision is returned when an icon's module would share the index filename
	ErrIndexCollision = errors.New("module filename collides with the index")

	// ErrDuplicateIdentifier is matched by every *DuplicateIdentifierError
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
)

// MalformedSVGError reports an icon whose markup cannot be turned into a module
type MalformedSVGError struct {
	File string
	Err  error
}

func (e *MalformedSVGError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("malformed svg: %v", e.Err)
	}
	return fmt.Sprintf("malformed svg %s: %v", e.File, e.Err)
}

func (e *MalformedSVGError) Unwrap() error { return e.Err }

// InvalidIdentifierError reports a filename that does not normalize to a
// usable export name
type InvalidIdentifierError struct {
	File       string
	Identifier string
}

func (e *InvalidIdentifierError) Error() string {
	if e.Identifier == "" {
		return fmt.Sprintf("%s: filename normalizes to an empty identifier", e.File)
	}
	return fmt.Sprintf("%s: %q is not a valid identifier", e.File, e.Identifier)
}

func (e *InvalidIdentifierError) Is(target error) bool { return target == ErrInvalidIdentifier }

// DuplicateIdentifierError reports two icons that derive the same export name
type DuplicateIdentifierError struct {
	File       string
	Other      string
	Identifier string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("%s: identifier %q already exported by %s", e.File, e.Identifier, e.Other)
}

func (e *DuplicateIdentifierError) Is(target error) bool { return target == ErrDuplicateIdentifier }

// FileSystemError wraps a failed read, write, listing or mkdir with its path
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error { return e.Err }
