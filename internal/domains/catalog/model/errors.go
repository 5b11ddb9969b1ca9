package model

import "errors"

var (
	// Identifier precondition errors. All are detected before any mutation
	// or persistence call is made.
	ErrIDAlreadySet = errors.New("a new entity cannot already have an id")
	ErrIDMissing    = errors.New("entity id is missing")
	ErrIDMismatch   = errors.New("entity id does not match the addressed id")

	// Lookup errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrBookNotFound   = errors.New("book not found")
)

// ToErrorCode converts an error to a stable API error code so clients do not
// have to inspect message text.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrIDAlreadySet):
		return "ID_ALREADY_SET"
	case errors.Is(err, ErrIDMissing):
		return "ID_MISSING"
	case errors.Is(err, ErrIDMismatch):
		return "ID_MISMATCH"
	case errors.Is(err, ErrAuthorNotFound), errors.Is(err, ErrBookNotFound):
		return "NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrIDAlreadySet),
		errors.Is(err, ErrIDMissing),
		errors.Is(err, ErrIDMismatch):
		return 400
	case errors.Is(err, ErrAuthorNotFound), errors.Is(err, ErrBookNotFound):
		return 404
	default:
		return 500
	}
}
