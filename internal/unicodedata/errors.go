package unicodedata

import (
	"errors"
	"fmt"
)

// Sentinel errors for emoji-test.txt retrieval.
var (
	ErrNotFound         = errors.New("unicodedata: not found")
	ErrServer           = errors.New("unicodedata: server error")
	ErrUnexpectedStatus = errors.New("unicodedata: unexpected status")
	ErrNoSource         = errors.New("unicodedata: no source configured")
)

// Error wraps an underlying error with operation context.
type Error struct {
	Op  string // Operation: "fetch", "open", "parse"
	URL string // Remote URL or local path
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("unicodedata %s [%s]: %v", e.Op, e.URL, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrapError(op, url string, err error) error {
	return &Error{Op: op, URL: url, Err: err}
}
