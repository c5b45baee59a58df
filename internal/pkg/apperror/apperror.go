package apperror

import "fmt"

// Kind classifies an operation failure so the transport layer can map it to
// a distinct status code instead of collapsing everything to 500.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindUnauthorized
	KindUpstream
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Upstream wraps a store failure so the caller can tell a backend outage
// apart from its own bad input.
func Upstream(err error, message string) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}
