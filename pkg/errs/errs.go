package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a business failure so callers can map it to a response
// without parsing messages.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindPreconditionFailed
	KindInvalidArgument
	KindStorageUnavailable
)

type Error struct {
	Kind   Kind
	Reason string
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.cause)
	}
	return e.Reason
}

func (e *Error) Unwrap() error { return e.cause }

func NotFound(reason string) error {
	return &Error{Kind: KindNotFound, Reason: reason}
}

func PreconditionFailed(reason string) error {
	return &Error{Kind: KindPreconditionFailed, Reason: reason}
}

func InvalidArgument(reason string) error {
	return &Error{Kind: KindInvalidArgument, Reason: reason}
}

// Storage wraps an underlying driver/connection error. The cause is kept so
// the surrounding layer can still log it.
func Storage(cause error) error {
	return &Error{Kind: KindStorageUnavailable, Reason: "storage unavailable", cause: cause}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsNotFound(err error) bool           { return KindOf(err) == KindNotFound }
func IsPreconditionFailed(err error) bool { return KindOf(err) == KindPreconditionFailed }
func IsInvalidArgument(err error) bool    { return KindOf(err) == KindInvalidArgument }
func IsStorageUnavailable(err error) bool { return KindOf(err) == KindStorageUnavailable }
