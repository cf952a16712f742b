package domain

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindBookingRejected
	KindAccessDenied
	KindCommentRejected
	KindConflict
	KindInvalid
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindBookingRejected:
		return "booking rejected"
	case KindAccessDenied:
		return "access denied"
	case KindCommentRejected:
		return "comment rejected"
	case KindConflict:
		return "conflict"
	case KindInvalid:
		return "invalid input"
	}
	return "unknown"
}

// Error is a business error surfaced to callers with a human-readable message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Message
}

// Is matches any *Error of the same kind, so callers can test against the
// Err* sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrBookingRejected = &Error{Kind: KindBookingRejected}
	ErrAccessDenied    = &Error{Kind: KindAccessDenied}
	ErrCommentRejected = &Error{Kind: KindCommentRejected}
	ErrConflict        = &Error{Kind: KindConflict}
	ErrInvalid         = &Error{Kind: KindInvalid}
)

func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func BookingRejected(reason string) error {
	return &Error{Kind: KindBookingRejected, Message: reason}
}

func AccessDenied(format string, args ...any) error {
	return &Error{Kind: KindAccessDenied, Message: fmt.Sprintf(format, args...)}
}

func CommentRejected(format string, args ...any) error {
	return &Error{Kind: KindCommentRejected, Message: fmt.Sprintf(format, args...)}
}

func Conflict(message string) error {
	return &Error{Kind: KindConflict, Message: message}
}

func Invalid(message string) error {
	return &Error{Kind: KindInvalid, Message: message}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}
