package domain

import (
	"errors"
	"fmt"
)

var (
	MessageFailedBodyRequest = "failed to parse request body"
	MessageFailedValidation  = "invalid request"
	MessageInvalidID         = "id must be an integer"
	MessageInternalError     = "internal server error"
	MessageRouteNotFound     = "route not found"
	MessageHealthy           = "¡Backend funcionando!"

	MessageSuccessUpdate = "%s updated successfully"
	MessageSuccessDelete = "%s deleted successfully"
)

type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindInvalidReference
	KindConflict
	KindInvalidRequest
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalidReference:
		return "invalid reference"
	case KindConflict:
		return "conflict"
	case KindInvalidRequest:
		return "invalid request"
	default:
		return "unknown"
	}
}

// Error is a failure the client caused. Anything else reaching a handler is
// a storage failure.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(label string) *Error {
	return &Error{Kind: KindNotFound, Message: label + " not found"}
}

// NoRows reports an empty child listing under an existing parent.
func NoRows(label, parentLabel string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("no %s records found for this %s", label, parentLabel)}
}

func InvalidReference(label string, id any) *Error {
	return &Error{Kind: KindInvalidReference, Message: fmt.Sprintf("the referenced %s (id %v) does not exist", label, id)}
}

// UnknownIDs reports a nested id list where at least one id does not resolve.
func UnknownIDs(label string) *Error {
	return &Error{Kind: KindInvalidReference, Message: fmt.Sprintf("some of the supplied %s ids do not exist", label)}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func DuplicateKey(label string, id int) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf("a %s with id %d already exists", label, id)}
}

func InvalidRequest(message string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: message}
}

// KindOf returns the kind of the first *Error in err's chain, or zero.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
