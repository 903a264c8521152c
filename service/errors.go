package service

import (
	"errors"
)

// Kind classifies a service error so that callers can map it to a response
// without matching individual errors.
type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindConflict
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindInvalidInput:
		return "invalid input"
	default:
		return "unexpected"
	}
}

// Error is a domain error carrying its Kind.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrISBNRequired     = &Error{Kind: KindInvalidInput, Message: "ISBN number is required"}
	ErrEmailRequired    = &Error{Kind: KindInvalidInput, Message: "email address is required"}
	ErrDuplicateEmail   = &Error{Kind: KindConflict, Message: "a borrower with the same email already exists"}
	ErrBookNotFound     = &Error{Kind: KindNotFound, Message: "book not found"}
	ErrBorrowerNotFound = &Error{Kind: KindNotFound, Message: "borrower not found"}
	ErrBookUnavailable  = &Error{Kind: KindConflict, Message: "the book is already borrowed by another member"}
	ErrBookNotBorrowed  = &Error{Kind: KindConflict, Message: "the book is not currently borrowed"}
	ErrEditConflict     = &Error{Kind: KindConflict, Message: "unable to update the record due to an edit conflict, please try again"}
	ErrStorageDisabled  = &Error{Kind: KindUnexpected, Message: "object storage is not configured"}
)

// KindOf returns the Kind of the first *Error in err's chain, or KindUnexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}
