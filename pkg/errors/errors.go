package errors

import (
	"errors"
	"fmt"
)

type Kind int

const (
	Unknown Kind = iota
	Validation
	Provider
	Auth
	NotFound
	Transport
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "ValidationError"
	case Provider:
		return "ProviderError"
	case Auth:
		return "AuthError"
	case NotFound:
		return "NotFoundError"
	case Transport:
		return "TransportError"
	default:
		return "UnknownError"
	}
}

type Kinded interface {
	Kind() Kind
}

type Error struct {
	err  error
	kind Kind
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Kind() Kind {
	return e.kind
}

func New(kind Kind, err error) *Error {
	return &Error{
		err:  err,
		kind: kind,
	}
}

func NewValidationError(format string, args ...interface{}) *Error {
	return New(Validation, fmt.Errorf(format, args...))
}

func NewProviderError(err error) *Error {
	return New(Provider, err)
}

func NewAuthError(err error) *Error {
	return New(Auth, err)
}

func NewNotFoundError(err error) *Error {
	return New(NotFound, err)
}

func NewTransportError(err error) *Error {
	return New(Transport, err)
}

// KindOf returns the kind of the outermost classified error in the chain.
func KindOf(err error) Kind {
	var k Kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return Unknown
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
