// internal/services/errors.go
package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("resource not found")
	ErrInvalid  = errors.New("invalid operation")
)

// Error carries an i18n key so handlers can answer in the caller's language.
type Error struct {
	Kind error
	Key  string
	Args []interface{}
}

func (e *Error) Error() string {
	if len(e.Args) == 0 {
		return fmt.Sprintf("%v: %s", e.Kind, e.Key)
	}
	return fmt.Sprintf("%v: %s %v", e.Kind, e.Key, e.Args)
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func notFound(key string, args ...interface{}) *Error {
	return &Error{Kind: ErrNotFound, Key: key, Args: args}
}

func invalid(key string, args ...interface{}) *Error {
	return &Error{Kind: ErrInvalid, Key: key, Args: args}
}
