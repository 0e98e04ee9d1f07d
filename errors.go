package skos

import (
	"errors"
	"fmt"
)

// ErrEmptyCollection is returned by Pop when the collection has no members.
var ErrEmptyCollection = errors.New("pop from an empty collection")

// ErrNotFound is returned by dictionary-style accessors when no entity is
// stored under the requested URI.
type ErrNotFound struct {
	URI string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("no entity for URI: %s", e.URI)
}

// IsNotFound check if error is related to a missing entity.
func IsNotFound(err error) bool {
	var e ErrNotFound
	return errors.As(err, &e)
}

// ErrInvalidArgument is returned by constructors for arguments of the wrong
// shape, such as a negative resolution depth or a nil graph.
type ErrInvalidArgument struct {
	Arg    string
	Reason string
}

func (e ErrInvalidArgument) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Arg, e.Reason)
}
