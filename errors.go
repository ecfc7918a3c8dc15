// FILE: lixenwraith/input/errors.go
package input

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoKey is returned when a request carries no usable key.
	ErrNoKey = errors.New("no key specified")

	// ErrInvalidType is returned for malformed type descriptors.
	ErrInvalidType = errors.New("invalid option type")

	// ErrInvalidBoolean is returned when a boolean input is not one of the accepted literals.
	ErrInvalidBoolean = errors.New("boolean input has to be one of `true | True | TRUE | false | False | FALSE`")

	// ErrInvalidNumber is returned when a number input does not parse to a finite number.
	ErrInvalidNumber = errors.New("input has to be a valid number")

	// ErrRequired matches any RequiredError.
	ErrRequired = errors.New("required input missing")

	// ErrIncomplete matches any IncompleteError.
	ErrIncomplete = errors.New("required input incomplete")

	// ErrFileNotFound is returned by file sources when the file does not exist.
	// Builder treats it as non-fatal.
	ErrFileNotFound = errors.New("input file not found")

	// ErrUnknownFormat is returned when a file format cannot be determined.
	ErrUnknownFormat = errors.New("unknown file format")
)

// RequiredError reports a required input that resolved to nothing.
type RequiredError struct {
	Keys  []string
	Empty bool // raw value was present but empty
}

// Error implements the error interface.
func (e *RequiredError) Error() string {
	if e.Empty {
		return fmt.Sprintf("input `%s` is required but empty", strings.Join(e.Keys, ","))
	}
	return fmt.Sprintf("input `%s` is required but was not provided", strings.Join(e.Keys, ","))
}

// Is matches ErrRequired.
func (e *RequiredError) Is(target error) bool {
	return target == ErrRequired
}

// IncompleteError reports a required sequence input with unset elements.
type IncompleteError struct {
	Keys    []string
	Missing []int // indexes of unset slots
}

// Error implements the error interface.
func (e *IncompleteError) Error() string {
	return fmt.Sprintf("input array `%s` contains elements that could not be parsed", strings.Join(e.Keys, ","))
}

// Is matches ErrIncomplete.
func (e *IncompleteError) Is(target error) bool {
	return target == ErrIncomplete
}
