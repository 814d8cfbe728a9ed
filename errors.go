package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAttribute is wrapped by ParseAttribute for names outside the five known attributes
	ErrUnknownAttribute = errors.New("unknown attribute")
	// ErrUnknownOrder is wrapped by ParseOrder for anything other than asc or desc
	ErrUnknownOrder = errors.New("unknown order")
)

// NotFoundError is returned when a search term or an ISBN to delete matches no record
type NotFoundError struct {
	// Attribute is the field that was matched against
	Attribute Attribute
	// Term is the value that was looked for
	Term string
}

func (e *NotFoundError) Error() string {
	if e.Attribute == ISBN {
		return fmt.Sprintf("book with ISBN %s is not present", e.Term)
	}
	return fmt.Sprintf("no book with %s %q", e.Attribute, e.Term)
}

// NewNotFoundError creates a NotFoundError
func NewNotFoundError(attr Attribute, term string) error {
	return &NotFoundError{Attribute: attr, Term: term}
}

// PreconditionError is returned when an operation needs state that does not exist yet,
// such as searching before a fresh sorted snapshot has been written.
type PreconditionError struct {
	// Reason is a human readable description of what is missing
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Reason
}

// NewPreconditionError creates a PreconditionError
func NewPreconditionError(format string, args ...interface{}) error {
	return &PreconditionError{Reason: fmt.Sprintf(format, args...)}
}

// ParseError represents a field that could not be interpreted under its attribute's comparator
type ParseError struct {
	// Attribute is the field being parsed
	Attribute Attribute
	// Value is the raw value that failed to parse
	Value string
	// Cause is the underlying strconv error
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s value %q: %v", e.Attribute, e.Value, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a ParseError
func NewParseError(attr Attribute, value string, cause error) error {
	return &ParseError{Attribute: attr, Value: value, Cause: cause}
}

// DiskError wraps a failure to open, read, write or rename a catalog or snapshot file
type DiskError struct {
	// Op is the operation that failed, ex: "read catalog"
	Op string
	// Path is the file involved, may be empty
	Path string
	// Err is the underlying I/O error
	Err error
}

func (e *DiskError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("disk error during %s on %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("disk error during %s: %v", e.Op, e.Err)
}

func (e *DiskError) Unwrap() error {
	return e.Err
}

// NewDiskError creates a DiskError wrapping the underlying I/O error
func NewDiskError(err error, operation, path string) error {
	return &DiskError{Op: operation, Path: path, Err: err}
}

// DuplicateError is returned by Session.Add when the ISBN is already in the catalog
type DuplicateError struct {
	ISBN string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("book with ISBN %s is already present", e.ISBN)
}

// ConfigError represents an error in configuration parameters
type ConfigError struct {
	// Field is the name of the configuration field that's invalid
	Field string
	// Value is the invalid value provided
	Value interface{}
	// Reason explains why the value is invalid
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %s", e.Field, e.Value, e.Reason)
}
