package engine

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a reconciliation error for programmatic handling.
type ErrorKind string

const (
	// ErrorKindConfiguration indicates a required option is missing or malformed.
	// Examples: requesting conda packaging without supplying conda channels,
	// an unknown pre-release suffix in a Python version.
	ErrorKindConfiguration ErrorKind = "configuration"

	// ErrorKindDuplicateRegistration indicates two generators were registered
	// under the same logical name. This is a programming error and is fatal.
	ErrorKindDuplicateRegistration ErrorKind = "duplicate_registration"

	// ErrorKindTemplateRender wraps a failure inside the template engine,
	// e.g. a block template referencing an undefined variable.
	ErrorKindTemplateRender ErrorKind = "template_render"

	// ErrorKindMarkerNotFound indicates a mandatory sentinel marker pair was
	// absent from an existing file.
	ErrorKindMarkerNotFound ErrorKind = "marker_not_found"
)

// Error represents a classified reconciliation error with context.
type Error struct {
	// Kind is the error classification.
	Kind ErrorKind `json:"kind"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Option is the configuration option that caused the error, if applicable.
	Option string `json:"option,omitempty"`

	// Generator is the logical name of the generator that was running when
	// the error occurred.
	Generator string `json:"generator,omitempty"`

	// File is the relative path of the file being produced, if applicable.
	File string `json:"file,omitempty"`

	// Err is the underlying error.
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	if e.Option != "" {
		msg += fmt.Sprintf(" (option=%s)", e.Option)
	}
	if e.Generator != "" {
		msg += fmt.Sprintf(" (generator=%s)", e.Generator)
	}
	if e.File != "" {
		msg += fmt.Sprintf(" (file=%s)", e.File)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error equality checking for errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(message string, err error) *Error {
	return &Error{
		Kind:    ErrorKindConfiguration,
		Message: message,
		Err:     err,
	}
}

// NewDuplicateRegistrationError creates a new duplicate registration error.
func NewDuplicateRegistrationError(message string) *Error {
	return &Error{
		Kind:    ErrorKindDuplicateRegistration,
		Message: message,
	}
}

// NewTemplateRenderError creates a new template render error.
func NewTemplateRenderError(message string, err error) *Error {
	return &Error{
		Kind:    ErrorKindTemplateRender,
		Message: message,
		Err:     err,
	}
}

// NewMarkerNotFoundError creates a new marker-not-found error.
func NewMarkerNotFoundError(message string) *Error {
	return &Error{
		Kind:    ErrorKindMarkerNotFound,
		Message: message,
	}
}

// WithOption adds the offending option name to an error.
func (e *Error) WithOption(option string) *Error {
	e.Option = option
	return e
}

// WithGenerator adds generator identity to an error.
func (e *Error) WithGenerator(name string) *Error {
	e.Generator = name
	return e
}

// WithFile adds the file path being produced to an error.
func (e *Error) WithFile(path string) *Error {
	e.File = path
	return e
}

// IsConfiguration returns true if the error is a configuration error.
func IsConfiguration(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == ErrorKindConfiguration
	}
	return false
}

// IsDuplicateRegistration returns true if the error is a duplicate registration error.
func IsDuplicateRegistration(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == ErrorKindDuplicateRegistration
	}
	return false
}

// IsTemplateRender returns true if the error is a template render error.
func IsTemplateRender(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == ErrorKindTemplateRender
	}
	return false
}

// IsMarkerNotFound returns true if the error is a marker-not-found error.
func IsMarkerNotFound(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == ErrorKindMarkerNotFound
	}
	return false
}
