package validator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidPackage is matched by InvalidPackageError.
	ErrInvalidPackage = errors.New("invalid package")

	// ErrInvalidName is wrapped by InvalidNameError.
	ErrInvalidName = errors.New("invalid package name")

	// ErrInvalidEmail is wrapped by InvalidEmailError.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidVersion is wrapped by InvalidVersionError.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrMissingField is wrapped by MissingFieldError.
	ErrMissingField = errors.New("missing field")

	// ErrUnsupportedFormat is wrapped by UnsupportedFormatError.
	ErrUnsupportedFormat = errors.New("unsupported package format")

	// ErrInvalidDependency is wrapped by InvalidDependencyError.
	ErrInvalidDependency = errors.New("invalid dependency")
)

// InvalidPackageError carries every problem found in a single validation run
type InvalidPackageError struct {
	Package  string
	Problems []error
}

// Error implements the error interface
func (e *InvalidPackageError) Error() string {
	var b strings.Builder
	if e.Package != "" {
		fmt.Fprintf(&b, "invalid package %q", e.Package)
	} else {
		b.WriteString("invalid package")
	}

	switch len(e.Problems) {
	case 0:
		return b.String()
	case 1:
		fmt.Fprintf(&b, ": %v", e.Problems[0])
		return b.String()
	}

	fmt.Fprintf(&b, ": %d problems:", len(e.Problems))
	for _, problem := range e.Problems {
		fmt.Fprintf(&b, "\n  - %v", problem)
	}
	return b.String()
}

// Is matches ErrInvalidPackage
func (e *InvalidPackageError) Is(target error) bool {
	return target == ErrInvalidPackage
}

// Unwrap exposes the individual problems to errors.Is and errors.As
func (e *InvalidPackageError) Unwrap() []error {
	return e.Problems
}

// InvalidNameError is returned for a package name that breaks the naming rule
type InvalidNameError struct {
	Name   string
	Reason string
}

// Error implements the error interface
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("package name %q %s", e.Name, e.Reason)
}

// Unwrap returns ErrInvalidName for errors.Is() compatibility.
func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// InvalidEmailError is returned for a maintainer or author with a malformed email
type InvalidEmailError struct {
	// Role is "maintainer" or "author"
	Role    string
	Contact string
	Email   string
}

// Error implements the error interface
func (e *InvalidEmailError) Error() string {
	if e.Email == "" {
		return fmt.Sprintf("%s %q has no email", e.Role, e.Contact)
	}
	return fmt.Sprintf("%s %q has an invalid email %q", e.Role, e.Contact, e.Email)
}

// Unwrap returns ErrInvalidEmail for errors.Is() compatibility.
func (e *InvalidEmailError) Unwrap() error { return ErrInvalidEmail }

// InvalidVersionError is returned for a version that is not MAJOR.MINOR.PATCH
type InvalidVersionError struct {
	Field string
	Value string
}

// Error implements the error interface
func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("%s %q must be three dot-separated non-negative integers (e.g. 1.2.3)", e.Field, e.Value)
}

// Unwrap returns ErrInvalidVersion for errors.Is() compatibility.
func (e *InvalidVersionError) Unwrap() error { return ErrInvalidVersion }

// MissingFieldError is returned when a required field is empty
type MissingFieldError struct {
	Field string
}

// Error implements the error interface
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

// Unwrap returns ErrMissingField for errors.Is() compatibility.
func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// InvalidDependencyError is returned for a bad entry in a dependency list
type InvalidDependencyError struct {
	Role   string
	Name   string
	Reason string
}

// Error implements the error interface
func (e *InvalidDependencyError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s entry %s", e.Role, e.Reason)
	}
	return fmt.Sprintf("%s entry %q %s", e.Role, e.Name, e.Reason)
}

// Unwrap returns ErrInvalidDependency for errors.Is() compatibility.
func (e *InvalidDependencyError) Unwrap() error { return ErrInvalidDependency }

// UnsupportedFormatError is returned for an unknown package_format value
type UnsupportedFormatError struct {
	Value string
}

// Error implements the error interface
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("package_format %q is not supported (expected one of %s)",
		e.Value, strings.Join(SupportedFormats, ", "))
}

// Unwrap returns ErrUnsupportedFormat for errors.Is() compatibility.
func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }
