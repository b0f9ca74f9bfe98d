package models

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrConstruction ErrorType = iota
	ErrValidation
	ErrInvalidConfig
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrConstruction:
		return "Construction"
	case ErrValidation:
		return "Validation"
	case ErrInvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// ManifestError represents an error while building or checking a package manifest
type ManifestError struct {
	Type    ErrorType
	Package string
	Err     error
}

// Error implements the error interface
func (e *ManifestError) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Package, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *ManifestError) Unwrap() error {
	return e.Err
}

var (
	// ErrUnknownField is wrapped by UnknownFieldError.
	ErrUnknownField = errors.New("unknown field")

	// ErrFieldType is wrapped by FieldTypeError.
	ErrFieldType = errors.New("unsupported field type")
)

// UnknownFieldError is returned when a constructor receives a key outside
// the entity's recognized field set.
type UnknownFieldError struct {
	Entity string
	Field  string
}

// Error implements the error interface
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s got an unknown field %q", e.Entity, e.Field)
}

// Unwrap returns ErrUnknownField for errors.Is() compatibility.
func (e *UnknownFieldError) Unwrap() error { return ErrUnknownField }

// FieldTypeError is returned when a recognized field carries a value of a type
// the constructor cannot store.
type FieldTypeError struct {
	Entity string
	Field  string
	Value  interface{}
}

// Error implements the error interface
func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("%s field %q cannot hold a value of type %T", e.Entity, e.Field, e.Value)
}

// Unwrap returns ErrFieldType for errors.Is() compatibility.
func (e *FieldTypeError) Unwrap() error { return ErrFieldType }
