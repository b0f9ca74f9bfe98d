// Package validator checks package manifests against naming and content rules.
//
// Every rule runs independently; all problems found in one call are reported
// together in a single InvalidPackageError. Validation never mutates the
// package, so it can be repeated after the caller fixes a field.
package validator

import (
	"errors"

	"github.com/hashicorp/go-multierror"
	"github.com/ralt/pkgcheck/internal/models"
)

var errNilPackage = errors.New("package is nil")

// ValidatePackage runs every rule against pkg
func ValidatePackage(pkg *models.Package) error {
	return Validate(pkg, Rules()...)
}

// Validate runs the given rules against pkg and returns an
// *InvalidPackageError listing all problems, or nil
func Validate(pkg *models.Package, rules ...Rule) error {
	if pkg == nil {
		return &InvalidPackageError{Problems: []error{errNilPackage}}
	}

	var result *multierror.Error
	for _, rule := range rules {
		for _, problem := range rule.Check(pkg) {
			result = multierror.Append(result, problem)
		}
	}

	if result.ErrorOrNil() == nil {
		return nil
	}

	return &InvalidPackageError{
		Package:  pkg.Name,
		Problems: result.Errors,
	}
}
