package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ralt/pkgcheck/internal/models"
	"github.com/ralt/pkgcheck/internal/utils"
)

// Rule is a single independent check over a package
type Rule struct {
	Name  string
	Check func(pkg *models.Package) []error
}

// Rules returns every rule in evaluation order
func Rules() []Rule {
	return []Rule{
		{Name: "name", Check: checkName},
		{Name: "author-emails", Check: checkAuthorEmails},
		{Name: "version", Check: checkVersion},
		{Name: "package-format", Check: checkPackageFormat},
		{Name: "description", Check: checkDescription},
		{Name: "maintainers", Check: checkMaintainers},
		{Name: "licenses", Check: checkLicenses},
		{Name: "dependencies", Check: checkDependencies},
	}
}

func checkName(pkg *models.Package) []error {
	if reason := NameViolation(pkg.Name); reason != "" {
		return []error{&InvalidNameError{Name: pkg.Name, Reason: reason}}
	}
	return nil
}

// Authors without an email are skipped
func checkAuthorEmails(pkg *models.Package) []error {
	var problems []error
	for i, author := range pkg.Authors {
		if isNil(author) {
			problems = append(problems, &MissingFieldError{Field: fmt.Sprintf("%s[%d]", models.FieldAuthors, i)})
			continue
		}
		email := author.GetEmail()
		if email == "" {
			continue
		}
		if !IsValidEmail(email) {
			problems = append(problems, &InvalidEmailError{
				Role:    "author",
				Contact: author.GetName(),
				Email:   email,
			})
		}
	}
	return problems
}

func checkVersion(pkg *models.Package) []error {
	if pkg.Version == "" {
		return []error{&MissingFieldError{Field: models.FieldVersion}}
	}
	if !IsValidVersion(pkg.Version) {
		return []error{&InvalidVersionError{Field: models.FieldVersion, Value: pkg.Version}}
	}
	return nil
}

func checkPackageFormat(pkg *models.Package) []error {
	if pkg.PackageFormat == "" || IsSupportedFormat(pkg.PackageFormat) {
		return nil
	}
	return []error{&UnsupportedFormatError{Value: pkg.PackageFormat}}
}

func checkDescription(pkg *models.Package) []error {
	if strings.TrimSpace(pkg.Description) == "" {
		return []error{&MissingFieldError{Field: models.FieldDescription}}
	}
	return nil
}

// Unlike authors, every maintainer needs a valid email
func checkMaintainers(pkg *models.Package) []error {
	if len(pkg.Maintainers) == 0 {
		return []error{&MissingFieldError{Field: models.FieldMaintainers}}
	}

	var problems []error
	for i, maintainer := range pkg.Maintainers {
		if isNil(maintainer) {
			problems = append(problems, &MissingFieldError{Field: fmt.Sprintf("%s[%d]", models.FieldMaintainers, i)})
			continue
		}
		if strings.TrimSpace(maintainer.GetName()) == "" {
			problems = append(problems, &MissingFieldError{Field: fmt.Sprintf("%s[%d].name", models.FieldMaintainers, i)})
		}
		if email := maintainer.GetEmail(); !IsValidEmail(email) {
			problems = append(problems, &InvalidEmailError{
				Role:    "maintainer",
				Contact: maintainer.GetName(),
				Email:   email,
			})
		}
	}
	return problems
}

func checkLicenses(pkg *models.Package) []error {
	if len(pkg.Licenses) == 0 {
		return []error{&MissingFieldError{Field: models.FieldLicenses}}
	}

	var problems []error
	for i, license := range pkg.Licenses {
		if strings.TrimSpace(license) == "" {
			problems = append(problems, &MissingFieldError{Field: fmt.Sprintf("%s[%d]", models.FieldLicenses, i)})
		}
	}
	return problems
}

func checkDependencies(pkg *models.Package) []error {
	var problems []error
	var depends []models.Requirement

	pkg.AllRequirements(func(role models.DependencyRole, req models.Requirement) {
		if isNil(req) {
			problems = append(problems, &InvalidDependencyError{Role: role.String(), Reason: "is nil"})
			return
		}

		name := req.GetName()
		if strings.TrimSpace(name) == "" {
			problems = append(problems, &InvalidDependencyError{Role: role.String(), Reason: "has an empty name"})
			return
		}

		if role.IsDepends() {
			depends = append(depends, req)
			if name == pkg.Name {
				problems = append(problems, &InvalidDependencyError{
					Role:   role.String(),
					Name:   name,
					Reason: "must not refer to the package itself",
				})
			}
		}

		if c, ok := req.(models.ConstrainedRequirement); ok && c.HasConstraints() {
			if _, err := c.Constraint(); err != nil {
				problems = append(problems, &InvalidDependencyError{
					Role:   role.String(),
					Name:   name,
					Reason: fmt.Sprintf("has invalid version constraints: %v", err),
				})
			}
		}
	})

	for _, name := range utils.DetectOverlap(depends, pkg.Conflicts) {
		problems = append(problems, &InvalidDependencyError{
			Role:   models.RoleConflict.String(),
			Name:   name,
			Reason: "is also declared as a dependency",
		})
	}

	return problems
}

// isNil also catches typed nil pointers stored in an interface, which would
// panic on value-receiver methods
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
