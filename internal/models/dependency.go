package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Dependency field names accepted by NewDependency
const (
	FieldVersionLT  = "version_lt"
	FieldVersionLTE = "version_lte"
	FieldVersionEQ  = "version_eq"
	FieldVersionGTE = "version_gte"
	FieldVersionGT  = "version_gt"
)

// Requirement is anything a package can list as a dependency, conflict or replacement
type Requirement interface {
	GetName() string
}

// ConstrainedRequirement is a Requirement that can also express version bounds
type ConstrainedRequirement interface {
	Requirement
	HasConstraints() bool
	Constraint() (*semver.Constraints, error)
}

// Dependency represents a named dependency with optional version bounds.
// An empty bound means the bound is not set.
type Dependency struct {
	Name       string
	VersionLT  string
	VersionLTE string
	VersionEQ  string
	VersionGTE string
	VersionGT  string
}

// NewDependency creates a dependency from a name and a set of version bounds
// keyed by field name. Unknown keys are rejected with an UnknownFieldError.
func NewDependency(name string, constraints map[string]interface{}) (*Dependency, error) {
	dep := &Dependency{Name: name}

	keys := make([]string, 0, len(constraints))
	for key := range constraints {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fields := dep.fields()
	for _, key := range keys {
		target, ok := fields[key]
		if !ok {
			return nil, &UnknownFieldError{Entity: "Dependency", Field: key}
		}

		value, err := scalarValue("Dependency", key, constraints[key])
		if err != nil {
			return nil, err
		}
		*target = value
	}

	return dep, nil
}

// GetName returns the dependency name
func (d Dependency) GetName() string {
	return d.Name
}

// HasConstraints reports whether any version bound is set
func (d Dependency) HasConstraints() bool {
	return len(d.bounds()) > 0
}

// Constraint returns the conjunction of all set version bounds.
// A dependency without bounds matches every version.
func (d Dependency) Constraint() (*semver.Constraints, error) {
	bounds := d.bounds()
	if len(bounds) == 0 {
		return semver.NewConstraint("*")
	}

	c, err := semver.NewConstraint(strings.Join(bounds, ", "))
	if err != nil {
		return nil, fmt.Errorf("dependency %s: %w", d.Name, err)
	}
	return c, nil
}

// Satisfies reports whether version falls within the dependency's bounds
func (d Dependency) Satisfies(version string) (bool, error) {
	c, err := d.Constraint()
	if err != nil {
		return false, err
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("invalid version %q: %w", version, err)
	}

	return c.Check(v), nil
}

// String renders the dependency as "name (>= 1.0, < 2.0)"
func (d Dependency) String() string {
	bounds := d.bounds()
	if len(bounds) == 0 {
		return d.Name
	}
	return fmt.Sprintf("%s (%s)", d.Name, strings.Join(bounds, ", "))
}

// fields maps the recognized bound names to their storage
func (d *Dependency) fields() map[string]*string {
	return map[string]*string{
		FieldVersionLT:  &d.VersionLT,
		FieldVersionLTE: &d.VersionLTE,
		FieldVersionEQ:  &d.VersionEQ,
		FieldVersionGTE: &d.VersionGTE,
		FieldVersionGT:  &d.VersionGT,
	}
}

// bounds returns the set bounds in operator order
func (d Dependency) bounds() []string {
	var bounds []string
	for _, b := range []struct {
		op    string
		value string
	}{
		{"<", d.VersionLT},
		{"<=", d.VersionLTE},
		{"=", d.VersionEQ},
		{">=", d.VersionGTE},
		{">", d.VersionGT},
	} {
		if b.value != "" {
			bounds = append(bounds, b.op+" "+b.value)
		}
	}
	return bounds
}

// scalarValue renders a string or numeric field value as a string
func scalarValue(entity, field string, value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v), nil
	default:
		return "", &FieldTypeError{Entity: entity, Field: field, Value: value}
	}
}
