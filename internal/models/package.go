package models

import "sort"

// Package field names accepted by NewPackage
const (
	FieldName             = "name"
	FieldVersion          = "version"
	FieldVersionABI       = "version_abi"
	FieldPackageFormat    = "package_format"
	FieldDescription      = "description"
	FieldMaintainers      = "maintainers"
	FieldAuthors          = "authors"
	FieldLicenses         = "licenses"
	FieldURLs             = "urls"
	FieldBuildDepends     = "build_depends"
	FieldBuildtoolDepends = "buildtool_depends"
	FieldRunDepends       = "run_depends"
	FieldTestDepends      = "test_depends"
	FieldConflicts        = "conflicts"
	FieldReplaces         = "replaces"
	FieldExports          = "exports"
)

// Contact is a maintainer or author of a package
type Contact interface {
	GetName() string
	// GetEmail returns "" when no email is known
	GetEmail() string
}

// Person is the plain Contact implementation
type Person struct {
	Name  string
	Email string
}

// GetName returns the person's name
func (p Person) GetName() string { return p.Name }

// GetEmail returns the person's email
func (p Person) GetEmail() string { return p.Email }

// URL is a link published with a package
type URL struct {
	URL string
	// Type is one of website, bugtracker or repository
	Type string
}

// Export is an opaque export entry consumed by build tooling
type Export struct {
	Tagname    string
	Attributes map[string]string
	Content    string
}

// Package represents a package manifest with its metadata
type Package struct {
	// Location the manifest was loaded from, empty if not loaded from disk
	Filename string

	// Core metadata
	Name          string
	Version       string
	VersionABI    string
	PackageFormat string
	Description   string

	// People
	Maintainers []Contact
	Authors     []Contact

	Licenses []string
	URLs     []URL

	// Dependency lists
	BuildDepends     []Requirement
	BuildtoolDepends []Requirement
	RunDepends       []Requirement
	TestDepends      []Requirement
	Conflicts        []Requirement
	Replaces         []Requirement

	Exports []Export
}

// NewPackage creates a package from a set of fields keyed by field name.
// Every list field that is not supplied is empty, never nil. Unknown keys
// are rejected with an UnknownFieldError.
func NewPackage(filename string, fields map[string]interface{}) (*Package, error) {
	pkg := &Package{Filename: filename}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := pkg.setField(key, fields[key]); err != nil {
			return nil, err
		}
	}

	pkg.Normalize()
	return pkg, nil
}

// Normalize replaces nil lists with empty ones
func (p *Package) Normalize() {
	if p.Maintainers == nil {
		p.Maintainers = []Contact{}
	}
	if p.Authors == nil {
		p.Authors = []Contact{}
	}
	if p.Licenses == nil {
		p.Licenses = []string{}
	}
	if p.URLs == nil {
		p.URLs = []URL{}
	}
	for _, role := range DependencyRoles {
		list := p.requirementList(role)
		if *list == nil {
			*list = []Requirement{}
		}
	}
	if p.Exports == nil {
		p.Exports = []Export{}
	}
}

// Requirements returns the list declared for role
func (p *Package) Requirements(role DependencyRole) []Requirement {
	list := p.requirementList(role)
	if list == nil {
		return nil
	}
	return *list
}

// AllRequirements calls fn for every requirement of every role, in role order
func (p *Package) AllRequirements(fn func(role DependencyRole, req Requirement)) {
	for _, role := range DependencyRoles {
		for _, req := range p.Requirements(role) {
			fn(role, req)
		}
	}
}

func (p *Package) requirementList(role DependencyRole) *[]Requirement {
	switch role {
	case RoleBuild:
		return &p.BuildDepends
	case RoleBuildtool:
		return &p.BuildtoolDepends
	case RoleRun:
		return &p.RunDepends
	case RoleTest:
		return &p.TestDepends
	case RoleConflict:
		return &p.Conflicts
	case RoleReplace:
		return &p.Replaces
	default:
		return nil
	}
}

// setField stores a single keyed value
func (p *Package) setField(key string, value interface{}) error {
	switch key {
	case FieldName:
		return setScalar(&p.Name, key, value)
	case FieldVersion:
		return setScalar(&p.Version, key, value)
	case FieldVersionABI:
		return setScalar(&p.VersionABI, key, value)
	case FieldPackageFormat:
		return setScalar(&p.PackageFormat, key, value)
	case FieldDescription:
		return setScalar(&p.Description, key, value)
	case FieldMaintainers:
		return setContacts(&p.Maintainers, key, value)
	case FieldAuthors:
		return setContacts(&p.Authors, key, value)
	case FieldLicenses:
		licenses, ok := value.([]string)
		if !ok && value != nil {
			return &FieldTypeError{Entity: "Package", Field: key, Value: value}
		}
		p.Licenses = licenses
	case FieldURLs:
		urls, ok := value.([]URL)
		if !ok && value != nil {
			return &FieldTypeError{Entity: "Package", Field: key, Value: value}
		}
		p.URLs = urls
	case FieldBuildDepends:
		return setRequirements(&p.BuildDepends, key, value)
	case FieldBuildtoolDepends:
		return setRequirements(&p.BuildtoolDepends, key, value)
	case FieldRunDepends:
		return setRequirements(&p.RunDepends, key, value)
	case FieldTestDepends:
		return setRequirements(&p.TestDepends, key, value)
	case FieldConflicts:
		return setRequirements(&p.Conflicts, key, value)
	case FieldReplaces:
		return setRequirements(&p.Replaces, key, value)
	case FieldExports:
		exports, ok := value.([]Export)
		if !ok && value != nil {
			return &FieldTypeError{Entity: "Package", Field: key, Value: value}
		}
		p.Exports = exports
	default:
		return &UnknownFieldError{Entity: "Package", Field: key}
	}
	return nil
}

func setScalar(target *string, key string, value interface{}) error {
	s, err := scalarValue("Package", key, value)
	if err != nil {
		return err
	}
	*target = s
	return nil
}

func setContacts(target *[]Contact, key string, value interface{}) error {
	switch v := value.(type) {
	case nil:
		*target = nil
	case []Contact:
		*target = v
	case []Person:
		contacts := make([]Contact, 0, len(v))
		for _, person := range v {
			contacts = append(contacts, person)
		}
		*target = contacts
	case []*Person:
		contacts := make([]Contact, 0, len(v))
		for _, person := range v {
			if person == nil {
				contacts = append(contacts, nil)
				continue
			}
			contacts = append(contacts, person)
		}
		*target = contacts
	default:
		return &FieldTypeError{Entity: "Package", Field: key, Value: value}
	}
	return nil
}

func setRequirements(target *[]Requirement, key string, value interface{}) error {
	switch v := value.(type) {
	case nil:
		*target = nil
	case []Requirement:
		*target = v
	case []Dependency:
		reqs := make([]Requirement, 0, len(v))
		for _, dep := range v {
			reqs = append(reqs, dep)
		}
		*target = reqs
	case []*Dependency:
		reqs := make([]Requirement, 0, len(v))
		for _, dep := range v {
			if dep == nil {
				reqs = append(reqs, nil)
				continue
			}
			reqs = append(reqs, dep)
		}
		*target = reqs
	default:
		return &FieldTypeError{Entity: "Package", Field: key, Value: value}
	}
	return nil
}
