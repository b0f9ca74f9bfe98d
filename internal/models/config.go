package models

// Output formats for check reports
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// CheckConfig contains configuration for a manifest check
type CheckConfig struct {
	// Manifest location reported back in the package, not read
	Filename string

	// Report rendering: "text" or "yaml"
	Output string

	// Core metadata
	Name          string
	Version       string
	VersionABI    string
	PackageFormat string
	Description   string

	// Raw scalar fields given as key=value, passed through NewPackage
	Fields map[string]string

	// Repeated list flags, one entry per occurrence
	Maintainers      []string // "Name <email>"
	Authors          []string // "Name <email>" or "Name"
	Licenses         []string
	URLs             []string // "url" or "type=url"
	BuildDepends     []string // "name" or "name>=1.0,<2.0"
	BuildtoolDepends []string
	RunDepends       []string
	TestDepends      []string
	Conflicts        []string
	Replaces         []string
}
