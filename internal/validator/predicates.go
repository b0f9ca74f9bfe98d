package validator

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

var (
	// namePattern is the full package naming rule
	namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

	// emailPattern accepts "@" or the literal "[at]" as separator and nothing
	// more: no domain structure is required
	emailPattern = regexp.MustCompile(`^[^\s\p{Z}<>]*(@|\[at\])[^\s\p{Z}<>]*$`)
)

// SupportedFormats lists the package_format values the validator accepts
var SupportedFormats = []string{"1", "2", "3"}

// IsValidName reports whether name is a valid package name
func IsValidName(name string) bool {
	return namePattern.MatchString(name)
}

// NameViolation describes which part of the naming rule name breaks,
// or returns "" when the name is valid
func NameViolation(name string) string {
	switch {
	case IsValidName(name):
		return ""
	case name == "":
		return "must not be empty"
	case strings.IndexFunc(name, unicode.IsSpace) >= 0:
		return "must not contain whitespace"
	case strings.Contains(name, "-"):
		return "must not contain hyphens"
	case strings.IndexFunc(name, unicode.IsUpper) >= 0:
		return "must not contain uppercase letters"
	case name[0] < 'a' || name[0] > 'z':
		return "must start with a lowercase letter"
	default:
		return "must only contain lowercase letters, digits and underscores"
	}
}

// IsValidEmail reports whether email has the loose shape of an address.
// Any Unicode whitespace is rejected, including runes the pattern's \s misses.
func IsValidEmail(email string) bool {
	if strings.IndexFunc(email, unicode.IsSpace) >= 0 {
		return false
	}
	return emailPattern.MatchString(email)
}

// IsValidVersion reports whether version is exactly MAJOR.MINOR.PATCH
func IsValidVersion(version string) bool {
	v, err := semver.StrictNewVersion(version)
	if err != nil {
		return false
	}
	return v.Prerelease() == "" && v.Metadata() == ""
}

// IsSupportedFormat reports whether format is a known package_format value
func IsSupportedFormat(format string) bool {
	for _, f := range SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}
