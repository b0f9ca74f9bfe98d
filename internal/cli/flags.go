package cli

import (
	"fmt"
	"strings"

	"github.com/ralt/pkgcheck/internal/models"
)

// URL types accepted as a "type=" prefix on --url
var urlTypes = map[string]bool{
	"website":    true,
	"bugtracker": true,
	"repository": true,
}

// Bound operators accepted in dependency flags, longest first
var boundOperators = []struct {
	op    string
	field string
}{
	{">=", models.FieldVersionGTE},
	{"<=", models.FieldVersionLTE},
	{"==", models.FieldVersionEQ},
	{">", models.FieldVersionGT},
	{"<", models.FieldVersionLT},
	{"=", models.FieldVersionEQ},
}

// parseContact splits "Name <email>" into a person. Text without a
// trailing "<...>" part is taken as a name with no email.
func parseContact(raw string) models.Person {
	raw = strings.TrimSpace(raw)
	open := strings.Index(raw, "<")
	if open < 0 || !strings.HasSuffix(raw, ">") {
		return models.Person{Name: raw}
	}

	return models.Person{
		Name:  strings.TrimSpace(raw[:open]),
		Email: strings.TrimSpace(raw[open+1 : len(raw)-1]),
	}
}

func parseContacts(raws []string) []models.Person {
	people := make([]models.Person, 0, len(raws))
	for _, raw := range raws {
		people = append(people, parseContact(raw))
	}
	return people
}

// parseURL reads "type=url" or a bare url, which defaults to a website
func parseURL(raw string) models.URL {
	if typ, url, ok := strings.Cut(raw, "="); ok && urlTypes[typ] {
		return models.URL{URL: url, Type: typ}
	}
	return models.URL{URL: raw, Type: "website"}
}

// parseDependency reads "name" or "name>=1.0,<2.0"
func parseDependency(raw string) (*models.Dependency, error) {
	raw = strings.TrimSpace(raw)
	idx := strings.IndexAny(raw, "<>=")
	if idx < 0 {
		return models.NewDependency(raw, nil)
	}

	name := strings.TrimSpace(raw[:idx])
	bounds := make(map[string]interface{})

	for _, part := range strings.Split(raw[idx:], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		field, value, err := parseBound(part)
		if err != nil {
			return nil, fmt.Errorf("dependency %q: %w", raw, err)
		}
		if _, exists := bounds[field]; exists {
			return nil, fmt.Errorf("dependency %q: bound %s given twice", raw, field)
		}
		bounds[field] = value
	}

	return models.NewDependency(name, bounds)
}

func parseBound(part string) (string, string, error) {
	for _, b := range boundOperators {
		if strings.HasPrefix(part, b.op) {
			value := strings.TrimSpace(strings.TrimPrefix(part, b.op))
			if value == "" {
				return "", "", fmt.Errorf("bound %q has no version", part)
			}
			return b.field, value, nil
		}
	}
	return "", "", fmt.Errorf("bound %q has no comparison operator", part)
}
