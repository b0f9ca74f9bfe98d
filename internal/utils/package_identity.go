package utils

import (
	"fmt"

	"github.com/ralt/pkgcheck/internal/models"
)

// PackageIdentity returns a unique identifier for a package
func PackageIdentity(pkg *models.Package) string {
	if pkg == nil {
		return ""
	}
	if pkg.Version == "" {
		return pkg.Name
	}
	return fmt.Sprintf("%s@%s", pkg.Name, pkg.Version)
}

// RequirementNames returns the names declared in reqs, skipping nil entries
func RequirementNames(reqs []models.Requirement) []string {
	names := make([]string, 0, len(reqs))
	for _, req := range reqs {
		if req == nil {
			continue
		}
		names = append(names, req.GetName())
	}
	return names
}

// DetectOverlap returns the names from others that are also declared in existing.
// Each name is reported once, in the order it first appears in others.
func DetectOverlap(existing, others []models.Requirement) []string {
	existingMap := make(map[string]bool)
	for _, name := range RequirementNames(existing) {
		existingMap[name] = true
	}

	var overlap []string
	seen := make(map[string]bool)
	for _, name := range RequirementNames(others) {
		if existingMap[name] && !seen[name] {
			overlap = append(overlap, name)
			seen[name] = true
		}
	}
	return overlap
}
