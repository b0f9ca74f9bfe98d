package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/ralt/pkgcheck/internal/models"
	"github.com/ralt/pkgcheck/internal/utils"
	"github.com/ralt/pkgcheck/internal/validator"
	"gopkg.in/yaml.v3"
)

// Report is the rendered outcome of a validation run
type Report struct {
	Package  string   `yaml:"package"`
	Filename string   `yaml:"filename,omitempty"`
	Valid    bool     `yaml:"valid"`
	Problems []string `yaml:"problems,omitempty"`
}

func newReport(pkg *models.Package, validationErr error) Report {
	report := Report{
		Package:  utils.PackageIdentity(pkg),
		Filename: pkg.Filename,
		Valid:    validationErr == nil,
	}

	var invalid *validator.InvalidPackageError
	switch {
	case validationErr == nil:
	case errors.As(validationErr, &invalid):
		for _, problem := range invalid.Problems {
			report.Problems = append(report.Problems, problem.Error())
		}
	default:
		report.Problems = []string{validationErr.Error()}
	}

	return report
}

func writeReport(w io.Writer, report Report, format string) error {
	switch format {
	case models.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case models.OutputText:
		if report.Valid {
			_, err := fmt.Fprintf(w, "%s: ok\n", report.Package)
			return err
		}
		if _, err := fmt.Fprintf(w, "%s: %d problems\n", report.Package, len(report.Problems)); err != nil {
			return err
		}
		for _, problem := range report.Problems {
			if _, err := fmt.Fprintf(w, "  - %s\n", problem); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
