package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/ralt/pkgcheck/internal/models"
	"github.com/ralt/pkgcheck/internal/utils"
	"github.com/ralt/pkgcheck/internal/validator"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates the validate command
func NewValidateCmd() *cobra.Command {
	var config models.CheckConfig

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a package manifest",
		Long: `Builds a package manifest from the given flags and reports every
problem the validator finds in a single run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Validate configuration
			if err := validateConfig(&config); err != nil {
				return err
			}

			logrus.Debugf("Configuration: %+v", config)

			return runValidation(cmd.OutOrStdout(), &config)
		},
	}

	// Core metadata flags
	cmd.Flags().StringVarP(&config.Filename, "filename", "f", "", "Manifest location to record in the package")
	cmd.Flags().StringVarP(&config.Name, "name", "n", "", "Package name")
	cmd.Flags().StringVar(&config.Version, "version", "", "Package version (MAJOR.MINOR.PATCH)")
	cmd.Flags().StringVar(&config.VersionABI, "version-abi", "", "Package ABI version")
	cmd.Flags().StringVar(&config.PackageFormat, "package-format", "", "Manifest format version")
	cmd.Flags().StringVarP(&config.Description, "description", "d", "", "Package description")
	cmd.Flags().StringToStringVar(&config.Fields, "field", nil, "Raw scalar field as key=value (repeatable)")

	// People and licensing flags
	cmd.Flags().StringArrayVarP(&config.Maintainers, "maintainer", "m", nil, `Maintainer as "Name <email>" (repeatable)`)
	cmd.Flags().StringArrayVarP(&config.Authors, "author", "a", nil, `Author as "Name <email>" or "Name" (repeatable)`)
	cmd.Flags().StringArrayVarP(&config.Licenses, "license", "l", nil, "License (repeatable)")
	cmd.Flags().StringArrayVar(&config.URLs, "url", nil, `URL as "url" or "type=url" (repeatable)`)

	// Dependency flags
	cmd.Flags().StringArrayVar(&config.BuildDepends, "build-depend", nil, `Build dependency as "name" or "name>=1.0,<2.0" (repeatable)`)
	cmd.Flags().StringArrayVar(&config.BuildtoolDepends, "buildtool-depend", nil, "Build tool dependency (repeatable)")
	cmd.Flags().StringArrayVar(&config.RunDepends, "run-depend", nil, "Run dependency (repeatable)")
	cmd.Flags().StringArrayVar(&config.TestDepends, "test-depend", nil, "Test dependency (repeatable)")
	cmd.Flags().StringArrayVar(&config.Conflicts, "conflict", nil, "Conflicting package (repeatable)")
	cmd.Flags().StringArrayVar(&config.Replaces, "replace", nil, "Replaced package (repeatable)")

	// Output flags
	cmd.Flags().StringVarP(&config.Output, "output", "o", models.OutputText, "Report format (text, yaml)")

	return cmd
}

func validateConfig(config *models.CheckConfig) error {
	// Default to text output
	if config.Output == "" {
		config.Output = models.OutputText
	}

	if config.Output != models.OutputText && config.Output != models.OutputYAML {
		return &models.ManifestError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("unsupported output format %q", config.Output),
		}
	}

	for key := range config.Fields {
		if key == "" {
			return &models.ManifestError{
				Type: models.ErrInvalidConfig,
				Err:  fmt.Errorf("--field requires a non-empty key"),
			}
		}
	}

	return nil
}

func runValidation(w io.Writer, config *models.CheckConfig) error {
	// Step 1: Build the package from flags
	pkg, err := buildPackage(config)
	if err != nil {
		return &models.ManifestError{
			Type:    models.ErrConstruction,
			Package: config.Name,
			Err:     fmt.Errorf("failed to build package: %w", err),
		}
	}

	identity := utils.PackageIdentity(pkg)
	logrus.Infof("Validating package %s", identity)

	// Step 2: Run every rule
	validationErr := validator.ValidatePackage(pkg)

	// Step 3: Report
	report := newReport(pkg, validationErr)
	if err := writeReport(w, report, config.Output); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if validationErr != nil {
		var invalid *validator.InvalidPackageError
		if errors.As(validationErr, &invalid) {
			logrus.Warnf("Found %d problems in %s", len(invalid.Problems), identity)
		}
		return &models.ManifestError{
			Type:    models.ErrValidation,
			Package: identity,
			Err:     validationErr,
		}
	}

	logrus.Infof("Package %s is valid", identity)
	return nil
}

// buildPackage turns the configuration into the keyed field set accepted by
// models.NewPackage. Raw --field values are applied first so named flags win.
func buildPackage(config *models.CheckConfig) (*models.Package, error) {
	fields := make(map[string]interface{})
	for key, value := range config.Fields {
		fields[key] = value
	}

	scalars := map[string]string{
		models.FieldName:          config.Name,
		models.FieldVersion:       config.Version,
		models.FieldVersionABI:    config.VersionABI,
		models.FieldPackageFormat: config.PackageFormat,
		models.FieldDescription:   config.Description,
	}
	for key, value := range scalars {
		if value != "" {
			fields[key] = value
		}
	}

	if len(config.Maintainers) > 0 {
		fields[models.FieldMaintainers] = parseContacts(config.Maintainers)
	}
	if len(config.Authors) > 0 {
		fields[models.FieldAuthors] = parseContacts(config.Authors)
	}
	if len(config.Licenses) > 0 {
		fields[models.FieldLicenses] = config.Licenses
	}
	if len(config.URLs) > 0 {
		urls := make([]models.URL, 0, len(config.URLs))
		for _, raw := range config.URLs {
			urls = append(urls, parseURL(raw))
		}
		fields[models.FieldURLs] = urls
	}

	depLists := map[string][]string{
		models.FieldBuildDepends:     config.BuildDepends,
		models.FieldBuildtoolDepends: config.BuildtoolDepends,
		models.FieldRunDepends:       config.RunDepends,
		models.FieldTestDepends:      config.TestDepends,
		models.FieldConflicts:        config.Conflicts,
		models.FieldReplaces:         config.Replaces,
	}
	for key, specs := range depLists {
		if len(specs) == 0 {
			continue
		}
		deps := make([]*models.Dependency, 0, len(specs))
		for _, spec := range specs {
			dep, err := parseDependency(spec)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			deps = append(deps, dep)
		}
		fields[key] = deps
	}

	return models.NewPackage(config.Filename, fields)
}
