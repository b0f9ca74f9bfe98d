package cli

import (
	"fmt"

	"github.com/ralt/pkgcheck/internal/models"
	"github.com/ralt/pkgcheck/internal/validator"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewCheckNameCmd creates the check-name command
func NewCheckNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-name NAME...",
		Short: "Check package names against the naming rule",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, name := range args {
				reason := validator.NameViolation(name)
				if reason == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
					continue
				}
				invalid++
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, reason)
			}
			return checkResult("names", invalid, len(args))
		},
	}
}

// NewCheckEmailCmd creates the check-email command
func NewCheckEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-email EMAIL...",
		Short: "Check maintainer or author emails",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, email := range args {
				if validator.IsValidEmail(email) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", email)
					continue
				}
				invalid++
				fmt.Fprintf(cmd.OutOrStdout(), "%s: invalid\n", email)
			}
			return checkResult("emails", invalid, len(args))
		},
	}
}

// NewRulesCmd creates the rules command
func NewRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List validation rules in evaluation order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for i, rule := range validator.Rules() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, rule.Name)
			}
		},
	}
}

func checkResult(what string, invalid, total int) error {
	if invalid == 0 {
		logrus.Debugf("All %d %s are valid", total, what)
		return nil
	}
	return &models.ManifestError{
		Type: models.ErrValidation,
		Err:  fmt.Errorf("%d of %d %s are invalid", invalid, total, what),
	}
}
