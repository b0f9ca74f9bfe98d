package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pkgcheck",
		Short: "Check package manifests against naming and content rules",
		Long: `Pkgcheck builds a package manifest from command line flags and checks
it the same way build tooling does before a package enters a dependency
graph or build pipeline.

Checks include:
  - Package naming (lowercase letters, digits and underscores)
  - Maintainer and author emails
  - Version format, description and licenses
  - Dependency lists (self dependencies, conflicts, version bounds)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewCheckNameCmd())
	rootCmd.AddCommand(NewCheckEmailCmd())
	rootCmd.AddCommand(NewRulesCmd())

	return rootCmd
}
