// Package cli wires the snipmint commands: extract, snippets, pack,
// watch and version.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coursecraft/snipmint/internal/config"
)

var (
	rootFlag    string
	verboseFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "snipmint",
	Short: "Extract annotated code snippets for typeset teaching material",
	Long: `snipmint reads source files carrying inline snippet annotations and
emits minted blocks for LaTeX, packages distributable code archives, and
lists the snippets a file defines.

Annotations are trailing comments, e.g.:

  def handler():       # <- ex-request
      return dispatch  # !! ex-request
                       # -> ex-request
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "project root (default is the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose output")
	rootCmd.SilenceUsage = true
}

// projectRoot resolves the project root from the --root flag or the
// working directory.
func projectRoot() (string, error) {
	if rootFlag != "" {
		return rootFlag, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

// loadConfig loads the project configuration for the resolved root.
func loadConfig() (*config.Config, string, error) {
	root, err := projectRoot()
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.NewLoader(root).Load()
	if err != nil {
		return nil, "", err
	}
	if verboseFlag {
		fmt.Fprintf(os.Stderr, "Using project root: %s\n", root)
	}
	return cfg, root, nil
}
