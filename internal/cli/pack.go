package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coursecraft/snipmint/internal/pack"
)

var (
	packVariantFlag string
	packQuietFlag   bool
)

// packCmd represents the pack command
var packCmd = &cobra.Command{
	Use:   "pack OUTPUT.zip",
	Short: "Package distributable code into a zip archive",
	Long: `Pack collects the course code files (git-tracked files under the code
directory, or a glob walk when the project is not a git repository),
strips all snippet annotations, resolves templating for the requested
variant, and writes the result into a zip archive.

The default "code" variant produces the participant distribution;
"solution" produces the instructor archive.

Examples:
  # Participant distribution
  snipmint pack dist/course-code.zip

  # Instructor archive with solutions
  snipmint pack dist/solutions.zip --variant solution
`,
	Args: cobra.ExactArgs(1),
	RunE: runPack,
}

func init() {
	rootCmd.AddCommand(packCmd)
	packCmd.Flags().StringVar(&packVariantFlag, "variant", "", "output variant: code, solution, slide or selftest")
	packCmd.Flags().BoolVarP(&packQuietFlag, "quiet", "q", false, "suppress progress output")
}

func runPack(cmd *cobra.Command, args []string) error {
	cfg, root, err := loadConfig()
	if err != nil {
		return err
	}

	v, err := resolveVariant(packVariantFlag, cfg.Extract.Variant)
	if err != nil {
		return err
	}

	reporter := NewPackProgressReporter(packQuietFlag)

	packager := &pack.Packager{
		Root:         root,
		CodeDir:      cfg.Paths.CodeDir,
		Variant:      v,
		TemplateExts: cfg.Extract.TemplateExtensions,
		Include:      cfg.Paths.Include,
		Ignore:       cfg.Paths.Ignore,
		Progress:     reporter.OnFile,
	}

	if err := packager.Package(args[0]); err != nil {
		return fmt.Errorf("pack failed: %w", err)
	}

	reporter.Finish()
	if !packQuietFlag {
		fmt.Printf("Wrote %s (%s variant)\n", args[0], v)
	}
	return nil
}
