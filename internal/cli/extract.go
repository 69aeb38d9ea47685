package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coursecraft/snipmint/internal/extract"
	"github.com/coursecraft/snipmint/internal/variant"
)

var (
	extractLangFlag    string
	extractOptsFlag    string
	extractShowName    bool
	extractVariantFlag string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract FILE [SNIPPET]",
	Short: "Extract one snippet as a minted block",
	Long: `Extract projects one annotated source file and prints a LaTeX minted
environment on stdout, ready for \input in the course material.

With a SNIPPET argument the derived options (firstline, lastline,
highlightlines, ...) select and emphasize the snippet's lines. Without
it the whole file is printed with annotations stripped.

On an annotation error the command prints \errmessage{...} so the
failure is visible in the typeset document, and exits non-zero.

Examples:
  # Extract snippet "intro" from lecture code
  snipmint extract code/server.py intro

  # Whole file, instructor solution variant
  snipmint extract code/server.py --variant solution
`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVar(&extractLangFlag, "lang", "", "minted language (default from config)")
	extractCmd.Flags().StringVar(&extractOptsFlag, "minted-opts", "", "extra minted options, comma separated")
	extractCmd.Flags().BoolVar(&extractShowName, "show-name", false, "emit \\filenameheader with the file name")
	extractCmd.Flags().StringVar(&extractVariantFlag, "variant", "", "output variant: code, solution, slide or selftest")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, root, err := loadConfig()
	if err != nil {
		return err
	}

	v, err := resolveVariant(extractVariantFlag, cfg.Extract.Variant)
	if err != nil {
		return err
	}

	file := args[0]
	snippetName := ""
	if len(args) == 2 {
		snippetName = args[1]
	}

	proj, err := extract.Project(extract.Params{
		File:         file,
		Snippet:      snippetName,
		Variant:      v,
		TemplateExts: cfg.Extract.TemplateExtensions,
	})
	if err != nil {
		// The typesetting layer consumes stdout; surface the failure
		// there as well as on the exit code.
		fmt.Print(extract.ErrMessage(err))
		return err
	}

	lang := extractLangFlag
	if lang == "" {
		lang = cfg.Extract.Language
	}

	var extraOpts []string
	if extractOptsFlag != "" {
		extraOpts = strings.Split(extractOptsFlag, ",")
	}

	header := ""
	if extractShowName {
		header = displayName(file, filepath.Join(root, cfg.Paths.CodeDir))
	}

	fmt.Print(proj.Minted(extract.MintedParams{
		Language:     lang,
		ExtraOptions: extraOpts,
		Header:       header,
	}))
	return nil
}

// displayName strips the code directory prefix for the file-name
// header, so slides show "server.py" rather than a repository path.
func displayName(file, codeDir string) string {
	abs, err := filepath.Abs(file)
	if err != nil {
		return file
	}
	if rel, err := filepath.Rel(codeDir, abs); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return filepath.Base(file)
}

// resolveVariant picks the variant from the flag, falling back to the
// configured default.
func resolveVariant(flag, fallback string) (variant.Variant, error) {
	name := flag
	if name == "" {
		name = fallback
	}
	v, err := variant.Parse(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 0, err
	}
	return v, nil
}
