package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coursecraft/snipmint/internal/extract"
)

var snippetsVariantFlag string

// snippetsCmd represents the snippets command
var snippetsCmd = &cobra.Command{
	Use:   "snippets FILE",
	Short: "List the snippets a file defines",
	Long: `Snippets classifies one annotated source file and lists every snippet
name it defines with the boundary line numbers, in order of first
appearance. Incomplete snippets (missing a start or end marker) are
flagged rather than treated as an error, so work in progress can be
inspected.

Line numbers refer to the templated text for files that opt in to
templating, matching what extract will emit for the same variant.
`,
	Args: cobra.ExactArgs(1),
	RunE: runSnippets,
}

func init() {
	rootCmd.AddCommand(snippetsCmd)
	snippetsCmd.Flags().StringVar(&snippetsVariantFlag, "variant", "", "output variant used for templating")
}

func runSnippets(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	v, err := resolveVariant(snippetsVariantFlag, cfg.Extract.Variant)
	if err != nil {
		return err
	}

	infos, err := extract.List(extract.Params{
		File:         args[0],
		Variant:      v,
		TemplateExts: cfg.Extract.TemplateExtensions,
	})
	if err != nil {
		return err
	}

	if len(infos) == 0 {
		fmt.Println("No snippets defined")
		return nil
	}

	for _, info := range infos {
		if info.Complete {
			fmt.Printf("%s\t%d-%d\n", info.Name, info.First, info.Last)
		} else {
			fmt.Printf("%s\t(incomplete)\n", info.Name)
		}
	}
	return nil
}
