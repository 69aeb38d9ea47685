package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/coursecraft/snipmint/internal/extract"
)

var watchVariantFlag string

// Quiet period after a filesystem event before re-projecting, so a
// burst of editor writes triggers a single render.
const watchDebounce = 500 * time.Millisecond

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch FILE SNIPPET",
	Short: "Re-extract a snippet whenever its file changes",
	Long: `Watch re-projects one snippet every time the source file is written,
printing the fresh minted block to stdout. Annotation errors are logged
and watching continues, which makes it the tight feedback loop while
authoring annotations.

Stop with Ctrl-C.
`,
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchVariantFlag, "variant", "", "output variant: code, solution, slide or selftest")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	v, err := resolveVariant(watchVariantFlag, cfg.Extract.Variant)
	if err != nil {
		return err
	}

	params := extract.Params{
		File:         args[0],
		Snippet:      args[1],
		Variant:      v,
		TemplateExts: cfg.Extract.TemplateExtensions,
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors that write via
	// rename replace the inode and a file watch would go stale.
	dir := filepath.Dir(params.File)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	project := func() {
		proj, err := extract.Project(params)
		if err != nil {
			log.Printf("projection failed: %v", err)
			return
		}
		fmt.Print(proj.Minted(extract.MintedParams{Language: cfg.Extract.Language}))
	}

	log.Printf("Watching %s for snippet %q (%s variant)", params.File, params.Snippet, v)
	project()

	target, err := filepath.Abs(params.File)
	if err != nil {
		return err
	}

	// Re-projection is funneled through the select loop: events only
	// arm the debounce channel, and project runs on this goroutine when
	// it fires.
	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			log.Println("Stopping watch")
			return nil

		case <-debounce:
			debounce = nil
			project()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldReproject(event, target) {
				continue
			}
			debounce = time.After(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

// shouldReproject reports whether a directory event concerns the
// watched file and represents a content change.
func shouldReproject(event fsnotify.Event, target string) bool {
	changed, err := filepath.Abs(event.Name)
	if err != nil || changed != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
