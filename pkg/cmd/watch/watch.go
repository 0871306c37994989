package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kestrel-notes/mdfind/internal/config"
	"github.com/kestrel-notes/mdfind/internal/finder"
	"github.com/kestrel-notes/mdfind/internal/querylang"
)

// NewCmdWatch builds the "watch" subcommand: re-run a query on an interval
// and report files as they start matching. There is no filesystem-event
// library anywhere in the example pack, so this polls with a stdlib ticker
// rather than reaching for an unsourced dependency.
func NewCmdWatch(cfg *config.Config) *cobra.Command {
	var (
		dir      string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <query>",
		Short: "Re-run a query on an interval, reporting newly matching files",
		Long: heredoc.Doc(`
			Parse the query once, then poll --dir every --interval, printing
			the path of each file the first time it matches.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			searchDir := dir
			if searchDir == "" {
				searchDir = cfg.Dir
			}
			return run(cmd, cfg, args[0], searchDir, interval)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory to search (defaults to the configured dir)")
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "poll interval")

	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config, query, dir string, interval time.Duration) error {
	if dir == "" {
		return fmt.Errorf("dir is must")
	}

	f := finder.New()
	root, err := f.Parse(query, cfg.CaseSensitive)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	seen := make(map[string]bool)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := poll(ctx, f, root, dir, cfg.CaseSensitive, seen, cmd); err != nil {
			return err
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil
		}
	}
}

func poll(
	ctx context.Context,
	f *finder.Finder,
	root *querylang.Node,
	dir string,
	caseSensitive bool,
	seen map[string]bool,
	cmd *cobra.Command,
) error {
	for r := range f.FindByAST(ctx, root, dir, caseSensitive) {
		if r.Err != nil {
			return r.Err
		}
		if seen[r.Record.Path] {
			continue
		}
		seen[r.Record.Path] = true
		fmt.Fprintln(cmd.OutOrStdout(), r.Record.Path)
	}
	return nil
}
