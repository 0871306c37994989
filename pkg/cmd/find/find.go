package find

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/kestrel-notes/mdfind/internal/config"
	"github.com/kestrel-notes/mdfind/internal/finder"
	"github.com/kestrel-notes/mdfind/internal/qualifier"
	"github.com/kestrel-notes/mdfind/internal/tui"
)

type matchRecord struct {
	Path  string `json:"path"`
	Size  int64  `json:"size"`
	Mtime int64  `json:"mtime"`
}

// NewCmdFind builds the "find" subcommand: evaluate a query against every
// Markdown file under a directory and report the matches.
func NewCmdFind(cfg *config.Config) *cobra.Command {
	var (
		dir    string
		asJSON bool
		pick   bool
		browse bool
	)

	cmd := &cobra.Command{
		Use:     "find <query>",
		Aliases: []string{"f"},
		Short:   "Find Markdown files matching a query",
		Long: heredoc.Doc(`
			Evaluate a query against every Markdown file under --dir and report
			the matches: as plain paths (default), as JSON records (--json),
			through an interactive fuzzy picker (--pick), or in a full browser
			with a Markdown preview pane (--tui).
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			searchDir := dir
			if searchDir == "" {
				searchDir = cfg.Dir
			}
			return run(cmd, cfg, args[0], searchDir, asJSON, pick, browse)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory to search (defaults to the configured dir)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print matches as JSON records instead of plain paths")
	cmd.Flags().BoolVar(&pick, "pick", false, "interactively fuzzy-pick among the matches")
	cmd.Flags().BoolVar(&browse, "tui", false, "browse the matches in a full-screen preview")

	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config, query, dir string, asJSON, pick, browse bool) error {
	if dir == "" {
		return fmt.Errorf("dir is must")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	f := finder.New()
	results, err := f.Find(ctx, query, dir, cfg.CaseSensitive)
	if err != nil {
		return err
	}

	var records []*qualifier.FileRecord
	for r := range results {
		if r.Err != nil {
			return r.Err
		}
		records = append(records, r.Record)
	}

	switch {
	case browse:
		return tui.Run(records)
	case pick:
		return runPicker(records)
	case asJSON:
		return printJSON(cmd, records)
	default:
		for _, rec := range records {
			fmt.Fprintln(cmd.OutOrStdout(), rec.Path)
		}
		return nil
	}
}

func printJSON(cmd *cobra.Command, records []*qualifier.FileRecord) error {
	out := make([]matchRecord, len(records))
	for i, rec := range records {
		out[i] = matchRecord{Path: rec.Path, Size: rec.Stats.Size, Mtime: rec.Stats.Mtime}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func runPicker(records []*qualifier.FileRecord) error {
	if len(records) == 0 {
		fmt.Println("no matches")
		return nil
	}

	idx, err := fuzzyfinder.Find(
		records,
		func(i int) string { return records[i].Path },
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return tui.RenderPreview(records[i].Path, w)
		}),
	)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			fmt.Println("no file selected")
			return nil
		}
		return err
	}

	fmt.Println(records[idx].Path)
	return nil
}
