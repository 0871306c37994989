package root

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kestrel-notes/mdfind/internal/config"
	"github.com/kestrel-notes/mdfind/pkg/cmd/find"
	"github.com/kestrel-notes/mdfind/pkg/cmd/grammar"
	"github.com/kestrel-notes/mdfind/pkg/cmd/watch"
)

// NewCmdRoot builds mdfind's cobra command tree.
func NewCmdRoot() (*cobra.Command, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	cmd := &cobra.Command{
		Use:   "mdfind",
		Short: "Search a directory of Markdown files with a query grammar",
		Long: heredoc.Doc(`
			mdfind locates Markdown files in a directory tree that satisfy a
			query expressed in a compact search grammar: boolean operators,
			grouped sub-expressions, scoped qualifiers (path, size, heading
			level, task state, code fence language, ...) and keyword/phrase/
			regexp match literals.

			  mdfind find "size>10kb | content:abc"
			  mdfind find "file:/[a-z]{3}/ blockcodelang:python" --dir ./notes
		`),
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cfg.Dir, "dir", cfg.Dir, "default directory to search")
	cmd.PersistentFlags().BoolVar(&cfg.CaseSensitive, "case-sensitive", cfg.CaseSensitive, "match case-sensitively")
	viper.BindPFlag("dir", cmd.PersistentFlags().Lookup("dir"))
	viper.BindPFlag("case_sensitive", cmd.PersistentFlags().Lookup("case-sensitive"))

	cmd.AddCommand(
		find.NewCmdFind(cfg),
		grammar.NewCmdGrammar(cfg),
		watch.NewCmdWatch(cfg),
	)

	return cmd, nil
}

func loadConfig() (*config.Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	return config.Load(home)
}
