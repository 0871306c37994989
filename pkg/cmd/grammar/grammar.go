package grammar

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kestrel-notes/mdfind/internal/config"
	"github.com/kestrel-notes/mdfind/internal/finder"
)

// NewCmdGrammar builds the "grammar" subcommand: print the query language's
// BNF, generated from the live qualifier registry.
func NewCmdGrammar(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "Print the query grammar",
		Long: heredoc.Doc(`
			Print a BNF description of the query language, with the scope and
			operator lists interpolated from the current qualifier registry.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := finder.New()
			fmt.Fprint(cmd.OutOrStdout(), f.Grammar())
			return nil
		},
	}
}
