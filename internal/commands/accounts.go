package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mcaflow-dev/mcaflow/internal/bizname"
	"github.com/mcaflow-dev/mcaflow/internal/importer"
)

func newAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts <file>",
		Short: "Show discovered accounts and the suggested business name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAccounts(args[0])
		},
	}
	return cmd
}

func runAccounts(path string) error {
	parser := importer.DefaultRegistry().Get("plaid")
	export, err := importer.ParseFile(parser, path)
	if err != nil {
		// Unreadable account data still deserves a suggestion.
		fmt.Printf("Could not read accounts (%v)\n", err)
		fmt.Printf("Suggested name (from filename): %s\n", bizname.FromFilename(path))
		return nil
	}

	name, options, groups := bizname.DiscoverAccounts(filepath.Base(path), export.Accounts)
	fmt.Printf("Suggested business name: %s\n", name)

	if len(options) == 0 {
		return nil
	}

	fmt.Printf("\nAccounts (%d distinct):\n", len(options))
	for _, raw := range options {
		g := groups[raw]
		fmt.Printf("  %s\n", raw)
		fmt.Printf("    cleaned: %s\n", bizname.Clean(raw))
		if g.Type != "" {
			fmt.Printf("    type: %s", g.Type)
			if g.Subtype != "" {
				fmt.Printf(" / %s", g.Subtype)
			}
			fmt.Println()
		}
		fmt.Printf("    occurrences: %d\n", g.Count)
	}
	return nil
}
