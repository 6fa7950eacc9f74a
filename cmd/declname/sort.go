package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"declname/internal/names"
	"declname/internal/script"
)

func newSortCmd(a *app) *cobra.Command {
	var unique bool
	cmd := &cobra.Command{
		Use:   "sort <file>...",
		Short: "Print the names of every file in declaration-name order",
		Long: `sort orders the names of each file with the declaration-name comparator:
by kind first, then by the kind-specific key. Names from different files are
never compared with each other.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.evalFiles(cmd.Context(), "sort", args)
			if err != nil {
				return err
			}
			defer closeAll(results)

			out := cmd.OutOrStdout()
			pol := a.cfg.Policy()
			for _, fr := range results {
				if len(results) > 1 {
					fmt.Fprintf(out, "== %s\n", fr.path)
				}
				for _, e := range sortEntries(fr.res.Entries, unique) {
					fmt.Fprintln(out, entryLine(e, pol, false))
				}
			}
			return a.finish(cmd.ErrOrStderr(), results)
		},
	}
	cmd.Flags().BoolVar(&unique, "unique", false, "print each distinct name once")
	return cmd
}

// sortEntries returns a sorted copy. Entries with equal names keep their
// statement order; with unique only the first of them is kept.
func sortEntries(entries []script.Entry, unique bool) []script.Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(x, y script.Entry) int {
		return names.Compare(x.Info.Name, y.Info.Name)
	})
	if unique {
		out = slices.CompactFunc(out, func(x, y script.Entry) bool {
			return x.Info.Name == y.Info.Name
		})
	}
	return out
}
