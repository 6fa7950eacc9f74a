package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type printOptions struct {
	locations bool
	asWritten bool
	suppress  bool
}

func newPrintCmd(a *app) *cobra.Command {
	var opts printOptions
	cmd := &cobra.Command{
		Use:   "print <file>...",
		Short: "Print the name built by every statement",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("suppress-template-args") {
				a.cfg.Print.SuppressTemplateArgs = opts.suppress
			}
			results, err := a.evalFiles(cmd.Context(), "print", args)
			if err != nil {
				return err
			}
			defer closeAll(results)

			if err := a.printResults(cmd.OutOrStdout(), results, opts); err != nil {
				return err
			}
			return a.finish(cmd.ErrOrStderr(), results)
		},
	}
	cmd.Flags().BoolVar(&opts.locations, "locations", false, "prefix every name with its line:col")
	cmd.Flags().BoolVar(&opts.asWritten, "as-written", false, "print special names with their type as written")
	cmd.Flags().BoolVar(&opts.suppress, "suppress-template-args", false, "print constructors of class templates without arguments")
	return cmd
}

func (a *app) printResults(w io.Writer, results []*fileResult, opts printOptions) error {
	pol := a.cfg.Policy()
	for _, fr := range results {
		if len(results) > 1 {
			if _, err := fmt.Fprintf(w, "== %s\n", fr.path); err != nil {
				return err
			}
		}
		for _, e := range fr.res.Entries {
			line := entryLine(e, pol, opts.asWritten)
			if opts.locations {
				line = position(fr.ctx.Files, e.Info.Loc) + " " + line
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
