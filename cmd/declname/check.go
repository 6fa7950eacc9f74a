package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check designated calls and report every diagnostic",
		Long: `check evaluates the scripts and binds every call statement to its
function: designated arguments (.name = value) to the parameter of that
name, positional arguments after the last bound parameter. It exits with a
non-zero status when any file has errors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.evalFiles(cmd.Context(), "check", args)
			if err != nil {
				return err
			}
			defer closeAll(results)

			out := cmd.OutOrStdout()
			if !quiet {
				writeCallSummary(out, results)
			}
			return a.finish(out, results)
		},
	}
	cmd.Flags().BoolVar(&quiet, "quiet", false, "print diagnostics only")
	return cmd
}

func writeCallSummary(w io.Writer, results []*fileResult) {
	for _, fr := range results {
		failed := 0
		for _, cc := range fr.res.Calls {
			status := "ok"
			if !cc.OK {
				status = "error"
				failed++
			}
			binding := make([]string, len(cc.Binding))
			for i, p := range cc.Binding {
				binding[i] = strconv.Itoa(p)
			}
			fmt.Fprintf(w, "%s:%s call %s(%s): %s\n",
				fr.path, position(fr.ctx.Files, cc.Stmt.Span.Begin()),
				cc.Stmt.Name, strings.Join(binding, ", "), status)
		}
		fmt.Fprintf(w, "%s: %d names, %d calls, %d failed\n",
			fr.path, len(fr.res.Entries), len(fr.res.Calls), failed)
	}
}
