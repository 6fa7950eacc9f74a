package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"declname/internal/version"
)

// main builds the command tree, runs it and releases the tracer. Any command
// error exits with status 1.
func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	a.teardown()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "declname",
		Short: "Build, print and compare declaration names",
		Long: `declname evaluates name scripts: one statement per line, each building a
declaration name (identifier, selector, constructor, operator, template
parameter, substitution) in a fresh uniquing table per file.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	// Устанавливаем версию для автоматического флага --version
	root.Version = version.Version

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("config", "", "path to "+configFileName+" (default: search upwards from the working directory)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics per file")
	pf.Int("jobs", 0, "max parallel workers (0=auto)")
	pf.String("diag-format", "pretty", "diagnostics format (pretty|short|json)")
	pf.String("diag-paths", "auto", "file paths in pretty and json diagnostics (auto|absolute|relative|basename)")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.Bool("timings", false, "show per-file timing information")
	pf.Bool("progress", false, "show per-file progress on stderr when it is a terminal")
	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")

	root.AddCommand(
		newPrintCmd(a),
		newSortCmd(a),
		newDumpCmd(a),
		newCheckCmd(a),
		newVersionCmd(),
	)
	return root
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
