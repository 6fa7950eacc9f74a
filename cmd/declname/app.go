package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"declname/internal/config"
	"declname/internal/diagfmt"
)

const configFileName = config.FileName

// app holds the settings shared by every subcommand after flags and
// declname.toml have been merged.
type app struct {
	cfg        config.Config
	cfgPath    string
	color      bool
	diagFormat string
	pathMode   diagfmt.PathMode
	jobs       int
	timings    bool
	progress   bool
	errOut     io.Writer
	cleanup    []func()
}

// setup loads the configuration, applies explicitly set flags on top of it
// and starts tracing.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()

	path, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		if a.cfg, err = config.Load(path); err != nil {
			return err
		}
		a.cfgPath = path
	} else {
		f, ok, err := config.Discover(".")
		if err != nil {
			return err
		}
		a.cfg = config.Default()
		if ok {
			a.cfg, a.cfgPath = f.Config, f.Path
		}
	}

	if err := a.applyFlags(cmd); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	a.color = resolveColor(a.cfg.Output.Color, cmd.OutOrStdout())
	color.NoColor = !a.color

	a.errOut = cmd.ErrOrStderr()

	stopTrace, err := setupTracing(cmd, a.cfg)
	if err != nil {
		return err
	}
	a.cleanup = append(a.cleanup, stopTrace)
	stopProf, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	a.cleanup = append(a.cleanup, stopProf)
	return nil
}

func (a *app) applyFlags(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	strs := []struct {
		flag string
		dst  *string
	}{
		{"color", &a.cfg.Output.Color},
		{"trace", &a.cfg.Trace.Output},
		{"trace-level", &a.cfg.Trace.Level},
		{"trace-mode", &a.cfg.Trace.Mode},
		{"trace-format", &a.cfg.Trace.Format},
	}
	for _, s := range strs {
		if !flags.Changed(s.flag) {
			continue
		}
		v, err := flags.GetString(s.flag)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", s.flag, err)
		}
		*s.dst = v
	}
	if flags.Changed("max-diagnostics") {
		v, err := flags.GetInt("max-diagnostics")
		if err != nil {
			return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
		a.cfg.Output.MaxDiagnostics = v
	}

	var err error
	if a.timings, err = flags.GetBool("timings"); err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if a.progress, err = flags.GetBool("progress"); err != nil {
		return fmt.Errorf("failed to get progress flag: %w", err)
	}
	if a.jobs, err = flags.GetInt("jobs"); err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if a.diagFormat, err = flags.GetString("diag-format"); err != nil {
		return fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	switch a.diagFormat {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown diag-format value: %s", a.diagFormat)
	}
	paths, err := flags.GetString("diag-paths")
	if err != nil {
		return fmt.Errorf("failed to get diag-paths flag: %w", err)
	}
	if a.pathMode, err = diagfmt.ParsePathMode(paths); err != nil {
		return err
	}
	return nil
}

// teardown runs the cleanups in reverse order of setup.
func (a *app) teardown() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
	a.cleanup = nil
}

// resolveColor maps auto|on|off to a decision for out.
func resolveColor(mode string, out io.Writer) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	return ok && isTerminal(f)
}
