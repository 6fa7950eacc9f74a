package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"declname/internal/prof"
)

// setupProfiling starts the profilers named by the persistent flags. The
// returned cleanup stops them and may be called more than once.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	flags := cmd.Root().PersistentFlags()
	var opts prof.Options
	for _, f := range []struct {
		flag string
		dst  *string
	}{
		{"cpu-profile", &opts.CPU},
		{"mem-profile", &opts.Mem},
		{"runtime-trace", &opts.Trace},
	} {
		v, err := flags.GetString(f.flag)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", f.flag, err)
		}
		*f.dst = v
	}
	if !opts.Enabled() {
		return func() {}, nil
	}

	s, err := prof.Start(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to start profiling: %w", err)
	}
	errOut := cmd.ErrOrStderr()
	return func() {
		if err := s.Stop(); err != nil {
			fmt.Fprintf(errOut, "profile: %v\n", err)
		}
	}, nil
}
