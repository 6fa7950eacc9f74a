package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"declname/internal/config"
	"declname/internal/trace"
)

// setupTracing builds the tracer selected by the merged [trace] settings and
// attaches it to the command context. It returns a cleanup function that
// flushes and closes the tracer. A ring-only tracer is dumped to stderr
// first.
func setupTracing(cmd *cobra.Command, cfg config.Config) (func(), error) {
	tcfg, err := cfg.TracerConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid trace settings: %w", err)
	}

	if tcfg.Level == trace.LevelOff {
		ctx := trace.WithTracer(cmd.Context(), trace.Nop)
		cmd.SetContext(ctx)
		return func() {}, nil
	}

	tracer, err := trace.New(tcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	// Attach tracer to context
	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)

	cleanup := func() {
		if ring, ok := tracer.(*trace.RingTracer); ok {
			if err := ring.Dump(cmd.ErrOrStderr(), tcfg.ResolveFormat()); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", err)
			}
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}
	return cleanup, nil
}
