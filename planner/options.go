package planner

import (
	"context"
	"io"
	"os"
)

// planOptions holds a Plan call's configuration.
type planOptions struct {
	verbose int
	ctx     context.Context
	trace   io.Writer
}

func defaultPlanOptions() planOptions {
	return planOptions{ctx: context.Background(), trace: os.Stderr}
}

// PlanOption configures a single Plan call.
type PlanOption func(*planOptions)

// WithVerbose sets the trace verbosity: 0=silent, 1=major decisions
// (method/action chosen, retraction), 2=+every method/action attempt
// tried, 3=+a post-state dump after every committed action.
func WithVerbose(level int) PlanOption {
	return func(o *planOptions) { o.verbose = level }
}

// WithContext sets the cancellation context. Checked only between
// frontier steps, so it is a clean cancellation point for a host that
// wraps the call in a hard timeout, never a correctness requirement.
func WithContext(ctx context.Context) PlanOption {
	return func(o *planOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithTraceWriter redirects verbose trace output away from os.Stderr.
func WithTraceWriter(w io.Writer) PlanOption {
	return func(o *planOptions) {
		if w != nil {
			o.trace = w
		}
	}
}
