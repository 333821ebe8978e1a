package reduction

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vezzo95/persistent-phylogeny/safesource"
)

// Oracle selects one candidate from an ordered, non-empty list of safe
// sources/chains and returns its index, for the Interactive strategy. The
// CLI entry point wires this to a survey/v2 single-select prompt; tests
// supply a plain function value instead, so package tests never require a
// terminal.
type Oracle func(candidates []safesource.Candidate) (int, error)

// Config threads the reduction driver's per-run parameters as an explicit
// configuration record rather than package-level globals.
type Config struct {
	// Strategy selects the safesource policy: Standard, Exponential, or
	// Interactive.
	Strategy safesource.Strategy

	// Oracle is consulted only when Strategy is safesource.Interactive.
	Oracle Oracle

	// Logger receives Debug-level structured entries for every driver
	// decision (forced move, safe source chosen, branch pruned). A nil
	// Logger disables logging entirely.
	Logger *logrus.Logger

	// Ctx governs cancellation of long exponential searches. A nil Ctx
	// is treated as context.Background().
	Ctx context.Context
}

func (c Config) ctx() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}

	return c.Ctx
}
