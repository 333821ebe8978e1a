package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	goerrors "github.com/go-errors/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/vezzo95/persistent-phylogeny/matrixio"
	"github.com/vezzo95/persistent-phylogeny/rbgraph"
	"github.com/vezzo95/persistent-phylogeny/reduction"
	"github.com/vezzo95/persistent-phylogeny/safesource"
	"github.com/vezzo95/persistent-phylogeny/verifier"
)

// newAction builds the app's root Action: validate flags, then process
// every positional FILE independently, writing one result line per file
// to out and aggregating failures with go-multierror so one bad file
// does not stop the batch.
func newAction(out io.Writer, logger *logrus.Logger) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.Bool(exponentialFlagName) && c.Bool(interactiveFlagName) {
			return cli.Exit(ErrConflictingOptions, 1)
		}

		if c.NArg() == 0 {
			return cli.Exit("at least one FILE is required", 1)
		}

		if c.Bool(verboseFlagName) {
			logger.SetLevel(logrus.DebugLevel)
		}

		strategy := safesource.Standard
		switch {
		case c.Bool(exponentialFlagName):
			strategy = safesource.Exponential
		case c.Bool(interactiveFlagName):
			strategy = safesource.Interactive
		}

		v := &verifier.ShellVerifier{
			BinPath: c.String(verifierBinFlagName),
			Logger:  logger,
		}

		var result *multierror.Error
		for _, file := range c.Args().Slice() {
			if err := processFile(c.Context, file, strategy, out, logger, v); err != nil {
				result = multierror.Append(result, err)
			}
		}

		return result.ErrorOrNil()
	}
}

// processFile runs one matrix file through the reduction driver and
// writes its Ok/No line to out.
func processFile(ctx context.Context, file string, strategy safesource.Strategy, out io.Writer, logger *logrus.Logger, v verifier.Verifier) error {
	f, err := os.Open(file)
	if err != nil {
		fmt.Fprintf(out, "No (%s) %v\n", file, err)

		return err
	}
	defer f.Close()

	g, err := matrixio.Parse(f)
	if err != nil {
		fmt.Fprintf(out, "No (%s) %v\n", file, err)

		return err
	}

	cfg := reduction.Config{
		Strategy: strategy,
		Oracle:   surveyOracle,
		Logger:   logger,
		Ctx:      ctx,
	}

	seq, err := reduction.Run(g, cfg)
	if err != nil {
		wrapped := goerrors.Wrap(err, 0)
		fmt.Fprintf(out, "No (%s) %v\n", file, err)
		logger.WithFields(logrus.Fields{"file": file}).Debug(wrapped.ErrorStack())

		return wrapped
	}

	ok, err := v.Verify(ctx, file, seq)
	if err != nil {
		fmt.Fprintf(out, "No (%s) %v\n", file, err)

		return err
	}
	if !ok {
		fmt.Fprintf(out, "No (%s) verification failed\n", file)

		return fmt.Errorf("ppp: %s failed verification", file)
	}

	fmt.Fprintf(out, "Ok (%s) < %s >\n", file, renderSequence(seq))

	return nil
}

func renderSequence(seq []rbgraph.Signed) string {
	parts := make([]string, len(seq))
	for i, sc := range seq {
		parts[i] = sc.String()
	}

	return strings.Join(parts, " ")
}
