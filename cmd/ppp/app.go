package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	appName  = "ppp"
	appUsage = "compute a c-reduction of one or more red-black phylogeny matrices"
)

const (
	verboseFlagName     = "verbose"
	exponentialFlagName = "exponential"
	interactiveFlagName = "interactive"
	verifierBinFlagName = "verifier-bin"
)

// newApp builds the ppp CLI app. out receives Action's per-file result
// lines and errOut is the app's error stream, defaulting to
// os.Stdout/os.Stderr in main but overridable here the way terragrunt's cli.NewApp threads
// opts.Writer/opts.ErrWriter through instead of hard-coding os.Stdout.
func newApp(out, errOut io.Writer, logger *logrus.Logger) *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = appUsage
	app.ArgsUsage = "FILE..."
	app.Writer = out
	app.ErrWriter = errOut
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    verboseFlagName,
			Aliases: []string{"v"},
			Usage:   "log forced moves, safe-source choices, and pruned branches",
		},
		&cli.BoolFlag{
			Name:    exponentialFlagName,
			Aliases: []string{"x"},
			Usage:   "use the exponential strategy (explore every safe source)",
		},
		&cli.BoolFlag{
			Name:    interactiveFlagName,
			Aliases: []string{"i"},
			Usage:   "use the interactive strategy (prompt for each safe source)",
		},
		&cli.StringFlag{
			Name:    verifierBinFlagName,
			EnvVars: []string{"PPP_VERIFIER_BIN"},
			Usage:   "external verifier binary; verification is skipped with a warning if unset",
		},
	}
	app.Action = newAction(out, logger)
	// Override the exit hooks so a conflicting-options or missing-file
	// failure returns an error for main to act on rather than calling
	// os.Exit from inside Run, which would kill tests too.
	app.OsExiter = func(code int) {}
	app.ExitErrHandler = func(_ *cli.Context, err error) error { return err }

	return app
}
