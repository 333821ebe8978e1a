// Command ppp computes a c-reduction sequence for one or more red-black
// phylogeny matrices and prints the result of each.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)

	app := newApp(os.Stdout, os.Stderr, logger)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)

		code := 1
		if ec, ok := err.(cli.ExitCoder); ok {
			code = ec.ExitCode()
		}

		os.Exit(code)
	}
}
