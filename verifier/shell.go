package verifier

import (
	"context"
	"errors"
	"os/exec"

	"github.com/sirupsen/logrus"

	"github.com/vezzo95/persistent-phylogeny/rbgraph"
)

// ShellVerifier shells out to an external verifier binary, invoked as
// `<bin> <file> <seq...>` with each signed character rendered as its
// `name+`/`name-` form. A non-zero exit means the sequence failed
// verification; any other launch failure (binary missing, permissions)
// is returned as an error rather than treated as a false verdict.
//
// BinPath is resolved by the CLI from -verifier-bin or PPP_VERIFIER_BIN;
// an empty BinPath means no verifier is configured, in which case Verify
// logs a warning and reports success without running anything — the
// external verifier is a collaborator, not a hard dependency.
type ShellVerifier struct {
	BinPath string
	Logger  *logrus.Logger
}

func (v *ShellVerifier) Verify(ctx context.Context, file string, seq []rbgraph.Signed) (bool, error) {
	if v.BinPath == "" {
		if v.Logger != nil {
			v.Logger.WithField("file", file).Warn("no verifier binary configured, skipping verification")
		}

		return true, nil
	}

	args := make([]string, 0, len(seq)+1)
	args = append(args, file)
	for _, sc := range seq {
		args = append(args, sc.String())
	}

	cmd := exec.CommandContext(ctx, v.BinPath, args...)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
