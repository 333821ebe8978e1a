// Package verifier implements the verification boundary: after the
// reduction driver returns a signed-character sequence, it is handed to a
// Verifier that replays the realizations against the original matrix and
// confirms the resulting graph is empty.
//
// ShellVerifier shells out to an external binary; ReplayVerifier
// re-executes the sequence in-process against a freshly parsed copy of the
// matrix; the CLI does not use it, so with no external verifier configured
// ShellVerifier skips verification.
package verifier
