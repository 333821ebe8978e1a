package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/vezzo95/persistent-phylogeny/safesource"
)

// surveyOracle renders the ordered list of safe sources as a single-select
// prompt and returns the operator's pick, for the interactive strategy. It
// is wired into reduction.Config only from this entry point; package tests
// use a plain function value instead and never touch a terminal.
func surveyOracle(candidates []safesource.Candidate) (int, error) {
	options := make([]string, len(candidates))
	for i, cand := range candidates {
		options[i] = cand.Display
	}

	var choice string
	prompt := &survey.Select{
		Message: "choose a safe source",
		Options: options,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return 0, fmt.Errorf("ppp: interactive prompt failed: %w", err)
	}

	for i, opt := range options {
		if opt == choice {
			return i, nil
		}
	}

	return 0, fmt.Errorf("ppp: unrecognized selection %q", choice)
}
