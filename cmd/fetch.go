/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

var isTTY = isatty.IsTerminal(os.Stderr.Fd())

// fetchWithSpinner runs a lookup fetch, showing a spinner on stderr
// while it is in flight. Local file sources resolve fast enough that
// the spinner barely flickers; remote fetches get visible feedback.
func fetchWithSpinner(label string, fetch func() ([]byte, error)) ([]byte, error) {
	if !isTTY {
		return fetch()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + label + "..."
	s.Start()
	defer s.Stop()
	return fetch()
}
