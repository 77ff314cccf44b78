package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/umputun/trigen/pkg/trigram"
)

// report is the console summary of a run
type report struct {
	chars    int
	trigrams []string
	sample   int
	output   string
	profile  string // empty if no profile updated
}

func (r report) print(w io.Writer) {
	header := color.New(color.FgCyan, color.Bold)

	fmt.Fprintf(w, "Corpus size: %d characters\n", r.chars)
	fmt.Fprintf(w, "Generated %d trigrams\n", len(r.trigrams))

	if n := min(r.sample, len(r.trigrams)); n > 0 {
		fmt.Fprintln(w)
		header.Fprintf(w, "First %d trigrams:\n", n)
		for i, t := range r.trigrams[:n] {
			fmt.Fprintf(w, "  %d. '%s'\n", i+1, t)
		}
	}

	fmt.Fprintf(w, "\nTrigrams saved to %s\n", r.output)
	if r.profile != "" {
		fmt.Fprintf(w, "Profile %s updated\n", r.profile)
	}

	fmt.Fprintln(w)
	header.Fprintln(w, "--- Full trigram string for data.json ---")
	fmt.Fprintln(w, strings.Join(r.trigrams, trigram.Separator))
}
