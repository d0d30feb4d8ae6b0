package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nomagicln/roundtrip/pkg/codegen"
	"golang.org/x/term"
)

type styles struct {
	title   lipgloss.Style
	name    lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	error   lipgloss.Style
}

// newStyles returns colored styles when w is a terminal and plain ones otherwise.
func newStyles(w io.Writer) styles {
	if !isTerminal(w) {
		plain := lipgloss.NewStyle()
		return styles{title: plain, name: plain, muted: plain, success: plain, error: plain}
	}

	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		name:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")), // Green
		error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printPackage writes the scan result of pkg.
func printPackage(w io.Writer, pkg *codegen.Package) {
	s := newStyles(w)

	fmt.Fprintf(w, "%s %s\n", s.title.Render("Package"), pkg.Path)
	if len(pkg.Types) == 0 {
		fmt.Fprintln(w, s.muted.Render("  no types with setters"))
		return
	}

	for _, t := range pkg.Types {
		fmt.Fprintf(w, "\n  %s\n", s.name.Render(t.Name))
		fmt.Fprintf(w, "    setters:      %s\n", strings.Join(t.Setters, ", "))
		if len(t.Constructors) == 0 {
			fmt.Fprintf(w, "    constructors: %s\n", s.muted.Render("none (struct literals)"))
		} else {
			fmt.Fprintf(w, "    constructors: %s\n", strings.Join(t.Constructors, ", "))
		}
	}
}
