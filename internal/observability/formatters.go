// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/violations/internal/violation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// noCodeLabel stands in for violations that carry no code
	noCodeLabel = "(no code)"
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

type codeCount struct {
	label string
	count int
}

// countByCode tallies violations per code in first-seen order
func countByCode(list violation.Interface) []codeCount {
	index := make(map[string]int)
	var counts []codeCount
	for v := range list.Values() {
		label := noCodeLabel
		if code, ok := v.Code(); ok {
			label = fmt.Sprintf("%q", code)
		}
		i, seen := index[label]
		if !seen {
			i = len(counts)
			index[label] = i
			counts = append(counts, codeCount{label: label})
		}
		counts[i].count++
	}
	return counts
}

// PrintViolations outputs a summary of the list: total, counts per code, and the first few messages.
func (p *Printer) PrintViolations(title string, list violation.Interface) {
	if list == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total violations: %d\n", list.Len()))

	counts := countByCode(list)
	if len(counts) > 0 {
		sb.WriteString("\nBy code:\n")
		for _, c := range counts {
			sb.WriteString(fmt.Sprintf("  • %s: %d\n", c.label, c.count))
		}

		sb.WriteString("\nFirst messages:\n")
		shown := 0
		for offset, v := range list.All() {
			if shown == maxItemsToShow {
				break
			}
			sb.WriteString(fmt.Sprintf("  [%d] %s\n", offset, v.Message()))
			shown++
		}
		if list.Len() > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", list.Len()-maxItemsToShow))
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}
