package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spigell/ai-readiness/internal/catalogue"
	"github.com/spigell/ai-readiness/internal/scoring"
)

const (
	boxWidth = 72
	// textWidth is the room left inside the borders.
	textWidth = boxWidth - 4
)

// Printer writes boxed, human readable sections. The first write error is
// kept and every later write is skipped.
type Printer struct {
	out io.Writer
	err error
}

// NewPrinter creates a Printer that writes to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) printBox(title string, lines []string) {
	border := strings.Repeat("─", boxWidth-2)
	p.printf("┌%s┐\n", border)
	p.printf("│ %-*s │\n", textWidth, title)
	p.printf("├%s┤\n", border)
	for _, line := range lines {
		p.printf("│ %-*s │\n", textWidth, line)
	}
	p.printf("└%s┘\n", border)
}

// PrintResult prints the overall verdict followed by strengths, improvements
// and the per-category analysis.
func (p *Printer) PrintResult(r scoring.Result) {
	title := "AI Readiness Assessment"
	if r.RoleID != "" {
		title += " (" + r.RoleID + ")"
	}

	var overview section
	overview.add(fmt.Sprintf("Overall score: %d/10 (%s)", r.OverallScore, r.ScoringLevel))
	overview.add("AI usage:      " + r.AIUsage)
	overview.blank()
	overview.wrap("", r.Narrative)
	overview.blank()
	overview.wrap("", r.Justification)
	p.printBox(title, overview.lines)

	var strengths section
	for _, s := range r.Strengths {
		strengths.add(fmt.Sprintf("• %s (%s)", s.Label, s.ScoringLevel))
		strengths.wrap("  ", "Example: "+s.Example)
		strengths.wrap("  ", s.Impact)
	}
	if len(strengths.lines) == 0 {
		strengths.add("None identified")
	}
	p.printBox("Key Strengths", strengths.lines)

	var improvements section
	for _, i := range r.Improvements {
		improvements.add(fmt.Sprintf("• %s (target %s)", i.Area, i.TargetLevel))
		improvements.wrap("  ", "Current: "+i.CurrentState)
		improvements.wrap("  ", i.Recommendation)
		improvements.wrap("  ", i.Tools)
	}
	if len(improvements.lines) == 0 {
		improvements.add("None suggested")
	}
	p.printBox("Areas for Improvement", improvements.lines)

	var details section
	for n, c := range scoring.Categories {
		a := r.Categories[c]
		if n > 0 {
			details.blank()
		}
		details.add(fmt.Sprintf("%s: %d/10 (%s)", c.Criterion(), a.Score, a.ScoringLevel))
		details.wrap("  ", a.Summary)
		details.wrap("  ", a.Impact)
	}
	p.printBox("Detailed Analysis", details.lines)
}

// PrintAssignment prints the interviewer script for role: the shared
// instructions and interview structure, then the role's scenario and
// criteria.
func (p *Printer) PrintAssignment(c *catalogue.Catalogue, role *catalogue.Role) {
	var intro section
	intro.wrap("", role.Description)
	if len(c.Instructions) > 0 {
		intro.blank()
		intro.add("Before you start:")
		intro.bullets(c.Instructions)
	}
	if len(c.Interview) > 0 {
		intro.blank()
		intro.add("Interview structure:")
		for _, step := range c.Interview {
			intro.add(fmt.Sprintf("• %s (%d min)", step.Title, step.Minutes))
			for _, note := range step.Notes {
				intro.wrap("    - ", note)
			}
		}
	}
	p.printBox(role.Title, intro.lines)

	var script section
	script.add("Scenario:")
	script.bullets(role.Assignment.Scenario)
	script.blank()
	script.add("Success criteria:")
	script.bullets(role.Assignment.Success)
	script.blank()
	script.add("Failure criteria:")
	script.bullets(role.Assignment.Failure)
	p.printBox(role.Assignment.Title, script.lines)
}

// WriteAssignment prints the assignment script for role to w.
func WriteAssignment(w io.Writer, c *catalogue.Catalogue, role *catalogue.Role) error {
	p := NewPrinter(w)
	p.PrintAssignment(c, role)
	return p.Err()
}

// section accumulates box lines already fitted to textWidth.
type section struct {
	lines []string
}

func (s *section) add(line string) {
	s.lines = append(s.lines, wrap(line, textWidth)...)
}

func (s *section) blank() {
	s.lines = append(s.lines, "")
}

// wrap adds text with indent on the first line and matching spaces on the
// continuation lines.
func (s *section) wrap(indent, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	pad := strings.Repeat(" ", utf8.RuneCountInString(indent))
	for i, line := range wrap(text, textWidth-len(pad)) {
		if i == 0 {
			s.lines = append(s.lines, indent+line)
			continue
		}
		s.lines = append(s.lines, pad+line)
	}
}

func (s *section) bullets(items []string) {
	for _, item := range items {
		s.wrap("• ", item)
	}
}

// wrap breaks text on spaces into lines of at most width runes. Words longer
// than width are split.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines []string
		line  []rune
	)
	for _, word := range words {
		w := []rune(word)
		for len(w) > width {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}

		switch {
		case len(line) == 0:
			line = w
		case len(line)+1+len(w) <= width:
			line = append(append(line, ' '), w...)
		default:
			lines = append(lines, string(line))
			line = w
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
