package scoring

import (
	"fmt"
	"strings"
)

// Bands lists the display bands from highest to lowest.
var Bands = []string{"9-10", "7-8", "5-6", "3-4", "1-2"}

// maxCited is how many evidence strings per category a narrative quotes.
const maxCited = 3

// citations holds the evidence a narrative may quote, at most maxCited per category.
type citations map[Category][]string

func cite(evidence map[Category][]string) citations {
	c := make(citations, len(evidence))
	for category, items := range evidence {
		if len(items) > maxCited {
			items = items[:maxCited]
		}
		c[category] = items
	}
	return c
}

// quoted renders the category's cited evidence as `"a", "b"`.
func (c citations) quoted(category Category) string {
	items := c[category]
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%q", item)
	}
	return strings.Join(parts, ", ")
}

// examples joins the quoted evidence of the given categories in order.
func (c citations) examples(categories ...Category) string {
	var parts []string
	for _, category := range categories {
		if q := c.quoted(category); q != "" {
			parts = append(parts, q)
		}
	}
	return strings.Join(parts, "; ")
}

func (c citations) empty() bool {
	for _, items := range c {
		if len(items) > 0 {
			return false
		}
	}
	return true
}

func orNone(s string) string {
	if s == "" {
		return "no specific examples"
	}
	return s
}

// narrativeTemplate is the paragraph for one band: a fixed lead sentence and
// a detail sentence quoting evidence, added only when evidence exists.
type narrativeTemplate struct {
	lead   string
	detail func(c citations) string
}

// narratives is the single place defining what each band means.
var narratives = map[string]narrativeTemplate{
	"9-10": {
		lead: "Exceptional AI integration with clear examples of tool usage and implementation.",
		detail: func(c citations) string {
			return fmt.Sprintf("Tools were named explicitly (%s) and applied to concrete work (%s).",
				orNone(c.quoted(Tool)), orNone(c.examples(Action, Concept)))
		},
	},
	"7-8": {
		lead: "Strong AI usage with specific examples of implementation.",
		detail: func(c citations) string {
			return fmt.Sprintf("Evidence includes %s, applied to %s.",
				orNone(c.quoted(Tool)), orNone(c.examples(Action, Concept)))
		},
	},
	"5-6": {
		lead: "Basic AI usage with some implementation examples.",
		detail: func(c citations) string {
			return fmt.Sprintf("The candidate mentions %s; understanding of AI concepts shows %s.",
				orNone(c.examples(Tool, Action)), orNone(c.quoted(Concept)))
		},
	},
	"3-4": {
		lead: "Limited AI usage with minimal implementation.",
		detail: func(c citations) string {
			return fmt.Sprintf("Only isolated references were found: %s.", c.examples(Tool, Action, Concept))
		},
	},
	"1-2": {
		lead: "No significant AI usage detected.",
		detail: func(c citations) string {
			return fmt.Sprintf("Passing references such as %s do not show AI-first working habits.", c.examples(Tool, Action, Concept))
		},
	},
}

// Narrative renders the paragraph for the band the overall score falls into.
func Narrative(overall int, evidence map[Category][]string) string {
	tmpl := narratives[Band(overall)]
	c := cite(evidence)
	if c.empty() {
		return tmpl.lead
	}
	return tmpl.lead + " " + tmpl.detail(c)
}

const noUsageJustification = "No explicit AI usage was referenced in the transcript or output."

// Justification summarises the evidence of every category that has some.
func Justification(evidence map[Category][]string) string {
	c := cite(evidence)
	var clauses []string
	for _, category := range Categories {
		items := c[category]
		if len(items) == 0 {
			continue
		}
		clauses = append(clauses, fmt.Sprintf("%s mentions: %s.", category.DisplayName(), strings.Join(items, ", ")))
	}
	if len(clauses) == 0 {
		return noUsageJustification
	}
	return strings.Join(clauses, " ")
}

// Impact describes what a category score means.
func Impact(category Category, score int) string {
	subject, _ := category.subject()
	switch Band(score) {
	case "9-10":
		return fmt.Sprintf("Exceptional %s with comprehensive understanding", subject)
	case "7-8":
		return fmt.Sprintf("Strong %s with clear examples", subject)
	case "5-6":
		return fmt.Sprintf("Basic %s with some examples", subject)
	case "3-4":
		return fmt.Sprintf("Limited %s with minimal examples", subject)
	default:
		return fmt.Sprintf("No significant %s detected", subject)
	}
}

// Summary is the one-line evidence statement of the detailed analysis.
func Summary(category Category, evidence []string) string {
	_, kind := category.subject()
	if len(evidence) == 0 {
		return fmt.Sprintf("No %s examples found", kind)
	}
	return fmt.Sprintf("Found %d instances of AI %s usage: %s", len(evidence), kind, strings.Join(evidence, ", "))
}
