package scoring

import "fmt"

// Category classifies the kind of AI usage signal a pattern detects.
type Category int

const (
	// Tool covers naming a specific AI product or platform.
	Tool Category = iota
	// Action covers describing an AI-assisted task.
	Action
	// Concept covers abstract AI/ML terminology.
	Concept
)

// Categories lists every category in reporting order.
var Categories = []Category{Tool, Action, Concept}

// categoryScale describes the step function turning a match count into a 1-10 score.
type categoryScale struct {
	single int // score for exactly one match
	double int // score for two matches up to the ceiling
	topAt  int // count from which the score is 10
	weight int // weight in tenths of the overall score
}

var scales = map[Category]categoryScale{
	Tool:    {single: 5, double: 8, topAt: 3, weight: 5},
	Action:  {single: 4, double: 7, topAt: 4, weight: 3},
	Concept: {single: 4, double: 7, topAt: 3, weight: 2},
}

const (
	minScore = 1
	maxScore = 10
)

func (c Category) String() string {
	switch c {
	case Tool:
		return "tool"
	case Action:
		return "action"
	case Concept:
		return "concept"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// MarshalText lets categories act as readable map keys in JSON and YAML reports.
func (c Category) MarshalText() ([]byte, error) {
	if _, ok := scales[c]; !ok {
		return nil, fmt.Errorf("unknown category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText parses the text form produced by MarshalText.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory resolves a category from its text form.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// DisplayName is the capitalised label used in justifications.
func (c Category) DisplayName() string {
	switch c {
	case Tool:
		return "Tool"
	case Action:
		return "Action"
	case Concept:
		return "Concept"
	default:
		return c.String()
	}
}

// Criterion is the heading of the category in the detailed analysis.
func (c Category) Criterion() string {
	switch c {
	case Tool:
		return "AI Tool Usage"
	case Action:
		return "AI Implementation"
	case Concept:
		return "AI Understanding"
	default:
		return c.String()
	}
}

// subject names what the category measures inside impact and summary sentences.
func (c Category) subject() (impact, evidence string) {
	switch c {
	case Tool:
		return "tool usage", "tool"
	case Action:
		return "implementation", "implementation"
	default:
		return "understanding", "concept"
	}
}

// Score maps a match count to the category's 1-10 score.
func (c Category) Score(count int) int {
	s, ok := scales[c]
	switch {
	case !ok || count <= 0:
		return minScore
	case count >= s.topAt:
		return maxScore
	case count >= 2:
		return s.double
	default:
		return s.single
	}
}

// Overall combines per-category scores into the weighted 1-10 score,
// rounding half up. The sum is kept in tenths so the rounding is exact.
func Overall(scores map[Category]int) int {
	tenths := 0
	for _, c := range Categories {
		score, ok := scores[c]
		if !ok {
			score = minScore
		}
		tenths += score * scales[c].weight
	}

	overall := (tenths + 5) / 10
	if overall < minScore {
		return minScore
	}
	if overall > maxScore {
		return maxScore
	}
	return overall
}

// Band returns the display band a score falls into.
func Band(score int) string {
	switch {
	case score >= 9:
		return "9-10"
	case score >= 7:
		return "7-8"
	case score >= 5:
		return "5-6"
	case score >= 3:
		return "3-4"
	default:
		return "1-2"
	}
}
