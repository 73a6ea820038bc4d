// Package scoring turns an interview transcript and candidate output into a
// heuristic AI-readiness assessment built from keyword and context matches.
package scoring

import (
	"github.com/spigell/ai-readiness/internal/utils"
)

// evidenceDisplayLimit caps the runes of a single evidence string in results.
const evidenceDisplayLimit = 80

// Result is the assessment of one submission. It is built once by Assess and
// never modified afterwards; accessors return copies.
type Result struct {
	OverallScore  int                             `json:"overall_score" yaml:"overall_score"`
	ScoringLevel  string                          `json:"scoring_level" yaml:"scoring_level"`
	AIUsage       string                          `json:"ai_usage" yaml:"ai_usage"`
	Narrative     string                          `json:"narrative" yaml:"narrative"`
	Justification string                          `json:"justification" yaml:"justification"`
	Categories    map[Category]CategoryAssessment `json:"categories" yaml:"categories"`
	Strengths     []Strength                      `json:"strengths" yaml:"strengths"`
	Improvements  []Improvement                   `json:"improvements" yaml:"improvements"`
	RoleID        string                          `json:"role_id" yaml:"role_id"`
}

// CategoryAssessment is the detailed analysis of one category.
type CategoryAssessment struct {
	Score        int      `json:"score" yaml:"score"`
	ScoringLevel string   `json:"scoring_level" yaml:"scoring_level"`
	Count        int      `json:"count" yaml:"count"`
	Evidence     []string `json:"evidence" yaml:"evidence"`
	Summary      string   `json:"summary" yaml:"summary"`
	Impact       string   `json:"impact" yaml:"impact"`
}

// Strength cites evidence the candidate did well on.
type Strength struct {
	Label        string `json:"label" yaml:"label"`
	Example      string `json:"example" yaml:"example"`
	Impact       string `json:"impact" yaml:"impact"`
	ScoringLevel string `json:"scoring_level" yaml:"scoring_level"`
}

// Improvement is a suggestion for an area with little evidence.
type Improvement struct {
	Area           string `json:"area" yaml:"area"`
	CurrentState   string `json:"current_state" yaml:"current_state"`
	TargetLevel    string `json:"target_level" yaml:"target_level"`
	Recommendation string `json:"recommendation" yaml:"recommendation"`
	Tools          string `json:"tools" yaml:"tools"`
}

const (
	usageYes = "Yes"
	usageNo  = "No"
)

var (
	toolDiversity = Improvement{
		Area:           "AI Tool Diversity",
		CurrentState:   "Limited tool variety",
		TargetLevel:    "7-8",
		Recommendation: "Explore additional AI tools for different tasks",
		Tools:          "Consider expanding beyond current tool usage",
	}
	implementation = Improvement{
		Area:           "AI Implementation",
		CurrentState:   "Limited implementation examples",
		TargetLevel:    "7-8",
		Recommendation: "Practice implementing AI in different scenarios",
		Tools:          "Focus on practical applications",
	}
	toolExploration = Improvement{
		Area:           "AI Tool Exploration",
		CurrentState:   "No AI tool usage referenced",
		TargetLevel:    "5-6",
		Recommendation: "Explore AI assistants for research, drafting and analysis before starting the task",
		Tools:          "Start with a general-purpose assistant such as ChatGPT, Claude or Copilot",
	}
)

const fallbackNarrative = "No significant AI usage detected. The transcript and output contain no explicit reference to AI tools, AI-assisted tasks or AI concepts."

// Assess scores a transcript and candidate output for AI readiness. It never
// fails: empty or unrelated text yields the minimum result. roleID is passed
// through untouched.
func Assess(transcript, output, roleID string) Result {
	t := collect(normalize(transcript, output), rules)
	if t.total() == 0 {
		return fallback(roleID)
	}

	evidence := make(map[Category][]string, len(Categories))
	scores := make(map[Category]int, len(Categories))
	categories := make(map[Category]CategoryAssessment, len(Categories))
	for _, c := range Categories {
		items := make([]string, 0, len(t.evidence[c]))
		for _, e := range t.evidence[c] {
			items = append(items, utils.Truncate(e, evidenceDisplayLimit))
		}
		evidence[c] = items

		score := c.Score(t.counts[c])
		scores[c] = score
		categories[c] = CategoryAssessment{
			Score:        score,
			ScoringLevel: Band(score),
			Count:        t.counts[c],
			Evidence:     items,
			Summary:      Summary(c, items),
			Impact:       Impact(c, score),
		}
	}

	overall := Overall(scores)

	usage := usageNo
	if t.counts[Tool] > 0 {
		usage = usageYes
	}

	return Result{
		OverallScore:  overall,
		ScoringLevel:  Band(overall),
		AIUsage:       usage,
		Narrative:     Narrative(overall, evidence),
		Justification: Justification(evidence),
		Categories:    categories,
		Strengths:     strengths(categories),
		Improvements:  improvements(categories),
		RoleID:        roleID,
	}
}

func fallback(roleID string) Result {
	categories := make(map[Category]CategoryAssessment, len(Categories))
	for _, c := range Categories {
		categories[c] = CategoryAssessment{
			Score:        minScore,
			ScoringLevel: Band(minScore),
			Evidence:     []string{},
			Summary:      Summary(c, nil),
			Impact:       Impact(c, minScore),
		}
	}

	return Result{
		OverallScore:  minScore,
		ScoringLevel:  Band(minScore),
		AIUsage:       usageNo,
		Narrative:     fallbackNarrative,
		Justification: noUsageJustification,
		Categories:    categories,
		Strengths:     []Strength{},
		Improvements:  []Improvement{toolExploration},
		RoleID:        roleID,
	}
}

func strengths(categories map[Category]CategoryAssessment) []Strength {
	out := []Strength{}
	if tool := categories[Tool]; len(tool.Evidence) > 0 {
		out = append(out, Strength{
			Label:        "Effective AI Tool Usage",
			Example:      tool.Evidence[0],
			Impact:       "Demonstrated practical application of AI tools",
			ScoringLevel: tool.ScoringLevel,
		})
	}
	if action := categories[Action]; len(action.Evidence) > 0 {
		out = append(out, Strength{
			Label:        "Clear Implementation Strategy",
			Example:      action.Evidence[0],
			Impact:       "Showed systematic use of AI",
			ScoringLevel: action.ScoringLevel,
		})
	}
	return out
}

func improvements(categories map[Category]CategoryAssessment) []Improvement {
	out := []Improvement{}
	if len(categories[Tool].Evidence) < 2 {
		out = append(out, toolDiversity)
	}
	if len(categories[Action].Evidence) < 2 {
		out = append(out, implementation)
	}
	return out
}

// IsFallback reports whether the result is the fixed minimum produced when no
// evidence was found.
func (r Result) IsFallback() bool {
	for _, c := range r.Categories {
		if c.Count > 0 {
			return false
		}
	}
	return true
}

// PerCategoryScore returns the score of every category.
func (r Result) PerCategoryScore() map[Category]int {
	out := make(map[Category]int, len(r.Categories))
	for c, a := range r.Categories {
		out[c] = a.Score
	}
	return out
}

// Evidence returns a copy of every category's evidence in discovery order.
func (r Result) Evidence() map[Category][]string {
	out := make(map[Category][]string, len(r.Categories))
	for c, a := range r.Categories {
		out[c] = append([]string{}, a.Evidence...)
	}
	return out
}
