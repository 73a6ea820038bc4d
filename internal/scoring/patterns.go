package scoring

import "strings"

// KeywordPattern is one recognised AI usage signal. Term holds the variants
// separated by "|"; a variant may span several words.
type KeywordPattern struct {
	Category Category
	Term     string
	Context  []string
}

var (
	toolContext    = []string{"used", "using", "utilized", "with"}
	aiContext      = []string{"used", "using", "utilized", "with", "for", "to"}
	promptContext  = []string{"created", "used", "wrote", "with"}
	actionContext  = []string{"used", "to", "for"}
	conceptContext = []string{"used", "using", "with", "for"}
)

var patterns = []KeywordPattern{
	{Category: Tool, Term: "chatgpt|chat gpt|chat-gpt|chatgtp|chat gtp", Context: toolContext},
	{Category: Tool, Term: "gpt|gpt-4|gpt-4o|gpt4", Context: toolContext},
	{Category: Tool, Term: "claude", Context: toolContext},
	{Category: Tool, Term: "bard|gemini", Context: toolContext},
	{Category: Tool, Term: "copilot|co-pilot|co pilot", Context: toolContext},
	{Category: Tool, Term: "github copilot|github co-pilot", Context: toolContext},
	{Category: Tool, Term: "chat.shopify.io", Context: toolContext},
	{Category: Tool, Term: "cursor", Context: toolContext},
	{Category: Tool, Term: "claude code", Context: toolContext},
	{Category: Tool, Term: "proxy", Context: toolContext},
	{Category: Tool, Term: "perplexity", Context: toolContext},
	{Category: Tool, Term: "ai|a.i.", Context: aiContext},

	{Category: Action, Term: "prompt|prompts|prompted|prompting", Context: promptContext},
	{Category: Action, Term: "generate|generated|generating", Context: actionContext},
	{Category: Action, Term: "analyze|analyse|analyzed|analysed|analyzing", Context: actionContext},
	{Category: Action, Term: "summarize|summarise|summarized|summarised", Context: actionContext},
	{Category: Action, Term: "research|researched|researching", Context: actionContext},
	{Category: Action, Term: "automate|automated|automating", Context: actionContext},
	{Category: Action, Term: "optimize|optimise|optimized|optimised", Context: actionContext},
	{Category: Action, Term: "enhance|enhanced", Context: actionContext},
	{Category: Action, Term: "improve|improved", Context: actionContext},
	{Category: Action, Term: "streamline|streamlined", Context: actionContext},
	{Category: Action, Term: "draft|drafted", Context: actionContext},

	{Category: Concept, Term: "artificial intelligence", Context: conceptContext},
	{Category: Concept, Term: "machine learning", Context: conceptContext},
	{Category: Concept, Term: "ml", Context: conceptContext},
	{Category: Concept, Term: "natural language|natural language processing", Context: conceptContext},
	{Category: Concept, Term: "nlp", Context: conceptContext},
	{Category: Concept, Term: "automation", Context: conceptContext},
	{Category: Concept, Term: "algorithm|algorithms", Context: conceptContext},
	{Category: Concept, Term: "llm|llms|large language model|large language models", Context: conceptContext},
}

// Patterns returns a copy of the keyword table.
func Patterns() []KeywordPattern {
	out := make([]KeywordPattern, len(patterns))
	for i, p := range patterns {
		p.Context = append([]string(nil), p.Context...)
		out[i] = p
	}
	return out
}

// phrase is a lower-cased word sequence compared against token cores.
type phrase []string

// rule is a pattern prepared for one context word.
type rule struct {
	category Category
	terms    []phrase
	context  phrase
}

// rules is the pattern table expanded once into pattern x context pairs.
var rules = compileRules(patterns)

func compileRules(table []KeywordPattern) []rule {
	var out []rule
	for _, p := range table {
		var terms []phrase
		for _, variant := range strings.Split(p.Term, "|") {
			if words := toPhrase(variant); len(words) > 0 {
				terms = append(terms, words)
			}
		}
		if len(terms) == 0 {
			continue
		}
		for _, ctx := range p.Context {
			words := toPhrase(ctx)
			if len(words) == 0 {
				continue
			}
			out = append(out, rule{category: p.Category, terms: terms, context: words})
		}
	}
	return out
}

func toPhrase(s string) phrase {
	var words phrase
	for _, field := range strings.Fields(strings.ToLower(s)) {
		if core := trimEdges(field); core != "" {
			words = append(words, core)
		}
	}
	return words
}
