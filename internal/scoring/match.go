package scoring

import (
	"sort"
	"strings"
	"unicode"
)

// MaxGap is the number of words allowed between a context word and its term.
const MaxGap = 3

// token is a whitespace-separated word of the normalized text. start and end
// delimit its core, the word without surrounding punctuation.
type token struct {
	core       string
	start, end int
}

// match is one windowed hit, spanning text[start:end].
type match struct {
	category Category
	start    int
	end      int
}

// tally holds the per-category counts and evidence of one scan.
type tally struct {
	counts   map[Category]int
	evidence map[Category][]string
}

func (t tally) total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

func normalize(transcript, output string) string {
	return strings.ToLower(transcript + " " + output)
}

func isEdge(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func trimEdges(s string) string {
	return strings.TrimFunc(s, isEdge)
}

func tokenize(text string) []token {
	var tokens []token
	add := func(start, end int) {
		word := text[start:end]
		lead := len(word) - len(strings.TrimLeftFunc(word, isEdge))
		core := strings.TrimFunc(word, isEdge)
		if core == "" {
			return
		}
		tokens = append(tokens, token{core: core, start: start + lead, end: start + lead + len(core)})
	}

	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				add(start, i)
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		add(start, len(text))
	}
	return tokens
}

// phraseAt reports whether p occurs in tokens starting at index i.
func phraseAt(tokens []token, i int, p phrase) bool {
	if i < 0 || i+len(p) > len(tokens) {
		return false
	}
	for k, word := range p {
		if tokens[i+k].core != word {
			return false
		}
	}
	return true
}

// termAt returns the length of the longest term variant starting at index i, or 0.
func (r rule) termAt(tokens []token, i int) int {
	best := 0
	for _, term := range r.terms {
		if len(term) > best && phraseAt(tokens, i, term) {
			best = len(term)
		}
	}
	return best
}

// scan finds every non-overlapping windowed match of the rule. At each
// position the context word may lead the term or trail it, with at most
// MaxGap words between them; the nearest partner wins.
func (r rule) scan(tokens []token) [][2]int {
	var spans [][2]int
	for i := 0; i < len(tokens); {
		if end, ok := r.contextFirst(tokens, i); ok {
			spans = append(spans, [2]int{i, end})
			i = end
			continue
		}
		if end, ok := r.termFirst(tokens, i); ok {
			spans = append(spans, [2]int{i, end})
			i = end
			continue
		}
		i++
	}
	return spans
}

func (r rule) contextFirst(tokens []token, i int) (int, bool) {
	if !phraseAt(tokens, i, r.context) {
		return 0, false
	}
	from := i + len(r.context)
	for j := from; j <= from+MaxGap && j < len(tokens); j++ {
		if n := r.termAt(tokens, j); n > 0 {
			return j + n, true
		}
	}
	return 0, false
}

func (r rule) termFirst(tokens []token, i int) (int, bool) {
	n := r.termAt(tokens, i)
	if n == 0 {
		return 0, false
	}
	from := i + n
	for j := from; j <= from+MaxGap && j < len(tokens); j++ {
		if phraseAt(tokens, j, r.context) {
			return j + len(r.context), true
		}
	}
	return 0, false
}

// collect runs every rule over the text and tallies the matches. Evidence
// within a category is ordered by where it starts in the text.
func collect(text string, table []rule) tally {
	tokens := tokenize(text)

	var found []match
	for _, r := range table {
		for _, span := range r.scan(tokens) {
			found = append(found, match{
				category: r.category,
				start:    tokens[span[0]].start,
				end:      tokens[span[1]-1].end,
			})
		}
	}

	sort.SliceStable(found, func(a, b int) bool {
		return found[a].start < found[b].start
	})

	t := tally{
		counts:   make(map[Category]int, len(Categories)),
		evidence: make(map[Category][]string, len(Categories)),
	}
	for _, m := range found {
		t.counts[m.category]++
		t.evidence[m.category] = append(t.evidence[m.category], text[m.start:m.end])
	}
	return t
}
