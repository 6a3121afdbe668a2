// Package extraction turns a document's raw text into a ranked,
// deduplicated list of weighted candidate terms (unigrams to trigrams).
package extraction

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/ibero-edu/microcred-recommender/internal/types"
)

// DefaultMaxTerms is the number of candidate terms returned when the
// caller does not override it.
const DefaultMaxTerms = 20

// minSignificantChars is the minimum trimmed document length below which
// extraction returns no candidates.
const minSignificantChars = 20

// headerWindow is the number of leading characters treated as the
// document's lead; terms appearing there get a weight boost.
const headerWindow = 300

// headerBoost multiplies the weight of terms found in the lead window.
const headerBoost = 1.5

// minTermLength drops terms shorter than this many characters.
const minTermLength = 4

// rootPrefixLen is the dedup key length: candidate terms whose first word
// shares this prefix collapse to the highest-weighted one.
const rootPrefixLen = 10

// wordPattern matches alphabetic tokens including the Spanish accented
// set; digits and punctuation split tokens.
var wordPattern = regexp.MustCompile(`[a-záéíóúñü]+`)

// Extract returns up to maxTerms candidate terms from text, ordered by
// descending weight. Weights are sub-linear term frequencies (1 + ln n)
// boosted 1.5x for terms that appear within the first 300 characters.
// Documents shorter than 20 significant characters yield an empty slice,
// never an error.
func Extract(text string, maxTerms int) []types.CandidateTerm {
	if maxTerms <= 0 {
		maxTerms = DefaultMaxTerms
	}
	if len(strings.TrimSpace(text)) < minSignificantChars {
		return nil
	}

	lower := strings.ToLower(text)
	tokens := Tokenize(lower)
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for n := 1; n <= 3; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			counts[strings.Join(tokens[i:i+n], " ")]++
		}
	}

	// The window counts runes, not bytes; accented text must not shrink
	// the lead.
	header := lower
	if r := []rune(header); len(r) > headerWindow {
		header = string(r[:headerWindow])
	}

	type scored struct {
		term   string
		weight float64
	}
	candidates := make([]scored, 0, len(counts))
	for term, n := range counts {
		if len([]rune(term)) < minTermLength {
			continue
		}
		w := 1 + math.Log(float64(n))
		if strings.Contains(header, term) {
			w *= headerBoost
		}
		candidates = append(candidates, scored{term: term, weight: w})
	}

	// Descending by weight, lexicographic tie-break for determinism.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].weight != candidates[j].weight {
			return candidates[i].weight > candidates[j].weight
		}
		return candidates[i].term < candidates[j].term
	})

	seenRoots := make(map[string]struct{})
	out := make([]types.CandidateTerm, 0, maxTerms)
	for _, c := range candidates {
		if len(out) >= maxTerms {
			break
		}
		root := rootOf(c.term)
		if _, dup := seenRoots[root]; dup {
			continue
		}
		seenRoots[root] = struct{}{}
		out = append(out, types.CandidateTerm{
			Term:   c.term,
			Weight: c.weight,
			Arity:  arityOf(c.term),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Tokenize splits lowercased text into alphabetic tokens of length >= 2
// with stop words removed. N-grams are formed over the surviving token
// sequence, so no candidate term ever contains a stop word.
func Tokenize(lower string) []string {
	raw := wordPattern.FindAllString(lower, -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if len([]rune(tok)) < 2 {
			continue
		}
		if IsStopWord(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// SearchQuery joins the strongest terms into a keyword query for external
// search. At most limit terms are used.
func SearchQuery(terms []types.CandidateTerm, limit int) string {
	if limit <= 0 || limit > len(terms) {
		limit = len(terms)
	}
	parts := make([]string, 0, limit)
	for _, t := range terms[:limit] {
		parts = append(parts, t.Term)
	}
	return strings.Join(parts, " ")
}

func rootOf(term string) string {
	first := term
	if i := strings.IndexByte(term, ' '); i >= 0 {
		first = term[:i]
	}
	r := []rune(first)
	if len(r) > rootPrefixLen {
		r = r[:rootPrefixLen]
	}
	return string(r)
}

func arityOf(term string) types.TermArity {
	switch strings.Count(term, " ") {
	case 2:
		return types.Trigram
	case 1:
		return types.Bigram
	default:
		return types.Unigram
	}
}
