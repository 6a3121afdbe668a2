// Package index builds TF-IDF vector spaces over fixed catalogs and ranks
// query documents against them by cosine similarity.
package index

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/ibero-edu/microcred-recommender/internal/extraction"
)

// tokenPattern matches word tokens of two or more characters. Unlike the
// extraction tokenizer it keeps digit-bearing tokens such as "python3",
// which catalog texts carry in course names and skill lists.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// VectorizerConfig controls vocabulary construction.
type VectorizerConfig struct {
	// MaxFeatures caps the vocabulary size; the most frequent terms across
	// the corpus are kept.
	MaxFeatures int
	// MinDF drops terms appearing in fewer than this many documents.
	MinDF int
	// MaxDF drops terms appearing in more than this fraction of documents.
	MaxDF float64
	// NgramMax is the largest n-gram size; n-grams from 1 to NgramMax are
	// generated.
	NgramMax int
}

// Vectorizer is a fitted TF-IDF model: a fixed vocabulary with IDF
// weights. Vectors use sub-linear term frequency (1 + ln n) and are
// L2-normalized, so the dot product of two vectors is their cosine
// similarity. A Vectorizer is immutable after Fit and safe for concurrent
// Transform calls.
type Vectorizer struct {
	cfg    VectorizerConfig
	vocab  map[string]int
	idf    []float64
	fitted bool
}

// NewVectorizer returns an unfitted vectorizer with the given config.
func NewVectorizer(cfg VectorizerConfig) *Vectorizer {
	if cfg.NgramMax <= 0 {
		cfg.NgramMax = 1
	}
	return &Vectorizer{cfg: cfg}
}

// Fit builds the vocabulary and IDF weights from the corpus and returns
// one normalized vector per document, in input order. Vocabulary
// construction is deterministic: frequency ties break lexicographically.
func (v *Vectorizer) Fit(docs []string) []SparseVector {
	docTerms := make([]map[string]int, len(docs))
	df := make(map[string]int)
	totalFreq := make(map[string]int)

	for i, doc := range docs {
		counts := v.countTerms(doc)
		docTerms[i] = counts
		for term, n := range counts {
			df[term]++
			totalFreq[term] += n
		}
	}

	n := len(docs)
	maxDFCount := int(v.cfg.MaxDF * float64(n))
	kept := make([]string, 0, len(df))
	for term, d := range df {
		if v.cfg.MinDF > 0 && d < v.cfg.MinDF {
			continue
		}
		if v.cfg.MaxDF > 0 && v.cfg.MaxDF < 1 && d > maxDFCount {
			continue
		}
		kept = append(kept, term)
	}

	// Keep the most frequent terms up to MaxFeatures.
	sort.Slice(kept, func(i, j int) bool {
		if totalFreq[kept[i]] != totalFreq[kept[j]] {
			return totalFreq[kept[i]] > totalFreq[kept[j]]
		}
		return kept[i] < kept[j]
	})
	if v.cfg.MaxFeatures > 0 && len(kept) > v.cfg.MaxFeatures {
		kept = kept[:v.cfg.MaxFeatures]
	}
	sort.Strings(kept)

	v.vocab = make(map[string]int, len(kept))
	v.idf = make([]float64, len(kept))
	for i, term := range kept {
		v.vocab[term] = i
		// Smoothed IDF; never zero, so fitted terms always contribute.
		v.idf[i] = math.Log(float64(1+n)/float64(1+df[term])) + 1
	}
	v.fitted = true

	vectors := make([]SparseVector, len(docs))
	for i := range docs {
		vectors[i] = v.vectorize(docTerms[i])
	}
	return vectors
}

// Transform projects a query document into the fitted vocabulary.
// Out-of-vocabulary terms are dropped, never added.
func (v *Vectorizer) Transform(doc string) SparseVector {
	if !v.fitted {
		return nil
	}
	return v.vectorize(v.countTerms(doc))
}

// Fitted reports whether Fit has completed.
func (v *Vectorizer) Fitted() bool { return v.fitted }

// VocabularySize returns the number of terms in the fitted vocabulary.
func (v *Vectorizer) VocabularySize() int { return len(v.vocab) }

func (v *Vectorizer) countTerms(doc string) map[string]int {
	tokens := tokenize(strings.ToLower(doc))
	counts := make(map[string]int)
	for n := 1; n <= v.cfg.NgramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			counts[strings.Join(tokens[i:i+n], " ")]++
		}
	}
	return counts
}

func tokenize(lower string) []string {
	raw := tokenPattern.FindAllString(lower, -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if extraction.IsStopWord(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func (v *Vectorizer) vectorize(counts map[string]int) SparseVector {
	vec := make(SparseVector, len(counts))
	for term, n := range counts {
		idx, ok := v.vocab[term]
		if !ok {
			continue
		}
		vec[idx] = (1 + math.Log(float64(n))) * v.idf[idx]
	}
	vec.normalize()
	return vec
}

// SparseVector maps vocabulary indices to weights. Vectors produced by
// the vectorizer are L2-normalized.
type SparseVector map[int]float64

// Cosine returns the cosine similarity between two normalized vectors.
func (a SparseVector) Cosine(b SparseVector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for idx, wa := range a {
		if wb, ok := b[idx]; ok {
			dot += wa * wb
		}
	}
	return dot
}

func (a SparseVector) normalize() {
	var sum float64
	for _, w := range a {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for idx := range a {
		a[idx] /= norm
	}
}
