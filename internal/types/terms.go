// Package types defines the shared data structures exchanged between
// pipeline components.
package types

// TermArity classifies a candidate term by its word count.
type TermArity string

// Arity values for candidate terms.
const (
	Unigram TermArity = "unigram"
	Bigram  TermArity = "bigram"
	Trigram TermArity = "trigram"
)

// CandidateTerm is a salient term extracted from a document, weighted by
// a log-scaled term frequency. Weights are comparable within one document
// but are not normalized across documents.
type CandidateTerm struct {
	Term   string    `json:"term"`
	Weight float64   `json:"weight"`
	Arity  TermArity `json:"arity"`
}
