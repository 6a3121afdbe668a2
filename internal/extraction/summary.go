package extraction

import "strings"

// summarySentences is how many sentences the heuristic summary keeps.
const summarySentences = 8

// summaryMinWords drops sentences shorter than this many words, which
// are usually headings or list fragments.
const summaryMinWords = 5

// Summarize builds a cheap extractive summary: the first sentences of
// the document that carry enough words to be prose. It needs no network
// and is the fallback when no language model is configured.
func Summarize(text string) string {
	var kept []string
	for _, sentence := range splitSentences(text) {
		sentence = strings.TrimSpace(sentence)
		if len(strings.Fields(sentence)) <= summaryMinWords {
			continue
		}
		kept = append(kept, sentence)
		if len(kept) >= summarySentences {
			break
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, ". ") + "."
}

func splitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '.', '!', '?', '\n':
			return true
		}
		return false
	})
}
