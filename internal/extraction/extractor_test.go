package extraction

import (
	"strings"
	"testing"

	"github.com/ibero-edu/microcred-recommender/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_ShortDocumentYieldsNothing(t *testing.T) {
	assert.Nil(t, Extract("", 10))
	assert.Nil(t, Extract("   \n\t  ", 10))
	assert.Nil(t, Extract("hola mundo", 10))
}

func TestExtract_RanksRepeatedTermsFirst(t *testing.T) {
	doc := "programación python datos programación python programación"

	terms := Extract(doc, 10)
	require.NotEmpty(t, terms)

	assert.Equal(t, "programación", terms[0].Term)
	assert.Equal(t, types.Unigram, terms[0].Arity)
	for i := 1; i < len(terms); i++ {
		assert.LessOrEqual(t, terms[i].Weight, terms[i-1].Weight)
	}
}

func TestExtract_DeduplicatesByRootPrefix(t *testing.T) {
	doc := "programación python datos programación python programación"

	terms := Extract(doc, 10)
	require.NotEmpty(t, terms)

	roots := make(map[string]bool)
	for _, term := range terms {
		first := term.Term
		if i := strings.IndexByte(first, ' '); i >= 0 {
			first = first[:i]
		}
		if r := []rune(first); len(r) > 10 {
			first = string(r[:10])
		}
		assert.False(t, roots[first], "terms %v share root %q", terms, first)
		roots[first] = true
	}
}

func TestExtract_DropsShortTerms(t *testing.T) {
	doc := "sol sol sol sol brilla cielo despejado montañas verano caluroso"

	terms := Extract(doc, 20)
	for _, term := range terms {
		assert.GreaterOrEqual(t, len([]rune(term.Term)), 4)
		assert.NotEqual(t, "sol", term.Term)
	}
}

func TestExtract_BoostsLeadTerms(t *testing.T) {
	filler := strings.Repeat("de la que el en y a los del se las por un para con ", 8)
	doc := "neurociencia " + filler + " bioquímica"

	terms := Extract(doc, 10)
	require.Len(t, terms, 2)
	assert.Equal(t, "neurociencia", terms[0].Term)
	assert.Equal(t, "bioquímica", terms[1].Term)
	assert.Greater(t, terms[0].Weight, terms[1].Weight)
}

func TestExtract_LeadWindowCountsRunes(t *testing.T) {
	// 249 runes of accented filler occupy well over 300 bytes; a term
	// placed after them is still inside the 300-character lead and must
	// be boosted.
	prefix := strings.Repeat("ñá ", 83)
	doc := prefix + "hidroponía " + strings.Repeat("relleno ", 20) + "acuaponia"

	terms := Extract(doc, 20)
	require.NotEmpty(t, terms)

	weights := make(map[string]float64)
	for _, term := range terms {
		weights[term.Term] = term.Weight
	}
	require.Contains(t, weights, "hidroponía")
	require.Contains(t, weights, "acuaponia")
	assert.InDelta(t, 1.5, weights["hidroponía"], 1e-9, "lead term gets the boost")
	assert.InDelta(t, 1.0, weights["acuaponia"], 1e-9, "trailing term does not")
}

func TestExtract_Deterministic(t *testing.T) {
	doc := "análisis de datos con python y estadística aplicada al análisis financiero usando modelos de regresión"

	first := Extract(doc, 15)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Extract(doc, 15))
	}
}

func TestExtract_RespectsMaxTerms(t *testing.T) {
	doc := "física química biología historia literatura filosofía geografía economía sociología antropología"

	terms := Extract(doc, 3)
	assert.LessOrEqual(t, len(terms), 3)
}

func TestExtract_ReportsArity(t *testing.T) {
	doc := "inteligencia artificial aplicada inteligencia artificial aplicada inteligencia artificial aplicada"

	terms := Extract(doc, 20)
	require.NotEmpty(t, terms)

	arities := make(map[types.TermArity]bool)
	for _, term := range terms {
		arities[term.Arity] = true
		words := strings.Count(term.Term, " ") + 1
		switch term.Arity {
		case types.Unigram:
			assert.Equal(t, 1, words)
		case types.Bigram:
			assert.Equal(t, 2, words)
		case types.Trigram:
			assert.Equal(t, 3, words)
		}
	}
}

func TestTokenize_RemovesStopWordsAndShortTokens(t *testing.T) {
	tokens := Tokenize("la programación de python es el futuro y tu herramienta")

	assert.Contains(t, tokens, "programación")
	assert.Contains(t, tokens, "python")
	assert.Contains(t, tokens, "herramienta")
	assert.NotContains(t, tokens, "la")
	assert.NotContains(t, tokens, "de")
	assert.NotContains(t, tokens, "es")
	assert.NotContains(t, tokens, "y")
}

func TestTokenize_SplitsOnDigitsAndPunctuation(t *testing.T) {
	tokens := Tokenize("python3, c++ estadística-aplicada")

	assert.Contains(t, tokens, "python")
	assert.Contains(t, tokens, "estadística")
	assert.Contains(t, tokens, "aplicada")
	assert.NotContains(t, tokens, "python3")
}

func TestSearchQuery_LimitsTerms(t *testing.T) {
	terms := []types.CandidateTerm{
		{Term: "análisis de datos"},
		{Term: "python"},
		{Term: "estadística"},
	}

	assert.Equal(t, "análisis de datos python", SearchQuery(terms, 2))
	assert.Equal(t, "análisis de datos python estadística", SearchQuery(terms, 0))
	assert.Equal(t, "análisis de datos python estadística", SearchQuery(terms, 10))
	assert.Equal(t, "", SearchQuery(nil, 6))
}
