package kb

import (
	"strings"
	"testing"

	"github.com/ibero-edu/microcred-recommender/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchIndustry_TermSubstring(t *testing.T) {
	results := MatchIndustry([]string{"análisis de datos"}, "")

	require.NotEmpty(t, results)

	var names []string
	for _, r := range results {
		assert.Equal(t, types.KindIndustry, r.Kind)
		assert.NotEmpty(t, r.URL)
		assert.NotEmpty(t, r.Justification)
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "Certificado Profesional de Google en Análisis de Datos")
}

func TestMatchIndustry_CombinedQueryFallback(t *testing.T) {
	// No individual term matches, but the combined query carries the
	// domain word.
	results := MatchIndustry([]string{"qm"}, "laboratorio de química analítica")

	require.NotEmpty(t, results)

	var names []string
	for _, r := range results {
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "Química en Contexto")
}

func TestMatchIndustry_NoMatch(t *testing.T) {
	results := MatchIndustry([]string{"ornitología"}, "ornitología aviar")
	assert.Empty(t, results)
}

func TestMatchIndustry_ShortDomainWordsIgnored(t *testing.T) {
	// Words of three characters or fewer never act as probes, so "de" in
	// "análisis de datos" cannot match everything.
	results := MatchIndustry([]string{"de"}, "de")
	assert.Empty(t, results)
}

func TestPlatformSearches_OnePerPriorityPlatform(t *testing.T) {
	results := PlatformSearches("python análisis de datos")

	require.Len(t, results, len(priorityPlatforms))
	for i, r := range results {
		assert.Equal(t, priorityPlatforms[i], r.Platform)
		assert.Equal(t, types.KindPlatform, r.Kind)
		assert.Contains(t, r.Name, priorityPlatforms[i])
		assert.NotContains(t, r.URL, "{query}")
		assert.Contains(t, r.URL, "python")
	}
}

func TestPlatformSearches_EscapesQuery(t *testing.T) {
	results := PlatformSearches("análisis de datos")

	require.NotEmpty(t, results)
	for _, r := range results {
		assert.NotContains(t, r.URL, " ")
	}
}

func TestPlatformSearches_TruncatesLongQueryInName(t *testing.T) {
	long := strings.Repeat("competencia ", 10)
	results := PlatformSearches(long)

	require.NotEmpty(t, results)
	prefix := "Búsqueda en " + results[0].Platform + ": "
	shown := strings.TrimPrefix(results[0].Name, prefix)
	assert.LessOrEqual(t, len([]rune(shown)), 50)
}

func TestSourcesText_ListsPlatformsAndDomains(t *testing.T) {
	text := SourcesText()

	assert.Contains(t, text, "FUENTES DE DATOS EXTERNAS")
	assert.Contains(t, text, "PLATAFORMAS MONITOREADAS")
	assert.Contains(t, text, "CERTIFICACIONES POR DOMINIO")
	for _, name := range priorityPlatforms {
		assert.Contains(t, text, name)
	}
	assert.Contains(t, text, "DOMINIO: DATA SCIENCE")
	assert.Contains(t, text, "Google Data Analytics")
}
