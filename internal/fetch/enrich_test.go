package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibero-edu/microcred-recommender/internal/types"
)

func testEnricher() *PageEnricher {
	return &PageEnricher{Cache: NewCachedFetcher(nil, time.Minute)}
}

func TestPageEnricher_AppendsProgramTitles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`
			<html><body>
				<div class="card"><h3>Data Analytics Professional</h3></div>
				<div class="card"><h3>Machine Learning Basics</h3></div>
			</body></html>`))
	}))
	defer server.Close()

	entries := []types.ExternalCertification{
		{
			Name:        "Búsqueda en Plataforma X: python",
			Platform:    "Plataforma X",
			Kind:        types.KindPlatform,
			URL:         server.URL,
			Description: "Resultados de búsqueda para python.",
		},
	}

	result := testEnricher().Enrich(context.Background(), entries)
	require.Len(t, result, 1)

	assert.Contains(t, result[0].Description, "Programas destacados:")
	assert.Contains(t, result[0].Description, "Data Analytics Professional")
	assert.Contains(t, result[0].Description, "Machine Learning Basics")
}

func TestPageEnricher_IndustryEntriesUntouched(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte(`<html><body><div class="card"><h3>Algo</h3></div></body></html>`))
	}))
	defer server.Close()

	entries := []types.ExternalCertification{
		{
			Name:        "Certificado Profesional de Google en Análisis de Datos",
			Platform:    "Coursera",
			Kind:        types.KindIndustry,
			URL:         server.URL,
			Description: "Certificación reconocida por la industria.",
		},
	}

	result := testEnricher().Enrich(context.Background(), entries)
	require.Len(t, result, 1)

	assert.Equal(t, 0, hits)
	assert.Equal(t, "Certificación reconocida por la industria.", result[0].Description)
}

func TestPageEnricher_FetchFailureLeavesEntryIntact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	entries := []types.ExternalCertification{
		{
			Name:        "Búsqueda en edX: python",
			Platform:    "edX",
			Kind:        types.KindPlatform,
			URL:         server.URL,
			Description: "Resultados de búsqueda para python.",
		},
	}

	result := testEnricher().Enrich(context.Background(), entries)
	require.Len(t, result, 1)
	assert.Equal(t, "Resultados de búsqueda para python.", result[0].Description)
}

func TestPageEnricher_NoMatchingTitles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>Sin resultados</p></body></html>`))
	}))
	defer server.Close()

	entries := []types.ExternalCertification{
		{
			Name:        "Búsqueda en edX: ornitología",
			Platform:    "edX",
			Kind:        types.KindPlatform,
			URL:         server.URL,
			Description: "Resultados de búsqueda para ornitología.",
		},
	}

	result := testEnricher().Enrich(context.Background(), entries)
	assert.Equal(t, "Resultados de búsqueda para ornitología.", result[0].Description)
}

func TestPageEnricher_CancelledContextStops(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte(`<html><body></body></html>`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entries := []types.ExternalCertification{
		{Platform: "edX", Kind: types.KindPlatform, URL: server.URL},
	}

	testEnricher().Enrich(ctx, entries)
	assert.Equal(t, 0, hits)
}
