package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	// Create test server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><h1>Test</h1></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "<h1>Test</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, result) // Result is returned even on error
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestURL_SendsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestExtractMainText_WithMainElement(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Navigation</nav>
			<main>
				<h1>Main Content</h1>
				<p>Relevant text here.</p>
			</main>
			<footer>Footer text</footer>
		</body>
	</html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)

	assert.Contains(t, text, "Main Content")
	assert.Contains(t, text, "Relevant text here.")
	assert.NotContains(t, text, "Navigation")
	assert.NotContains(t, text, "Footer text")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>No main element anywhere.</p></body></html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "No main element anywhere.")
}

func TestExtractMainText_RemovesScripts(t *testing.T) {
	html := `<html><body><script>var x = 1;</script><p>Visible</p></body></html>`

	text, err := ExtractMainText(html, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Visible")
	assert.NotContains(t, text, "var x")
}

func TestExtractTitles_FirstMatchingSelectorWins(t *testing.T) {
	html := `
	<html><body>
		<div class="card"><h3>Curso de Python</h3></div>
		<div class="card"><h3>Curso de SQL</h3></div>
		<article><h3>Otro listado</h3></article>
	</body></html>`

	titles, err := ExtractTitles(html, []string{".missing h2", ".card h3", "article h3"}, 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"Curso de Python", "Curso de SQL"}, titles)
}

func TestExtractTitles_DeduplicatesAndCaps(t *testing.T) {
	html := `
	<html><body>
		<h3> Data Analytics </h3>
		<h3>Data Analytics</h3>
		<h3>Machine Learning</h3>
		<h3>Cloud Computing</h3>
		<h3>Cybersecurity</h3>
	</body></html>`

	titles, err := ExtractTitles(html, []string{"h3"}, 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"Data Analytics", "Machine Learning", "Cloud Computing"}, titles)
}

func TestExtractTitles_EmptyPage(t *testing.T) {
	titles, err := ExtractTitles("<html><body></body></html>", []string{"h3"}, 3)
	require.NoError(t, err)
	assert.Empty(t, titles)
}

func TestCleanWhitespace(t *testing.T) {
	input := "  line one  \n\n\n   line two\t\n"
	assert.Equal(t, "line one\nline two", cleanWhitespace(input))
}
