package kb

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ibero-edu/microcred-recommender/internal/types"
)

// MaxQueryTerms caps how many extracted terms feed the external search
// query.
const MaxQueryTerms = 6

// platformNameQueryLen truncates the query echoed in a platform entry's
// display name.
const platformNameQueryLen = 50

// MatchIndustry scans the domain→certification table and emits one entry
// per certification of every matching domain. A domain matches when any
// of its words longer than three characters appears as a case-insensitive
// substring of an input term or of the combined query. Output may contain
// duplicate names; deduplication is the assembler's job.
func MatchIndustry(terms []string, combinedQuery string) []types.ExternalCertification {
	queryLower := strings.ToLower(combinedQuery)

	var results []types.ExternalCertification
	for _, dc := range Domains() {
		words := domainWords(dc.Domain)
		if len(words) == 0 {
			continue
		}

		matched := false
		for _, term := range terms {
			termLower := strings.ToLower(term)
			for _, w := range words {
				if strings.Contains(termLower, w) {
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
		if !matched {
			for _, w := range words {
				if strings.Contains(queryLower, w) {
					matched = true
					break
				}
			}
		}
		if !matched {
			continue
		}

		for _, cert := range dc.Certifications {
			results = append(results, types.ExternalCertification{
				Name:     cert,
				Platform: "Certificación de Industria",
				URL:      "https://www.google.com/search?q=" + url.QueryEscape(cert+" certification"),
				Duration: "Variable (típicamente 1-3 meses)",
				Cost:     "Varía según proveedor",
				Description: fmt.Sprintf("Certificación profesional relacionada con %s. "+
					"Buscar directamente en el sitio del proveedor para información actualizada.", dc.Domain),
				Justification: fmt.Sprintf("Coincide con el área de %s identificada en el documento del docente. "+
					"Es una certificación reconocida en la industria que valida competencias prácticas.", dc.Domain),
				Kind: types.KindIndustry,
			})
		}
	}
	return results
}

// PlatformSearches instantiates one search entry per priority platform,
// substituting the URL-escaped combined query into each template. This is
// link generation, not filtering: every listed platform gets an entry on
// every call.
func PlatformSearches(combinedQuery string) []types.ExternalCertification {
	encoded := url.QueryEscape(combinedQuery)

	displayQuery := combinedQuery
	if r := []rune(displayQuery); len(r) > platformNameQueryLen {
		displayQuery = string(r[:platformNameQueryLen])
	}

	results := make([]types.ExternalCertification, 0, len(priorityPlatforms))
	for _, name := range priorityPlatforms {
		p, ok := platforms[name]
		if !ok {
			continue
		}
		results = append(results, types.ExternalCertification{
			Name:     fmt.Sprintf("Búsqueda en %s: %s", name, displayQuery),
			Platform: name,
			URL:      strings.ReplaceAll(p.SearchURL, "{query}", encoded),
			Duration: "Variable según programa seleccionado",
			Cost:     p.TypicalCost,
			Description: fmt.Sprintf("Resultados de búsqueda en %s para las competencias identificadas. "+
				"Visitar el enlace para ver programas disponibles actualizados.", name),
			Justification: fmt.Sprintf("%s es una plataforma reconocida (%s) "+
				"que ofrece microcredenciales y certificaciones en el área temática identificada.", name, p.Type),
			Kind: types.KindPlatform,
		})
	}
	return results
}

// SourcesText renders the monitored platforms and the per-domain
// certification lists as a plain-text reference, for transparency
// downloads.
func SourcesText() string {
	var sb strings.Builder
	sb.WriteString("=== FUENTES DE DATOS EXTERNAS ===\n\n")
	sb.WriteString("Nota: Estas son las palabras clave y plataformas que el sistema utiliza para buscar ")
	sb.WriteString("recomendaciones externas. Puedes usar estos términos para realizar búsquedas manuales.\n\n")

	sb.WriteString("--- PLATAFORMAS MONITOREADAS ---\n")
	for _, name := range priorityPlatforms {
		sb.WriteString("- " + name + "\n")
	}

	sb.WriteString("\n--- CERTIFICACIONES POR DOMINIO ---\n")
	for _, dc := range Domains() {
		sb.WriteString("\nDOMINIO: " + strings.ToUpper(dc.Domain) + "\n")
		for _, cert := range dc.Certifications {
			sb.WriteString("- " + cert + "\n")
		}
	}
	return sb.String()
}

// domainWords splits a domain label into its words longer than three
// characters; these are the substring probes for rule matching.
func domainWords(domain string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(domain)) {
		if len([]rune(w)) > 3 {
			words = append(words, w)
		}
	}
	return words
}
