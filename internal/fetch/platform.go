// Package fetch - platform.go provides per-platform selectors for
// learning platform search result pages.
package fetch

// ResultTitleSelectors returns the CSS selectors that locate program
// titles on a platform's search results page, most specific first. The
// platform name matches the knowledge base's platform table.
func ResultTitleSelectors(platformName string) []string {
	switch platformName {
	case "edX":
		return []string{
			".discovery-card h3",
			"[data-testid='course-card-title']",
			".course-card .name",
		}
	case "FutureLearn":
		return []string{
			".m-card__title",
			"[data-testid='card-title']",
		}
	case "LinkedIn Learning":
		return []string{
			".search-entity-title",
			".base-search-card__title",
		}
	case "Microsoft Learn":
		return []string{
			".card-title",
			"[data-bi-name='card'] h3",
		}
	case "Coursera":
		return []string{
			"[data-testid='search-card-title']",
			".cds-CommonCard-title",
		}
	default:
		return []string{
			"h3 a",
			".card h3",
			".result-title",
			"article h3",
		}
	}
}
