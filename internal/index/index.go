package index

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ibero-edu/microcred-recommender/internal/types"
)

// Ranking defaults shared by both indices.
const (
	// DefaultMinScore is the similarity floor below which entries are not
	// reported.
	DefaultMinScore = 0.08
	// DefaultTopCourses is the default result count for the course index.
	DefaultTopCourses = 10
	// DefaultTopSpecializations is the default result count for the
	// specialization index.
	DefaultTopSpecializations = 5
)

// CourseIndex is the fitted vector space over the course catalog. It is
// built exactly once and is safe for concurrent Rank calls afterwards.
type CourseIndex struct {
	vectorizer *Vectorizer
	courses    []types.Course
	vectors    []SparseVector
}

// NewCourseIndex returns an unfitted course index with the catalog
// vectorizer settings (vocabulary 5000, min_df 2, max_df 0.85, 1-2 grams).
func NewCourseIndex() *CourseIndex {
	return &CourseIndex{
		vectorizer: NewVectorizer(VectorizerConfig{
			MaxFeatures: 5000,
			MinDF:       2,
			MaxDF:       0.85,
			NgramMax:    2,
		}),
	}
}

// Fit builds the vector space from the catalog's combined texts. Entry
// order is preserved and used for tie-breaking at rank time.
func (ci *CourseIndex) Fit(courses []types.Course) {
	ci.courses = courses
	texts := make([]string, len(courses))
	for i, c := range courses {
		texts[i] = c.CombinedText
	}
	ci.vectors = ci.vectorizer.Fit(texts)
}

// Size returns the number of indexed courses.
func (ci *CourseIndex) Size() int { return len(ci.courses) }

// Rank projects queryText into the catalog vocabulary and returns up to
// topN courses with similarity >= minScore, ordered by score descending
// with ties broken by catalog order. The walk down the sorted list stops
// at the first entry under the floor.
func (ci *CourseIndex) Rank(queryText string, topN int, minScore float64) ([]types.CourseMatch, error) {
	if !ci.vectorizer.Fitted() {
		return nil, &NotFittedError{Index: "course"}
	}
	if topN <= 0 {
		topN = DefaultTopCourses
	}

	query := ci.vectorizer.Transform(queryText)
	order, scores := rankOrder(query, ci.vectors)

	results := make([]types.CourseMatch, 0, topN)
	for _, idx := range order {
		if len(results) >= topN {
			break
		}
		if scores[idx] < minScore {
			break
		}
		results = append(results, types.CourseMatch{
			Course:        ci.courses[idx],
			Score:         scores[idx],
			Justification: courseJustification(ci.courses[idx], scores[idx]),
		})
	}
	return results, nil
}

// SpecializationIndex is the fitted vector space over the specialization
// catalog. Structurally identical to CourseIndex with its own vectorizer
// settings and justification wording.
type SpecializationIndex struct {
	vectorizer *Vectorizer
	specs      []types.Specialization
	vectors    []SparseVector
}

// NewSpecializationIndex returns an unfitted specialization index
// (vocabulary 3000, min_df 1, max_df 0.9, 1-2 grams).
func NewSpecializationIndex() *SpecializationIndex {
	return &SpecializationIndex{
		vectorizer: NewVectorizer(VectorizerConfig{
			MaxFeatures: 3000,
			MinDF:       1,
			MaxDF:       0.9,
			NgramMax:    2,
		}),
	}
}

// Fit builds the vector space from the specializations' combined texts.
func (si *SpecializationIndex) Fit(specs []types.Specialization) {
	si.specs = specs
	texts := make([]string, len(specs))
	for i, s := range specs {
		texts[i] = s.CombinedText
	}
	si.vectors = si.vectorizer.Fit(texts)
}

// Size returns the number of indexed specializations.
func (si *SpecializationIndex) Size() int { return len(si.specs) }

// Rank behaves like CourseIndex.Rank over the specialization catalog.
func (si *SpecializationIndex) Rank(queryText string, topN int, minScore float64) ([]types.SpecializationMatch, error) {
	if !si.vectorizer.Fitted() {
		return nil, &NotFittedError{Index: "specialization"}
	}
	if topN <= 0 {
		topN = DefaultTopSpecializations
	}

	query := si.vectorizer.Transform(queryText)
	order, scores := rankOrder(query, si.vectors)

	results := make([]types.SpecializationMatch, 0, topN)
	for _, idx := range order {
		if len(results) >= topN {
			break
		}
		if scores[idx] < minScore {
			break
		}
		results = append(results, types.SpecializationMatch{
			Specialization: si.specs[idx],
			Score:          scores[idx],
			Justification:  specializationJustification(si.specs[idx], scores[idx]),
		})
	}
	return results, nil
}

// rankOrder scores the query against every entry vector and returns the
// entry indices sorted by score descending. The sort is stable, so equal
// scores keep catalog insertion order and repeated calls are
// byte-identical.
func rankOrder(query SparseVector, vectors []SparseVector) ([]int, []float64) {
	scores := make([]float64, len(vectors))
	order := make([]int, len(vectors))
	for i, vec := range vectors {
		scores[i] = query.Cosine(vec)
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	return order, scores
}

// courseJustification composes the display justification from up to four
// independent signals; any signal with a missing source field is skipped.
func courseJustification(c types.Course, score float64) string {
	var parts []string

	switch {
	case score > 0.3:
		parts = append(parts, fmt.Sprintf("Alta coincidencia temática con el documento analizado (score: %.2f).", score))
	case score > 0.15:
		parts = append(parts, fmt.Sprintf("Coincidencia moderada con las competencias identificadas (score: %.2f).", score))
	default:
		parts = append(parts, fmt.Sprintf("Coincidencia relevante en el área temática (score: %.2f).", score))
	}

	if c.Domain != "" {
		parts = append(parts, fmt.Sprintf("Pertenece al dominio de %s.", c.Domain))
	}

	if c.Skills != "" {
		skills := strings.Split(c.Skills, ",")
		if len(skills) > 5 {
			skills = skills[:5]
		}
		for i := range skills {
			skills[i] = strings.TrimSpace(skills[i])
		}
		parts = append(parts, fmt.Sprintf("Desarrolla habilidades en: %s.", strings.Join(skills, ", ")))
	}

	if c.Hours > 0 {
		switch {
		case c.Hours <= 5:
			parts = append(parts, fmt.Sprintf("Curso corto (%.1f horas), ideal para una microcredencial rápida.", c.Hours))
		case c.Hours <= 10:
			parts = append(parts, fmt.Sprintf("Duración moderada (%.1f horas), completable en 1-2 semanas.", c.Hours))
		default:
			parts = append(parts, fmt.Sprintf("Curso de %.1f horas, completable en 2-4 semanas con dedicación parcial.", c.Hours))
		}
	}

	return strings.Join(parts, " ")
}

func specializationJustification(s types.Specialization, score float64) string {
	parts := []string{fmt.Sprintf("Coincidencia temática (score: %.2f).", score)}
	if s.Type != "" {
		parts = append(parts, fmt.Sprintf("Tipo: %s.", s.Type))
	}
	if s.Domain != "" {
		parts = append(parts, fmt.Sprintf("Dominio: %s.", s.Domain))
	}
	if s.NumCourses > 0 {
		parts = append(parts, fmt.Sprintf("Compuesta por %d cursos.", s.NumCourses))
	}
	return strings.Join(parts, " ")
}
