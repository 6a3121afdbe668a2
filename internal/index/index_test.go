package index

import (
	"testing"

	"github.com/ibero-edu/microcred-recommender/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCourses() []types.Course {
	return []types.Course{
		{
			Name:         "Python para análisis",
			Domain:       "Data Science",
			Skills:       "python, datos",
			Hours:        10,
			CombinedText: "python python python datos",
		},
		{
			Name:         "Estadística con datos",
			Domain:       "Data Science",
			Hours:        8,
			CombinedText: "datos datos datos python",
		},
		{
			Name:         "Marketing digital",
			Domain:       "Business",
			Hours:        6,
			CombinedText: "marketing ventas publicidad redes",
		},
	}
}

func TestCourseIndex_RankBeforeFit(t *testing.T) {
	ci := NewCourseIndex()

	_, err := ci.Rank("python", 5, 0.05)
	require.Error(t, err)

	var nfe *NotFittedError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "course", nfe.Index)
}

func TestCourseIndex_RankOrdersByScore(t *testing.T) {
	ci := NewCourseIndex()
	ci.Fit(testCourses())
	assert.Equal(t, 3, ci.Size())

	matches, err := ci.Rank("python python datos herramientas", 2, 0.05)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, "Python para análisis", matches[0].Course.Name)
	assert.Equal(t, "Estadística con datos", matches[1].Course.Name)
	assert.GreaterOrEqual(t, matches[0].Score, matches[1].Score)
	for _, m := range matches {
		assert.GreaterOrEqual(t, m.Score, 0.05)
		assert.NotEmpty(t, m.Justification)
	}
}

func TestCourseIndex_RankEnglishPythonCatalog(t *testing.T) {
	ci := NewCourseIndex()
	ci.Fit([]types.Course{
		{Name: "Python Data Analysis", CombinedText: "python data analysis course"},
		{Name: "Floral Design", CombinedText: "floral design workshop"},
		{Name: "Python ML Basics", CombinedText: "python machine learning basics"},
	})

	matches, err := ci.Rank("I want to learn python for data science", 2, 0.05)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	// Both python courses outrank the floral workshop, which scores
	// below the floor and never appears.
	assert.Equal(t, "Python Data Analysis", matches[0].Course.Name)
	assert.Equal(t, "Python ML Basics", matches[1].Course.Name)
	for _, m := range matches {
		assert.GreaterOrEqual(t, m.Score, 0.05)
	}
}

func TestCourseIndex_MinScoreCutsResults(t *testing.T) {
	ci := NewCourseIndex()
	ci.Fit(testCourses())

	matches, err := ci.Rank("python python datos", 5, 0.9)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Python para análisis", matches[0].Course.Name)
}

func TestCourseIndex_NoOverlapNoMatches(t *testing.T) {
	ci := NewCourseIndex()
	ci.Fit(testCourses())

	matches, err := ci.Rank("astronomía telescopios planetas", 5, 0.05)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestCourseIndex_RepeatCallsIdentical(t *testing.T) {
	ci := NewCourseIndex()
	ci.Fit(testCourses())

	first, err := ci.Rank("python datos", 5, 0.01)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := ci.Rank("python datos", 5, 0.01)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCourseIndex_JustificationMentionsDomainAndSkills(t *testing.T) {
	ci := NewCourseIndex()
	ci.Fit(testCourses())

	matches, err := ci.Rank("python datos", 1, 0.01)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.Contains(t, matches[0].Justification, "Data Science")
	assert.Contains(t, matches[0].Justification, "score")
	assert.Contains(t, matches[0].Justification, "python")
}

func TestSpecializationIndex_Rank(t *testing.T) {
	si := NewSpecializationIndex()
	si.Fit([]types.Specialization{
		{
			Name:         "Análisis de Datos",
			Domain:       "Data Science",
			NumCourses:   5,
			CombinedText: "análisis de datos python estadística",
		},
		{
			Name:         "Gestión de Proyectos",
			Domain:       "Business",
			NumCourses:   4,
			CombinedText: "gestión proyectos liderazgo equipos",
		},
	})
	assert.Equal(t, 2, si.Size())

	matches, err := si.Rank("curso sobre python y estadística para datos", 5, 0.05)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "Análisis de Datos", matches[0].Specialization.Name)
	assert.Contains(t, matches[0].Justification, "Data Science")
	assert.Contains(t, matches[0].Justification, "5 cursos")
}

func TestSpecializationIndex_RankBeforeFit(t *testing.T) {
	si := NewSpecializationIndex()

	_, err := si.Rank("python", 5, 0.05)
	var nfe *NotFittedError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "specialization", nfe.Index)
}

func TestCourseIndex_TieBreaksByCatalogOrder(t *testing.T) {
	ci := NewCourseIndex()
	ci.Fit([]types.Course{
		{Name: "Primero", CombinedText: "química laboratorio química laboratorio"},
		{Name: "Segundo", CombinedText: "química laboratorio química laboratorio"},
		{Name: "Tercero", CombinedText: "historia arte moderno renacimiento"},
	})

	matches, err := ci.Rank("química laboratorio", 2, 0.01)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Primero", matches[0].Course.Name)
	assert.Equal(t, "Segundo", matches[1].Course.Name)
	assert.Equal(t, matches[0].Score, matches[1].Score)
}
