package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCoursesCSV = `Course Name,University / Industry Partner Name,Difficulty Level,Avg Total Learning Hours,Course Rating,Course URL,Course Description,Skills Learned,Core Skills,Domain,Sub-Domain,Course Language
Fundamentos de Python,Universidad X,Beginner,10,4.5,https://example.com/python,Curso introductorio de programación en Python para análisis de datos,"python, programación","python",Data Science,Data Analysis,Spanish
Bases de datos SQL,Universidad Y,Beginner,8,4.2,https://example.com/sql,Diseño y consulta de bases de datos relacionales con SQL,"sql, bases de datos","sql",Information Technology,Data Management,Spanish
Marketing digital,Universidad Z,Beginner,6,4.0,https://example.com/mkt,Estrategias de marketing digital y redes sociales,"marketing, redes sociales","marketing",Business,Marketing,Spanish
`

const testSpecsCSV = `Specialization Name,Partners,Number of Courses,Specialization Primary Domain,Specialization Primary Subdomain,Specialization Description,Difficulty Level,Specialization URL,Specialization Type
Análisis de Datos,Universidad X,5,Data Science,Data Analysis,Programa completo de análisis de datos con Python y SQL,Beginner,https://example.com/spec,Specialization
`

// writeCatalogFixtures writes minimal course and specialization catalogs
// into dir and returns their paths.
func writeCatalogFixtures(t *testing.T, dir string) (string, string) {
	t.Helper()

	coursesPath := filepath.Join(dir, "courses.csv")
	require.NoError(t, os.WriteFile(coursesPath, []byte(testCoursesCSV), 0644))

	specsPath := filepath.Join(dir, "specializations.csv")
	require.NoError(t, os.WriteFile(specsPath, []byte(testSpecsCSV), 0644))

	return coursesPath, specsPath
}

func TestAnalyzeCommand_MissingDoc(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	coursesPath, specsPath := writeCatalogFixtures(t, tmpDir)

	cmd := exec.Command(binaryPath, "analyze", "--courses", coursesPath, "--specializations", specsPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--doc is required")
}

func TestAnalyzeCommand_MissingCatalog(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	docPath := filepath.Join(tmpDir, "doc.txt")
	require.NoError(t, os.WriteFile(docPath, []byte("Curso de programación en Python y análisis de datos."), 0644))

	cmd := exec.Command(binaryPath, "analyze", "--doc", docPath, "--courses", filepath.Join(tmpDir, "missing.csv"))
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "not found")
}

func TestAnalyzeCommand_WritesOutputFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	coursesPath, specsPath := writeCatalogFixtures(t, tmpDir)

	docPath := filepath.Join(tmpDir, "doc.txt")
	docText := "Programa docente de programación en Python. El curso cubre análisis de datos, consultas SQL y visualización de resultados para estudiantes de posgrado."
	require.NoError(t, os.WriteFile(docPath, []byte(docText), 0644))

	outPath := filepath.Join(tmpDir, "recommendations.json")

	cmd := exec.Command(binaryPath, "analyze",
		"--doc", docPath,
		"--courses", coursesPath,
		"--specializations", specsPath,
		"--out", outPath,
	)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "analyze should succeed: %s", string(output))

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "\"terms\"")
	assert.Contains(t, string(content), "\"courses\"")
}

func TestAnalyzeCommand_InvalidConfig(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"min_score": 5}`), 0644))

	cmd := exec.Command(binaryPath, "analyze", "--config", configPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "min_score")
}
