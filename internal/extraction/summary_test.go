package extraction

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, "", Summarize(""))
	assert.Equal(t, "", Summarize("Introducción"))
}

func TestSummarize_SkipsHeadingsAndFragments(t *testing.T) {
	text := "Unidad 1\n" +
		"Este curso presenta los fundamentos de la programación estructurada en Python.\n" +
		"Objetivos\n" +
		"Los estudiantes desarrollarán programas que procesan datos reales de laboratorio."

	summary := Summarize(text)

	assert.Contains(t, summary, "fundamentos de la programación")
	assert.Contains(t, summary, "datos reales de laboratorio")
	assert.NotContains(t, summary, "Unidad 1")
	assert.NotContains(t, summary, "Objetivos")
}

func TestSummarize_CapsSentenceCount(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 20; i++ {
		sb.WriteString("Esta es una frase suficientemente larga para el resumen extractivo. ")
	}

	summary := Summarize(sb.String())

	assert.Equal(t, 8, strings.Count(summary, "."))
}

func TestSummarize_EndsWithPeriod(t *testing.T) {
	summary := Summarize("El documento describe una metodología activa de enseñanza universitaria")

	assert.True(t, strings.HasSuffix(summary, "."))
}
