package extraction

// stopWordList is the fixed bilingual stop-word set used for term
// extraction and catalog vectorization. Besides general Spanish and
// English function words it carries academic filler common in course
// programs (syllabus headers, evaluation sections) that would otherwise
// dominate the extracted terms.
var stopWordList = []string{
	// Spanish function words and auxiliaries.
	"de", "la", "que", "el", "en", "y", "a", "los", "del", "se", "las", "por",
	"un", "para", "con", "no", "una", "su", "al", "lo", "como", "más", "pero",
	"sus", "le", "ya", "o", "este", "sí", "porque", "esta", "entre", "cuando",
	"muy", "sin", "sobre", "también", "me", "hasta", "hay", "donde", "quien",
	"desde", "todo", "nos", "durante", "todos", "uno", "les", "ni", "contra",
	"otros", "ese", "eso", "ante", "ellos", "e", "esto", "mí", "antes", "algunos",
	"qué", "unos", "yo", "otro", "otras", "otra", "él", "tanto", "esa", "estos",
	"mucho", "quienes", "nada", "muchos", "cual", "poco", "ella", "estar", "estas",
	"algunas", "algo", "nosotros", "mi", "mis", "tú", "te", "ti", "tu", "tus",
	"ellas", "nosotras", "vosotros", "vosotras", "os", "mío", "mía", "míos",
	"mías", "tuyo", "tuya", "tuyos", "tuyas", "suyo", "suya", "suyos", "suyas",
	"nuestro", "nuestra", "nuestros", "nuestras", "vuestro", "vuestra", "vuestros",
	"vuestras", "esos", "esas", "estoy", "estás", "está", "estamos", "estáis",
	"están", "esté", "estés", "estemos", "estéis", "estén", "estaré", "estarás",
	"estará", "estaremos", "estaréis", "estarán", "estaría", "estarías",
	"estaríamos", "estaríais", "estarían", "estaba", "estabas", "estábamos",
	"estabais", "estaban", "estuve", "estuviste", "estuvo", "estuvimos",
	"estuvisteis", "estuvieron", "ser", "soy", "eres", "es", "somos", "sois",
	"son", "sea", "seas", "seamos", "seáis", "sean", "seré", "serás", "será",
	"seremos", "seréis", "serán", "sería", "serías", "seríamos", "seríais",
	"serían", "era", "eras", "éramos", "erais", "eran", "fui", "fuiste", "fue",
	"fuimos", "fuisteis", "fueron", "haber", "he", "has", "ha", "hemos", "habéis",
	"han", "haya", "hayas", "hayamos", "hayáis", "hayan", "habré", "habrás",
	"habrá", "habremos", "habréis", "habrán", "habría", "habrías", "habríamos",
	"habríais", "habrían", "había", "habías", "habíamos", "habíais", "habían",
	"hube", "hubiste", "hubo", "hubimos", "hubisteis", "hubieron", "tener",
	"tengo", "tienes", "tiene", "tenemos", "tenéis", "tienen", "tenga", "tengas",
	"tengamos", "tengáis", "tengan", "tendré", "tendrás", "tendrá", "tendremos",
	"tendréis", "tendrán", "tendría", "tendrías", "tendríamos", "tendríais",
	"tendrían", "tenía", "tenías", "teníamos", "teníais", "tenían", "tuve",
	"tuviste", "tuvo", "tuvimos", "tuvisteis", "tuvieron", "hacer", "hago",
	"haces", "hace", "hacemos", "hacéis", "hacen", "haga", "hagas", "hagamos",
	"hagáis", "hagan", "haré", "harás", "hará", "haremos", "haréis", "harán",
	"haría", "harías", "haríamos", "haríais", "harían", "hacía", "hacías",
	"hacíamos", "hacíais", "hacían", "hice", "hiciste", "hizo", "hicimos",
	"hicisteis", "hicieron", "poder", "puedo", "puedes", "puede", "podemos",
	"podéis", "pueden", "ir", "voy", "vas", "va", "vamos", "vais", "van",

	// English function words.
	"the", "of", "and", "to", "in", "is", "that", "for", "it", "with",
	"as", "on", "was", "at", "by", "an", "be", "this", "from", "or", "are",
	"but", "not", "you", "all", "can", "had", "her", "one", "our", "out",
	"will", "their", "been", "would", "each", "which", "do", "how",
	"if", "its", "than", "up", "other", "about", "into", "more", "your",
	"them", "way", "could", "these", "may", "use", "such", "then", "new",
	"also", "should", "did", "between", "after", "just", "some", "time",
	"very", "when", "who", "any", "only", "well", "through",

	// Academic filler, English.
	"course", "learn", "learning", "students", "student", "using", "based",
	"including", "concepts", "skills", "knowledge", "understand", "apply",
	"able", "work", "working", "used", "different", "includes", "provide",
	"provided", "practice", "practices", "approach", "approaches",

	// Academic filler, Spanish.
	"curso", "cursos", "aprender", "aprendizaje", "estudiantes", "estudiante",
	"conocimientos", "habilidades", "competencias", "comprender", "aplicar",
	"capaz", "trabajo", "trabajar", "utilizar", "diferentes", "incluye",
	"incluyen", "proporcionar", "práctica", "prácticas", "enfoque", "enfoques",
	"nombre", "materia", "docente", "semestre", "periodo", "modalidad",
	"presentación", "sesión", "horas", "duración", "horario", "atención",
	"correo", "electrónico", "asesorías", "asesoria", "virtual", "presencial",
	"requisitos", "evaluación", "bibliografía", "temario", "objetivo", "objetivos",
	"introducción", "parte", "capítulo", "unidad", "tema", "temas", "contenido",
	"actividades", "alumnos", "alumno",
	"desarrollo", "diseño", "diseno", "herramientas", "implementación", "implementacion",
	"fundamentos", "principios", "técnicas", "tecnicas", "proyecto", "proyectos",
	"taller", "seminario", "diplomado", "general", "programa", "módulo", "modulo",
}

var stopWords = func() map[string]struct{} {
	set := make(map[string]struct{}, len(stopWordList))
	for _, w := range stopWordList {
		set[w] = struct{}{}
	}
	return set
}()

// IsStopWord reports whether the lowercased word belongs to the fixed
// bilingual stop-word set.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// StopWords returns the stop-word set shared with the catalog vectorizer.
func StopWords() map[string]struct{} {
	return stopWords
}
