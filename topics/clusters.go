package topics

// Cluster is one named group of keywords describing a qualitative aspect
// of a review. Clusters are immutable after construction.
type Cluster struct {
	ID       string
	Name     string
	Keywords []string
}

// Markers are the polarity words inspected around each keyword occurrence
// when deriving per-topic sentiment.
type Markers struct {
	Positive []string
	Negative []string
}

// DefaultClusters returns the five fixed topic clusters, in declaration
// order. The order matters: it is the tie-break when weights are equal.
func DefaultClusters() []Cluster {
	return []Cluster{
		{
			ID:   "teaching_quality",
			Name: "Calidad de enseñanza",
			Keywords: []string{
				"explica", "enseña", "clase", "metodologia", "metodología",
				"didactico", "didáctico", "aprende", "pedagogia", "pedagogía",
			},
		},
		{
			ID:   "personality",
			Name: "Personalidad",
			Keywords: []string{
				"amable", "trato", "respeto", "caracter", "carácter",
				"actitud", "paciencia", "humor", "grosero",
			},
		},
		{
			ID:   "evaluation",
			Name: "Evaluación",
			Keywords: []string{
				"examen", "prueba", "nota", "calificacion", "calificación",
				"corrige", "parcial", "evaluacion", "evaluación",
			},
		},
		{
			ID:   "availability",
			Name: "Disponibilidad",
			Keywords: []string{
				"disponible", "responde", "correo", "horario", "consulta",
				"atiende", "oficina",
			},
		},
		{
			ID:   "course_content",
			Name: "Contenido del curso",
			Keywords: []string{
				"material", "contenido", "programa", "temas", "libro",
				"actualizado", "practica", "práctica",
			},
		},
	}
}

// DefaultMarkers returns the polarity markers used for windowed
// per-topic sentiment.
func DefaultMarkers() Markers {
	return Markers{
		// "justo" is intentionally absent: it is a substring of "injusto"
		// and would cancel the negative marker inside the same window.
		Positive: []string{"excelente", "bueno", "buena", "claro", "bien", "facil", "fácil"},
		Negative: []string{"malo", "mala", "injusto", "confuso", "aburrido", "dificil", "difícil", "terrible"},
	}
}

// CategoryRule derives a coarse category label from simple phrase containment.
type CategoryRule struct {
	Phrase   string
	Category string
}

func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{Phrase: "recomiendo", Category: "recomendado"},
		{Phrase: "no lo recomiendo", Category: "no recomendado"},
		{Phrase: "volveria a tomar", Category: "repetiría"},
		{Phrase: "volvería a tomar", Category: "repetiría"},
		{Phrase: "mucha tarea", Category: "carga alta"},
	}
}
