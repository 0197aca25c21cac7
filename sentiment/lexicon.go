package sentiment

// Lexicon groups the curated word lists the scorer matches against.
// Instances are immutable after construction and safe for concurrent use.
type Lexicon struct {
	Positive []string
	Negative []string
	Emotions map[string][]string
	Topics   []TopicRule
}

// TopicRule maps trigger words to a coarse topic label.
// The rule fires when any trigger appears in the text.
type TopicRule struct {
	Triggers []string
	Topic    string
}

// DefaultLexicon returns the curated Spanish lexicon for professor reviews.
// Words are matched on lowercased text, so entries are lowercase.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Positive: []string{
			"excelente", "bueno", "buena", "claro", "clara", "justo", "justa",
			"amable", "paciente", "dedicado", "dedicada", "recomiendo",
			"aprendi", "aprendí", "dinamico", "dinámico", "organizado", "puntual",
		},
		Negative: []string{
			"malo", "mala", "pesimo", "pésimo", "injusto", "injusta", "aburrido",
			"aburrida", "confuso", "confusa", "grosero", "grosera", "arrogante",
			"desorganizado", "impuntual", "dificil", "difícil", "terrible",
		},
		Emotions: map[string][]string{
			"joy":      {"feliz", "contento", "disfrute", "disfruté", "encanta", "genial"},
			"anger":    {"molesto", "enojado", "furioso", "indignado", "rabia"},
			"fear":     {"miedo", "temor", "nervioso", "intimidante", "asusta"},
			"sadness":  {"triste", "decepcion", "decepción", "lamentable", "frustrado"},
			"surprise": {"sorprendente", "increible", "increíble", "inesperado", "asombroso"},
		},
		Topics: []TopicRule{
			{Triggers: []string{"examen", "prueba"}, Topic: "evaluación"},
			{Triggers: []string{"explica", "clase"}, Topic: "enseñanza"},
			{Triggers: []string{"tarea", "proyecto"}, Topic: "carga de trabajo"},
			{Triggers: []string{"correo", "responde"}, Topic: "disponibilidad"},
			{Triggers: []string{"nota", "calificacion", "calificación"}, Topic: "calificaciones"},
		},
	}
}
