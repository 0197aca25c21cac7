package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"califica-tu-profe/providers"
)

// Spanish reason strings surfaced to callers. Local reasons always precede
// provider reasons in a verdict.
const (
	reasonInappropriate = "Contenido inapropiado detectado"
	reasonSpam          = "Indicadores de spam o enlaces comerciales"
	reasonFake          = "Texto demasiado corto o repetitivo"
	reasonUnavailable   = "Servicio de moderación no disponible, contenido rechazado por precaución"
)

// AuditSink receives blocked verdicts for later administrative review.
// Indexing is best effort: a sink failure never alters the verdict.
type AuditSink interface {
	IndexVerdict(excerpt string, reasons []string, confidence float64) error
}

// Engine combines the local heuristics with the external signal aggregator
// into a single allow/block decision. Stateless: a fresh verdict per call.
type Engine struct {
	detector   Detector
	aggregator providers.IAggregator
	audit      AuditSink
	threshold  float64
	excerptLen int
	log        *slog.Logger
}

func NewEngine(detector Detector, aggregator providers.IAggregator, audit AuditSink,
	threshold float64, excerptLen int, log *slog.Logger) Engine {
	return Engine{
		detector:   detector,
		aggregator: aggregator,
		audit:      audit,
		threshold:  threshold,
		excerptLen: excerptLen,
		log:        log,
	}
}

type gatherResult struct {
	signals []providers.Signal
	err     error
}

// Moderate evaluates the text and returns the verdict. Local heuristics and
// the provider fan-out run concurrently and are joined before deciding;
// neither leg depends on the other. Provider errors never propagate: total
// unavailability flips the verdict to blocked instead (fail-safe policy).
func (e Engine) Moderate(ctx context.Context, text, userID string) Verdict {
	external := make(chan gatherResult, 1)
	go func() {
		signals, err := e.aggregator.Gather(ctx, text)
		external <- gatherResult{signals: signals, err: err}
	}()

	flags := e.detector.Evaluate(text)
	gathered := <-external

	verdict := Verdict{Allowed: true}
	verdict.Scores.Local = &LocalScore{Score: flags.Score, Label: localLabel(flags)}
	verdict.Scores.Providers = gathered.signals

	if flags.Inappropriate {
		verdict.Reasons = append(verdict.Reasons, reasonInappropriate)
	}
	if flags.Spam {
		verdict.Reasons = append(verdict.Reasons, reasonSpam)
	}
	if flags.Fake {
		verdict.Reasons = append(verdict.Reasons, reasonFake)
	}
	if flags.Any() {
		verdict.Allowed = false
		verdict.Confidence = flags.Score
	}

	for _, signal := range gathered.signals {
		if signal.Flagged || signal.Score > e.threshold {
			verdict.Allowed = false
			verdict.Reasons = append(verdict.Reasons,
				fmt.Sprintf("Señalado por %s (puntuación %.2f)", signal.Provider, signal.Score))
		}
		if signal.Score > verdict.Confidence {
			verdict.Confidence = signal.Score
		}
	}

	if gathered.err != nil {
		// Can't check means must block: safety over availability.
		e.log.Warn("External aggregation unavailable, applying fail-safe block",
			"user_id", userID, "error", gathered.err)
		verdict.Allowed = false
		verdict.Reasons = append(verdict.Reasons, reasonUnavailable)
	}

	if verdict.Allowed {
		return verdict
	}

	verdict.FlaggedContent = e.excerpt(text)
	if e.audit != nil {
		if err := e.audit.IndexVerdict(verdict.FlaggedContent, verdict.Reasons, verdict.Confidence); err != nil {
			e.log.Warn("Audit indexing failed", "error", err)
		}
	}
	return verdict
}

// excerpt returns the head of the offending text with profanity starred
// out, sized for the admin review screen.
func (e Engine) excerpt(text string) string {
	censored, _ := e.detector.Censor(text)
	runes := []rune(censored)
	if len(runes) > e.excerptLen {
		return string(runes[:e.excerptLen])
	}
	return censored
}

func localLabel(flags Flags) string {
	if flags.Any() {
		return "flagged"
	}
	return "clean"
}
