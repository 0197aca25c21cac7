//go:generate go run go.uber.org/mock/mockgen -source=aggregator.go -destination=../mocks/mock_aggregator.go -package=mocks
package providers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"califica-tu-profe/errors"
)

// IAggregator fans one text out to the configured providers and collects
// their normalized signals.
type IAggregator interface {
	Gather(ctx context.Context, text string) ([]Signal, error)
}

// FailureRecorder counts individual provider call failures, feeding the
// stats endpoint.
type FailureRecorder interface {
	RecordProviderFailure()
}

// Aggregator calls every configured provider concurrently, each under its
// own timeout. Individual failures are logged and omitted from the result;
// only the loss of every provider is surfaced as errors.ErrAllProvidersDown
// so the decision engine can apply its fail-safe policy.
type Aggregator struct {
	providers []Provider
	timeout   time.Duration
	failures  FailureRecorder
	log       *slog.Logger
}

func NewAggregator(providers []Provider, timeout time.Duration, log *slog.Logger) Aggregator {
	return Aggregator{providers: providers, timeout: timeout, log: log}
}

// WithFailureRecorder returns a copy of the aggregator that reports provider
// call failures to the given recorder.
func (a Aggregator) WithFailureRecorder(recorder FailureRecorder) Aggregator {
	a.failures = recorder
	return a
}

func (a Aggregator) Gather(ctx context.Context, text string) ([]Signal, error) {
	if len(a.providers) == 0 {
		return nil, errors.ErrAllProvidersDown
	}

	results := make(chan Signal, len(a.providers))
	var wg sync.WaitGroup

	for _, provider := range a.providers {
		wg.Add(1)
		go func(p Provider) {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, a.timeout)
			defer cancel()

			signal, err := p.Classify(callCtx, text)
			if err != nil {
				a.log.Warn("Provider unavailable, omitting its signal",
					"provider", p.Name(), "error", err)
				if a.failures != nil {
					a.failures.RecordProviderFailure()
				}
				return
			}
			results <- signal
		}(provider)
	}

	wg.Wait()
	close(results)

	var signals []Signal
	for signal := range results {
		signals = append(signals, signal)
	}

	if len(signals) == 0 {
		return nil, fmt.Errorf("%w: %d providers configured", errors.ErrAllProvidersDown, len(a.providers))
	}
	return signals, nil
}
