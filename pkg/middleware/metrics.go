package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/reducto/pkg/domain"
	"github.com/aretw0/reducto/pkg/store"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated by Instrument.
type Metrics struct {
	dispatches *prometheus.CounterVec
	panics     *prometheus.CounterVec
	swallowed  *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates the dispatch collectors and registers them with reg.
// Collectors already registered under the same names are reused.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_total",
				Help:      "Total number of dispatched actions",
			},
			[]string{"kind"},
		),
		panics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_panics_total",
				Help:      "Total number of dispatches that panicked",
			},
			[]string{"kind"},
		),
		swallowed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_swallowed_total",
				Help:      "Total number of actions the rest of the chain never forwarded",
			},
			[]string{"kind"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "dispatch_duration_seconds",
				Help:      "Duration of dispatches through the rest of the chain",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"kind"},
		),
	}

	var err error
	if m.dispatches, err = register(reg, m.dispatches); err != nil {
		return nil, err
	}
	if m.panics, err = register(reg, m.panics); err != nil {
		return nil, err
	}
	if m.swallowed, err = register(reg, m.swallowed); err != nil {
		return nil, err
	}
	if m.duration, err = register(reg, m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("failed to register metrics: %w", err)
	}
	return c, nil
}

// Instrument records a count and a duration for every dispatch, labeled by action kind.
// Panics are re-raised after being counted. An action is counted as swallowed when the
// rest of the chain returns without ever reaching the store.
//
// Place Instrument last to observe filtering middleware ahead of it as the store sees it,
// or first to measure the whole chain.
func Instrument[S any](m *Metrics) store.Middleware[S] {
	return func(api store.API[S]) func(store.DispatchFunc) store.DispatchFunc {
		return func(next store.DispatchFunc) store.DispatchFunc {
			return func(action domain.Action) {
				kind := domain.KindName(action)
				start := time.Now()
				completed := false
				reached := false
				unsub := api.Subscribe(func(S) { reached = true })
				defer func() {
					unsub()
					m.dispatches.WithLabelValues(kind).Inc()
					m.duration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
					switch {
					case !completed:
						m.panics.WithLabelValues(kind).Inc()
					case !reached:
						m.swallowed.WithLabelValues(kind).Inc()
					}
				}()
				next(action)
				completed = true
			}
		}
	}
}
