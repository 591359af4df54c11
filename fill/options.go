package fill

import (
	"log/slog"

	"github.com/martinjakubec/fxproxy/metrics"
)

type Option func(s *Service)

// WithLogger specifies the logger for the service
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithMetrics specifies the metrics sink for the service
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithRestricted marks the upstream provider tier as having no
// historic-data access, enabling the synthetic-data fallback
func WithRestricted(restricted bool) Option {
	return func(s *Service) {
		s.restricted = restricted
	}
}

// WithReference specifies the reference-rate source for synthetic snapshots
func WithReference(r Reference) Option {
	return func(s *Service) {
		s.reference = r
	}
}
