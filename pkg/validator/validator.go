// Package validator wraps the CNP check for hosts that want to observe it.
//
// Service.Validate returns the same result as cnp.Validate and additionally
// reports the outcome of every call to a Recorder and logs rejections at
// Debug. The code being validated is never logged.
package validator

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"cnpcheck/internal/cnp"
	"cnpcheck/internal/platform/config"
	"cnpcheck/internal/platform/logger"
	"cnpcheck/internal/platform/metrics"
)

// Recorder receives the outcome label of every validation.
type Recorder interface {
	RecordOutcome(outcome string)
}

type noopRecorder struct{}

func (noopRecorder) RecordOutcome(string) {}

// Service wraps the pure CNP check with logging and outcome recording.
// The raw code is never logged.
type Service struct {
	logger   *slog.Logger
	recorder Recorder
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithRecorder(recorder Recorder) Option {
	return func(s *Service) {
		s.recorder = recorder
	}
}

func New(opts ...Option) *Service {
	svc := &Service{
		logger:   logger.Discard(),
		recorder: noopRecorder{},
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = logger.Discard()
	}
	if svc.recorder == nil {
		svc.recorder = noopRecorder{}
	}
	return svc
}

// NewFromConfig wires a JSON logger and, when enabled, Prometheus metrics
// registered with reg. Services built against the same registerer share one
// counter.
func NewFromConfig(cfg config.Validation, reg prometheus.Registerer) (*Service, error) {
	opts := []Option{WithLogger(logger.New(cfg.LogLevel))}
	if cfg.MetricsEnabled {
		if reg == nil {
			return nil, fmt.Errorf("metrics registerer is required when metrics are enabled")
		}
		m, err := metrics.New(cfg.MetricsNamespace, reg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithRecorder(m))
	}
	return New(opts...), nil
}

// Validate reports whether candidate is a valid CNP.
func (s *Service) Validate(candidate string) bool {
	err := cnp.Check(candidate)
	outcome := cnp.Reason(err)
	s.recorder.RecordOutcome(outcome)

	if err != nil {
		s.logger.Debug("cnp rejected",
			"reason", outcome,
			"length", len(strings.TrimSpace(candidate)),
		)
		return false
	}
	return true
}
