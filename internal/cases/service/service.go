// Package service holds the contact-centre orchestration rules: case lookup,
// fulfilment, refusal, questionnaire launch and case modification.
package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks CaseDirectory,ProductCatalog,TokenIssuer,EventPublisher,CaseCache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"contactcentre/internal/cases/client"
	"contactcentre/internal/cases/metrics"
	"contactcentre/internal/cases/models"
	"contactcentre/pkg/domain"
	dErrors "contactcentre/pkg/domain-errors"
	"contactcentre/pkg/requestcontext"
)

// Service coordinates the case directory, product catalog, token issuer and event bus.
// It holds no per-request state.
type Service struct {
	directory CaseDirectory
	catalog   ProductCatalog
	tokens    TokenIssuer
	publisher EventPublisher
	cache     CaseCache
	metrics   *metrics.Metrics
	logger    *slog.Logger

	eventWhitelist []string
	eqHost         string
	language       string
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithCache enables cache write-through and fallback on directory misses.
func WithCache(cache CaseCache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithEventWhitelist sets the case event categories returned to operators.
func WithEventWhitelist(categories []string) Option {
	return func(s *Service) {
		s.eventWhitelist = append([]string(nil), categories...)
	}
}

// WithEQHost sets the questionnaire host used in launch URLs.
func WithEQHost(host string) Option {
	return func(s *Service) {
		s.eqHost = host
	}
}

// WithLanguage sets the language code signed into launch tokens.
func WithLanguage(code string) Option {
	return func(s *Service) {
		s.language = code
	}
}

// New creates the orchestration service.
func New(directory CaseDirectory, catalog ProductCatalog, tokens TokenIssuer, publisher EventPublisher, opts ...Option) *Service {
	s := &Service{
		directory: directory,
		catalog:   catalog,
		tokens:    tokens,
		publisher: publisher,
		logger:    slog.Default(),
		eqHost:    "localhost",
		language:  "en",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// pinTime fixes the request clock so the event envelope and the acknowledgement
// carry the same instant.
func pinTime(ctx context.Context) (context.Context, time.Time) {
	now := requestcontext.Now(ctx)
	return requestcontext.WithTime(ctx, now), now
}

// publish sends one event stamped with this service's source and channel.
func (s *Service) publish(ctx context.Context, eventType models.EventType, payload any) (domain.TransactionID, error) {
	txID, err := s.publisher.Publish(ctx, eventType, models.EventSource, models.EventChannel, payload)
	if err != nil {
		s.logger.ErrorContext(ctx, "event publish failed",
			"event_type", eventType,
			"error", err,
		)
		return domain.TransactionID{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to publish event")
	}
	s.metrics.RecordEventPublished(string(eventType))
	s.logger.InfoContext(ctx, "event published",
		"event_type", eventType,
		"transaction_id", txID.String(),
	)
	return txID, nil
}

// translateDirectoryError converts case directory failures to domain errors.
func (s *Service) translateDirectoryError(err error) error {
	var de *client.Error
	if errors.As(err, &de) {
		switch de.Category {
		case client.ErrorTimeout:
			return dErrors.Wrap(err, dErrors.CodeTimeout, "case service timed out")
		case client.ErrorNotFound:
			return dErrors.Wrap(err, dErrors.CodeNotFound, "case not found")
		case client.ErrorAuthentication:
			return dErrors.Wrap(err, dErrors.CodeInternal, "case service authentication failed")
		case client.ErrorRateLimited:
			return dErrors.Wrap(err, dErrors.CodeInternal, "case service rate limited")
		case client.ErrorOutage:
			return dErrors.Wrap(err, dErrors.CodeInternal, "case service unavailable")
		case client.ErrorBadData:
			return dErrors.Wrap(err, dErrors.CodeBadRequest, de.Message)
		default:
			return dErrors.Wrap(err, dErrors.CodeInternal, "case service call failed")
		}
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "case service call failed")
}

// fetchCaseForUpdate loads a case a mutating flow depends on. A missing case is a
// system error here, not a not-found: the operator already selected it.
func (s *Service) fetchCaseForUpdate(ctx context.Context, id domain.CaseID) (*models.Case, error) {
	c, err := s.directory.GetCaseByID(ctx, id, false)
	if err != nil {
		if client.IsNotFound(err) {
			return nil, dErrors.Override(err, dErrors.CodeInternal, "case not found: "+id.String())
		}
		return nil, s.translateDirectoryError(err)
	}
	return c, nil
}
