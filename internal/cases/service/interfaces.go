package service

import (
	"context"

	"contactcentre/internal/cases/models"
	"contactcentre/pkg/domain"
)

// CaseDirectory reads cases from the case service and allocates questionnaire ids.
// Error Contract: failures are *client.Error values; a missing case has category not_found.
type CaseDirectory interface {
	GetCaseByID(ctx context.Context, id domain.CaseID, includeEvents bool) (*models.Case, error)
	GetCasesByUPRN(ctx context.Context, uprn domain.UPRN, includeEvents bool) ([]models.Case, error)
	GetCaseByRef(ctx context.Context, ref domain.CaseRef, includeEvents bool) (*models.Case, error)
	AllocateQuestionnaireID(ctx context.Context, caseID domain.CaseID, individual bool, individualCaseID *domain.CaseID) (*models.QuestionnaireAllocation, error)
}

// ProductCatalog searches fulfilment products. An empty result is not an error.
type ProductCatalog interface {
	Search(ctx context.Context, criteria models.ProductCriteria) ([]models.Product, error)
}

// TokenIssuer signs questionnaire launch tokens.
type TokenIssuer interface {
	IssueLaunchToken(ctx context.Context, req models.LaunchTokenRequest) (string, error)
}

// EventPublisher publishes one domain event and returns its transaction id.
type EventPublisher interface {
	Publish(ctx context.Context, eventType models.EventType, source, channel string, payload any) (domain.TransactionID, error)
}

// CaseCache holds skeleton records for cases the directory may not know yet.
// Error Contract: Get methods return sentinel.ErrNotFound on a miss.
type CaseCache interface {
	Put(ctx context.Context, c models.CachedCase) error
	GetByID(ctx context.Context, id domain.CaseID) (*models.CachedCase, error)
	GetByUPRN(ctx context.Context, uprn domain.UPRN) (*models.CachedCase, error)
}
