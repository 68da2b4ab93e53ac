package service

import (
	"context"
	"errors"
	"time"

	"contactcentre/internal/cases/client"
	"contactcentre/internal/cases/metrics"
	"contactcentre/internal/cases/models"
	"contactcentre/pkg/domain"
	dErrors "contactcentre/pkg/domain-errors"
	"contactcentre/pkg/platform/sentinel"
)

const (
	lookupByID   = "id"
	lookupByUPRN = "uprn"
	lookupByRef  = "ref"
)

// GetCaseByID returns an addressable case. A directory miss falls back to the case
// cache when one is configured; found cases are written through to it.
func (s *Service) GetCaseByID(ctx context.Context, id domain.CaseID, includeEvents bool) (*models.CaseDTO, error) {
	start := time.Now()
	c, err := s.directory.GetCaseByID(ctx, id, includeEvents)
	if err != nil {
		if client.IsNotFound(err) {
			if dto, ok, cacheErr := s.cachedByID(ctx, id, includeEvents); cacheErr != nil {
				s.recordLookup(lookupByID, cacheErr, start)
				return nil, cacheErr
			} else if ok {
				s.recordLookup(lookupByID, nil, start)
				return dto, nil
			}
		}
		err = s.translateDirectoryError(err)
		s.recordLookup(lookupByID, err, start)
		return nil, err
	}

	if err := checkAddressable(c.CaseType); err != nil {
		s.recordLookup(lookupByID, err, start)
		return nil, err
	}
	s.writeThrough(ctx, c)

	dto := models.NewCaseDTO(c, includeEvents, s.eventWhitelist)
	s.recordLookup(lookupByID, nil, start)
	return &dto, nil
}

// GetCaseByUPRN returns every addressable case at a property in directory order.
// HI and unrecognised types are dropped rather than failing the lookup.
func (s *Service) GetCaseByUPRN(ctx context.Context, uprn domain.UPRN, includeEvents bool) ([]models.CaseDTO, error) {
	start := time.Now()
	cases, err := s.directory.GetCasesByUPRN(ctx, uprn, includeEvents)
	if err != nil && !client.IsNotFound(err) {
		err = s.translateDirectoryError(err)
		s.recordLookup(lookupByUPRN, err, start)
		return nil, err
	}

	if len(cases) == 0 {
		dtos, cacheErr := s.cachedByUPRN(ctx, uprn, includeEvents)
		s.recordLookup(lookupByUPRN, cacheErr, start)
		return dtos, cacheErr
	}

	// Sequential filter: callers observe result order.
	dtos := make([]models.CaseDTO, 0, len(cases))
	for i := range cases {
		if checkAddressable(cases[i].CaseType) != nil {
			continue
		}
		dtos = append(dtos, models.NewCaseDTO(&cases[i], includeEvents, s.eventWhitelist))
	}
	s.recordLookup(lookupByUPRN, nil, start)
	return dtos, nil
}

// GetCaseByReference returns an addressable case by its numeric reference.
func (s *Service) GetCaseByReference(ctx context.Context, ref domain.CaseRef, includeEvents bool) (*models.CaseDTO, error) {
	start := time.Now()
	c, err := s.directory.GetCaseByRef(ctx, ref, includeEvents)
	if err != nil {
		err = s.translateDirectoryError(err)
		s.recordLookup(lookupByRef, err, start)
		return nil, err
	}
	if err := checkAddressable(c.CaseType); err != nil {
		s.recordLookup(lookupByRef, err, start)
		return nil, err
	}

	dto := models.NewCaseDTO(c, includeEvents, s.eventWhitelist)
	s.recordLookup(lookupByRef, nil, start)
	return &dto, nil
}

// checkAddressable rejects case types operators may not look up directly.
func checkAddressable(ct models.CaseType) error {
	if ct.IsHouseholdIndividual() {
		return dErrors.New(dErrors.CodeForbidden, "Case is a household individual case")
	}
	switch ct {
	case models.CaseTypeHH, models.CaseTypeCE, models.CaseTypeSPG, models.CaseTypeH, models.CaseTypeC:
		return nil
	default:
		return dErrors.New(dErrors.CodeForbidden, "Case is not a household or communal case")
	}
}

func (s *Service) cachedByID(ctx context.Context, id domain.CaseID, includeEvents bool) (*models.CaseDTO, bool, error) {
	if s.cache == nil {
		return nil, false, nil
	}
	cc, err := s.cache.GetByID(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, dErrors.Wrap(err, dErrors.CodeInternal, "case cache lookup failed")
	}
	if err := checkAddressable(cc.CaseType); err != nil {
		return nil, false, err
	}
	s.metrics.RecordCacheFallback(lookupByID)
	dto := models.NewCaseDTOFromCached(cc, includeEvents)
	return &dto, true, nil
}

// cachedByUPRN always returns a non-nil slice so an empty result encodes as [].
func (s *Service) cachedByUPRN(ctx context.Context, uprn domain.UPRN, includeEvents bool) ([]models.CaseDTO, error) {
	if s.cache == nil {
		return []models.CaseDTO{}, nil
	}
	cc, err := s.cache.GetByUPRN(ctx, uprn)
	if errors.Is(err, sentinel.ErrNotFound) {
		return []models.CaseDTO{}, nil
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "case cache lookup failed")
	}
	if checkAddressable(cc.CaseType) != nil {
		return []models.CaseDTO{}, nil
	}
	s.metrics.RecordCacheFallback(lookupByUPRN)
	return []models.CaseDTO{models.NewCaseDTOFromCached(cc, includeEvents)}, nil
}

// writeThrough is best effort: a cache failure never fails the lookup.
func (s *Service) writeThrough(ctx context.Context, c *models.Case) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Put(ctx, models.NewCachedCase(c)); err != nil {
		s.logger.WarnContext(ctx, "case cache write failed",
			"case_id", c.ID.String(),
			"error", err,
		)
	}
}

func (s *Service) recordLookup(method string, err error, start time.Time) {
	outcome := metrics.OutcomeFound
	switch {
	case err == nil:
	case dErrors.HasCode(err, dErrors.CodeForbidden):
		outcome = metrics.OutcomeForbidden
	case dErrors.HasCode(err, dErrors.CodeNotFound):
		outcome = metrics.OutcomeNotFound
	default:
		outcome = metrics.OutcomeError
	}
	s.metrics.RecordLookup(method, outcome, time.Since(start).Seconds())
}
