package service

import (
	"context"

	"contactcentre/internal/cases/models"
	"contactcentre/pkg/domain"
	dErrors "contactcentre/pkg/domain-errors"
)

// ReportRefusal publishes a refusal. caseID may be domain.UnknownCaseID when the
// operator could not identify the case; the case is never looked up.
func (s *Service) ReportRefusal(ctx context.Context, caseID domain.CaseID, req *models.RefusalRequest) (*models.ResponseDTO, error) {
	ctx, now := pinTime(ctx)
	refusalType, err := mapRefusalReason(req.Reason)
	if err != nil {
		return nil, err
	}

	address := models.Address{
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		AddressLine3: req.AddressLine3,
		TownName:     req.TownName,
		Postcode:     req.Postcode,
		Region:       req.Region,
	}
	if req.UPRN != "" {
		uprn, err := domain.ParseUPRN(req.UPRN)
		if err != nil {
			return nil, err
		}
		address.UPRN = uprn
	}

	payload := models.RefusalReceivedPayload{Refusal: models.RefusalReport{
		Type:           refusalType,
		Report:         req.Notes,
		AgentID:        req.AgentID,
		CollectionCase: models.CollectionCase{ID: caseID},
		Contact:        req.Contact(),
		Address:        address,
	}}
	if _, err := s.publish(ctx, models.EventRefusalReceived, payload); err != nil {
		return nil, err
	}

	ackID := caseID.String()
	if caseID == domain.UnknownCaseID {
		ackID = domain.UnknownCaseLiteral
	}
	s.logger.InfoContext(ctx, "refusal reported",
		"case_id", ackID,
		"refusal_type", refusalType,
	)
	return &models.ResponseDTO{ID: ackID, DateTime: now}, nil
}

// mapRefusalReason has no default mapping: an unrecognised reason is a system fault.
func mapRefusalReason(reason models.RefusalReason) (models.RefusalType, error) {
	switch reason {
	case models.RefusalReasonHard:
		return models.RefusalTypeHard, nil
	case models.RefusalReasonExtraordinary:
		return models.RefusalTypeExtraordinary, nil
	default:
		return "", dErrors.New(dErrors.CodeInternal, "unexpected refusal reason: "+string(reason))
	}
}
