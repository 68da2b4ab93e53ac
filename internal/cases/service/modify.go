package service

import (
	"context"

	"contactcentre/internal/cases/models"
	"contactcentre/pkg/domain"
	"contactcentre/pkg/requestcontext"
)

// ModifyCase records an operator-observed change to a case's address. UNCHANGED
// only confirms the case exists; every other status publishes ADDRESS_NOT_VALID.
func (s *Service) ModifyCase(ctx context.Context, req *models.ModifyCaseRequest) (*models.ResponseDTO, error) {
	caseID, err := domain.ParseCaseID(req.CaseID)
	if err != nil {
		return nil, err
	}
	ctx, now := pinTime(ctx)
	if _, err := s.fetchCaseForUpdate(ctx, caseID); err != nil {
		return nil, err
	}

	if req.Status == models.CaseStatusUnchanged {
		s.logger.InfoContext(ctx, "case status unchanged, no event published",
			"case_id", caseID.String(),
		)
	} else {
		payload := models.AddressNotValidPayload{InvalidAddress: models.InvalidAddress{
			Reason:         req.Status,
			Notes:          req.Notes,
			CollectionCase: models.CollectionCase{ID: caseID},
		}}
		if _, err := s.publish(ctx, models.EventAddressNotValid, payload); err != nil {
			return nil, err
		}
	}

	return &models.ResponseDTO{ID: caseID.String(), DateTime: now}, nil
}

// MakeAppointment acknowledges an appointment request. Appointments are booked
// by the field service, so nothing is published here.
func (s *Service) MakeAppointment(ctx context.Context, req *models.AppointmentRequest) (*models.ResponseDTO, error) {
	caseID, err := domain.ParseCaseID(req.CaseID)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "appointment requested",
		"case_id", caseID.String(),
		"appointment_time", req.DateTime,
	)
	return &models.ResponseDTO{ID: caseID.String(), DateTime: requestcontext.Now(ctx)}, nil
}
