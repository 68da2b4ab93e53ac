package service

import (
	"contactcentre/internal/cases/models"
	"contactcentre/pkg/domain"
	dErrors "contactcentre/pkg/domain-errors"
)

func (s *ServiceSuite) TestModifyCase() {
	s.Run("unchanged publishes nothing", func() {
		c := s.newCase(models.CaseTypeHH)
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)

		ack, err := s.service.ModifyCase(s.ctx, &models.ModifyCaseRequest{CaseID: c.ID.String(), Status: models.CaseStatusUnchanged})
		s.Require().NoError(err)
		s.Equal(c.ID.String(), ack.ID)
		s.Equal(fixedNow, ack.DateTime)
	})

	s.Run("every other status publishes one address-not-valid", func() {
		for _, status := range models.CaseStatuses {
			if status == models.CaseStatusUnchanged {
				continue
			}
			c := s.newCase(models.CaseTypeHH)
			s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)
			var payload any
			s.capturePublish(models.EventAddressNotValid, &payload)

			_, err := s.service.ModifyCase(s.ctx, &models.ModifyCaseRequest{CaseID: c.ID.String(), Status: status, Notes: "seen"})
			s.Require().NoError(err)
			ia := payload.(models.AddressNotValidPayload).InvalidAddress
			s.Equal(status, ia.Reason)
			s.Equal("seen", ia.Notes)
			s.Equal(c.ID, ia.CollectionCase.ID)
		}
	})

	s.Run("missing case publishes nothing", func() {
		id := domain.NewCaseID()
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, id, false).Return(nil, s.notFound())

		_, err := s.service.ModifyCase(s.ctx, &models.ModifyCaseRequest{CaseID: id.String(), Status: models.CaseStatusDerelict})
		s.requireCode(err, dErrors.CodeInternal)
	})
}

func (s *ServiceSuite) TestMakeAppointment() {
	id := domain.NewCaseID()
	ack, err := s.service.MakeAppointment(s.ctx, &models.AppointmentRequest{CaseID: id.String(), DateTime: fixedNow})
	s.Require().NoError(err)
	s.Equal(id.String(), ack.ID)
}
