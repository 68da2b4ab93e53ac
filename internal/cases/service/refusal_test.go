package service

import (
	"contactcentre/internal/cases/models"
	"contactcentre/pkg/domain"
	dErrors "contactcentre/pkg/domain-errors"
)

func (s *ServiceSuite) refusalRequest(reason models.RefusalReason) *models.RefusalRequest {
	return &models.RefusalRequest{
		AgentID:      "12345",
		Notes:        "Respondent declined",
		Forename:     "Sam",
		Surname:      "Jones",
		AddressLine1: "1 Main Street",
		TownName:     "Exeter",
		Postcode:     "EX1 1AA",
		Region:       "E",
		UPRN:         "1347459999",
		Reason:       reason,
	}
}

func (s *ServiceSuite) TestReportRefusal() {
	s.Run("maps reasons to refusal types without a directory lookup", func() {
		cases := map[models.RefusalReason]models.RefusalType{
			models.RefusalReasonHard:          models.RefusalTypeHard,
			models.RefusalReasonExtraordinary: models.RefusalTypeExtraordinary,
		}
		for reason, want := range cases {
			caseID := domain.NewCaseID()
			var payload any
			s.capturePublish(models.EventRefusalReceived, &payload)

			ack, err := s.service.ReportRefusal(s.ctx, caseID, s.refusalRequest(reason))
			s.Require().NoError(err)
			s.Equal(caseID.String(), ack.ID)
			s.Equal(fixedNow, ack.DateTime)

			r := payload.(models.RefusalReceivedPayload).Refusal
			s.Equal(want, r.Type)
			s.Equal(caseID, r.CollectionCase.ID)
			s.Equal("12345", r.AgentID)
			s.Equal("Respondent declined", r.Report)
			s.Equal(domain.UPRN(1347459999), r.Address.UPRN)
		}
	})

	s.Run("unknown case sentinel is accepted and echoed", func() {
		var payload any
		s.capturePublish(models.EventRefusalReceived, &payload)

		ack, err := s.service.ReportRefusal(s.ctx, domain.UnknownCaseID, s.refusalRequest(models.RefusalReasonHard))
		s.Require().NoError(err)
		s.Equal(domain.UnknownCaseLiteral, ack.ID)
		s.Equal(domain.UnknownCaseID, payload.(models.RefusalReceivedPayload).Refusal.CollectionCase.ID)
	})

	s.Run("unrecognised reason is a system error and publishes nothing", func() {
		_, err := s.service.ReportRefusal(s.ctx, domain.NewCaseID(), s.refusalRequest("SOFT"))
		s.requireCode(err, dErrors.CodeInternal)
	})
}
