package service

import (
	"context"
	"errors"

	"go.uber.org/mock/gomock"

	"contactcentre/internal/cases/models"
	"contactcentre/pkg/domain"
	dErrors "contactcentre/pkg/domain-errors"
)

func (s *ServiceSuite) TestGetLaunchURL() {
	alloc := &models.QuestionnaireAllocation{QuestionnaireID: "0110000000000200", FormType: "H"}

	s.Run("household launch", func() {
		c := s.newCase(models.CaseTypeHH)
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)
		s.mockDirectory.EXPECT().AllocateQuestionnaireID(s.ctx, c.ID, false, (*domain.CaseID)(nil)).Return(alloc, nil)
		s.mockTokens.EXPECT().IssueLaunchToken(s.ctx, models.LaunchTokenRequest{
			Language:        "en",
			Source:          models.EventSource,
			Channel:         models.EventChannel,
			Case:            c,
			AgentID:         "12345",
			QuestionnaireID: alloc.QuestionnaireID,
			FormType:        alloc.FormType,
		}).Return("signed-token", nil)
		var payload any
		s.capturePublish(models.EventSurveyLaunched, &payload)

		got, err := s.service.GetLaunchURL(s.ctx, c.ID, &models.LaunchRequest{AgentID: "12345"})
		s.Require().NoError(err)
		s.Equal("https://eq.example.test/session?token=signed-token", got)
		resp := payload.(models.SurveyLaunchedPayload).Response
		s.Equal(c.ID, resp.CaseID)
		s.Equal(alloc.QuestionnaireID, resp.QuestionnaireID)
		s.Equal("12345", resp.AgentID)
	})

	s.Run("individual household launch mints id but publishes original", func() {
		c := s.newCase(models.CaseTypeHH)
		var minted *domain.CaseID
		var tokenCase *models.Case
		gomock.InOrder(
			s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil),
			s.mockDirectory.EXPECT().AllocateQuestionnaireID(s.ctx, c.ID, true, gomock.Not(gomock.Nil())).
				DoAndReturn(func(_ context.Context, _ domain.CaseID, _ bool, individualID *domain.CaseID) (*models.QuestionnaireAllocation, error) {
					minted = individualID
					return alloc, nil
				}),
			s.mockTokens.EXPECT().IssueLaunchToken(s.ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, req models.LaunchTokenRequest) (string, error) {
					tokenCase = req.Case
					return "tok", nil
				}),
		)
		var payload any
		s.capturePublish(models.EventSurveyLaunched, &payload)

		_, err := s.service.GetLaunchURL(s.ctx, c.ID, &models.LaunchRequest{AgentID: "12345", Individual: true})
		s.Require().NoError(err)
		s.Require().NotNil(minted)
		s.NotEqual(c.ID, *minted)
		s.Require().NotNil(tokenCase)
		s.Equal(*minted, tokenCase.ID)
		s.Equal(models.CaseTypeHI, tokenCase.CaseType)
		s.Equal(models.CaseTypeHH, c.CaseType, "directory case must not be mutated")
		s.Equal(c.ID, payload.(models.SurveyLaunchedPayload).Response.CaseID)
	})

	s.Run("individual flag on CE does not mint", func() {
		c := s.newCase(models.CaseTypeCE)
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)
		s.mockDirectory.EXPECT().AllocateQuestionnaireID(s.ctx, c.ID, true, (*domain.CaseID)(nil)).Return(alloc, nil)
		s.mockTokens.EXPECT().IssueLaunchToken(s.ctx, gomock.Any()).Return("tok", nil)
		s.expectPublish(models.EventSurveyLaunched)

		_, err := s.service.GetLaunchURL(s.ctx, c.ID, &models.LaunchRequest{AgentID: "1", Individual: true})
		s.Require().NoError(err)
	})

	s.Run("ineligible case types are rejected", func() {
		for _, ct := range []models.CaseType{models.CaseTypeHI, models.CaseTypeH, models.CaseTypeC, models.CaseTypeUnknown} {
			c := s.newCase(ct)
			s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)

			_, err := s.service.GetLaunchURL(s.ctx, c.ID, &models.LaunchRequest{AgentID: "1"})
			s.requireCode(err, dErrors.CodeBadRequest)
		}
	})

	s.Run("token failure aborts before publish", func() {
		c := s.newCase(models.CaseTypeSPG)
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)
		s.mockDirectory.EXPECT().AllocateQuestionnaireID(s.ctx, c.ID, false, (*domain.CaseID)(nil)).Return(alloc, nil)
		s.mockTokens.EXPECT().IssueLaunchToken(s.ctx, gomock.Any()).
			Return("", dErrors.New(dErrors.CodeValidation, "questionnaire id is required"))

		_, err := s.service.GetLaunchURL(s.ctx, c.ID, &models.LaunchRequest{AgentID: "1"})
		s.requireCode(err, dErrors.CodeValidation)
	})

	s.Run("allocation failure aborts before token", func() {
		c := s.newCase(models.CaseTypeHH)
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, c.ID, false).Return(c, nil)
		s.mockDirectory.EXPECT().AllocateQuestionnaireID(s.ctx, c.ID, false, (*domain.CaseID)(nil)).
			Return(nil, errors.New("boom"))

		_, err := s.service.GetLaunchURL(s.ctx, c.ID, &models.LaunchRequest{AgentID: "1"})
		s.requireCode(err, dErrors.CodeInternal)
	})

	s.Run("missing case is a system error", func() {
		id := domain.NewCaseID()
		s.mockDirectory.EXPECT().GetCaseByID(s.ctx, id, false).Return(nil, s.notFound())

		_, err := s.service.GetLaunchURL(s.ctx, id, &models.LaunchRequest{AgentID: "1"})
		s.requireCode(err, dErrors.CodeInternal)
	})
}
