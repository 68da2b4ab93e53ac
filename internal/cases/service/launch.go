package service

import (
	"context"
	"net/url"

	"contactcentre/internal/cases/models"
	"contactcentre/pkg/domain"
	dErrors "contactcentre/pkg/domain-errors"
)

// GetLaunchURL prepares a one-time questionnaire URL for a case.
//
// Steps run strictly in order and the first failure aborts the rest, so no
// SURVEY_LAUNCHED event is published for a launch that did not complete.
func (s *Service) GetLaunchURL(ctx context.Context, caseID domain.CaseID, req *models.LaunchRequest) (string, error) {
	c, err := s.fetchCaseForUpdate(ctx, caseID)
	if err != nil {
		return "", err
	}
	switch c.CaseType {
	case models.CaseTypeCE, models.CaseTypeHH, models.CaseTypeSPG:
	default:
		return "", dErrors.New(dErrors.CodeBadRequest, "Case type must be SPG, CE or HH")
	}

	snapshot := c
	var individualCaseID *domain.CaseID
	if c.CaseType == models.CaseTypeHH && req.Individual {
		id := domain.NewCaseID()
		individualCaseID = &id
		snapshot = c.WithIndividual(id)
	}

	alloc, err := s.directory.AllocateQuestionnaireID(ctx, caseID, req.Individual, individualCaseID)
	if err != nil {
		return "", s.translateDirectoryError(err)
	}

	token, err := s.tokens.IssueLaunchToken(ctx, models.LaunchTokenRequest{
		Language:        s.language,
		Source:          models.EventSource,
		Channel:         models.EventChannel,
		Case:            snapshot,
		AgentID:         req.AgentID,
		QuestionnaireID: alloc.QuestionnaireID,
		FormType:        alloc.FormType,
	})
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue launch token")
	}

	launchURL := "https://" + s.eqHost + "/session?token=" + url.QueryEscape(token)

	payload := models.SurveyLaunchedPayload{Response: models.SurveyLaunchedResponse{
		QuestionnaireID: alloc.QuestionnaireID,
		CaseID:          caseID,
		AgentID:         req.AgentID,
	}}
	if _, err := s.publish(ctx, models.EventSurveyLaunched, payload); err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "survey launched",
		"case_id", caseID.String(),
		"questionnaire_id", alloc.QuestionnaireID,
		"individual", individualCaseID != nil,
	)
	return launchURL, nil
}
