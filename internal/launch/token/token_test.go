package token

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactcentre/internal/cases/models"
	"contactcentre/pkg/domain"
	dErrors "contactcentre/pkg/domain-errors"
)

var issuer = NewIssuer("test-signing-key", "contact-centre", 5*time.Minute)

func launchRequest() models.LaunchTokenRequest {
	return models.LaunchTokenRequest{
		Language: "en",
		Source:   models.EventSource,
		Channel:  models.EventChannel,
		Case: &models.Case{
			ID:         domain.NewCaseID(),
			CaseType:   models.CaseTypeHI,
			RegionCode: "E1000",
			Address: models.Address{
				UPRN:         1347459999,
				AddressLine1: "Flat 1",
				AddressLine2: "1 Main Street",
				AddressLine3: "Townsville",
			},
		},
		AgentID:         "12345",
		QuestionnaireID: "0130000000000300",
		FormType:        "I",
	}
}

func TestIssueLaunchToken(t *testing.T) {
	req := launchRequest()

	signed, err := issuer.IssueLaunchToken(context.Background(), req)
	require.NoError(t, err)

	claims, err := issuer.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, req.QuestionnaireID, claims.QuestionnaireID)
	assert.Equal(t, req.Case.ID.String(), claims.CaseID)
	assert.Equal(t, "HI", claims.CaseType)
	assert.Equal(t, "1347459999", claims.RURef)
	assert.Equal(t, "I", claims.FormType)
	assert.Equal(t, "cc", claims.Channel)
	assert.Equal(t, "12345", claims.UserID)
	assert.Equal(t, "Flat 1, 1 Main Street", claims.DisplayAddress)
	assert.NotEmpty(t, claims.TxID)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), claims.ExpiresAt.Time, time.Minute)
}

func TestIssueLaunchTokenValidation(t *testing.T) {
	cases := map[string]func(*models.LaunchTokenRequest){
		"missing questionnaire id": func(r *models.LaunchTokenRequest) { r.QuestionnaireID = "" },
		"missing form type":        func(r *models.LaunchTokenRequest) { r.FormType = "" },
		"missing case":             func(r *models.LaunchTokenRequest) { r.Case = nil },
		"missing agent":            func(r *models.LaunchTokenRequest) { r.AgentID = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := launchRequest()
			mutate(&req)
			_, err := issuer.IssueLaunchToken(context.Background(), req)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}

func TestParseRejectsForeignTokens(t *testing.T) {
	other := NewIssuer("another-key", "contact-centre", time.Minute)
	signed, err := other.IssueLaunchToken(context.Background(), launchRequest())
	require.NoError(t, err)

	_, err = issuer.Parse(signed)
	assert.ErrorContains(t, err, "invalid launch token")

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"iss": "contact-centre"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = issuer.Parse(none)
	assert.Error(t, err)
}
