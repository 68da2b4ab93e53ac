// Package token signs questionnaire launch tokens.
package token

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"contactcentre/internal/cases/models"
	dErrors "contactcentre/pkg/domain-errors"
	"contactcentre/pkg/requestcontext"
)

// LaunchClaims is the payload the questionnaire runner reads on session start.
type LaunchClaims struct {
	QuestionnaireID         string `json:"questionnaire_id"`
	CaseID                  string `json:"case_id"`
	CaseType                string `json:"case_type"`
	CollectionExerciseSID   string `json:"collection_exercise_sid,omitempty"`
	RURef                   string `json:"ru_ref"`
	RegionCode              string `json:"region_code"`
	FormType                string `json:"form_type"`
	LanguageCode            string `json:"language_code"`
	Channel                 string `json:"channel"`
	Source                  string `json:"source"`
	UserID                  string `json:"user_id"`
	DisplayAddress          string `json:"display_address"`
	TxID                    string `json:"tx_id"`
	AccountServiceURL       string `json:"account_service_url,omitempty"`
	AccountServiceLogoutURL string `json:"account_service_log_out_url,omitempty"`
	jwt.RegisteredClaims
}

// Issuer signs launch tokens with HS256.
type Issuer struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
}

func NewIssuer(signingKey, issuer string, ttl time.Duration) *Issuer {
	return &Issuer{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		ttl:        ttl,
	}
}

// IssueLaunchToken signs the claims for one launch.
//
// Errors: a validation domain error when the case, questionnaire id, form
// type or agent id is missing.
func (i *Issuer) IssueLaunchToken(ctx context.Context, req models.LaunchTokenRequest) (string, error) {
	if err := validate(req); err != nil {
		return "", err
	}
	now := requestcontext.Now(ctx)
	c := req.Case

	claims := LaunchClaims{
		QuestionnaireID:         req.QuestionnaireID,
		CaseID:                  c.ID.String(),
		CaseType:                string(c.CaseType),
		RURef:                   c.Address.UPRN.String(),
		RegionCode:              c.RegionCode,
		FormType:                req.FormType,
		LanguageCode:            req.Language,
		Channel:                 strings.ToLower(req.Channel),
		Source:                  req.Source,
		UserID:                  req.AgentID,
		DisplayAddress:          displayAddress(c.Address),
		TxID:                    uuid.NewString(),
		AccountServiceURL:       req.AccountServiceURL,
		AccountServiceLogoutURL: req.AccountServiceLogoutURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.signingKey)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign launch token")
	}
	return signed, nil
}

// Parse verifies a token signed by this issuer. Used by tooling and tests.
func (i *Issuer) Parse(tokenString string) (*LaunchClaims, error) {
	claims := new(LaunchClaims)
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return i.signingKey, nil
	}, jwt.WithIssuer(i.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeInvalidInput, "launch token expired")
		}
		return nil, dErrors.New(dErrors.CodeInvalidInput, "invalid launch token")
	}
	if !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "invalid launch token")
	}
	return claims, nil
}

func validate(req models.LaunchTokenRequest) error {
	switch {
	case req.Case == nil:
		return dErrors.New(dErrors.CodeValidation, "case is required")
	case req.QuestionnaireID == "":
		return dErrors.New(dErrors.CodeValidation, "questionnaire id is required")
	case req.FormType == "":
		return dErrors.New(dErrors.CodeValidation, "form type is required")
	case req.AgentID == "":
		return dErrors.New(dErrors.CodeValidation, "agent id is required")
	}
	return nil
}

// displayAddress is the first two populated address lines.
func displayAddress(a models.Address) string {
	lines := make([]string, 0, 2)
	for _, l := range []string{a.AddressLine1, a.AddressLine2, a.AddressLine3} {
		if l == "" {
			continue
		}
		lines = append(lines, l)
		if len(lines) == 2 {
			break
		}
	}
	return strings.Join(lines, ", ")
}
