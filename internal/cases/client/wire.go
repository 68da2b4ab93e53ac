package client

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"contactcentre/internal/cases/models"
	"contactcentre/pkg/domain"
)

// caseResponse is the case service's representation of a case.
// caseRef and uprn arrive as strings.
type caseResponse struct {
	ID               string          `json:"id"`
	CaseRef          string          `json:"caseRef"`
	CaseType         string          `json:"caseType"`
	AddressType      string          `json:"addressType"`
	EstabType        string          `json:"estabType"`
	AddressLine1     string          `json:"addressLine1"`
	AddressLine2     string          `json:"addressLine2"`
	AddressLine3     string          `json:"addressLine3"`
	TownName         string          `json:"townName"`
	Postcode         string          `json:"postcode"`
	Region           string          `json:"region"`
	OrganisationName string          `json:"organisationName"`
	Latitude         string          `json:"latitude"`
	Longitude        string          `json:"longitude"`
	UPRN             string          `json:"uprn"`
	HandDelivery     bool            `json:"handDelivery"`
	CreatedDateTime  time.Time       `json:"createdDateTime"`
	CaseEvents       []eventResponse `json:"caseEvents"`
}

type eventResponse struct {
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	CreatedDateTime time.Time `json:"createdDateTime"`
}

type qidResponse struct {
	QuestionnaireID string `json:"questionnaireId"`
	FormType        string `json:"formType"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// toModel converts the wire case. The event slice keeps the directory's order.
func (r caseResponse) toModel(op string) (*models.Case, error) {
	id, err := domain.ParseCaseID(r.ID)
	if err != nil {
		return nil, newError(ErrorContractMismatch, op, "invalid case id in response", http.StatusOK, err)
	}

	c := &models.Case{
		ID:           id,
		CaseType:     models.ParseCaseType(r.CaseType),
		RawCaseType:  strings.TrimSpace(r.CaseType),
		RegionCode:   r.Region,
		HandDelivery: r.HandDelivery,
		Address: models.Address{
			AddressLine1:     r.AddressLine1,
			AddressLine2:     r.AddressLine2,
			AddressLine3:     r.AddressLine3,
			TownName:         r.TownName,
			Postcode:         r.Postcode,
			Region:           r.Region,
			AddressType:      r.AddressType,
			EstabType:        r.EstabType,
			OrganisationName: r.OrganisationName,
			Latitude:         r.Latitude,
			Longitude:        r.Longitude,
		},
		CreatedDateTime: r.CreatedDateTime,
	}
	if r.CaseRef != "" {
		ref, err := strconv.ParseInt(r.CaseRef, 10, 64)
		if err != nil {
			return nil, newError(ErrorContractMismatch, op, "invalid caseRef in response", http.StatusOK, err)
		}
		c.CaseRef = domain.CaseRef(ref)
	}
	if r.UPRN != "" {
		uprn, err := domain.ParseUPRN(r.UPRN)
		if err != nil {
			return nil, newError(ErrorContractMismatch, op, "invalid uprn in response", http.StatusOK, err)
		}
		c.Address.UPRN = uprn
	}
	if len(r.CaseEvents) > 0 {
		c.Events = make([]models.CaseEvent, len(r.CaseEvents))
		for i, e := range r.CaseEvents {
			c.Events[i] = models.CaseEvent{
				Category:        e.Category,
				Description:     e.Description,
				CreatedDateTime: e.CreatedDateTime,
			}
		}
	}
	return c, nil
}
