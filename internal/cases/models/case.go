package models

import (
	"time"

	"contactcentre/pkg/domain"
)

// Case is a case record as held by the case directory. This service never mutates one
// that the directory owns; see WithIndividual for the in-flight launch snapshot.
type Case struct {
	ID              domain.CaseID
	CaseRef         domain.CaseRef
	CaseType        CaseType
	RawCaseType     string
	RegionCode      string
	HandDelivery    bool
	Address         Address
	CreatedDateTime time.Time
	Events          []CaseEvent
}

// Address is a case's postal address.
type Address struct {
	UPRN             domain.UPRN `json:"uprn,string"`
	AddressLine1     string      `json:"addressLine1"`
	AddressLine2     string      `json:"addressLine2,omitempty"`
	AddressLine3     string      `json:"addressLine3,omitempty"`
	TownName         string      `json:"townName"`
	Postcode         string      `json:"postcode"`
	Region           string      `json:"region,omitempty"`
	AddressType      string      `json:"addressType,omitempty"`
	EstabType        string      `json:"estabType,omitempty"`
	OrganisationName string      `json:"organisationName,omitempty"`
	Latitude         string      `json:"latitude,omitempty"`
	Longitude        string      `json:"longitude,omitempty"`
}

// CaseEvent is one entry from a case's history.
type CaseEvent struct {
	Category        string
	Description     string
	CreatedDateTime time.Time
}

// AllowedDeliveryChannels is the only place the channel rule is computed.
// Hand-delivered SPG cases can only be reached by SMS.
func (c *Case) AllowedDeliveryChannels() []DeliveryChannel {
	if c.HandDelivery && c.CaseType == CaseTypeSPG {
		return []DeliveryChannel{DeliveryChannelSMS}
	}
	return []DeliveryChannel{DeliveryChannelPost, DeliveryChannelSMS}
}

// WithIndividual returns a copy of the case retyped to HI under a new id.
// The copy shares no event slice with the receiver.
func (c *Case) WithIndividual(individualID domain.CaseID) *Case {
	cp := *c
	cp.ID = individualID
	cp.CaseType = CaseTypeHI
	cp.RawCaseType = string(CaseTypeHI)
	cp.Events = nil
	return &cp
}

// QuestionnaireAllocation is a single-use questionnaire id issued for a launch.
type QuestionnaireAllocation struct {
	QuestionnaireID string
	FormType        string
}

// CachedCase is the skeleton record kept for cases the directory does not (yet) know.
type CachedCase struct {
	ID               domain.CaseID `json:"id"`
	UPRN             domain.UPRN   `json:"uprn,string"`
	CreatedDateTime  time.Time     `json:"createdDateTime"`
	FormattedAddress string        `json:"formattedAddress"`
	AddressLine1     string        `json:"addressLine1"`
	AddressLine2     string        `json:"addressLine2,omitempty"`
	AddressLine3     string        `json:"addressLine3,omitempty"`
	TownName         string        `json:"townName"`
	Postcode         string        `json:"postcode"`
	AddressType      string        `json:"addressType,omitempty"`
	CaseType         CaseType      `json:"caseType"`
	EstabType        string        `json:"estabType,omitempty"`
	Region           string        `json:"region"`
	CEOrgName        string        `json:"ceOrgName,omitempty"`
}
