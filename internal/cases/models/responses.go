package models

import (
	"slices"
	"strings"
	"time"

	"contactcentre/pkg/domain"
)

// ResponseDTO acknowledges a mutating request. ID is the case id or "UNKNOWN".
type ResponseDTO struct {
	ID       string    `json:"id"`
	DateTime time.Time `json:"dateTime"`
}

// CaseDTO is the operator-facing view of a case.
//
// CaseEvents is nil when events were not requested and a non-nil slice otherwise,
// so the JSON distinguishes "omitted" (null) from "none kept" ([]).
type CaseDTO struct {
	ID                      domain.CaseID     `json:"id"`
	CaseRef                 string            `json:"caseRef,omitempty"`
	CaseType                string            `json:"caseType"`
	EstabType               string            `json:"estabType,omitempty"`
	CreatedDateTime         time.Time         `json:"createdDateTime"`
	AddressLine1            string            `json:"addressLine1"`
	AddressLine2            string            `json:"addressLine2,omitempty"`
	AddressLine3            string            `json:"addressLine3,omitempty"`
	TownName                string            `json:"townName"`
	Postcode                string            `json:"postcode"`
	Region                  string            `json:"region"`
	UPRN                    string            `json:"uprn"`
	CEOrgName               string            `json:"ceOrgName,omitempty"`
	AllowedDeliveryChannels []DeliveryChannel `json:"allowedDeliveryChannels"`
	CaseEvents              []CaseEventDTO    `json:"caseEvents"`
}

type CaseEventDTO struct {
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	CreatedDateTime time.Time `json:"createdDateTime"`
}

// FulfilmentDTO is one entry of the fulfilment listing.
type FulfilmentDTO struct {
	FulfilmentCode  string          `json:"fulfilmentCode"`
	Description     string          `json:"description"`
	Language        string          `json:"language,omitempty"`
	DeliveryChannel DeliveryChannel `json:"deliveryChannel"`
	Regions         []Region        `json:"regions"`
	CaseTypes       []CaseType      `json:"caseTypes,omitempty"`
	Individual      bool            `json:"individual"`
}

// CCSPostcodeDTO answers whether a postcode is in the coverage survey.
type CCSPostcodeDTO struct {
	Postcode string `json:"postcode"`
	InCCS    bool   `json:"inCCS"`
}

// NewCaseDTO converts a directory case. Events are copied only when includeEvents
// is set, and then only those whose category is whitelisted, in directory order.
func NewCaseDTO(c *Case, includeEvents bool, whitelist []string) CaseDTO {
	dto := CaseDTO{
		ID:                      c.ID,
		CaseType:                c.RawCaseType,
		EstabType:               c.Address.EstabType,
		CreatedDateTime:         c.CreatedDateTime,
		AddressLine1:            c.Address.AddressLine1,
		AddressLine2:            c.Address.AddressLine2,
		AddressLine3:            c.Address.AddressLine3,
		TownName:                c.Address.TownName,
		Postcode:                c.Address.Postcode,
		Region:                  c.Address.Region,
		CEOrgName:               c.Address.OrganisationName,
		AllowedDeliveryChannels: c.AllowedDeliveryChannels(),
	}
	if dto.CaseType == "" {
		dto.CaseType = string(c.CaseType)
	}
	if dto.Region == "" {
		dto.Region = c.RegionCode
	}
	if c.CaseRef != 0 {
		dto.CaseRef = c.CaseRef.String()
	}
	if c.Address.UPRN != 0 {
		dto.UPRN = c.Address.UPRN.String()
	}
	if includeEvents {
		dto.CaseEvents = filterEvents(c.Events, whitelist)
	}
	return dto
}

func filterEvents(events []CaseEvent, whitelist []string) []CaseEventDTO {
	kept := make([]CaseEventDTO, 0, len(events))
	for _, e := range events {
		if !slices.Contains(whitelist, e.Category) {
			continue
		}
		kept = append(kept, CaseEventDTO{
			Category:        e.Category,
			Description:     e.Description,
			CreatedDateTime: e.CreatedDateTime,
		})
	}
	return kept
}

// NewCaseDTOFromCached converts a cached skeleton. Skeletons carry no history,
// so CaseEvents is empty rather than omitted when events were requested.
func NewCaseDTOFromCached(cc *CachedCase, includeEvents bool) CaseDTO {
	c := Case{
		ID:              cc.ID,
		CaseType:        cc.CaseType,
		RawCaseType:     string(cc.CaseType),
		RegionCode:      cc.Region,
		CreatedDateTime: cc.CreatedDateTime,
		Address: Address{
			UPRN:             cc.UPRN,
			AddressLine1:     cc.AddressLine1,
			AddressLine2:     cc.AddressLine2,
			AddressLine3:     cc.AddressLine3,
			TownName:         cc.TownName,
			Postcode:         cc.Postcode,
			Region:           cc.Region,
			AddressType:      cc.AddressType,
			EstabType:        cc.EstabType,
			OrganisationName: cc.CEOrgName,
		},
	}
	return NewCaseDTO(&c, includeEvents, nil)
}

// NewCachedCase builds the skeleton record written through to the cache.
func NewCachedCase(c *Case) CachedCase {
	return CachedCase{
		ID:               c.ID,
		UPRN:             c.Address.UPRN,
		CreatedDateTime:  c.CreatedDateTime,
		FormattedAddress: FormatAddress(c.Address),
		AddressLine1:     c.Address.AddressLine1,
		AddressLine2:     c.Address.AddressLine2,
		AddressLine3:     c.Address.AddressLine3,
		TownName:         c.Address.TownName,
		Postcode:         c.Address.Postcode,
		AddressType:      c.Address.AddressType,
		CaseType:         c.CaseType,
		EstabType:        c.Address.EstabType,
		Region:           c.RegionCode,
		CEOrgName:        c.Address.OrganisationName,
	}
}

// FormatAddress joins the non-empty address lines, town and postcode with ", ".
func FormatAddress(a Address) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{a.AddressLine1, a.AddressLine2, a.AddressLine3, a.TownName, a.Postcode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// NewFulfilmentDTO converts a catalog product for the listing endpoint.
func NewFulfilmentDTO(p Product) FulfilmentDTO {
	return FulfilmentDTO{
		FulfilmentCode:  p.FulfilmentCode,
		Description:     p.Description,
		Language:        p.Language,
		DeliveryChannel: p.DeliveryChannel,
		Regions:         p.Regions,
		CaseTypes:       p.CaseTypes,
		Individual:      p.Individual,
	}
}
