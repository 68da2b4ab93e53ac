package models

import "slices"

// Product is a fulfilment product from the catalog.
type Product struct {
	FulfilmentCode  string           `json:"fulfilmentCode" yaml:"fulfilmentCode"`
	Description     string           `json:"description" yaml:"description"`
	Language        string           `json:"language" yaml:"language"`
	DeliveryChannel DeliveryChannel  `json:"deliveryChannel" yaml:"deliveryChannel"`
	Regions         []Region         `json:"regions" yaml:"regions"`
	RequestChannels []RequestChannel `json:"-" yaml:"requestChannels"`
	CaseTypes       []CaseType       `json:"caseTypes" yaml:"caseTypes"`
	// Individual is true when the product addresses one named person rather than a household.
	Individual bool `json:"individual" yaml:"individual"`
}

// ProductCriteria filters a catalog search. Zero-valued fields match anything.
type ProductCriteria struct {
	FulfilmentCode  string
	DeliveryChannel DeliveryChannel
	Region          Region
	RequestChannel  RequestChannel
	CaseType        CaseType
}

// Matches reports whether p satisfies every set field of c.
func (c ProductCriteria) Matches(p Product) bool {
	if c.FulfilmentCode != "" && c.FulfilmentCode != p.FulfilmentCode {
		return false
	}
	if c.DeliveryChannel != "" && c.DeliveryChannel != p.DeliveryChannel {
		return false
	}
	if c.Region != "" && !slices.Contains(p.Regions, c.Region) {
		return false
	}
	if c.RequestChannel != "" && !slices.Contains(p.RequestChannels, c.RequestChannel) {
		return false
	}
	if c.CaseType != CaseTypeUnknown && !slices.Contains(p.CaseTypes, c.CaseType) {
		return false
	}
	return true
}
