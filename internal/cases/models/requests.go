package models

import (
	"time"

	"contactcentre/pkg/platform/phone"
	s "contactcentre/pkg/string"
	"contactcentre/pkg/validation"
)

// Contact is the respondent a fulfilment or refusal is about.
// Which fields are populated depends on the channel.
type Contact struct {
	Title    string `json:"title,omitempty"`
	Forename string `json:"forename,omitempty"`
	Surname  string `json:"surname,omitempty"`
	TelNo    string `json:"telNo,omitempty"`
}

// PostalFulfilmentRequest asks for a product to be posted to a case's address.
type PostalFulfilmentRequest struct {
	CaseID         string    `json:"caseId" validate:"required,uuid"`
	Title          string    `json:"title" validate:"max=12"`
	Forename       string    `json:"forename" validate:"max=35"`
	Surname        string    `json:"surname" validate:"max=35"`
	FulfilmentCode string    `json:"fulfilmentCode" validate:"notblank,max=12"`
	DateTime       time.Time `json:"dateTime"`
}

func (r *PostalFulfilmentRequest) Sanitize() {
	s.TrimStrings(&r.CaseID, &r.Title, &r.Forename, &r.Surname, &r.FulfilmentCode)
}

func (r *PostalFulfilmentRequest) Normalize() { s.UpperStrings(&r.FulfilmentCode) }

func (r *PostalFulfilmentRequest) Validate() error { return validation.Validate(r) }

func (r *PostalFulfilmentRequest) Contact() Contact {
	return Contact{Title: r.Title, Forename: r.Forename, Surname: r.Surname}
}

// SMSFulfilmentRequest asks for a product to be texted to a mobile number.
type SMSFulfilmentRequest struct {
	CaseID         string    `json:"caseId" validate:"required,uuid"`
	TelNo          string    `json:"telNo" validate:"required,ukmobile"`
	FulfilmentCode string    `json:"fulfilmentCode" validate:"notblank,max=12"`
	DateTime       time.Time `json:"dateTime"`
}

func (r *SMSFulfilmentRequest) Sanitize() { s.TrimStrings(&r.CaseID, &r.TelNo, &r.FulfilmentCode) }

func (r *SMSFulfilmentRequest) Normalize() {
	s.UpperStrings(&r.FulfilmentCode)
	r.TelNo = phone.NormalizeE164(r.TelNo)
}

func (r *SMSFulfilmentRequest) Validate() error { return validation.Validate(r) }

func (r *SMSFulfilmentRequest) Contact() Contact { return Contact{TelNo: r.TelNo} }

// UnresolvedPostalFulfilmentRequest is a postal fulfilment for a caller whose case
// could not be identified; the address and region come from the operator.
type UnresolvedPostalFulfilmentRequest struct {
	Title          string    `json:"title" validate:"max=12"`
	Forename       string    `json:"forename" validate:"max=35"`
	Surname        string    `json:"surname" validate:"max=35"`
	AddressLine1   string    `json:"addressLine1" validate:"notblank,max=60"`
	AddressLine2   string    `json:"addressLine2" validate:"max=60"`
	AddressLine3   string    `json:"addressLine3" validate:"max=60"`
	TownName       string    `json:"townName" validate:"notblank,max=30"`
	Postcode       string    `json:"postcode" validate:"notblank,max=8"`
	Region         string    `json:"region" validate:"required,oneof=E W N"`
	FulfilmentCode string    `json:"fulfilmentCode" validate:"notblank,max=12"`
	DateTime       time.Time `json:"dateTime"`
}

func (r *UnresolvedPostalFulfilmentRequest) Sanitize() {
	s.TrimStrings(&r.Title, &r.Forename, &r.Surname, &r.AddressLine1, &r.AddressLine2,
		&r.AddressLine3, &r.TownName, &r.Postcode, &r.Region, &r.FulfilmentCode)
}

func (r *UnresolvedPostalFulfilmentRequest) Normalize() {
	s.UpperStrings(&r.Region, &r.FulfilmentCode, &r.Postcode)
}

func (r *UnresolvedPostalFulfilmentRequest) Validate() error { return validation.Validate(r) }

func (r *UnresolvedPostalFulfilmentRequest) Contact() Contact {
	return Contact{Title: r.Title, Forename: r.Forename, Surname: r.Surname}
}

func (r *UnresolvedPostalFulfilmentRequest) Address() Address {
	return Address{
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		AddressLine3: r.AddressLine3,
		TownName:     r.TownName,
		Postcode:     r.Postcode,
		Region:       r.Region,
	}
}

// UnresolvedSMSFulfilmentRequest is an SMS fulfilment without an identified case.
type UnresolvedSMSFulfilmentRequest struct {
	TelNo          string    `json:"telNo" validate:"required,ukmobile"`
	Region         string    `json:"region" validate:"required,oneof=E W N"`
	FulfilmentCode string    `json:"fulfilmentCode" validate:"notblank,max=12"`
	DateTime       time.Time `json:"dateTime"`
}

func (r *UnresolvedSMSFulfilmentRequest) Sanitize() {
	s.TrimStrings(&r.TelNo, &r.Region, &r.FulfilmentCode)
}

func (r *UnresolvedSMSFulfilmentRequest) Normalize() {
	s.UpperStrings(&r.Region, &r.FulfilmentCode)
	r.TelNo = phone.NormalizeE164(r.TelNo)
}

func (r *UnresolvedSMSFulfilmentRequest) Validate() error { return validation.Validate(r) }

// RefusalRequest reports a respondent's refusal. CaseID may be "UNKNOWN".
type RefusalRequest struct {
	CaseID       string        `json:"caseId"`
	AgentID      string        `json:"agentId" validate:"required,numeric,max=12"`
	Notes        string        `json:"notes" validate:"max=500"`
	Title        string        `json:"title" validate:"max=12"`
	Forename     string        `json:"forename" validate:"max=35"`
	Surname      string        `json:"surname" validate:"max=35"`
	TelNo        string        `json:"telNo" validate:"max=20"`
	AddressLine1 string        `json:"addressLine1" validate:"notblank,max=60"`
	AddressLine2 string        `json:"addressLine2" validate:"max=60"`
	AddressLine3 string        `json:"addressLine3" validate:"max=60"`
	TownName     string        `json:"townName" validate:"notblank,max=30"`
	Postcode     string        `json:"postcode" validate:"notblank,max=8"`
	Region       string        `json:"region" validate:"required,oneof=E W N"`
	UPRN         string        `json:"uprn" validate:"omitempty,numeric,max=12"`
	Reason       RefusalReason `json:"reason" validate:"required"`
	DateTime     time.Time     `json:"dateTime"`
}

func (r *RefusalRequest) Sanitize() {
	s.TrimStrings(&r.CaseID, &r.AgentID, &r.Notes, &r.Title, &r.Forename, &r.Surname, &r.TelNo,
		&r.AddressLine1, &r.AddressLine2, &r.AddressLine3, &r.TownName, &r.Postcode, &r.Region, &r.UPRN)
}

func (r *RefusalRequest) Normalize() {
	s.UpperStrings(&r.Region, &r.Postcode)
	r.TelNo = phone.NormalizeE164(r.TelNo)
}

// Validate checks field shapes only; unknown reasons are rejected by ReportRefusal.
func (r *RefusalRequest) Validate() error { return validation.Validate(r) }

func (r *RefusalRequest) Contact() Contact {
	return Contact{Title: r.Title, Forename: r.Forename, Surname: r.Surname, TelNo: r.TelNo}
}

// LaunchRequest comes from the launch endpoint's query string.
type LaunchRequest struct {
	AgentID    string `json:"agentId" validate:"required,numeric,max=12"`
	Individual bool   `json:"individual"`
}

func (r *LaunchRequest) Sanitize()        { s.TrimStrings(&r.AgentID) }
func (r *LaunchRequest) Validate() error { return validation.Validate(r) }

// ModifyCaseRequest records an operator-observed change to a case's address.
type ModifyCaseRequest struct {
	CaseID string     `json:"caseId" validate:"required,uuid"`
	Status CaseStatus `json:"status" validate:"required,oneof=UNCHANGED DERELICT DEMOLISHED NON_RESIDENTIAL UNDER_CONSTRUCTION SPLIT_ADDRESS MERGED DUPLICATE DOES_NOT_EXIST"`
	Notes  string     `json:"notes" validate:"max=500"`
}

func (r *ModifyCaseRequest) Sanitize() { s.TrimStrings(&r.CaseID, &r.Notes) }

func (r *ModifyCaseRequest) Normalize() {
	status := string(r.Status)
	s.TrimStrings(&status)
	s.UpperStrings(&status)
	r.Status = CaseStatus(status)
}

func (r *ModifyCaseRequest) Validate() error { return validation.Validate(r) }

// AppointmentRequest books a field appointment for a case.
type AppointmentRequest struct {
	CaseID   string    `json:"caseId" validate:"required,uuid"`
	DateTime time.Time `json:"dateTime" validate:"required"`
}

func (r *AppointmentRequest) Sanitize()        { s.TrimStrings(&r.CaseID) }
func (r *AppointmentRequest) Validate() error { return validation.Validate(r) }
