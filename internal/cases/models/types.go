package models

import "strings"

// CaseType is the closed set of case types the directory can return.
// CaseTypeUnknown stands for anything the directory sends that is not listed here.
type CaseType string

const (
	CaseTypeUnknown CaseType = ""
	CaseTypeHH      CaseType = "HH"
	CaseTypeCE      CaseType = "CE"
	CaseTypeSPG     CaseType = "SPG"
	CaseTypeHI      CaseType = "HI"
	// Legacy household and communal types still served by older directory deployments.
	CaseTypeH CaseType = "H"
	CaseTypeC CaseType = "C"
)

// ParseCaseType maps a directory string onto the enumeration.
func ParseCaseType(s string) CaseType {
	switch ct := CaseType(strings.ToUpper(strings.TrimSpace(s))); ct {
	case CaseTypeHH, CaseTypeCE, CaseTypeSPG, CaseTypeHI, CaseTypeH, CaseTypeC:
		return ct
	default:
		return CaseTypeUnknown
	}
}

func (c CaseType) String() string { return string(c) }

// IsHouseholdIndividual reports whether the case is an internal per-person subsidiary.
func (c CaseType) IsHouseholdIndividual() bool { return c == CaseTypeHI }

// Region is the UK nation a case or product belongs to.
type Region string

const (
	RegionE Region = "E"
	RegionW Region = "W"
	RegionN Region = "N"
)

// ParseRegion reads the region from the first character of a stored region code,
// e.g. "E12000009" is England.
func ParseRegion(code string) (Region, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	switch r := Region(strings.ToUpper(code[:1])); r {
	case RegionE, RegionW, RegionN:
		return r, true
	default:
		return "", false
	}
}

// DeliveryChannel is how a fulfilment reaches the respondent.
type DeliveryChannel string

const (
	DeliveryChannelPost DeliveryChannel = "POST"
	DeliveryChannelSMS  DeliveryChannel = "SMS"
)

// RequestChannel is the channel a product may be requested through.
type RequestChannel string

const (
	RequestChannelContactCentre RequestChannel = "CC"
	RequestChannelRespondent    RequestChannel = "RH"
	RequestChannelField         RequestChannel = "FIELD"
)

// RefusalReason is the operator-selected reason for a refusal.
type RefusalReason string

const (
	RefusalReasonHard          RefusalReason = "HARD"
	RefusalReasonExtraordinary RefusalReason = "EXTRAORDINARY"
)

// RefusalType is the canonical outbound refusal classification.
type RefusalType string

const (
	RefusalTypeHard          RefusalType = "HARD_REFUSAL"
	RefusalTypeExtraordinary RefusalType = "EXTRAORDINARY_REFUSAL"
)

// CaseStatus is the operator-reported state of a case's address.
// CaseStatusUnchanged records a contact that did not change anything.
type CaseStatus string

const (
	CaseStatusUnchanged         CaseStatus = "UNCHANGED"
	CaseStatusDerelict          CaseStatus = "DERELICT"
	CaseStatusDemolished        CaseStatus = "DEMOLISHED"
	CaseStatusNonResidential    CaseStatus = "NON_RESIDENTIAL"
	CaseStatusUnderConstruction CaseStatus = "UNDER_CONSTRUCTION"
	CaseStatusSplitAddress      CaseStatus = "SPLIT_ADDRESS"
	CaseStatusMerged            CaseStatus = "MERGED"
	CaseStatusDuplicate         CaseStatus = "DUPLICATE"
	CaseStatusDoesNotExist      CaseStatus = "DOES_NOT_EXIST"
)

// CaseStatuses lists every accepted status in declaration order.
var CaseStatuses = []CaseStatus{
	CaseStatusUnchanged,
	CaseStatusDerelict,
	CaseStatusDemolished,
	CaseStatusNonResidential,
	CaseStatusUnderConstruction,
	CaseStatusSplitAddress,
	CaseStatusMerged,
	CaseStatusDuplicate,
	CaseStatusDoesNotExist,
}
