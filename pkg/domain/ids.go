// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	dErrors "contactcentre/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing a CaseID where a TransactionID is expected.
type (
	CaseID        uuid.UUID
	TransactionID uuid.UUID
)

// UPRN is a Unique Property Reference Number.
type UPRN int64

// CaseRef is the human-facing numeric case reference.
type CaseRef int64

// UnknownCaseLiteral is what operators send when a refusal cannot be tied to a case.
const UnknownCaseLiteral = "UNKNOWN"

// UnknownCaseID is the all-zero sentinel carried for refusals against an unidentified case.
var UnknownCaseID = CaseID(uuid.Nil)

const maxUPRN = 999999999999

// Parse functions - use at trust boundaries (handlers, API inputs).

func ParseCaseID(s string) (CaseID, error) {
	id, err := parseUUID(s, "case ID")
	return CaseID(id), err
}

func ParseTransactionID(s string) (TransactionID, error) {
	id, err := parseUUID(s, "transaction ID")
	return TransactionID(id), err
}

// ParseCaseIDOrUnknown accepts a UUID or the case-insensitive literal "UNKNOWN".
// The literal maps to UnknownCaseID.
func ParseCaseIDOrUnknown(s string) (CaseID, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return CaseID{}, dErrors.New(dErrors.CodeBadRequest, `caseId must be a valid UUID or "UNKNOWN"`)
	}
	if strings.EqualFold(trimmed, UnknownCaseLiteral) {
		return UnknownCaseID, nil
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return CaseID{}, dErrors.New(dErrors.CodeBadRequest, "caseId must be a valid UUID")
	}
	return CaseID(id), nil
}

func ParseUPRN(s string) (UPRN, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "UPRN cannot be empty")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 || n > maxUPRN {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid UPRN format")
	}
	return UPRN(n), nil
}

func ParseCaseRef(s string) (CaseRef, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "case reference cannot be empty")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "invalid case reference format")
	}
	return CaseRef(n), nil
}

// NewCaseID mints a random case id.
func NewCaseID() CaseID { return CaseID(uuid.New()) }

// NewTransactionID mints a random transaction id.
func NewTransactionID() TransactionID { return TransactionID(uuid.New()) }

// String methods - for logging, keys and wire formats.

func (id CaseID) String() string        { return uuid.UUID(id).String() }
func (id TransactionID) String() string { return uuid.UUID(id).String() }
func (u UPRN) String() string           { return strconv.FormatInt(int64(u), 10) }
func (r CaseRef) String() string        { return strconv.FormatInt(int64(r), 10) }

func (id CaseID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }
func (id TransactionID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText lets typed ids serialize as their canonical string form.
func (id CaseID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *CaseID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = CaseID(u)
	return nil
}

func (id TransactionID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *TransactionID) UnmarshalText(b []byte) error {
	parsed, err := ParseTransactionID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// parseUUID is the shared validation logic.
// Nil UUIDs are allowed here; callers that must reject them use IsNil().
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
	}
	return id, nil
}
