package models

import "contactcentre/pkg/domain"

// EventType names an outbound domain event.
type EventType string

const (
	EventFulfilmentRequested EventType = "FULFILMENT_REQUESTED"
	EventRefusalReceived     EventType = "REFUSAL_RECEIVED"
	EventSurveyLaunched      EventType = "SURVEY_LAUNCHED"
	EventAddressNotValid     EventType = "ADDRESS_NOT_VALID"
)

// Source and channel stamped on every event this service publishes.
const (
	EventSource  = "CONTACT_CENTRE_API"
	EventChannel = "CC"
)

// FulfilmentRequestedPayload is the FULFILMENT_REQUESTED payload.
type FulfilmentRequestedPayload struct {
	FulfilmentRequest FulfilmentRequest `json:"fulfilmentRequest"`
}

// FulfilmentRequest is built per call and discarded once published.
// IndividualCaseID is set only when a subsidiary case was minted.
type FulfilmentRequest struct {
	FulfilmentCode   string         `json:"fulfilmentCode"`
	CaseID           domain.CaseID  `json:"caseId"`
	IndividualCaseID *domain.CaseID `json:"individualCaseId,omitempty"`
	Address          Address        `json:"address"`
	Contact          Contact        `json:"contact"`
}

// RefusalReceivedPayload is the REFUSAL_RECEIVED payload.
type RefusalReceivedPayload struct {
	Refusal RefusalReport `json:"refusal"`
}

type RefusalReport struct {
	Type           RefusalType    `json:"type"`
	Report         string         `json:"report,omitempty"`
	AgentID        string         `json:"agentId"`
	CollectionCase CollectionCase `json:"collectionCase"`
	Contact        Contact        `json:"contact"`
	Address        Address        `json:"address"`
}

// CollectionCase references a case by id inside an event.
type CollectionCase struct {
	ID domain.CaseID `json:"id"`
}

// SurveyLaunchedPayload is the SURVEY_LAUNCHED payload.
type SurveyLaunchedPayload struct {
	Response SurveyLaunchedResponse `json:"response"`
}

type SurveyLaunchedResponse struct {
	QuestionnaireID string        `json:"questionnaireId"`
	CaseID          domain.CaseID `json:"caseId"`
	AgentID         string        `json:"agentId"`
}

// AddressNotValidPayload is the ADDRESS_NOT_VALID payload.
type AddressNotValidPayload struct {
	InvalidAddress InvalidAddress `json:"invalidAddress"`
}

type InvalidAddress struct {
	Reason         CaseStatus     `json:"reason"`
	Notes          string         `json:"notes,omitempty"`
	CollectionCase CollectionCase `json:"collectionCase"`
}

// LaunchTokenRequest carries everything the token issuer signs into a launch token.
type LaunchTokenRequest struct {
	Language        string
	Source          string
	Channel         string
	Case            *Case
	AgentID         string
	QuestionnaireID string
	FormType        string
	// Account service URLs are not used by the contact centre and stay empty.
	AccountServiceURL       string
	AccountServiceLogoutURL string
}

// AggregateID returns the case an event is about. Sinks use it as the message key
// so events for one case stay ordered.
func (p FulfilmentRequestedPayload) AggregateID() string {
	return p.FulfilmentRequest.CaseID.String()
}

func (p RefusalReceivedPayload) AggregateID() string {
	return p.Refusal.CollectionCase.ID.String()
}

func (p SurveyLaunchedPayload) AggregateID() string {
	return p.Response.CaseID.String()
}

func (p AddressNotValidPayload) AggregateID() string {
	return p.InvalidAddress.CollectionCase.ID.String()
}
