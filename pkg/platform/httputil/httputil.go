package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "contactcentre/pkg/domain-errors"
)

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Errors after WriteHeader cannot change the status code, so we ignore encoding errors.
	_ = json.NewEncoder(w).Encode(response)
}

// WriteError centralizes domain error translation to HTTP responses.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		WriteJSON(w, DomainCodeToHTTPStatus(domainErr.Code), ErrorResponse{
			Error:            DomainCodeToHTTPCode(domainErr.Code),
			ErrorDescription: domainErr.Message,
		})
		return
	}

	// Fallback for unexpected errors; the raw message is not exposed.
	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: DomainCodeToHTTPCode(dErrors.CodeInternal),
	})
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeInvalidInput:
		return http.StatusBadRequest
	case dErrors.CodeForbidden:
		return http.StatusForbidden
	case dErrors.CodeTimeout:
		return http.StatusGatewayTimeout
	case dErrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	case dErrors.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// DomainCodeToHTTPCode translates domain error codes to the error string in the JSON body.
func DomainCodeToHTTPCode(code dErrors.Code) string {
	switch code {
	case dErrors.CodeNotFound:
		return "RESOURCE_NOT_FOUND"
	case dErrors.CodeBadRequest, dErrors.CodeInvalidInput:
		return "BAD_REQUEST"
	case dErrors.CodeValidation:
		return "VALIDATION_FAILED"
	case dErrors.CodeForbidden:
		return "ACCESS_DENIED"
	case dErrors.CodeTimeout:
		return "UPSTREAM_TIMEOUT"
	case dErrors.CodeUnavailable:
		return "SERVICE_UNAVAILABLE"
	case dErrors.CodeRateLimited:
		return "TOO_MANY_REQUESTS"
	default:
		return "SYSTEM_ERROR"
	}
}
