// Command case-service is a stand-in for the census case service used in local
// development and e2e runs. Cases are fixed fixtures keyed by id, UPRN and reference.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync/atomic"
	"time"
)

const (
	defaultPort      = "8081"
	defaultAPIKey    = "case-service-secret-key"
	defaultLatencyMs = "50"
)

type caseEvent struct {
	Category        string `json:"category"`
	Description     string `json:"description"`
	CreatedDateTime string `json:"createdDateTime"`
}

type caseResponse struct {
	ID               string      `json:"id"`
	CaseRef          string      `json:"caseRef"`
	CaseType         string      `json:"caseType"`
	AddressType      string      `json:"addressType"`
	EstabType        string      `json:"estabType"`
	AddressLine1     string      `json:"addressLine1"`
	AddressLine2     string      `json:"addressLine2"`
	AddressLine3     string      `json:"addressLine3"`
	TownName         string      `json:"townName"`
	Postcode         string      `json:"postcode"`
	Region           string      `json:"region"`
	OrganisationName string      `json:"organisationName,omitempty"`
	UPRN             string      `json:"uprn"`
	HandDelivery     bool        `json:"handDelivery"`
	CreatedDateTime  string      `json:"createdDateTime"`
	CaseEvents       []caseEvent `json:"caseEvents"`
}

type qidResponse struct {
	QuestionnaireID string `json:"questionnaireId"`
	FormType        string `json:"formType"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var (
	apiKey    = getEnv("API_KEY", defaultAPIKey)
	latencyMs = getEnvInt("LATENCY_MS", defaultLatencyMs)
	qidSeq    atomic.Int64
)

// Magic ids let e2e runs drive the stub into failure modes.
const (
	idTimeout = "00000000-0000-0000-0000-00000000a504"
	idOutage  = "00000000-0000-0000-0000-00000000a503"
)

var fixtures = []caseResponse{
	{
		ID: "3305e937-6fb1-4ce1-9d4c-077f147789ab", CaseRef: "1000000001", CaseType: "HH", AddressType: "HH",
		EstabType: "HOUSEHOLD", AddressLine1: "1 Main Street", AddressLine2: "Upper Upperingham",
		TownName: "Upton", Postcode: "UP103UP", Region: "E1000", UPRN: "1347459999",
		CreatedDateTime: "2021-01-10T09:00:00Z",
		CaseEvents: []caseEvent{
			{Category: "CASE_CREATED", Description: "Case created", CreatedDateTime: "2021-01-10T09:00:00Z"},
			{Category: "PRINT_CASE_SELECTED", Description: "Printed", CreatedDateTime: "2021-01-11T09:00:00Z"},
		},
	},
	{
		ID: "b7565b5e-1396-4965-91a2-918c0d3642ed", CaseRef: "1000000002", CaseType: "CE", AddressType: "CE",
		EstabType: "CARE HOME", AddressLine1: "Sunny Care Home", AddressLine2: "2 Hill Road",
		TownName: "Leeds", Postcode: "LS1 1AA", Region: "E1000", OrganisationName: "Sunny Care Ltd",
		UPRN: "1347459998", HandDelivery: true, CreatedDateTime: "2021-01-10T09:00:00Z",
	},
	{
		ID: "c2a9e8f0-5fd4-4c30-ae2b-3b5f1c6f6a11", CaseRef: "1000000003", CaseType: "HH", AddressType: "HH",
		EstabType: "HOUSEHOLD", AddressLine1: "3 Stryd Fawr", TownName: "Cardiff", Postcode: "CF10 1AA",
		Region: "W1000", UPRN: "1347459997", CreatedDateTime: "2021-01-10T09:00:00Z",
	},
	{
		ID: "d8f5b1a2-7e5c-4c1f-9a4b-2f0e6c7d8e99", CaseRef: "1000000004", CaseType: "HI", AddressType: "HH",
		EstabType: "HOUSEHOLD", AddressLine1: "1 Main Street", TownName: "Upton", Postcode: "UP103UP",
		Region: "E1000", UPRN: "1347459999", CreatedDateTime: "2021-01-12T09:00:00Z",
	},
}

func main() {
	port := getEnv("PORT", defaultPort)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("GET /cases/uprn/{uprn}", withAuth(handleByUPRN))
	mux.HandleFunc("GET /cases/ref/{ref}", withAuth(handleByRef))
	mux.HandleFunc("GET /cases/{id}/qid", withAuth(handleQID))
	mux.HandleFunc("GET /cases/{id}", withAuth(handleByID))

	log.Printf("mock case service starting on port %s (latency %dms)", port, latencyMs)
	srv := &http.Server{Addr: ":" + port, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "case-service"})
}

func withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != apiKey {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Message: "invalid API key"})
			return
		}
		time.Sleep(time.Duration(latencyMs) * time.Millisecond)
		next(w, r)
	}
}

func handleByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	switch id {
	case idTimeout:
		writeJSON(w, http.StatusGatewayTimeout, errorResponse{Error: "timeout", Message: "upstream timed out"})
		return
	case idOutage:
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "unavailable", Message: "maintenance"})
		return
	}
	for _, c := range fixtures {
		if c.ID == id {
			writeJSON(w, http.StatusOK, withEvents(c, r))
			return
		}
	}
	notFound(w, "case "+id)
}

func handleByUPRN(w http.ResponseWriter, r *http.Request) {
	uprn := r.PathValue("uprn")
	var out []caseResponse
	for _, c := range fixtures {
		if c.UPRN == uprn {
			out = append(out, withEvents(c, r))
		}
	}
	if len(out) == 0 {
		notFound(w, "uprn "+uprn)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func handleByRef(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("ref")
	for _, c := range fixtures {
		if c.CaseRef == ref {
			writeJSON(w, http.StatusOK, withEvents(c, r))
			return
		}
	}
	notFound(w, "case ref "+ref)
}

func handleQID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	for _, c := range fixtures {
		if c.ID != id {
			continue
		}
		formType := "H"
		switch {
		case r.URL.Query().Get("individual") == "true":
			formType = "I"
		case c.CaseType == "CE":
			formType = "C"
		}
		writeJSON(w, http.StatusOK, qidResponse{
			QuestionnaireID: fmt.Sprintf("01300000%08d", qidSeq.Add(1)),
			FormType:        formType,
		})
		return
	}
	notFound(w, "case "+id)
}

func withEvents(c caseResponse, r *http.Request) caseResponse {
	if r.URL.Query().Get("caseEvents") != "true" {
		c.CaseEvents = nil
	}
	return c
}

func notFound(w http.ResponseWriter, what string) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: "not_found", Message: what + " not found"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key, fallback string) int {
	n, err := strconv.Atoi(getEnv(key, fallback))
	if err != nil {
		return 0
	}
	return n
}
