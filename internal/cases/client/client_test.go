package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactcentre/internal/cases/models"
	"contactcentre/pkg/domain"
	"contactcentre/pkg/platform/circuit"
)

const caseJSON = `{
	"id": "3305e937-6fb1-4ce1-9d4c-077f147789ab",
	"caseRef": "1000000017",
	"caseType": "HH",
	"addressType": "HH",
	"addressLine1": "1 Main Street",
	"townName": "Exeter",
	"postcode": "EX1 1AA",
	"region": "E1000",
	"uprn": "1347459999",
	"handDelivery": false,
	"createdDateTime": "2020-03-01T10:00:00Z",
	"caseEvents": [
		{"category": "CASE_CREATED", "description": "created", "createdDateTime": "2020-03-01T10:00:00Z"},
		{"category": "PRINT_FULFILMENT", "description": "printed", "createdDateTime": "2020-03-02T10:00:00Z"}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "test-key", 2*time.Second)
}

func TestGetCaseByID(t *testing.T) {
	caseID, err := domain.ParseCaseID("3305e937-6fb1-4ce1-9d4c-077f147789ab")
	require.NoError(t, err)

	t.Run("decodes case and preserves event order", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/cases/"+caseID.String(), r.URL.Path)
			assert.Equal(t, "true", r.URL.Query().Get("caseEvents"))
			assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))
			_, _ = w.Write([]byte(caseJSON))
		})

		got, err := c.GetCaseByID(context.Background(), caseID, true)
		require.NoError(t, err)
		assert.Equal(t, caseID, got.ID)
		assert.Equal(t, models.CaseTypeHH, got.CaseType)
		assert.Equal(t, domain.CaseRef(1000000017), got.CaseRef)
		assert.Equal(t, domain.UPRN(1347459999), got.Address.UPRN)
		assert.Equal(t, "E1000", got.RegionCode)
		require.Len(t, got.Events, 2)
		assert.Equal(t, "CASE_CREATED", got.Events[0].Category)
		assert.Equal(t, "PRINT_FULFILMENT", got.Events[1].Category)
	})

	t.Run("unrecognised case type maps to unknown but keeps raw value", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id":"3305e937-6fb1-4ce1-9d4c-077f147789ab","caseType":"NR"}`))
		})

		got, err := c.GetCaseByID(context.Background(), caseID, false)
		require.NoError(t, err)
		assert.Equal(t, models.CaseTypeUnknown, got.CaseType)
		assert.Equal(t, "NR", got.RawCaseType)
	})

	statusCases := []struct {
		name     string
		status   int
		category ErrorCategory
	}{
		{"not found", http.StatusNotFound, ErrorNotFound},
		{"unauthorized", http.StatusUnauthorized, ErrorAuthentication},
		{"bad request", http.StatusBadRequest, ErrorBadData},
		{"rate limited", http.StatusTooManyRequests, ErrorRateLimited},
		{"unavailable", http.StatusServiceUnavailable, ErrorOutage},
		{"gateway timeout", http.StatusGatewayTimeout, ErrorTimeout},
		{"server error", http.StatusInternalServerError, ErrorInternal},
	}
	for _, tc := range statusCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			})

			_, err := c.GetCaseByID(context.Background(), caseID, false)
			require.Error(t, err)
			assert.Equal(t, tc.category, CategoryOf(err))
		})
	}

	t.Run("malformed body is a contract mismatch", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id":`))
		})

		_, err := c.GetCaseByID(context.Background(), caseID, false)
		assert.Equal(t, ErrorContractMismatch, CategoryOf(err))
	})

	t.Run("slow server is a timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		t.Cleanup(srv.Close)
		c := New(srv.URL, "", time.Second)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err := c.GetCaseByID(ctx, caseID, false)
		assert.Equal(t, ErrorTimeout, CategoryOf(err))
	})
}

func TestGetCasesByUPRN(t *testing.T) {
	t.Run("returns cases in directory order", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/cases/uprn/1347459999", r.URL.Path)
			_, _ = w.Write([]byte(`[
				{"id":"3305e937-6fb1-4ce1-9d4c-077f147789ab","caseType":"HH"},
				{"id":"03f58cb5-9af4-4d40-9d60-c124c5bddf09","caseType":"HI"},
				{"id":"4a2d0f3c-55a4-4a97-9e5c-3d4c0c0f1b7e","caseType":"CE"}
			]`))
		})

		got, err := c.GetCasesByUPRN(context.Background(), 1347459999, false)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, models.CaseTypeHH, got[0].CaseType)
		assert.Equal(t, models.CaseTypeHI, got[1].CaseType)
		assert.Equal(t, models.CaseTypeCE, got[2].CaseType)
	})

	t.Run("not found is an empty list", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		got, err := c.GetCasesByUPRN(context.Background(), 1, false)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestAllocateQuestionnaireID(t *testing.T) {
	caseID := domain.NewCaseID()
	individualID := domain.NewCaseID()

	t.Run("passes individual flags", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/cases/"+caseID.String()+"/qid", r.URL.Path)
			assert.Equal(t, "true", r.URL.Query().Get("individual"))
			assert.Equal(t, individualID.String(), r.URL.Query().Get("individualCaseId"))
			_, _ = w.Write([]byte(`{"questionnaireId":"0130000000000300","formType":"I"}`))
		})

		got, err := c.AllocateQuestionnaireID(context.Background(), caseID, true, &individualID)
		require.NoError(t, err)
		assert.Equal(t, "0130000000000300", got.QuestionnaireID)
		assert.Equal(t, "I", got.FormType)
	})

	t.Run("omits individual case id when not minted", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, r.URL.Query().Has("individualCaseId"))
			_, _ = w.Write([]byte(`{"questionnaireId":"0110000000000200","formType":"H"}`))
		})

		_, err := c.AllocateQuestionnaireID(context.Background(), caseID, false, nil)
		require.NoError(t, err)
	})

	t.Run("missing questionnaire id is a contract mismatch", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"formType":"H"}`))
		})

		_, err := c.AllocateQuestionnaireID(context.Background(), caseID, false, nil)
		assert.Equal(t, ErrorContractMismatch, CategoryOf(err))
	})
}

func TestBreaker(t *testing.T) {
	caseID := domain.NewCaseID()

	t.Run("outages open the circuit and later calls fail fast", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		t.Cleanup(srv.Close)
		c := New(srv.URL, "", time.Second,
			WithBreaker(circuit.New("case-service", circuit.WithFailureThreshold(2), circuit.WithCooldown(time.Hour))))

		for range 3 {
			_, err := c.GetCaseByID(context.Background(), caseID, false)
			assert.Equal(t, ErrorOutage, CategoryOf(err))
		}
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("not found does not count against the circuit", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		t.Cleanup(srv.Close)
		c := New(srv.URL, "", time.Second,
			WithBreaker(circuit.New("case-service", circuit.WithFailureThreshold(1))))

		for range 3 {
			_, err := c.GetCaseByID(context.Background(), caseID, false)
			assert.Equal(t, ErrorNotFound, CategoryOf(err))
		}
		assert.Equal(t, int32(3), calls.Load())
	})
}
