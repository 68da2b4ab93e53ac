// Package client calls the downstream case service that owns case records.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"contactcentre/internal/cases/models"
	"contactcentre/internal/platform/tracer"
	"contactcentre/pkg/domain"
	"contactcentre/pkg/platform/circuit"
)

const maxResponseBytes = 4 << 20

// HTTPDoer is the subset of *http.Client the directory client needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPClient reads cases and allocates questionnaire ids over the case service REST API.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient HTTPDoer
	tracer     tracer.Tracer
	breaker    *circuit.Breaker
}

// Option configures the HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *HTTPClient) {
		c.httpClient = doer
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(c *HTTPClient) {
		c.tracer = t
	}
}

// WithBreaker fails calls fast while the case service is known to be down.
// Only timeouts and outages count against the circuit.
func WithBreaker(b *circuit.Breaker) Option {
	return func(c *HTTPClient) {
		c.breaker = b
	}
}

// New creates a case directory client. timeout bounds every request.
func New(baseURL, apiKey string, timeout time.Duration, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		tracer:     tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetCaseByID fetches one case, with its history when includeEvents is set.
func (c *HTTPClient) GetCaseByID(ctx context.Context, id domain.CaseID, includeEvents bool) (result *models.Case, err error) {
	ctx, span := c.tracer.Start(ctx, tracer.SpanDirectoryGetCase,
		tracer.String(tracer.AttrCaseID, id.String()),
		tracer.Bool(tracer.AttrIncludeEvents, includeEvents),
	)
	defer func() { span.End(err) }()

	var resp caseResponse
	q := url.Values{"caseEvents": {strconv.FormatBool(includeEvents)}}
	if err := c.get(ctx, "get_case", "/cases/"+id.String(), q, &resp); err != nil {
		return nil, err
	}
	return resp.toModel("get_case")
}

// GetCasesByUPRN fetches every case at a property, in the order the directory returns them.
// A property with no cases yields an empty slice, not an error.
func (c *HTTPClient) GetCasesByUPRN(ctx context.Context, uprn domain.UPRN, includeEvents bool) (result []models.Case, err error) {
	ctx, span := c.tracer.Start(ctx, tracer.SpanDirectoryGetByUPRN,
		tracer.String(tracer.AttrUPRN, uprn.String()),
		tracer.Bool(tracer.AttrIncludeEvents, includeEvents),
	)
	defer func() { span.End(err) }()

	var resp []caseResponse
	q := url.Values{"caseEvents": {strconv.FormatBool(includeEvents)}}
	if err := c.get(ctx, "get_by_uprn", "/cases/uprn/"+uprn.String(), q, &resp); err != nil {
		if IsNotFound(err) {
			return []models.Case{}, nil
		}
		return nil, err
	}

	cases := make([]models.Case, 0, len(resp))
	for _, r := range resp {
		m, err := r.toModel("get_by_uprn")
		if err != nil {
			return nil, err
		}
		cases = append(cases, *m)
	}
	span.SetAttributes(tracer.Int(tracer.AttrResultCount, len(cases)))
	return cases, nil
}

// GetCaseByRef fetches one case by its numeric reference.
func (c *HTTPClient) GetCaseByRef(ctx context.Context, ref domain.CaseRef, includeEvents bool) (result *models.Case, err error) {
	ctx, span := c.tracer.Start(ctx, tracer.SpanDirectoryGetByRef,
		tracer.Bool(tracer.AttrIncludeEvents, includeEvents),
	)
	defer func() { span.End(err) }()

	var resp caseResponse
	q := url.Values{"caseEvents": {strconv.FormatBool(includeEvents)}}
	if err := c.get(ctx, "get_by_ref", "/cases/ref/"+ref.String(), q, &resp); err != nil {
		return nil, err
	}
	return resp.toModel("get_by_ref")
}

// AllocateQuestionnaireID asks the directory for a single-use questionnaire id.
// individualCaseID is sent only when a subsidiary case was minted for the launch.
func (c *HTTPClient) AllocateQuestionnaireID(ctx context.Context, caseID domain.CaseID, individual bool, individualCaseID *domain.CaseID) (result *models.QuestionnaireAllocation, err error) {
	ctx, span := c.tracer.Start(ctx, tracer.SpanDirectoryAllocQID,
		tracer.String(tracer.AttrCaseID, caseID.String()),
	)
	defer func() { span.End(err) }()

	q := url.Values{"individual": {strconv.FormatBool(individual)}}
	if individualCaseID != nil {
		q.Set("individualCaseId", individualCaseID.String())
	}
	var resp qidResponse
	if err := c.get(ctx, "allocate_qid", "/cases/"+caseID.String()+"/qid", q, &resp); err != nil {
		return nil, err
	}
	if resp.QuestionnaireID == "" {
		return nil, newError(ErrorContractMismatch, "allocate_qid", "response missing questionnaireId", http.StatusOK, nil)
	}
	return &models.QuestionnaireAllocation{
		QuestionnaireID: resp.QuestionnaireID,
		FormType:        resp.FormType,
	}, nil
}

func (c *HTTPClient) get(ctx context.Context, op, path string, query url.Values, out any) error {
	if c.breaker == nil {
		return c.do(ctx, op, path, query, out)
	}
	if !c.breaker.Allow() {
		return newError(ErrorOutage, op, "circuit open", 0, nil)
	}
	err := c.do(ctx, op, path, query, out)
	var cerr *Error
	if errors.As(err, &cerr) && (cerr.Category == ErrorOutage || cerr.Category == ErrorTimeout) {
		c.breaker.RecordFailure()
	} else {
		c.breaker.RecordSuccess()
	}
	return err
}

// do issues a GET and decodes a 200 body into out. Every failure is an *Error.
func (c *HTTPClient) do(ctx context.Context, op, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return newError(ErrorInternal, op, "failed to create request", 0, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return newError(ErrorTimeout, op, "request timeout", 0, err)
		}
		return newError(ErrorOutage, op, "failed to execute request", 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return newError(ErrorInternal, op, "failed to read response body", resp.StatusCode, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return newError(ErrorAuthentication, op, "authentication failed", resp.StatusCode, nil)
	case http.StatusBadRequest:
		var errResp errorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
			return newError(ErrorBadData, op, errResp.Message, resp.StatusCode, nil)
		}
		return newError(ErrorBadData, op, "bad request", resp.StatusCode, nil)
	case http.StatusNotFound:
		return newError(ErrorNotFound, op, "case not found", resp.StatusCode, nil)
	case http.StatusTooManyRequests:
		return newError(ErrorRateLimited, op, "rate limited", resp.StatusCode, nil)
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return newError(ErrorOutage, op, "service unavailable", resp.StatusCode, nil)
	case http.StatusGatewayTimeout:
		return newError(ErrorTimeout, op, "upstream timeout", resp.StatusCode, nil)
	default:
		return newError(ErrorInternal, op, fmt.Sprintf("unexpected status code: %d", resp.StatusCode), resp.StatusCode, nil)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return newError(ErrorContractMismatch, op, "failed to parse response", resp.StatusCode, err)
	}
	return nil
}
