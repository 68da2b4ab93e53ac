// Package handler exposes the contact-centre operations over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"contactcentre/internal/cases/models"
	"contactcentre/pkg/domain"
	dErrors "contactcentre/pkg/domain-errors"
	"contactcentre/pkg/platform/httputil"
	"contactcentre/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service,CCSChecker

const msgPathBodyMismatch = "caseId in path and body must be identical"

// Service is the orchestration layer behind the operator API.
type Service interface {
	GetCaseByID(ctx context.Context, id domain.CaseID, includeEvents bool) (*models.CaseDTO, error)
	GetCaseByUPRN(ctx context.Context, uprn domain.UPRN, includeEvents bool) ([]models.CaseDTO, error)
	GetCaseByReference(ctx context.Context, ref domain.CaseRef, includeEvents bool) (*models.CaseDTO, error)
	GetLaunchURL(ctx context.Context, caseID domain.CaseID, req *models.LaunchRequest) (string, error)
	FulfilmentRequestByPost(ctx context.Context, req *models.PostalFulfilmentRequest) (*models.ResponseDTO, error)
	FulfilmentRequestBySMS(ctx context.Context, req *models.SMSFulfilmentRequest) (*models.ResponseDTO, error)
	UnresolvedFulfilmentByPost(ctx context.Context, req *models.UnresolvedPostalFulfilmentRequest) (*models.ResponseDTO, error)
	UnresolvedFulfilmentBySMS(ctx context.Context, req *models.UnresolvedSMSFulfilmentRequest) (*models.ResponseDTO, error)
	ListFulfilments(ctx context.Context, caseType models.CaseType, region models.Region) ([]models.FulfilmentDTO, error)
	ReportRefusal(ctx context.Context, caseID domain.CaseID, req *models.RefusalRequest) (*models.ResponseDTO, error)
	ModifyCase(ctx context.Context, req *models.ModifyCaseRequest) (*models.ResponseDTO, error)
	MakeAppointment(ctx context.Context, req *models.AppointmentRequest) (*models.ResponseDTO, error)
}

// CCSChecker answers coverage-survey postcode lookups.
type CCSChecker interface {
	IsInCCS(postcode string) bool
}

// Handler serves case, fulfilment and CCS endpoints.
type Handler struct {
	service Service
	ccs     CCSChecker
	logger  *slog.Logger
}

func New(service Service, ccs CCSChecker, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, ccs: ccs, logger: logger}
}

// Register mounts the operator routes. Static segments win over {caseId} in chi,
// so /cases/uprn and /cases/unresolved never reach the id handlers.
func (h *Handler) Register(r chi.Router) {
	r.Route("/cases", func(r chi.Router) {
		r.Get("/uprn/{uprn}", h.handleGetCaseByUPRN)
		r.Get("/ref/{ref}", h.handleGetCaseByRef)
		r.Post("/unresolved/fulfilment/post", h.handleUnresolvedFulfilmentByPost)
		r.Post("/unresolved/fulfilment/sms", h.handleUnresolvedFulfilmentBySMS)

		r.Route("/{caseId}", func(r chi.Router) {
			r.Get("/", h.handleGetCaseByID)
			r.Put("/", h.handleModifyCase)
			r.Get("/launch", h.handleGetLaunchURL)
			r.Post("/fulfilment/post", h.handleFulfilmentByPost)
			r.Post("/fulfilment/sms", h.handleFulfilmentBySMS)
			r.Post("/refusal", h.handleReportRefusal)
			r.Post("/appointment", h.handleMakeAppointment)
		})
	})
	r.Get("/fulfilments", h.handleListFulfilments)
	r.Get("/ccs/postcodes/{postcode}", h.handleCCSPostcode)
}

func (h *Handler) handleGetCaseByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pathCaseID(w, r)
	if !ok {
		return
	}
	includeEvents, ok := h.includeEvents(w, r)
	if !ok {
		return
	}

	c, err := h.service.GetCaseByID(ctx, id, includeEvents)
	if err != nil {
		h.fail(ctx, w, "get case by id failed", err, "case_id", id.String())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) handleGetCaseByUPRN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uprn, err := domain.ParseUPRN(chi.URLParam(r, "uprn"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	includeEvents, ok := h.includeEvents(w, r)
	if !ok {
		return
	}

	cases, err := h.service.GetCaseByUPRN(ctx, uprn, includeEvents)
	if err != nil {
		h.fail(ctx, w, "get cases by uprn failed", err, "uprn", uprn.String())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, cases)
}

func (h *Handler) handleGetCaseByRef(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ref, err := domain.ParseCaseRef(chi.URLParam(r, "ref"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	includeEvents, ok := h.includeEvents(w, r)
	if !ok {
		return
	}

	c, err := h.service.GetCaseByReference(ctx, ref, includeEvents)
	if err != nil {
		h.fail(ctx, w, "get case by reference failed", err, "case_ref", ref.String())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) handleGetLaunchURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pathCaseID(w, r)
	if !ok {
		return
	}

	req := &models.LaunchRequest{AgentID: r.URL.Query().Get("agentId")}
	if raw := r.URL.Query().Get("individual"); raw != "" {
		individual, err := strconv.ParseBool(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "individual must be true or false"))
			return
		}
		req.Individual = individual
	}
	if err := httputil.PrepareRequest(req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	launchURL, err := h.service.GetLaunchURL(ctx, id, req)
	if err != nil {
		h.fail(ctx, w, "get launch url failed", err, "case_id", id.String())
		return
	}
	// The launch URL is returned as a bare JSON string.
	httputil.WriteJSON(w, http.StatusOK, launchURL)
}

func (h *Handler) handleReportRefusal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pathID, err := domain.ParseCaseIDOrUnknown(chi.URLParam(r, "caseId"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.RefusalRequest](w, r, h.logger)
	if !ok {
		return
	}
	bodyID, err := domain.ParseCaseIDOrUnknown(req.CaseID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if bodyID != pathID {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, msgPathBodyMismatch))
		return
	}

	res, err := h.service.ReportRefusal(ctx, pathID, req)
	if err != nil {
		h.fail(ctx, w, "report refusal failed", err, "case_id", pathID.String())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleModifyCase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pathCaseID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.ModifyCaseRequest](w, r, h.logger)
	if !ok {
		return
	}
	if !h.sameCase(w, id, req.CaseID) {
		return
	}

	res, err := h.service.ModifyCase(ctx, req)
	if err != nil {
		h.fail(ctx, w, "modify case failed", err, "case_id", id.String())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleMakeAppointment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pathCaseID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.AppointmentRequest](w, r, h.logger)
	if !ok {
		return
	}
	if !h.sameCase(w, id, req.CaseID) {
		return
	}

	res, err := h.service.MakeAppointment(ctx, req)
	if err != nil {
		h.fail(ctx, w, "make appointment failed", err, "case_id", id.String())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleCCSPostcode(w http.ResponseWriter, r *http.Request) {
	postcode := strings.TrimSpace(chi.URLParam(r, "postcode"))
	if postcode == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "postcode is required"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.CCSPostcodeDTO{
		Postcode: postcode,
		InCCS:    h.ccs.IsInCCS(postcode),
	})
}

// pathCaseID parses {caseId}, writing a 400 on failure.
func (h *Handler) pathCaseID(w http.ResponseWriter, r *http.Request) (domain.CaseID, bool) {
	id, err := domain.ParseCaseID(chi.URLParam(r, "caseId"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "caseId must be a valid UUID"))
		return domain.CaseID{}, false
	}
	return id, true
}

// sameCase rejects a body whose caseId differs from the path. The body id has
// already passed uuid validation.
func (h *Handler) sameCase(w http.ResponseWriter, pathID domain.CaseID, bodyID string) bool {
	id, err := domain.ParseCaseID(bodyID)
	if err != nil || id != pathID {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, msgPathBodyMismatch))
		return false
	}
	return true
}

func (h *Handler) includeEvents(w http.ResponseWriter, r *http.Request) (bool, bool) {
	raw := r.URL.Query().Get("caseEvents")
	if raw == "" {
		return false, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "caseEvents must be true or false"))
		return false, false
	}
	return v, true
}

// fail logs a service error at a level matching its class and writes the response.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, attrs ...any) {
	attrs = append(attrs, "error", err, "request_id", requestcontext.RequestID(ctx))
	if httputil.DomainCodeToHTTPStatus(dErrors.CodeOf(err)) >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, attrs...)
	} else {
		h.logger.WarnContext(ctx, msg, attrs...)
	}
	httputil.WriteError(w, err)
}
