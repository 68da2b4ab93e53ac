package handler

import (
	"net/http"

	"contactcentre/internal/cases/models"
	dErrors "contactcentre/pkg/domain-errors"
	"contactcentre/pkg/platform/httputil"
)

func (h *Handler) handleFulfilmentByPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pathCaseID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.PostalFulfilmentRequest](w, r, h.logger)
	if !ok {
		return
	}
	if !h.sameCase(w, id, req.CaseID) {
		return
	}

	res, err := h.service.FulfilmentRequestByPost(ctx, req)
	if err != nil {
		h.fail(ctx, w, "postal fulfilment failed", err,
			"case_id", id.String(),
			"fulfilment_code", req.FulfilmentCode,
		)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleFulfilmentBySMS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.pathCaseID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.SMSFulfilmentRequest](w, r, h.logger)
	if !ok {
		return
	}
	if !h.sameCase(w, id, req.CaseID) {
		return
	}

	res, err := h.service.FulfilmentRequestBySMS(ctx, req)
	if err != nil {
		h.fail(ctx, w, "sms fulfilment failed", err,
			"case_id", id.String(),
			"fulfilment_code", req.FulfilmentCode,
		)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleUnresolvedFulfilmentByPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.UnresolvedPostalFulfilmentRequest](w, r, h.logger)
	if !ok {
		return
	}

	res, err := h.service.UnresolvedFulfilmentByPost(ctx, req)
	if err != nil {
		h.fail(ctx, w, "unresolved postal fulfilment failed", err, "fulfilment_code", req.FulfilmentCode)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleUnresolvedFulfilmentBySMS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.UnresolvedSMSFulfilmentRequest](w, r, h.logger)
	if !ok {
		return
	}

	res, err := h.service.UnresolvedFulfilmentBySMS(ctx, req)
	if err != nil {
		h.fail(ctx, w, "unresolved sms fulfilment failed", err, "fulfilment_code", req.FulfilmentCode)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

// handleListFulfilments serves GET /fulfilments. Both filters are optional.
func (h *Handler) handleListFulfilments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var caseType models.CaseType
	if raw := q.Get("caseType"); raw != "" {
		if caseType = models.ParseCaseType(raw); caseType == models.CaseTypeUnknown {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "unknown caseType: "+raw))
			return
		}
	}
	var region models.Region
	if raw := q.Get("region"); raw != "" {
		var ok bool
		if region, ok = models.ParseRegion(raw); !ok || len(raw) != 1 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "region must be one of E, W, N"))
			return
		}
	}

	fulfilments, err := h.service.ListFulfilments(ctx, caseType, region)
	if err != nil {
		h.fail(ctx, w, "list fulfilments failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fulfilments)
}
