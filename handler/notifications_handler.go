package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/radhian/reservation-reconciliation/entity"
)

func (h *ReconciliationHandler) IngestNotifications(w http.ResponseWriter, r *http.Request) {
	account := accountID(r)
	if account == "" {
		writeError(w, http.StatusBadRequest, "account is required")
		return
	}

	var req entity.IngestFragmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := h.validationMessage(req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	res, err := h.Usecase.IngestNotificationFragments(r.Context(), account, req)
	if err != nil {
		writeUsecaseError(w, "IngestNotifications", err)
		return
	}
	writeSuccess(w, res)
}

// ProcessNotifications runs a notification batch. An empty body processes with defaults.
func (h *ReconciliationHandler) ProcessNotifications(w http.ResponseWriter, r *http.Request) {
	var req entity.NotificationBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.AccountID = accountID(r)
	if req.AccountID == "" {
		writeError(w, http.StatusBadRequest, "account is required")
		return
	}
	if msg := h.validationMessage(req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	res, err := h.Usecase.ProcessNotifications(r.Context(), req)
	if err != nil {
		writeUsecaseError(w, "ProcessNotifications", err)
		return
	}
	writeSuccess(w, res)
}
