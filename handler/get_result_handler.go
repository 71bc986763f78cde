package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *ReconciliationHandler) GetImportBatches(w http.ResponseWriter, r *http.Request) {
	account := accountID(r)
	if account == "" {
		writeError(w, http.StatusBadRequest, "account is required")
		return
	}

	batches, err := h.Usecase.GetImportBatches(r.Context(), account)
	if err != nil {
		writeUsecaseError(w, "GetImportBatches", err)
		return
	}
	writeSuccess(w, batches)
}

func (h *ReconciliationHandler) GetImportBatch(w http.ResponseWriter, r *http.Request) {
	account := accountID(r)
	if account == "" {
		writeError(w, http.StatusBadRequest, "account is required")
		return
	}

	batchID := mux.Vars(r)["batchId"]
	if batchID == "" {
		writeError(w, http.StatusBadRequest, "batchId is required")
		return
	}

	batch, err := h.Usecase.GetImportBatch(r.Context(), account, batchID)
	if err != nil {
		writeUsecaseError(w, "GetImportBatch", err)
		return
	}
	writeSuccess(w, batch)
}
