package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/radhian/reservation-reconciliation/adapter"
	"github.com/radhian/reservation-reconciliation/consts"
	usecase "github.com/radhian/reservation-reconciliation/usecase/reconciliation"
)

type ReconciliationHandler struct {
	Usecase     usecase.ReconciliationUsecase
	MaxFileSize int64
	validate    *validator.Validate
}

func NewReconciliationHandler(uc usecase.ReconciliationUsecase, maxFileSize int64) *ReconciliationHandler {
	if maxFileSize <= 0 {
		maxFileSize = consts.DefaultMaxFileSize
	}
	return &ReconciliationHandler{
		Usecase:     uc,
		MaxFileSize: maxFileSize,
		validate:    validator.New(),
	}
}

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(APIResponse{
		Status: "success",
		Data:   data,
	})
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(APIResponse{
		Status:  "error",
		Message: message,
	})
}

// writeUsecaseError maps usecase and adapter errors onto HTTP statuses. Unexpected
// errors are logged and answered with a generic message.
func writeUsecaseError(w http.ResponseWriter, tag string, err error) {
	switch {
	case errors.Is(err, adapter.ErrEmptyFile),
		errors.Is(err, adapter.ErrMissingDateColumns),
		errors.Is(err, adapter.ErrTooManyRows),
		errors.Is(err, usecase.ErrNoBillingConfig),
		errors.Is(err, usecase.ErrPropertyNotFound):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrImportInProgress):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, usecase.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.Errorf("[%s] %v", tag, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// validationMessage returns the first failed field of req, or "" when req is valid.
func (h *ReconciliationHandler) validationMessage(req interface{}) string {
	err := h.validate.Struct(req)
	if err == nil {
		return ""
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return "invalid field " + fe.Namespace() + ": failed on '" + fe.Tag() + "'"
	}
	return err.Error()
}

func accountID(r *http.Request) string {
	return r.Header.Get(consts.AccountHeader)
}
