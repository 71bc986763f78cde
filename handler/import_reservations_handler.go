package handler

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/radhian/reservation-reconciliation/config"
	"github.com/radhian/reservation-reconciliation/entity"
)

const multipartOverhead = 1 << 20

func (h *ReconciliationHandler) ImportReservations(w http.ResponseWriter, r *http.Request) {
	req, message := h.parseImportRequest(w, r)
	if message != "" {
		writeError(w, http.StatusBadRequest, message)
		return
	}

	res, err := h.Usecase.ImportReservations(r.Context(), req)
	if err != nil {
		writeUsecaseError(w, "ImportReservations", err)
		return
	}
	writeSuccess(w, res)
}

func (h *ReconciliationHandler) parseImportRequest(w http.ResponseWriter, r *http.Request) (entity.BulkImportRequest, string) {
	req := entity.BulkImportRequest{
		AccountID:      accountID(r),
		SkipDuplicates: true,
	}
	if req.AccountID == "" {
		return req, "account is required"
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxFileSize+multipartOverhead)
	if err := r.ParseMultipartForm(h.MaxFileSize); err != nil {
		return req, "invalid multipart form: " + err.Error()
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return req, "file is required"
	}
	defer file.Close()

	if header.Size > h.MaxFileSize {
		return req, "file exceeds the maximum size of " + strconv.FormatInt(h.MaxFileSize, 10) + " bytes"
	}
	if req.Content, err = io.ReadAll(io.LimitReader(file, h.MaxFileSize+1)); err != nil {
		return req, "failed to read file"
	}
	if int64(len(req.Content)) > h.MaxFileSize {
		return req, "file exceeds the maximum size of " + strconv.FormatInt(h.MaxFileSize, 10) + " bytes"
	}
	req.FileName = header.Filename

	if v := strings.TrimSpace(r.FormValue("property_id")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return req, "property_id must be a positive integer"
		}
		req.PropertyID = id
	}
	if v := strings.TrimSpace(r.FormValue("skip_duplicates")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return req, "skip_duplicates must be a boolean"
		}
		req.SkipDuplicates = b
	}
	if v := strings.TrimSpace(r.FormValue("auto_create_properties")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return req, "auto_create_properties must be a boolean"
		}
		req.AutoCreateProperties = b
	}
	if v := r.FormValue("date_order"); v != "" {
		order, ok := config.ParseDateOrder(v)
		if !ok {
			return req, "date_order must be MDY or DMY"
		}
		req.DateOrder = order
	}
	return req, ""
}
