package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/radhian/reservation-reconciliation/adapter"
	"github.com/radhian/reservation-reconciliation/consts"
	"github.com/radhian/reservation-reconciliation/entity"
	usecase "github.com/radhian/reservation-reconciliation/usecase/reconciliation"
	"github.com/radhian/reservation-reconciliation/usecase/reconciliation/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const account = "acc-1"

func multipartRequest(t *testing.T, fields map[string]string, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if content != "" {
		fw, err := mw.CreateFormFile("file", "export.csv")
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/reservations/import", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	r.Header.Set(consts.AccountHeader, account)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestImportReservations(t *testing.T) {
	tests := []struct {
		name       string
		fields     map[string]string
		content    string
		mock       func(uc *mocks.MockReconciliationUsecase)
		wantCode   int
		wantStatus string
	}{
		{
			name:    "defaults",
			content: "a,b\n1,2\n",
			mock: func(uc *mocks.MockReconciliationUsecase) {
				uc.EXPECT().ImportReservations(gomock.Any(), entity.BulkImportRequest{
					AccountID:      account,
					FileName:       "export.csv",
					Content:        []byte("a,b\n1,2\n"),
					SkipDuplicates: true,
				}).Return(&entity.BulkImportResult{ImportedCount: 1}, nil)
			},
			wantCode:   http.StatusOK,
			wantStatus: "success",
		},
		{
			name: "options",
			fields: map[string]string{
				"property_id":            "7",
				"skip_duplicates":        "false",
				"auto_create_properties": "true",
				"date_order":             "dmy",
			},
			content: "a,b\n1,2\n",
			mock: func(uc *mocks.MockReconciliationUsecase) {
				uc.EXPECT().ImportReservations(gomock.Any(), entity.BulkImportRequest{
					AccountID:            account,
					FileName:             "export.csv",
					Content:              []byte("a,b\n1,2\n"),
					PropertyID:           7,
					AutoCreateProperties: true,
					DateOrder:            consts.DayFirst,
				}).Return(&entity.BulkImportResult{}, nil)
			},
			wantCode:   http.StatusOK,
			wantStatus: "success",
		},
		{name: "missing file", wantCode: http.StatusBadRequest, wantStatus: "error"},
		{name: "bad property id", fields: map[string]string{"property_id": "x"}, content: "a", wantCode: http.StatusBadRequest, wantStatus: "error"},
		{name: "bad date order", fields: map[string]string{"date_order": "YMD"}, content: "a", wantCode: http.StatusBadRequest, wantStatus: "error"},
		{name: "file too large", content: strings.Repeat("x", 65), wantCode: http.StatusBadRequest, wantStatus: "error"},
		{
			name:    "unusable file",
			content: "a",
			mock: func(uc *mocks.MockReconciliationUsecase) {
				uc.EXPECT().ImportReservations(gomock.Any(), gomock.Any()).Return(nil, adapter.ErrMissingDateColumns)
			},
			wantCode:   http.StatusBadRequest,
			wantStatus: "error",
		},
		{
			name:    "import running",
			content: "a",
			mock: func(uc *mocks.MockReconciliationUsecase) {
				uc.EXPECT().ImportReservations(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrImportInProgress)
			},
			wantCode:   http.StatusConflict,
			wantStatus: "error",
		},
		{
			name:    "store failure",
			content: "a",
			mock: func(uc *mocks.MockReconciliationUsecase) {
				uc.EXPECT().ImportReservations(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantCode:   http.StatusInternalServerError,
			wantStatus: "error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockReconciliationUsecase(ctrl)
			if tt.mock != nil {
				tt.mock(uc)
			}
			h := NewReconciliationHandler(uc, 64)

			w := httptest.NewRecorder()
			h.ImportReservations(w, multipartRequest(t, tt.fields, tt.content))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantStatus, decode(t, w).Status)
		})
	}
}

func TestProcessNotifications(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mock     func(uc *mocks.MockReconciliationUsecase)
		wantCode int
	}{
		{
			name: "empty body uses defaults",
			mock: func(uc *mocks.MockReconciliationUsecase) {
				uc.EXPECT().ProcessNotifications(gomock.Any(), entity.NotificationBatchRequest{AccountID: account}).
					Return(&entity.NotificationBatchResult{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "confirmed matches",
			body: `{"processAutoMatchedOnly":true,"confirmMatches":[{"propertyName":"Beach Loft","propertyId":3}]}`,
			mock: func(uc *mocks.MockReconciliationUsecase) {
				uc.EXPECT().ProcessNotifications(gomock.Any(), entity.NotificationBatchRequest{
					AccountID:              account,
					ProcessAutoMatchedOnly: true,
					ConfirmMatches:         []entity.ManualMatch{{PropertyName: "Beach Loft", PropertyID: 3}},
				}).Return(&entity.NotificationBatchResult{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{name: "match without property", body: `{"confirmMatches":[{"propertyName":"Beach Loft"}]}`, wantCode: http.StatusBadRequest},
		{name: "malformed", body: `{`, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockReconciliationUsecase(ctrl)
			if tt.mock != nil {
				tt.mock(uc)
			}
			h := NewReconciliationHandler(uc, 0)

			r := httptest.NewRequest(http.MethodPost, "/notifications/process", strings.NewReader(tt.body))
			r.Header.Set(consts.AccountHeader, account)
			w := httptest.NewRecorder()
			h.ProcessNotifications(w, r)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestIngestNotifications(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mock     func(uc *mocks.MockReconciliationUsecase)
		wantCode int
	}{
		{
			name: "stored",
			body: `{"fragments":[{"externalId":"msg-1","eventKind":"PAYOUT","bookingId":"HM1","checkIn":"2026-03-15"}]}`,
			mock: func(uc *mocks.MockReconciliationUsecase) {
				uc.EXPECT().IngestNotificationFragments(gomock.Any(), account, gomock.Any()).
					Return(&entity.IngestFragmentsResult{Received: 1, Stored: 1}, nil)
			},
			wantCode: http.StatusOK,
		},
		{name: "no fragments", body: `{"fragments":[]}`, wantCode: http.StatusBadRequest},
		{name: "unknown event kind", body: `{"fragments":[{"externalId":"msg-1","eventKind":"REVIEW"}]}`, wantCode: http.StatusBadRequest},
		{name: "bad date", body: `{"fragments":[{"externalId":"msg-1","eventKind":"PAYOUT","checkIn":"15/03/2026"}]}`, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockReconciliationUsecase(ctrl)
			if tt.mock != nil {
				tt.mock(uc)
			}
			h := NewReconciliationHandler(uc, 0)

			r := httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(tt.body))
			r.Header.Set(consts.AccountHeader, account)
			w := httptest.NewRecorder()
			h.IngestNotifications(w, r)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestGetImportBatch(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "found", wantCode: http.StatusOK},
		{name: "not found", err: fmt.Errorf("IMP-1: %w", usecase.ErrNotFound), wantCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockReconciliationUsecase(ctrl)
			var view *entity.ImportBatchView
			if tt.err == nil {
				view = &entity.ImportBatchView{BatchID: "IMP-1"}
			}
			uc.EXPECT().GetImportBatch(gomock.Any(), account, "IMP-1").Return(view, tt.err)

			router := mux.NewRouter()
			h := NewReconciliationHandler(uc, 0)
			router.HandleFunc("/imports/{batchId}", h.GetImportBatch).Methods(http.MethodGet)

			r := httptest.NewRequest(http.MethodGet, "/imports/IMP-1", nil)
			r.Header.Set(consts.AccountHeader, account)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestGetImportBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockReconciliationUsecase(ctrl)
	uc.EXPECT().GetImportBatches(gomock.Any(), account).Return([]entity.ImportBatchView{{BatchID: "IMP-1"}}, nil)
	h := NewReconciliationHandler(uc, 0)

	r := httptest.NewRequest(http.MethodGet, "/imports", nil)
	r.Header.Set(consts.AccountHeader, account)
	w := httptest.NewRecorder()
	h.GetImportBatches(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"importBatchId":"IMP-1"`)
}

func TestReconciliationExecution(t *testing.T) {
	tests := []struct {
		name    string
		mock    func(uc *mocks.MockReconciliationUsecase)
		wantErr error
	}{
		{
			name: "processes and unlocks",
			mock: func(uc *mocks.MockReconciliationUsecase) {
				gomock.InOrder(
					uc.EXPECT().TryAcquireLock(gomock.Any()).Return(true, account, nil),
					uc.EXPECT().ProcessNotificationJob(gomock.Any(), account).Return(nil),
					uc.EXPECT().UnlockProcess(gomock.Any(), account),
				)
			},
		},
		{
			name: "unlocks after a failed job",
			mock: func(uc *mocks.MockReconciliationUsecase) {
				uc.EXPECT().TryAcquireLock(gomock.Any()).Return(true, account, nil)
				uc.EXPECT().ProcessNotificationJob(gomock.Any(), account).Return(errors.New("boom"))
				uc.EXPECT().UnlockProcess(gomock.Any(), account)
			},
			wantErr: errors.New("boom"),
		},
		{
			name: "nothing pending",
			mock: func(uc *mocks.MockReconciliationUsecase) {
				uc.EXPECT().TryAcquireLock(gomock.Any()).Return(false, "", nil)
			},
			wantErr: ErrNoPendingAccount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockReconciliationUsecase(ctrl)
			tt.mock(uc)

			err := NewReconciliationHandler(uc, 0).ReconciliationExecution(context.Background())
			assert.Equal(t, tt.wantErr, err)
		})
	}
}
