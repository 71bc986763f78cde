package controllers

import (
	"github.com/radhian/reservation-reconciliation/handler"

	"github.com/gorilla/mux"
)

func RegisterReconciliationRoutes(router *mux.Router, h *handler.ReconciliationHandler) {
	router.HandleFunc("/reservations/import", h.ImportReservations).Methods("POST")
	router.HandleFunc("/notifications", h.IngestNotifications).Methods("POST")
	router.HandleFunc("/notifications/process", h.ProcessNotifications).Methods("POST")
	router.HandleFunc("/imports", h.GetImportBatches).Methods("GET")
	router.HandleFunc("/imports/{batchId}", h.GetImportBatch).Methods("GET")
}
