package controllers

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	"github.com/labstack/gommon/log"
	"github.com/radhian/reservation-reconciliation/config"
	"github.com/radhian/reservation-reconciliation/handler"
	"github.com/radhian/reservation-reconciliation/infra/db/dao"
	"github.com/radhian/reservation-reconciliation/infra/db/model"
	"github.com/radhian/reservation-reconciliation/infra/locker"
	"github.com/radhian/reservation-reconciliation/middlewares"
	reconciliationUsecase "github.com/radhian/reservation-reconciliation/usecase/reconciliation"
)

type App struct {
	Config  config.Config
	DB      *gorm.DB
	Locker  *locker.Locker
	Router  *mux.Router
	Handler *handler.ReconciliationHandler
}

// Initialize connects to the database, migrates the schema and wires the handler.
func (a *App) Initialize(cfg config.Config) {
	var err error
	a.Config = cfg
	log.SetLevel(cfg.LogLevel)

	DBURI := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", cfg.DbHost, cfg.DbPort, cfg.DbUser, cfg.DbName, cfg.DbPassword)
	log.Infof("DB Config - Host: %q, Port: %q, User: %q, Name: %q", cfg.DbHost, cfg.DbPort, cfg.DbUser, cfg.DbName)

	a.DB, err = gorm.Open("postgres", DBURI)
	if err != nil {
		log.Fatalf("Cannot connect to database %s: %v", cfg.DbName, err)
	}
	log.Infof("We are connected to the database %s", cfg.DbName)

	a.DB.AutoMigrate(
		&model.Property{},
		&model.BillingConfig{},
		&model.Reservation{},
		&model.ImportBatch{},
		&model.ImportBatchAsset{},
		&model.NotificationFragment{},
	) //database migration

	a.Locker = locker.New()
	uc := reconciliationUsecase.NewReconciliationUsecase(dao.NewDaoMethod(a.DB), a.Locker, reconciliationUsecase.Options{
		AutoLinkThreshold: cfg.AutoLinkThreshold,
		DefaultDateOrder:  cfg.DefaultDateOrder,
		MaxImportRows:     cfg.MaxImportRows,
	})
	a.Handler = handler.NewReconciliationHandler(uc, cfg.MaxFileSize)

	a.Router = mux.NewRouter().StrictSlash(true)
	a.initializeRoutes()
}

func (a *App) initializeRoutes() {
	a.Router.Use(middlewares.SetContentTypeMiddleware)
	a.Router.Use(middlewares.RequireAccountMiddleware)
	RegisterReconciliationRoutes(a.Router, a.Handler)
}

func (a *App) RunServer() {
	log.Infof("Server starting on port %v", a.Config.Port)
	log.Fatal(http.ListenAndServe(":"+a.Config.Port, a.Router))
}
