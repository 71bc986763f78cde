package main

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/radhian/reservation-reconciliation/config"
	"github.com/radhian/reservation-reconciliation/controllers"
	"github.com/radhian/reservation-reconciliation/handler"
)

type CronWorkerConfig struct {
	Interval time.Duration
	Workers  int
}

func (cfg CronWorkerConfig) startNotificationWorker(h *handler.ReconciliationHandler, workerID int) {
	for {
		ctx := context.Background()
		err := h.ReconciliationExecution(ctx)
		switch {
		case errors.Is(err, handler.ErrNoPendingAccount):
			log.Debugf("[CronWorker %d] idle", workerID)
		case err != nil:
			log.Errorf("[CronWorker %d] error: %s", workerID, err.Error())
		default:
			log.Infof("[CronWorker %d] success", workerID)
		}

		time.Sleep(cfg.Interval)
	}
}

func startCronWorker(h *handler.ReconciliationHandler, cfg CronWorkerConfig) {
	var wg sync.WaitGroup

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			log.Infof("spawn [CronWorker %d]", workerID)
			cfg.startNotificationWorker(h, workerID)
		}(i + 1)
	}
	wg.Wait()
}

func main() {
	cfg := config.Load()

	// The cron process shares the App wiring with the HTTP server but serves no routes.
	app := controllers.App{}
	app.Initialize(cfg)

	startCronWorker(app.Handler, CronWorkerConfig{
		Workers:  cfg.CronWorkers,
		Interval: cfg.CronInterval,
	})
}
