package main

import (
	"github.com/radhian/reservation-reconciliation/config"
	"github.com/radhian/reservation-reconciliation/controllers"
)

func main() {
	app := controllers.App{}
	app.Initialize(config.Load())

	app.RunServer()
}
