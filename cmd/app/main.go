package main

import (
	"agenda/config"
	"agenda/di"
	"agenda/shared/logger"
)

// @title Agenda API
// @version 1.0
// @description Appointment scheduling and availability engine.
// @BasePath /v1
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
