package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Bessima/orderflow/internal/config"
	"github.com/Bessima/orderflow/internal/config/db"
	"github.com/Bessima/orderflow/internal/middlewares/logger"
	"github.com/Bessima/orderflow/internal/service"
	"go.uber.org/zap"
)

func main() {
	err := initLogger()
	if err != nil {
		logger.Log.Warn(err.Error())
	}

	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conf := config.InitConfig()

	dbObj, err := db.NewDB(rootCtx, conf.DatabaseDNS)
	if err != nil {
		logger.Log.Error(
			"Unable to connect to database",
			zap.String("path", conf.DatabaseDNS),
			zap.String("error", err.Error()),
		)
		return err
	}
	defer dbObj.Close()

	serverService := service.NewServerService(rootCtx, conf.Address, dbObj)
	serverService.SetRouter(conf)

	serverErr := make(chan error, 1)
	logger.Log.Info("Running Server on", zap.String("address", conf.Address))
	go serverService.RunServer(&serverErr)

	select {
	case <-rootCtx.Done():
		logger.Log.Info("Received shutdown signal, shutting down.")
	case err = <-serverErr:
		logger.Log.Error("Server error", zap.Error(err))
	}

	if shutdownErr := serverService.Shutdown(); shutdownErr != nil {
		logger.Log.Error("Server shutdown error", zap.Error(shutdownErr))
	}

	return err
}

func initLogger() error {
	if err := logger.Initialize("debug"); err != nil {
		return err
	}
	return nil
}
