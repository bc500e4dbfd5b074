package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"techwritehub/global"
	"techwritehub/initialize"
	"techwritehub/server"
)

func main() {
	configPath := flag.String("config", "", "Optional yaml config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	global.Logger.Info().Str("host", app.Cfg.HTTP.Host).Int("port", app.Cfg.HTTP.Port).Msg("server starting")
	if err := server.Run(ctx, app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router); err != nil {
		global.Logger.Error().Err(err).Msg("server stopped")
	}

	if sqlDB, err := app.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	global.Logger.Info().Msg("server closed")
}
