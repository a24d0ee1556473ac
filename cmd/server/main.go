package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"prorab-finance/internal/config"
	"prorab-finance/internal/database"
	"prorab-finance/internal/logger"
	"prorab-finance/internal/server"
)

func main() {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	database.Init(cfg.DBDSN)

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Info().Str("addr", addr).Msg("starting server")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
