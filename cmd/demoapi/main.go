package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/glowdesk/medspa-console/internal/config"
	"github.com/glowdesk/medspa-console/internal/demoapi"
	"github.com/glowdesk/medspa-console/internal/logging"
)

// demoapi serves the med-spa API with seeded fixture data. Demo mode is this
// binary and nothing else: the console never substitutes sample records on
// its own.
func main() {
	cfg := config.Load()
	logger := logging.New(cfg.IsProduction())
	defer logger.Sync()

	store := demoapi.SeededStore()
	r := demoapi.NewEngine(store, cfg, logger)

	logger.Info("demo backend running",
		zap.String("addr", cfg.Addr()),
		zap.String("admin", demoapi.DemoAdminEmail),
		zap.String("password", demoapi.DemoPassword),
	)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
