package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rsynek/optaweb-employee-rostering/internal/adapters/importer/xlsx"
	"github.com/rsynek/optaweb-employee-rostering/internal/adapters/repository/postgres"
	"github.com/rsynek/optaweb-employee-rostering/internal/core/employee"
	"github.com/rsynek/optaweb-employee-rostering/internal/platform/config"
	pg "github.com/rsynek/optaweb-employee-rostering/internal/platform/db/postgres"
	"github.com/rsynek/optaweb-employee-rostering/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool)
	employeeRepo := postgres.NewEmployeeRepository(dbPool)
	availabilityRepo := postgres.NewAvailabilityRepository(dbPool)
	rosterStateRepo := postgres.NewRosterStateRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)

	importSource := xlsx.NewEmployeeListFileIO(skillRepo)
	svc := employee.NewService(employeeRepo, availabilityRepo, rosterStateRepo, importSource, nil, txManager)
	grpcServer := server.New(cfg.Server.ListenAddr, svc)

	log.Printf("gRPC server listening on %s", cfg.Server.ListenAddr)

	if err := grpcServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
