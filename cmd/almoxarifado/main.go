package main

import (
	"os"

	"github.com/jhoicas/almoxarifado/internal/application/inventory"
	"github.com/jhoicas/almoxarifado/internal/application/report"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/almoxarifado/internal/infrastructure/pdf"
	"github.com/jhoicas/almoxarifado/internal/interfaces/cli"
	"github.com/jhoicas/almoxarifado/pkg/config"
	"github.com/jhoicas/almoxarifado/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("store_dir", cfg.Store.Dir).
		Msg("iniciando aplicación")

	store, err := localstore.NewFileStore(cfg.Store.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}

	// La carga de cada colección puede reescribirla una vez (migración a
	// forma canónica de datos antiguos).
	productRepo, err := localstore.NewProductRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar productos")
	}
	movementRepo, err := localstore.NewMovementRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar movimientos")
	}
	outputRepo, err := localstore.NewOutputRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar salidas")
	}

	ledger := inventory.NewProductLedger(productRepo)
	movements := inventory.NewMovementLog(movementRepo)
	outputs := inventory.NewOutputLog(outputRepo)
	inventoryUC := inventory.NewUseCase(ledger, movements, outputs, inventory.Policy{
		LogZeroAdjustment: cfg.Policy.LogZeroAdjustment,
		LowStockThreshold: cfg.Policy.LowStockThreshold,
	})
	reportUC := report.NewStockReportUseCase(inventoryUC, infrapdf.NewMarotoReportGenerator())

	root := cli.New(cli.Deps{
		Inventory: inventoryUC,
		Report:    reportUC,
		Log:       log,
	})
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
