package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v2"

	catalogRepo "github.com/apoteklabs/apotek-cli/internal/catalog/repository"
	catalogService "github.com/apoteklabs/apotek-cli/internal/catalog/service"
	menucli "github.com/apoteklabs/apotek-cli/internal/cli"
	customerRepo "github.com/apoteklabs/apotek-cli/internal/customer/repository"
	customerService "github.com/apoteklabs/apotek-cli/internal/customer/service"
	"github.com/apoteklabs/apotek-cli/internal/platform/charts"
	"github.com/apoteklabs/apotek-cli/internal/platform/config"
	"github.com/apoteklabs/apotek-cli/internal/platform/export"
	"github.com/apoteklabs/apotek-cli/internal/platform/logger"
	purchaseRepo "github.com/apoteklabs/apotek-cli/internal/purchase/repository"
	purchaseService "github.com/apoteklabs/apotek-cli/internal/purchase/service"
)

func main() {
	app := &cli.App{
		Name:  "apotek",
		Usage: "single-user pharmacy inventory and purchase tracker",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "export-dir", Usage: "directory for exported text files"},
			&cli.StringFlag{Name: "chart-dir", Usage: "directory for rendered chart files"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		logger.Error("apotek exited with error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// Flag menang atas environment
	if v := c.String("export-dir"); v != "" {
		cfg.ExportDir = v
	}
	if v := c.String("chart-dir"); v != "" {
		cfg.ChartDir = v
	}
	if v := c.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	logger.Setup(cfg.LogLevel)
	logger.Info("Starting apotek...")

	// Setup Dependencies
	productRepository := catalogRepo.NewMemoryProductRepository()
	inventorySvc := catalogService.NewInventoryService(productRepository)

	custRepository := customerRepo.NewMemoryCustomerRepository()
	customerSvc := customerService.NewCustomerService(custRepository)

	ledgerRepository := purchaseRepo.NewMemoryPurchaseRepository()
	purchaseSvc := purchaseService.NewPurchaseService(ledgerRepository, customerSvc, inventorySvc)

	exporter := export.NewExporter(cfg.ExportDir)
	renderer := charts.NewRenderer(cfg.ChartDir)

	menu := menucli.NewMenu(os.Stdin, os.Stdout, inventorySvc, customerSvc, purchaseSvc, exporter, renderer)
	menu.Run(context.Background())
	return nil
}
