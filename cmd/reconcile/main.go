package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/fekuna/omnipos-sales-ledger/config"
	"github.com/fekuna/omnipos-sales-ledger/internal/ledger/dto"
	"github.com/fekuna/omnipos-sales-ledger/internal/logger"
	"github.com/fekuna/omnipos-sales-ledger/internal/metrics"

	catRepoPkg "github.com/fekuna/omnipos-sales-ledger/internal/catalog/repository"
	catUCPkg "github.com/fekuna/omnipos-sales-ledger/internal/catalog/usecase"

	clsRepoPkg "github.com/fekuna/omnipos-sales-ledger/internal/category/repository"
	clsUCPkg "github.com/fekuna/omnipos-sales-ledger/internal/category/usecase"

	ledgerRepoPkg "github.com/fekuna/omnipos-sales-ledger/internal/ledger/repository"
	ledgerUCPkg "github.com/fekuna/omnipos-sales-ledger/internal/ledger/usecase"

	orderRepoPkg "github.com/fekuna/omnipos-sales-ledger/internal/order/repository"
	orderUCPkg "github.com/fekuna/omnipos-sales-ledger/internal/order/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	sextan := flag.String("sextan", "", "Sextan catalog export (xlsx or csv)")
	izydesk := flag.String("izydesk", "", "Izydesk order export (xlsx or csv); the corner is read from its name")
	out := flag.String("out", cfg.Export.Dir, "directory receiving the exports")
	flag.Parse()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	if *sextan == "" || *izydesk == "" {
		flag.Usage()
		appLogger.Fatal("both -sextan and -izydesk are required")
	}

	// 3. Initialize Repositories
	exporters, err := ledgerRepoPkg.NewExporters(cfg.Export.Formats)
	if err != nil {
		appLogger.Fatal("Invalid EXPORT_FORMATS", zap.Error(err))
	}
	orderRepo := orderRepoPkg.NewSheetRepository()
	catRepo := catRepoPkg.NewSheetRepository(appLogger)
	clsRepo := clsRepoPkg.NewStaticRepository()
	ledgerRepo := ledgerRepoPkg.NewStagedRepository(*out, exporters, appLogger)

	// 4. Initialize UseCases
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, appLogger)
	catUC := catUCPkg.NewCatalogUseCase(catRepo, appLogger)
	clsUC := clsUCPkg.NewCategoryUseCase(clsRepo, appLogger)
	ledgerUC := ledgerUCPkg.NewLedgerUseCase(orderUC, catUC, clsUC, ledgerRepo, cfg.Match.Workers, appLogger)

	// 5. Run
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := ledgerUC.Reconcile(ctx, dto.RunInput{SextanPath: *sextan, IzydeskPath: *izydesk})
	if err != nil {
		appLogger.Fatal("Reconciliation failed", zap.Error(err))
	}

	// 6. Metrics
	if cfg.Metrics.Textfile != "" {
		reg := metrics.NewRegistry()
		reg.ObserveRun(report)
		if err := reg.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			appLogger.Error("Failed to write metrics textfile", zap.String("path", cfg.Metrics.Textfile), zap.Error(err))
		}
	}

	for _, f := range report.Files {
		appLogger.Info("Export written", zap.String("run_id", report.RunID), zap.String("file", f))
	}
}
