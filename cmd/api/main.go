package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/hotel-inventory/internal/application/inventory"
	"github.com/jhoicas/hotel-inventory/internal/application/usecase"
	"github.com/jhoicas/hotel-inventory/internal/bootstrap"
	"github.com/jhoicas/hotel-inventory/internal/infrastructure/metrics"
	"github.com/jhoicas/hotel-inventory/internal/infrastructure/notify"
	"github.com/jhoicas/hotel-inventory/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/hotel-inventory/internal/interfaces/http"
	"github.com/jhoicas/hotel-inventory/pkg/config"
	"github.com/jhoicas/hotel-inventory/pkg/logger"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	rules, err := bootstrap.Rules(cfg.Stock)
	if err != nil {
		log.Fatal().Err(err).Msg("reglas de stock inválidas")
	}

	ctx := context.Background()
	backend, err := bootstrap.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de inventario")
	}
	defer backend.Close()

	clock := time.Now
	recorder := metrics.NewRecorder()

	// Notificadores: log siempre; Redis (pub/sub + deduplicación) si REDIS_ADDR está definido.
	notifiers := notify.Multi{notify.NewLogNotifier(log.Component("alerts"))}
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis no disponible, alertas solo en log")
		} else {
			ttl := time.Duration(cfg.Redis.DedupTTLMinutes) * time.Minute
			notifiers = append(notifiers, notify.NewRedisNotifier(rdb, cfg.Redis.AlertChannel, ttl))
		}
	}

	categoryUC := usecase.NewCategoryUseCase(backend.Categories, backend.Catalog, clock, log.Component("categories"))
	productUC := usecase.NewProductUseCase(backend.Products, backend.Catalog, backend.Suppliers, clock, log.Component("products"))
	adjustUC := inventory.NewAdjustStockUseCase(backend.Tx, backend.Products, recorder, clock, log.Component("adjustments"))
	stateUC := inventory.NewStockStateUseCase(backend.Products, rules)
	alertScanUC := inventory.NewAlertScanUseCase(backend.Tx, notifiers, recorder, rules, cfg.Scan.PageSize, log.Component("alert-scan"))
	replenishmentUC := inventory.NewReplenishmentUseCase(backend.Tx, rules, cfg.Scan.PageSize)

	var sched *scheduler.Scheduler
	if len(cfg.Scan.Sites) > 0 {
		sched, err = scheduler.New(cfg.Scan.Schedule, alertScanUC, cfg.Scan.Sites, clock, log.Component("scheduler"))
		if err != nil {
			log.Fatal().Err(err).Msg("planificador de alertas")
		}
		sched.Start()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Hotel Inventory API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:     categoryUC,
		ProductUC:      productUC,
		AdjustStock:    adjustUC,
		StockState:     stateUC,
		AlertScan:      alertScanUC,
		Replenishment:  replenishmentUC,
		MetricsHandler: recorder.Handler(),
		Clock:          clock,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if sched != nil {
		sched.Stop(shutdownCtx)
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
