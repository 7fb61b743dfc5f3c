package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	appanalytics "github.com/jhoicas/Estoque-api/internal/application/analytics"
	"github.com/jhoicas/Estoque-api/internal/application/auth"
	"github.com/jhoicas/Estoque-api/internal/application/inventory"
	"github.com/jhoicas/Estoque-api/internal/application/report"
	"github.com/jhoicas/Estoque-api/internal/application/usecase"
	"github.com/jhoicas/Estoque-api/internal/domain/repository"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Estoque-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Estoque-api/internal/infrastructure/session"
	httpRouter "github.com/jhoicas/Estoque-api/internal/interfaces/http"
	"github.com/jhoicas/Estoque-api/pkg/config"
	"github.com/jhoicas/Estoque-api/pkg/logger"
)

// storage repositorios de la capa de persistencia elegida por STORAGE_DRIVER.
type storage struct {
	users     repository.UserRepository
	products  repository.ProductRepository
	picos     repository.PicoRepository
	stock     repository.PaletizadoStockRepository
	activity  repository.ActivityLogRepository
	dashboard repository.DashboardRepository
	tx        inventory.TxRunner
	close     func()
}

func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*storage, error) {
	if cfg.DB.Driver == "memory" {
		log.Warn().Msg("STORAGE_DRIVER=memory: los datos se pierden al reiniciar")
		st := memory.NewStore()
		return &storage{
			users: st.Users(), products: st.Products(), picos: st.Picos(), stock: st.Stock(),
			activity: st.Activity(), dashboard: st.Dashboard(), tx: st, close: func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if cfg.DB.AutoMigrate {
		if _, err := postgres.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return &storage{
		users:     postgres.NewUserRepository(pool),
		products:  postgres.NewProductRepository(pool),
		picos:     postgres.NewPicoRepository(pool),
		stock:     postgres.NewPaletizadoStockRepository(pool),
		activity:  postgres.NewActivityLogRepository(pool),
		dashboard: postgres.NewDashboardRepository(pool),
		tx:        postgres.NewTxRunner(pool),
		close:     pool.Close,
	}, nil
}

func openSessions(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.SessionStore, func(), error) {
	if cfg.Session.Store != "redis" {
		return session.NewMemoryStore(), func() {}, nil
	}
	rdb, err := session.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("addr", cfg.Redis.Addr()).Msg("sesiones en Redis")
	return session.NewRedisStore(rdb, cfg.Redis.Prefix), func() { _ = rdb.Close() }, nil
}

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
		Str("app", cfg.App.Name).
		Str("storage", cfg.DB.Driver).
		Str("sessions", cfg.Session.Store).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar almacenamiento")
	}
	defer store.close()

	sessions, closeSessions, err := openSessions(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer closeSessions()

	authUC := auth.NewAuthUseCase(store.users, sessions, auth.SessionConfig{
		Secret:     cfg.Session.Secret,
		TTLMinutes: cfg.Session.TTLMinutes,
		Issuer:     cfg.Session.Issuer,
	}, log)
	created, err := authUC.EnsureAdmin(ctx, auth.AdminSeed{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
		Name:     cfg.Admin.Name,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("crear administrador inicial")
	}
	if !created && cfg.Admin.Password == "" {
		log.Debug().Msg("ADMIN_PASSWORD vacío: no se crea administrador inicial")
	}

	userUC := usecase.NewUserUseCase(store.users, sessions, log)
	productUC := usecase.NewProductUseCase(store.products, log)
	picoUC := inventory.NewPicoUseCase(store.tx, store.products, store.picos, log)
	paletizadoUC := inventory.NewPaletizadoUseCase(store.tx, store.products, store.stock, log)
	dashboardUC := appanalytics.NewDashboardUseCase(store.dashboard, store.activity)
	activityUC := appanalytics.NewActivityUseCase(store.activity)

	// PDF: reporte imprimible de picos y paletizados
	reportUC := report.NewStockReportUseCase(store.picos, store.stock, infrapdf.NewMarotoStockReportGenerator(cfg.App.Name))

	loginLimiter, err := httpRouter.RateLimit(cfg.RateLimit.Login, log.Named("ratelimit"))
	if err != nil {
		log.Fatal().Err(err).Str("rate", cfg.RateLimit.Login).Msg("LOGIN_RATE_LIMIT inválido")
	}

	app := httpRouter.NewApp(httpRouter.AppOptions{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Log:         log.Named("http"),
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.DocsPath,
			Path:     "docs",
			Title:    "Estoque API",
		}))
	} else {
		log.Info().Str("path", cfg.App.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		ProductUC:    productUC,
		PicoUC:       picoUC,
		PaletizadoUC: paletizadoUC,
		DashboardUC:  dashboardUC,
		ActivityUC:   activityUC,
		ReportUC:     reportUC,
		Cookie: httpRouter.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: !cfg.App.IsDevelopment(),
		},
		LoginLimiter: loginLimiter,
		Log:          log.Named("http"),
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

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
