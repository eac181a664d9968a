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

	_ "github.com/tu-usuario/banking-api/docs"
	"github.com/tu-usuario/banking-api/internal/application/auth"
	"github.com/tu-usuario/banking-api/internal/application/ledger"
	appstatement "github.com/tu-usuario/banking-api/internal/application/statement"
	"github.com/tu-usuario/banking-api/internal/application/usecase"
	infraofx "github.com/tu-usuario/banking-api/internal/infrastructure/ofx"
	infrapdf "github.com/tu-usuario/banking-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/banking-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/banking-api/internal/interfaces/http"
	"github.com/tu-usuario/banking-api/pkg/config"
	"github.com/tu-usuario/banking-api/pkg/logger"
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
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	depositRepo := postgres.NewDepositRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	userUC := usecase.NewUserUseCase(userRepo)
	accountUC := usecase.NewAccountUseCase(accountRepo, userRepo, depositRepo, transferRepo)
	queryUC := usecase.NewTransactionUseCase(depositRepo, transferRepo, accountRepo, userRepo)
	ledgerUC := ledger.NewUseCase(txRunner, accountRepo)

	// Extractos: representación gráfica (PDF) y exportación OFX
	pdfGenerator := infrapdf.NewMarotoStatementGenerator()
	ofxBuilder := infraofx.NewBuilder()
	statementUC := appstatement.NewUseCase(
		accountRepo, userRepo, depositRepo, transferRepo, pdfGenerator, ofxBuilder,
	)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Banking API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:      userUC,
		AccountUC:   accountUC,
		LedgerUC:    ledgerUC,
		QueryUC:     queryUC,
		StatementUC: statementUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
