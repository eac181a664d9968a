package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/banking-api/internal/application/auth"
	"github.com/tu-usuario/banking-api/internal/application/ledger"
	"github.com/tu-usuario/banking-api/internal/application/statement"
	"github.com/tu-usuario/banking-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC      *usecase.UserUseCase
	AccountUC   *usecase.AccountUseCase
	LedgerUC    *ledger.UseCase
	QueryUC     *usecase.TransactionUseCase
	StatementUC *statement.UseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Users (público)
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Accounts (público)
	accounts := api.Group("/accounts")
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts.Get("/", accountHandler.List)
	accounts.Post("/", accountHandler.Create)
	accounts.Get("/:id", accountHandler.GetByID)
	accounts.Put("/:id", accountHandler.Update)
	accounts.Delete("/:id", accountHandler.Delete)

	// Extractos (protegido: requiere Bearer Token)
	statementHandler := NewStatementHandler(deps.StatementUC)
	accounts.Get("/:id/statement.pdf", AuthMiddleware(deps.JWTSecret), statementHandler.DownloadPDF)
	accounts.Get("/:id/statement.ofx", AuthMiddleware(deps.JWTSecret), statementHandler.DownloadOFX)

	// Deposits (público)
	deposits := api.Group("/deposits")
	depositHandler := NewDepositHandler(deps.LedgerUC, deps.QueryUC)
	deposits.Get("/", depositHandler.List)
	deposits.Post("/", depositHandler.Create)
	deposits.Get("/:id", depositHandler.GetByID)

	// Transfers (público)
	transfers := api.Group("/transfers")
	transferHandler := NewTransferHandler(deps.LedgerUC, deps.QueryUC)
	transfers.Get("/", transferHandler.List)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/:id", transferHandler.GetByID)
}
