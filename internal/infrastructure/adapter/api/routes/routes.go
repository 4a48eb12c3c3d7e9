package routes

import (
	coreport "github.com/amirhossein-jamali/referral-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler the router serves
type Handlers struct {
	Club      *handler.ClubHandler
	Account   *handler.AccountHandler
	Challenge *handler.ChallengeHandler
	Lottery   *handler.LotteryHandler
	Payout    *handler.PayoutHandler
	Health    *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API. isAdmin decides who may call admin routes.
func SetupRoutes(router *gin.Engine, h Handlers, isAdmin func(userID uint64) bool) {
	router.GET("/health", h.Health.Health)

	user := middleware.RequireUser()
	admin := middleware.AdminOnly(isAdmin)

	club := router.Group("/club-avalanche")
	{
		club.GET("/programs", h.Club.Programs)
		club.POST("/join", user, h.Club.Join)
		club.GET("/memberships", user, h.Club.Memberships)
	}

	accounts := router.Group("/accounts", user)
	{
		accounts.POST("", admin, h.Account.Register)
		accounts.POST("/:userId/deposits", admin, h.Account.Deposit)
		accounts.GET("/:userId/balances", middleware.SelfOrAdmin(isAdmin), h.Account.Balances)
		accounts.GET("/:userId/transactions", middleware.SelfOrAdmin(isAdmin), h.Account.Transactions)
		accounts.GET("/:userId/reconciliation", admin, h.Account.Reconciliation)
	}

	challenge := router.Group("/challenge", user)
	{
		challenge.POST("", admin, h.Challenge.Create)
		challenge.POST("/:id/bets", h.Challenge.PlaceBet)
		challenge.POST("/:id/resolve", admin, h.Challenge.Resolve)
		challenge.POST("/:id/process-payouts", admin, h.Challenge.ProcessPayouts)
	}

	lottery := router.Group("/lottery/draws", user)
	{
		lottery.POST("", admin, h.Lottery.OpenDraw)
		lottery.POST("/:id/tickets", h.Lottery.BuyTicket)
		lottery.POST("/:id/result", admin, h.Lottery.RecordResult)
		lottery.POST("/:id/process-payouts", admin, h.Lottery.ProcessPayouts)
	}

	router.GET("/payout-jobs", user, admin, h.Payout.ListJobs)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.ErrorHandler(logger))
}

// NewRouter builds a gin engine with the middlewares and routes installed
func NewRouter(h Handlers, isAdmin func(userID uint64) bool, logger coreport.Logger, timeProvider coreport.TimeProvider) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	SetupMiddlewares(router, logger, timeProvider)
	SetupRoutes(router, h, isAdmin)
	return router
}
