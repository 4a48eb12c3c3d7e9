package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/referral-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/referral-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/referral-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles account, balance and transaction log requests
type AccountHandler struct {
	ledger usecase.LedgerUseCase
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(ledger usecase.LedgerUseCase) *AccountHandler {
	return &AccountHandler{ledger: ledger}
}

// Register handles POST /accounts
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	account, err := h.ledger.RegisterAccount(c.Request.Context(), req.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.AccountResponse{UserID: account.ID, Status: string(account.Status)})
}

// Deposit handles POST /accounts/:userId/deposits
func (h *AccountHandler) Deposit(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var req dto.DepositRequest
	if !bindJSON(c, &req) {
		return
	}

	tx, err := h.ledger.Deposit(c.Request.Context(), usecase.DepositRequest{
		UserID:    userID,
		Currency:  req.Currency,
		Amount:    req.Amount,
		Reference: req.Reference,
	})
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, tx.ToView(h.ledger.Scale()))
}

// Balances handles GET /accounts/:userId/balances
func (h *AccountHandler) Balances(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	balances, err := h.ledger.GetBalances(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}

	views := make([]entity.BalanceView, 0, len(balances))
	for _, b := range balances {
		views = append(views, b.ToView(h.ledger.Scale()))
	}
	respond(c, http.StatusOK, views)
}

// Transactions handles GET /accounts/:userId/transactions?limit=&offset=
func (h *AccountHandler) Transactions(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", defaultPageSize, maxPageSize)
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset", 0, 0)
	if !ok {
		return
	}
	if limit == 0 {
		limit = defaultPageSize
	}

	transactions, err := h.ledger.ListTransactions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		fail(c, err)
		return
	}

	views := make([]entity.TransactionView, 0, len(transactions))
	for _, t := range transactions {
		views = append(views, t.ToView(h.ledger.Scale()))
	}
	respond(c, http.StatusOK, views)
}

// Reconciliation handles GET /accounts/:userId/reconciliation
func (h *AccountHandler) Reconciliation(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	results, err := h.ledger.Reconcile(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, results)
}
