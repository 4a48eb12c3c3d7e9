package dto

// RegisterAccountRequest is the body of POST /accounts
type RegisterAccountRequest struct {
	UserID uint64 `json:"userId" binding:"required"`
}

// DepositRequest is the body of POST /accounts/:userId/deposits
type DepositRequest struct {
	Currency  string `json:"currency"`
	Amount    string `json:"amount" binding:"required"`
	Reference string `json:"reference" binding:"required,max=128"`
}

// AccountResponse describes a registered account
type AccountResponse struct {
	UserID uint64 `json:"userId"`
	Status string `json:"status"`
}
