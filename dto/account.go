package dto

import (
	"time"
)

// AccountResponse ...
type AccountResponse struct {
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	Balance       string `json:"balance"`
	Status        string `json:"status"`
	BranchCode    string `json:"branchCode,omitempty"`
	Currency      string `json:"currency"`
}

// TransactionResponse ...
type TransactionResponse struct {
	ReferenceCode string    `json:"referenceCode"`
	TxnType       string    `json:"txnType"`
	Amount        string    `json:"amount"`
	SignedAmount  string    `json:"signedAmount"`
	QueueID       string    `json:"queueId,omitempty"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TransactionListResponse ...
type TransactionListResponse struct {
	AccountNumber string                `json:"accountNumber"`
	Transactions  []TransactionResponse `json:"transactions"`
}
