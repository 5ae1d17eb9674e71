package model

import (
	uuid "github.com/satori/go.uuid"
)

// PostingType ... Direction of a posting is implied by its type; Amount on a
// Transaction row is always positive.
type PostingType struct {
	DEPOSIT, WITHDRAWAL, TRANSFER_DEBIT, TRANSFER_CREDIT, FEE,
	BILL_PAYMENT, LOAN_DISBURSEMENT, POLICY_PREMIUM, CLAIM_PAYOUT string
}

var (
	TxnType = PostingType{
		DEPOSIT:           "DEPOSIT",
		WITHDRAWAL:        "WITHDRAWAL",
		TRANSFER_DEBIT:    "TRANSFER_DEBIT",
		TRANSFER_CREDIT:   "TRANSFER_CREDIT",
		FEE:               "FEE",
		BILL_PAYMENT:      "BILL_PAYMENT",
		LOAN_DISBURSEMENT: "LOAN_DISBURSEMENT",
		POLICY_PREMIUM:    "POLICY_PREMIUM",
		CLAIM_PAYOUT:      "CLAIM_PAYOUT",
	}

	creditTxnTypes = map[string]bool{
		TxnType.DEPOSIT:           true,
		TxnType.TRANSFER_CREDIT:   true,
		TxnType.LOAN_DISBURSEMENT: true,
		TxnType.CLAIM_PAYOUT:      true,
	}
)

// Transaction ... A single ledger posting against one account.
type Transaction struct {
	BaseModel
	AccountID     uuid.UUID `gorm:"type:VARCHAR(36);not null;index:account_id" json:"accountId"`
	TxnType       string    `gorm:"type:VARCHAR(36);not null" json:"txnType"`
	Amount        int64     `gorm:"type:BIGINT;not null" json:"amount"`
	ReferenceCode string    `gorm:"type:VARCHAR(64);not null;unique_index" json:"referenceCode"`
	QueueID       string    `gorm:"type:VARCHAR(64);index:queue_id" json:"queueId"`
	Description   string    `gorm:"type:VARCHAR(300)" json:"description"`
}

// SignedAmount ... The amount as it contributes to the account balance.
func (txn Transaction) SignedAmount() int64 {
	if creditTxnTypes[txn.TxnType] {
		return txn.Amount
	}
	return -txn.Amount
}
