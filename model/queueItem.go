package model

import (
	"time"
)

// QueueItemStatus ...
type QueueItemStatus struct{ PENDING, APPROVED, REJECTED, EXECUTED, EXECUTION_FAILED string }

// QueuePriority ...
type QueuePriority struct{ LOW, MEDIUM, HIGH, URGENT string }

// QueueDecision ...
type QueueDecision struct{ APPROVE, REJECT string }

// Operation ...
type Operation struct {
	CASH_DEPOSIT, CASH_WITHDRAWAL, CHEQUE_DEPOSIT, INTERNAL_TRANSFER,
	EXTERNAL_TRANSFER, MOBILE_MONEY_TRANSFER, BILL_PAYMENT, CDSC_TRANSFER,
	LOAN_DISBURSEMENT, POLICY_SALE, PREMIUM_COLLECTION, CLAIMS_PAYOUT string
}

var (
	QueueStatus = QueueItemStatus{
		PENDING:          "PENDING",
		APPROVED:         "APPROVED",
		REJECTED:         "REJECTED",
		EXECUTED:         "EXECUTED",
		EXECUTION_FAILED: "EXECUTION_FAILED",
	}
	Priority = QueuePriority{
		LOW:    "LOW",
		MEDIUM: "MEDIUM",
		HIGH:   "HIGH",
		URGENT: "URGENT",
	}
	Decision = QueueDecision{
		APPROVE: "APPROVE",
		REJECT:  "REJECT",
	}
	OperationType = Operation{
		CASH_DEPOSIT:          "CASH_DEPOSIT",
		CASH_WITHDRAWAL:       "CASH_WITHDRAWAL",
		CHEQUE_DEPOSIT:        "CHEQUE_DEPOSIT",
		INTERNAL_TRANSFER:     "INTERNAL_TRANSFER",
		EXTERNAL_TRANSFER:     "EXTERNAL_TRANSFER",
		MOBILE_MONEY_TRANSFER: "MOBILE_MONEY_TRANSFER",
		BILL_PAYMENT:          "BILL_PAYMENT",
		CDSC_TRANSFER:         "CDSC_TRANSFER",
		LOAN_DISBURSEMENT:     "LOAN_DISBURSEMENT",
		POLICY_SALE:           "POLICY_SALE",
		PREMIUM_COLLECTION:    "PREMIUM_COLLECTION",
		CLAIMS_PAYOUT:         "CLAIMS_PAYOUT",
	}
)

// QueueItem ... One proposed operation on the authorization queue. Rows are
// never deleted, transitions only move forward, the full set forms the audit
// trail.
type QueueItem struct {
	BaseModel
	QueueID         string     `gorm:"type:VARCHAR(64);not null;unique_index" json:"queueId"`
	OperationType   string     `gorm:"type:VARCHAR(36);not null;index:idx_authorization_queue_operation_type" json:"operationType"`
	ReferenceID     string     `gorm:"type:VARCHAR(64);not null" json:"referenceId"`
	MakerID         string     `gorm:"type:VARCHAR(64);not null;index:maker_id" json:"makerId"`
	MakerName       string     `gorm:"type:VARCHAR(100)" json:"makerName"`
	MakerRole       string     `gorm:"type:VARCHAR(36);not null" json:"makerRole"`
	BranchCode      string     `gorm:"type:VARCHAR(20);not null;index:idx_authorization_queue_branch_code" json:"branchCode"`
	Amount          int64      `gorm:"type:BIGINT;not null" json:"amount"`
	Fee             int64      `gorm:"type:BIGINT;not null" json:"fee"`
	Description     string     `gorm:"type:VARCHAR(300)" json:"description"`
	Status          string     `gorm:"type:VARCHAR(36);not null;default:'PENDING';index:status" json:"status"`
	Priority        string     `gorm:"type:VARCHAR(20);not null;default:'LOW'" json:"priority"`
	OperationData   string     `gorm:"type:TEXT;not null" json:"operationData"`
	ApprovedBy      string     `gorm:"type:VARCHAR(64)" json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	RejectionReason string     `gorm:"type:VARCHAR(300)" json:"rejectionReason,omitempty"`
	FailureReason   string     `gorm:"type:VARCHAR(300)" json:"failureReason,omitempty"`
	ExecutionRefs   string     `gorm:"type:VARCHAR(300)" json:"executionRefs,omitempty"`
}

// TableName ... QueueItem rows live on the authorization_queue table
func (QueueItem) TableName() string {
	return "authorization_queue"
}

// IsTerminal ... true once no further transition is reachable
func (item QueueItem) IsTerminal() bool {
	return item.Status == QueueStatus.REJECTED ||
		item.Status == QueueStatus.EXECUTED ||
		item.Status == QueueStatus.EXECUTION_FAILED
}
