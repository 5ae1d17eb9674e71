package dto

import (
	"encoding/json"
	"time"
)

// MakerInfo ... Identity of the already-authenticated submitter.
type MakerInfo struct {
	MakerID    string `json:"makerId" validate:"required"`
	MakerName  string `json:"makerName" validate:"required"`
	BranchCode string `json:"branchCode" validate:"required"`
	Role       string `json:"role" validate:"required"`
}

// SubmitOperationRequest ...
type SubmitOperationRequest struct {
	OperationType string          `json:"operationType" validate:"required"`
	Amount        string          `json:"amount" validate:"required"`
	Description   string          `json:"description"`
	OperationData json.RawMessage `json:"operationData" validate:"required"`
	Maker         MakerInfo       `json:"maker"`
}

// SubmitOperationResponse ...
type SubmitOperationResponse struct {
	QueueID          string           `json:"queueId"`
	Status           string           `json:"status"`
	Priority         string           `json:"priority"`
	RequiresApproval bool             `json:"requiresApproval"`
	Fee              string           `json:"fee"`
	Message          string           `json:"message"`
	ExecutionResult  *ExecutionResult `json:"executionResult,omitempty"`
}

// DecisionRequest ...
type DecisionRequest struct {
	CheckerID string `json:"checkerId" validate:"required"`
	Decision  string `json:"decision" validate:"required,oneof=APPROVE REJECT"`
	Reason    string `json:"reason"`
}

// DecisionResponse ...
type DecisionResponse struct {
	QueueID         string           `json:"queueId"`
	Status          string           `json:"status"`
	Message         string           `json:"message"`
	ExecutionResult *ExecutionResult `json:"executionResult,omitempty"`
}

// ExecutionResult ... Outcome of dispatching an approved item against the
// ledger. References lists every posting reference the settlement created.
type ExecutionResult struct {
	Status     string   `json:"status"`
	References []string `json:"references,omitempty"`
	Message    string   `json:"message"`
}

// QueueItemResponse ...
type QueueItemResponse struct {
	QueueID         string     `json:"queueId"`
	OperationType   string     `json:"operationType"`
	ReferenceID     string     `json:"referenceId"`
	MakerID         string     `json:"makerId"`
	MakerName       string     `json:"makerName"`
	BranchCode      string     `json:"branchCode"`
	Amount          string     `json:"amount"`
	Fee             string     `json:"fee"`
	Description     string     `json:"description,omitempty"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	ApprovedBy      string     `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	FailureReason   string     `json:"failureReason,omitempty"`
	ExecutionRefs   []string   `json:"executionRefs,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// QueueItemListResponse ...
type QueueItemListResponse struct {
	QueueItems []QueueItemResponse `json:"queueItems"`
}

// PendingCountResponse ...
type PendingCountResponse struct {
	BranchCode string `json:"branchCode"`
	Count      int    `json:"count"`
}
