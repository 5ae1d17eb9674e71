package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	Config "authorization-engine/config"
	"authorization-engine/database"
	"authorization-engine/dto"
	"authorization-engine/model"
	"authorization-engine/utility"
	"authorization-engine/utility/cache"
	"authorization-engine/utility/constants"
	"authorization-engine/utility/errorcode"
	"authorization-engine/utility/logger"

	validation "gopkg.in/go-playground/validator.v9"
)

//QueueService object
type QueueService struct {
	Cache      *cache.Memory
	Config     Config.Data
	Validator  *validation.Validate
	Repository database.IAccountRepository
}

func NewQueueService(memoryCache *cache.Memory, config Config.Data, validator *validation.Validate, repository database.IAccountRepository) *QueueService {
	return &QueueService{
		Cache:      memoryCache,
		Config:     config,
		Validator:  validator,
		Repository: repository,
	}
}

// Submit ... Validates and prices a proposed operation, evaluates it against
// the authorization policy and lands it on the queue. Items the policy waves
// through are auto-approved and settled before the call returns; everything
// else waits PENDING for a checker.
func (service *QueueService) Submit(request dto.SubmitOperationRequest) (dto.SubmitOperationResponse, error) {

	operationData, known := dto.NewOperationData(request.OperationType)
	if !known {
		return dto.SubmitOperationResponse{}, serviceError(http.StatusBadRequest, errorcode.VALIDATION_ERR_CODE,
			fmt.Errorf("unknown operation type %s", request.OperationType))
	}
	if err := json.Unmarshal(request.OperationData, operationData); err != nil {
		return dto.SubmitOperationResponse{}, serviceError(http.StatusBadRequest, errorcode.VALIDATION_ERR_CODE,
			fmt.Errorf("operation data does not match %s : %s", request.OperationType, err))
	}
	if err := service.Validator.Struct(operationData); err != nil {
		return dto.SubmitOperationResponse{}, serviceError(http.StatusBadRequest, errorcode.VALIDATION_ERR_CODE,
			fmt.Errorf("operation data failed validation : %s", err))
	}

	amount, err := utility.MinorUnitFromString(request.Amount)
	if err != nil {
		return dto.SubmitOperationResponse{}, serviceError(http.StatusBadRequest, errorcode.VALIDATION_ERR_CODE, err)
	}
	if amount < constants.MINIMUM_TXN_AMOUNT {
		return dto.SubmitOperationResponse{}, serviceError(http.StatusBadRequest, errorcode.VALIDATION_ERR_CODE,
			fmt.Errorf("amount %s is below the minimum of %s", request.Amount, utility.MajorUnitString(constants.MINIMUM_TXN_AMOUNT)))
	}

	FeeService := NewFeeService(service.Cache, service.Config, service.Repository)
	fee, err := FeeService.ComputeFee(request.OperationType, amount)
	if err != nil {
		return dto.SubmitOperationResponse{}, err
	}

	if err := service.preCheckAccounts(operationData, amount, fee); err != nil {
		return dto.SubmitOperationResponse{}, err
	}

	PolicyService := NewPolicyService(service.Cache, service.Config, service.Repository)
	decision, err := PolicyService.Evaluate(request.OperationType, amount, request.Maker.Role)
	if err != nil {
		return dto.SubmitOperationResponse{}, err
	}

	ReferenceService := NewReferenceService(service.Config, service.Repository)
	queueID, err := ReferenceService.GenerateQueueReference()
	if err != nil {
		return dto.SubmitOperationResponse{}, err
	}

	// Stored payload is the re-encoding of the validated struct, not the raw
	// request bytes, so unknown fields never reach the settlement routines.
	storedData, err := json.Marshal(operationData)
	if err != nil {
		return dto.SubmitOperationResponse{}, serviceError(http.StatusInternalServerError, errorcode.SERVER_ERR_CODE, err)
	}

	item := model.QueueItem{
		QueueID:       queueID,
		OperationType: request.OperationType,
		ReferenceID:   queueID,
		MakerID:       request.Maker.MakerID,
		MakerName:     request.Maker.MakerName,
		MakerRole:     request.Maker.Role,
		BranchCode:    request.Maker.BranchCode,
		Amount:        amount,
		Fee:           fee,
		Description:   request.Description,
		Status:        model.QueueStatus.PENDING,
		Priority:      decision.Priority,
		OperationData: string(storedData),
	}

	if !decision.RequiresApproval {
		now := time.Now()
		item.Status = model.QueueStatus.APPROVED
		item.ApprovedBy = constants.AUTO_APPROVER
		item.ApprovedAt = &now
	}

	if err := service.Repository.Create(&item); err != nil {
		return dto.SubmitOperationResponse{}, err
	}
	logger.Info("Operation %s submitted by %s as %s, priority %s : %s",
		item.OperationType, item.MakerID, item.QueueID, item.Priority, decision.Reason)

	response := dto.SubmitOperationResponse{
		QueueID:          item.QueueID,
		Status:           item.Status,
		Priority:         item.Priority,
		RequiresApproval: decision.RequiresApproval,
		Fee:              utility.MajorUnitString(fee),
		Message:          decision.Reason,
	}

	if !decision.RequiresApproval {
		ExecutionService := NewExecutionService(service.Cache, service.Config, service.Repository)
		result, err := ExecutionService.Execute(item.QueueID)
		if err != nil {
			return dto.SubmitOperationResponse{}, err
		}
		response.Status = result.Status
		response.ExecutionResult = &result
	}

	return response, nil
}

// Decide ... Records a checker's verdict on a PENDING item. The item row is
// locked for the duration of the decision, so two competing checkers serialize
// and the loser sees the state the winner left behind. An approval settles
// synchronously through the execution dispatcher.
func (service *QueueService) Decide(queueID string, request dto.DecisionRequest) (dto.DecisionResponse, error) {

	tx := database.NewTx(service.Repository.Db())

	item := model.QueueItem{}
	if err := service.Repository.GetByQueueIDForUpdate(tx.Tx(), queueID, &item); err != nil {
		tx.Rollback()
		return dto.DecisionResponse{}, err
	}

	if item.Status != model.QueueStatus.PENDING {
		tx.Rollback()
		return dto.DecisionResponse{}, serviceError(http.StatusConflict, errorcode.INVALID_STATE_ERR_CODE,
			fmt.Errorf("queue item %s has already been decided, current status is %s", item.QueueID, item.Status))
	}
	if request.CheckerID == item.MakerID {
		tx.Rollback()
		return dto.DecisionResponse{}, serviceError(http.StatusForbidden, errorcode.SEPARATION_OF_DUTIES_CODE,
			fmt.Errorf("maker %s cannot approve or reject their own submission", item.MakerID))
	}

	if request.Decision == model.Decision.REJECT {
		if strings.TrimSpace(request.Reason) == "" {
			tx.Rollback()
			return dto.DecisionResponse{}, serviceError(http.StatusBadRequest, errorcode.VALIDATION_ERR_CODE,
				fmt.Errorf("a rejection reason is required"))
		}
		if err := tx.Update(&item, map[string]interface{}{
			"status":           model.QueueStatus.REJECTED,
			"approved_by":      request.CheckerID,
			"rejection_reason": request.Reason,
		}).Commit(); err != nil {
			return dto.DecisionResponse{}, err
		}
		logger.Info("Queue item %s rejected by %s : %s", item.QueueID, request.CheckerID, request.Reason)
		return dto.DecisionResponse{
			QueueID: item.QueueID,
			Status:  model.QueueStatus.REJECTED,
			Message: "Operation rejected",
		}, nil
	}

	now := time.Now()
	if err := tx.Update(&item, map[string]interface{}{
		"status":      model.QueueStatus.APPROVED,
		"approved_by": request.CheckerID,
		"approved_at": now,
	}).Commit(); err != nil {
		return dto.DecisionResponse{}, err
	}
	logger.Info("Queue item %s approved by %s", item.QueueID, request.CheckerID)

	ExecutionService := NewExecutionService(service.Cache, service.Config, service.Repository)
	result, err := ExecutionService.Execute(item.QueueID)
	if err != nil {
		return dto.DecisionResponse{}, err
	}

	return dto.DecisionResponse{
		QueueID:         item.QueueID,
		Status:          result.Status,
		Message:         "Operation approved",
		ExecutionResult: &result,
	}, nil
}

// GetQueueItem ... Single item lookup by queue reference.
func (service *QueueService) GetQueueItem(queueID string) (dto.QueueItemResponse, error) {
	item := model.QueueItem{}
	if err := service.Repository.GetByQueueID(queueID, &item); err != nil {
		return dto.QueueItemResponse{}, err
	}
	return mapQueueItem(item), nil
}

// ListPending ... PENDING items for a branch, oldest first, optionally
// narrowed to one priority.
func (service *QueueService) ListPending(branchCode, priority string) (dto.QueueItemListResponse, error) {
	items := []model.QueueItem{}
	if err := service.Repository.FetchPendingByBranch(branchCode, priority, &items); err != nil {
		return dto.QueueItemListResponse{}, err
	}
	response := dto.QueueItemListResponse{QueueItems: []dto.QueueItemResponse{}}
	for _, item := range items {
		response.QueueItems = append(response.QueueItems, mapQueueItem(item))
	}
	return response, nil
}

// CountPending ... Number of items awaiting a decision for a branch.
func (service *QueueService) CountPending(branchCode string) (dto.PendingCountResponse, error) {
	count, err := service.Repository.CountPendingByBranch(branchCode)
	if err != nil {
		return dto.PendingCountResponse{}, err
	}
	return dto.PendingCountResponse{BranchCode: branchCode, Count: count}, nil
}

// preCheckAccounts ... Advisory account checks at submission time. These keep
// obviously doomed operations off the queue; execution re-verifies everything
// under row locks, so passing here is not a settlement guarantee.
func (service *QueueService) preCheckAccounts(operationData interface{}, amount, fee int64) error {

	switch data := operationData.(type) {
	case *dto.CashDepositData:
		return service.checkCreditAccount(data.AccountNumber)
	case *dto.ChequeDepositData:
		return service.checkCreditAccount(data.AccountNumber)
	case *dto.LoanDisbursementData:
		return service.checkCreditAccount(data.AccountNumber)
	case *dto.ClaimsPayoutData:
		return service.checkCreditAccount(data.AccountNumber)
	case *dto.CashWithdrawalData:
		return service.checkDebitAccount(data.AccountNumber, amount+fee)
	case *dto.ExternalTransferData:
		return service.checkDebitAccount(data.SourceAccountNumber, amount+fee)
	case *dto.MobileMoneyTransferData:
		return service.checkDebitAccount(data.SourceAccountNumber, amount+fee)
	case *dto.BillPaymentData:
		return service.checkDebitAccount(data.SourceAccountNumber, amount+fee)
	case *dto.CdscTransferData:
		return service.checkDebitAccount(data.SourceAccountNumber, amount+fee)
	case *dto.PolicySaleData:
		return service.checkDebitAccount(data.SourceAccountNumber, amount+fee)
	case *dto.PremiumCollectionData:
		return service.checkDebitAccount(data.SourceAccountNumber, amount+fee)
	case *dto.InternalTransferData:
		if err := service.checkDebitAccount(data.SourceAccountNumber, amount+fee); err != nil {
			return err
		}
		return service.checkCreditAccount(data.DestinationAccountNumber)
	default:
		return nil
	}
}

func (service *QueueService) checkDebitAccount(accountNumber string, total int64) error {
	account := model.Account{}
	if err := service.Repository.GetByAccountNumber(accountNumber, &account); err != nil {
		return err
	}
	if account.Status != model.AccountStatus.ACTIVE {
		return serviceError(http.StatusBadRequest, errorcode.ACCOUNT_INACTIVE_CODE,
			fmt.Errorf("account %s is %s", accountNumber, account.Status))
	}
	if account.Balance < total {
		return serviceError(http.StatusBadRequest, errorcode.INSUFFICIENT_FUNDS_CODE,
			fmt.Errorf("insufficient funds on account %s to cover %s", accountNumber, utility.MajorUnitString(total)))
	}
	return nil
}

func (service *QueueService) checkCreditAccount(accountNumber string) error {
	account := model.Account{}
	if err := service.Repository.GetByAccountNumber(accountNumber, &account); err != nil {
		return err
	}
	if account.Status != model.AccountStatus.ACTIVE {
		return serviceError(http.StatusBadRequest, errorcode.ACCOUNT_INACTIVE_CODE,
			fmt.Errorf("account %s is %s", accountNumber, account.Status))
	}
	return nil
}

func mapQueueItem(item model.QueueItem) dto.QueueItemResponse {
	executionRefs := []string{}
	if item.ExecutionRefs != "" {
		executionRefs = strings.Split(item.ExecutionRefs, ",")
	}
	return dto.QueueItemResponse{
		QueueID:         item.QueueID,
		OperationType:   item.OperationType,
		ReferenceID:     item.ReferenceID,
		MakerID:         item.MakerID,
		MakerName:       item.MakerName,
		BranchCode:      item.BranchCode,
		Amount:          utility.MajorUnitString(item.Amount),
		Fee:             utility.MajorUnitString(item.Fee),
		Description:     item.Description,
		Status:          item.Status,
		Priority:        item.Priority,
		ApprovedBy:      item.ApprovedBy,
		ApprovedAt:      item.ApprovedAt,
		RejectionReason: item.RejectionReason,
		FailureReason:   item.FailureReason,
		ExecutionRefs:   executionRefs,
		CreatedAt:       item.CreatedAt,
	}
}
