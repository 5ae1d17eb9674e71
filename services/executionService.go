package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	Config "authorization-engine/config"
	"authorization-engine/database"
	"authorization-engine/dto"
	"authorization-engine/model"
	"authorization-engine/utility/cache"
	"authorization-engine/utility/constants"
	"authorization-engine/utility/errorcode"
	"authorization-engine/utility/logger"
)

//ExecutionService object
type ExecutionService struct {
	Cache      *cache.Memory
	Config     Config.Data
	Repository database.IAccountRepository
}

func NewExecutionService(memoryCache *cache.Memory, config Config.Data, repository database.IAccountRepository) *ExecutionService {
	return &ExecutionService{
		Cache:      memoryCache,
		Config:     config,
		Repository: repository,
	}
}

// Execute ... Settles an approved queue item against the ledger, exactly
// once. Re-invoking on an item that has already executed returns the recorded
// result without touching the ledger. Settlement failures are recorded on the
// item (EXECUTION_FAILED plus reason), not thrown back to the caller.
func (service *ExecutionService) Execute(queueID string) (dto.ExecutionResult, error) {

	tx := database.NewTx(service.Repository.Db())

	item := model.QueueItem{}
	if err := service.Repository.GetByQueueIDForUpdate(tx.Tx(), queueID, &item); err != nil {
		tx.Rollback()
		return dto.ExecutionResult{}, err
	}

	if item.Status == model.QueueStatus.EXECUTED {
		tx.Rollback()
		return recordedResult(item), nil
	}
	if item.Status != model.QueueStatus.APPROVED {
		tx.Rollback()
		return dto.ExecutionResult{}, serviceError(http.StatusConflict, errorcode.INVALID_STATE_ERR_CODE,
			fmt.Errorf("queue item %s cannot be executed from status %s", item.QueueID, item.Status))
	}

	operationData, known := dto.NewOperationData(item.OperationType)
	if !known {
		tx.Rollback()
		return service.recordFailure(item, fmt.Sprintf("no settlement routine for operation type %s", item.OperationType))
	}
	if err := json.Unmarshal([]byte(item.OperationData), operationData); err != nil {
		tx.Rollback()
		return service.recordFailure(item, fmt.Sprintf("stored operation data is unreadable : %s", err))
	}

	references, settleErr := service.settle(tx, &item, operationData)
	if settleErr != nil {
		tx.Rollback()
		return service.recordFailure(item, settleErr.Error())
	}

	if err := tx.Update(&item, map[string]interface{}{
		"status":         model.QueueStatus.EXECUTED,
		"execution_refs": strings.Join(references, ","),
	}).Commit(); err != nil {
		return service.recordFailure(item, err.Error())
	}

	logger.Info("Queue item %s executed, postings : %s", item.QueueID, strings.Join(references, ","))
	return dto.ExecutionResult{
		Status:     model.QueueStatus.EXECUTED,
		References: references,
		Message:    "Operation settled successfully",
	}, nil
}

// settle ... Routes the item to the settlement routine registered for its
// payload shape. The type switch is the closed dispatch set: a new operation
// type does not exist until a case is added here.
func (service *ExecutionService) settle(tx *database.TX, item *model.QueueItem, operationData interface{}) ([]string, error) {

	switch data := operationData.(type) {
	case *dto.CashDepositData:
		return service.settleCredit(tx, item, data.AccountNumber, model.TxnType.DEPOSIT, data.Narration)
	case *dto.ChequeDepositData:
		return service.settleCredit(tx, item, data.AccountNumber, model.TxnType.DEPOSIT, data.Narration)
	case *dto.LoanDisbursementData:
		return service.settleCredit(tx, item, data.AccountNumber, model.TxnType.LOAN_DISBURSEMENT, data.Narration)
	case *dto.ClaimsPayoutData:
		return service.settleCredit(tx, item, data.AccountNumber, model.TxnType.CLAIM_PAYOUT, data.Narration)
	case *dto.CashWithdrawalData:
		return service.settleDebit(tx, item, data.AccountNumber, model.TxnType.WITHDRAWAL, data.Narration)
	case *dto.ExternalTransferData:
		return service.settleDebit(tx, item, data.SourceAccountNumber, model.TxnType.TRANSFER_DEBIT, data.Narration)
	case *dto.MobileMoneyTransferData:
		return service.settleDebit(tx, item, data.SourceAccountNumber, model.TxnType.TRANSFER_DEBIT, data.Narration)
	case *dto.BillPaymentData:
		return service.settleDebit(tx, item, data.SourceAccountNumber, model.TxnType.BILL_PAYMENT, data.Narration)
	case *dto.CdscTransferData:
		return service.settleDebit(tx, item, data.SourceAccountNumber, model.TxnType.TRANSFER_DEBIT, data.Narration)
	case *dto.PolicySaleData:
		return service.settleDebit(tx, item, data.SourceAccountNumber, model.TxnType.POLICY_PREMIUM, data.Narration)
	case *dto.PremiumCollectionData:
		return service.settleDebit(tx, item, data.SourceAccountNumber, model.TxnType.POLICY_PREMIUM, data.Narration)
	case *dto.InternalTransferData:
		return service.settleInternalTransfer(tx, item, data)
	default:
		return nil, errors.New("unreachable settlement dispatch")
	}
}

// settleCredit ... Single credit posting plus the balance movement it
// explains, in one atomic unit.
func (service *ExecutionService) settleCredit(tx *database.TX, item *model.QueueItem, accountNumber, txnType, narration string) ([]string, error) {

	account := model.Account{}
	if err := service.lockActiveAccount(tx, accountNumber, &account); err != nil {
		return nil, err
	}

	ReferenceService := NewReferenceService(service.Config, service.Repository)
	reference, err := ReferenceService.GenerateTxnReference()
	if err != nil {
		return nil, err
	}

	posting := model.Transaction{
		AccountID:     account.ID,
		TxnType:       txnType,
		Amount:        item.Amount,
		ReferenceCode: reference,
		QueueID:       item.QueueID,
		Description:   narration,
	}
	tx.Create(&posting).Update(&account, map[string]interface{}{"balance": account.Balance + item.Amount})

	return []string{reference}, nil
}

// settleDebit ... Principal debit posting plus an optional fee leg sharing
// the same reference base. Balance re-verification happens here, under the
// account row lock, regardless of what was checked at submission.
func (service *ExecutionService) settleDebit(tx *database.TX, item *model.QueueItem, accountNumber, txnType, narration string) ([]string, error) {

	account := model.Account{}
	if err := service.lockActiveAccount(tx, accountNumber, &account); err != nil {
		return nil, err
	}

	total := item.Amount + item.Fee
	if account.Balance < total {
		return nil, serviceError(http.StatusBadRequest, errorcode.INSUFFICIENT_FUNDS_CODE,
			fmt.Errorf("insufficient funds on account %s : balance is below %d", accountNumber, total))
	}

	ReferenceService := NewReferenceService(service.Config, service.Repository)
	base, err := ReferenceService.GenerateTxnReference()
	if err != nil {
		return nil, err
	}

	references := []string{base}
	principal := model.Transaction{
		AccountID:     account.ID,
		TxnType:       txnType,
		Amount:        item.Amount,
		ReferenceCode: base,
		QueueID:       item.QueueID,
		Description:   narration,
	}
	tx.Create(&principal)

	if item.Fee > 0 {
		feeReference := base + constants.SEPERATOR + constants.FEE_LEG_SUFFIX
		feePosting := model.Transaction{
			AccountID:     account.ID,
			TxnType:       model.TxnType.FEE,
			Amount:        item.Fee,
			ReferenceCode: feeReference,
			QueueID:       item.QueueID,
			Description:   fmt.Sprintf("%s service charge", item.OperationType),
		}
		tx.Create(&feePosting)
		references = append(references, feeReference)
	}

	tx.Update(&account, map[string]interface{}{"balance": account.Balance - total})

	return references, nil
}

// settleInternalTransfer ... Paired debit and credit postings created in the
// same atomic unit; one never exists without the other. Accounts are locked
// in account-number order so two opposing transfers cannot deadlock.
func (service *ExecutionService) settleInternalTransfer(tx *database.TX, item *model.QueueItem, data *dto.InternalTransferData) ([]string, error) {

	first, second := data.SourceAccountNumber, data.DestinationAccountNumber
	if second < first {
		first, second = second, first
	}

	accounts := map[string]*model.Account{}
	for _, accountNumber := range []string{first, second} {
		account := &model.Account{}
		if err := service.lockActiveAccount(tx, accountNumber, account); err != nil {
			return nil, err
		}
		accounts[accountNumber] = account
	}
	source := accounts[data.SourceAccountNumber]
	destination := accounts[data.DestinationAccountNumber]

	if source.Balance < item.Amount {
		return nil, serviceError(http.StatusBadRequest, errorcode.INSUFFICIENT_FUNDS_CODE,
			fmt.Errorf("insufficient funds on account %s : balance is below %d", source.AccountNumber, item.Amount))
	}

	ReferenceService := NewReferenceService(service.Config, service.Repository)
	base, err := ReferenceService.GenerateTxnReference()
	if err != nil {
		return nil, err
	}
	debitReference := base + constants.SEPERATOR + constants.DEBIT_LEG_SUFFIX
	creditReference := base + constants.SEPERATOR + constants.CREDIT_LEG_SUFFIX

	debitPosting := model.Transaction{
		AccountID:     source.ID,
		TxnType:       model.TxnType.TRANSFER_DEBIT,
		Amount:        item.Amount,
		ReferenceCode: debitReference,
		QueueID:       item.QueueID,
		Description:   data.Narration,
	}
	creditPosting := model.Transaction{
		AccountID:     destination.ID,
		TxnType:       model.TxnType.TRANSFER_CREDIT,
		Amount:        item.Amount,
		ReferenceCode: creditReference,
		QueueID:       item.QueueID,
		Description:   data.Narration,
	}

	tx.Create(&debitPosting).
		Create(&creditPosting).
		Update(source, map[string]interface{}{"balance": source.Balance - item.Amount}).
		Update(destination, map[string]interface{}{"balance": destination.Balance + item.Amount})

	return []string{debitReference, creditReference}, nil
}

func (service *ExecutionService) lockActiveAccount(tx *database.TX, accountNumber string, account *model.Account) error {
	if err := service.Repository.GetAccountForUpdate(tx.Tx(), accountNumber, account); err != nil {
		return err
	}
	if account.Status != model.AccountStatus.ACTIVE {
		return serviceError(http.StatusBadRequest, errorcode.ACCOUNT_INACTIVE_CODE,
			fmt.Errorf("account %s is %s", accountNumber, account.Status))
	}
	return nil
}

// recordFailure ... The ledger transaction has been rolled back; record the
// terminal failure on the queue item so an approved item is never silently
// left unexecuted.
func (service *ExecutionService) recordFailure(item model.QueueItem, reason string) (dto.ExecutionResult, error) {

	logger.Error("Execution of queue item %s failed : %s", item.QueueID, reason)
	if err := service.Repository.Db().Model(&item).Updates(map[string]interface{}{
		"status":         model.QueueStatus.EXECUTION_FAILED,
		"failure_reason": reason,
	}).Error; err != nil {
		logger.Error("Could not record execution failure for %s : %s", item.QueueID, err)
		return dto.ExecutionResult{}, serviceError(http.StatusInternalServerError, errorcode.SERVER_ERR_CODE, err)
	}

	return dto.ExecutionResult{
		Status:  model.QueueStatus.EXECUTION_FAILED,
		Message: reason,
	}, nil
}

func recordedResult(item model.QueueItem) dto.ExecutionResult {
	references := []string{}
	if item.ExecutionRefs != "" {
		references = strings.Split(item.ExecutionRefs, ",")
	}
	return dto.ExecutionResult{
		Status:     model.QueueStatus.EXECUTED,
		References: references,
		Message:    "Operation already settled",
	}
}
