package test

import (
	"encoding/json"
	"strings"

	"authorization-engine/dto"
	"authorization-engine/model"
	"authorization-engine/services"
	"authorization-engine/utility/appError"
	"authorization-engine/utility/errorcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *Suite) queueService() *services.QueueService {
	return services.NewQueueService(authCache, s.Config, testValidator, &testAccountRepository)
}

func (s *Suite) submit(operationType, amount string, operationData interface{}) (dto.SubmitOperationResponse, error) {
	rawData, err := json.Marshal(operationData)
	require.NoError(s.T(), err)
	return s.queueService().Submit(dto.SubmitOperationRequest{
		OperationType: operationType,
		Amount:        amount,
		Description:   "test operation",
		OperationData: rawData,
		Maker:         tellerMaker,
	})
}

func (s *Suite) Test_Submit_autoExecutes_withinRoleLimit() {
	openingBalance := s.accountByNumber("0100345671").Balance

	response, err := s.submit(model.OperationType.CASH_DEPOSIT, "20000.00", dto.CashDepositData{
		AccountNumber: "0100345671",
		DepositorName: "Daniel Otieno",
	})
	assert.Equal(s.T(), nil, err, "Expected Submit to not return error")
	assert.Equal(s.T(), false, response.RequiresApproval, "Deposit within teller limit should not require approval")
	assert.Equal(s.T(), model.QueueStatus.EXECUTED, response.Status, "Auto-approved item should settle immediately")
	assert.NotEqual(s.T(), (*dto.ExecutionResult)(nil), response.ExecutionResult, "Expected an execution result")

	account := s.accountByNumber("0100345671")
	assert.Equal(s.T(), openingBalance+2000000, account.Balance, "Balance should reflect the deposit")

	postings := s.postingsForQueueID(response.QueueID)
	assert.Equal(s.T(), 1, len(postings), "A deposit settles as a single posting")
	assert.Equal(s.T(), model.TxnType.DEPOSIT, postings[0].TxnType)
	assert.Equal(s.T(), int64(2000000), postings[0].Amount)
}

func (s *Suite) Test_Submit_queuesPending_aboveRoleLimit() {
	openingBalance := s.accountByNumber("0100345671").Balance

	response, err := s.submit(model.OperationType.CASH_WITHDRAWAL, "60000.00", dto.CashWithdrawalData{
		AccountNumber: "0100345671",
	})
	assert.Equal(s.T(), nil, err, "Expected Submit to not return error")
	assert.Equal(s.T(), true, response.RequiresApproval, "Withdrawal above teller limit must require approval")
	assert.Equal(s.T(), model.QueueStatus.PENDING, response.Status)
	assert.Equal(s.T(), model.Priority.HIGH, response.Priority, "A breach by more than double the limit escalates to HIGH")

	account := s.accountByNumber("0100345671")
	assert.Equal(s.T(), openingBalance, account.Balance, "Pending items must not touch the ledger")
	assert.Equal(s.T(), 0, len(s.postingsForQueueID(response.QueueID)), "Pending items must not create postings")
}

func (s *Suite) Test_Submit_fails_forUnknownOperationType() {
	_, err := s.submit("WIRE_SOMETHING", "500.00", dto.CashDepositData{
		AccountNumber: "0100345671",
		DepositorName: "Daniel Otieno",
	})
	assert.NotEqual(s.T(), nil, err, "Expected Submit to return error")
	assert.Equal(s.T(), errorcode.VALIDATION_ERR_CODE, err.(appError.Err).ErrType)
	assert.Equal(s.T(), 400, err.(appError.Err).ErrCode)
}

func (s *Suite) Test_Submit_fails_forIncompleteOperationData() {
	_, err := s.submit(model.OperationType.EXTERNAL_TRANSFER, "500.00", dto.ExternalTransferData{
		SourceAccountNumber: "0100345671",
	})
	assert.NotEqual(s.T(), nil, err, "Expected Submit to return error for missing beneficiary fields")
	assert.Equal(s.T(), errorcode.VALIDATION_ERR_CODE, err.(appError.Err).ErrType)
}

func (s *Suite) Test_Submit_fails_belowMinimumAmount() {
	_, err := s.submit(model.OperationType.CASH_DEPOSIT, "0.50", dto.CashDepositData{
		AccountNumber: "0100345671",
		DepositorName: "Daniel Otieno",
	})
	assert.NotEqual(s.T(), nil, err, "Expected Submit to return error")
	assert.Equal(s.T(), errorcode.VALIDATION_ERR_CODE, err.(appError.Err).ErrType)
}

func (s *Suite) Test_Submit_fails_forInsufficientBalance() {
	_, err := s.submit(model.OperationType.CASH_WITHDRAWAL, "90000.00", dto.CashWithdrawalData{
		AccountNumber: "0100345682",
	})
	assert.NotEqual(s.T(), nil, err, "Expected Submit to return error")
	assert.Equal(s.T(), errorcode.INSUFFICIENT_FUNDS_CODE, err.(appError.Err).ErrType)
}

func (s *Suite) Test_Submit_fails_forFrozenAccount() {
	_, err := s.submit(model.OperationType.CASH_DEPOSIT, "500.00", dto.CashDepositData{
		AccountNumber: "0100345693",
		DepositorName: "Peter Kamau",
	})
	assert.NotEqual(s.T(), nil, err, "Expected Submit to return error")
	assert.Equal(s.T(), errorcode.ACCOUNT_INACTIVE_CODE, err.(appError.Err).ErrType)
}

func (s *Suite) Test_Decide_approve_settlesOperation() {
	openingBalance := s.accountByNumber("0100345671").Balance

	submitted, err := s.submit(model.OperationType.CASH_WITHDRAWAL, "60000.00", dto.CashWithdrawalData{
		AccountNumber: "0100345671",
	})
	require.NoError(s.T(), err)

	decision, err := s.queueService().Decide(submitted.QueueID, dto.DecisionRequest{
		CheckerID: supervisorChecker,
		Decision:  model.Decision.APPROVE,
	})
	assert.Equal(s.T(), nil, err, "Expected Decide to not return error")
	assert.Equal(s.T(), model.QueueStatus.EXECUTED, decision.Status)

	item := s.queueItemByID(submitted.QueueID)
	assert.Equal(s.T(), model.QueueStatus.EXECUTED, item.Status)
	assert.Equal(s.T(), supervisorChecker, item.ApprovedBy)
	assert.NotEqual(s.T(), "", item.ExecutionRefs, "Executed item must record its posting references")

	account := s.accountByNumber("0100345671")
	assert.Equal(s.T(), openingBalance-6000000, account.Balance, "Balance should reflect the withdrawal")

	postings := s.postingsForQueueID(submitted.QueueID)
	assert.Equal(s.T(), 1, len(postings))
	assert.Equal(s.T(), model.TxnType.WITHDRAWAL, postings[0].TxnType)
}

func (s *Suite) Test_Decide_reject_leavesLedgerUntouched() {
	openingBalance := s.accountByNumber("0100345671").Balance

	submitted, err := s.submit(model.OperationType.CASH_WITHDRAWAL, "60000.00", dto.CashWithdrawalData{
		AccountNumber: "0100345671",
	})
	require.NoError(s.T(), err)

	decision, err := s.queueService().Decide(submitted.QueueID, dto.DecisionRequest{
		CheckerID: supervisorChecker,
		Decision:  model.Decision.REJECT,
		Reason:    "amount not consistent with customer profile",
	})
	assert.Equal(s.T(), nil, err, "Expected Decide to not return error")
	assert.Equal(s.T(), model.QueueStatus.REJECTED, decision.Status)

	item := s.queueItemByID(submitted.QueueID)
	assert.Equal(s.T(), model.QueueStatus.REJECTED, item.Status)
	assert.Equal(s.T(), "amount not consistent with customer profile", item.RejectionReason)

	assert.Equal(s.T(), openingBalance, s.accountByNumber("0100345671").Balance)
	assert.Equal(s.T(), 0, len(s.postingsForQueueID(submitted.QueueID)))
}

func (s *Suite) Test_Decide_enforcesSeparationOfDuties() {
	submitted, err := s.submit(model.OperationType.CASH_WITHDRAWAL, "60000.00", dto.CashWithdrawalData{
		AccountNumber: "0100345671",
	})
	require.NoError(s.T(), err)

	_, err = s.queueService().Decide(submitted.QueueID, dto.DecisionRequest{
		CheckerID: tellerMaker.MakerID,
		Decision:  model.Decision.APPROVE,
	})
	assert.NotEqual(s.T(), nil, err, "Expected Decide to return error")
	assert.Equal(s.T(), errorcode.SEPARATION_OF_DUTIES_CODE, err.(appError.Err).ErrType)
	assert.Equal(s.T(), 403, err.(appError.Err).ErrCode)

	item := s.queueItemByID(submitted.QueueID)
	assert.Equal(s.T(), model.QueueStatus.PENDING, item.Status, "A blocked decision must leave the item PENDING")
}

func (s *Suite) Test_Decide_requiresReasonOnReject() {
	submitted, err := s.submit(model.OperationType.CASH_WITHDRAWAL, "60000.00", dto.CashWithdrawalData{
		AccountNumber: "0100345671",
	})
	require.NoError(s.T(), err)

	_, err = s.queueService().Decide(submitted.QueueID, dto.DecisionRequest{
		CheckerID: supervisorChecker,
		Decision:  model.Decision.REJECT,
		Reason:    "   ",
	})
	assert.NotEqual(s.T(), nil, err, "Expected Decide to return error")
	assert.Equal(s.T(), errorcode.VALIDATION_ERR_CODE, err.(appError.Err).ErrType)
}

func (s *Suite) Test_Decide_conflictsOnAlreadyDecidedItem() {
	submitted, err := s.submit(model.OperationType.CASH_WITHDRAWAL, "60000.00", dto.CashWithdrawalData{
		AccountNumber: "0100345671",
	})
	require.NoError(s.T(), err)

	_, err = s.queueService().Decide(submitted.QueueID, dto.DecisionRequest{
		CheckerID: supervisorChecker,
		Decision:  model.Decision.APPROVE,
	})
	require.NoError(s.T(), err)

	_, err = s.queueService().Decide(submitted.QueueID, dto.DecisionRequest{
		CheckerID: "EMP-3003",
		Decision:  model.Decision.REJECT,
		Reason:    "duplicate review",
	})
	assert.NotEqual(s.T(), nil, err, "Expected the second decision to fail")
	assert.Equal(s.T(), errorcode.INVALID_STATE_ERR_CODE, err.(appError.Err).ErrType)
	assert.Equal(s.T(), 409, err.(appError.Err).ErrCode)
}

func (s *Suite) Test_Decide_fails_forMissingQueueItem() {
	_, err := s.queueService().Decide("AQ_20250101000000_XXXXXX", dto.DecisionRequest{
		CheckerID: supervisorChecker,
		Decision:  model.Decision.APPROVE,
	})
	assert.NotEqual(s.T(), nil, err, "Expected Decide to return error")
	assert.Equal(s.T(), 404, err.(appError.Err).ErrCode)
}

func (s *Suite) Test_Execute_isIdempotent() {
	submitted, err := s.submit(model.OperationType.CASH_WITHDRAWAL, "60000.00", dto.CashWithdrawalData{
		AccountNumber: "0100345671",
	})
	require.NoError(s.T(), err)

	decision, err := s.queueService().Decide(submitted.QueueID, dto.DecisionRequest{
		CheckerID: supervisorChecker,
		Decision:  model.Decision.APPROVE,
	})
	require.NoError(s.T(), err)
	balanceAfterFirstRun := s.accountByNumber("0100345671").Balance

	ExecutionService := services.NewExecutionService(authCache, s.Config, &testAccountRepository)
	replay, err := ExecutionService.Execute(submitted.QueueID)
	assert.Equal(s.T(), nil, err, "Expected replayed Execute to not return error")
	assert.Equal(s.T(), model.QueueStatus.EXECUTED, replay.Status)
	assert.Equal(s.T(), decision.ExecutionResult.References, replay.References, "Replay must return the recorded references")

	assert.Equal(s.T(), balanceAfterFirstRun, s.accountByNumber("0100345671").Balance, "Replay must not touch the ledger")
	assert.Equal(s.T(), 1, len(s.postingsForQueueID(submitted.QueueID)), "Replay must not create postings")
}

func (s *Suite) Test_Execute_failure_recordsAndPreservesLedger() {
	submitted, err := s.submit(model.OperationType.EXTERNAL_TRANSFER, "75000.00", dto.ExternalTransferData{
		SourceAccountNumber:      "0100345682",
		BeneficiaryAccountNumber: "9900112233",
		BeneficiaryBankCode:      "031",
		BeneficiaryName:          "Acme Supplies Ltd",
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), true, submitted.RequiresApproval, "External transfers always require approval")

	// Funds move out between submission and approval.
	require.NoError(s.T(), s.DB.Model(&model.Account{}).Where("account_number = ?", "0100345682").Update("balance", 100000).Error)

	decision, err := s.queueService().Decide(submitted.QueueID, dto.DecisionRequest{
		CheckerID: supervisorChecker,
		Decision:  model.Decision.APPROVE,
	})
	assert.Equal(s.T(), nil, err, "A settlement failure is recorded, not returned")
	assert.Equal(s.T(), model.QueueStatus.EXECUTION_FAILED, decision.Status)

	item := s.queueItemByID(submitted.QueueID)
	assert.Equal(s.T(), model.QueueStatus.EXECUTION_FAILED, item.Status)
	assert.Equal(s.T(), true, strings.Contains(item.FailureReason, "insufficient funds"), "Failure reason should name the cause")

	assert.Equal(s.T(), int64(100000), s.accountByNumber("0100345682").Balance, "A failed settlement must leave the ledger untouched")
	assert.Equal(s.T(), 0, len(s.postingsForQueueID(submitted.QueueID)))
}

func (s *Suite) Test_InternalTransfer_createsPairedLegs() {
	sourceOpening := s.accountByNumber("0100345671").Balance
	destinationOpening := s.accountByNumber("0100345682").Balance

	response, err := s.submit(model.OperationType.INTERNAL_TRANSFER, "15000.00", dto.InternalTransferData{
		SourceAccountNumber:      "0100345671",
		DestinationAccountNumber: "0100345682",
	})
	assert.Equal(s.T(), nil, err, "Expected Submit to not return error")
	assert.Equal(s.T(), model.QueueStatus.EXECUTED, response.Status, "Transfer within teller limit settles immediately")

	postings := s.postingsForQueueID(response.QueueID)
	assert.Equal(s.T(), 2, len(postings), "An internal transfer settles as exactly two postings")

	legs := map[string]model.Transaction{}
	for _, posting := range postings {
		legs[posting.TxnType] = posting
	}
	debitLeg := legs[model.TxnType.TRANSFER_DEBIT]
	creditLeg := legs[model.TxnType.TRANSFER_CREDIT]
	assert.Equal(s.T(), debitLeg.Amount, creditLeg.Amount, "Both legs carry the same amount")
	assert.Equal(s.T(), true, strings.HasSuffix(debitLeg.ReferenceCode, "_OUT"))
	assert.Equal(s.T(), true, strings.HasSuffix(creditLeg.ReferenceCode, "_IN"))
	assert.Equal(s.T(),
		strings.TrimSuffix(debitLeg.ReferenceCode, "_OUT"),
		strings.TrimSuffix(creditLeg.ReferenceCode, "_IN"),
		"Both legs share one reference base")

	assert.Equal(s.T(), sourceOpening-1500000, s.accountByNumber("0100345671").Balance)
	assert.Equal(s.T(), destinationOpening+1500000, s.accountByNumber("0100345682").Balance)
}

func (s *Suite) Test_MobileMoneyTransfer_attachesFeeLeg() {
	openingBalance := s.accountByNumber("0100345671").Balance

	response, err := s.submit(model.OperationType.MOBILE_MONEY_TRANSFER, "2000.00", dto.MobileMoneyTransferData{
		SourceAccountNumber: "0100345671",
		PhoneNumber:         "+254712345678",
	})
	assert.Equal(s.T(), nil, err, "Expected Submit to not return error")
	assert.Equal(s.T(), model.QueueStatus.EXECUTED, response.Status)
	assert.Equal(s.T(), "52.00", response.Fee, "2000.00 falls in the 2500 band")

	postings := s.postingsForQueueID(response.QueueID)
	assert.Equal(s.T(), 2, len(postings), "Principal and fee settle as separate postings")

	legs := map[string]model.Transaction{}
	for _, posting := range postings {
		legs[posting.TxnType] = posting
	}
	principal := legs[model.TxnType.TRANSFER_DEBIT]
	feeLeg := legs[model.TxnType.FEE]
	assert.Equal(s.T(), int64(200000), principal.Amount)
	assert.Equal(s.T(), int64(5200), feeLeg.Amount)
	assert.Equal(s.T(), principal.ReferenceCode+"_FEE", feeLeg.ReferenceCode, "Fee leg shares the principal's reference base")

	assert.Equal(s.T(), openingBalance-205200, s.accountByNumber("0100345671").Balance, "Balance moves by principal plus fee")
}

func (s *Suite) Test_Ledger_conservesBalances() {
	openingBalances := map[string]int64{}
	for _, account := range testAccounts {
		openingBalances[account.AccountNumber] = s.accountByNumber(account.AccountNumber).Balance
	}

	_, err := s.submit(model.OperationType.CASH_DEPOSIT, "10000.00", dto.CashDepositData{AccountNumber: "0100345671", DepositorName: "Daniel Otieno"})
	require.NoError(s.T(), err)
	_, err = s.submit(model.OperationType.INTERNAL_TRANSFER, "4000.00", dto.InternalTransferData{SourceAccountNumber: "0100345671", DestinationAccountNumber: "0100345682"})
	require.NoError(s.T(), err)
	_, err = s.submit(model.OperationType.MOBILE_MONEY_TRANSFER, "900.00", dto.MobileMoneyTransferData{SourceAccountNumber: "0100345682", PhoneNumber: "+254712345678"})
	require.NoError(s.T(), err)

	for accountNumber, openingBalance := range openingBalances {
		account := s.accountByNumber(accountNumber)
		postings := []model.Transaction{}
		require.NoError(s.T(), testAccountRepository.FetchTransactionsByAccountID(account.ID, &postings))

		signedSum := int64(0)
		for _, posting := range postings {
			signedSum += posting.SignedAmount()
		}
		assert.Equal(s.T(), openingBalance+signedSum, account.Balance,
			"Balance of %s must equal its opening balance plus the signed sum of its postings", accountNumber)
	}
}

func (s *Suite) Test_PendingQueue_listAndCount() {
	first, err := s.submit(model.OperationType.CASH_WITHDRAWAL, "60000.00", dto.CashWithdrawalData{AccountNumber: "0100345671"})
	require.NoError(s.T(), err)
	second, err := s.submit(model.OperationType.EXTERNAL_TRANSFER, "500.00", dto.ExternalTransferData{
		SourceAccountNumber:      "0100345671",
		BeneficiaryAccountNumber: "9900112233",
		BeneficiaryBankCode:      "031",
		BeneficiaryName:          "Acme Supplies Ltd",
	})
	require.NoError(s.T(), err)

	listing, err := s.queueService().ListPending(tellerMaker.BranchCode, "")
	assert.Equal(s.T(), nil, err, "Expected ListPending to not return error")
	assert.Equal(s.T(), 2, len(listing.QueueItems))
	assert.Equal(s.T(), first.QueueID, listing.QueueItems[0].QueueID, "Oldest submission lists first")
	assert.Equal(s.T(), second.QueueID, listing.QueueItems[1].QueueID)

	highOnly, err := s.queueService().ListPending(tellerMaker.BranchCode, model.Priority.HIGH)
	assert.Equal(s.T(), nil, err)
	for _, item := range highOnly.QueueItems {
		assert.Equal(s.T(), model.Priority.HIGH, item.Priority)
	}

	count, err := s.queueService().CountPending(tellerMaker.BranchCode)
	assert.Equal(s.T(), nil, err)
	assert.Equal(s.T(), 2, count.Count)

	elsewhere, err := s.queueService().CountPending("BR-999")
	assert.Equal(s.T(), nil, err)
	assert.Equal(s.T(), 0, elsewhere.Count)
}

func (s *Suite) Test_GetQueueItem_fails_forUnknownReference() {
	_, err := s.queueService().GetQueueItem("AQ_20250101000000_ZZZZZZ")
	assert.NotEqual(s.T(), nil, err, "Expected GetQueueItem to return error")
	assert.Equal(s.T(), 404, err.(appError.Err).ErrCode)
	assert.Equal(s.T(), errorcode.RECORD_NOT_FOUND, err.(appError.Err).ErrType)
}
