package services

import (
	Config "authorization-engine/config"
	"authorization-engine/database"
	"authorization-engine/dto"
	"authorization-engine/model"
	"authorization-engine/utility"
	"authorization-engine/utility/cache"
)

//AccountService object
type AccountService struct {
	Cache      *cache.Memory
	Config     Config.Data
	Repository database.IAccountRepository
}

func NewAccountService(memoryCache *cache.Memory, config Config.Data, repository database.IAccountRepository) *AccountService {
	return &AccountService{
		Cache:      memoryCache,
		Config:     config,
		Repository: repository,
	}
}

// GetAccount ... Account details by account number.
func (service *AccountService) GetAccount(accountNumber string) (dto.AccountResponse, error) {
	account := model.Account{}
	if err := service.Repository.GetByAccountNumber(accountNumber, &account); err != nil {
		return dto.AccountResponse{}, err
	}
	return dto.AccountResponse{
		AccountNumber: account.AccountNumber,
		AccountName:   account.AccountName,
		Balance:       utility.MajorUnitString(account.Balance),
		Status:        account.Status,
		BranchCode:    account.BranchCode,
		Currency:      account.Currency,
	}, nil
}

// GetAccountTransactions ... Posting history for an account, newest first.
func (service *AccountService) GetAccountTransactions(accountNumber string) (dto.TransactionListResponse, error) {

	account := model.Account{}
	if err := service.Repository.GetByAccountNumber(accountNumber, &account); err != nil {
		return dto.TransactionListResponse{}, err
	}

	transactions := []model.Transaction{}
	if err := service.Repository.FetchTransactionsByAccountID(account.ID, &transactions); err != nil {
		return dto.TransactionListResponse{}, err
	}

	response := dto.TransactionListResponse{
		AccountNumber: account.AccountNumber,
		Transactions:  []dto.TransactionResponse{},
	}
	for _, transaction := range transactions {
		response.Transactions = append(response.Transactions, dto.TransactionResponse{
			ReferenceCode: transaction.ReferenceCode,
			TxnType:       transaction.TxnType,
			Amount:        utility.MajorUnitString(transaction.Amount),
			SignedAmount:  utility.MajorUnitString(transaction.SignedAmount()),
			QueueID:       transaction.QueueID,
			Description:   transaction.Description,
			CreatedAt:     transaction.CreatedAt,
		})
	}
	return response, nil
}
