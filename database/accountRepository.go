package database

import (
	"authorization-engine/model"
	"authorization-engine/utility/logger"

	"github.com/jinzhu/gorm"
)

// IAccountRepository ...
type IAccountRepository interface {
	IQueueRepository
	GetByAccountNumber(accountNumber string, account *model.Account) error
	GetAccountForUpdate(tx *gorm.DB, accountNumber string, account *model.Account) error
	TxnReferenceExists(reference string) (bool, error)
	FetchTransactionsByAccountID(accountID interface{}, transactions *[]model.Transaction) error
}

// AccountRepository ...
type AccountRepository struct {
	QueueRepository
}

// GetByAccountNumber ...
func (repo *AccountRepository) GetByAccountNumber(accountNumber string, account *model.Account) error {
	return repo.GetByFieldName(&model.Account{AccountNumber: accountNumber}, account)
}

// GetAccountForUpdate ... Reads the account row under a lock inside the
// supplied transaction. Balance re-verification and the balance update must
// both happen while the lock is held.
func (repo *AccountRepository) GetAccountForUpdate(tx *gorm.DB, accountNumber string, account *model.Account) error {
	if err := ForUpdate(tx).Where(&model.Account{AccountNumber: accountNumber}).First(account).Error; err != nil {
		logger.Error("Error with repository GetAccountForUpdate : %+v", err)
		return repoError(err)
	}
	return nil
}

// TxnReferenceExists ...
func (repo *AccountRepository) TxnReferenceExists(reference string) (bool, error) {
	count := 0
	if err := repo.DB.Model(&model.Transaction{}).Where(&model.Transaction{ReferenceCode: reference}).Count(&count).Error; err != nil {
		logger.Error("Error with repository TxnReferenceExists : %s", err)
		return false, repoError(err)
	}
	return count > 0, nil
}

// FetchTransactionsByAccountID ... Postings for one account, newest first.
func (repo *AccountRepository) FetchTransactionsByAccountID(accountID interface{}, transactions *[]model.Transaction) error {
	if err := repo.DB.Where("account_id = ?", accountID).Order("created_at desc").Find(transactions).Error; err != nil {
		logger.Error("Error with repository FetchTransactionsByAccountID : %s", err)
		return repoError(err)
	}
	return nil
}
