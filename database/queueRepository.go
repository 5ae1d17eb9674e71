package database

import (
	"time"

	"authorization-engine/model"
	"authorization-engine/utility/logger"

	"github.com/jinzhu/gorm"
)

// IQueueRepository ...
type IQueueRepository interface {
	IRepository
	GetByQueueID(queueID string, item *model.QueueItem) error
	GetByQueueIDForUpdate(tx *gorm.DB, queueID string, item *model.QueueItem) error
	FetchPendingByBranch(branchCode, priority string, items *[]model.QueueItem) error
	CountPendingByBranch(branchCode string) (int, error)
	FetchPendingOlderThan(cutoff time.Time, items *[]model.QueueItem) error
	QueueReferenceExists(reference string) (bool, error)
}

// QueueRepository ...
type QueueRepository struct {
	BaseRepository
}

// GetByQueueID ...
func (repo *QueueRepository) GetByQueueID(queueID string, item *model.QueueItem) error {
	return repo.GetByFieldName(&model.QueueItem{QueueID: queueID}, item)
}

// GetByQueueIDForUpdate ... Reads the queue item under a row lock inside the
// supplied transaction, so decide-then-execute is serialized per item.
func (repo *QueueRepository) GetByQueueIDForUpdate(tx *gorm.DB, queueID string, item *model.QueueItem) error {
	if err := ForUpdate(tx).Where(&model.QueueItem{QueueID: queueID}).First(item).Error; err != nil {
		logger.Error("Error with repository GetByQueueIDForUpdate : %+v", err)
		return repoError(err)
	}
	return nil
}

// FetchPendingByBranch ... Pending items for checker triage, oldest first.
func (repo *QueueRepository) FetchPendingByBranch(branchCode, priority string, items *[]model.QueueItem) error {
	query := repo.DB.Where(&model.QueueItem{Status: model.QueueStatus.PENDING, BranchCode: branchCode})
	if priority != "" {
		query = query.Where(&model.QueueItem{Priority: priority})
	}
	if err := query.Order("created_at asc").Find(items).Error; err != nil {
		logger.Error("Error with repository FetchPendingByBranch : %s", err)
		return repoError(err)
	}
	return nil
}

// CountPendingByBranch ...
func (repo *QueueRepository) CountPendingByBranch(branchCode string) (int, error) {
	count := 0
	if err := repo.DB.Model(&model.QueueItem{}).Where(&model.QueueItem{Status: model.QueueStatus.PENDING, BranchCode: branchCode}).Count(&count).Error; err != nil {
		logger.Error("Error with repository CountPendingByBranch : %s", err)
		return 0, repoError(err)
	}
	return count, nil
}

// FetchPendingOlderThan ... Items stuck in PENDING beyond the review SLA.
func (repo *QueueRepository) FetchPendingOlderThan(cutoff time.Time, items *[]model.QueueItem) error {
	if err := repo.DB.Where(&model.QueueItem{Status: model.QueueStatus.PENDING}).Where("created_at < ?", cutoff).Find(items).Error; err != nil {
		logger.Error("Error with repository FetchPendingOlderThan : %s", err)
		return repoError(err)
	}
	return nil
}

// QueueReferenceExists ...
func (repo *QueueRepository) QueueReferenceExists(reference string) (bool, error) {
	count := 0
	if err := repo.DB.Model(&model.QueueItem{}).Where(&model.QueueItem{QueueID: reference}).Count(&count).Error; err != nil {
		logger.Error("Error with repository QueueReferenceExists : %s", err)
		return false, repoError(err)
	}
	return count > 0, nil
}
