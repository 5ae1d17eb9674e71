package test

import (
	"time"

	"authorization-engine/dto"
	"authorization-engine/model"
	"authorization-engine/tasks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *Suite) Test_SweepPendingItems_escalatesStaleItems() {
	stale, err := s.submit(model.OperationType.CASH_WITHDRAWAL, "30000.00", dto.CashWithdrawalData{
		AccountNumber: "0100345671",
	})
	require.NoError(s.T(), err)
	fresh, err := s.submit(model.OperationType.CASH_WITHDRAWAL, "60000.00", dto.CashWithdrawalData{
		AccountNumber: "0100345671",
	})
	require.NoError(s.T(), err)

	overSLA := time.Now().Add(-time.Duration(s.Config.PendingReviewSLA+5) * time.Minute)
	require.NoError(s.T(), s.DB.Model(&model.QueueItem{}).Where("queue_id = ?", stale.QueueID).Update("created_at", overSLA).Error)

	tasks.SweepPendingItems(authCache, s.Config, &testAccountRepository)

	staleItem := s.queueItemByID(stale.QueueID)
	assert.Equal(s.T(), model.Priority.HIGH, staleItem.Priority, "30000.00 queues at MEDIUM and escalates one step")
	assert.Equal(s.T(), model.QueueStatus.PENDING, staleItem.Status, "Escalation never decides the item")

	freshItem := s.queueItemByID(fresh.QueueID)
	assert.Equal(s.T(), model.Priority.HIGH, freshItem.Priority, "Items within the SLA keep their priority")
}

func (s *Suite) Test_SweepPendingItems_leavesUrgentAlone() {
	submitted, err := s.submit(model.OperationType.CASH_WITHDRAWAL, "60000.00", dto.CashWithdrawalData{
		AccountNumber: "0100345671",
	})
	require.NoError(s.T(), err)

	overSLA := time.Now().Add(-time.Duration(s.Config.PendingReviewSLA+5) * time.Minute)
	require.NoError(s.T(), s.DB.Model(&model.QueueItem{}).Where("queue_id = ?", submitted.QueueID).
		Updates(map[string]interface{}{"created_at": overSLA, "priority": model.Priority.URGENT}).Error)

	tasks.SweepPendingItems(authCache, s.Config, &testAccountRepository)

	item := s.queueItemByID(submitted.QueueID)
	assert.Equal(s.T(), model.Priority.URGENT, item.Priority, "URGENT is the ceiling")
}
