package tasks

import (
	"time"

	Config "authorization-engine/config"
	"authorization-engine/database"
	"authorization-engine/model"
	"authorization-engine/utility/cache"
	"authorization-engine/utility/logger"

	"github.com/robfig/cron/v3"
)

// SweepPendingItems ... Escalates PENDING queue items that have sat beyond
// the review SLA. Each stale item is bumped one priority step so it surfaces
// at the top of the checker's list; the item itself stays PENDING, only a
// checker can move it on.
func SweepPendingItems(memoryCache *cache.Memory, config Config.Data, repository database.IQueueRepository) {
	logger.Info("Pending sweep process begins")

	cutoff := time.Now().Add(-time.Duration(config.PendingReviewSLA) * time.Minute)
	staleItems := []model.QueueItem{}
	if err := repository.FetchPendingOlderThan(cutoff, &staleItems); err != nil {
		logger.Error("Error response from pending sweep job : %+v while fetching stale items", err)
		return
	}
	if len(staleItems) == 0 {
		logger.Info("Pending sweep process ends, no items older than %d minutes", config.PendingReviewSLA)
		return
	}

	escalated := 0
	for _, item := range staleItems {
		nextPriority, canEscalate := escalate(item.Priority)
		if !canEscalate {
			continue
		}
		if err := repository.Update(&item, &model.QueueItem{Priority: nextPriority}); err != nil {
			logger.Error("Error response from pending sweep job : %+v while escalating item %s", err, item.QueueID)
			continue
		}
		logger.Info("Pending item %s exceeded review SLA, priority raised from %s to %s", item.QueueID, item.Priority, nextPriority)
		escalated++
	}

	logger.Info("Pending sweep process ends, escalated %d of %d stale items", escalated, len(staleItems))
}

func escalate(priority string) (string, bool) {
	switch priority {
	case model.Priority.LOW:
		return model.Priority.MEDIUM, true
	case model.Priority.MEDIUM:
		return model.Priority.HIGH, true
	case model.Priority.HIGH:
		return model.Priority.URGENT, true
	default:
		return priority, false
	}
}

func ExecutePendingSweepCronJob(memoryCache *cache.Memory, config Config.Data, repository database.IQueueRepository) {
	c := cron.New()
	c.AddFunc(config.PendingSweepCronInterval, func() { SweepPendingItems(memoryCache, config, repository) })
	c.Start()
}
