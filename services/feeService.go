package services

import (
	"sort"

	Config "authorization-engine/config"
	"authorization-engine/database"
	"authorization-engine/model"
	"authorization-engine/utility/cache"
	"authorization-engine/utility/constants"
)

// Fixed service charges, keyed by operation type. Tiered products resolve
// through the fee_schedules table instead.
var fixedFees = map[string]int64{
	model.OperationType.EXTERNAL_TRANSFER: constants.EXTERNAL_TRANSFER_FEE,
	model.OperationType.BILL_PAYMENT:      constants.BILL_PAYMENT_FEE,
	model.OperationType.CDSC_TRANSFER:     constants.CDSC_TRANSFER_FEE,
}

//FeeService object
type FeeService struct {
	Cache      *cache.Memory
	Config     Config.Data
	Repository database.IQueueRepository
}

func NewFeeService(memoryCache *cache.Memory, config Config.Data, repository database.IQueueRepository) *FeeService {
	return &FeeService{
		Cache:      memoryCache,
		Config:     config,
		Repository: repository,
	}
}

// ComputeFee ... Fee for the operation in minor units. Deterministic for
// identical inputs, which idempotent re-execution depends on.
func (service *FeeService) ComputeFee(operationType string, amount int64) (int64, error) {

	if fee, isFixed := fixedFees[operationType]; isFixed {
		return fee, nil
	}

	schedule, err := service.feeSchedule(operationType)
	if err != nil {
		return 0, err
	}
	return FeeFromSchedule(schedule, amount), nil
}

// FeeFromSchedule ... Pure tiered lookup: first band whose upper bound covers
// the amount, top band when the amount is beyond every bound. An empty
// schedule means the product carries no charge.
func FeeFromSchedule(schedule []model.FeeScheduleEntry, amount int64) int64 {
	if len(schedule) == 0 {
		return 0
	}
	for _, band := range schedule {
		if amount <= band.UpperBound {
			return band.Fee
		}
	}
	return schedule[len(schedule)-1].Fee
}

func (service *FeeService) feeSchedule(operationType string) ([]model.FeeScheduleEntry, error) {

	cacheKey := constants.FEE_SCHEDULE_CACHE_KEY + operationType
	cachedSchedule := service.Cache.Get(cacheKey)
	if cachedSchedule != nil {
		return cachedSchedule.([]model.FeeScheduleEntry), nil
	}

	schedule := []model.FeeScheduleEntry{}
	if err := service.Repository.FetchByFieldName(&model.FeeScheduleEntry{OperationType: operationType}, &schedule); err != nil {
		return nil, err
	}
	sort.Slice(schedule, func(i, j int) bool { return schedule[i].UpperBound < schedule[j].UpperBound })
	service.Cache.Set(cacheKey, schedule, true)

	return schedule, nil
}
