package database

import (
	"authorization-engine/model"
	"authorization-engine/utility/constants"
	"authorization-engine/utility/logger"
)

// minor converts a major-unit figure into stored minor units.
func minor(amount int64) int64 {
	return amount * constants.MINOR_UNIT_FACTOR
}

// SeedPolicyData ... Seeds the fee schedule bands and the role threshold
// rules. FirstOrCreate keeps restarts idempotent; operational changes to a
// band or threshold are a DB update, not a release.
func (database *Database) SeedPolicyData() {

	feeSchedules := []model.FeeScheduleEntry{
		{OperationType: model.OperationType.MOBILE_MONEY_TRANSFER, UpperBound: minor(100), Fee: 0},
		{OperationType: model.OperationType.MOBILE_MONEY_TRANSFER, UpperBound: minor(500), Fee: minor(11)},
		{OperationType: model.OperationType.MOBILE_MONEY_TRANSFER, UpperBound: minor(1000), Fee: minor(15)},
		{OperationType: model.OperationType.MOBILE_MONEY_TRANSFER, UpperBound: minor(1500), Fee: minor(26)},
		{OperationType: model.OperationType.MOBILE_MONEY_TRANSFER, UpperBound: minor(2500), Fee: minor(52)},
		{OperationType: model.OperationType.MOBILE_MONEY_TRANSFER, UpperBound: minor(3500), Fee: minor(57)},
		{OperationType: model.OperationType.MOBILE_MONEY_TRANSFER, UpperBound: minor(5000), Fee: minor(69)},
		{OperationType: model.OperationType.MOBILE_MONEY_TRANSFER, UpperBound: minor(7500), Fee: minor(87)},
		{OperationType: model.OperationType.MOBILE_MONEY_TRANSFER, UpperBound: minor(10000), Fee: minor(115)},
		{OperationType: model.OperationType.MOBILE_MONEY_TRANSFER, UpperBound: minor(15000), Fee: minor(167)},
		{OperationType: model.OperationType.MOBILE_MONEY_TRANSFER, UpperBound: minor(20000), Fee: minor(185)},
		{OperationType: model.OperationType.MOBILE_MONEY_TRANSFER, UpperBound: minor(35000), Fee: minor(197)},
		{OperationType: model.OperationType.MOBILE_MONEY_TRANSFER, UpperBound: minor(50000), Fee: minor(278)},
		{OperationType: model.OperationType.MOBILE_MONEY_TRANSFER, UpperBound: minor(250000), Fee: minor(309)},
	}

	thresholdRules := []model.ThresholdRule{
		{OperationType: model.OperationType.CASH_DEPOSIT, Role: model.Role.TELLER, MaxAutoAmount: minor(50000)},
		{OperationType: model.OperationType.CASH_DEPOSIT, Role: model.Role.SUPERVISOR, MaxAutoAmount: minor(200000)},
		{OperationType: model.OperationType.CASH_DEPOSIT, Role: model.Role.MANAGER, MaxAutoAmount: minor(1000000)},
		{OperationType: model.OperationType.CASH_WITHDRAWAL, Role: model.Role.TELLER, MaxAutoAmount: minor(25000)},
		{OperationType: model.OperationType.CASH_WITHDRAWAL, Role: model.Role.SUPERVISOR, MaxAutoAmount: minor(100000)},
		{OperationType: model.OperationType.CASH_WITHDRAWAL, Role: model.Role.MANAGER, MaxAutoAmount: minor(500000)},
		{OperationType: model.OperationType.CHEQUE_DEPOSIT, Role: model.Role.TELLER, MaxAutoAmount: minor(100000)},
		{OperationType: model.OperationType.CHEQUE_DEPOSIT, Role: model.Role.SUPERVISOR, MaxAutoAmount: minor(500000)},
		{OperationType: model.OperationType.INTERNAL_TRANSFER, Role: model.Role.TELLER, MaxAutoAmount: minor(50000)},
		{OperationType: model.OperationType.INTERNAL_TRANSFER, Role: model.Role.SUPERVISOR, MaxAutoAmount: minor(250000)},
		{OperationType: model.OperationType.INTERNAL_TRANSFER, Role: model.Role.MANAGER, MaxAutoAmount: minor(1000000)},
		{OperationType: model.OperationType.MOBILE_MONEY_TRANSFER, Role: model.Role.TELLER, MaxAutoAmount: minor(70000)},
		{OperationType: model.OperationType.MOBILE_MONEY_TRANSFER, Role: model.Role.AGENT, MaxAutoAmount: minor(70000)},
		{OperationType: model.OperationType.BILL_PAYMENT, Role: model.Role.TELLER, MaxAutoAmount: minor(50000)},
		{OperationType: model.OperationType.BILL_PAYMENT, Role: model.Role.SUPERVISOR, MaxAutoAmount: minor(200000)},
		{OperationType: model.OperationType.POLICY_SALE, Role: model.Role.AGENT, MaxAutoAmount: minor(100000)},
		{OperationType: model.OperationType.POLICY_SALE, Role: model.Role.SUPERVISOR, MaxAutoAmount: minor(500000)},
		{OperationType: model.OperationType.PREMIUM_COLLECTION, Role: model.Role.AGENT, MaxAutoAmount: minor(100000)},
		{OperationType: model.OperationType.PREMIUM_COLLECTION, Role: model.Role.SUPERVISOR, MaxAutoAmount: minor(500000)},
	}

	for _, schedule := range feeSchedules {
		if err := database.DB.FirstOrCreate(&schedule, model.FeeScheduleEntry{OperationType: schedule.OperationType, UpperBound: schedule.UpperBound}).Error; err != nil {
			logger.Error("Error with creating fee schedule record %s/%d : %s", schedule.OperationType, schedule.UpperBound, err)
		}
	}

	for _, rule := range thresholdRules {
		if err := database.DB.FirstOrCreate(&rule, model.ThresholdRule{OperationType: rule.OperationType, Role: rule.Role}).Error; err != nil {
			logger.Error("Error with creating threshold rule record %s/%s : %s", rule.OperationType, rule.Role, err)
		}
	}
	logger.Info("Policy reference data seeded successfully")
}
