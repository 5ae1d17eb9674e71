package model

// FeeScheduleEntry ... One band of a tiered fee schedule. Bands for an
// operation type are ordered ascending by UpperBound; lookup picks the first
// band whose bound covers the amount.
type FeeScheduleEntry struct {
	BaseModel
	OperationType string `gorm:"type:VARCHAR(36);not null;index:idx_fee_schedule_entries_operation_type" json:"operationType"`
	UpperBound    int64  `gorm:"type:BIGINT;not null" json:"upperBound"`
	Fee           int64  `gorm:"type:BIGINT;not null" json:"fee"`
}

// ThresholdRule ... The maximum amount a role may have auto-approved for an
// operation type. No matching rule means approval is always required.
type ThresholdRule struct {
	BaseModel
	OperationType string `gorm:"type:VARCHAR(36);not null;unique_index:idx_operation_role" json:"operationType"`
	Role          string `gorm:"type:VARCHAR(36);not null;unique_index:idx_operation_role" json:"role"`
	MaxAutoAmount int64  `gorm:"type:BIGINT;not null" json:"maxAutoAmount"`
}

// Roles ...
type MakerRole struct{ TELLER, SUPERVISOR, MANAGER, AGENT string }

var (
	Role = MakerRole{
		TELLER:     "teller",
		SUPERVISOR: "supervisor",
		MANAGER:    "manager",
		AGENT:      "agent",
	}
)
