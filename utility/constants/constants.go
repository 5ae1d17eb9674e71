package constants

const (
	SUCCESS = "Request Proccessed Successfully"
	FAILED  = "FAILED"

	SEPERATOR         = "_"
	DEBIT_LEG_SUFFIX  = "OUT"
	CREDIT_LEG_SUFFIX = "IN"
	FEE_LEG_SUFFIX    = "FEE"

	// Amounts are stored in minor units (cents). 100 minor units = 1.00.
	MINOR_UNIT_FACTOR  = 100
	MINIMUM_TXN_AMOUNT = 100

	// Priority escalation bounds for items that require approval.
	URGENT_AMOUNT_THRESHOLD = 1000000 * MINOR_UNIT_FACTOR
	HIGH_AMOUNT_THRESHOLD   = 100000 * MINOR_UNIT_FACTOR

	// Fixed service charges per operation type, in minor units.
	EXTERNAL_TRANSFER_FEE = 150 * MINOR_UNIT_FACTOR
	BILL_PAYMENT_FEE      = 50 * MINOR_UNIT_FACTOR
	CDSC_TRANSFER_FEE     = 100 * MINOR_UNIT_FACTOR

	// Reference generation.
	MAX_REFERENCE_ATTEMPTS    = 10
	REFERENCE_SUFFIX_LENGTH   = 6
	REFERENCE_FALLBACK_LENGTH = 20
	QUEUE_REF_PREFIX          = "AQ"
	TXN_REF_PREFIX            = "TXN"

	X_AUTH_TOKEN = "x-auth-token"

	// Recorded as the approver on items the policy passes straight through.
	AUTO_APPROVER = "SYSTEM_POLICY"

	THRESHOLD_CACHE_KEY    = "policy-threshold-rules"
	FEE_SCHEDULE_CACHE_KEY = "fee-schedule-"
)
