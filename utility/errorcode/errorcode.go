package errorcode

const (
	SUCCESS                   = "SUCCESS"
	INPUT_ERR_CODE            = "INPUT_ERR"
	SERVER_ERR_CODE           = "SYSTEM_ERR"
	VALIDATION_ERR_CODE       = "VALIDATION_ERR"
	RECORD_NOT_FOUND          = "RECORD_NOT_FOUND"
	INVALID_STATE_ERR_CODE    = "INVALID_STATE_ERR"
	SEPARATION_OF_DUTIES_CODE = "SEPARATION_OF_DUTIES_ERR"
	INSUFFICIENT_FUNDS_CODE   = "INSUFFICIENT_FUNDS_ERR"
	ACCOUNT_INACTIVE_CODE     = "ACCOUNT_INACTIVE_ERR"
	DUPLICATE_REFERENCE_CODE  = "DUPLICATE_REFERENCE_ERR"
	UUID_ERROR_CODE           = "UUID_CAST_ERR"
	SERVER_ERR                = "SYSTEM_ERR"

	INPUT_ERR          = "Invalid Input Supplied. See documentation"
	SYSTEM_ERR         = "Request Could Not Be Proccessed. Server encountered an error"
	VALIDATION_ERR     = "Validation Failed For Some Fields"
	UUID_CAST_ERR      = "Cannot cast Id, ensure to be passing a valid id"
	EMPTY_AUTH_KEY     = "Authentication token is required"
	INVALID_AUTH_TOKEN = "Authentication token is not valid"
	INVALID_TOKENTYPE  = "Access forbidden for non-service token type"
	INVALID_PERMISSION = "Access forbidden, appropriate permission not granted"
)
