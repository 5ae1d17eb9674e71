package permissions

var (
	All = map[string]string{
		"SubmitOperation":        "submit-operation",
		"DecideOperation":        "decide-operation",
		"GetQueueItem":           "get-queue-items",
		"GetPendingQueueItems":   "get-queue-items",
		"CountPendingQueueItems": "get-queue-items",
		"GetAccount":             "get-accounts",
		"GetAccountTransactions": "get-transactions",
	}
)
