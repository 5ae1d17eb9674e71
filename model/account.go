package model

// AcctStatus ...
type AcctStatus struct{ ACTIVE, FROZEN, CLOSED string }

var (
	AccountStatus = AcctStatus{
		ACTIVE: "ACTIVE",
		FROZEN: "FROZEN",
		CLOSED: "CLOSED",
	}
)

// Account ... Balance is in minor units and equals the signed sum of all
// committed postings against the account. Only the execution dispatcher
// mutates it, inside the same transaction as the posting that explains the
// change.
type Account struct {
	BaseModel
	AccountNumber string `gorm:"type:VARCHAR(36);not null;unique_index" json:"accountNumber"`
	AccountName   string `gorm:"type:VARCHAR(100);not null" json:"accountName"`
	Balance       int64  `gorm:"type:BIGINT;not null;default:0" json:"balance"`
	Status        string `gorm:"type:VARCHAR(20);not null;default:'ACTIVE'" json:"status"`
	BranchCode    string `gorm:"type:VARCHAR(20);index:idx_accounts_branch_code" json:"branchCode"`
	Currency      string `gorm:"type:VARCHAR(10);not null;default:'KES'" json:"currency"`
}
