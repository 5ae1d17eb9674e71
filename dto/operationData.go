package dto

// Operation payloads form a closed set: one struct per operation type,
// resolved through NewOperationData. The stored payload on a queue item is
// the JSON encoding of the matching struct, validated at submission so
// execution never interprets an unchecked blob.

// CashDepositData ...
type CashDepositData struct {
	AccountNumber string `json:"accountNumber" validate:"required"`
	DepositorName string `json:"depositorName" validate:"required"`
	Narration     string `json:"narration"`
}

// CashWithdrawalData ...
type CashWithdrawalData struct {
	AccountNumber string `json:"accountNumber" validate:"required"`
	Narration     string `json:"narration"`
}

// ChequeDepositData ...
type ChequeDepositData struct {
	AccountNumber string `json:"accountNumber" validate:"required"`
	ChequeNumber  string `json:"chequeNumber" validate:"required"`
	DrawerBank    string `json:"drawerBank" validate:"required"`
	Narration     string `json:"narration"`
}

// InternalTransferData ...
type InternalTransferData struct {
	SourceAccountNumber      string `json:"sourceAccountNumber" validate:"required"`
	DestinationAccountNumber string `json:"destinationAccountNumber" validate:"required,nefield=SourceAccountNumber"`
	Narration                string `json:"narration"`
}

// ExternalTransferData ...
type ExternalTransferData struct {
	SourceAccountNumber      string `json:"sourceAccountNumber" validate:"required"`
	BeneficiaryAccountNumber string `json:"beneficiaryAccountNumber" validate:"required"`
	BeneficiaryBankCode      string `json:"beneficiaryBankCode" validate:"required"`
	BeneficiaryName          string `json:"beneficiaryName" validate:"required"`
	Narration                string `json:"narration"`
}

// MobileMoneyTransferData ...
type MobileMoneyTransferData struct {
	SourceAccountNumber string `json:"sourceAccountNumber" validate:"required"`
	PhoneNumber         string `json:"phoneNumber" validate:"required"`
	Network             string `json:"network"`
	Narration           string `json:"narration"`
}

// BillPaymentData ...
type BillPaymentData struct {
	SourceAccountNumber string `json:"sourceAccountNumber" validate:"required"`
	BillerCode          string `json:"billerCode" validate:"required"`
	BillReference       string `json:"billReference" validate:"required"`
	Narration           string `json:"narration"`
}

// CdscTransferData ...
type CdscTransferData struct {
	SourceAccountNumber string `json:"sourceAccountNumber" validate:"required"`
	CdsAccountNumber    string `json:"cdsAccountNumber" validate:"required"`
	Narration           string `json:"narration"`
}

// LoanDisbursementData ...
type LoanDisbursementData struct {
	AccountNumber string `json:"accountNumber" validate:"required"`
	LoanReference string `json:"loanReference" validate:"required"`
	Narration     string `json:"narration"`
}

// PolicySaleData ...
type PolicySaleData struct {
	SourceAccountNumber string `json:"sourceAccountNumber" validate:"required"`
	PolicyNumber        string `json:"policyNumber" validate:"required"`
	PolicyType          string `json:"policyType"`
	Narration           string `json:"narration"`
}

// PremiumCollectionData ...
type PremiumCollectionData struct {
	SourceAccountNumber string `json:"sourceAccountNumber" validate:"required"`
	PolicyNumber        string `json:"policyNumber" validate:"required"`
	Narration           string `json:"narration"`
}

// ClaimsPayoutData ...
type ClaimsPayoutData struct {
	AccountNumber  string `json:"accountNumber" validate:"required"`
	ClaimReference string `json:"claimReference" validate:"required"`
	PolicyNumber   string `json:"policyNumber"`
	Narration      string `json:"narration"`
}

// NewOperationData returns an empty payload of the shape registered for the
// given operation type. The second return is false for unknown types, which
// makes adding an operation a compile-visible change here rather than a
// runtime registry entry.
func NewOperationData(operationType string) (interface{}, bool) {
	switch operationType {
	case "CASH_DEPOSIT":
		return &CashDepositData{}, true
	case "CASH_WITHDRAWAL":
		return &CashWithdrawalData{}, true
	case "CHEQUE_DEPOSIT":
		return &ChequeDepositData{}, true
	case "INTERNAL_TRANSFER":
		return &InternalTransferData{}, true
	case "EXTERNAL_TRANSFER":
		return &ExternalTransferData{}, true
	case "MOBILE_MONEY_TRANSFER":
		return &MobileMoneyTransferData{}, true
	case "BILL_PAYMENT":
		return &BillPaymentData{}, true
	case "CDSC_TRANSFER":
		return &CdscTransferData{}, true
	case "LOAN_DISBURSEMENT":
		return &LoanDisbursementData{}, true
	case "POLICY_SALE":
		return &PolicySaleData{}, true
	case "PREMIUM_COLLECTION":
		return &PremiumCollectionData{}, true
	case "CLAIMS_PAYOUT":
		return &ClaimsPayoutData{}, true
	default:
		return nil, false
	}
}
