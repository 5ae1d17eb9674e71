package services

import (
	"fmt"

	Config "authorization-engine/config"
	"authorization-engine/database"
	"authorization-engine/model"
	"authorization-engine/utility/cache"
	"authorization-engine/utility/constants"
)

// PolicyDecision ... Outcome of evaluating an operation against the
// authorization policy.
type PolicyDecision struct {
	RequiresApproval bool   `json:"requiresApproval"`
	Reason           string `json:"reason"`
	Priority         string `json:"priority"`
}

// Operation types that always require an independent approval, independent
// of amount and submitter role.
var alwaysRequiresApproval = map[string]bool{
	model.OperationType.EXTERNAL_TRANSFER: true,
	model.OperationType.CDSC_TRANSFER:     true,
	model.OperationType.LOAN_DISBURSEMENT: true,
	model.OperationType.CLAIMS_PAYOUT:     true,
}

//PolicyService object
type PolicyService struct {
	Cache      *cache.Memory
	Config     Config.Data
	Repository database.IQueueRepository
}

func NewPolicyService(memoryCache *cache.Memory, config Config.Data, repository database.IQueueRepository) *PolicyService {
	return &PolicyService{
		Cache:      memoryCache,
		Config:     config,
		Repository: repository,
	}
}

// Evaluate ... Decides whether the operation needs a checker and at what
// priority. Threshold rules are read once and cached; the decision itself is
// EvaluateWithRules, which is pure.
func (service *PolicyService) Evaluate(operationType string, amount int64, role string) (PolicyDecision, error) {
	rules, err := service.thresholdRules()
	if err != nil {
		return PolicyDecision{}, err
	}
	return EvaluateWithRules(rules, operationType, amount, role), nil
}

// EvaluateWithRules ... Pure policy decision over a loaded ruleset. Rules are
// applied in order: the unconditional-approval set first, then the role
// threshold (absent rule means threshold zero), then priority banding.
func EvaluateWithRules(rules map[string]int64, operationType string, amount int64, role string) PolicyDecision {

	if alwaysRequiresApproval[operationType] {
		return PolicyDecision{
			RequiresApproval: true,
			Reason:           fmt.Sprintf("%s always requires approval", operationType),
			Priority:         model.Priority.HIGH,
		}
	}

	threshold := rules[thresholdKey(operationType, role)]
	if amount > threshold {
		return PolicyDecision{
			RequiresApproval: true,
			Reason:           fmt.Sprintf("amount exceeds %s limit for role %s", operationType, role),
			Priority:         priorityFor(amount, threshold),
		}
	}

	return PolicyDecision{
		RequiresApproval: false,
		Reason:           "within role limit",
		Priority:         model.Priority.LOW,
	}
}

// priorityFor ... URGENT and HIGH kick in on absolute amount bands; an amount
// more than double the role's limit is also HIGH so a small-limit breach by a
// wide margin does not sit in the MEDIUM pile.
func priorityFor(amount, threshold int64) string {
	switch {
	case amount > constants.URGENT_AMOUNT_THRESHOLD:
		return model.Priority.URGENT
	case amount > constants.HIGH_AMOUNT_THRESHOLD:
		return model.Priority.HIGH
	case threshold > 0 && amount > 2*threshold:
		return model.Priority.HIGH
	default:
		return model.Priority.MEDIUM
	}
}

func thresholdKey(operationType, role string) string {
	return operationType + constants.SEPERATOR + role
}

func (service *PolicyService) thresholdRules() (map[string]int64, error) {

	cachedRules := service.Cache.Get(constants.THRESHOLD_CACHE_KEY)
	if cachedRules != nil {
		return cachedRules.(map[string]int64), nil
	}

	ruleRecords := []model.ThresholdRule{}
	if err := service.Repository.Fetch(&ruleRecords); err != nil {
		return nil, err
	}

	rules := map[string]int64{}
	for _, rule := range ruleRecords {
		rules[thresholdKey(rule.OperationType, rule.Role)] = rule.MaxAutoAmount
	}
	service.Cache.Set(constants.THRESHOLD_CACHE_KEY, rules, true)

	return rules, nil
}
