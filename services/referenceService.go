package services

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	Config "authorization-engine/config"
	"authorization-engine/database"
	"authorization-engine/utility"
	"authorization-engine/utility/constants"
	"authorization-engine/utility/errorcode"
	"authorization-engine/utility/logger"
)

//ReferenceService object
type ReferenceService struct {
	Config     Config.Data
	Repository database.IAccountRepository
}

func NewReferenceService(config Config.Data, repository database.IAccountRepository) *ReferenceService {
	return &ReferenceService{
		Config:     config,
		Repository: repository,
	}
}

// GenerateQueueReference ... Unique reference for a new queue item.
func (service *ReferenceService) GenerateQueueReference() (string, error) {
	return service.generate(constants.QUEUE_REF_PREFIX, service.Repository.QueueReferenceExists)
}

// GenerateTxnReference ... Unique base reference for ledger postings. Leg
// suffixes (_OUT/_IN/_FEE) are appended by the settlement routines, so the
// probe checks the suffixed variants as well.
func (service *ReferenceService) GenerateTxnReference() (string, error) {
	return service.generate(constants.TXN_REF_PREFIX, service.txnBaseExists)
}

// generate combines a coarse timestamp with a random suffix and probes the
// persisted references before handing the code out. The probe is a race-prone
// optimization only: the unique index on the reference column is the actual
// guarantee, and a loser of the race surfaces as a constraint violation on
// insert.
func (service *ReferenceService) generate(prefix string, exists func(string) (bool, error)) (string, error) {

	for attempt := 0; attempt < constants.MAX_REFERENCE_ATTEMPTS; attempt++ {
		reference := fmt.Sprintf("%s%s%s%s%s", prefix, constants.SEPERATOR, time.Now().UTC().Format("20060102150405"), constants.SEPERATOR, utility.RandomString(constants.REFERENCE_SUFFIX_LENGTH))
		taken, err := exists(reference)
		if err != nil {
			return "", err
		}
		if !taken {
			return reference, nil
		}
		logger.Warning("Reference collision on %s, retrying (%d)", reference, attempt+1)
	}

	// Timestamped space is exhausted or pathologically hot; fall back to a
	// longer fully-random code so generation terminates.
	reference := fmt.Sprintf("%s%s%s", prefix, constants.SEPERATOR, utility.RandomString(constants.REFERENCE_FALLBACK_LENGTH))
	taken, err := exists(reference)
	if err != nil {
		return "", err
	}
	if taken {
		return "", serviceError(http.StatusInternalServerError, errorcode.DUPLICATE_REFERENCE_CODE, errors.New("exhausted reference generation attempts"))
	}
	return reference, nil
}

func (service *ReferenceService) txnBaseExists(base string) (bool, error) {
	for _, candidate := range []string{
		base,
		base + constants.SEPERATOR + constants.DEBIT_LEG_SUFFIX,
		base + constants.SEPERATOR + constants.CREDIT_LEG_SUFFIX,
		base + constants.SEPERATOR + constants.FEE_LEG_SUFFIX,
	} {
		taken, err := service.Repository.TxnReferenceExists(candidate)
		if err != nil {
			return false, err
		}
		if taken {
			return true, nil
		}
	}
	return false, nil
}
