package test

import (
	"strings"

	"authorization-engine/services"

	"github.com/stretchr/testify/assert"
)

func (s *Suite) Test_GenerateQueueReference_format() {
	ReferenceService := services.NewReferenceService(s.Config, &testAccountRepository)

	reference, err := ReferenceService.GenerateQueueReference()
	assert.Equal(s.T(), nil, err, "Expected GenerateQueueReference to not return error")
	assert.Equal(s.T(), true, strings.HasPrefix(reference, "AQ_"), "Queue references carry the AQ prefix")

	parts := strings.Split(reference, "_")
	assert.Equal(s.T(), 3, len(parts), "Reference is prefix, timestamp and random suffix")
	assert.Equal(s.T(), 14, len(parts[1]), "Timestamp segment is second precision")
	assert.Equal(s.T(), 6, len(parts[2]), "Random segment is six characters")
}

func (s *Suite) Test_GenerateTxnReference_distinctAcrossCalls() {
	ReferenceService := services.NewReferenceService(s.Config, &testAccountRepository)

	first, err := ReferenceService.GenerateTxnReference()
	assert.Equal(s.T(), nil, err)
	second, err := ReferenceService.GenerateTxnReference()
	assert.Equal(s.T(), nil, err)

	assert.Equal(s.T(), true, strings.HasPrefix(first, "TXN_"))
	assert.NotEqual(s.T(), first, second, "Consecutive references must differ")
}
