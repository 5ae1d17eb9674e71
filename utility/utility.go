package utility

import (
	"errors"
	"math/rand"
	"net/http"
	"time"

	"authorization-engine/utility/appError"
	"authorization-engine/utility/constants"
	"authorization-engine/utility/errorcode"

	uuid "github.com/satori/go.uuid"
	"github.com/shopspring/decimal"
)

func RandNo(min, max int) int {
	rand.Seed(time.Now().UnixNano())
	return rand.Intn(max-min) + min
}

// RandomString ....
func RandomString(strlen int) string {
	rand.Seed(time.Now().UTC().UnixNano())
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, strlen)
	for i := 0; i < strlen; i++ {
		result[i] = chars[rand.Intn(len(chars))]
	}
	return string(result)
}

// MinorUnitFromString converts an operator-facing decimal amount string
// ("2500" or "2500.50") into int64 minor units. Amounts with more than two
// decimal places are rejected rather than rounded.
func MinorUnitFromString(amount string) (int64, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, appError.Err{
			ErrCode: http.StatusBadRequest,
			ErrType: errorcode.INPUT_ERR_CODE,
			Err:     errors.New("amount is not a valid decimal number"),
		}
	}
	minor := value.Mul(decimal.NewFromInt(constants.MINOR_UNIT_FACTOR))
	if !minor.Equal(minor.Truncate(0)) {
		return 0, appError.Err{
			ErrCode: http.StatusBadRequest,
			ErrType: errorcode.INPUT_ERR_CODE,
			Err:     errors.New("amount has more than two decimal places"),
		}
	}
	return minor.IntPart(), nil
}

// MajorUnitString renders int64 minor units back into a two-decimal string.
func MajorUnitString(minor int64) string {
	return decimal.NewFromInt(minor).Div(decimal.NewFromInt(constants.MINOR_UNIT_FACTOR)).StringFixed(2)
}

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func IsExceedWaitTime(startTime, endTime time.Time) bool {
	return startTime.After(endTime)
}

func ToUUID(input string) (uuid.UUID, error) {
	uuidString, err := uuid.FromString(input)
	if err != nil {
		return uuidString, appError.Err{
			ErrCode: http.StatusBadRequest,
			ErrType: errorcode.UUID_ERROR_CODE,
			Err:     err,
		}
	}
	return uuidString, nil
}

// GetIPAdress ...
func GetIPAdress(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		return forwarded
	}
	return r.RemoteAddr
}
