package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	Config "authorization-engine/config"
	"authorization-engine/database"
	"authorization-engine/utility/appError"
	"authorization-engine/utility/cache"
	"authorization-engine/utility/errorcode"
	"authorization-engine/utility/logger"
	"authorization-engine/utility/response"
	utilityValidator "authorization-engine/utility/validator"

	validation "gopkg.in/go-playground/validator.v9"
)

//Controller : Controller struct
type Controller struct {
	Cache      *cache.Memory
	Config     Config.Data
	Validator  *validation.Validate
	Repository database.IRepository
}

//QueueController : QueueController struct
type QueueController struct {
	Cache      *cache.Memory
	Config     Config.Data
	Validator  *validation.Validate
	Repository database.IAccountRepository
}

//AccountController : AccountController struct
type AccountController struct {
	Cache      *cache.Memory
	Config     Config.Data
	Validator  *validation.Validate
	Repository database.IAccountRepository
}

// NewController ... Create a new base controller instance
func NewController(memoryCache *cache.Memory, configData Config.Data, validator *validation.Validate, repository database.IRepository) *Controller {
	return &Controller{
		Cache:      memoryCache,
		Config:     configData,
		Validator:  validator,
		Repository: repository,
	}
}

// NewQueueController ... Create a new queue controller instance
func NewQueueController(memoryCache *cache.Memory, configData Config.Data, validator *validation.Validate, repository database.IAccountRepository) *QueueController {
	return &QueueController{
		Cache:      memoryCache,
		Config:     configData,
		Validator:  validator,
		Repository: repository,
	}
}

// NewAccountController ... Create a new account controller instance
func NewAccountController(memoryCache *cache.Memory, configData Config.Data, validator *validation.Validate, repository database.IAccountRepository) *AccountController {
	return &AccountController{
		Cache:      memoryCache,
		Config:     configData,
		Validator:  validator,
		Repository: repository,
	}
}

//Ping : Ping function
func (controller *Controller) Ping(responseWriter http.ResponseWriter, requestReader *http.Request) {

	apiResponse := response.New()

	logger.Info("Ping request successful! Server is up and listening")

	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(http.StatusOK)
	json.NewEncoder(responseWriter).Encode(apiResponse.PlainSuccess(errorcode.SUCCESS, "Ping request successful! Server is up and listening"))
}

// ValidateRequest ... Validates an incoming request payload, returning one
// field/message pair per failed rule.
func ValidateRequest(validator *validation.Validate, requestData interface{}) []map[string]string {

	validationErrs := []map[string]string{}
	if err := validator.Struct(requestData); err != nil {
		for _, fieldErr := range err.(validation.ValidationErrors) {
			validationErrs = append(validationErrs, map[string]string{
				"field":   fieldErr.Field(),
				"message": utilityValidator.Translate(fieldErr),
			})
		}
	}
	return validationErrs
}

// ReturnError ... Logs and writes an error response for a failed request
func ReturnError(responseWriter http.ResponseWriter, operation string, err error, responseBody interface{}) {
	status := http.StatusInternalServerError
	if appErr, ok := err.(appError.Err); ok && appErr.ErrCode != 0 {
		status = appErr.ErrCode
	}
	logger.Error("Outgoing response to %s request : %d, %s", operation, status, err)
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(status)
	json.NewEncoder(responseWriter).Encode(responseBody)
}

func validationError(data interface{}) error {
	return appError.Err{
		ErrCode: http.StatusBadRequest,
		ErrType: errorcode.VALIDATION_ERR_CODE,
		Err:     errors.New(errorcode.VALIDATION_ERR),
		ErrData: data,
	}
}

// apiError ... Maps a service error onto the response envelope, keeping the
// error taxonomy code visible to callers.
func apiError(err error) response.ResponseObj {
	apiResponse := response.New()
	if appErr, ok := err.(appError.Err); ok {
		return apiResponse.PlainError(appErr.ErrType, appErr.Error())
	}
	return apiResponse.PlainError(errorcode.SERVER_ERR_CODE, errorcode.SYSTEM_ERR)
}
