package controllers

import (
	"encoding/json"
	"net/http"

	"authorization-engine/dto"
	"authorization-engine/model"
	"authorization-engine/services"
	"authorization-engine/utility/errorcode"
	"authorization-engine/utility/logger"
	"authorization-engine/utility/response"

	"github.com/gorilla/mux"
)

// SubmitOperation ... Accepts a maker's proposed operation and lands it on
// the authorization queue
func (controller QueueController) SubmitOperation(responseWriter http.ResponseWriter, requestReader *http.Request) {

	apiResponse := response.New()
	requestData := dto.SubmitOperationRequest{}

	json.NewDecoder(requestReader.Body).Decode(&requestData)
	logger.Info("Incoming request details for SubmitOperation : %s by %s", requestData.OperationType, requestData.Maker.MakerID)

	if validationErr := ValidateRequest(controller.Validator, requestData); len(validationErr) > 0 {
		ReturnError(responseWriter, "SubmitOperation", validationError(validationErr),
			apiResponse.ValidateError(errorcode.VALIDATION_ERR_CODE, errorcode.VALIDATION_ERR, validationErr))
		return
	}

	QueueService := services.NewQueueService(controller.Cache, controller.Config, controller.Validator, controller.Repository)
	responseData, err := QueueService.Submit(requestData)
	if err != nil {
		ReturnError(responseWriter, "SubmitOperation", err, apiError(err))
		return
	}

	logger.Info("Outgoing response to SubmitOperation request %+v", responseData)
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(http.StatusCreated)
	json.NewEncoder(responseWriter).Encode(responseData)
}

// DecideOperation ... Records a checker's APPROVE or REJECT verdict on a
// pending queue item
func (controller QueueController) DecideOperation(responseWriter http.ResponseWriter, requestReader *http.Request) {

	apiResponse := response.New()
	requestData := dto.DecisionRequest{}

	routeParams := mux.Vars(requestReader)
	queueID := routeParams["queueId"]

	json.NewDecoder(requestReader.Body).Decode(&requestData)
	logger.Info("Incoming request details for DecideOperation : %s on %s by %s", requestData.Decision, queueID, requestData.CheckerID)

	if validationErr := ValidateRequest(controller.Validator, requestData); len(validationErr) > 0 {
		ReturnError(responseWriter, "DecideOperation", validationError(validationErr),
			apiResponse.ValidateError(errorcode.VALIDATION_ERR_CODE, errorcode.VALIDATION_ERR, validationErr))
		return
	}

	QueueService := services.NewQueueService(controller.Cache, controller.Config, controller.Validator, controller.Repository)
	responseData, err := QueueService.Decide(queueID, requestData)
	if err != nil {
		ReturnError(responseWriter, "DecideOperation", err, apiError(err))
		return
	}

	logger.Info("Outgoing response to DecideOperation request %+v", responseData)
	responseWriter.Header().Set("Content-Type", "application/json")
	json.NewEncoder(responseWriter).Encode(responseData)
}

// GetQueueItem ... Fetches one queue item by its queue reference
func (controller QueueController) GetQueueItem(responseWriter http.ResponseWriter, requestReader *http.Request) {

	routeParams := mux.Vars(requestReader)
	queueID := routeParams["queueId"]
	logger.Info("Incoming request details for GetQueueItem : %s", queueID)

	QueueService := services.NewQueueService(controller.Cache, controller.Config, controller.Validator, controller.Repository)
	responseData, err := QueueService.GetQueueItem(queueID)
	if err != nil {
		ReturnError(responseWriter, "GetQueueItem", err, apiError(err))
		return
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	json.NewEncoder(responseWriter).Encode(responseData)
}

// GetPendingQueueItems ... Lists a branch's pending queue items, oldest
// first, optionally filtered by priority
func (controller QueueController) GetPendingQueueItems(responseWriter http.ResponseWriter, requestReader *http.Request) {

	apiResponse := response.New()
	routeParams := mux.Vars(requestReader)
	branchCode := routeParams["branchCode"]
	priority := requestReader.URL.Query().Get("priority")

	if priority != "" && !isValidPriority(priority) {
		err := validationError(priority)
		ReturnError(responseWriter, "GetPendingQueueItems", err,
			apiResponse.PlainError(errorcode.VALIDATION_ERR_CODE, "priority must be one of LOW, MEDIUM, HIGH, URGENT"))
		return
	}
	logger.Info("Incoming request details for GetPendingQueueItems : branch %s, priority %q", branchCode, priority)

	QueueService := services.NewQueueService(controller.Cache, controller.Config, controller.Validator, controller.Repository)
	responseData, err := QueueService.ListPending(branchCode, priority)
	if err != nil {
		ReturnError(responseWriter, "GetPendingQueueItems", err, apiError(err))
		return
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	json.NewEncoder(responseWriter).Encode(responseData)
}

// CountPendingQueueItems ... Number of items awaiting a decision for a branch
func (controller QueueController) CountPendingQueueItems(responseWriter http.ResponseWriter, requestReader *http.Request) {

	routeParams := mux.Vars(requestReader)
	branchCode := routeParams["branchCode"]
	logger.Info("Incoming request details for CountPendingQueueItems : branch %s", branchCode)

	QueueService := services.NewQueueService(controller.Cache, controller.Config, controller.Validator, controller.Repository)
	responseData, err := QueueService.CountPending(branchCode)
	if err != nil {
		ReturnError(responseWriter, "CountPendingQueueItems", err, apiError(err))
		return
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	json.NewEncoder(responseWriter).Encode(responseData)
}

func isValidPriority(priority string) bool {
	switch priority {
	case model.Priority.LOW, model.Priority.MEDIUM, model.Priority.HIGH, model.Priority.URGENT:
		return true
	}
	return false
}
