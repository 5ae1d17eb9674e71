package controllers

import (
	"encoding/json"
	"net/http"

	"authorization-engine/services"
	"authorization-engine/utility/logger"

	"github.com/gorilla/mux"
)

// GetAccount ... Fetches account details by account number
func (controller AccountController) GetAccount(responseWriter http.ResponseWriter, requestReader *http.Request) {

	routeParams := mux.Vars(requestReader)
	accountNumber := routeParams["accountNumber"]
	logger.Info("Incoming request details for GetAccount : %s", accountNumber)

	AccountService := services.NewAccountService(controller.Cache, controller.Config, controller.Repository)
	responseData, err := AccountService.GetAccount(accountNumber)
	if err != nil {
		ReturnError(responseWriter, "GetAccount", err, apiError(err))
		return
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	json.NewEncoder(responseWriter).Encode(responseData)
}

// GetAccountTransactions ... Fetches an account's posting history
func (controller AccountController) GetAccountTransactions(responseWriter http.ResponseWriter, requestReader *http.Request) {

	routeParams := mux.Vars(requestReader)
	accountNumber := routeParams["accountNumber"]
	logger.Info("Incoming request details for GetAccountTransactions : %s", accountNumber)

	AccountService := services.NewAccountService(controller.Cache, controller.Config, controller.Repository)
	responseData, err := AccountService.GetAccountTransactions(accountNumber)
	if err != nil {
		ReturnError(responseWriter, "GetAccountTransactions", err, apiError(err))
		return
	}

	responseWriter.Header().Set("Content-Type", "application/json")
	json.NewEncoder(responseWriter).Encode(responseData)
}
