package routes

import (
	"net/http"
	"sync"
	"time"

	"authorization-engine/controllers"
	"authorization-engine/database"
	"authorization-engine/middlewares"
	"authorization-engine/utility/cache"
	"authorization-engine/utility/logger"
	"authorization-engine/utility/permissions"

	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	httpSwagger "github.com/swaggo/http-swagger"
	validation "gopkg.in/go-playground/validator.v9"

	Config "authorization-engine/config"
)

var (
	once sync.Once
)

// Register ... Adds router handle to general handler function
func Register(router *mux.Router, validator *validation.Validate, config Config.Data, db *gorm.DB, memoryCache *cache.Memory) {

	once.Do(func() {
		DB := database.Database{Config: config, DB: db}
		baseRepository := database.BaseRepository{Database: DB}
		queueRepository := database.QueueRepository{BaseRepository: baseRepository}
		accountRepository := database.AccountRepository{QueueRepository: queueRepository}

		controller := controllers.NewController(memoryCache, config, validator, &baseRepository)
		queueController := controllers.NewQueueController(memoryCache, config, validator, &accountRepository)
		accountController := controllers.NewAccountController(memoryCache, config, validator, &accountRepository)

		apiRouter := router.PathPrefix("").Subrouter()
		router.PathPrefix("/swagger").Handler(httpSwagger.WrapHandler)

		// General Routes
		apiRouter.HandleFunc("/ping", controller.Ping).Methods(http.MethodGet)

		// Authorization Queue Routes
		var requestTimeout = time.Duration(config.RequestTimeout) * time.Second
		apiRouter.HandleFunc("/queue/operations", middlewares.NewMiddleware(config, queueController.SubmitOperation).ValidateAuthToken(permissions.All["SubmitOperation"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodPost)
		apiRouter.HandleFunc("/queue/operations/{queueId}/decision", middlewares.NewMiddleware(config, queueController.DecideOperation).ValidateAuthToken(permissions.All["DecideOperation"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodPost)
		apiRouter.HandleFunc("/queue/operations/{queueId}", middlewares.NewMiddleware(config, queueController.GetQueueItem).ValidateAuthToken(permissions.All["GetQueueItem"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)
		apiRouter.HandleFunc("/queue/branches/{branchCode}/pending", middlewares.NewMiddleware(config, queueController.GetPendingQueueItems).ValidateAuthToken(permissions.All["GetPendingQueueItems"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)
		apiRouter.HandleFunc("/queue/branches/{branchCode}/pending/count", middlewares.NewMiddleware(config, queueController.CountPendingQueueItems).ValidateAuthToken(permissions.All["CountPendingQueueItems"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)

		// Account Routes
		apiRouter.HandleFunc("/accounts/{accountNumber}", middlewares.NewMiddleware(config, accountController.GetAccount).ValidateAuthToken(permissions.All["GetAccount"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)
		apiRouter.HandleFunc("/accounts/{accountNumber}/transactions", middlewares.NewMiddleware(config, accountController.GetAccountTransactions).ValidateAuthToken(permissions.All["GetAccountTransactions"]).LogAPIRequests().Timeout(requestTimeout).Build()).Methods(http.MethodGet)
	})

	logger.Info("App routes registered successfully!")
}
