package main

import (
	"log"
	"net/http"
	"time"

	Config "authorization-engine/config"
	"authorization-engine/database"
	"authorization-engine/migration"
	"authorization-engine/routes"
	"authorization-engine/tasks"
	"authorization-engine/utility/cache"
	"authorization-engine/utility/logger"
	validator "authorization-engine/utility/validator"

	"github.com/gorilla/mux"
	validation "gopkg.in/go-playground/validator.v9"
)

func main() {
	config := Config.Data{}
	config.Init("")

	router := mux.NewRouter()
	Validator := validation.New()
	if _, err := validator.CustomizeMessages(Validator); err != nil {
		logger.Error("Could not register validation translations : %s", err)
	}

	Database := &database.Database{
		Config: config,
	}
	Database.LoadDBInstance()
	defer Database.CloseDBInstance()

	migration.RunDbMigrations(config)
	Database.RunDbMigrations()
	Database.SeedPolicyData()

	memoryCache := cache.Initialize(time.Duration(config.ExpireCacheDuration)*time.Second, time.Duration(config.PurgeCacheInterval)*time.Second)

	routes.Register(router, Validator, config, Database.DB, memoryCache)

	baseRepository := database.BaseRepository{Database: *Database}
	queueRepository := database.QueueRepository{BaseRepository: baseRepository}
	tasks.ExecutePendingSweepCronJob(memoryCache, config, &queueRepository)

	serviceAddress := ":" + config.AppPort
	logger.Info("Server started and listening on port %s", config.AppPort)
	log.Fatal(http.ListenAndServe(serviceAddress, router))
}
