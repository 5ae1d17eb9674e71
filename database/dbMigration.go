package database

import (
	"authorization-engine/model"
)

// RunDbMigrations ... Creates corresponding tables for the models on the db
// and watches the models for field additions. The goose migrations under
// migration/ are the production DDL; this path backs local development and
// the sqlite test suite.
func (database *Database) RunDbMigrations() {
	database.DB.AutoMigrate(&model.Account{}, &model.Transaction{}, &model.QueueItem{}, &model.FeeScheduleEntry{}, &model.ThresholdRule{})
}
