package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20250310094120, Down20250310094120)
}

func Up20250310094120(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS fee_schedule_entries (
		id varchar(36) NOT NULL,
		created_at timestamp NULL,
		updated_at timestamp NULL,
		operation_type varchar(36) NOT NULL,
		upper_bound bigint NOT NULL,
		fee bigint NOT NULL,

		PRIMARY KEY (id),
		INDEX operation_type (operation_type)
	);`)
	if err != nil {
		return err
	}
	_, err = tx.Exec(`CREATE TABLE IF NOT EXISTS threshold_rules (
		id varchar(36) NOT NULL,
		created_at timestamp NULL,
		updated_at timestamp NULL,
		operation_type varchar(36) NOT NULL,
		role varchar(36) NOT NULL,
		max_auto_amount bigint NOT NULL,

		PRIMARY KEY (id),
		CONSTRAINT uix_threshold_rules_operation_role UNIQUE (operation_type, role)
	);`)
	if err != nil {
		return err
	}
	return nil
}

func Down20250310094120(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec("DROP TABLE IF EXISTS threshold_rules;")
	if err != nil {
		return err
	}
	_, err = tx.Exec("DROP TABLE IF EXISTS fee_schedule_entries;")
	if err != nil {
		return err
	}
	return nil
}
