package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20250310093045, Down20250310093045)
}

func Up20250310093045(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS authorization_queue (
		id varchar(36) NOT NULL,
		created_at timestamp NULL,
		updated_at timestamp NULL,
		queue_id varchar(64) NOT NULL,
		operation_type varchar(36) NOT NULL,
		reference_id varchar(64) NOT NULL,
		maker_id varchar(64) NOT NULL,
		maker_name varchar(100),
		maker_role varchar(36) NOT NULL,
		branch_code varchar(20) NOT NULL,
		amount bigint NOT NULL,
		fee bigint DEFAULT 0 NOT NULL,
		description varchar(300),
		status varchar(36) DEFAULT 'PENDING' NOT NULL,
		priority varchar(20) DEFAULT 'LOW' NOT NULL,
		operation_data text NOT NULL,
		approved_by varchar(64),
		approved_at timestamp NULL,
		rejection_reason varchar(300),
		failure_reason varchar(300),
		execution_refs varchar(300),

		PRIMARY KEY (id),
		CONSTRAINT uix_authorization_queue_queue_id UNIQUE (queue_id),
		INDEX operation_type (operation_type), INDEX maker_id (maker_id),
		INDEX branch_code (branch_code), INDEX status (status)
	);`)
	if err != nil {
		return err
	}
	return nil
}

func Down20250310093045(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec("DROP TABLE IF EXISTS authorization_queue;")
	if err != nil {
		return err
	}
	return nil
}
