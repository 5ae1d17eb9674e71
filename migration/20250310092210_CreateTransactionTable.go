package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20250310092210, Down20250310092210)
}

func Up20250310092210(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS transactions (
		id varchar(36) NOT NULL,
		created_at timestamp NULL,
		updated_at timestamp NULL,
		account_id varchar(36) NOT NULL,
		txn_type varchar(36) NOT NULL,
		amount bigint NOT NULL,
		reference_code varchar(64) NOT NULL,
		queue_id varchar(64),
		description varchar(300),

		PRIMARY KEY (id),
		CONSTRAINT uix_transactions_reference_code UNIQUE (reference_code),
		CONSTRAINT chk_transactions_amount_positive CHECK (amount > 0),
		CONSTRAINT transactions_account_id_foreign FOREIGN KEY (account_id) REFERENCES accounts (id) ON DELETE NO ACTION ON UPDATE NO ACTION,
		INDEX account_id (account_id), INDEX queue_id (queue_id)
	);`)
	if err != nil {
		return err
	}
	return nil
}

func Down20250310092210(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec("DROP TABLE IF EXISTS transactions;")
	if err != nil {
		return err
	}
	return nil
}
