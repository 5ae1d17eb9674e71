package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20250310091500, Down20250310091500)
}

func Up20250310091500(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS accounts (
		id varchar(36) NOT NULL,
		created_at timestamp NULL,
		updated_at timestamp NULL,
		account_number varchar(30) NOT NULL,
		account_name varchar(100) NOT NULL,
		balance bigint DEFAULT 0 NOT NULL,
		status varchar(20) DEFAULT 'ACTIVE' NOT NULL,
		branch_code varchar(20),
		currency varchar(10) DEFAULT 'KES' NOT NULL,

		PRIMARY KEY (id),
		CONSTRAINT uix_accounts_account_number UNIQUE (account_number),
		CONSTRAINT chk_accounts_balance_non_negative CHECK (balance >= 0)
	);`)
	if err != nil {
		return err
	}
	return nil
}

func Down20250310091500(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec("DROP TABLE IF EXISTS accounts;")
	if err != nil {
		return err
	}
	return nil
}
