package store

import (
	"context"
	"database/sql"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/regportal/backend/internal/db"
	"github.com/regportal/backend/internal/domain"
)

// MySQLStore keeps one row per record. The auto-increment seq column
// preserves insertion order so Load matches the single-list contract.
type MySQLStore struct {
	db *sqlx.DB
}

func NewMySQLStore(database *sqlx.DB) *MySQLStore {
	return &MySQLStore{db: database}
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS user_record (
	seq               BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	id                BINARY(16) NOT NULL UNIQUE,
	user_type         VARCHAR(16) NOT NULL,
	first_name        VARCHAR(255) NOT NULL,
	last_name         VARCHAR(255) NOT NULL,
	email             VARCHAR(255) NOT NULL,
	business_name     VARCHAR(255) NOT NULL DEFAULT '',
	business_type     VARCHAR(32) NOT NULL DEFAULT '',
	business_est_date DATETIME NULL,
	address           TEXT NOT NULL,
	country           VARCHAR(16) NOT NULL,
	state             VARCHAR(255) NOT NULL DEFAULT '',
	city              VARCHAR(255) NOT NULL DEFAULT '',
	landline          VARCHAR(64) NOT NULL DEFAULT '',
	mobile            VARCHAR(64) NOT NULL DEFAULT '',
	user_name         VARCHAR(255) NOT NULL UNIQUE,
	password          VARCHAR(255) NOT NULL,
	is_approved       VARCHAR(16) NOT NULL DEFAULT 'Pending',
	created_at        DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// EnsureSchema creates the record table when missing.
func (s *MySQLStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaDDL); err != nil {
		return errors.Wrap(err, "create user_record table")
	}
	return nil
}

func (s *MySQLStore) Load(ctx context.Context) ([]domain.UserRecord, error) {
	const query = `
	SELECT id, user_type, first_name, last_name, email, business_name, business_type,
	       business_est_date, address, country, state, city, landline, mobile,
	       user_name, password, is_approved, created_at
	FROM user_record ORDER BY seq;
	`
	records := []domain.UserRecord{}
	if err := s.db.SelectContext(ctx, &records, query); err != nil {
		return nil, errors.Wrap(err, "select record list")
	}
	return records, nil
}

func (s *MySQLStore) Append(ctx context.Context, rec domain.UserRecord) error {
	const query = `
	INSERT INTO user_record
	(id, user_type, first_name, last_name, email, business_name, business_type,
	 business_est_date, address, country, state, city, landline, mobile,
	 user_name, password, is_approved, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`

	result, err := s.db.ExecContext(ctx, query,
		rec.ID[:],
		rec.UserType,
		rec.FirstName,
		rec.LastName,
		rec.Email,
		rec.BusinessName,
		rec.BusinessType,
		rec.BusinessEstDate,
		rec.Address,
		rec.Country,
		rec.State,
		rec.City,
		rec.Landline,
		rec.Mobile,
		rec.UserName,
		rec.Password,
		rec.IsApproved,
		rec.CreatedAt,
	)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return errors.Wrap(err, "insert user record")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if rowsAffected == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (s *MySQLStore) UpdateApproval(ctx context.Context, id uuid.UUID, status domain.ApprovalStatus) error {
	const query = `UPDATE user_record SET is_approved = ? WHERE id = ?;`

	result, err := s.db.ExecContext(ctx, query, status, id[:])
	if err != nil {
		return errors.Wrap(err, "update approval status")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if rowsAffected == 0 {
		// Either the record is missing or the status already matches;
		// distinguish with a lookup so toggling is reported accurately.
		var exists int
		if err := s.db.GetContext(ctx, &exists, `SELECT COUNT(*) FROM user_record WHERE id = ?`, id[:]); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrNotFound
			}
			return errors.Wrap(err, "check record exists")
		}
		if exists == 0 {
			return domain.ErrNotFound
		}
	}

	return nil
}
