package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"admingate/internal/admin/models"
	id "admingate/pkg/domain"
)

// PostgresStore persists admins in PostgreSQL. Email uniqueness is enforced
// by a unique index; violations surface as ErrDuplicate.
type PostgresStore struct {
	db *sql.DB
}

var _ Store = (*PostgresStore)(nil)

// NewPostgres constructs a PostgreSQL-backed admin store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, admin *models.Admin) error {
	if admin == nil {
		return fmt.Errorf("admin is required")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO admins (id, name, email, password, status) VALUES ($1, $2, $3, $4, $5)`,
		uuid.UUID(admin.ID), admin.Name, admin.Email, admin.Password, string(admin.Status),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("admin %q: %w", admin.Email, ErrDuplicate)
		}
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, password, status FROM admins WHERE email = $1`,
		email,
	)
	return scanAdmin(row, "find admin by email")
}

func (s *PostgresStore) FindByID(ctx context.Context, adminID id.AdminID) (*models.Admin, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, password, status FROM admins WHERE id = $1`,
		uuid.UUID(adminID),
	)
	return scanAdmin(row, "find admin by id")
}

func scanAdmin(row *sql.Row, op string) (*models.Admin, error) {
	var (
		adminID  uuid.UUID
		name     string
		email    string
		password string
		status   string
	)
	if err := row.Scan(&adminID, &name, &email, &password, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("admin not found: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.Admin{
		ID:       id.AdminID(adminID),
		Name:     name,
		Email:    email,
		Password: password,
		Status:   models.AdminStatus(status),
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
