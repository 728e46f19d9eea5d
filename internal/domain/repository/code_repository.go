package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"tanglaw_backend/internal/common"
)

// CodeRepository mints counselor codes. Redemption lives on UserRepository
// because it must share a transaction with the account insert.
type CodeRepository interface {
	Create(ctx context.Context, code string) error
}

type pgCodeRepository struct {
	db *sql.DB
}

func NewPgCodeRepository(db *sql.DB) CodeRepository {
	return &pgCodeRepository{db: db}
}

func (r *pgCodeRepository) Create(ctx context.Context, code string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO counselor_codes (code) VALUES ($1)`, code)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("code already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgCodeRepository.Create: %w", err)
	}
	return nil
}
