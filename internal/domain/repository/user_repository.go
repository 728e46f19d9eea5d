package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"tanglaw_backend/internal/common"
	"tanglaw_backend/internal/domain/model"
)

type UserRepository interface {
	// Create inserts a user and fills in the generated id.
	Create(ctx context.Context, user *model.User) error
	// CreateCounselor inserts a counselor account and marks the authorizing
	// code used, both inside one transaction. Returns ErrInvalidCode when the
	// code does not exist, ErrCodeUsed when it was already redeemed and
	// ErrConflict when the username is taken.
	CreateCounselor(ctx context.Context, user *model.User, code string) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type pgUserRepository struct {
	db *sql.DB
}

func NewPgUserRepository(db *sql.DB) UserRepository {
	return &pgUserRepository{db: db}
}

func (r *pgUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (username, password, role)
	          VALUES ($1, $2, $3) RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, user.Username, user.HashedPassword, user.Role).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique constraint violation
			return fmt.Errorf("username already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.Create: %w", err)
	}
	return nil
}

func (r *pgUserRepository) CreateCounselor(ctx context.Context, user *model.User, code string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("pgUserRepository.CreateCounselor: begin: %w", err)
	}
	defer tx.Rollback() // Rollback if not committed

	var codeRow model.CounselorCode
	err = tx.QueryRowContext(ctx,
		`SELECT id, code, is_used FROM counselor_codes WHERE code = $1`, code,
	).Scan(&codeRow.ID, &codeRow.Code, &codeRow.IsUsed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrInvalidCode
		}
		return fmt.Errorf("pgUserRepository.CreateCounselor: code lookup: %w", err)
	}
	if codeRow.IsUsed {
		return common.ErrCodeUsed
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO users (username, password, role) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		user.Username, user.HashedPassword, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("username already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgUserRepository.CreateCounselor: insert: %w", err)
	}

	// The is_used guard makes concurrent redemptions of the same code
	// mutually exclusive: the slower transaction matches zero rows.
	res, err := tx.ExecContext(ctx,
		`UPDATE counselor_codes SET is_used = TRUE WHERE id = $1 AND is_used = FALSE`,
		codeRow.ID,
	)
	if err != nil {
		return fmt.Errorf("pgUserRepository.CreateCounselor: mark used: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("pgUserRepository.CreateCounselor: rows affected: %w", err)
	} else if n == 0 {
		return common.ErrCodeUsed
	}

	return tx.Commit()
}

func (r *pgUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT id, username, password, role, created_at
	          FROM users WHERE username = $1`
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.HashedPassword, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.FindByUsername: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT id, username, password, role, created_at
	          FROM users WHERE id = $1`
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.HashedPassword, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgUserRepository.FindByID: %w", err)
	}
	return user, nil
}

func (r *pgUserRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, role, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("pgUserRepository.List: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgUserRepository.List: scan: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
