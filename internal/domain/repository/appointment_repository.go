package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tanglaw_backend/internal/domain/model"
)

type AppointmentRepository interface {
	Create(ctx context.Context, apt *model.Appointment) error
	// ListForUser returns appointments where the user occupies either slot,
	// most recent first, with both party names joined in.
	ListForUser(ctx context.Context, userID int64) ([]model.AppointmentDetail, error)
	// UpdateStatus is a blind update: a missing id matches zero rows and is
	// not an error.
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type pgAppointmentRepository struct {
	db *sql.DB
}

func NewPgAppointmentRepository(db *sql.DB) AppointmentRepository {
	return &pgAppointmentRepository{db: db}
}

func (r *pgAppointmentRepository) Create(ctx context.Context, apt *model.Appointment) error {
	query := `INSERT INTO appointments (user_id, counselor_id, date, time, status)
	          VALUES ($1, $2, $3::date, $4::time, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		apt.UserID, apt.CounselorID, apt.Date, apt.Time, apt.Status,
	).Scan(&apt.ID)
	if err != nil {
		return fmt.Errorf("pgAppointmentRepository.Create: %w", err)
	}
	return nil
}

func (r *pgAppointmentRepository) ListForUser(ctx context.Context, userID int64) ([]model.AppointmentDetail, error) {
	// date/time come back through to_char so the wire format stays a plain
	// string regardless of the column types.
	rows, err := r.db.QueryContext(ctx,
		`SELECT a.id, a.user_id, a.counselor_id,
		        to_char(a.date, 'YYYY-MM-DD'), to_char(a.time, 'HH24:MI:SS'),
		        a.status, u.username AS user_name, c.username AS counselor_name
		 FROM appointments a
		 JOIN users u ON a.user_id = u.id
		 JOIN users c ON a.counselor_id = c.id
		 WHERE a.user_id = $1 OR a.counselor_id = $1
		 ORDER BY a.date DESC, a.time DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("pgAppointmentRepository.ListForUser: %w", err)
	}
	defer rows.Close()

	var apts []model.AppointmentDetail
	for rows.Next() {
		var a model.AppointmentDetail
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.CounselorID, &a.Date, &a.Time,
			&a.Status, &a.UserName, &a.CounselorName,
		); err != nil {
			return nil, fmt.Errorf("pgAppointmentRepository.ListForUser: scan: %w", err)
		}
		apts = append(apts, a)
	}
	return apts, rows.Err()
}

func (r *pgAppointmentRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE appointments SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("pgAppointmentRepository.UpdateStatus: %w", err)
	}
	return nil
}
