package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tanglaw_backend/internal/common"
	"tanglaw_backend/internal/domain/model"
	"tanglaw_backend/internal/domain/repository"
)

const (
	dateLayout        = "2006-01-02"
	timeLayout        = "15:04"
	timeLayoutSeconds = "15:04:05"
)

type AppointmentService struct {
	userRepo repository.UserRepository
	aptRepo  repository.AppointmentRepository
}

func NewAppointmentService(userRepo repository.UserRepository, aptRepo repository.AppointmentRepository) *AppointmentService {
	return &AppointmentService{userRepo: userRepo, aptRepo: aptRepo}
}

type CreateAppointmentRequest struct {
	UserID      int64  `json:"user_id"`
	CounselorID int64  `json:"counselor_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (s *AppointmentService) Create(ctx context.Context, req CreateAppointmentRequest) (*model.Appointment, error) {
	if req.UserID == 0 || req.CounselorID == 0 || req.Date == "" || req.Time == "" {
		return nil, common.Errorf("user_id, counselor_id, date, time are required: %w", common.ErrValidation)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, common.Errorf("invalid date/time format: %w", common.ErrBadRequest)
	}
	// Minute precision is the norm; seconds are accepted for completeness.
	clock, err := time.Parse(timeLayout, req.Time)
	if err != nil {
		clock, err = time.Parse(timeLayoutSeconds, req.Time)
		if err != nil {
			return nil, common.Errorf("invalid date/time format: %w", common.ErrBadRequest)
		}
	}

	counselor, err := s.userRepo.FindByID(ctx, req.CounselorID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("counselor not found: %w", common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up counselor: %w", err)
	}
	if counselor.Role != model.RoleCounselor {
		return nil, common.ErrRoleMismatch
	}

	// Status is forced to pending regardless of anything the caller sent.
	// Overlapping slots are allowed; there is no conflict detection.
	apt := &model.Appointment{
		UserID:      req.UserID,
		CounselorID: req.CounselorID,
		Date:        date.Format(dateLayout),
		Time:        clock.Format(timeLayoutSeconds),
		Status:      model.StatusPending,
	}
	if err := s.aptRepo.Create(ctx, apt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return apt, nil
}

func (s *AppointmentService) List(ctx context.Context, userID int64) ([]model.AppointmentDetail, error) {
	if userID == 0 {
		return nil, common.Errorf("missing user_id parameter: %w", common.ErrValidation)
	}
	apts, err := s.aptRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	if apts == nil {
		apts = []model.AppointmentDetail{}
	}
	return apts, nil
}

// UpdateStatus validates the status against the enum only. The transition
// graph is not enforced and a missing appointment id updates zero rows
// without complaint.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !model.ValidStatus(status) {
		return common.Errorf("invalid status: %w", common.ErrValidation)
	}
	if err := s.aptRepo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	return nil
}
