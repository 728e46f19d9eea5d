package model

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// The status values describe an implicit lifecycle
// (pending -> approved/cancelled, approved -> completed/cancelled) but the
// transition graph is intentionally not enforced; any of the four values is
// accepted on update.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment date and time are plain strings on the wire ("2006-01-02",
// "15:04:05") so the store's native temporal types never leak into responses.
type Appointment struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	CounselorID int64  `json:"counselor_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
}

// AppointmentDetail enriches an appointment with the human-readable names of
// both parties, as produced by the listing join.
type AppointmentDetail struct {
	Appointment
	UserName      string `json:"user_name"`
	CounselorName string `json:"counselor_name"`
}
