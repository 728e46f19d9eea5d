package model

import (
	"fmt"
	"time"
)

const (
	RoleUser      = "user"
	RoleCounselor = "counselor"
)

type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"` // Not exposed
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

// DirectoryEntry is the anonymized projection served by the user directory.
// Real usernames never appear here.
type DirectoryEntry struct {
	ID    int64  `json:"id"`
	Alias string `json:"alias"`
	Role  string `json:"role"`
}

// Alias derives the pseudonymous label for a user: "CounselorN" for
// counselors, "AnonymousN" for everyone else.
func Alias(id int64, role string) string {
	if role == RoleCounselor {
		return fmt.Sprintf("Counselor%d", id)
	}
	return fmt.Sprintf("Anonymous%d", id)
}
