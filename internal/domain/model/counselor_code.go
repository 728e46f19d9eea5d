package model

// CounselorCode is a single-use token gating registration with the counselor
// role. IsUsed flips false to true exactly once, atomically with the account
// creation it authorizes, and never reverts.
type CounselorCode struct {
	ID     int64  `json:"id"`
	Code   string `json:"code"`
	IsUsed bool   `json:"is_used"`
}
