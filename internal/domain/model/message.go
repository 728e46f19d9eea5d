package model

import "time"

// Message is one entry in the append-only conversation log. Rows are never
// edited or deleted.
type Message struct {
	ID            int64     `json:"id"`
	SenderID      int64     `json:"sender_id"`
	ReceiverID    int64     `json:"receiver_id"`
	Content       string    `json:"content"`
	Timestamp     time.Time `json:"timestamp"`
	IsPeerSupport bool      `json:"is_peer_support"`
}
