package service

import (
	"context"
	"fmt"
	"strings"

	"tanglaw_backend/internal/common"
	"tanglaw_backend/internal/domain/model"
	"tanglaw_backend/internal/domain/repository"
)

type MessageService struct {
	msgRepo repository.MessageRepository
}

func NewMessageService(msgRepo repository.MessageRepository) *MessageService {
	return &MessageService{msgRepo: msgRepo}
}

type PostMessageRequest struct {
	SenderID      int64  `json:"sender_id"`
	ReceiverID    int64  `json:"receiver_id"`
	Content       string `json:"content"`
	IsPeerSupport bool   `json:"is_peer_support"`
}

// GetMessages returns the conversation between two users in timestamp order.
// The from/to labels do not filter direction; retrieval is symmetric.
func (s *MessageService) GetMessages(ctx context.Context, fromID, toID int64) ([]model.Message, error) {
	if fromID == 0 || toID == 0 {
		return nil, common.Errorf("from_id and to_id are required: %w", common.ErrValidation)
	}
	msgs, err := s.msgRepo.Conversation(ctx, fromID, toID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	if msgs == nil {
		msgs = []model.Message{}
	}
	return msgs, nil
}

func (s *MessageService) PostMessage(ctx context.Context, req PostMessageRequest) (*model.Message, error) {
	content := strings.TrimSpace(req.Content)
	if req.SenderID == 0 || req.ReceiverID == 0 || content == "" {
		return nil, common.Errorf("sender_id, receiver_id, and content are required: %w", common.ErrValidation)
	}

	// Sender/receiver existence is left to the foreign keys; the endpoint is
	// deliberately permissive beyond that.
	msg := &model.Message{
		SenderID:      req.SenderID,
		ReceiverID:    req.ReceiverID,
		Content:       content,
		IsPeerSupport: req.IsPeerSupport,
	}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return msg, nil
}
