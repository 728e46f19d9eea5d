package service_test

import (
	"context"
	"errors"
	"testing"

	"tanglaw_backend/internal/app/service"
	"tanglaw_backend/internal/common"
)

func TestPostMessageValidation(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := service.NewMessageService(repo)

	tests := []struct {
		name string
		req  service.PostMessageRequest
	}{
		{"missing sender", service.PostMessageRequest{ReceiverID: 2, Content: "hi"}},
		{"missing receiver", service.PostMessageRequest{SenderID: 1, Content: "hi"}},
		{"empty content", service.PostMessageRequest{SenderID: 1, ReceiverID: 2, Content: ""}},
		{"whitespace content", service.PostMessageRequest{SenderID: 1, ReceiverID: 2, Content: "   \n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.PostMessage(context.Background(), tt.req); !errors.Is(err, common.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
	if len(repo.msgs) != 0 {
		t.Errorf("%d rows inserted by rejected posts, want 0", len(repo.msgs))
	}
}

func TestConversationIsSymmetric(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := service.NewMessageService(repo)
	ctx := context.Background()

	post := func(from, to int64, content string) {
		t.Helper()
		if _, err := svc.PostMessage(ctx, service.PostMessageRequest{SenderID: from, ReceiverID: to, Content: content}); err != nil {
			t.Fatalf("post: %v", err)
		}
	}
	post(1, 2, "hello")
	post(2, 1, "hi back")
	post(1, 2, "how are you")
	post(1, 3, "unrelated")

	ab, err := svc.GetMessages(ctx, 1, 2)
	if err != nil {
		t.Fatalf("get 1,2: %v", err)
	}
	ba, err := svc.GetMessages(ctx, 2, 1)
	if err != nil {
		t.Fatalf("get 2,1: %v", err)
	}

	if len(ab) != 3 {
		t.Fatalf("got %d messages, want 3", len(ab))
	}
	if len(ab) != len(ba) {
		t.Fatalf("asymmetric retrieval: %d vs %d", len(ab), len(ba))
	}
	for i := range ab {
		if ab[i].ID != ba[i].ID {
			t.Errorf("order differs at %d: %d vs %d", i, ab[i].ID, ba[i].ID)
		}
	}
	// Conversation order: timestamps ascending.
	for i := 1; i < len(ab); i++ {
		if ab[i].Timestamp.Before(ab[i-1].Timestamp) {
			t.Errorf("messages out of order at %d", i)
		}
	}
}

func TestGetMessagesRequiresBothIDs(t *testing.T) {
	svc := service.NewMessageService(&fakeMessageRepo{})

	if _, err := svc.GetMessages(context.Background(), 0, 2); !errors.Is(err, common.ErrValidation) {
		t.Errorf("missing from_id: expected ErrValidation, got %v", err)
	}
	if _, err := svc.GetMessages(context.Background(), 1, 0); !errors.Is(err, common.ErrValidation) {
		t.Errorf("missing to_id: expected ErrValidation, got %v", err)
	}
}

func TestPostMessageTrimsContent(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := service.NewMessageService(repo)

	msg, err := svc.PostMessage(context.Background(), service.PostMessageRequest{
		SenderID: 1, ReceiverID: 2, Content: "  hello  ", IsPeerSupport: true,
	})
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if msg.Content != "hello" {
		t.Errorf("content = %q, want %q", msg.Content, "hello")
	}
	if !msg.IsPeerSupport {
		t.Error("is_peer_support flag dropped")
	}
}
