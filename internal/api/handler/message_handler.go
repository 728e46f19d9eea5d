package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tanglaw_backend/internal/app/service"
	"tanglaw_backend/internal/common"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/messages", h.getMessages)
	r.Post("/messages", h.postMessage)
}

func (h *MessageHandler) getMessages(w http.ResponseWriter, r *http.Request) {
	fromID, _ := strconv.ParseInt(r.URL.Query().Get("from_id"), 10, 64)
	toID, _ := strconv.ParseInt(r.URL.Query().Get("to_id"), 10, 64)

	msgs, err := h.messageService.GetMessages(r.Context(), fromID, toID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"messages": msgs})
}

func (h *MessageHandler) postMessage(w http.ResponseWriter, r *http.Request) {
	var req service.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if _, err := h.messageService.PostMessage(r.Context(), req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, map[string]string{"message": "Message sent"})
}
