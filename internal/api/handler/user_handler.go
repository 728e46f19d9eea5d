package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tanglaw_backend/internal/app/service"
	"tanglaw_backend/internal/common"
)

type UserHandler struct {
	directoryService *service.DirectoryService
}

func NewUserHandler(directoryService *service.DirectoryService) *UserHandler {
	return &UserHandler{directoryService: directoryService}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/users", h.listUsers)
}

func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	// An absent or unparseable exclude_id means no exclusion.
	excludeID, _ := strconv.ParseInt(r.URL.Query().Get("exclude_id"), 10, 64)

	users, err := h.directoryService.ListUsers(r.Context(), excludeID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}
