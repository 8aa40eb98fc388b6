package handler

import (
	"encoding/json"
	"net/http"

	"fitastic/internal/api/middleware"
	"fitastic/internal/app/service"
	"fitastic/internal/common"

	"github.com/go-chi/chi/v5"
)

type UserSessionHandler struct {
	sessionService *service.UserSessionService
}

func NewUserSessionHandler(ss *service.UserSessionService) *UserSessionHandler {
	return &UserSessionHandler{sessionService: ss}
}

func (h *UserSessionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *UserSessionHandler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	sessions, err := h.sessionService.GetAll(r.Context(), userID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, sessions)
}

func (h *UserSessionHandler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	session, err := h.sessionService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, session)
}

func (h *UserSessionHandler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var payload service.UserSessionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if fields := common.ValidateStruct(payload); fields != nil {
		common.RespondWithFieldErrors(w, fields)
		return
	}

	session, err := h.sessionService.Create(r.Context(), userID, payload)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, session)
}

func (h *UserSessionHandler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var payload service.UserSessionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if fields := common.ValidateStruct(payload); fields != nil {
		common.RespondWithFieldErrors(w, fields)
		return
	}

	session, err := h.sessionService.Update(r.Context(), userID, chi.URLParam(r, "id"), payload)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, session)
}

func (h *UserSessionHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	if err := h.sessionService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
