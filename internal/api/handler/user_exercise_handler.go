package handler

import (
	"encoding/json"
	"net/http"

	"fitastic/internal/api/middleware"
	"fitastic/internal/app/service"
	"fitastic/internal/common"

	"github.com/go-chi/chi/v5"
)

type UserExerciseHandler struct {
	exerciseService *service.UserExerciseService
}

func NewUserExerciseHandler(es *service.UserExerciseService) *UserExerciseHandler {
	return &UserExerciseHandler{exerciseService: es}
}

func (h *UserExerciseHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *UserExerciseHandler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	exercises, err := h.exerciseService.GetAll(r.Context(), userID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, exercises)
}

func (h *UserExerciseHandler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	exercise, err := h.exerciseService.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, exercise)
}

func (h *UserExerciseHandler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var payload service.UserExercisePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if fields := common.ValidateStruct(payload); fields != nil {
		common.RespondWithFieldErrors(w, fields)
		return
	}

	exercise, err := h.exerciseService.Create(r.Context(), userID, payload)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, exercise)
}

func (h *UserExerciseHandler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var payload service.UserExercisePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if fields := common.ValidateStruct(payload); fields != nil {
		common.RespondWithFieldErrors(w, fields)
		return
	}

	exercise, err := h.exerciseService.Update(r.Context(), userID, chi.URLParam(r, "id"), payload)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, exercise)
}

func (h *UserExerciseHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	if err := h.exerciseService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
