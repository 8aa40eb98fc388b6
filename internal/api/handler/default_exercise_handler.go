package handler

import (
	"encoding/json"
	"net/http"

	"fitastic/internal/api/middleware"
	"fitastic/internal/app/service"
	"fitastic/internal/common"

	"github.com/go-chi/chi/v5"
)

type DefaultExerciseHandler struct {
	exerciseService *service.DefaultExerciseService
}

func NewDefaultExerciseHandler(es *service.DefaultExerciseService) *DefaultExerciseHandler {
	return &DefaultExerciseHandler{exerciseService: es}
}

// RegisterRoutes mounts the read-only catalog routes; authentication is
// enforced by the surrounding router group.
func (h *DefaultExerciseHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)          // GET /api/defaultExercises
	r.Get("/{idOrSlug}", h.get) // GET /api/defaultExercises/bench-press
}

// RegisterAdminRoutes mounts catalog management under the admin-only prefix.
func (h *DefaultExerciseHandler) RegisterAdminRoutes(r chi.Router) {
	r.Use(middleware.AdminOnly)
	r.Post("/", h.create)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *DefaultExerciseHandler) list(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.exerciseService.GetAll(r.Context())
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, exercises)
}

func (h *DefaultExerciseHandler) get(w http.ResponseWriter, r *http.Request) {
	exercise, err := h.exerciseService.Get(r.Context(), chi.URLParam(r, "idOrSlug"))
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, exercise)
}

func (h *DefaultExerciseHandler) create(w http.ResponseWriter, r *http.Request) {
	var payload service.DefaultExercisePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if fields := common.ValidateStruct(payload); fields != nil {
		common.RespondWithFieldErrors(w, fields)
		return
	}

	exercise, err := h.exerciseService.Create(r.Context(), payload)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, exercise)
}

func (h *DefaultExerciseHandler) update(w http.ResponseWriter, r *http.Request) {
	var payload service.DefaultExercisePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if fields := common.ValidateStruct(payload); fields != nil {
		common.RespondWithFieldErrors(w, fields)
		return
	}

	exercise, err := h.exerciseService.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, exercise)
}

func (h *DefaultExerciseHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.exerciseService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
