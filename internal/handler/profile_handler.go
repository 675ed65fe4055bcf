package handler

import (
	"net/http"
	"strconv"

	"fuzzyrec-tf/internal/service"

	"github.com/go-chi/chi/v5"
)

type ProfileHandler struct {
	svc *service.ProfileService
}

func NewProfileHandler(s *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: s}
}

// @Summary Perfil difuso de un usuario
// @Tags profiles
// @Produce json
// @Param id path int true "userId"
// @Param refresh query bool false "si true, reconstruye ignorando cache"
// @Success 200 {object} models.ProfileDoc
// @Router /users/{id}/profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	h.getProfile(w, r, userID)
}

// @Summary Mi perfil difuso
// @Tags profiles
// @Produce json
// @Param refresh query bool false "si true, reconstruye ignorando cache"
// @Success 200 {object} models.ProfileDoc
// @Router /me/profile [get]
func (h *ProfileHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	h.getProfile(w, r, UserIDFromContext(r.Context()))
}

func (h *ProfileHandler) getProfile(w http.ResponseWriter, r *http.Request, userID int) {
	refresh := r.URL.Query().Get("refresh") == "true"

	prof, err := h.svc.GetProfile(r.Context(), userID, refresh)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prof)
}

// @Summary Deriva temporal de preferencias
// @Tags profiles
// @Produce json
// @Success 200 {array} models.GenreDrift
// @Router /me/profile/drift [get]
func (h *ProfileHandler) GetMyDrift(w http.ResponseWriter, r *http.Request) {
	drift, err := h.svc.Drift(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, drift)
}
