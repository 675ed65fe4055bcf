package handler

import (
	"encoding/json"
	"net/http"

	"fuzzyrec-tf/internal/models"
	"fuzzyrec-tf/internal/service"

	"github.com/go-chi/chi/v5"
)

// AdminFuzzyHandler expone el mantenimiento de vectores difusos del catálogo.
type AdminFuzzyHandler struct {
	svc *service.FuzzifyService
}

// NewAdminFuzzyHandler crea el handler.
func NewAdminFuzzyHandler(svc *service.FuzzifyService) *AdminFuzzyHandler {
	return &AdminFuzzyHandler{svc: svc}
}

// @Summary Resumen de estado de fuzzificación
// @Description Devuelve conteos de películas con/sin vector difuso precalculado.
// @Tags admin-fuzzy
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.FuzzySummary
// @Failure 500 {string} string "error interno"
// @Router /admin/fuzzy/summary [get]
// GET /admin/fuzzy/summary
func (h *AdminFuzzyHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// @Summary Refuzzificar el catálogo
// @Description Recalcula membresías difusas por lotes con un pool de workers.
// @Tags admin-fuzzy
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body models.FuzzyRebuildRequest true "Parámetros de reconstrucción"
// @Success 200 {object} models.FuzzyRebuildResult
// @Failure 400 {string} string "body inválido"
// @Failure 500 {string} string "error interno"
// @Router /admin/fuzzy/rebuild [post]
// POST /admin/fuzzy/rebuild
func (h *AdminFuzzyHandler) PostRebuild(w http.ResponseWriter, r *http.Request) {
	var req models.FuzzyRebuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", http.StatusBadRequest)
		return
	}
	if req.Workers <= 0 {
		req.Workers = 4
	}

	res, err := h.svc.Rebuild(r.Context(), &req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Helper para montar rutas en main.go
func MountAdminFuzzyRoutes(r chi.Router, h *AdminFuzzyHandler) {
	r.Route("/admin/fuzzy", func(r chi.Router) {
		r.Get("/summary", h.GetSummary)
		r.Post("/rebuild", h.PostRebuild)
	})
}
