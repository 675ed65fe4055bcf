package handler

import (
	"net/http"
	"strconv"

	"fuzzyrec-tf/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(s *service.MovieService) *MovieHandler {
	return &MovieHandler{svc: s}
}

// @Summary Película por id
// @Tags movies
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {object} models.MovieDoc
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	m, err := h.svc.GetMovie(r.Context(), movieID)
	if err != nil {
		writeErr(w, err)
		return
	}
	if m == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "película no encontrada"})
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// @Summary Vector difuso de una película
// @Tags movies
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {object} models.FuzzyMovieResponse
// @Router /movies/{id}/fuzzy [get]
func (h *MovieHandler) GetFuzzy(w http.ResponseWriter, r *http.Request) {
	movieID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	resp, err := h.svc.GetFuzzy(r.Context(), movieID)
	if err != nil {
		writeErr(w, err)
		return
	}
	if resp == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "película no encontrada"})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// @Summary Buscar películas
// @Tags movies
// @Produce json
// @Param q query string false "texto en el título"
// @Param genre query string false "género exacto"
// @Router /movies/search [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	genreName := r.URL.Query().Get("genre")
	yearFrom, _ := strconv.Atoi(r.URL.Query().Get("yearFrom"))
	yearTo, _ := strconv.Atoi(r.URL.Query().Get("yearTo"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	list, err := h.svc.Search(r.Context(), q, genreName, yearFrom, yearTo, limit, offset)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// @Summary Top de películas (popular | rating)
// @Tags movies
// @Produce json
// @Router /movies/top [get]
func (h *MovieHandler) Top(w http.ResponseWriter, r *http.Request) {
	metric := r.URL.Query().Get("metric")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 10
	}

	list, err := h.svc.Top(r.Context(), metric, limit)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
