package handler

import (
	"net/http"
	"strconv"
	"time"

	"fuzzyrec-tf/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// parseRecRequest arma la petición común a los tres endpoints.
func parseRecRequest(r *http.Request, userID int) service.RecRequest {
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	refresh := r.URL.Query().Get("refresh") == "true"

	req := service.RecRequest{UserID: userID, K: k, Refresh: refresh}
	if v := r.URL.Query().Get("lambda"); v != "" {
		if l, err := strconv.ParseFloat(v, 64); err == nil {
			req.Lambda = &l
		}
	}
	return req
}

// @Summary Recomendaciones para un usuario
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param lambda query number false "factor de diversidad MMR en [0,1]"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecItem
// @Router /users/{id}/recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))

	items, err := h.svc.Recommend(r.Context(), parseRecRequest(r, userID))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// @Summary Mis recomendaciones
// @Tags recommend
// @Produce json
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param lambda query number false "factor de diversidad MMR en [0,1]"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecItem
// @Router /me/recommendations [get]
func (h *RecommendHandler) GetMyRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())

	items, err := h.svc.Recommend(r.Context(), parseRecRequest(r, userID))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param k query int false "cantidad de recomendaciones (máx 50)"
// @Param lambda query number false "factor de diversidad MMR en [0,1]"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id}/ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	req := parseRecRequest(r, userID)

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, iniciando pipeline difuso…",
	})

	// Etapas del pipeline, una por mensaje de progreso
	stages := []string{
		"construyendo perfil difuso del usuario",
		"calculando similitud híbrida contra el catálogo",
		"diversificando con MMR",
	}
	for i, s := range stages {
		conn.WriteJSON(map[string]any{
			"type":  "progress",
			"stage": i + 1,
			"msg":   s,
		})
	}

	items, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	// Mensaje final con recomendaciones
	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"userId":      userID,
		"items":       items,
		"generatedAt": time.Now(),
	})
}

// @Summary Explicación de una recomendación
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param movieId path int true "movieId"
// @Success 200 {object} models.Explanation
// @Router /users/{id}/recommendations/{movieId}/explain [get]
func (h *RecommendHandler) Explain(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	movieID, _ := strconv.Atoi(chi.URLParam(r, "movieId"))

	exp, err := h.svc.Explain(r.Context(), userID, movieID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exp)
}

// @Summary Explicación de una recomendación (propia)
// @Tags recommend
// @Produce json
// @Param movieId path int true "movieId"
// @Success 200 {object} models.Explanation
// @Router /me/recommendations/{movieId}/explain [get]
func (h *RecommendHandler) ExplainMine(w http.ResponseWriter, r *http.Request) {
	movieID, _ := strconv.Atoi(chi.URLParam(r, "movieId"))

	exp, err := h.svc.Explain(r.Context(), UserIDFromContext(r.Context()), movieID)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exp)
}

// @Summary Historial de recomendaciones del usuario
// @Tags recommend
// @Produce json
// @Param id path int true "userId"
// @Param limit query int false "cantidad de corridas (default 10)"
// @Success 200 {array} models.Recommendation
// @Router /users/{id}/recommendations/history [get]
func (h *RecommendHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	hist, err := h.svc.History(r.Context(), userID, limit)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hist)
}
