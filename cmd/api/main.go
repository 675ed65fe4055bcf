package main

import (
	"log"
	"net/http"

	"fuzzyrec-tf/internal/cache"
	"fuzzyrec-tf/internal/config"
	"fuzzyrec-tf/internal/db"
	"fuzzyrec-tf/internal/fuzzy"
	"fuzzyrec-tf/internal/genre"
	"fuzzyrec-tf/internal/handler"
	"fuzzyrec-tf/internal/profile"
	"fuzzyrec-tf/internal/recommend"
	"fuzzyrec-tf/internal/repository"
	"fuzzyrec-tf/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// @title FuzzyRec Movie Recommender API
// @version 1.0
// @description API de recomendación con géneros difusos (Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// parámetros numéricos mal configurados = el proceso no levanta
	if err := cfg.Scoring.Validate(); err != nil {
		log.Fatalf("[config] scoring inválido: %v", err)
	}

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// ============================
	// Núcleo difuso (todo puro, sin IO)
	// ============================
	graph, err := genre.NewGraph(genre.MovieLensGenres, genre.DefaultRelations())
	if err != nil {
		log.Fatalf("[genre] grafo de relaciones inválido: %v", err)
	}
	fuzzifier, err := fuzzy.New(graph, cfg.Scoring.FuzzyParams())
	if err != nil {
		log.Fatalf("[fuzzy] parámetros inválidos: %v", err)
	}
	profiler, err := profile.New(graph, cfg.Scoring.ProfileParams())
	if err != nil {
		log.Fatalf("[profile] parámetros inválidos: %v", err)
	}
	recommender, err := recommend.New(cfg.Scoring.HybridWeights())
	if err != nil {
		log.Fatalf("[recommend] pesos híbridos inválidos: %v", err)
	}

	// repos
	userRepo := repository.NewUserRepository()
	movieRepo := repository.NewMovieRepository()
	ratingRepo := repository.NewRatingRepository()
	profileRepo := repository.NewProfileRepository()
	recRepo := repository.NewRecommendationRepository()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	catalogSvc := service.NewCatalogService(movieRepo)
	movieSvc := service.NewMovieService(movieRepo, graph)
	profileSvc := service.NewProfileService(ratingRepo, profileRepo, catalogSvc, profiler, cfg.CacheTTL)
	ratingSvc := service.NewRatingService(ratingRepo, movieRepo, profileSvc)
	fuzzifySvc := service.NewFuzzifyService(movieRepo, fuzzifier, catalogSvc)
	recSvc := service.NewRecommendService(ratingRepo, recRepo, profileSvc, catalogSvc, recommender, graph, cfg.Scoring, cfg.CacheTTL)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	movieH := handler.NewMovieHandler(movieSvc)
	ratingH := handler.NewRatingHandler(ratingSvc)
	profileH := handler.NewProfileHandler(profileSvc)
	recH := handler.NewRecommendHandler(recSvc)
	adminFuzzyH := handler.NewAdminFuzzyHandler(fuzzifySvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Películas (públicas)
	r.Get("/movies/search", movieH.Search)
	r.Get("/movies/top", movieH.Top)
	r.Get("/movies/{id}", movieH.GetMovie)
	r.Get("/movies/{id}/fuzzy", movieH.GetFuzzy)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- Endpoints /me (USER normal) ----
		r.Route("/me", func(r chi.Router) {
			r.Get("/ratings", ratingH.GetMyRatings)
			r.Post("/ratings", ratingH.PostMyRating)
			r.Get("/profile", profileH.GetMyProfile)
			r.Get("/profile/drift", profileH.GetMyDrift)
			r.Get("/recommendations", recH.GetMyRecommendations)
			r.Get("/recommendations/{movieId}/explain", recH.ExplainMine)
		})

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			r.Get("/users", authH.ListUsers)

			// ratings, perfiles y recomendaciones de cualquier usuario
			r.Route("/users/{id}", func(r chi.Router) {
				r.Get("/", authH.GetUserByID)

				r.Get("/ratings", ratingH.GetRatings)
				r.Post("/ratings", ratingH.PostRating)

				r.Get("/profile", profileH.GetProfile)

				// HTTP normal
				r.Get("/recommendations", recH.GetRecommendations)
				r.Get("/recommendations/history", recH.History)
				r.Get("/recommendations/{movieId}/explain", recH.Explain)

				// WebSocket
				r.Get("/ws/recommendations", recH.GetRecommendationsWS)
			})

			// --- mantenimiento de vectores difusos ---
			handler.MountAdminFuzzyRoutes(r, adminFuzzyH)
		})
	})

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
