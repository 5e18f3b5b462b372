package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(h.cors().Handler)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// must be set before sub-routers are mounted so they inherit them
	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)
	router.Get("/version/build", h.getBuildInfo)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			// routes without authorization
			r.Post("/signup", h.signup)
			r.Post("/signin", h.signin)
			r.With(h.optionalAuth).Get("/savedPosts", h.listSavedPosts)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/", h.withCaller(h.getProfile))
				r.Put("/", h.withCaller(h.updateProfile))
				r.Post("/follow", h.withCaller(h.follow))
				r.Post("/unfollow", h.withCaller(h.unfollow))
				r.Get("/followers", h.withCaller(h.listFollowers))
				r.Get("/following", h.withCaller(h.listFollowing))
				r.Post("/savedPosts", h.withCaller(h.savePost))
			})
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/bulk", h.listPosts)
			r.Get("/{id}", h.getPost)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", h.withCaller(h.createPost))
				r.Put("/", h.withCaller(h.updatePost))
			})
		})
	})

	return router
}

func (h *Handler) cors() *cors.Cors {
	origins := h.allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
	})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: msgNotFound}, http.StatusNotFound)
}
