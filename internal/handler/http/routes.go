package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	router.Use(withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Route("/users", func(r chi.Router) {
		// routes without authorization
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Put("/{userId}", h.updateUser)
			r.Delete("/{userId}", h.deleteUser)
		})
	})

	router.Route("/photos", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.listPhotos)
		r.Post("/", h.createPhoto)
		r.Get("/{photoId}", h.getPhoto)
		r.Put("/{photoId}", h.updatePhoto)
		r.Delete("/{photoId}", h.deletePhoto)
	})

	router.Route("/comments", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.listComments)
		r.Post("/", h.createComment)
		r.Put("/{commentId}", h.updateComment)
		r.Delete("/{commentId}", h.deleteComment)
	})

	router.Route("/socialmedias", func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/", h.listSocialMedias)
		r.Post("/", h.createSocialMedia)
		r.Put("/{socialMediaId}", h.updateSocialMedia)
		r.Delete("/{socialMediaId}", h.deleteSocialMedia)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: h.cfg.CORSOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Content-Type", tokenHeader, traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
	}).Handler
}

// idParam parses the named path parameter. A value that is not a number
// yields 0, which never matches a stored record.
func idParam(r *http.Request, name string) int64 {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
