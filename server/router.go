package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.hacdias.com/folio/log"
)

const (
	apiPath     = "/api"
	metricsPath = "/metrics"
)

func (s *Server) makeRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(s.withRecoverer)
	r.Use(middleware.RequestID)
	r.Use(log.WithZap)
	r.Use(middleware.CleanPath)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.GetHead)
	r.Use(s.withSecurityHeaders)
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Route(apiPath, func(r chi.Router) {
		r.Get("/posts", s.postsGet)
		r.Get("/posts/{slug}", s.postGet)

		r.Get("/projects", s.projectsGet)
		r.Get("/projects/{slug}", s.projectGet)

		r.Get("/spotify/now-playing", s.nowPlayingGet)
		r.Get("/spotify/now-playing/stream", s.nowPlayingStreamGet)
		r.Get("/spotify/top-tracks", s.topTracksGet)

		r.Post("/leads", s.leadsPost)
	})

	r.Method(http.MethodGet, metricsPath, s.metrics.handler())
	return r
}
