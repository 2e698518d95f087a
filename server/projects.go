package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.hacdias.com/folio/core"
)

type projectResponse struct {
	*core.Project
	ContentHTML string `json:"contentHtml"`
}

func (s *Server) projectsGet(w http.ResponseWriter, r *http.Request) {
	projects, err := s.co.GetProjects()
	if err != nil {
		s.log.Errorw("could not read projects", "err", err)
		serveErrorJSON(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	if r.URL.Query().Get("featured") == "true" {
		projects = projects.Featured()
	}

	serveJSON(w, http.StatusOK, projects)
}

func (s *Server) projectGet(w http.ResponseWriter, r *http.Request) {
	project, err := s.co.GetProject(chi.URLParam(r, "slug"))
	switch {
	case errors.Is(err, core.ErrNotFound):
		serveErrorJSON(w, http.StatusNotFound, "Project not found.")
		return
	case errors.Is(err, core.ErrInvalidContent):
		s.log.Warnw("refusing to serve invalid project", "err", err)
		serveErrorJSON(w, http.StatusNotFound, "Project is not available.")
		return
	case err != nil:
		s.log.Errorw("could not read project", "err", err)
		serveErrorJSON(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	html, err := core.RenderMarkdown(project.Content)
	if err != nil {
		s.log.Errorw("could not render project", "slug", project.Slug, "err", err)
		serveErrorJSON(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	serveJSON(w, http.StatusOK, &projectResponse{
		Project:     project,
		ContentHTML: html,
	})
}
