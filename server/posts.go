package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.hacdias.com/folio/core"
)

type postResponse struct {
	*core.Post
	ContentHTML string `json:"contentHtml"`
}

func (s *Server) postsGet(w http.ResponseWriter, r *http.Request) {
	posts, err := s.co.GetPosts()
	if err != nil {
		s.log.Errorw("could not read posts", "err", err)
		serveErrorJSON(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	q := r.URL.Query()
	serveJSON(w, http.StatusOK, posts.Filter(q.Get("category"), q.Get("q")))
}

func (s *Server) postGet(w http.ResponseWriter, r *http.Request) {
	post, err := s.co.GetPost(chi.URLParam(r, "slug"))
	if errors.Is(err, core.ErrNotFound) {
		serveErrorJSON(w, http.StatusNotFound, "Post not found.")
		return
	} else if err != nil {
		s.log.Errorw("could not read post", "err", err)
		serveErrorJSON(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	html, err := core.RenderMarkdown(post.Content)
	if err != nil {
		s.log.Errorw("could not render post", "slug", post.Slug, "err", err)
		serveErrorJSON(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	serveJSON(w, http.StatusOK, &postResponse{
		Post:        post,
		ContentHTML: html,
	})
}
