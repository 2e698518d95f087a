package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.hacdias.com/folio/core"
)

const maxLeadBodySize = 64 << 10

func (s *Server) leadsPost(w http.ResponseWriter, r *http.Request) {
	var sub core.LeadSubmission

	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLeadBodySize)).Decode(&sub)
	if err != nil {
		s.metrics.leads.WithLabelValues("invalid").Inc()
		serveErrorJSON(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	lead, err := s.leads.Submit(r.Context(), &sub)
	switch {
	case errors.Is(err, core.ErrInvalidLead):
		s.metrics.leads.WithLabelValues("invalid").Inc()
		serveErrorJSON(w, http.StatusBadRequest, validationMessage(err))
		return
	case err != nil:
		s.metrics.leads.WithLabelValues("failed").Inc()
		s.log.Errorw("could not save lead", "err", err)
		serveErrorJSON(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	s.metrics.leads.WithLabelValues("accepted").Inc()
	s.log.Infow("received lead", "name", lead.Name, "email", lead.Email)
	serveJSON(w, http.StatusOK, map[string]bool{
		"success": true,
	})
}

// validationMessage turns a lead validation error into a message fit for the
// visitor, without the sentinel prefix.
func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), core.ErrInvalidLead.Error()+": ")
	return "Invalid submission: " + msg + "."
}
