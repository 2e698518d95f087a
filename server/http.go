package server

import (
	"encoding/json"
	"net/http"

	"go.hacdias.com/folio/log"
)

const serverErrorMessage = "Server error."

func serveJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		log.S().Warnw("error while serving json", "err", err)
	}
}

func serveErrorJSON(w http.ResponseWriter, code int, msg string) {
	serveJSON(w, code, map[string]string{
		"error": msg,
	})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	serveErrorJSON(w, http.StatusNotFound, "Not found.")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	serveErrorJSON(w, http.StatusMethodNotAllowed, "Method not allowed.")
}
