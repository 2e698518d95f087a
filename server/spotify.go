package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.hacdias.com/folio/core"
)

func (s *Server) nowPlaying(r *http.Request) *core.NowPlaying {
	np := core.NotPlaying()
	if s.music != nil {
		np = s.music.NowPlaying(r.Context())
	}

	s.metrics.nowPlaying.WithLabelValues(strconv.FormatBool(np.IsPlaying)).Inc()
	return np
}

func (s *Server) nowPlayingGet(w http.ResponseWriter, r *http.Request) {
	serveJSON(w, http.StatusOK, s.nowPlaying(r))
}

func (s *Server) topTracksGet(w http.ResponseWriter, r *http.Request) {
	if s.music == nil {
		serveJSON(w, http.StatusOK, []*core.Track{})
		return
	}

	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	serveJSON(w, http.StatusOK, s.music.TopTracks(r.Context(), limit, q.Get("time_range")))
}

// nowPlayingStreamGet streams the listening state as server-sent events until
// the client goes away.
func (s *Server) nowPlayingStreamGet(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		serveErrorJSON(w, http.StatusInternalServerError, "Streaming is not supported.")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	send := func(np *core.NowPlaying) {
		data, err := json.Marshal(np)
		if err != nil {
			s.log.Warnw("could not encode now playing", "err", err)
			return
		}

		_, err = fmt.Fprintf(w, "event: now-playing\ndata: %s\n\n", data)
		if err != nil {
			s.log.Debugw("could not write event", "err", err)
			return
		}
		flusher.Flush()
	}

	if s.music == nil {
		send(core.NotPlaying())
		return
	}

	s.music.Watch(r.Context(), s.nowPlayingInterval, func(np *core.NowPlaying) {
		s.metrics.nowPlaying.WithLabelValues(strconv.FormatBool(np.IsPlaying)).Inc()
		send(np)
	})
}
