package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.hacdias.com/folio/core"
	"go.hacdias.com/folio/log"
	"go.uber.org/zap"
)

const nowPlayingInterval = 30 * time.Second

// music is implemented by the music service adapters.
type music interface {
	NowPlaying(ctx context.Context) *core.NowPlaying
	TopTracks(ctx context.Context, limit int, timeRange string) []*core.Track
	Watch(ctx context.Context, interval time.Duration, fn func(*core.NowPlaying))
}

type Server struct {
	n   core.Notifier
	c   *core.Config
	co  *core.Core
	log *zap.SugaredLogger

	cron    *cron.Cron
	metrics *metrics
	leads   *core.LeadIntake
	music   music
	closers []io.Closer

	nowPlayingInterval time.Duration

	server *http.Server
}

func NewServer(c *core.Config) (*Server, error) {
	s := &Server{
		c:                  c,
		co:                 core.NewCore(c),
		log:                log.S().Named("server"),
		cron:               cron.New(),
		metrics:            newMetrics(),
		nowPlayingInterval: nowPlayingInterval,
	}

	if err := s.initNotifier(); err != nil {
		return nil, err
	}

	s.initMusic()

	err := errors.Join(
		s.initLeads(),
		s.initCron(),
	)
	if err != nil {
		return nil, errors.Join(err, s.close())
	}

	return s, nil
}

func (s *Server) Start() error {
	go s.auditContent()

	s.cron.Start()

	addr := ":" + strconv.Itoa(s.c.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	errCh := make(chan error)
	s.server = &http.Server{
		Handler:           s.makeRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		s.log.Infof("listening on %s", ln.Addr().String())
		errCh <- s.server.Serve(ln)
	}()

	return <-errCh
}

func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	<-s.cron.Stop().Done()

	var err error
	if s.server != nil {
		err = s.server.Shutdown(ctx)
	}

	return errors.Join(err, s.close())
}

func (s *Server) close() error {
	var errs error
	for _, c := range s.closers {
		errs = errors.Join(errs, c.Close())
	}
	s.closers = nil
	return errs
}

// auditContent reports the project files that cannot be served.
func (s *Server) auditContent() {
	problems, err := s.co.CheckContent()
	if err != nil {
		s.n.Error(fmt.Errorf("content audit: %w", err))
		return
	}

	s.metrics.contentProblems.Set(float64(len(problems)))
	if len(problems) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString("⚠️ Some projects are not being served:")
	for _, p := range problems {
		sb.WriteString("\n• ")
		sb.WriteString(p.Err.Error())
	}

	s.n.Info(sb.String())
}

func (s *Server) withRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil && rvr != http.ErrAbortHandler {
				err := fmt.Errorf("panic while serving: %v: %s", rvr, string(debug.Stack()))
				s.n.Error(err)
				serveErrorJSON(w, http.StatusInternalServerError, serverErrorMessage)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")
		next.ServeHTTP(w, r)
	})
}
