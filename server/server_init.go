package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.hacdias.com/folio/core"
	"go.hacdias.com/folio/log"
	"go.hacdias.com/folio/services/csvfile"
	"go.hacdias.com/folio/services/database"
	"go.hacdias.com/folio/services/sheets"
	"go.hacdias.com/folio/services/spotify"
	"go.hacdias.com/folio/services/telegram"
)

func (s *Server) initNotifier() error {
	var err error
	if s.c.Notifications.Telegram != nil {
		s.n, err = telegram.NewTelegram(s.c.Notifications.Telegram)
	} else {
		s.n = log.NewLogNotifier()
	}
	return err
}

func (s *Server) initMusic() {
	if s.c.Spotify != nil {
		s.music = spotify.NewSpotify(s.c.Spotify)
	} else {
		s.log.Info("spotify is not configured, music endpoints report nothing playing")
	}
}

func (s *Server) initLeads() error {
	sink, err := s.newLeadSink()
	if err != nil {
		return fmt.Errorf("leads: %w", err)
	}

	s.leads = core.NewLeadIntake(sink, s.n)
	return nil
}

func (s *Server) newLeadSink() (core.LeadSink, error) {
	switch s.c.Leads.Sink {
	case core.SinkFile:
		return csvfile.NewCSVFile(afero.NewOsFs(), s.c.Leads.File), nil
	case core.SinkBolt:
		err := os.MkdirAll(filepath.Dir(s.c.Leads.Bolt), 0o755)
		if err != nil {
			return nil, err
		}

		db, err := database.NewDatabase(s.c.Leads.Bolt)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db)
		return db, nil
	case core.SinkSheets:
		sh, err := sheets.NewSheets(context.Background(), &s.c.Leads.Sheets)
		if err != nil {
			return nil, err
		}
		return sh, nil
	default:
		return nil, fmt.Errorf("unknown sink %q", s.c.Leads.Sink)
	}
}

func (s *Server) initCron() error {
	_, err := s.cron.AddFunc("00 05 * * *", s.auditContent)
	return err
}
