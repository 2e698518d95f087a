package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.hacdias.com/folio/core"
	"go.hacdias.com/folio/log"
	"go.hacdias.com/folio/server"
)

var rootCmd = &cobra.Command{
	Use:               "folio",
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	Short:             "Folio serves the content, music and contact form of a portfolio website",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := core.ParseConfig()
		if err != nil {
			return err
		}

		log.SetDevelopment(c.Development)
		defer func() {
			_ = log.L().Sync()
		}()

		quit := make(chan os.Signal, 1)
		server, err := server.NewServer(c)
		if err != nil {
			return err
		}

		log := log.S()

		go func() {
			log.Info("starting server")
			err := server.Start()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Errorf("failed to start server: %s", err)
			}
			quit <- os.Interrupt
		}()

		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Info("stopping server")
		return server.Stop()
	},
}
