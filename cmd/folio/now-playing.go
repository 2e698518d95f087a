package main

import (
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.hacdias.com/folio/core"
	"go.hacdias.com/folio/services/spotify"
)

var errSpotifyNotConfigured = errors.New("spotify is not configured")

func init() {
	rootCmd.AddCommand(nowPlayingCmd)
	nowPlayingCmd.Flags().BoolP("watch", "w", false, "Keep polling until interrupted.")
	nowPlayingCmd.Flags().Duration("interval", 30*time.Second, "Interval between polls when watching.")
}

var nowPlayingCmd = &cobra.Command{
	Use:   "now-playing",
	Short: "Print what is currently playing",
	RunE: func(cmd *cobra.Command, args []string) error {
		watch, _ := cmd.Flags().GetBool("watch")
		interval, _ := cmd.Flags().GetDuration("interval")

		c, err := core.ParseConfig()
		if err != nil {
			return err
		}

		if c.Spotify == nil {
			return errSpotifyNotConfigured
		}

		s := spotify.NewSpotify(c.Spotify)
		enc := json.NewEncoder(os.Stdout)

		if !watch {
			return enc.Encode(s.NowPlaying(cmd.Context()))
		}

		if interval <= 0 {
			return errors.New("interval must be positive")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s.Watch(ctx, interval, func(np *core.NowPlaying) {
			_ = enc.Encode(np)
		})
		return nil
	},
}
