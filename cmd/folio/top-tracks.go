package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.hacdias.com/folio/core"
	"go.hacdias.com/folio/services/spotify"
)

func init() {
	rootCmd.AddCommand(topTracksCmd)
	topTracksCmd.Flags().IntP("limit", "l", spotify.DefaultTopTracksLimit, "Number of tracks to show (1 to 50).")
	topTracksCmd.Flags().StringP("time-range", "t", core.ShortTerm, "One of short_term, medium_term or long_term.")
}

var topTracksCmd = &cobra.Command{
	Use:   "top-tracks",
	Short: "Print the most listened tracks",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		timeRange, _ := cmd.Flags().GetString("time-range")

		if !spotify.ValidTimeRange(timeRange) {
			return fmt.Errorf("invalid time range %q", timeRange)
		}

		c, err := core.ParseConfig()
		if err != nil {
			return err
		}

		if c.Spotify == nil {
			return errSpotifyNotConfigured
		}

		tracks := spotify.NewSpotify(c.Spotify).TopTracks(cmd.Context(), limit, timeRange)
		for i, t := range tracks {
			fmt.Printf("%2d. %s - %s (%s)\n    %s\n", i+1, t.Artist, t.Title, t.Album, t.SongURL)
		}

		return nil
	},
}
