package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.hacdias.com/folio/core"
	"go.hacdias.com/folio/log"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	DefaultTokenURL    = "https://accounts.spotify.com/api/token"
	DefaultAPIEndpoint = "https://api.spotify.com/v1"
	DefaultTimeout     = 5 * time.Second

	DefaultTopTracksLimit = 5
	maxTopTracksLimit     = 50
)

var errNoContent = errors.New("no content")

type Spotify struct {
	log          *zap.SugaredLogger
	httpClient   *http.Client
	oauth        *oauth2.Config
	refreshToken string
	endpoint     string
}

func NewSpotify(c *core.Spotify) *Spotify {
	tokenURL, _ := lo.Coalesce(c.TokenURL, DefaultTokenURL)
	endpoint, _ := lo.Coalesce(c.APIEndpoint, DefaultAPIEndpoint)
	timeout, _ := lo.Coalesce(c.Timeout, DefaultTimeout)

	return &Spotify{
		log: log.S().Named("spotify"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		oauth: &oauth2.Config{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		refreshToken: c.RefreshToken,
		endpoint:     strings.TrimSuffix(endpoint, "/"),
	}
}

// AccessToken exchanges the refresh token for a new access token. Tokens are
// not cached: every call is a new exchange.
func (s *Spotify) AccessToken(ctx context.Context) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	token, err := s.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: s.refreshToken}).Token()
	if err != nil {
		return "", fmt.Errorf("could not refresh access token: %w", err)
	}

	return token.AccessToken, nil
}

// NowPlaying returns what is currently playing. Any failure, as well as an
// incomplete response, is reported as not playing.
func (s *Spotify) NowPlaying(ctx context.Context) *core.NowPlaying {
	var res currentlyPlaying
	err := s.get(ctx, "/me/player/currently-playing", nil, &res)
	if err != nil {
		if !errors.Is(err, errNoContent) {
			s.log.Warnw("could not fetch currently playing", "err", err)
		}
		return core.NotPlaying()
	}

	if !res.IsPlaying || res.Item == nil {
		return core.NotPlaying()
	}

	t, ok := res.Item.convert()
	if !ok {
		s.log.Debugw("ignoring incomplete currently playing item", "name", res.Item.Name)
		return core.NotPlaying()
	}

	return &core.NowPlaying{
		IsPlaying:     true,
		Title:         t.Title,
		Artist:        t.Artist,
		Album:         t.Album,
		AlbumImageURL: t.AlbumImageURL,
		SongURL:       t.SongURL,
	}
}

// TopTracks returns the most listened tracks in the given time range. An
// invalid limit or time range is replaced by its default. Any failure results
// in an empty list.
func (s *Spotify) TopTracks(ctx context.Context, limit int, timeRange string) []*core.Track {
	if limit < 1 || limit > maxTopTracksLimit {
		limit = DefaultTopTracksLimit
	}

	if !ValidTimeRange(timeRange) {
		timeRange = core.ShortTerm
	}

	q := url.Values{}
	q.Set("time_range", timeRange)
	q.Set("limit", strconv.Itoa(limit))

	var res topTracks
	err := s.get(ctx, "/me/top/tracks", q, &res)
	if err != nil {
		if !errors.Is(err, errNoContent) {
			s.log.Warnw("could not fetch top tracks", "err", err)
		}
		return []*core.Track{}
	}

	return lo.FilterMap(res.Items, func(item *track, _ int) (*core.Track, bool) {
		if item == nil {
			return nil, false
		}
		return item.convert()
	})
}

func ValidTimeRange(timeRange string) bool {
	return timeRange == core.ShortTerm || timeRange == core.MediumTerm || timeRange == core.LongTerm
}

func (s *Spotify) get(ctx context.Context, path string, query url.Values, v any) error {
	token, err := s.AccessToken(ctx)
	if err != nil {
		return err
	}

	u := s.endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNoContent {
		return errNoContent
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status code %d", path, res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(v)
}

type currentlyPlaying struct {
	IsPlaying bool   `json:"is_playing"`
	Item      *track `json:"item"`
}

type topTracks struct {
	Items []*track `json:"items"`
}

type track struct {
	Name    string   `json:"name"`
	Artists []artist `json:"artists"`
	Album   struct {
		Name   string  `json:"name"`
		Images []image `json:"images"`
	} `json:"album"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

type artist struct {
	Name string `json:"name"`
}

type image struct {
	URL string `json:"url"`
}

// convert returns the normalized track and whether every field could be
// filled in.
func (t *track) convert() (*core.Track, bool) {
	if len(t.Artists) == 0 || len(t.Album.Images) == 0 {
		return nil, false
	}

	artists := lo.Compact(lo.Map(t.Artists, func(a artist, _ int) string {
		return a.Name
	}))

	ct := &core.Track{
		Title:         t.Name,
		Artist:        strings.Join(artists, ", "),
		Album:         t.Album.Name,
		AlbumImageURL: t.Album.Images[0].URL,
		SongURL:       t.ExternalURLs.Spotify,
	}

	if ct.Title == "" || ct.Artist == "" || ct.Album == "" || ct.AlbumImageURL == "" || ct.SongURL == "" {
		return nil, false
	}

	return ct, true
}
