package core

import "encoding/json"

// Time ranges accepted by the top tracks endpoint.
const (
	ShortTerm  = "short_term"
	MediumTerm = "medium_term"
	LongTerm   = "long_term"
)

// NowPlaying is the current listening state. When IsPlaying is false, none of
// the other fields are meaningful and they are not serialized.
type NowPlaying struct {
	IsPlaying     bool   `json:"isPlaying"`
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	Album         string `json:"album"`
	AlbumImageURL string `json:"albumImageUrl"`
	SongURL       string `json:"songUrl"`
}

// NotPlaying is the state reported whenever the music service is idle or
// cannot be reached.
func NotPlaying() *NowPlaying {
	return &NowPlaying{IsPlaying: false}
}

func (np *NowPlaying) MarshalJSON() ([]byte, error) {
	if !np.IsPlaying {
		return []byte(`{"isPlaying":false}`), nil
	}

	type nowPlaying NowPlaying
	return json.Marshal((*nowPlaying)(np))
}

type Track struct {
	Title         string `json:"title"`
	Artist        string `json:"artist"`
	Album         string `json:"album"`
	AlbumImageURL string `json:"albumImageUrl"`
	SongURL       string `json:"songUrl"`
}
