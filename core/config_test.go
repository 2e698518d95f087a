package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	dir := t.TempDir()

	v := newViper()
	v.Set("sourcedirectory", dir)

	conf, err := unmarshalConfig(v)
	require.NoError(t, err)

	assert.Equal(t, 8080, conf.Port)
	assert.Equal(t, dir, conf.SourceDirectory)
	assert.Equal(t, filepath.Join(dir, "data"), conf.DataDirectory)
	assert.Equal(t, "content/posts", conf.PostsDirectory)
	assert.Equal(t, "content/projects", conf.ProjectsDirectory)
	assert.Nil(t, conf.Spotify)
	assert.Nil(t, conf.Notifications.Telegram)
	assert.Equal(t, SinkFile, conf.Leads.Sink)
	assert.Equal(t, filepath.Join(dir, "data", "leads.csv"), conf.Leads.File)
	assert.Equal(t, "Sheet1!A:D", conf.Leads.Sheets.Range)
}

func TestConfigEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FOLIO_PORT", "9000")
	t.Setenv("FOLIO_SOURCEDIRECTORY", dir)
	t.Setenv("SPOTIFY_CLIENT_ID", "client")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "secret")
	t.Setenv("SPOTIFY_REFRESH_TOKEN", "refresh")
	t.Setenv("FOLIO_LEADS_SINK", "sheets")
	t.Setenv("GOOGLE_SHEET_ID", "sheet")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT_KEY", `{"type":"service_account"}`)

	conf, err := unmarshalConfig(newViper())
	require.NoError(t, err)

	assert.Equal(t, 9000, conf.Port)
	require.NotNil(t, conf.Spotify)
	assert.Equal(t, "client", conf.Spotify.ClientID)
	assert.Equal(t, "secret", conf.Spotify.ClientSecret)
	assert.Equal(t, "refresh", conf.Spotify.RefreshToken)
	assert.Equal(t, SinkSheets, conf.Leads.Sink)
	assert.Equal(t, "sheet", conf.Leads.Sheets.SpreadsheetID)

	creds, err := conf.Leads.Sheets.Credentials()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"service_account"}`, string(creds))
}

func TestConfigInvalid(t *testing.T) {
	tests := []struct {
		title  string
		values map[string]any
	}{
		{"Negative Port", map[string]any{"port": -1}},
		{"BaseURL With Path", map[string]any{"baseurl": "https://example.com/blog"}},
		{"Unknown Sink", map[string]any{"leads.sink": "email"}},
		{"Sheets Without Spreadsheet", map[string]any{"leads.sink": "sheets", "leads.sheets.credentialsjson": "{}"}},
		{"Sheets Without Credentials", map[string]any{"leads.sink": "sheets", "leads.sheets.spreadsheetid": "id"}},
		{"Spotify Without Secret", map[string]any{"spotify.clientid": "id", "spotify.refreshtoken": "token"}},
		{"Spotify Without Refresh Token", map[string]any{"spotify.clientid": "id", "spotify.clientsecret": "secret"}},
		{"Telegram Without Token", map[string]any{"notifications.telegram.chatid": 1}},
	}

	for _, tt := range tests {
		v := newViper()
		v.Set("sourcedirectory", t.TempDir())
		for key, value := range tt.values {
			v.Set(key, value)
		}

		_, err := unmarshalConfig(v)
		assert.Error(t, err, "failed for title: %s", tt.title)
	}
}
