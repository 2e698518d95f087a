package core

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SinkFile   = "file"
	SinkSheets = "sheets"
	SinkBolt   = "bolt"
)

type Config struct {
	Development       bool
	Port              int
	BaseURL           string
	SourceDirectory   string
	DataDirectory     string
	PostsDirectory    string // relative to [Config.SourceDirectory]
	ProjectsDirectory string // relative to [Config.SourceDirectory]

	Spotify       *Spotify
	Leads         Leads
	Notifications Notifications
}

// ParseConfig parses the configuration from the default files, paths and
// environment variables. The configuration file is optional.
func ParseConfig() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.AddConfigPath(".")

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return unmarshalConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("folio")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("development", false)
	v.SetDefault("port", 8080)
	v.SetDefault("baseurl", "")
	v.SetDefault("sourcedirectory", ".")
	v.SetDefault("datadirectory", "data")
	v.SetDefault("postsdirectory", "content/posts")
	v.SetDefault("projectsdirectory", "content/projects")
	v.SetDefault("leads.sink", SinkFile)
	v.SetDefault("leads.file", "leads.csv")
	v.SetDefault("leads.bolt", "leads.db")
	v.SetDefault("leads.sheets.range", "Sheet1!A:D")

	// Names used by the previous deployment of the website.
	_ = v.BindEnv("spotify.clientid", "FOLIO_SPOTIFY_CLIENTID", "SPOTIFY_CLIENT_ID")
	_ = v.BindEnv("spotify.clientsecret", "FOLIO_SPOTIFY_CLIENTSECRET", "SPOTIFY_CLIENT_SECRET")
	_ = v.BindEnv("spotify.refreshtoken", "FOLIO_SPOTIFY_REFRESHTOKEN", "SPOTIFY_REFRESH_TOKEN")
	_ = v.BindEnv("leads.sheets.spreadsheetid", "FOLIO_LEADS_SHEETS_SPREADSHEETID", "GOOGLE_SHEET_ID")
	_ = v.BindEnv("leads.sheets.credentialsjson", "FOLIO_LEADS_SHEETS_CREDENTIALSJSON", "GOOGLE_SERVICE_ACCOUNT_KEY")
	_ = v.BindEnv("notifications.telegram.token", "FOLIO_NOTIFICATIONS_TELEGRAM_TOKEN")
	_ = v.BindEnv("notifications.telegram.chatid", "FOLIO_NOTIFICATIONS_TELEGRAM_CHATID")

	return v
}

func unmarshalConfig(v *viper.Viper) (*Config, error) {
	conf := &Config{}
	err := v.Unmarshal(conf)
	if err != nil {
		return nil, err
	}

	err = conf.validate()
	if err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *Config) validate() error {
	var err error

	c.SourceDirectory, err = filepath.Abs(c.SourceDirectory)
	if err != nil {
		return err
	}

	if !filepath.IsAbs(c.DataDirectory) {
		c.DataDirectory = filepath.Join(c.SourceDirectory, c.DataDirectory)
	}

	if c.Port < 0 {
		return errors.New("config: Port should be positive number or 0")
	}

	if c.PostsDirectory == "" || c.ProjectsDirectory == "" {
		return errors.New("config: PostsDirectory and ProjectsDirectory must be set")
	}

	if c.BaseURL != "" {
		baseURL, err := url.Parse(c.BaseURL)
		if err != nil {
			return err
		}
		baseURL.Path = ""

		if baseURL.String() != c.BaseURL {
			return fmt.Errorf("config: BaseURL should be %s", baseURL.String())
		}
	}

	if c.Spotify != nil {
		err = c.Spotify.validate()
		if err != nil {
			return err
		}
	}

	if c.Notifications.Telegram != nil && c.Notifications.Telegram.Token == "" {
		return errors.New("config: Notifications.Telegram.Token is empty")
	}

	return c.Leads.validate(c.DataDirectory)
}

type Spotify struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	TokenURL     string
	APIEndpoint  string
	Timeout      time.Duration
}

func (s *Spotify) validate() error {
	if s.ClientID == "" || s.ClientSecret == "" {
		return errors.New("config: Spotify.ClientID and Spotify.ClientSecret must be set")
	}

	if s.RefreshToken == "" {
		return errors.New("config: Spotify.RefreshToken is empty")
	}

	if s.Timeout < 0 {
		return errors.New("config: Spotify.Timeout should be positive")
	}

	return nil
}

type Leads struct {
	Sink   string
	File   string // relative to [Config.DataDirectory] unless absolute
	Bolt   string // relative to [Config.DataDirectory] unless absolute
	Sheets Sheets
}

func (l *Leads) validate(dataDir string) error {
	switch l.Sink {
	case SinkFile:
		if l.File == "" {
			return errors.New("config: Leads.File is empty")
		}
		if !filepath.IsAbs(l.File) {
			l.File = filepath.Join(dataDir, l.File)
		}
	case SinkBolt:
		if l.Bolt == "" {
			return errors.New("config: Leads.Bolt is empty")
		}
		if !filepath.IsAbs(l.Bolt) {
			l.Bolt = filepath.Join(dataDir, l.Bolt)
		}
	case SinkSheets:
		return l.Sheets.validate()
	default:
		return fmt.Errorf("config: Leads.Sink %q is not one of %s, %s, %s", l.Sink, SinkFile, SinkSheets, SinkBolt)
	}

	return nil
}

type Sheets struct {
	SpreadsheetID   string
	Range           string
	CredentialsFile string
	CredentialsJSON string
}

func (s *Sheets) validate() error {
	if s.SpreadsheetID == "" {
		return errors.New("config: Leads.Sheets.SpreadsheetID is empty")
	}

	if s.Range == "" {
		return errors.New("config: Leads.Sheets.Range is empty")
	}

	if s.CredentialsFile == "" && s.CredentialsJSON == "" {
		return errors.New("config: Leads.Sheets needs CredentialsFile or CredentialsJSON")
	}

	return nil
}

// Credentials returns the service account JSON, reading it from
// [Sheets.CredentialsFile] when it is not given inline.
func (s *Sheets) Credentials() ([]byte, error) {
	if s.CredentialsJSON != "" {
		return []byte(s.CredentialsJSON), nil
	}

	return os.ReadFile(s.CredentialsFile)
}

type Telegram struct {
	Token  string
	ChatID int64
}

type Notifications struct {
	Telegram *Telegram
}
