package core

import (
	"github.com/spf13/afero"
	"go.hacdias.com/folio/log"
	"go.uber.org/zap"
)

type Core struct {
	cfg *Config
	log *zap.SugaredLogger

	// Source, read-only from our side.
	sourceFS *afero.Afero
}

func NewCore(cfg *Config) *Core {
	return &Core{
		cfg: cfg,
		log: log.S().Named("core"),
		sourceFS: &afero.Afero{
			Fs: afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), cfg.SourceDirectory)),
		},
	}
}

func (co *Core) Config() *Config {
	return co.cfg
}
