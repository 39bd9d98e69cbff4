package commands

import (
	"go.uber.org/zap"

	"github.com/fuelview/fuelview/internal/config"
	"github.com/fuelview/fuelview/internal/dataset"
	"github.com/fuelview/fuelview/internal/logging"
)

// session is the loaded state a command works on.
type session struct {
	cfg     *config.Config
	logger  *zap.Logger
	records *dataset.RecordSet
}

// openSession resolves config, builds the logger and loads the dataset once.
func openSession(g *globalFlags, console bool) (*session, error) {
	cfg, err := resolveConfig(g)
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(cfg.Log, console)
	records, err := dataset.Load(cfg.Data.Path, cfg.DatasetOptions())
	if err != nil {
		logger.Error("failed to load dataset", zap.String("path", cfg.Data.Path), zap.Error(err))
		_ = logger.Sync()
		return nil, err
	}
	logger.Info("dataset loaded",
		zap.String("path", cfg.Data.Path),
		zap.Int("records", records.Len()),
	)
	return &session{cfg: cfg, logger: logger, records: records}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}
